package ladder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/ladder"
)

func TestDictionary_Partitioning(t *testing.T) {
	d := ladder.NewDictionary([]string{"CAT", "COLD", "DOG", "CAT", "HORSE", "CARD"})

	assert.Equal(t, 6, d.Len(), "duplicates are kept")
	assert.Equal(t, []int{3, 4, 5}, d.Lengths())
	assert.Equal(t, []string{"CAT", "DOG", "CAT"}, d.OfLength(3))
	assert.Equal(t, []string{"COLD", "CARD"}, d.OfLength(4))
	assert.Equal(t, 1, d.CountOfLength(5))
	assert.Empty(t, d.OfLength(7))

	assert.True(t, d.Contains("HORSE"))
	assert.False(t, d.Contains("horse"), "no case folding")
}

// TestDictionary_Isolation verifies that callers cannot mutate the dictionary
// through the slices it hands out or the one it was built from.
func TestDictionary_Isolation(t *testing.T) {
	src := []string{"AB", "CD"}
	d := ladder.NewDictionary(src)
	src[0] = "ZZ"

	sub := d.OfLength(2)
	require.Len(t, sub, 2)
	sub[1] = "YY"

	all := d.Words()
	all[0] = "XX"

	assert.Equal(t, []string{"AB", "CD"}, d.OfLength(2))
	assert.True(t, d.Contains("AB"))
	assert.False(t, d.Contains("ZZ"))
}

func TestPath_Helpers(t *testing.T) {
	p := ladder.Path{"COLD", "CORD", "CARD"}
	assert.Equal(t, 2, p.Steps())
	assert.True(t, p.Valid())
	assert.True(t, p.Contains("CORD"))
	assert.False(t, p.Contains("WARD"))
	assert.Equal(t, "COLD → CORD → CARD", p.String())

	assert.False(t, ladder.Path{}.Valid())
	assert.Equal(t, 0, ladder.Path{}.Steps())
	assert.True(t, ladder.Path{"COLD"}.Valid())
	assert.False(t, ladder.Path{"COLD", "WARD"}.Valid())
}

func TestExceptionSet(t *testing.T) {
	var nilSet ladder.ExceptionSet
	assert.False(t, nilSet.Has("ANY"))

	s := ladder.NewExceptionSet("CARD", "WARD")
	s.Add("CORD")
	s.Remove("WARD")
	assert.Equal(t, []string{"CARD", "CORD"}, s.Words())

	c := s.Clone()
	c.Add("COLD")
	assert.False(t, s.Has("COLD"), "clone must be independent")
	assert.True(t, c.Has("COLD"))
}
