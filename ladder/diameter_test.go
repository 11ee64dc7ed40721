package ladder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/ladder"
)

// TestFindLargestLadder_Chain walks the toy chain end to end.
func TestFindLargestLadder_Chain(t *testing.T) {
	s, err := ladder.NewSolver(ladder.NewDictionary(toyWords))
	require.NoError(t, err)

	path, err := s.FindLargestLadder(4)
	require.NoError(t, err)
	// first sweep from COLD ends at WARM, the second walks back to COLD
	assert.Equal(t, ladder.Path{"WARM", "WARD", "CARD", "CORD", "COLD"}, path)
}

// TestFindLargestLadder_ShortestBetweenEnds checks the returned ladder against
// brute-force all-pairs distances: it is valid, it is a shortest ladder between
// its own endpoints, and it never exceeds the true diameter of the component.
func TestFindLargestLadder_ShortestBetweenEnds(t *testing.T) {
	for _, seed := range []int64{2, 8, 21} {
		words := randomWords(seed, "ABC", 4, 45)
		for _, opts := range [][]ladder.Option{nil, {ladder.WithSeed(seed)}} {
			s, err := ladder.NewSolver(ladder.NewDictionary(words), opts...)
			require.NoError(t, err)

			path, err := s.FindLargestLadder(4)
			require.NoError(t, err)
			require.NotEmpty(t, path)
			require.True(t, path.Valid(), "invalid ladder %v", path)

			head, tail := path[0], path[len(path)-1]
			ref := bfsDistances(words, head, nil)
			require.Equal(t, ref[tail], path.Steps(), "seed %d: %v is not shortest", seed, path)

			// nothing in the component is farther from head than tail
			for _, d := range ref {
				require.LessOrEqual(t, d, path.Steps())
			}

			// no pair inside the component is farther apart than the true diameter
			diameter := 0
			for w := range ref {
				for _, d := range bfsDistances(words, w, nil) {
					if d > diameter {
						diameter = d
					}
				}
			}
			require.LessOrEqual(t, path.Steps(), diameter)
		}
	}
}

// TestFindLargestLadder_IgnoresExceptions confirms the exception set is not applied.
func TestFindLargestLadder_IgnoresExceptions(t *testing.T) {
	s, err := ladder.NewSolver(ladder.NewDictionary(toyWords))
	require.NoError(t, err)
	s.SetExceptions("CARD")

	path, err := s.FindLargestLadder(4)
	require.NoError(t, err)
	assert.Len(t, path, 5)
}

// TestFindLargestLadder_Isolated returns a single-word ladder for a lone word.
func TestFindLargestLadder_Isolated(t *testing.T) {
	s, err := ladder.NewSolver(ladder.NewDictionary([]string{"ZEBRA", "COLD"}))
	require.NoError(t, err)

	path, err := s.FindLargestLadder(5)
	require.NoError(t, err)
	assert.Equal(t, ladder.Path{"ZEBRA"}, path)
}

func TestFindLargestLadder_NoWords(t *testing.T) {
	s, err := ladder.NewSolver(ladder.NewDictionary(toyWords))
	require.NoError(t, err)

	_, err = s.FindLargestLadder(7)
	assert.ErrorIs(t, err, ladder.ErrNoWordsOfLength)
}

// TestFindLargestLadder_OnLayer checks both sweeps are reported until exhaustion.
func TestFindLargestLadder_OnLayer(t *testing.T) {
	var sweeps, traces int
	var lastFrontier int
	s, err := ladder.NewSolver(ladder.NewDictionary(toyWords),
		ladder.WithOnLayer(func(side ladder.Side, _, frontier, _ int) {
			switch side {
			case ladder.SideSweep:
				sweeps++
			case ladder.SideTrace:
				traces++
			}
			lastFrontier = frontier
		}))
	require.NoError(t, err)

	_, err = s.FindLargestLadder(4)
	require.NoError(t, err)
	// four layers discover words, a fifth finds the frontier empty
	assert.Equal(t, 5, sweeps)
	assert.Equal(t, 5, traces)
	assert.Zero(t, lastFrontier)
}
