package ladder

import (
	"sort"
	"strings"
)

// Path is a ladder: the first word is the origin, the last the target,
// and consecutive words differ in exactly one position.
type Path []string

// Steps returns the number of single-letter changes in p.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Valid reports whether every consecutive pair of p is adjacent.
// An empty path is not valid; a single word is.
func (p Path) Valid() bool {
	if len(p) == 0 {
		return false
	}
	for i := 1; i < len(p); i++ {
		if !Adjacent(p[i-1], p[i]) {
			return false
		}
	}
	return true
}

// Contains reports whether word appears anywhere in p.
func (p Path) Contains(word string) bool {
	for _, w := range p {
		if w == word {
			return true
		}
	}
	return false
}

// String joins the words of p with arrows.
func (p Path) String() string {
	return strings.Join(p, " → ")
}

// ExceptionSet is a set of words excluded from the search graph.
// The zero value is not usable; use NewExceptionSet.
type ExceptionSet map[string]struct{}

// NewExceptionSet returns a set holding words.
func NewExceptionSet(words ...string) ExceptionSet {
	s := make(ExceptionSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Has reports whether word is excluded. Has is safe on a nil set.
func (s ExceptionSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Add excludes words.
func (s ExceptionSet) Add(words ...string) {
	for _, w := range words {
		s[w] = struct{}{}
	}
}

// Remove re-admits words.
func (s ExceptionSet) Remove(words ...string) {
	for _, w := range words {
		delete(s, w)
	}
}

// Clone returns an independent copy of s.
func (s ExceptionSet) Clone() ExceptionSet {
	out := make(ExceptionSet, len(s))
	for w := range s {
		out[w] = struct{}{}
	}
	return out
}

// Words returns the excluded words in ascending order.
func (s ExceptionSet) Words() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
