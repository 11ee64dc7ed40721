package ladder

import "sort"

// Dictionary is the read-only universe of words a Solver may step through.
// Words keep their input order and are not deduplicated; they are grouped
// by length once at construction so a query only ever scans its own length.
//
// A Dictionary is immutable after NewDictionary and safe for concurrent use.
type Dictionary struct {
	words []string
	byLen map[int][]string
	known map[string]struct{}
}

// NewDictionary builds a Dictionary over words. The slice is copied;
// words are used verbatim (no trimming or case folding).
//
// Complexity: O(N) time and memory.
func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{
		words: make([]string, len(words)),
		byLen: make(map[int][]string),
		known: make(map[string]struct{}, len(words)),
	}
	copy(d.words, words)
	for _, w := range d.words {
		d.byLen[len(w)] = append(d.byLen[len(w)], w)
		d.known[w] = struct{}{}
	}
	return d
}

// Len returns the number of entries, duplicates included.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns a copy of all entries in input order.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// Contains reports whether word is a dictionary entry of any length.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.known[word]
	return ok
}

// Lengths returns the distinct word lengths present, ascending.
func (d *Dictionary) Lengths() []int {
	out := make([]int, 0, len(d.byLen))
	for n := range d.byLen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// CountOfLength returns how many entries have length n.
func (d *Dictionary) CountOfLength(n int) int {
	return len(d.byLen[n])
}

// OfLength returns a fresh copy of the entries of length n, in input order.
// Callers may reorder the returned slice freely.
func (d *Dictionary) OfLength(n int) []string {
	src := d.byLen[n]
	out := make([]string, len(src))
	copy(out, src)
	return out
}
