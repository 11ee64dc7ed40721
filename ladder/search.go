package ladder

// noParent marks the root of a seen record.
const noParent = -1

// side is the mutable state of one search wave.
//
// seen is append-only: positions handed out by add stay valid for the
// lifetime of the side, which is what parent links and frontiers point at.
// parents is nil for an untracked wave.
type side struct {
	seen     []string
	parents  []int
	index    map[string]int
	frontier []int
	next     []int
	depth    int
}

// newSide seeds a wave with root at depth 0. capacity is a size hint.
func newSide(root string, capacity int, tracked bool) *side {
	s := &side{
		seen:     make([]string, 0, capacity+1),
		index:    make(map[string]int, capacity+1),
		frontier: make([]int, 0, 1),
	}
	if tracked {
		s.parents = make([]int, 0, capacity+1)
	}
	s.add(root, noParent)
	s.frontier, s.next = s.next, s.frontier[:0]
	return s
}

// add records word as discovered from seen[parent] and queues it for
// the next layer.
func (s *side) add(word string, parent int) {
	pos := len(s.seen)
	s.seen = append(s.seen, word)
	if s.parents != nil {
		s.parents = append(s.parents, parent)
	}
	s.index[word] = pos
	s.next = append(s.next, pos)
}

// has reports whether word was already discovered by this wave.
func (s *side) has(word string) bool {
	_, ok := s.index[word]
	return ok
}

// last returns the most recently discovered word.
func (s *side) last() string {
	return s.seen[len(s.seen)-1]
}

// expand advances the wave by one full layer over pool. A candidate is
// admitted when it is adjacent to a frontier word, not excluded and not
// yet seen by this wave.
//
// If other is non-nil, expand stops at the first admitted word other has
// already seen and returns its position in s.seen; the frontier is left
// mid-layer in that case. Otherwise it returns noParent and the newly
// discovered words become the frontier.
func (s *side) expand(pool []string, excluded ExceptionSet, other *side) int {
	for _, pos := range s.frontier {
		word := s.seen[pos]
		for _, cand := range pool {
			if Distance(word, cand) != 1 || excluded.Has(cand) || s.has(cand) {
				continue
			}
			s.add(cand, pos)
			if other != nil && other.has(cand) {
				return len(s.seen) - 1
			}
		}
	}

	s.frontier, s.next = s.next, s.frontier[:0]
	s.depth++
	return noParent
}

// pathTo walks parent links from seen[pos] back to the root and returns
// the words root-first. s must be tracked.
func (s *side) pathTo(pos int) Path {
	var p Path
	for i := pos; i != noParent; i = s.parents[i] {
		p = append(p, s.seen[i])
	}
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// join builds origin → meet → target from two tracked waves that both
// discovered meet. The meeting word appears once.
func join(front, back *side, meet string) Path {
	head := front.pathTo(front.index[meet])
	tail := back.pathTo(back.index[meet])

	out := make(Path, 0, len(head)+len(tail)-1)
	out = append(out, head...)
	for i := len(tail) - 2; i >= 0; i-- {
		out = append(out, tail[i])
	}
	return out
}
