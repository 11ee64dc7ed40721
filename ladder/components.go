package ladder

import (
	"fmt"
	"sort"
)

// Components partitions the distinct words of the given length into
// connected components of the one-letter-change graph, ignoring the
// exception set. Components are returned largest first; ties keep the
// order in which their first word appears in the dictionary. Words inside
// a component are in discovery order.
//
// Two words can only be joined by a ladder when they share a component,
// which makes this the natural way to explain an ErrNoSolution outcome.
//
// Time:   O(W²) distance checks, W = number of same-length words.
// Memory: O(W).
func (s *Solver) Components(length int, opts ...Option) ([][]string, error) {
	o, err := s.callOptions(opts)
	if err != nil {
		return nil, err
	}
	pool := s.dict.OfLength(length)
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoWordsOfLength, length)
	}

	seen := make(map[string]bool, len(pool))
	var comps [][]string

	for _, root := range pool {
		if seen[root] {
			continue
		}
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		// BFS to collect component
		seen[root] = true
		queue := []string{root}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range pool {
				if !seen[v] && Distance(u, v) == 1 {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	sort.SliceStable(comps, func(i, j int) bool {
		return len(comps[i]) > len(comps[j])
	})
	return comps, nil
}

// Connected reports whether a and b lie in the same component of the
// unrestricted same-length graph. It is a cheaper yes/no than Solve
// because it runs a single wave and builds no path.
func (s *Solver) Connected(a, b string, opts ...Option) (bool, error) {
	o, err := s.callOptions(opts)
	if err != nil {
		return false, err
	}
	if len(a) != len(b) {
		return false, fmt.Errorf("%w: %q has %d letters, %q has %d",
			ErrLengthMismatch, a, len(a), b, len(b))
	}
	if a == b {
		return true, nil
	}

	pool := s.dict.OfLength(len(a))
	wave := newSide(a, len(pool), false)
	for len(wave.frontier) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return false, err
		}
		wave.expand(pool, nil, nil)
		if wave.has(b) {
			return true, nil
		}
	}
	return false, nil
}
