package ladder

import "fmt"

// FindLargestLadder approximates the longest shortest ladder among words
// of the given length with a double sweep:
//
//  1. BFS to exhaustion from the first word of the (possibly shuffled)
//     list without parent links; the last word discovered is far from it.
//  2. BFS to exhaustion from that far word with parent links; the last word
//     discovered is the other end.
//  3. Walk parents back to return the ladder between the two ends.
//
// The result is always a shortest ladder between its own endpoints, but it
// is not guaranteed to be the longest one in the graph: on dictionaries with
// several components only the component of the first word is explored.
// The exception set is not applied.
//
// opts apply to this call only. Returns ErrNoWordsOfLength when the
// dictionary holds no word of length.
func (s *Solver) FindLargestLadder(length int, opts ...Option) (Path, error) {
	o, err := s.callOptions(opts)
	if err != nil {
		return nil, err
	}
	pool := s.pool(length, o)
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoWordsOfLength, length)
	}

	sweep := newSide(pool[0], len(pool), false)
	for len(sweep.frontier) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		sweep.expand(pool, nil, nil)
		o.OnLayer(SideSweep, sweep.depth, len(sweep.frontier), len(sweep.seen))
	}

	trace := newSide(sweep.last(), len(pool), true)
	for len(trace.frontier) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		trace.expand(pool, nil, nil)
		o.OnLayer(SideTrace, trace.depth, len(trace.frontier), len(trace.seen))
	}

	return trace.pathTo(len(trace.seen) - 1), nil
}
