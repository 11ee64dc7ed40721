// Package ladder finds shortest word ladders with a bidirectional
// breadth-first search over an implicit same-length word graph.
package ladder

import (
	"fmt"
	"math/rand"
	"sync"
)

// Solver answers ladder queries against one Dictionary.
//
// The exception set is the only state shared across calls. It is replaced
// wholesale by SetExceptions and read once at the start of every Solve, so
// a Solver is safe for concurrent use.
type Solver struct {
	dict *Dictionary
	opts Options

	mu         sync.RWMutex
	exceptions ExceptionSet

	rngMu  sync.Mutex
	rng    *rand.Rand
	stream uint64
}

// NewSolver builds a Solver over dict, applying any number of Options.
// Returns ErrDictionaryNil for a nil dictionary and ErrOptionViolation
// for bad options.
func NewSolver(dict *Dictionary, opts ...Option) (*Solver, error) {
	if dict == nil {
		return nil, ErrDictionaryNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Solver{
		dict:       dict,
		opts:       o,
		exceptions: NewExceptionSet(),
		rng:        rngFromSeed(o.Seed),
	}, nil
}

// Dictionary returns the dictionary the Solver searches.
func (s *Solver) Dictionary() *Dictionary {
	return s.dict
}

// WordExists reports whether word is in the full dictionary, regardless
// of its length or of the exception set.
func (s *Solver) WordExists(word string) bool {
	return s.dict.Contains(word)
}

// SetExceptions replaces the exception set with words.
// Any previously returned Path is stale once this is called.
func (s *Solver) SetExceptions(words ...string) {
	next := NewExceptionSet(words...)
	s.mu.Lock()
	s.exceptions = next
	s.mu.Unlock()
}

// Exceptions returns the current exception set in ascending order.
func (s *Solver) Exceptions() []string {
	return s.snapshot().Words()
}

// snapshot returns the current exception set. A set is never mutated after
// SetExceptions installs it, so the caller may keep reading it unlocked.
func (s *Solver) snapshot() ExceptionSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exceptions
}

// Solve returns a shortest ladder from origin to target that avoids the
// current exception set.
//
// Errors:
//   - ErrLengthMismatch if len(origin) != len(target).
//   - ErrNoSolution if the waves are exhausted, or origin/target is excluded.
//   - the context error if the configured context is done.
//   - ErrOptionViolation for a bad per-call Option.
//
// opts apply to this call only, on top of the Solver's own Options.
func (s *Solver) Solve(origin, target string, opts ...Option) (Path, error) {
	return s.SolveExcluding(origin, target, s.snapshot(), opts...)
}

// SolveExcluding is Solve with an explicit exception set; the Solver's own
// set is ignored. exceptions may be nil and is only read.
//
// Complexity: O(L·W) distance checks per side in the worst case, where W is
// the number of same-length words and L the number of layers expanded.
// Memory: O(W) per side.
func (s *Solver) SolveExcluding(origin, target string, exceptions ExceptionSet, opts ...Option) (Path, error) {
	o, err := s.callOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(origin) != len(target) {
		return nil, fmt.Errorf("%w: %q has %d letters, %q has %d",
			ErrLengthMismatch, origin, len(origin), target, len(target))
	}
	if exceptions.Has(origin) || exceptions.Has(target) {
		return nil, fmt.Errorf("%w: endpoint is in the exception set", ErrNoSolution)
	}
	if origin == target {
		return Path{origin}, nil
	}

	pool := s.pool(len(origin), o)
	front := newSide(origin, len(pool), true)
	back := newSide(target, len(pool), true)

	for {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}

		if pos := front.expand(pool, exceptions, back); pos != noParent {
			return join(front, back, front.seen[pos]), nil
		}
		o.OnLayer(SideFront, front.depth, len(front.frontier), len(front.seen))
		if len(front.frontier) == 0 {
			return nil, fmt.Errorf("%w: %s to %s", ErrNoSolution, origin, target)
		}

		if pos := back.expand(pool, exceptions, front); pos != noParent {
			return join(front, back, back.seen[pos]), nil
		}
		o.OnLayer(SideBack, back.depth, len(back.frontier), len(back.seen))
		if len(back.frontier) == 0 {
			return nil, fmt.Errorf("%w: %s to %s", ErrNoSolution, origin, target)
		}
	}
}

// callOptions layers per-call opts over the Solver's Options.
func (s *Solver) callOptions(opts []Option) (Options, error) {
	o := s.opts
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// pool returns the words of length n, shuffled once if o.Randomize is set.
// A per-call seed that differs from the Solver's gets its own stream.
func (s *Solver) pool(n int, o Options) []string {
	words := s.dict.OfLength(n)
	if !o.Randomize {
		return words
	}
	if o.Seed != s.opts.Seed {
		shuffleWords(words, rngFromSeed(o.Seed))
	} else {
		shuffleWords(words, s.callRNG())
	}
	return words
}

// callRNG derives a private stream for one call from the shared base.
func (s *Solver) callRNG() *rand.Rand {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	s.stream++
	return deriveRNG(s.rng, s.stream)
}
