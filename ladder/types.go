// Package ladder provides tunable options and error definitions
// for word-ladder searches over a Dictionary.
package ladder

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for ladder searches.
var (
	// ErrLengthMismatch is returned when origin and target differ in length.
	ErrLengthMismatch = errors.New("ladder: origin and target lengths differ")

	// ErrNoSolution is returned when both search waves are exhausted without meeting.
	ErrNoSolution = errors.New("ladder: there is no solution")

	// ErrNoWordsOfLength is returned when the dictionary has no word of the requested length.
	ErrNoWordsOfLength = errors.New("ladder: no words of requested length")

	// ErrDictionaryNil is returned if a nil dictionary pointer is passed.
	ErrDictionaryNil = errors.New("ladder: dictionary is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")
)

// Side names the search wave a layer event belongs to.
type Side int

const (
	// SideFront is the wave rooted at the origin word.
	SideFront Side = iota
	// SideBack is the wave rooted at the target word.
	SideBack
	// SideSweep is the untracked first pass of the diameter search.
	SideSweep
	// SideTrace is the parent-tracking second pass of the diameter search.
	SideTrace
)

// String returns a lowercase name for s.
func (s Side) String() string {
	switch s {
	case SideFront:
		return "front"
	case SideBack:
		return "back"
	case SideSweep:
		return "sweep"
	case SideTrace:
		return "trace"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Option configures a Solver via functional arguments.
// If an Option is invalid it is recorded internally and surfaced
// as ErrOptionViolation by NewSolver.
type Option func(*Options)

// Options holds parameters and callbacks to customize a Solver.
type Options struct {
	// Ctx allows cancellation and deadlines. It is checked once per layer.
	Ctx context.Context

	// Randomize shuffles the same-length word list once per call, which
	// changes which of several equally short ladders is returned.
	Randomize bool

	// Seed fixes the shuffle stream. Zero means a time-derived seed.
	Seed int64

	// OnLayer is called after every completed layer expansion with the
	// wave, its depth, the size of the new frontier and the seen count.
	OnLayer func(side Side, depth, frontier, seen int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - Context.Background()
//   - deterministic dictionary order (Randomize == false)
//   - no-op OnLayer hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Randomize: false,
		Seed:      0,
		OnLayer:   func(Side, int, int, int) {},
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRandomize enables or disables per-call shuffling of the word list.
func WithRandomize(on bool) Option {
	return func(o *Options) {
		o.Randomize = on
	}
}

// WithSeed enables shuffling with a deterministic stream.
//
//	seed > 0: reproducible shuffles
//	seed == 0: time-derived seed
//	seed < 0: invalid option → ErrOptionViolation
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed < 0 {
			o.err = fmt.Errorf("%w: seed cannot be negative (%d)", ErrOptionViolation, seed)
			return
		}
		o.Randomize = true
		o.Seed = seed
	}
}

// WithOnLayer registers a callback run after each layer expansion.
func WithOnLayer(fn func(side Side, depth, frontier, seen int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}
