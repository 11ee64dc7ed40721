// Package session keeps interactive solving state: a fixed origin and
// target plus an exception set the user grows and shrinks between solves
// to route around words they dislike.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/wordladder/ladder"
)

// Sentinel errors for session operations.
var (
	// ErrNotFound is returned for an unknown session ID.
	ErrNotFound = errors.New("session: not found")

	// ErrProtectedWord is returned when asked to exclude the origin or target.
	ErrProtectedWord = errors.New("session: origin and target cannot be excluded")

	// ErrFull is returned when the store already holds its maximum.
	ErrFull = errors.New("session: store is full")
)

// Solver is the part of ladder.Solver a session needs.
type Solver interface {
	SolveExcluding(origin, target string, exceptions ladder.ExceptionSet, opts ...ladder.Option) (ladder.Path, error)
}

// Session is one origin/target pair with its own exception set.
// All methods are safe for concurrent use.
type Session struct {
	id      string
	origin  string
	target  string
	created time.Time
	solver  Solver

	mu         sync.Mutex
	exceptions ladder.ExceptionSet
	gen        uint64 // bumped on every exception-set change
	last       ladder.Path
	solves     int
}

// View is a JSON-friendly snapshot of a Session.
type View struct {
	ID         string      `json:"id"`
	Origin     string      `json:"origin"`
	Target     string      `json:"target"`
	Exceptions []string    `json:"exceptions"`
	Last       ladder.Path `json:"last,omitempty"`
	Solves     int         `json:"solves"`
	Created    time.Time   `json:"created"`
}

// New starts a session. origin and target must have the same length.
func New(solver Solver, origin, target string) (*Session, error) {
	if len(origin) != len(target) {
		return nil, fmt.Errorf("%w: %q has %d letters, %q has %d",
			ladder.ErrLengthMismatch, origin, len(origin), target, len(target))
	}
	return &Session{
		id:         uuid.NewString(),
		origin:     origin,
		target:     target,
		created:    time.Now(),
		solver:     solver,
		exceptions: ladder.NewExceptionSet(),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Origin returns the first word of every ladder in this session.
func (s *Session) Origin() string { return s.origin }

// Target returns the last word of every ladder in this session.
func (s *Session) Target() string { return s.target }

// Solve searches with a snapshot of the current exception set and records
// the result as the last ladder. A failed solve clears the last ladder.
// If the exception set changed while the search ran, the result is still
// returned but not recorded. opts are passed to the solver for this call.
func (s *Session) Solve(opts ...ladder.Option) (ladder.Path, error) {
	s.mu.Lock()
	snap := s.exceptions.Clone()
	gen := s.gen
	s.mu.Unlock()

	path, err := s.solver.SolveExcluding(s.origin, s.target, snap, opts...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.solves++
	if gen != s.gen {
		return path, err
	}
	if err != nil {
		s.last = nil
		return nil, err
	}
	s.last = path
	return path, nil
}

// Exclude adds words to the exception set. Nothing is added if any of them
// is the origin or the target. The last ladder is dropped since it may now
// contain an excluded word.
func (s *Session) Exclude(words ...string) error {
	for _, w := range words {
		if w == s.origin || w == s.target {
			return fmt.Errorf("%w: %s", ErrProtectedWord, w)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exceptions.Add(words...)
	s.gen++
	s.last = nil
	return nil
}

// Include removes words from the exception set.
func (s *Session) Include(words ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exceptions.Remove(words...)
	s.gen++
	s.last = nil
}

// Reset empties the exception set.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exceptions = ladder.NewExceptionSet()
	s.gen++
	s.last = nil
}

// Exceptions returns the excluded words in ascending order.
func (s *Session) Exceptions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exceptions.Words()
}

// Last returns the most recent successful ladder, or nil.
func (s *Session) Last() ladder.Path {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// View returns a snapshot of s.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		ID:         s.id,
		Origin:     s.origin,
		Target:     s.target,
		Exceptions: s.exceptions.Words(),
		Last:       s.last,
		Solves:     s.solves,
		Created:    s.created,
	}
}
