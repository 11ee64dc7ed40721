package session_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/session"
)

// SessionSuite walks through the interactive exclude-and-resolve loop.
type SessionSuite struct {
	suite.Suite
	store *session.Store
}

func (s *SessionSuite) SetupTest() {
	dict := ladder.NewDictionary([]string{
		"COLD", "CORD", "CARD", "WARD", "WARM", "WORD", "WORM",
	})
	solver, err := ladder.NewSolver(dict)
	require.NoError(s.T(), err)
	s.store = session.NewStore(solver, 2)
}

// TestRouteAround excludes words from successive ladders until none is left.
func (s *SessionSuite) TestRouteAround() {
	sess, err := s.store.Create("COLD", "WARM")
	require.NoError(s.T(), err)
	_, err = uuid.Parse(sess.ID())
	require.NoError(s.T(), err, "ID must be a UUID")

	path, err := sess.Solve()
	require.NoError(s.T(), err)
	require.Equal(s.T(), ladder.Path{"COLD", "CORD", "CARD", "WARD", "WARM"}, path)

	require.NoError(s.T(), sess.Exclude("CARD"))
	require.Nil(s.T(), sess.Last(), "excluding invalidates the last ladder")
	path, err = sess.Solve()
	require.NoError(s.T(), err)
	require.False(s.T(), path.Contains("CARD"))
	require.True(s.T(), path.Valid())

	require.NoError(s.T(), sess.Exclude("WORD"))
	_, err = sess.Solve()
	require.ErrorIs(s.T(), err, ladder.ErrNoSolution)
	require.Nil(s.T(), sess.Last())

	sess.Include("CARD")
	path, err = sess.Solve()
	require.NoError(s.T(), err)
	require.Equal(s.T(), path, sess.Last())
	require.Equal(s.T(), []string{"WORD"}, sess.Exceptions())

	v := sess.View()
	require.Equal(s.T(), 4, v.Solves)
	require.Equal(s.T(), "COLD", v.Origin)
	require.Equal(s.T(), []string{"WORD"}, v.Exceptions)

	sess.Reset()
	require.Empty(s.T(), sess.Exceptions())
}

// TestProtectedWords refuses to exclude the endpoints and adds nothing.
func (s *SessionSuite) TestProtectedWords() {
	sess, err := s.store.Create("COLD", "WARM")
	require.NoError(s.T(), err)

	err = sess.Exclude("CARD", "WARM")
	require.ErrorIs(s.T(), err, session.ErrProtectedWord)
	require.Empty(s.T(), sess.Exceptions())

	err = sess.Exclude("COLD")
	require.ErrorIs(s.T(), err, session.ErrProtectedWord)
}

// TestStoreLifecycle covers Get, Delete, capacity and length checks.
func (s *SessionSuite) TestStoreLifecycle() {
	_, err := s.store.Create("COLD", "WARMER")
	require.ErrorIs(s.T(), err, ladder.ErrLengthMismatch)

	a, err := s.store.Create("COLD", "WARM")
	require.NoError(s.T(), err)
	_, err = s.store.Create("CARD", "WORM")
	require.NoError(s.T(), err)
	_, err = s.store.Create("WORD", "WARD")
	require.ErrorIs(s.T(), err, session.ErrFull)
	require.Equal(s.T(), 2, s.store.Len())

	got, err := s.store.Get(a.ID())
	require.NoError(s.T(), err)
	require.Same(s.T(), a, got)

	require.NoError(s.T(), s.store.Delete(a.ID()))
	_, err = s.store.Get(a.ID())
	require.ErrorIs(s.T(), err, session.ErrNotFound)
	require.ErrorIs(s.T(), s.store.Delete(a.ID()), session.ErrNotFound)
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

// stubSolver records the exception set it was handed.
type stubSolver struct {
	got ladder.ExceptionSet
}

func (s *stubSolver) SolveExcluding(origin, target string, ex ladder.ExceptionSet, _ ...ladder.Option) (ladder.Path, error) {
	s.got = ex
	return ladder.Path{origin, target}, nil
}

// TestSolve_PassesSnapshot checks the solver receives a copy, not the live set.
func TestSolve_PassesSnapshot(t *testing.T) {
	stub := &stubSolver{}
	sess, err := session.New(stub, "AB", "AC")
	require.NoError(t, err)
	require.NoError(t, sess.Exclude("XX"))

	_, err = sess.Solve()
	require.NoError(t, err)
	require.NoError(t, sess.Exclude("YY"))
	assert.True(t, stub.got.Has("XX"))
	assert.False(t, stub.got.Has("YY"))
}

// gatedSolver blocks inside SolveExcluding until release is closed and
// then returns path.
type gatedSolver struct {
	entered chan struct{}
	release chan struct{}
	path    ladder.Path
}

func newGatedSolver(path ladder.Path) *gatedSolver {
	return &gatedSolver{
		entered: make(chan struct{}),
		release: make(chan struct{}),
		path:    path,
	}
}

func (g *gatedSolver) SolveExcluding(_, _ string, _ ladder.ExceptionSet, _ ...ladder.Option) (ladder.Path, error) {
	close(g.entered)
	<-g.release
	return g.path, nil
}

// TestSolve_ExcludeDuringSearch checks that a ladder computed against an
// older exception set is not recorded as the last ladder.
func TestSolve_ExcludeDuringSearch(t *testing.T) {
	for _, tc := range []struct {
		name   string
		change func(*testing.T, *session.Session)
	}{
		{"exclude", func(t *testing.T, s *session.Session) { require.NoError(t, s.Exclude("CARD")) }},
		{"include", func(_ *testing.T, s *session.Session) { s.Include("WORD") }},
		{"reset", func(_ *testing.T, s *session.Session) { s.Reset() }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			stub := newGatedSolver(ladder.Path{"COLD", "CORD", "CARD", "WARD", "WARM"})
			sess, err := session.New(stub, "COLD", "WARM")
			require.NoError(t, err)

			done := make(chan ladder.Path)
			go func() {
				path, _ := sess.Solve()
				done <- path
			}()

			<-stub.entered
			tc.change(t, sess)
			close(stub.release)
			path := <-done

			require.Equal(t, stub.path, path, "the caller still gets its result")
			v := sess.View()
			assert.Nil(t, v.Last, "stale ladder must not be recorded")
			assert.Equal(t, 1, v.Solves)
		})
	}
}

// TestSolve_PassesOptions checks per-call options reach the solver, here a
// cancelled context.
func TestSolve_PassesOptions(t *testing.T) {
	solver, err := ladder.NewSolver(ladder.NewDictionary([]string{
		"COLD", "CORD", "CARD", "WARD", "WARM",
	}))
	require.NoError(t, err)
	sess, err := session.New(solver, "COLD", "WARM")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sess.Solve(ladder.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, sess.Last())

	path, err := sess.Solve()
	require.NoError(t, err)
	assert.Equal(t, path, sess.Last())
}
