package session

import "sync"

// Store holds live sessions keyed by ID, up to a fixed maximum.
type Store struct {
	solver Solver
	max    int

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore returns an empty store whose sessions solve with solver.
// max <= 0 means unbounded.
func NewStore(solver Solver, max int) *Store {
	return &Store{
		solver:   solver,
		max:      max,
		sessions: make(map[string]*Session),
	}
}

// Create starts and registers a new session.
func (st *Store) Create(origin, target string) (*Session, error) {
	s, err := New(st.solver, origin, target)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.max > 0 && len(st.sessions) >= st.max {
		return nil, ErrFull
	}
	st.sessions[s.ID()] = s
	return s, nil
}

// Get returns the session with id or ErrNotFound.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete removes the session with id or returns ErrNotFound.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(st.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
