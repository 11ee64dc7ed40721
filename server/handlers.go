package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/session"
)

type solveRequest struct {
	Origin  string   `json:"origin"`
	Target  string   `json:"target"`
	Exclude []string `json:"exclude"`
}

type wordsRequest struct {
	Words []string `json:"words"`
}

// ladderResponse is the body for every successful ladder.
type ladderResponse struct {
	Path  ladder.Path `json:"path"`
	Steps int         `json:"steps"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	origin, target := dictionary.Normalize(req.Origin), dictionary.Normalize(req.Target)
	if origin == "" || target == "" {
		writeError(w, badRequest("origin and target are required"))
		return
	}
	exclude := make([]string, len(req.Exclude))
	for i, word := range req.Exclude {
		exclude[i] = dictionary.Normalize(word)
	}

	path, err := s.observe("solve", func() (ladder.Path, error) {
		return s.solver.SolveExcluding(origin, target, ladder.NewExceptionSet(exclude...),
			ladder.WithContext(r.Context()))
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ladderResponse{Path: path, Steps: path.Steps()})
}

func (s *Server) handleLargest(w http.ResponseWriter, r *http.Request) {
	length, err := lengthParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	path, err := s.observe("largest", func() (ladder.Path, error) {
		return s.solver.FindLargestLadder(length, ladder.WithContext(r.Context()))
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ladderResponse{Path: path, Steps: path.Steps()})
}

func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	word := dictionary.Normalize(chi.URLParam(r, "word"))
	writeJSON(w, http.StatusOK, map[string]any{
		"word":   word,
		"exists": s.solver.WordExists(word),
	})
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	length, err := lengthParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	comps, err := s.solver.Components(length, ladder.WithContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"length":     length,
		"words":      s.solver.Dictionary().CountOfLength(length),
		"components": len(comps),
		"sizes":      sizes,
	})
}

func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	origin, target := dictionary.Normalize(req.Origin), dictionary.Normalize(req.Target)
	if origin == "" || target == "" {
		writeError(w, badRequest("origin and target are required"))
		return
	}
	sess, err := s.store.Create(origin, target)
	if err != nil {
		writeError(w, err)
		return
	}
	sessionsLive.Set(float64(s.store.Len()))
	s.logger.WithFields(log.Fields{"session": sess.ID(), "origin": origin, "target": target}).Info("session created")
	writeJSON(w, http.StatusCreated, sess.View())
}

func (s *Server) handleSessionGet(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.View())
}

func (s *Server) handleSessionDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	sessionsLive.Set(float64(s.store.Len()))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSessionSolve(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	s.solveSession(w, r, sess)
}

// handleSessionExclude adds words to the session's exception set and
// re-solves immediately, mirroring "remove this word and try again".
func (s *Server) handleSessionExclude(w http.ResponseWriter, r *http.Request) {
	sess, words, err := s.sessionWords(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := sess.Exclude(words...); err != nil {
		writeError(w, err)
		return
	}
	s.solveSession(w, r, sess)
}

func (s *Server) handleSessionInclude(w http.ResponseWriter, r *http.Request) {
	sess, words, err := s.sessionWords(r)
	if err != nil {
		writeError(w, err)
		return
	}
	sess.Include(words...)
	s.solveSession(w, r, sess)
}

func (s *Server) sessionWords(r *http.Request) (*session.Session, []string, error) {
	sess, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		return nil, nil, err
	}
	var req wordsRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, nil, err
	}
	words := make([]string, 0, len(req.Words))
	for _, word := range req.Words {
		if n := dictionary.Normalize(word); n != "" {
			words = append(words, n)
		}
	}
	return sess, words, nil
}

func (s *Server) solveSession(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	_, err := s.observe("session", func() (ladder.Path, error) {
		return sess.Solve(ladder.WithContext(r.Context()))
	})
	if err != nil && !errors.Is(err, ladder.ErrNoSolution) {
		writeError(w, err)
		return
	}
	// NoSolution is part of the session state here, not a failed request.
	writeJSON(w, http.StatusOK, sess.View())
}

// observe times fn and records its outcome.
func (s *Server) observe(op string, fn func() (ladder.Path, error)) (ladder.Path, error) {
	start := time.Now()
	path, err := fn()
	solveDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	outcome := "ok"
	switch {
	case err == nil:
		ladderSteps.Observe(float64(path.Steps()))
	case errors.Is(err, ladder.ErrNoSolution):
		outcome = "no_solution"
	default:
		outcome = "error"
	}
	solveTotal.WithLabelValues(op, outcome).Inc()

	s.logger.WithFields(log.Fields{
		"op":      op,
		"outcome": outcome,
		"steps":   path.Steps(),
		"elapsed": time.Since(start).String(),
	}).Debug("ladder search")
	return path, err
}

// requestError is a client error detected before reaching the solver.
type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return &requestError{msg: fmt.Sprintf(format, args...)}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		return badRequest("invalid JSON body: %v", err)
	}
	return nil
}

func lengthParam(r *http.Request) (int, error) {
	n, err := strconv.Atoi(chi.URLParam(r, "length"))
	if err != nil || n <= 0 {
		return 0, badRequest("length must be a positive integer")
	}
	return n, nil
}

// writeError maps an error to its status code and kind.
func writeError(w http.ResponseWriter, err error) {
	status, kind := http.StatusInternalServerError, "internal"
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		status, kind = http.StatusBadRequest, "bad_request"
	case errors.Is(err, ladder.ErrLengthMismatch):
		status, kind = http.StatusBadRequest, "length_mismatch"
	case errors.Is(err, session.ErrProtectedWord):
		status, kind = http.StatusBadRequest, "protected_word"
	case errors.Is(err, ladder.ErrNoSolution):
		status, kind = http.StatusNotFound, "no_solution"
	case errors.Is(err, ladder.ErrNoWordsOfLength):
		status, kind = http.StatusNotFound, "no_words_of_length"
	case errors.Is(err, session.ErrNotFound):
		status, kind = http.StatusNotFound, "session_not_found"
	case errors.Is(err, session.ErrFull):
		status, kind = http.StatusTooManyRequests, "sessions_full"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status, kind = http.StatusServiceUnavailable, "canceled"
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
