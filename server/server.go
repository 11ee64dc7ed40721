// Package server exposes the ladder solver and interactive sessions over HTTP.
//
// Routes:
//
//	POST   /api/v1/solve                   {origin,target,exclude}
//	GET    /api/v1/largest/{length}
//	GET    /api/v1/words/{word}
//	GET    /api/v1/components/{length}
//	POST   /api/v1/sessions                {origin,target}
//	GET    /api/v1/sessions/{id}
//	DELETE /api/v1/sessions/{id}
//	POST   /api/v1/sessions/{id}/solve
//	POST   /api/v1/sessions/{id}/exclude   {words}
//	POST   /api/v1/sessions/{id}/include   {words}
//	GET    /metrics
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/session"
)

// Server routes HTTP requests to a Solver and a session Store.
type Server struct {
	solver *ladder.Solver
	store  *session.Store
	logger *log.Logger
	router *chi.Mux
}

// New builds a Server and its routes. A nil logger means logrus's standard logger.
func New(solver *ladder.Solver, store *session.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.StandardLogger()
	}
	s := &Server{
		solver: solver,
		store:  store,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Get("/largest/{length}", s.handleLargest)
		r.Get("/words/{word}", s.handleWord)
		r.Get("/components/{length}", s.handleComponents)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleSessionCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleSessionGet)
				r.Delete("/", s.handleSessionDelete)
				r.Post("/solve", s.handleSessionSolve)
				r.Post("/exclude", s.handleSessionExclude)
				r.Post("/include", s.handleSessionInclude)
			})
		})
	})
	r.Handle("/metrics", promhttp.Handler())

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("wordladder: listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("wordladder: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// requestLogger logs one line per request through logrus.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.WithFields(log.Fields{
			"method":  r.Method,
			"path":    r.URL.Path,
			"status":  ww.Status(),
			"elapsed": time.Since(start).String(),
			"req_id":  middleware.GetReqID(r.Context()),
		}).Debug("http request")
	})
}
