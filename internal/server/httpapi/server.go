// Package httpapi exposes the account and leaderboard operations over HTTP,
// mirroring the paths the game client calls.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/reddsec/scoreboard/internal/logging"
	"github.com/reddsec/scoreboard/internal/server/config"
)

// Server wires the chi router, middleware, and handlers around the services.
type Server struct {
	accounts accountService
	scores   scoreService
	ping     func(context.Context) error
	logger   logging.Logger
	httpSrv  *http.Server
}

// NewServer builds the router. ping is consulted by the health endpoint and
// may be nil. Preflight OPTIONS requests finish in the CORS middleware
// before the origin guard runs, so the browser can always read the
// preflight response.
func NewServer(cfg *config.Config, accounts accountService, scores scoreService, ping func(context.Context) error, logger logging.Logger) *Server {
	s := &Server{accounts: accounts, scores: scores, ping: ping, logger: logger}

	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(originGuard(cfg.PrimaryOrigin, cfg.AllowedOrigins, logger))

	r.Get("/healthz", s.handleHealthz)
	r.Get("/me", s.handleMe)
	r.Get("/", s.handleScores)
	r.Post("/", s.handleSubmitScore)
	r.Post("/signup", s.handleSignup)
	r.Post("/verify", s.handleVerify)
	r.Post("/login", s.handleLogin)
	r.Post("/update-username", s.handleRename)

	s.httpSrv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// ListenAndServe blocks serving requests until Shutdown is called or the
// listener fails.
func (s *Server) ListenAndServe() error {
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
