// Package server exposes the roundup engine over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/brogergvhs/comicrev/internal/roundup"
)

const (
	maxBodyBytes      = 1 << 20
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Engine is the scraping surface the handlers depend on.
type Engine interface {
	Details(ctx context.Context, url string) (roundup.ComicInfo, error)
	Issues(ctx context.Context, url string) (roundup.ComicIssues, error)
	Comics(ctx context.Context, name string) (roundup.PublisherComics, error)
	Publishers() []roundup.Publisher
}

type Options struct {
	Addr string
	// RequestTimeout bounds the upstream work of a single request.
	// Zero means no limit beyond the client's own.
	RequestTimeout time.Duration
	Logger         *slog.Logger
}

type Server struct {
	engine  Engine
	timeout time.Duration
	log     *slog.Logger
	router  *chi.Mux
	http    *http.Server
}

func New(engine Engine, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		engine:  engine,
		timeout: opts.RequestTimeout,
		log:     log,
	}
	s.router = s.routes()

	// The write deadline has to outlive the upstream fetch.
	writeTimeout := 2 * opts.RequestTimeout
	if writeTimeout == 0 {
		writeTimeout = 2 * time.Minute
	}
	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
	return s
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(structuredLogger(s.log))
	r.Use(panicRecovery)
	r.Use(chimw.CleanPath)

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)
	r.Get("/publishers", s.handlePublishers)

	r.Post("/details", s.handleDetails)
	r.Post("/issues", s.handleIssues)
	r.Post("/comics", s.handleComics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorBody{Code: roundup.KindMalformedRequest, Error: "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorBody{Code: roundup.KindMalformedRequest, Error: "method not allowed"})
	})
	return r
}

// Handler returns the routed handler without starting a listener.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.log.Info("listening", slog.String("addr", ln.Addr().String()))

	serveErr := make(chan error, 1)
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down", slog.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
