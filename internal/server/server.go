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
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"docket/internal/domain"
	"docket/internal/log"
)

// Config controls the HTTP server.
type Config struct {
	Addr string
	// ValidateLimit requests per ValidateWindow are allowed per client IP on
	// the validate endpoint.
	ValidateLimit  int
	ValidateWindow time.Duration
	// MaxBodyBytes caps the size of a document posted for validation.
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the settings docketd uses when none are given.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ValidateLimit:   60,
		ValidateWindow:  time.Minute,
		MaxBodyBytes:    4 << 20,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Server serves a court registry over HTTP.
type Server struct {
	courts domain.JurisdictionService
	cfg    Config
	logger zerolog.Logger
}

// New constructs a Server. Zero fields in cfg take their DefaultConfig value.
func New(courts domain.JurisdictionService, cfg Config) *Server {
	def := DefaultConfig()
	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	if cfg.ValidateLimit <= 0 {
		cfg.ValidateLimit = def.ValidateLimit
	}
	if cfg.ValidateWindow <= 0 {
		cfg.ValidateWindow = def.ValidateWindow
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = def.MaxBodyBytes
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = def.ShutdownTimeout
	}
	return &Server{courts: courts, cfg: cfg, logger: log.WithComponent("server")}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.accessLog)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/courts", func(r chi.Router) {
		r.Get("/", s.listCourts)
		r.Get("/{id}", s.getCourt)
		r.With(s.validateLimit()).Post("/{id}/validate", s.validate)
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.Addr).Msg("docketd listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()
	s.logger.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) listCourts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.courts.ListCourts())
}

func (s *Server) getCourt(w http.ResponseWriter, r *http.Request) {
	id := domain.CourtID(chi.URLParam(r, "id"))
	p, ok := s.courts.GetCourt(id)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown court: "+id.String())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	id := domain.CourtID(chi.URLParam(r, "id"))
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "document too large")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	report, err := s.courts.Validate(r.Context(), id, string(body))
	if err != nil {
		s.logger.Error().Err(err).Str("court", id.String()).Msg("validate failed")
		writeError(w, http.StatusInternalServerError, "validation failed")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) validateLimit() func(http.Handler) http.Handler {
	window := s.cfg.ValidateWindow
	return httprate.Limit(
		s.cfg.ValidateLimit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Retry-After", strconv.Itoa(max(1, int(window.Seconds()))))
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		}),
	)
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
