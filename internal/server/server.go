package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/robfig/cron/v3"

	"github.com/dmitrymomot/sheetlocale/internal/exporter"
	"github.com/dmitrymomot/sheetlocale/pkg/health"
	"github.com/dmitrymomot/sheetlocale/pkg/locale"
	"github.com/dmitrymomot/sheetlocale/pkg/logger"
)

// Default server timeouts.
const (
	defaultAddress           = ":8080"
	defaultRequestTimeout    = 60 * time.Second
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 90 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 30 * time.Second
)

// Service is the part of the exporter the server depends on.
type Service interface {
	Run(ctx context.Context, source string) (*exporter.Report, error)
	Render(ctx context.Context, source, lang, encoding string) ([]byte, locale.Encoder, error)
	Languages(ctx context.Context, source string) ([]string, error)
}

var _ Service = (*exporter.Exporter)(nil)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAddress sets the listen address. Default: ":8080".
func WithAddress(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.address = addr
		}
	}
}

// WithChecks registers readiness checks served on /health/ready.
func WithChecks(checks health.Checks) Option {
	return func(s *Server) {
		s.checks = checks
	}
}

// WithSchedule runs an export on a cron schedule ("*/15 * * * *" or "@every 10m").
func WithSchedule(spec string) Option {
	return func(s *Server) {
		s.schedule = spec
	}
}

// WithRequestTimeout bounds a single request. Default: 60 seconds.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.requestTimeout = d
		}
	}
}

// WithShutdownTimeout bounds graceful shutdown. Default: 30 seconds.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithShutdownHook registers a function run after the HTTP server stops.
func WithShutdownHook(hook func(context.Context) error) Option {
	return func(s *Server) {
		if hook != nil {
			s.shutdownHooks = append(s.shutdownHooks, hook)
		}
	}
}

// Server renders locale documents for one configured sheet.
type Server struct {
	svc             Service
	logger          *slog.Logger
	checks          health.Checks
	cron            *cron.Cron
	router          chi.Router
	source          string
	address         string
	schedule        string
	shutdownHooks   []func(context.Context) error
	requestTimeout  time.Duration
	shutdownTimeout time.Duration
	exportMu        sync.Mutex
}

// New builds a Server for source.
func New(svc Service, source string, opts ...Option) (*Server, error) {
	if svc == nil {
		return nil, ErrNilService
	}

	s := &Server{
		svc:             svc,
		source:          source,
		logger:          logger.NewNope(),
		address:         defaultAddress,
		requestTimeout:  defaultRequestTimeout,
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.schedule != "" {
		if err := s.setupCron(); err != nil {
			return nil, err
		}
	}

	s.router = s.routes()
	return s, nil
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(s.checks, health.WithLogger(s.logger)))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(s.requestTimeout))

		r.Get("/languages", s.handleLanguages)
		r.Get("/locales", s.handleNegotiatedLocale)
		r.Get("/locales/{lang}", s.handleLocale)
		r.Post("/export", s.handleExport)
	})

	return r
}

func (s *Server) setupCron() error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(s.schedule); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidSchedule, s.schedule, err)
	}

	s.cron = cron.New(
		cron.WithParser(parser),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	_, err := s.cron.AddFunc(s.schedule, func() {
		if _, err := s.export(context.Background()); err != nil {
			s.logger.Error("scheduled export failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
	}
	return nil
}

// export runs one export unless another one is in progress.
func (s *Server) export(ctx context.Context) (*exporter.Report, error) {
	if !s.exportMu.TryLock() {
		return nil, ErrExportRunning
	}
	defer s.exportMu.Unlock()

	return s.svc.Run(ctx, s.source)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// RequestIDExtractor adds the chi request id to records logged while serving a request.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := middleware.GetReqID(ctx); id != "" {
			return slog.String("request_id", id), true
		}
		return slog.Attr{}, false
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed", slog.String("error", err.Error()))
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
