// Package server exposes report generation over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/clipdeck-go/internal/config"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/output"
)

// Route paths.
const (
	RouteStaged   = "/gerar-pptx"
	RouteInMemory = "/upload_excel"
	RouteHealth   = "/healthz"
	RouteMetrics  = "/metrics"
)

// Server serves the report routes.
type Server struct {
	cfg    config.ServerConfig
	opts   clipdeck.Options
	logger *slog.Logger
	echo   *echo.Echo

	// StagingDir is the parent of per-request temporary directories.
	// Empty means os.TempDir.
	StagingDir string
}

// New builds a server generating reports with opts.
func New(cfg config.ServerConfig, opts clipdeck.Options, logger *slog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		opts:   opts,
		logger: logger,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == RouteHealth
		},
		LogStatus:    true,
		LogURI:       true,
		LogError:     true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			rctx := c.Request().Context()
			if v.Error == nil {
				logger.InfoContext(rctx, "request completed",
					"request_id", v.RequestID,
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				logger.ErrorContext(rctx, "request failed",
					"request_id", v.RequestID,
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))
	e.Use(middleware.Recover())
	if cfg.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.BodyLimit))
	}

	e.POST(RouteStaged, s.handleStaged)
	e.POST(RouteInMemory, s.handleInMemory)
	e.GET(RouteHealth, s.handleHealth)
	e.GET(RouteMetrics, echo.WrapHandler(promhttp.Handler()))

	s.echo = e
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves on cfg.Addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.echo.Server.ReadTimeout = s.cfg.ReadTimeout

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.InfoContext(ctx, "starting clipdeck server", "address", s.cfg.Addr)
		if err := s.echo.Start(s.cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		s.logger.Info("shutting down server...")
		timeout := s.cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// handleError answers errors raised before a report handler runs, such as
// an oversized body, in the error envelope of the report route.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		s.echo.DefaultHTTPErrorHandler(err, c)
		return
	}

	var enc output.Encoder
	route := c.Request().URL.Path
	switch route {
	case RouteStaged:
		enc = output.NewBase64Envelope()
	case RouteInMemory:
		enc = output.NewDirectDownload()
	default:
		s.echo.DefaultHTTPErrorHandler(err, c)
		return
	}

	msg := http.StatusText(he.Code)
	if he.Code == http.StatusRequestEntityTooLarge {
		msg = msgTooLarge
	} else if m, ok := he.Message.(string); ok && m != "" {
		msg = m
	}
	if rerr := s.reject(c, route, enc, time.Now(), he.Code, msg); rerr != nil {
		s.echo.DefaultHTTPErrorHandler(rerr, c)
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
