package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"smartsignals/internal/engine"
	"smartsignals/internal/logger"
	"smartsignals/internal/store"
)

// Version is reported by the liveness endpoint.
const Version = "1.0.0"

// Server wraps the Echo HTTP server around the signal engine.
type Server struct {
	echo *echo.Echo
	cfg  *store.Config
	eng  *engine.Engine
}

// New creates the HTTP server and registers all routes.
func New(cfg *store.Config, eng *engine.Engine) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())

	if cfg.Server.CORS {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{http.MethodGet, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	s := &Server{echo: e, cfg: cfg, eng: eng}

	e.GET("/", s.liveness)
	e.GET("/api/signal", s.signal)
	e.GET("/api/signal/last", s.lastSignal)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return s
}

// liveness reports service identity and version.
func (s *Server) liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": s.cfg.Name,
		"version": Version,
	})
}

// signal runs one full computation cycle and returns the aggregated payload.
// The engine degrades on missing data instead of failing, so this handler
// always answers 200.
func (s *Server) signal(c echo.Context) error {
	payload := s.eng.Compute(c.Request().Context())
	return c.JSON(http.StatusOK, payload)
}

// lastSignal serves the cached payload without recomputing.
func (s *Server) lastSignal(c echo.Context) error {
	return c.JSON(http.StatusOK, s.eng.Last())
}

// Start starts the HTTP server in the background.
func (s *Server) Start(ctx context.Context) {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	go func() {
		logger.Info(ctx, "HTTP server listening", "addr", addr)
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorWithErr(ctx, "HTTP server error", err)
		}
	}()
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	logger.Info(ctx, "HTTP server stopped")
	return nil
}

// Echo returns the underlying Echo instance, for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
