// Package server wires the echo router for the control tower shell.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"control_tower_echo/internal/config"
	"control_tower_echo/internal/handlers"
	appMiddleware "control_tower_echo/internal/middleware"
	"control_tower_echo/internal/services"
	"control_tower_echo/internal/shell"
)

// New builds the echo instance with every route registered
func New(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	site := shell.Metadata{Title: cfg.SiteTitle, Description: cfg.SiteDescription}
	pageShell := shell.New(site, shell.DefaultTypography())

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware(cfg.ServiceName)))
	if len(cfg.CORSOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.CORSOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		}))
	}

	e.HTTPErrorHandler = appMiddleware.NewErrorHandler(pageShell)

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(pageShell, cfg.DashboardIntent(), cfg.HandoffMode)
	healthHandler := handlers.NewHealthHandler()

	e.Match([]string{http.MethodGet, http.MethodHead}, "/", pageHandler.Landing)
	e.GET("/health", healthHandler.Health)

	// The dashboard and its assets; missing files fall through to the 404 page
	e.Static("/", cfg.StaticDir)

	return e
}

// Run serves until ctx is cancelled, then shuts down within cfg.ShutdownTimeout
func Run(ctx context.Context, cfg config.Config) error {
	shutdownTracing, err := services.InitTracing(ctx, cfg.ServiceName, cfg.OTelEndpoint, cfg.OTelEnabled)
	if err != nil {
		log.Printf("Warning: tracing initialization failed: %v", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Printf("Tracing shutdown error: %v", err)
		}
	}()

	if file, err := services.CheckDashboardAsset(cfg.StaticDir, cfg.DashboardIntent()); err != nil {
		log.Printf("Warning: %v", err)
	} else {
		log.Printf("Dashboard asset found at %s", file)
	}

	e := New(cfg)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
