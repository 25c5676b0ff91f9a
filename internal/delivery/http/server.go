// Package http hosts the echo server exposing the wallet and link APIs.
package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"wallet/config"
	"wallet/internal/delivery"
	httpmiddleware "wallet/internal/delivery/http/middleware"
	"wallet/internal/delivery/http/router"
	"wallet/internal/delivery/http/validator"
	deliverymiddleware "wallet/internal/delivery/middleware"
	"wallet/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	ErrorMW      *httpmiddleware.ErrorMiddleware
	RouterParams router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the API server. Request IDs are attached before anything
// that logs so every line carries one.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = params.ErrorMW.HandleHTTPError

	e.Use(slogecho.New(params.Logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(deliverymiddleware.NewRequestIDMiddleware(params.Logger).Process)

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: e,
	}
	params.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", addr))

	return errors.Wrap(s.server.Start(addr), "failed to serve http")
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
