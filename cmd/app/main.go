package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"packing/cmd"
	httpin "packing/internal/adapters/in/http"
	"packing/internal/adapters/out/oes"
	"packing/internal/adapters/out/postgres"
	"packing/internal/core/ports"
	"packing/internal/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		appLog := logger.Component("app")
		appLog.Error().Err(err).Msg("packing service stopped")
		os.Exit(1)
	}
}

func run() error {
	config, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	logger.Init(config.LogLevel, config.LogPretty)
	appLog := logger.Component("app")

	db, err := postgres.Open(config.PostgresDSN())
	if err != nil {
		return err
	}
	if err = postgres.Migrate(db); err != nil {
		return err
	}

	var orders ports.OrderProvider
	if config.OESEnabled() {
		oesDB, err := oes.Open(config.OESDSN())
		if err != nil {
			return err
		}
		orders = oes.NewClient(oesDB)
		appLog.Info().Str("host", config.OESHost).Msg("order-entry import enabled")
	} else {
		appLog.Warn().Msg("OES_HOST not set, packs can only start for imported orders")
	}

	app := cmd.NewCompositionRoot(config, db, orders)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	if config.JWTSecret == "" {
		appLog.Warn().Msg("JWT_SECRET not set, requests are anonymous")
	}
	e := httpin.NewEcho(httpin.JWTAuth(config.JWTSecret))
	e.Logger.SetLevel(log.WARN)
	app.CreateHTTPServer().Register(e)

	return startWebServer(e, config.HTTPPort)
}

// startWebServer blocks until the server fails or the process is signalled,
// then drains in-flight requests.
func startWebServer(e *echo.Echo, port string) error {
	errCh := make(chan error, 1)
	go func() {
		appLog := logger.Component("app")
		appLog.Info().Str("port", port).Msg("http server listening")
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
