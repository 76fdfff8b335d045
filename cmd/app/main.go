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

	"dispatch/cmd"
	"dispatch/internal/adapters/in/cli"
	"dispatch/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	logger := logging.New(os.Stderr, configs.LogLevel, configs.LogFormat)

	app, err := cmd.NewCompositionRoot(ctx, configs, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Failed to close publishers", "error", err)
		}
	}()

	if err = app.Preload(ctx); err != nil {
		log.Fatalf("Error loading preregistered accounts: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := startWebServer(app, configs.HTTPPort)

	shell := cli.NewShell(app.CreateShellHandlers(), app.CityMap(), os.Stdin, os.Stdout)
	done := make(chan error, 1)
	go func() { done <- shell.Run(ctx) }()

	select {
	case err = <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Command interpreter stopped", "error", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to stop web server", "error", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	app.CreateHTTPServer().Register(e, app.MetricsHandler())

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Error(err)
		}
	}()
	return e
}
