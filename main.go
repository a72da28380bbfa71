package main

import (
	"fmt"
	"log/slog"
	baseHttp "net/http"
	"os"
	"time"

	"github.com/skillpath/metal/kernel"
	"github.com/skillpath/pkg/endpoint"
	"github.com/skillpath/pkg/portal"
)

func main() {
	if err := run(); err != nil {
		slog.Error("skillpath stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	validate := portal.GetDefaultValidator()

	environment, err := kernel.Ignite("./.env", validate)
	if err != nil {
		return err
	}

	app, err := kernel.MakeApp(environment, validate)
	if err != nil {
		return err
	}

	defer app.CloseLogs()
	defer app.CloseSentry()

	tracer, err := portal.NewTracerProvider(environment)
	if err != nil {
		return fmt.Errorf("could not start tracing: %w", err)
	}

	defer func() {
		if err := tracer.Shutdown(); err != nil {
			slog.Error("tracer shutdown", "error", err)
		}
	}()

	app.Boot()

	addr := environment.Network.GetHostURL()

	server := &baseHttp.Server{
		Addr: addr,
		Handler: endpoint.NewServerHandler(endpoint.ServerHandlerConfig{
			Mux:          app.GetMux(),
			IsProduction: app.IsProduction(),
			DevHost:      environment.Network.DevHost,
			Wrap:         app.GetSentry().Handler.Handle,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      environment.Backend.Timeout * 3,
		IdleTimeout:       60 * time.Second,
	}

	return endpoint.RunServer(addr, server)
}
