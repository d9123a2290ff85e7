package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/quichefs/quiche/config"
	"github.com/quichefs/quiche/fileserver"
	"github.com/quichefs/quiche/filesystem"
	"github.com/quichefs/quiche/http"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const name = "github.com/quichefs/quiche"

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context) (err error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	otelShutdown, err := setupOTelSDK(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, otelShutdown(context.Background()))
	}()

	configPath := os.Getenv("QUICHE_CONFIG")
	if configPath == "" {
		configPath = "quiche.yaml"
	}

	var cfg config.Config
	if err := config.Load(configPath, &cfg); err != nil {
		return err
	}

	logger := otelslog.NewLogger(name)

	handler := http.RecoverMiddleware(logger)(
		fileserver.NewHandler(filesystem.NewLocalFilesystem(cfg.Server.Root)))

	server, err := http.NewServer("quiche", handler)
	if err != nil {
		return err
	}
	server.Logger = logger

	serverErrCh := make(chan error, 1)

	go func() {
		log.Printf("Listening and serving on: %s", cfg.Server.Addr)
		serverErrCh <- server.ListenAndServe(ctx, cfg.Server.Addr)
	}()

	select {
	case err = <-serverErrCh:
		return err
	case <-ctx.Done():
		stop()
	}

	return server.Shutdown(context.Background())
}
