package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/adrianliechti/smartsearch/config"
	"github.com/adrianliechti/smartsearch/pkg/otel"
	"github.com/adrianliechti/smartsearch/server"
)

func main() {
	configFlag := flag.String("config", os.Getenv("SMARTSEARCH_CONFIG"), "config file")

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := otel.Setup(ctx, "smartsearch")

	if err != nil {
		panic(err)
	}

	defer shutdown(context.Background())

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.Info("credentials", "keys", cfg.Keys.Presence())

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	if err := s.ListenAndServe(ctx); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
