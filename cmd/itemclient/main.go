package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samvad-hq/samvad-item-client/internal/app"
	"github.com/samvad-hq/samvad-item-client/internal/config"
	"github.com/samvad-hq/samvad-item-client/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "item client start failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("item client starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server, err := app.NewServer(cfg, log)
	if err != nil {
		logger.ErrorObj("failed to initialize item client", "error", err)
		return err
	}

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("item client run: %w", err)
	}

	return nil
}
