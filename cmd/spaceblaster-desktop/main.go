package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaceblaster/spaceblaster/internal/config"
	"github.com/spaceblaster/spaceblaster/internal/logging"
	"github.com/spaceblaster/spaceblaster/internal/loop/desktop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "spaceblaster-desktop: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, err := logging.New(os.Stderr, config.GetEnv(config.EnvLogLevel, "info"), "spaceblaster")
	if err != nil {
		return err
	}
	settings, err := config.Load(config.GetEnv(config.EnvConfigPath, ""))
	if err != nil {
		return err
	}
	seed, err := config.GetEnvInt64(config.EnvSeed, 0)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("opening window", "width", settings.View.Width, "height", settings.View.Height)
	return desktop.Run(ctx, desktop.Options{
		Settings: settings,
		Logger:   logger,
		Seed:     seed,
	})
}
