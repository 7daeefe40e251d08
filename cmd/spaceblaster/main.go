package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/spaceblaster/spaceblaster/internal/config"
	"github.com/spaceblaster/spaceblaster/internal/logging"
	"github.com/spaceblaster/spaceblaster/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "spaceblaster: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load(config.GetEnv(config.EnvConfigPath, ""))
	if err != nil {
		return err
	}
	seed, err := config.GetEnvInt64(config.EnvSeed, 0)
	if err != nil {
		return err
	}

	// stdout belongs to the game, so logs go to a file or nowhere.
	logFile, err := logging.OpenFile(config.GetEnv(config.EnvLogFile, ""))
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger, err := logging.New(logFile, config.GetEnv(config.EnvLogLevel, "info"), "spaceblaster")
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "width", settings.View.Width, "height", settings.View.Height, "enemies", len(settings.Enemies))
	err = loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Settings: settings,
		Logger:   logger,
		Seed:     seed,
	})
	logger.Info("stopped", "err", err)
	return err
}
