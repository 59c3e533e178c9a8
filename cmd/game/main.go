package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/planetoids/internal/config"
	"github.com/tomz197/planetoids/internal/game"
	"github.com/tomz197/planetoids/internal/loop"
	"github.com/tomz197/planetoids/internal/wave"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Logs share the terminal with the game, so they go to a file or nowhere.
	logOut, closeLog, err := config.LogOutput()
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()
	logger := config.NewLogger(logOut, "planetoids")

	desc, err := wave.LoadOrDefault(config.GetEnv(config.EnvWave, ""))
	if err != nil {
		return err
	}
	cfg, err := wave.ConfigFromEnv()
	if err != nil {
		return err
	}
	ctrl, err := game.NewController(desc, cfg, logger)
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	runner := loop.NewRunner(ctrl, bufio.NewReader(os.Stdin), os.Stdout, loop.Options{Logger: logger})
	if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("bye", "high_score", ctrl.HighScore())
	return nil
}
