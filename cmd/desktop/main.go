package main

import (
	"os"

	"github.com/tomz197/planetoids/internal/config"
	"github.com/tomz197/planetoids/internal/desktop"
	"github.com/tomz197/planetoids/internal/game"
	"github.com/tomz197/planetoids/internal/wave"
)

func main() {
	logger := config.NewLogger(os.Stderr, "planetoids")

	desc, err := wave.LoadOrDefault(config.GetEnv(config.EnvWave, ""))
	if err != nil {
		logger.Fatal("load wave", "err", err)
	}
	cfg, err := wave.ConfigFromEnv()
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	ctrl, err := game.NewController(desc, cfg, logger)
	if err != nil {
		logger.Fatal("create game", "err", err)
	}

	if err := desktop.Run(ctrl, logger); err != nil {
		logger.Fatal("window", "err", err)
	}
	logger.Info("bye", "high_score", ctrl.HighScore())
}
