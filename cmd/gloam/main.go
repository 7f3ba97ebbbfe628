// Gloam is a small first-person rendering demo: it imports glTF scenes,
// flattens them into GPU buffers and walks you around the result.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/gloamdev/gloam/internal/config"
	"github.com/gloamdev/gloam/internal/game"
	"github.com/gloamdev/gloam/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting gloam",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Strings("models", cfg.Assets.Models),
	)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer g.Close()

	g.Run()

	logger.Info("shutting down")
}
