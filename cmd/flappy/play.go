package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// loadGame loads the configuration and builds the sprite atlas.
func loadGame() (config.FlappyConfig, *sprite.Atlas, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, nil, err
	}
	atlas, err := sprite.NewAtlas(cfg.Sprites.Scale)
	if err != nil {
		return config.FlappyConfig{}, nil, fmt.Errorf("build sprites: %w", err)
	}
	return cfg, atlas, nil
}

// tickRate returns the --fps override or the configured rate.
func tickRate(cfg config.FlappyConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return cfg.Physics.TickRate
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, atlas, err := loadGame()
	if err != nil {
		return err
	}

	// Logs must not reach the terminal while the alt screen is active.
	out, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	logger, err := newLogger(out, flagLogLevel)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = tickRate(cfg)
	rt.Seed = flagSeed

	game := flappy.New(cfg, atlas, logger)
	if err := tui.Run(game, rt, logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
