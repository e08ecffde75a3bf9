package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-arcade/internal/platform/tui"
	"github.com/vovakirdan/space-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a mode picker",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select, Tab for high scores.
Press Esc after a game ends to come back here.

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	cfg := runtimeConfig(width, height)

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			return fmt.Errorf("starting %s: %w", result.GameID, err)
		}

		cfg.Seed = gameSeed()
		logger.Info("starting game", "game", result.GameID, "seed", cfg.Seed)
		back, err := tui.Run(game, store, cfg, tui.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
