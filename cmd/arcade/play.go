package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-arcade/internal/platform/tui"
	"github.com/vovakirdan/space-arcade/internal/registry"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the given mode.

Controls:
  W/A/S/D, arrows  - Move
  F/Space          - Fire
  P                - Pause / resume
  R                - Restart (after game over)
  Esc/B            - Leave (when paused or over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy   - Slow spawns, gentle level ramp
  normal - Default rules
  hard   - Dense spawns, harder enemies
  fixed  - Spawn rate never increases

Examples:
  arcade play shooter
  arcade play shooter --difficulty easy
  arcade play shooter_blitz --seed 7
  arcade play shooter --config ./my-shooter.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available modes)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	if _, err := tui.Run(game, store, runtimeConfig(width, height), tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openStore opens the run database, or returns nil so play continues
// without recording.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		logger.Warn("run database unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
