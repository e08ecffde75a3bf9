// arcade is a terminal space shooter: dodge asteroids, shoot enemies and
// collect power-ups on a 10x20 field.
//
// Usage:
//
//	arcade list              - List available game modes
//	arcade play <mode>       - Play a mode
//	arcade menu              - Pick modes interactively
//	arcade run [mode]        - Simulate a run headlessly from scripted input
//	arcade serve             - Start SSH server for remote play
//	arcade scores <mode>     - Show the best runs for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 20, env ARCADE_FPS)
//	--seed <value>  - Set RNG seed for reproducible runs; any value, 0 included (env ARCADE_SEED)
//	--db <path>     - Set database path (default: ~/.arcade/scores.db, env ARCADE_DB)
//	--log <path>    - Write debug logs to a file (env ARCADE_LOG)
//	--config <path> - Custom game config YAML
//	--difficulty    - Preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/games/shooter"
)

const defaultDBPath = "~/.arcade/scores.db"

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogPath    string
	flagConfig     string
	flagDifficulty string

	// seedFixed is set when --seed or ARCADE_SEED chose the seed.
	seedFixed bool

	// logger is discarded unless --log is set, since the TUI owns the terminal.
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Space Arcade - a terminal space shooter",
	Long: `Space Arcade is a small shooter played on a 10x20 grid in your terminal.
Move your ship, shoot enemies, dodge asteroids and pick up power-ups.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  run      - Headless simulation from scripted input
  serve    - Start SSH server for remote play
  scores   - View the best runs

Examples:
  arcade play shooter
  arcade play shooter_blitz --difficulty hard
  arcade run --seed 42 --ticks 500 --inputs "d,d,f,,f"
  arcade serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (default: a new time-based seed per game)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to run database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup loads .env, fills unset flags from the environment, opens the log
// file and hands config choices to the game package.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("fps") {
		flagFPS = config.EnvInt(config.EnvFPS, flagFPS)
	}
	seedFixed = flags.Changed("seed")
	if !seedFixed {
		flagSeed, seedFixed = config.LookupEnvInt64(config.EnvSeed)
	}
	if !flags.Changed("db") {
		flagDBPath = config.EnvString(config.EnvDBPath, flagDBPath)
	}
	if !flags.Changed("log") {
		flagLogPath = config.EnvString(config.EnvLog, flagLogPath)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "arcade",
		})
	}

	shooter.SetLogger(logger)
	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig builds the runtime settings for a screen of width x height.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     gameSeed(),
	}
}

// gameSeed returns the fixed seed, or a fresh one for every game.
func gameSeed() int64 {
	if seedFixed {
		return flagSeed
	}
	return core.NewSeed()
}
