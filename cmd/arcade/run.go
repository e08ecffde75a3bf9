package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/registry"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

var (
	flagTicks   int
	flagInputs  string
	flagReplay  int64
	flagRender  bool
	flagNoSave  bool
	flagVerbose bool
)

var runCmd = &cobra.Command{
	Use:   "run [mode]",
	Short: "Simulate a run without a terminal UI",
	Long: `Run the simulation headlessly for a fixed number of ticks, feeding it
scripted input. With the same seed, inputs and game config the outcome is
always the same.

Inputs are comma-separated ticks; "+" joins several commands in one tick.
Commands: w/a/s/d (move), f (fire), p (pause). Anything else is reported
as invalid input. Ticks past the end of the script get no input.

--replay loads a recorded run (see 'arcade scores' for IDs) and plays its
seed and input timeline again, ignoring --seed. Replays are not recorded.

Examples:
  arcade run --seed 42 --ticks 500
  arcade run shooter_blitz --seed 7 --inputs "d,d,f,,a+f" --render
  arcade run --seed 1 --inputs "f,f,f" --verbose --no-save
  arcade run --replay 12 --render`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&flagTicks, "ticks", 200, "Maximum number of ticks to simulate")
	runCmd.Flags().StringVar(&flagInputs, "inputs", "", "Scripted input, one comma-separated entry per tick")
	runCmd.Flags().Int64Var(&flagReplay, "replay", 0, "Replay the recorded run with this ID")
	runCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final screen")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
	runCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print every game message")
	runCmd.MarkFlagsMutuallyExclusive("replay", "inputs")
}

func runHeadless(cmd *cobra.Command, args []string) error {
	gameID := "shooter"
	if len(args) == 1 {
		gameID = args[0]
	}

	cfg := runtimeConfig(80, 24)
	script := flagInputs
	ticks := flagTicks

	var recorded *storage.Run
	if cmd.Flags().Changed("replay") {
		run, err := loadReplay(flagReplay)
		if err != nil {
			return err
		}
		if len(args) == 1 && run.GameID != gameID {
			return fmt.Errorf("run %d was played on %s, not %s", run.ID, run.GameID, gameID)
		}
		recorded = run
		gameID = run.GameID
		cfg.Seed = run.Seed
		script = run.Inputs
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	out := log.NewWithOptions(os.Stderr, log.Options{Prefix: gameID})
	if flagVerbose {
		out.SetLevel(log.DebugLevel)
	}

	frames := core.ParseScript(script)
	if recorded != nil && !cmd.Flags().Changed("ticks") {
		// Paused ticks are stepped without advancing the tick counter.
		ticks = max(len(frames), recorded.Ticks)
	}

	game.Reset(cfg)
	state := game.State()
	stepped := make([]core.InputFrame, 0, min(ticks, len(frames)))
	for i := 0; i < ticks && !state.GameOver; i++ {
		var frame core.InputFrame
		if i < len(frames) {
			frame = frames[i]
		}
		stepped = append(stepped, frame)

		res := game.Step(frame)
		state = res.State
		for _, msg := range res.Messages {
			out.Debug(msg, "tick", state.Tick)
		}
	}

	out.Info("run finished", "seed", cfg.Seed, "ticks", state.Tick, "score", state.Score, "level", state.Level, "health", state.Health, "over", state.GameOver)
	fmt.Printf("game=%s seed=%d ticks=%d score=%d level=%d health=%d over=%t\n",
		gameID, cfg.Seed, state.Tick, state.Score, state.Level, state.Health, state.GameOver)

	if flagRender {
		screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		game.Render(screen)
		fmt.Println(screen.String())
	}

	if recorded != nil {
		if state.Score != recorded.Score || state.Level != recorded.Level {
			out.Warn("replay diverged from the recording; was it played with another config or difficulty?",
				"recorded_score", recorded.Score, "recorded_level", recorded.Level)
		}
		return nil
	}

	if flagNoSave {
		return nil
	}
	store := openStore()
	if store == nil {
		return nil
	}
	defer store.Close()

	_, err = store.SaveRun(storage.Run{
		GameID: gameID,
		Score:  state.Score,
		Level:  state.Level,
		Ticks:  state.Tick,
		Seed:   cfg.Seed,
		Inputs: core.FormatScript(stepped),
	})
	return err
}

// loadReplay fetches a recorded run from the run database.
func loadReplay(id int64) (*storage.Run, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	return store.GetRun(id)
}
