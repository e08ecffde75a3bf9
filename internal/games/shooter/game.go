package shooter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/registry"
)

// Mode selects a rule variant of the game.
type Mode string

const (
	ModeClassic Mode = "classic" // Both hazards descend on the shared interval
	ModeBlitz   Mode = "blitz"   // Enemies descend every tick
)

// BlitzEnemyInterval is the enemy descent interval in blitz mode.
const BlitzEnemyInterval = 1

// maxMessages is how many log lines the message panel keeps.
const maxMessages = 8

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	gameLogger       = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// SetLogger sets the structured logger game messages are mirrored to.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	gameLogger = l
}

// Game adapts the simulation to the arcade platform: it owns a Controller,
// advances it once per Step and keeps the recent log lines for display.
type Game struct {
	mode       Mode
	runtime    core.RuntimeConfig
	cfg        config.ShooterConfig
	state      *State
	controller *Controller
	messages   []string // Most recent last, at most maxMessages
	pending    []string // Emitted during the current step
	gameOver   bool
}

// New creates a classic-mode game instance.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewBlitz creates a blitz-mode game instance.
func NewBlitz() *Game {
	return &Game{mode: ModeBlitz}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeBlitz {
		return "shooter_blitz"
	}
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeBlitz {
		return "Space Shooter (Blitz)"
	}
	return "Space Shooter"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		gameLogger.Warn("using default config", "path", configPath, "error", err)
		cfg = config.DefaultShooterConfig()
	}
	if difficultyPreset != "" {
		config.ApplyShooterPreset(&cfg, difficultyPreset)
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig restarts the game with explicit rules instead of loading them.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.ShooterConfig) {
	if g.mode == ModeBlitz {
		cfg.Descent.EnemyInterval = BlitzEnemyInterval
	}

	g.runtime = runtime
	g.cfg = cfg
	g.messages = g.messages[:0]
	g.pending = g.pending[:0]
	g.gameOver = false

	sink := LogFunc(g.record)
	g.state = NewState(cfg, NewSource(runtime.Seed), sink)
	g.controller = NewController(g.state, sink)

	gameLogger.Debug("game reset", "game", g.ID(), "seed", runtime.Seed, "level", g.state.Level(), "spawn_rate", g.state.SpawnRate())
}

// record stores a message for display and mirrors it to the logger.
func (g *Game) record(text string) {
	g.pending = append(g.pending, text)
	g.messages = append(g.messages, text)
	if over := len(g.messages) - maxMessages; over > 0 {
		g.messages = append(g.messages[:0], g.messages[over:]...)
	}
	tick := 0
	if g.controller != nil {
		tick = g.controller.Tick()
	}
	gameLogger.Debug(text, "tick", tick)
}

// Step applies this frame's commands in order, then advances one tick.
// Once the craft is destroyed the game is over and Step does nothing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.pending = g.pending[:0]

	for _, cmd := range in.Commands {
		switch cmd.Action {
		case core.ActionRestart, core.ActionQuit, core.ActionBack, core.ActionConfirm:
			// Handled by the platform
			continue
		}
		g.controller.HandleCommand(cmd)
	}

	g.controller.Advance()

	if craft := g.state.Craft(); craft == nil || craft.Destroyed() {
		g.gameOver = true
		g.record(fmt.Sprintf("Game over! Final score: %d", g.score()))
		gameLogger.Info("game over", "game", g.ID(), "score", g.score(), "level", g.state.Level(), "ticks", g.controller.Tick())
	}

	messages := make([]string, len(g.pending))
	copy(messages, g.pending)
	return core.StepResult{State: g.State(), Messages: messages}
}

// Controller returns the orchestrator driving this game.
func (g *Game) Controller() *Controller {
	return g.controller
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}

// Messages returns the most recent log lines, oldest first.
func (g *Game) Messages() []string {
	out := make([]string, len(g.messages))
	copy(out, g.messages)
	return out
}

func (g *Game) score() int {
	if craft := g.state.Craft(); craft != nil {
		return craft.Score()
	}
	return 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.score(),
		Level:    g.state.Level(),
		Tick:     g.controller.Tick(),
		GameOver: g.gameOver,
		Paused:   g.controller.Paused(),
	}
	if craft := g.state.Craft(); craft != nil {
		st.Health = craft.Health()
	}
	return st
}

// SecondsSurvived converts simulated ticks to wall-clock seconds at the
// configured tick rate.
func (g *Game) SecondsSurvived() int {
	if g.runtime.TickRate <= 0 {
		return 0
	}
	return g.controller.Tick() / g.runtime.TickRate
}

func init() {
	registry.Register("shooter", func() registry.Game {
		return New()
	})
	registry.Register("shooter_blitz", func() registry.Game {
		return NewBlitz()
	})
}
