package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/registry"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

// Model runs one game: it collects key presses between ticks, steps the
// game on every TickMsg and records the run once it is over.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	inputs     []string // One script entry per stepped tick
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for storage failures and run summaries.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPlayer tags saved runs with a player name.
func WithPlayer(name string) ModelOption {
	return func(m *Model) {
		m.player = name
	}
}

// NewModel creates a model for game seeded with cfg.Seed, zero included.
// A nil store disables run recording.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     log.New(io.Discard),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles key presses, resizes and ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keyMapper.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	cmd, ok := m.keyMapper.MapKey(msg)
	if !ok {
		return m, nil
	}

	switch cmd.Action {
	case core.ActionQuit:
		m.quitting = true
		m.saveAbandoned()
		return m, tea.Quit
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			m.saveAbandoned()
			return m, tea.Quit
		}
		return m, nil
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
		return m, nil
	}

	m.inputFrame.Push(cmd)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = core.NewSeed()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputs = nil
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if !m.gameState.GameOver {
		m.inputs = append(m.inputs, m.inputFrame.Script())
	}
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveAbandoned records a run left before game over if it scored anything.
func (m *Model) saveAbandoned() {
	if m.runSaved || m.gameState.Score <= 0 {
		return
	}
	m.saveRun()
	m.runSaved = true
}

func (m Model) saveRun() {
	run := storage.Run{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
		Ticks:  m.gameState.Tick,
		Seed:   m.config.Seed,
		Player: m.player,
		Inputs: strings.Join(m.inputs, ","),
	}
	m.logger.Info("run finished", "game", run.GameID, "score", run.Score, "level", run.Level, "ticks", run.Ticks, "seed", run.Seed)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Error("could not save run", "error", err)
	}
}

// saveScreenshot writes the current frame as plain text under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not saved", "error", err)
	}
}

// View renders the game screen with the key help below it.
// The game area shrinks by the height of the help.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	helpView := palette[core.ColorGray].Render(m.help.View(m.keyMapper.Keys()))
	height := core.Max(1, m.config.ScreenH-lipgloss.Height(helpView))
	if m.screen.Height() != height || m.screen.Width() != m.config.ScreenW {
		m.screen.Resize(m.config.ScreenW, height)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpView
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the player quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the current terminal until the player quits or goes
// back. It reports whether the player asked for the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) (bool, error) {
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts...),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
