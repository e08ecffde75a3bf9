// Package registry keeps the table of playable game modes.
// Each game package registers its factories from init(), so the CLI and
// the terminal platform can list and start modes by ID alone.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("unknown game")

// Game is what the platform drives once per tick.
// Implementations hold pure simulation state; input mapping, timing,
// persistence and drawing to a terminal belong to the caller.
type Game interface {
	// ID is the stable key used on the command line and in the score store
	// (e.g. "shooter", "shooter_blitz").
	ID() string

	// Title is the display name shown in menus.
	Title() string

	// Reset starts a fresh run. The seed in cfg fully determines the run
	// for a given input sequence.
	Reset(cfg core.RuntimeConfig)

	// Step applies the frame's commands in order and advances one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a cleared screen buffer.
	Render(dst *core.Screen)

	// State reports score, health, level and the pause/game-over flags.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet Reset, game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(factories))
	for id := range factories {
		out = append(out, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Create builds a new instance of the mode registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display name for id, or id itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
