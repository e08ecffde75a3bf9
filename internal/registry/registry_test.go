package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/space-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") || !Exists("stub_b") {
		t.Fatal("registered games should exist")
	}
	if Title("stub_a") != "Stub stub_a" {
		t.Errorf("Title() = %q", Title("stub_a"))
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
	if Title("no_such_game") != "no_such_game" {
		t.Error("Title() of unknown id should fall back to the id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
