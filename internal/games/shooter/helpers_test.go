package shooter

import (
	"fmt"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
)

// scriptedSource replays fixed draws and records every call.
// When a script runs out it returns n-1 for integers (a roll that never
// spawns) and false for booleans.
type scriptedSource struct {
	ints  []int
	bools []bool
	calls []string
}

func (s *scriptedSource) Intn(n int) int {
	s.calls = append(s.calls, fmt.Sprintf("int%d", n))
	if len(s.ints) == 0 {
		return n - 1
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *scriptedSource) Bool() bool {
	s.calls = append(s.calls, "bool")
	if len(s.bools) == 0 {
		return false
	}
	v := s.bools[0]
	s.bools = s.bools[1:]
	return v
}

// recordLogger keeps every logged line.
type recordLogger struct {
	lines []string
}

func (l *recordLogger) Log(text string) {
	l.lines = append(l.lines, text)
}

func (l *recordLogger) has(text string) bool {
	for _, line := range l.lines {
		if line == text {
			return true
		}
	}
	return false
}

// newTestState returns a default-rules state whose random draws never spawn.
func newTestState() (*State, *scriptedSource, *recordLogger) {
	src := &scriptedSource{}
	logger := &recordLogger{}
	return NewState(config.DefaultShooterConfig(), src, logger), src, logger
}

// place puts the craft at (x, y) without going through Move.
func place(s *State, x, y int) {
	s.craft.pos = core.Point{X: x, Y: y}
}

// add inserts an entity without logging noise mattering to the test.
func add(s *State, kind Kind, x, y int) *Entity {
	e := NewEntity(kind, x, y)
	s.AddObject(e)
	return e
}

func contains(s *State, target *Entity) bool {
	for _, e := range s.entities {
		if e == target {
			return true
		}
	}
	return false
}

func newTestConfig() config.ShooterConfig {
	return config.DefaultShooterConfig()
}
