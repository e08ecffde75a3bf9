package shooter

// EntityView is a read-only copy of one entity for display.
type EntityView struct {
	Kind   Kind
	X, Y   int
	Visual Visual
}

// Snapshot captures the simulation state for rendering and determinism tests.
type Snapshot struct {
	Entities  []EntityView // Insertion order, craft included
	Health    int
	MaxHealth int
	Score     int
	Level     int
	SpawnRate int
}

// Snapshot returns a copy of the current state. It has no side effects.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Entities:  make([]EntityView, 0, len(s.entities)),
		Level:     s.level,
		SpawnRate: s.spawnRate,
	}
	if s.craft != nil {
		snap.Health = s.craft.health
		snap.MaxHealth = s.craft.MaxHealth()
		snap.Score = s.craft.score
	}
	for _, e := range s.entities {
		snap.Entities = append(snap.Entities, EntityView{
			Kind:   e.kind,
			X:      e.pos.X,
			Y:      e.pos.Y,
			Visual: e.Visual(),
		})
	}
	return snap
}
