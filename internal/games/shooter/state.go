package shooter

import (
	"fmt"
	"time"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
)

// percentRoll is the exclusive upper bound of a spawn-chance roll.
const percentRoll = 100

// Logger receives free-text game messages.
type Logger interface {
	Log(text string)
}

// LogFunc adapts a function to Logger.
type LogFunc func(text string)

// Log calls f(text).
func (f LogFunc) Log(text string) {
	f(text)
}

var discardLogger = LogFunc(func(string) {})

// State owns the live entities of one game and applies the per-tick rules.
// It is not safe for concurrent use; a single orchestrator drives it.
type State struct {
	cfg       config.ShooterConfig
	rules     [kindCount]kindRule
	craft     *Craft
	entities  []*Entity // Insertion order, craft included
	level     int
	spawnRate int
	random    Source
	logger    Logger
}

// NewState creates a game with a fresh craft at its start position.
// A nil random seeds a Source from the clock; a nil logger discards messages.
func NewState(cfg config.ShooterConfig, random Source, logger Logger) *State {
	if random == nil {
		random = NewSource(time.Now().UnixNano())
	}
	if logger == nil {
		logger = discardLogger
	}

	s := &State{
		cfg:       cfg,
		level:     cfg.Leveling.StartLevel,
		spawnRate: cfg.Spawn.StartRate,
		random:    random,
		logger:    logger,
	}

	s.rules[KindAsteroid] = kindRule{interval: cfg.Descent.AsteroidInterval, amount: cfg.Damage.Asteroid}
	s.rules[KindEnemy] = kindRule{interval: cfg.Descent.EnemyInterval, amount: cfg.Damage.Enemy}
	s.rules[KindHealthPack] = kindRule{amount: cfg.Pickups.Heal}
	s.rules[KindShieldPack] = kindRule{amount: cfg.Pickups.ShieldScore}

	s.craft = NewCraft(cfg.Craft.StartX, cfg.Craft.StartY, cfg.Craft.MaxHealth, cfg.Field.Width, cfg.Field.Height)
	s.entities = append(s.entities, &s.craft.Entity)
	return s
}

// Config returns the rules this game was created with.
func (s *State) Config() config.ShooterConfig {
	return s.cfg
}

// Craft returns the player's craft, or nil if it has left the game.
func (s *State) Craft() *Craft {
	return s.craft
}

// Level returns the current level.
func (s *State) Level() int {
	return s.level
}

// SpawnRate returns the current base spawn chance in percent.
func (s *State) SpawnRate() int {
	return s.spawnRate
}

// Entities returns the live entities in insertion order.
// The slice is a copy; the entities are not.
func (s *State) Entities() []*Entity {
	out := make([]*Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Count returns the number of live entities of the given kind.
func (s *State) Count(kind Kind) int {
	n := 0
	for _, e := range s.entities {
		if e.kind == kind {
			n++
		}
	}
	return n
}

// AddObject adds an entity to the game.
func (s *State) AddObject(e *Entity) {
	s.entities = append(s.entities, e)
	s.logger.Log("Added object: " + e.kind.String())
}

// UpdateGame moves every entity for the given tick, then drops every
// entity below the bottom of the field (y > height) in one pass.
func (s *State) UpdateGame(tick int) {
	for _, e := range s.entities {
		e.tick(tick, s.rules[e.kind])
	}

	height := s.cfg.Field.Height
	s.removeIf(func(e *Entity) bool {
		return e.pos.Y > height
	})
}

// SpawnObjects rolls for an asteroid, an enemy and a power-up, in that order.
//
// Every call draws exactly six integers and one boolean from the random
// source: asteroid roll, asteroid x, enemy roll, enemy x, power-up roll,
// power-up x, power-up variant. Draws never depend on earlier outcomes.
// Nothing is spawned on the craft's own cell.
func (s *State) SpawnObjects() {
	rate := float64(s.spawnRate)
	width := s.cfg.Field.Width

	roll, x := s.random.Intn(percentRoll), s.random.Intn(width)
	if float64(roll) < rate {
		s.spawnAt(KindAsteroid, x)
	}

	roll, x = s.random.Intn(percentRoll), s.random.Intn(width)
	if float64(roll) < rate*s.cfg.Spawn.EnemyFactor {
		s.spawnAt(KindEnemy, x)
	}

	roll, x = s.random.Intn(percentRoll), s.random.Intn(width)
	shield := s.random.Bool()
	if float64(roll) < rate*s.cfg.Spawn.PowerUpFactor {
		kind := KindHealthPack
		if shield {
			kind = KindShieldPack
		}
		s.spawnAt(kind, x)
	}
}

func (s *State) spawnAt(kind Kind, x int) {
	if s.craft != nil && s.craft.pos == (core.Point{X: x, Y: 0}) {
		return
	}
	s.AddObject(NewEntity(kind, x, 0))
}

// CheckCollisions resolves every projectile sharing a cell with a
// destructible hazard, then every entity sharing a cell with the craft.
// An enemy shot on the craft's cell is gone before it can hit the craft.
// Each pass scans first and removes afterwards, so simultaneous hits all apply.
func (s *State) CheckCollisions() {
	s.collideProjectiles()
	if s.craft != nil {
		s.collideCraft()
	}
}

func (s *State) collideCraft() {
	craft := s.craft
	hits := make(map[*Entity]struct{})

	for _, e := range s.entities {
		if e == &craft.Entity || e.pos != craft.pos {
			continue
		}

		b := e.kind.behavior()
		amount := s.rules[e.kind].amount
		switch b.class {
		case ClassCollectible:
			s.applyEffect(b.effect, amount)
			s.logger.Log("Power-up collected: " + e.kind.String())
			hits[e] = struct{}{}
		case ClassHazard:
			craft.TakeDamage(amount)
			s.logger.Log(fmt.Sprintf("Hit by %s! Health reduced by %d.", hazardName(e.kind), amount))
			hits[e] = struct{}{}
		}
	}

	s.removeSet(hits)
}

func (s *State) applyEffect(effect Effect, amount int) {
	switch effect {
	case EffectHeal:
		s.craft.Heal(amount)
		s.logger.Log(fmt.Sprintf("Health restored by %d!", amount))
	case EffectScore:
		s.craft.AddScore(amount)
		s.logger.Log(fmt.Sprintf("Shield activated! Score increased by %d.", amount))
	case EffectDamage:
		s.craft.TakeDamage(amount)
	}
}

func (s *State) collideProjectiles() {
	hits := make(map[*Entity]struct{})

	for _, p := range s.entities {
		if p.kind.Class() != ClassProjectile {
			continue
		}
		for _, e := range s.entities {
			if !e.kind.behavior().destructible || e.pos != p.pos {
				continue
			}
			hits[p] = struct{}{}
			hits[e] = struct{}{}
		}
	}

	s.removeSet(hits)
}

func hazardName(k Kind) string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindEnemy:
		return "enemy"
	default:
		return k.String()
	}
}

// LevelUp advances one level when the score reaches level * threshold.
// It never advances more than one level per call. Reports whether it did.
func (s *State) LevelUp() bool {
	if s.craft == nil || s.craft.score < s.level*s.cfg.Leveling.ScoreThreshold {
		return false
	}

	s.level++
	s.spawnRate += s.cfg.Leveling.SpawnRateIncrease
	s.logger.Log(fmt.Sprintf("Level Up! Welcome to Level %d. Spawn rate increased to %d%%.", s.level, s.spawnRate))
	return true
}

// FireBullet adds a projectile on the craft's cell and returns it.
// Without a craft it does nothing and returns nil.
func (s *State) FireBullet() *Entity {
	if s.craft == nil {
		s.logger.Log("Cannot fire bullet: No ship found in the game.")
		return nil
	}

	bullet := NewEntity(KindProjectile, s.craft.pos.X, s.craft.pos.Y)
	s.entities = append(s.entities, bullet)
	s.logger.Log("Bullet fired!")
	return bullet
}

func (s *State) removeSet(set map[*Entity]struct{}) {
	if len(set) == 0 {
		return
	}
	s.removeIf(func(e *Entity) bool {
		_, ok := set[e]
		return ok
	})
}

// removeIf drops matching entities, keeping the order of the rest.
func (s *State) removeIf(match func(*Entity) bool) {
	kept := s.entities[:0]
	for _, e := range s.entities {
		if match(e) {
			if s.craft != nil && e == &s.craft.Entity {
				s.craft = nil
			}
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(s.entities); i++ {
		s.entities[i] = nil
	}
	s.entities = kept
}
