// Package shooter implements Space Shooter: a craft dodging descending
// hazards on a small grid, shooting enemies and collecting power-ups.
//
// The simulation is fully synchronous. Once per tick the Controller runs
// update, collision resolution, spawning and level-up, in that order.
package shooter

import "github.com/vovakirdan/space-arcade/internal/core"

// Kind identifies what an entity is. The set of kinds is closed.
type Kind int

const (
	KindCraft Kind = iota
	KindProjectile
	KindAsteroid
	KindEnemy
	KindHealthPack
	KindShieldPack
	kindCount
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCraft:
		return "Craft"
	case KindProjectile:
		return "Projectile"
	case KindAsteroid:
		return "Asteroid"
	case KindEnemy:
		return "Enemy"
	case KindHealthPack:
		return "HealthPack"
	case KindShieldPack:
		return "ShieldPack"
	default:
		return "Unknown"
	}
}

// Class groups kinds by how they take part in collisions.
type Class int

const (
	ClassPlayer      Class = iota // The craft itself
	ClassProjectile               // Destroys destructible hazards
	ClassHazard                   // Damages the craft on contact
	ClassCollectible              // Applies an effect to the craft on contact
)

// Movement is the per-tick positional rule of a kind.
type Movement int

const (
	MoveNone    Movement = iota // Stationary
	MoveAscend                  // y-1 every tick
	MoveDescend                 // y+1 on ticks that are a multiple of the kind's interval
)

// Effect is what a contact with the craft does to it.
type Effect int

const (
	EffectNone Effect = iota
	EffectDamage
	EffectHeal
	EffectScore
)

// Visual is the renderable tag of an entity: a short text glyph and an
// asset path for graphical front-ends.
type Visual struct {
	Glyph string
	Asset string
	Wide  bool       // Glyph occupies two terminal columns
	Color core.Color // Terminal color hint
}

// behavior is the static half of a kind's rules.
// Amounts and intervals come from config and live in kindRule.
type behavior struct {
	class        Class
	movement     Movement
	effect       Effect
	destructible bool // Removed together with a projectile on contact
	visual       Visual
}

var behaviors = [kindCount]behavior{
	KindCraft: {
		class:  ClassPlayer,
		visual: Visual{Glyph: "🚀", Asset: "assets/ship.png", Wide: true, Color: core.ColorWhite},
	},
	KindProjectile: {
		class:    ClassProjectile,
		movement: MoveAscend,
		visual:   Visual{Glyph: "🔺", Asset: "assets/bullet.png", Wide: true, Color: core.ColorYellow},
	},
	KindAsteroid: {
		class:    ClassHazard,
		movement: MoveDescend,
		effect:   EffectDamage,
		visual:   Visual{Glyph: "🌑", Asset: "assets/asteroid.png", Wide: true, Color: core.ColorGray},
	},
	KindEnemy: {
		class:        ClassHazard,
		movement:     MoveDescend,
		effect:       EffectDamage,
		destructible: true,
		visual:       Visual{Glyph: "👾", Asset: "assets/enemy.png", Wide: true, Color: core.ColorMagenta},
	},
	KindHealthPack: {
		class:  ClassCollectible,
		effect: EffectHeal,
		visual: Visual{Glyph: "❤", Asset: "assets/health.png", Color: core.ColorBrightRed},
	},
	KindShieldPack: {
		class:  ClassCollectible,
		effect: EffectScore,
		visual: Visual{Glyph: "💠", Asset: "assets/shield.png", Wide: true, Color: core.ColorBrightCyan},
	},
}

func (k Kind) behavior() behavior {
	if k < 0 || k >= kindCount {
		return behavior{}
	}
	return behaviors[k]
}

// Class returns the collision class of the kind.
func (k Kind) Class() Class {
	return k.behavior().class
}

// Visual returns the renderable tag of the kind.
func (k Kind) Visual() Visual {
	return k.behavior().visual
}

// kindRule is the config-dependent half of a kind's rules.
type kindRule struct {
	interval int // Descent interval in ticks, MoveDescend only
	amount   int // Damage, heal or score amount
}

// Entity is a positioned, tickable unit on the field.
// Entities are compared by pointer identity; there is no ID.
type Entity struct {
	kind Kind
	pos  core.Point
}

// NewEntity creates a free-standing entity of the given kind at (x, y).
func NewEntity(kind Kind, x, y int) *Entity {
	return &Entity{kind: kind, pos: core.Point{X: x, Y: y}}
}

// Kind returns the entity kind.
func (e *Entity) Kind() Kind {
	return e.kind
}

// X returns the column, 0 being the left-most.
func (e *Entity) X() int {
	return e.pos.X
}

// Y returns the row, 0 being the top-most.
func (e *Entity) Y() int {
	return e.pos.Y
}

// Pos returns the entity position.
func (e *Entity) Pos() core.Point {
	return e.pos
}

// Visual returns the renderable tag of the entity.
func (e *Entity) Visual() Visual {
	return e.kind.Visual()
}

// tick applies the kind's movement rule for the given tick index.
func (e *Entity) tick(tick int, rule kindRule) {
	switch e.kind.behavior().movement {
	case MoveAscend:
		e.pos.Y--
	case MoveDescend:
		if rule.interval > 0 && tick%rule.interval == 0 {
			e.pos.Y++
		}
	}
}
