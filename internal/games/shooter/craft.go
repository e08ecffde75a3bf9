package shooter

import (
	"fmt"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// BoundaryError is returned when a move would take the craft off the field.
// The craft's position is unchanged when it is returned.
type BoundaryError struct {
	Direction core.Direction
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("Cannot move %s. Out of bounds!", e.Direction)
}

// Craft is the player-controlled entity. It carries health and score and
// only moves through Move, which keeps it inside the field.
type Craft struct {
	Entity
	health    int
	maxHealth int
	score     int
	bounds    core.Rect
}

// NewCraft creates a craft at (x, y) with full health inside a field of the
// given size.
func NewCraft(x, y, maxHealth, width, height int) *Craft {
	return &Craft{
		Entity:    Entity{kind: KindCraft, pos: core.Point{X: x, Y: y}},
		health:    maxHealth,
		maxHealth: maxHealth,
		bounds:    core.NewRect(0, 0, width, height),
	}
}

// Move shifts the craft one cell in the given direction.
func (c *Craft) Move(dir core.Direction) error {
	next := c.pos.Add(dir.Delta())
	if !c.bounds.Contains(next.X, next.Y) {
		return &BoundaryError{Direction: dir}
	}
	c.pos = next
	return nil
}

// TakeDamage reduces health by amount, never below 0.
func (c *Craft) TakeDamage(amount int) {
	c.health = core.Clamp(c.health-amount, 0, c.maxHealth)
}

// Heal restores health by amount, never above the maximum.
func (c *Craft) Heal(amount int) {
	c.health = core.Clamp(c.health+amount, 0, c.maxHealth)
}

// AddScore adds points to the score. The score never goes negative.
func (c *Craft) AddScore(points int) {
	c.score = core.Max(0, c.score+points)
}

// Health returns the current health.
func (c *Craft) Health() int {
	return c.health
}

// MaxHealth returns the health cap.
func (c *Craft) MaxHealth() int {
	return c.maxHealth
}

// Score returns the current score.
func (c *Craft) Score() int {
	return c.score
}

// Destroyed reports whether health has reached zero.
func (c *Craft) Destroyed() bool {
	return c.health == 0
}
