package shooter

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// Layout of the playfield on screen. Each grid cell is two columns wide so
// emoji glyphs line up.
const (
	cellW     = 2
	fieldLeft = 1
	fieldTop  = 1
	panelGap  = 2
	panelW    = 34
)

// Render draws the field, stats and recent messages to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	box := core.NewRect(fieldLeft, fieldTop, w*cellW+2, h+2)

	if dst.Width() < box.Right() || dst.Height() < box.Bottom() {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", box.Right(), box.Bottom()))
		return
	}

	dst.DrawTextColored(fieldLeft+2, 0, " SPACE SHOOTER ", core.ColorCyan)
	dst.DrawBox(box, core.ColorBlue)

	snap := g.state.Snapshot()
	var craft *EntityView
	for i := range snap.Entities {
		e := &snap.Entities[i]
		if e.Kind == KindCraft {
			craft = e
			continue
		}
		g.drawEntity(dst, box, *e)
	}
	if craft != nil {
		g.drawEntity(dst, box, *craft)
	}

	g.drawPanel(dst, box.Right()+panelGap, fieldTop, snap)

	if g.controller.Paused() {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

func (g *Game) drawEntity(dst *core.Screen, box core.Rect, e EntityView) {
	// Off-field entities (e.g. a projectile above row 0) are not drawn
	if e.X < 0 || e.X >= g.cfg.Field.Width || e.Y < 0 || e.Y >= g.cfg.Field.Height {
		return
	}

	sx := box.X + 1 + e.X*cellW
	sy := box.Y + 1 + e.Y
	glyph := []rune(e.Visual.Glyph)
	if len(glyph) == 0 {
		return
	}
	if e.Visual.Wide {
		dst.SetWide(sx, sy, glyph[0], e.Visual.Color)
		return
	}
	dst.SetColored(sx, sy, glyph[0], e.Visual.Color)
}

func (g *Game) drawPanel(dst *core.Screen, x, y int, snap Snapshot) {
	if x >= dst.Width() {
		return
	}

	healthColor := core.ColorGreen
	switch {
	case snap.Health <= 30:
		healthColor = core.ColorRed
	case snap.Health <= 60:
		healthColor = core.ColorYellow
	}

	dst.DrawText(x, y, fmt.Sprintf("Score:  %d", snap.Score))
	dst.DrawTextColored(x, y+1, fmt.Sprintf("Health: %d %s", snap.Health, healthBar(snap.Health, snap.MaxHealth, 10)), healthColor)
	dst.DrawText(x, y+2, fmt.Sprintf("Level:  %d", snap.Level))
	dst.DrawText(x, y+3, fmt.Sprintf("Spawn:  %d%%", snap.SpawnRate))
	dst.DrawText(x, y+4, fmt.Sprintf("Time Survived: %d seconds", g.SecondsSurvived()))

	dst.DrawTextColored(x, y+6, "W/A/S/D move  F fire  P pause", core.ColorGray)

	dst.DrawTextColored(x, y+8, "Log", core.ColorCyan)
	maxLen := core.Max(0, core.Min(panelW, dst.Width()-x))
	for i, msg := range g.messages {
		if r := []rune(msg); len(r) > maxLen {
			msg = string(r[:maxLen])
		}
		dst.DrawText(x, y+9+i, msg)
	}
}

// healthBar renders health as a fixed-width bar of filled and empty blocks.
func healthBar(health, maxHealth, width int) string {
	if maxHealth <= 0 {
		return ""
	}
	filled := core.Clamp(health*width/maxHealth, 0, width)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
