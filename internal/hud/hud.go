// Package hud lays out the status bar under the playfield.
package hud

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/spaceblaster/spaceblaster/internal/loop/sim"
	"github.com/spaceblaster/spaceblaster/internal/physics"
)

// Health bar size in playfield units.
const (
	HealthBarWidth  = 200
	HealthBarHeight = 20
	margin          = 10
)

var (
	empty = colorful.Color{R: 1, G: 0, B: 0}
	full  = colorful.Color{R: 0, G: 1, B: 0}
)

// HealthColor blends from red at ratio 0 to green at ratio 1. The ratio is clamped.
func HealthColor(ratio float64) colorful.Color {
	if math.IsNaN(ratio) {
		ratio = 0
	}
	return empty.BlendRgb(full, physics.Clamp(ratio, 0, 1))
}

// Text is a label anchored at its top-left corner.
type Text struct {
	X, Y float64
	S    string
}

// Layout is the position of every HUD element for one frame.
type Layout struct {
	Bar        physics.Rect // Grey panel behind the HUD
	HealthBar  physics.Rect // Outline of the health bar
	HealthFill physics.Rect // Filled part of the health bar
	Health     colorful.Color
	Score      Text // Right aligned
	Money      Text // Left aligned
	Level      Text // Top right of the playfield
}

// Measure returns the width of s in playfield units.
type Measure func(s string) float64

// Compute places the HUD for the given stats. measure is used for right aligned text.
func Compute(b physics.Bounds, stats sim.HUD, measure Measure) Layout {
	top := b.Height - b.HUDHeight

	ratio := 0.0
	if stats.MaxHealth > 0 {
		ratio = float64(stats.Health) / float64(stats.MaxHealth)
	}
	ratio = physics.Clamp(ratio, 0, 1)

	barX := (b.Width - HealthBarWidth) / 2
	barY := top + (b.HUDHeight-HealthBarHeight)/2

	score := fmt.Sprintf("Score: %d", stats.Score)
	level := fmt.Sprintf("Level %d", stats.Level)
	textY := top + (b.HUDHeight-HealthBarHeight)/2

	return Layout{
		Bar:        physics.Rect{MinX: 0, MinY: top, MaxX: b.Width, MaxY: b.Height},
		HealthBar:  physics.Rect{MinX: barX, MinY: barY, MaxX: barX + HealthBarWidth, MaxY: barY + HealthBarHeight},
		HealthFill: physics.Rect{MinX: barX, MinY: barY, MaxX: barX + HealthBarWidth*ratio, MaxY: barY + HealthBarHeight},
		Health:     HealthColor(ratio),
		Score:      Text{X: b.Width - margin - measure(score), Y: textY, S: score},
		Money:      Text{X: margin, Y: textY, S: fmt.Sprintf("$%.2f", stats.Money)},
		Level:      Text{X: b.Width - margin - measure(level), Y: margin, S: level},
	}
}
