package sim

import (
	"github.com/spaceblaster/spaceblaster/internal/object"
	"github.com/spaceblaster/spaceblaster/internal/physics"
)

// Drawable is the render view of one entity.
type Drawable struct {
	ID      object.ID
	Kind    object.Kind
	Faction object.Faction // Lasers only
	X, Y    float64        // Centre
	W, H    float64
	Sprite  string // Empty draws an outline
}

// Rect returns the screen box of the drawable.
func (d Drawable) Rect() physics.Rect {
	return physics.RectFromCenter(d.X, d.Y, d.W, d.H)
}

// HUD holds the player stats shown below the playfield.
type HUD struct {
	Health    int
	MaxHealth int
	Score     int
	Money     float64
	Level     int
}

// Snapshot is an immutable view of the world after a tick. Renderers read it
// from any goroutine and must not modify it.
type Snapshot struct {
	Tick     uint64
	Bounds   physics.Bounds
	Entities []Drawable // Player first, then ships, then projectiles
	HUD      HUD
}

func drawableOf(e *object.Entity) Drawable {
	d := Drawable{
		ID:   e.ID(),
		Kind: e.Kind(),
		X:    e.X,
		Y:    e.Y,
		W:    e.Width(),
		H:    e.Height(),
	}
	if e.Sprite != nil {
		d.Sprite = e.Sprite.Name
	}
	return d
}

func drawableOfLaser(l *object.Laser) Drawable {
	d := drawableOf(&l.Entity)
	d.Faction = l.Faction()
	return d
}
