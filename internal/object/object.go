// Package object defines the entities that live on the playfield.
//
// Every entity embeds Entity. Behaviour that only some entities have is
// expressed as small capability interfaces checked at the call site.
package object

import (
	"fmt"
	"sync/atomic"

	"github.com/spaceblaster/spaceblaster/internal/physics"
)

// ID identifies an entity for its whole lifetime. IDs are never reused.
type ID uint64

var lastID atomic.Uint64

func nextID() ID {
	return ID(lastID.Add(1))
}

// Kind is the closed set of entity variants.
type Kind int

const (
	KindPlayer Kind = iota
	KindLaser
	KindBasicEnemy
	KindF250Bullet
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindLaser:
		return "laser"
	case KindBasicEnemy:
		return "basic_enemy"
	case KindF250Bullet:
		return "f250_bullet"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// DefaultSpriteSize is the width and height of an entity without a sprite.
const DefaultSpriteSize = 10

// Sprite is a named image reference. Sprites are shared between clones and never mutated.
type Sprite struct {
	Name   string
	Width  int
	Height int
}

// NewSprite returns nil for an unnamed sprite so callers fall back to outlines.
// A zero dimension falls back to DefaultSpriteSize.
func NewSprite(name string, width, height int) *Sprite {
	if name == "" {
		return nil
	}
	if width <= 0 {
		width = DefaultSpriteSize
	}
	if height <= 0 {
		height = DefaultSpriteSize
	}
	return &Sprite{Name: name, Width: width, Height: height}
}

// Entity is the state shared by every object: centre position, per-tick velocity
// and the sprite its size is derived from.
type Entity struct {
	X, Y   float64 // Centre position
	VX, VY float64 // Velocity in units per tick
	Mobile bool    // Move integrates velocity only when set
	Alive  bool    // Participates in game logic
	Sprite *Sprite // Optional; nil draws a 10×10 outline

	id   ID
	kind Kind
}

func newEntity(kind Kind, x, y float64, sprite *Sprite) Entity {
	return Entity{
		X:      x,
		Y:      y,
		Mobile: true,
		Alive:  true,
		Sprite: sprite,
		id:     nextID(),
		kind:   kind,
	}
}

// ID returns the stable identifier of the entity.
func (e *Entity) ID() ID { return e.id }

// Kind returns the variant tag.
func (e *Entity) Kind() Kind { return e.kind }

// Base gives access to the common state of any embedding type.
func (e *Entity) Base() *Entity { return e }

// Width is the sprite width, or DefaultSpriteSize without a sprite.
func (e *Entity) Width() float64 {
	if e.Sprite == nil {
		return DefaultSpriteSize
	}
	return float64(e.Sprite.Width)
}

// Height is the sprite height, or DefaultSpriteSize without a sprite.
func (e *Entity) Height() float64 {
	if e.Sprite == nil {
		return DefaultSpriteSize
	}
	return float64(e.Sprite.Height)
}

// Bounds returns the collision box centred on the entity.
func (e *Entity) Bounds() physics.Rect {
	return physics.RectFromCenter(e.X, e.Y, e.Width(), e.Height())
}

// Move advances the position by one tick of velocity.
func (e *Entity) Move() {
	if !e.Mobile {
		return
	}
	e.X += e.VX
	e.Y += e.VY
}

// Object is anything placed in the world.
type Object interface {
	Base() *Entity
}

// Mover is implemented by objects that integrate their velocity each tick.
type Mover interface {
	Move()
}

// Damageable is implemented by objects with health.
type Damageable interface {
	Health() int
	Damage(amount float64)
}

// Updater is implemented by objects with per-tick behaviour beyond movement.
type Updater interface {
	Update()
}

// Firer is implemented by objects that shoot lasers.
type Firer interface {
	// ShouldFire reports whether a shot is ready.
	ShouldFire() bool
	// Fire spawns a laser and starts the cooldown.
	Fire() *Laser
}

// BoundedMover is implemented by objects that move but may not leave the playfield.
type BoundedMover interface {
	MoveWithin(b physics.Bounds)
}

// Compile-time capability checks.
var (
	_ Object     = (*Laser)(nil)
	_ Mover      = (*Laser)(nil)
	_ Damageable = (*Player)(nil)
	_ Updater    = (*Player)(nil)

	_ BoundedMover = (*Player)(nil)
	_ Damageable   = (*Enemy)(nil)
	_ Updater      = (*Enemy)(nil)
	_ Firer        = (*Enemy)(nil)
)
