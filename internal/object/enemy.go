package object

import (
	"math"
	"math/rand"
)

// Bounce keeps a ship's centre between XMin and XMax by flipping its horizontal
// direction when it crosses either bound.
type Bounce struct {
	XMin, XMax float64
}

// EnemyStats is the per-prototype configuration of an enemy.
type EnemyStats struct {
	Health     int
	MaxHealth  int
	Speed      float64
	XVelocity  float64
	MinLevel   int     // First level the enemy may spawn in
	Frequency  float64 // Spawn odds are 1 in Frequency per tick
	Quota      int     // Spawns allowed per level
	ShootTicks int     // Ticks between shots
	Points     int     // Score for destroying the ship
	LaserSpeed float64
}

// Enemy is an AI ship that drifts down and fires on a cooldown.
// A non-nil Bounce makes it weave between the bounds.
type Enemy struct {
	Ship
	Stats  EnemyStats
	Bounce *Bounce

	ticksUntilReady int
	laser           *Laser
	rng             *rand.Rand
}

// NewEnemy creates an enemy prototype of the given kind. The laser prototype is
// re-tagged as an enemy laser. rng picks clone directions for bouncing kinds and
// may be nil for non-bouncing ones.
func NewEnemy(kind Kind, stats EnemyStats, sprite *Sprite, laser *Laser, bounce *Bounce, rng *rand.Rand) *Enemy {
	e := &Enemy{
		Ship:   newShip(kind, 0, 0, stats.MaxHealth, stats.Speed, stats.XVelocity, sprite),
		Stats:  stats,
		Bounce: bounce,
		rng:    rng,
	}
	e.SetHealth(stats.Health)
	e.Stats.Health = e.Health()
	e.Stats.XVelocity = e.VX
	e.ticksUntilReady = stats.ShootTicks
	e.SetLaser(laser)
	return e
}

// SetLaser replaces the laser prototype.
func (e *Enemy) SetLaser(l *Laser) {
	if l == nil {
		l = NewLaser(FactionEnemy, 0, nil)
	}
	if l.Faction() != FactionEnemy {
		l = &Laser{Entity: newEntity(KindLaser, 0, 0, l.Sprite), damage: l.damage, faction: FactionEnemy}
	}
	e.laser = l
}

// Laser returns the laser prototype.
func (e *Enemy) Laser() *Laser { return e.laser }

// ShouldFire reports whether the cooldown has elapsed.
func (e *Enemy) ShouldFire() bool { return e.ticksUntilReady <= 0 }

// JustFired restarts the cooldown.
func (e *Enemy) JustFired() { e.ticksUntilReady = e.Stats.ShootTicks }

// Fire spawns an enemy laser below the ship heading down and restarts the cooldown.
func (e *Enemy) Fire() *Laser {
	l := e.laser.CopyAt(e.X, e.Y+e.Height()/2, e.Stats.LaserSpeed, math.Pi)
	e.JustFired()
	return l
}

// Update advances the firing cooldown and applies the bounce bounds.
func (e *Enemy) Update() {
	if e.ticksUntilReady > 0 {
		e.ticksUntilReady--
	}
	if e.Bounce == nil {
		return
	}
	if e.X > e.Bounce.XMax {
		e.VX = -math.Abs(e.VX)
	} else if e.X < e.Bounce.XMin {
		e.VX = math.Abs(e.VX)
	}
}

// CloneAt returns a fresh enemy of the same kind and stats at (x, y) with its own
// ID and a full cooldown. Bouncing enemies start in a random horizontal direction.
func (e *Enemy) CloneAt(x, y float64) *Enemy {
	stats := e.Stats
	if e.Bounce != nil && e.rng != nil && e.rng.Intn(2) == 0 {
		stats.XVelocity = -stats.XVelocity
	}

	c := &Enemy{
		Ship:  newShip(e.Kind(), x, y, e.MaxHealth(), e.Speed(), stats.XVelocity, e.Sprite),
		Stats: stats,
		laser: e.laser,
		rng:   e.rng,
	}
	c.SetHealth(stats.Health)
	c.ticksUntilReady = stats.ShootTicks
	if e.Bounce != nil {
		b := *e.Bounce
		c.Bounce = &b
	}
	return c
}
