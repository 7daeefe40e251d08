package object

import "math"

// Faction is the side that fired a laser. Lasers only hurt the other side.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	if f == FactionPlayer {
		return "player"
	}
	return "enemy"
}

// Laser is a projectile. Prototypes are held by ships and stamped out with CopyAt.
type Laser struct {
	Entity
	damage  float64
	faction Faction
	speed   float64
	angle   float64
}

// NewLaser creates a resting laser prototype.
func NewLaser(faction Faction, damage float64, sprite *Sprite) *Laser {
	l := &Laser{
		Entity:  newEntity(KindLaser, 0, 0, sprite),
		faction: faction,
	}
	l.SetDamage(damage)
	return l
}

// Damage returns the health removed from the ship the laser hits.
func (l *Laser) Damage() float64 { return l.damage }

// SetDamage sets the damage; negative values become 0.
func (l *Laser) SetDamage(d float64) {
	l.damage = max(d, 0)
}

// Faction returns the side that fired the laser. It never changes.
func (l *Laser) Faction() Faction { return l.faction }

// Speed returns the travel speed.
func (l *Laser) Speed() float64 { return l.speed }

// Angle returns the heading. 0 points up the screen, π points down.
func (l *Laser) Angle() float64 { return l.angle }

// SetDirection sets speed and heading and derives the velocity.
func (l *Laser) SetDirection(speed, angle float64) {
	l.speed = speed
	l.angle = angle
	dir := angle + math.Pi/2
	l.VX = speed * math.Cos(dir)
	l.VY = -speed * math.Sin(dir)
}

// CopyAt returns a new laser with this laser's damage, faction and sprite,
// placed at (x, y) and travelling at speed along angle.
func (l *Laser) CopyAt(x, y, speed, angle float64) *Laser {
	c := &Laser{
		Entity:  newEntity(KindLaser, x, y, l.Sprite),
		damage:  l.damage,
		faction: l.faction,
	}
	c.SetDirection(speed, angle)
	return c
}
