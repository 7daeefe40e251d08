package object

import (
	"math"

	"github.com/spaceblaster/spaceblaster/internal/physics"
)

// Acceleration is the steering mode of one player axis.
type Acceleration int

const (
	AccelNone     Acceleration = iota // Velocity is left alone
	AccelPositive                     // Towards +x / +y (right / down)
	AccelNegative                     // Towards -x / -y (left / up)
	AccelZeroing                      // Decay towards 0
)

func (a Acceleration) String() string {
	switch a {
	case AccelPositive:
		return "positive"
	case AccelNegative:
		return "negative"
	case AccelZeroing:
		return "zeroing"
	default:
		return "none"
	}
}

// zeroSnap is the speed below which a zeroing axis stops dead.
const zeroSnap = 0.15

// Player is the ship steered by the user.
type Player struct {
	Ship
	XAccel          Acceleration
	YAccel          Acceleration
	MaxSpeed        float64 // Per axis velocity cap
	MaxAcceleration float64 // Velocity change per tick
	LaserSpeed      float64

	score int
	money float64
	laser *Laser
}

// NewPlayer creates a resting player at (x, y) with full health.
// laser is the prototype for shots and is re-tagged as a player laser.
func NewPlayer(x, y float64, health int, sprite *Sprite, laser *Laser) *Player {
	p := &Player{
		Ship:            newShip(KindPlayer, x, y, health, 0, 0, sprite),
		MaxSpeed:        3,
		MaxAcceleration: 0.3,
		LaserSpeed:      2.0,
	}
	p.SetLaser(laser)
	return p
}

// SetLaser replaces the laser prototype.
func (p *Player) SetLaser(l *Laser) {
	if l == nil {
		l = NewLaser(FactionPlayer, 0, nil)
	}
	if l.Faction() != FactionPlayer {
		l = &Laser{Entity: newEntity(KindLaser, 0, 0, l.Sprite), damage: l.damage, faction: FactionPlayer}
	}
	p.laser = l
}

// Laser returns the laser prototype.
func (p *Player) Laser() *Laser { return p.laser }

// Score returns the accumulated score.
func (p *Player) Score() int { return p.score }

// AddScore adds n to the score. The score never decreases, so negative n is ignored.
func (p *Player) AddScore(n int) {
	if n > 0 {
		p.score += n
	}
}

// Money returns the player's funds.
func (p *Player) Money() float64 { return p.money }

// AddMoney adds amount, which may be negative.
func (p *Player) AddMoney(amount float64) {
	p.money += amount
}

// Fire spawns a player laser at the nose of the ship heading up.
func (p *Player) Fire() *Laser {
	return p.laser.CopyAt(p.X, p.Y-p.Height()/2, p.LaserSpeed, 0)
}

// Update applies the acceleration modes to the velocity.
func (p *Player) Update() {
	p.VX = p.accelerate(p.VX, p.XAccel)
	p.VY = p.accelerate(p.VY, p.YAccel)
}

func (p *Player) accelerate(v float64, mode Acceleration) float64 {
	switch mode {
	case AccelPositive:
		if v < p.MaxSpeed {
			v = min(v+p.MaxAcceleration, p.MaxSpeed)
		}
	case AccelNegative:
		if v > -p.MaxSpeed {
			v = max(v-p.MaxAcceleration, -p.MaxSpeed)
		}
	case AccelZeroing:
		if v < 0 {
			v += p.MaxAcceleration
		} else if v > 0 {
			v -= p.MaxAcceleration
		}
		if math.Abs(v) < zeroSnap {
			v = 0
		}
	}
	return v
}

// MoveWithin integrates the velocity unless that would push the ship further past
// an edge, in which case the velocity on that axis is zeroed instead. The bottom
// edge sits a full ship height above the HUD.
func (p *Player) MoveWithin(b physics.Bounds) {
	w, h := p.Width(), p.Height()

	switch {
	case p.X < w/2 && p.VX < 0:
		p.VX = 0
	case p.X > b.Width-w/2 && p.VX > 0:
		p.VX = 0
	default:
		p.X += p.VX
	}

	switch {
	case p.Y < h/2 && p.VY < 0:
		p.VY = 0
	case p.Y > b.Height-h-b.HUDHeight && p.VY > 0:
		p.VY = 0
	default:
		p.Y += p.VY
	}
}

// Release is called when the steering key for an axis is let go. The axis starts
// zeroing only if the ship is still moving the way that key pushed it.
func (p *Player) Release(axis Axis, dir Acceleration) {
	switch axis {
	case AxisX:
		if movingWith(p.VX, dir) {
			p.XAccel = AccelZeroing
		}
	case AxisY:
		if movingWith(p.VY, dir) {
			p.YAccel = AccelZeroing
		}
	}
}

// Steer sets the acceleration mode of an axis.
func (p *Player) Steer(axis Axis, mode Acceleration) {
	if axis == AxisX {
		p.XAccel = mode
	} else {
		p.YAccel = mode
	}
}

// Axis selects a player steering axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func movingWith(v float64, dir Acceleration) bool {
	switch dir {
	case AccelPositive:
		return v > 0
	case AccelNegative:
		return v < 0
	default:
		return false
	}
}
