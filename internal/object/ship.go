package object

// Ship is an entity with health and a fixed travel speed.
//
// For ships driven by speed, vx² + vy² == speed² and vy ≥ 0 (ships travel down
// the screen). The player sets its velocity directly and has speed 0.
type Ship struct {
	Entity
	health    int
	maxHealth int
	speed     float64
}

func newShip(kind Kind, x, y float64, maxHealth int, speed, vx float64, sprite *Sprite) Ship {
	s := Ship{
		Entity:    newEntity(kind, x, y, sprite),
		health:    maxHealth,
		maxHealth: maxHealth,
	}
	s.SetMotion(speed, vx)
	return s
}

// Health returns the current health, always within [0, MaxHealth].
func (s *Ship) Health() int { return s.health }

// MaxHealth returns the health cap.
func (s *Ship) MaxHealth() int { return s.maxHealth }

// SetHealth stores hp clamped into [0, MaxHealth].
func (s *Ship) SetHealth(hp int) {
	s.health = min(max(hp, 0), s.maxHealth)
}

// SetMaxHealth changes the cap and re-clamps the current health.
func (s *Ship) SetMaxHealth(hp int) {
	s.maxHealth = max(hp, 0)
	s.SetHealth(s.health)
}

// Damage removes the integer part of amount from the health.
func (s *Ship) Damage(amount float64) {
	s.SetHealth(s.health - int(amount))
}

// Destroyed reports whether the ship has run out of health.
func (s *Ship) Destroyed() bool { return s.health <= 0 }

// Speed returns the magnitude of the velocity.
func (s *Ship) Speed() float64 { return s.speed }

// SetSpeed changes the speed keeping the horizontal velocity.
func (s *Ship) SetSpeed(speed float64) {
	s.SetMotion(speed, s.VX)
}

// SetXVelocity changes the horizontal velocity keeping the speed.
func (s *Ship) SetXVelocity(vx float64) {
	s.SetMotion(s.speed, vx)
}

// SetMotion sets speed and horizontal velocity together and derives vy.
// Negative speeds are treated as 0.
func (s *Ship) SetMotion(speed, vx float64) {
	s.speed = max(speed, 0)
	s.VX, s.VY = verticalVelocity(s.speed, vx)
}
