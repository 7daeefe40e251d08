package object

import (
	"fmt"
	"math/rand"

	"github.com/spaceblaster/spaceblaster/internal/config"
)

// NewPlayerFrom builds the starting player described by s.
func NewPlayerFrom(s config.PlayerSettings) *Player {
	laser := NewLaser(FactionPlayer, s.Laser.Damage, spriteFrom(s.Laser.Sprite))
	p := NewPlayer(s.X, s.Y, s.Health, spriteFrom(s.Sprite), laser)
	p.MaxSpeed = s.MaxSpeed
	p.MaxAcceleration = s.MaxAcceleration
	p.LaserSpeed = s.Laser.Speed
	return p
}

// NewEnemyFrom builds an enemy prototype. viewWidth places the bounce bounds of
// weaving kinds.
func NewEnemyFrom(s config.EnemySettings, viewWidth float64, rng *rand.Rand) (*Enemy, error) {
	stats := EnemyStats{
		Health:     s.Health,
		MaxHealth:  s.MaxHealth,
		Speed:      s.Speed,
		XVelocity:  s.XVelocity,
		MinLevel:   s.MinLevel,
		Frequency:  s.Frequency,
		Quota:      s.Quota,
		ShootTicks: s.ShootTicks,
		Points:     s.Points,
		LaserSpeed: s.Laser.Speed,
	}
	if s.RandomXVelocity && rng != nil {
		stats.XVelocity = rng.Float64() * s.XVelocity
		if rng.Intn(2) == 0 {
			stats.XVelocity = -stats.XVelocity
		}
	}

	laser := NewLaser(FactionEnemy, s.Laser.Damage, spriteFrom(s.Laser.Sprite))
	sprite := spriteFrom(s.Sprite)

	switch s.Kind {
	case config.EnemyKindBasic:
		return NewEnemy(KindBasicEnemy, stats, sprite, laser, nil, rng), nil
	case config.EnemyKindF250:
		bounce := &Bounce{XMin: s.BounceMargin, XMax: viewWidth - s.BounceMargin}
		return NewEnemy(KindF250Bullet, stats, sprite, laser, bounce, rng), nil
	default:
		return nil, fmt.Errorf("unknown enemy kind %q", s.Kind)
	}
}

// NewRoster builds every enemy prototype in settings order.
func NewRoster(enemies []config.EnemySettings, viewWidth float64, rng *rand.Rand) ([]*Enemy, error) {
	roster := make([]*Enemy, 0, len(enemies))
	for i, s := range enemies {
		e, err := NewEnemyFrom(s, viewWidth, rng)
		if err != nil {
			return nil, fmt.Errorf("enemy[%d]: %w", i, err)
		}
		roster = append(roster, e)
	}
	return roster, nil
}

func spriteFrom(s config.SpriteSettings) *Sprite {
	return NewSprite(s.Name, s.Width, s.Height)
}
