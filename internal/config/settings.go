package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Enemy kinds accepted in [[enemy]] tables.
const (
	EnemyKindBasic = "basic"
	EnemyKindF250  = "f250"
)

// Settings is the user-tunable part of the game, loaded from a TOML file.
type Settings struct {
	View    ViewSettings    `toml:"view"`
	Loop    LoopSettings    `toml:"loop"`
	Player  PlayerSettings  `toml:"player"`
	Enemies []EnemySettings `toml:"enemy"`
}

// ViewSettings is the playfield size in logical units.
type ViewSettings struct {
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	HUDHeight float64 `toml:"hud_height"`
}

// LoopSettings controls simulation timing.
type LoopSettings struct {
	TickMillis           int     `toml:"tick_ms"`
	LevelCooldownSeconds float64 `toml:"level_cooldown_seconds"`
	Seed                 int64   `toml:"seed"` // 0 picks a time based seed
}

// TickPeriod returns the loop period as a duration.
func (l LoopSettings) TickPeriod() time.Duration {
	return time.Duration(l.TickMillis) * time.Millisecond
}

// SpriteSettings names a sprite and its size. A zero size falls back to 10×10.
type SpriteSettings struct {
	Name   string `toml:"name"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// LaserSettings describes a laser prototype.
type LaserSettings struct {
	Damage float64        `toml:"damage"`
	Speed  float64        `toml:"speed"`
	Sprite SpriteSettings `toml:"sprite"`
}

// PlayerSettings describes the player ship a run starts with.
type PlayerSettings struct {
	X               float64        `toml:"x"`
	Y               float64        `toml:"y"`
	Health          int            `toml:"health"`
	MaxSpeed        float64        `toml:"max_speed"`
	MaxAcceleration float64        `toml:"max_acceleration"`
	Laser           LaserSettings  `toml:"laser"`
	Sprite          SpriteSettings `toml:"sprite"`
}

// EnemySettings describes one enemy prototype of the spawn roster.
type EnemySettings struct {
	Kind      string  `toml:"kind"`
	Health    int     `toml:"health"`
	MaxHealth int     `toml:"max_health"`
	Speed     float64 `toml:"speed"`
	XVelocity float64 `toml:"x_velocity"`
	// RandomXVelocity draws |vx| uniformly from [0, XVelocity) when the prototype is built.
	RandomXVelocity bool           `toml:"random_x_velocity"`
	MinLevel        int            `toml:"min_level"`
	Frequency       float64        `toml:"frequency"`
	Quota           int            `toml:"quota"`
	ShootTicks      int            `toml:"shoot_ticks"`
	Points          int            `toml:"points"`
	BounceMargin    float64        `toml:"bounce_margin"` // f250 only
	Laser           LaserSettings  `toml:"laser"`
	Sprite          SpriteSettings `toml:"sprite"`
}

// Default returns the settings of the stock game.
func Default() Settings {
	return Settings{
		View: ViewSettings{Width: 800, Height: 600, HUDHeight: 50},
		Loop: LoopSettings{TickMillis: 10, LevelCooldownSeconds: 3.0},
		Player: PlayerSettings{
			X:               200,
			Y:               200,
			Health:          200,
			MaxSpeed:        3,
			MaxAcceleration: 0.3,
			Laser: LaserSettings{
				Damage: 20,
				Speed:  2.0,
				Sprite: SpriteSettings{Name: "laser", Width: 4, Height: 10},
			},
			Sprite: SpriteSettings{Name: "player", Width: 30, Height: 30},
		},
		Enemies: []EnemySettings{
			{
				Kind:       EnemyKindBasic,
				Health:     60, // clamped to MaxHealth
				MaxHealth:  40,
				Speed:      0.5,
				MinLevel:   1,
				Frequency:  250,
				Quota:      20,
				ShootTicks: 500,
				Points:     10,
				Laser: LaserSettings{
					Damage: 5,
					Speed:  2.0,
					Sprite: SpriteSettings{Name: "laser", Width: 4, Height: 10},
				},
				Sprite: SpriteSettings{Name: "basic_enemy", Width: 30, Height: 30},
			},
			{
				Kind:            EnemyKindF250,
				Health:          20,
				MaxHealth:       40,
				Speed:           1.0,
				XVelocity:       1.0,
				RandomXVelocity: true,
				MinLevel:        1,
				Frequency:       300,
				Quota:           20,
				ShootTicks:      200,
				Points:          10,
				BounceMargin:    40,
				Laser: LaserSettings{
					Damage: 10,
					Speed:  2.0,
					Sprite: SpriteSettings{Name: "laser", Width: 4, Height: 10},
				},
				Sprite: SpriteSettings{Name: "f250_bullet", Width: 30, Height: 30},
			},
		},
	}
}

// Load reads the TOML file at path over the defaults. An empty path returns the defaults.
// Unknown keys are rejected so typos do not silently fall back to defaults.
// A file that declares [[enemy]] tables replaces the whole default roster.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	var file Settings
	file.View = s.View
	file.Loop = s.Loop
	file.Player = s.Player
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return s, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return s, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidSettings, path, strings.Join(keys, ", "))
	}
	if !md.IsDefined("enemy") {
		file.Enemies = s.Enemies
	}

	if err := file.Validate(); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Validate reports every problem in s at once.
func (s Settings) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidSettings}, args...)...))
	}

	if s.View.Width <= 0 || s.View.Height <= 0 {
		add("view size %vx%v must be positive", s.View.Width, s.View.Height)
	}
	if s.View.HUDHeight < 0 || s.View.HUDHeight >= s.View.Height {
		add("hud_height %v must be in [0, %v)", s.View.HUDHeight, s.View.Height)
	}
	if s.Loop.TickMillis <= 0 {
		add("tick_ms %d must be positive", s.Loop.TickMillis)
	}
	if s.Loop.LevelCooldownSeconds < 0 {
		add("level_cooldown_seconds %v must not be negative", s.Loop.LevelCooldownSeconds)
	}
	if s.Player.Health <= 0 {
		add("player health %d must be positive", s.Player.Health)
	}
	if s.Player.MaxSpeed <= 0 || s.Player.MaxAcceleration <= 0 {
		add("player max_speed and max_acceleration must be positive")
	}
	if s.Player.Laser.Damage < 0 {
		add("player laser damage %v must not be negative", s.Player.Laser.Damage)
	}

	for i, e := range s.Enemies {
		if !slices.Contains([]string{EnemyKindBasic, EnemyKindF250}, e.Kind) {
			add("enemy[%d]: unknown kind %q", i, e.Kind)
		}
		if e.MaxHealth <= 0 || e.Health <= 0 {
			add("enemy[%d]: health and max_health must be positive", i)
		}
		if e.Speed < 0 {
			add("enemy[%d]: speed %v must not be negative", i, e.Speed)
		}
		if math.Abs(e.XVelocity) > e.Speed {
			add("enemy[%d]: |x_velocity| %v exceeds speed %v", i, e.XVelocity, e.Speed)
		}
		if e.Quota < 0 {
			add("enemy[%d]: quota %d must not be negative", i, e.Quota)
		}
		if e.Points < 0 {
			add("enemy[%d]: points %d must not be negative", i, e.Points)
		}
		if e.ShootTicks <= 0 {
			add("enemy[%d]: shoot_ticks %d must be positive", i, e.ShootTicks)
		}
		if e.Laser.Damage < 0 {
			add("enemy[%d]: laser damage %v must not be negative", i, e.Laser.Damage)
		}
		if e.Kind == EnemyKindF250 && 2*e.BounceMargin >= s.View.Width {
			add("enemy[%d]: bounce_margin %v leaves no room in width %v", i, e.BounceMargin, s.View.Width)
		}
	}

	return errors.Join(errs...)
}
