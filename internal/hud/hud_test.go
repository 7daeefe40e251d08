package hud

import (
	"math"
	"testing"

	"github.com/spaceblaster/spaceblaster/internal/loop/sim"
	"github.com/spaceblaster/spaceblaster/internal/physics"
)

func TestHealthColor(t *testing.T) {
	tests := []struct {
		ratio   float64
		r, g, b uint8
	}{
		{1, 0, 255, 0},
		{0, 255, 0, 0},
		{2, 0, 255, 0},
		{-1, 255, 0, 0},
		{math.NaN(), 255, 0, 0},
	}

	for _, tt := range tests {
		r, g, b := HealthColor(tt.ratio).RGB255()
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("HealthColor(%v) = (%d, %d, %d), want (%d, %d, %d)", tt.ratio, r, g, b, tt.r, tt.g, tt.b)
		}
	}

	r, g, _ := HealthColor(0.5).RGB255()
	if r < 120 || r > 135 || g < 120 || g > 135 {
		t.Errorf("half health = (%d, %d), want roughly even", r, g)
	}
}

func TestCompute(t *testing.T) {
	b := physics.Bounds{Width: 800, Height: 600, HUDHeight: 50}
	perRune := func(s string) float64 { return float64(len(s)) * 6 }

	l := Compute(b, sim.HUD{Health: 50, MaxHealth: 200, Score: 120, Money: 3, Level: 4}, perRune)

	if l.Bar.MinY != 550 || l.Bar.MaxY != 600 || l.Bar.Width() != 800 {
		t.Errorf("bar = %+v", l.Bar)
	}
	if l.HealthBar.Width() != HealthBarWidth || l.HealthBar.MinX != 300 || l.HealthBar.MinY != 565 {
		t.Errorf("health bar = %+v", l.HealthBar)
	}
	if l.HealthFill.Width() != 50 {
		t.Errorf("health fill width = %v, want 50", l.HealthFill.Width())
	}
	if l.Score.S != "Score: 120" || l.Score.X+perRune(l.Score.S) != 790 {
		t.Errorf("score = %+v", l.Score)
	}
	if l.Money.S != "$3.00" || l.Money.X != 10 {
		t.Errorf("money = %+v", l.Money)
	}
	if l.Level.S != "Level 4" || l.Level.Y != 10 {
		t.Errorf("level = %+v", l.Level)
	}
}

func TestComputeZeroMaxHealth(t *testing.T) {
	l := Compute(physics.Bounds{Width: 800, Height: 600, HUDHeight: 50}, sim.HUD{}, func(string) float64 { return 0 })
	if l.HealthFill.Width() != 0 {
		t.Errorf("fill = %v, want 0", l.HealthFill.Width())
	}
}
