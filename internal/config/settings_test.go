package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spaceblaster.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.View.Width != 800 || len(s.Enemies) != 2 {
		t.Errorf("unexpected defaults: %+v", s.View)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
[view]
width = 1024

[player]
health = 150
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.View.Width != 1024 {
		t.Errorf("width = %v, want 1024", s.View.Width)
	}
	if s.View.Height != 600 {
		t.Errorf("height = %v, want default 600", s.View.Height)
	}
	if s.Player.Health != 150 {
		t.Errorf("player health = %d, want 150", s.Player.Health)
	}
	if s.Player.MaxSpeed != 3 {
		t.Errorf("player max speed = %v, want default 3", s.Player.MaxSpeed)
	}
	if len(s.Enemies) != 2 {
		t.Errorf("roster len = %d, want default 2", len(s.Enemies))
	}
}

func TestLoadReplacesRoster(t *testing.T) {
	path := writeFile(t, `
[[enemy]]
kind = "basic"
health = 10
max_health = 10
speed = 1
min_level = 2
frequency = 5
quota = 3
shoot_ticks = 50
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Enemies) != 1 {
		t.Fatalf("roster len = %d, want 1", len(s.Enemies))
	}
	if s.Enemies[0].MinLevel != 2 || s.Enemies[0].Quota != 3 {
		t.Errorf("enemy = %+v", s.Enemies[0])
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, `
[view]
widht = 10
`)
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("Load err = %v, want ErrInvalidSettings", err)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeFile(t, "[view\n")
	if _, err := Load(path); err == nil {
		t.Fatal("Load succeeded on malformed TOML")
	}
}

func TestValidateReportsVelocityAboveSpeed(t *testing.T) {
	s := Default()
	s.Enemies[0].XVelocity = 2
	s.Enemies[0].Speed = 1
	s.Loop.TickMillis = 0

	err := s.Validate()
	if !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("Validate err = %v, want ErrInvalidSettings", err)
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 2 {
		t.Errorf("expected two joined errors, got %v", err)
	}
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv(EnvSeed, "42")
	n, err := GetEnvInt64(EnvSeed, 7)
	if err != nil || n != 42 {
		t.Errorf("GetEnvInt64 = %d, %v; want 42, nil", n, err)
	}

	t.Setenv(EnvSeed, "forty-two")
	if _, err := GetEnvInt64(EnvSeed, 7); err == nil {
		t.Error("GetEnvInt64 accepted a malformed value")
	}

	t.Setenv(EnvSeed, "")
	if n, _ := GetEnvInt64(EnvSeed, 7); n != 7 {
		t.Errorf("GetEnvInt64 empty = %d, want fallback 7", n)
	}
}
