package game

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/spaceblaster/spaceblaster/internal/config"
	"github.com/spaceblaster/spaceblaster/internal/input"
)

func newSession(t *testing.T, s config.Settings) *Session {
	t.Helper()
	session, err := New(context.Background(), Options{Settings: s, Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(session.Close)
	return session
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func press(s *Session, k input.Key) {
	s.HandleKey(input.Event{Key: k, Down: true})
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	s := config.Default()
	s.View.Width = 0
	if _, err := New(context.Background(), Options{Settings: s}); err == nil {
		t.Fatal("New accepted invalid settings")
	}
}

func TestMenuNavigation(t *testing.T) {
	s := newSession(t, config.Default())

	if s.State() != StateMainMenu || s.Running() {
		t.Fatalf("initial state %v running %v", s.State(), s.Running())
	}
	want := []Button{ButtonPlay, ButtonCredits, ButtonInfo, ButtonQuit}
	if !slices.Equal(s.Buttons(), want) {
		t.Errorf("main menu buttons = %v", s.Buttons())
	}

	if !s.Click(ButtonCredits) || s.State() != StateCredits {
		t.Fatalf("credits click: state %v", s.State())
	}
	if s.Click(ButtonPlay) {
		t.Error("Play accepted on the credits screen")
	}
	press(s, input.KeyBack)
	if s.State() != StateMainMenu {
		t.Fatalf("back from credits: state %v", s.State())
	}

	press(s, input.KeyMenu3)
	if s.State() != StateInfo {
		t.Fatalf("menu key 3: state %v", s.State())
	}
	s.Click(ButtonBack)
	if s.State() != StateMainMenu {
		t.Fatalf("back from info: state %v", s.State())
	}
}

func TestPauseAndResume(t *testing.T) {
	s := newSession(t, config.Default())

	s.Click(ButtonPlay)
	if s.State() != StatePlaying || !s.Running() {
		t.Fatalf("after play: state %v running %v", s.State(), s.Running())
	}
	waitFor(t, "ticks", func() bool { return s.Snapshot().Tick > 0 })

	press(s, input.KeyPause)
	if s.State() != StatePaused || s.Running() {
		t.Fatalf("after pause: state %v running %v", s.State(), s.Running())
	}
	tick := s.Snapshot().Tick
	time.Sleep(30 * time.Millisecond)
	if s.Snapshot().Tick != tick {
		t.Fatal("simulation ticked while paused")
	}

	if !s.Click(ButtonStore) || s.State() != StateStore {
		t.Fatalf("store: state %v", s.State())
	}
	s.Click(ButtonBack)
	if s.State() != StatePaused {
		t.Fatalf("back from store: state %v", s.State())
	}

	press(s, input.KeyPause)
	if s.State() != StatePlaying || !s.Running() {
		t.Fatalf("after resume: state %v running %v", s.State(), s.Running())
	}
	waitFor(t, "resumed ticks", func() bool { return s.Snapshot().Tick > tick })

	s.Suspend()
	if s.State() != StatePaused {
		t.Errorf("Suspend: state %v", s.State())
	}
}

func TestBackToMainResetsRun(t *testing.T) {
	s := newSession(t, config.Default())
	s.Click(ButtonPlay)
	waitFor(t, "ticks", func() bool { return s.Snapshot().Tick > 3 })
	press(s, input.KeyPause)

	s.Click(ButtonBackToMain)

	if s.State() != StateMainMenu || s.Running() {
		t.Fatalf("state %v running %v", s.State(), s.Running())
	}
	snap := s.Snapshot()
	if snap.Tick != 0 || len(snap.Entities) != 1 || snap.HUD.Health != 200 {
		t.Errorf("fresh run: tick %d, %d entities, health %d", snap.Tick, len(snap.Entities), snap.HUD.Health)
	}
}

func TestSteeringMovesPlayer(t *testing.T) {
	s := newSession(t, config.Default())
	s.Click(ButtonPlay)
	start := s.Snapshot().Entities[0].X

	press(s, input.KeyRight)
	waitFor(t, "player to move right", func() bool { return s.Snapshot().Entities[0].X > start+1 })

	s.HandleKey(input.Event{Key: input.KeyRight, Down: false})
	waitFor(t, "player to stop", func() bool {
		a := s.Snapshot().Entities[0].X
		time.Sleep(15 * time.Millisecond)
		return s.Snapshot().Entities[0].X == a
	})
}

func TestFireOnlyWhilePlaying(t *testing.T) {
	s := newSession(t, config.Default())
	press(s, input.KeyFire)
	s.Click(ButtonPlay)
	press(s, input.KeyPause)
	if hasLaser(s) {
		t.Fatal("fire in menu spawned a laser")
	}

	press(s, input.KeyPause)
	press(s, input.KeyFire)
	waitFor(t, "laser", func() bool { return hasLaser(s) })
}

func hasLaser(s *Session) bool {
	for _, d := range s.Snapshot().Entities {
		if d.Sprite == "laser" {
			return true
		}
	}
	return false
}

func TestPlayerDeathReturnsToMainMenu(t *testing.T) {
	cfg := config.Default()
	cfg.View.Width = 20
	cfg.Player.X, cfg.Player.Y = 10, 10
	cfg.Player.Health = 10
	cfg.Enemies = []config.EnemySettings{{
		Kind:       config.EnemyKindBasic,
		Health:     40,
		MaxHealth:  40,
		Speed:      0.5,
		MinLevel:   1,
		Frequency:  1,
		Quota:      5,
		ShootTicks: 500,
		Sprite:     config.SpriteSettings{Name: "basic_enemy", Width: 30, Height: 30},
	}}
	s := newSession(t, cfg)

	s.Click(ButtonPlay)
	waitFor(t, "game over", func() bool { return s.State() == StateMainMenu })

	if s.Running() {
		t.Error("still running after game over")
	}
	if hud := s.Snapshot().HUD; hud.Health != 10 || hud.Level != 1 {
		t.Errorf("fresh player health %d level %d", hud.Health, hud.Level)
	}
}

func TestQuit(t *testing.T) {
	s := newSession(t, config.Default())
	s.Click(ButtonPlay)
	press(s, input.KeyQuit)

	select {
	case <-s.Done():
	default:
		t.Fatal("Done not closed")
	}
	if s.State() != StateQuit || s.Running() {
		t.Errorf("state %v running %v", s.State(), s.Running())
	}
	press(s, input.KeyQuit) // second quit must not panic
}
