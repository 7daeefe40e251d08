// Package game ties the simulation to the menus and the keyboard.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/spaceblaster/spaceblaster/internal/config"
	"github.com/spaceblaster/spaceblaster/internal/input"
	"github.com/spaceblaster/spaceblaster/internal/level"
	"github.com/spaceblaster/spaceblaster/internal/logging"
	"github.com/spaceblaster/spaceblaster/internal/loop/sim"
	"github.com/spaceblaster/spaceblaster/internal/object"
	"github.com/spaceblaster/spaceblaster/internal/physics"
)

// Options configures a Session.
type Options struct {
	Settings config.Settings
	Renderer sim.Renderer // Optional
	Logger   *log.Logger  // Optional
	Seed     int64        // 0 picks a time based seed
}

// Session is one game window: the menu state machine plus the simulation it
// starts and stops. All methods are safe for concurrent use.
type Session struct {
	ctx    context.Context
	world  *sim.World
	runner *sim.Runner
	logger *log.Logger

	mu    sync.Mutex
	state State
	done  chan struct{}
}

// New builds the world described by opts.Settings and returns a session on the
// main menu. The simulation runs under ctx while playing.
func New(ctx context.Context, opts Options) (*Session, error) {
	s := opts.Settings
	if err := s.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = s.Loop.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	roster, err := object.NewRoster(s.Enemies, s.View.Width, rng)
	if err != nil {
		return nil, fmt.Errorf("build roster: %w", err)
	}
	gen := level.NewGenerator(s.View.Width, rng)
	gen.TicksPerSecond = float64(time.Second / s.Loop.TickPeriod())
	for _, e := range roster {
		gen.Add(e)
	}

	world := sim.NewWorld(sim.Options{
		Bounds: physics.Bounds{
			Width:     s.View.Width,
			Height:    s.View.Height,
			HUDHeight: s.View.HUDHeight,
		},
		NewPlayer:            func() *object.Player { return object.NewPlayerFrom(s.Player) },
		Generator:            gen,
		Renderer:             opts.Renderer,
		Logger:               logger,
		LevelCooldownSeconds: s.Loop.LevelCooldownSeconds,
	})

	session := &Session{
		ctx:    ctx,
		world:  world,
		runner: sim.NewRunner(world, s.Loop.TickPeriod(), logger),
		logger: logger,
		state:  StateMainMenu,
		done:   make(chan struct{}),
	}
	session.runner.OnPlayerDied = session.playerDied
	logger.Debug("session ready", "seed", seed, "enemies", len(roster))
	return session, nil
}

// State returns the current screen.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Running reports whether the simulation is ticking.
func (s *Session) Running() bool {
	return s.runner.Running()
}

// Snapshot returns the latest world snapshot.
func (s *Session) Snapshot() *sim.Snapshot {
	return s.world.Snapshot()
}

// Buttons lists the buttons of the current screen.
func (s *Session) Buttons() []Button {
	return Buttons(s.State())
}

// Done is closed when the user quits.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close stops the simulation.
func (s *Session) Close() {
	s.runner.Stop()
}

// Click presses a button. Buttons not shown on the current screen are ignored
// and reported as false.
func (s *Session) Click(b Button) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clickLocked(b)
}

func (s *Session) clickLocked(b Button) bool {
	switch {
	case s.state == StateMainMenu && b == ButtonPlay:
		s.playLocked()
	case s.state == StateMainMenu && b == ButtonCredits:
		s.setStateLocked(StateCredits)
	case s.state == StateMainMenu && b == ButtonInfo:
		s.setStateLocked(StateInfo)
	case s.state == StateMainMenu && b == ButtonQuit:
		s.quitLocked()
	case s.state == StatePaused && b == ButtonContinue:
		s.playLocked()
	case s.state == StatePaused && b == ButtonStore:
		s.setStateLocked(StateStore)
	case s.state == StatePaused && b == ButtonBackToMain:
		s.returnToMainLocked()
	case s.state == StateStore && b == ButtonBack:
		s.setStateLocked(StatePaused)
	case (s.state == StateCredits || s.state == StateInfo) && b == ButtonBack:
		s.setStateLocked(StateMainMenu)
	default:
		return false
	}
	return true
}

// HandleKey applies a key event. Steering, firing and pausing only act while
// playing; P also resumes from the pause menu. Releases are forwarded in every
// state so a key let go behind a menu does not leave the ship drifting.
func (s *Session) HandleKey(ev input.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !ev.Down {
		if axis, dir, ok := steering(ev.Key); ok {
			s.world.Send(sim.Release(axis, dir))
		}
		return
	}

	if ev.Key == input.KeyQuit {
		s.quitLocked()
		return
	}

	switch s.state {
	case StatePlaying:
		if axis, dir, ok := steering(ev.Key); ok {
			s.world.Send(sim.Steer(axis, dir))
			return
		}
		switch ev.Key {
		case input.KeyFire:
			s.world.Send(sim.Fire())
		case input.KeyPause:
			s.pauseLocked()
		}
	case StatePaused:
		if ev.Key == input.KeyPause {
			s.playLocked()
			return
		}
		s.menuKeyLocked(ev.Key)
	default:
		s.menuKeyLocked(ev.Key)
	}
}

// menuKeyLocked maps digit keys to buttons, Enter to the first button and Back to
// the Back button.
func (s *Session) menuKeyLocked(k input.Key) {
	buttons := Buttons(s.state)
	switch {
	case k.MenuIndex() >= 0 && k.MenuIndex() < len(buttons):
		s.clickLocked(buttons[k.MenuIndex()])
	case k == input.KeyEnter && len(buttons) > 0:
		s.clickLocked(buttons[0])
	case k == input.KeyBack:
		s.clickLocked(ButtonBack)
	}
}

// Suspend pauses a running game, e.g. when the window is minimised.
func (s *Session) Suspend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StatePlaying {
		s.pauseLocked()
	}
}

func (s *Session) playLocked() {
	if err := s.runner.Start(s.ctx); err != nil {
		s.logger.Warn("start simulation", "err", err)
	}
	s.setStateLocked(StatePlaying)
}

func (s *Session) pauseLocked() {
	s.runner.Stop()
	s.setStateLocked(StatePaused)
}

// returnToMainLocked ends the run and prepares a fresh one.
func (s *Session) returnToMainLocked() {
	s.runner.Stop()
	s.world.Reset()
	s.setStateLocked(StateMainMenu)
}

func (s *Session) quitLocked() {
	if s.state == StateQuit {
		return
	}
	s.runner.Stop()
	s.setStateLocked(StateQuit)
	close(s.done)
}

// playerDied runs on the simulation goroutine after the loop stopped.
func (s *Session) playerDied() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateQuit {
		return
	}
	hud := s.world.Snapshot().HUD
	s.logger.Info("game over", "score", hud.Score, "level", hud.Level)
	s.returnToMainLocked()
}

func (s *Session) setStateLocked(next State) {
	if next == s.state {
		return
	}
	s.logger.Debug("state change", "from", s.state, "to", next)
	s.state = next
}

// steering maps a steering key to the axis and direction it pushes.
func steering(k input.Key) (object.Axis, object.Acceleration, bool) {
	switch k {
	case input.KeyUp:
		return object.AxisY, object.AccelNegative, true
	case input.KeyDown:
		return object.AxisY, object.AccelPositive, true
	case input.KeyLeft:
		return object.AxisX, object.AccelNegative, true
	case input.KeyRight:
		return object.AxisX, object.AccelPositive, true
	}
	return 0, 0, false
}
