package sim

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/spaceblaster/spaceblaster/internal/logging"
	"github.com/spaceblaster/spaceblaster/internal/loop/config"
)

// ErrRunning is returned by Start when the loop is already running.
var ErrRunning = errors.New("simulation already running")

// Runner drives a World at a fixed tick rate on its own goroutine. It can be
// stopped and started again any number of times; the World is kept between runs.
type Runner struct {
	// OnPlayerDied is called from the loop goroutine after the loop stopped
	// because the player ran out of health.
	OnPlayerDied func()

	world  *World
	tick   time.Duration
	logger *log.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRunner creates a stopped runner. A non-positive tick uses the default 10ms.
func NewRunner(w *World, tick time.Duration, logger *log.Logger) *Runner {
	if tick <= 0 {
		tick = config.DefaultTickTime
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{world: w, tick: tick, logger: logger}
}

// World returns the simulated world.
func (r *Runner) World() *World { return r.world }

// Running reports whether the loop goroutine is active.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done != nil
}

// Start launches the loop. It runs until ctx is cancelled, Stop is called or the
// player dies.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done != nil {
		return ErrRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done
	go r.run(ctx, done)
	r.logger.Debug("simulation started")
	return nil
}

// Stop halts the loop and waits for the tick in progress to finish, so the world
// is never left half updated. Stopping a stopped runner is a no-op.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	r.logger.Debug("simulation stopped")
}

// run is the loop body. Blocks until the context is cancelled or the player dies.
func (r *Runner) run(ctx context.Context, done chan struct{}) {
	died := false
	defer func() {
		r.mu.Lock()
		if r.done == done {
			r.cancel()
			r.cancel, r.done = nil, nil
		}
		r.mu.Unlock()
		close(done)

		if died && r.OnPlayerDied != nil {
			r.OnPlayerDied()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		frameStart := time.Now()

		if res := r.world.Step(); res.PlayerDied {
			died = true
			return
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < r.tick {
			time.Sleep(r.tick - elapsed)
		}
	}
}
