// Package sim runs the fixed-tick game simulation and publishes snapshots for
// renderers.
package sim

import (
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/spaceblaster/spaceblaster/internal/level"
	"github.com/spaceblaster/spaceblaster/internal/logging"
	"github.com/spaceblaster/spaceblaster/internal/loop/config"
	"github.com/spaceblaster/spaceblaster/internal/object"
	"github.com/spaceblaster/spaceblaster/internal/physics"
)

// Options configures a World.
type Options struct {
	Bounds    physics.Bounds
	NewPlayer func() *object.Player // Called for every new run
	Generator *level.Generator
	Renderer  Renderer    // Defaults to NopRenderer
	Logger    *log.Logger // Defaults to a discarding logger

	// LevelCooldownSeconds pauses spawning after a level is cleared.
	LevelCooldownSeconds float64
}

// World is the arena owning every live entity. Step is the only writer of entity
// state; other goroutines send commands and read snapshots.
type World struct {
	mu sync.Mutex

	bounds      physics.Bounds
	newPlayer   func() *object.Player
	player      *object.Player
	ships       []*object.Enemy // Iteration order decides which ship a laser hits
	projectiles []*object.Laser
	gen         *level.Generator
	level       int // Displayed level counter
	tick        uint64
	cooldown    float64

	renderer Renderer
	logger   *log.Logger
	commands chan Command
	snapshot atomic.Pointer[Snapshot]
}

// NewWorld creates a world with a fresh player and publishes its first snapshot.
func NewWorld(opts Options) *World {
	if opts.Renderer == nil {
		opts.Renderer = NopRenderer{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Generator == nil {
		opts.Generator = level.NewGenerator(opts.Bounds.Width, nil)
	}
	if opts.NewPlayer == nil {
		opts.NewPlayer = func() *object.Player {
			return object.NewPlayer(opts.Bounds.Width/2, opts.Bounds.Height/2, 100, nil, nil)
		}
	}

	w := &World{
		bounds:    opts.Bounds,
		newPlayer: opts.NewPlayer,
		gen:       opts.Generator,
		cooldown:  opts.LevelCooldownSeconds,
		renderer:  opts.Renderer,
		logger:    opts.Logger,
		commands:  make(chan Command, config.CommandBuffer),
	}
	w.mu.Lock()
	w.resetLocked()
	w.mu.Unlock()
	return w
}

// Snapshot returns the latest published snapshot. It is never nil.
func (w *World) Snapshot() *Snapshot {
	return w.snapshot.Load()
}

// Bounds returns the playfield.
func (w *World) Bounds() physics.Bounds {
	return w.bounds
}

// Reset empties the world and starts a new run with a fresh player at level 1.
// Pending commands are discarded.
func (w *World) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resetLocked()
}

func (w *World) resetLocked() {
	w.renderer.Clear()
	w.ships = nil
	w.projectiles = nil
	w.gen.Reset()
	w.level = 1
	w.tick = 0
	w.drainCommands()

	w.player = w.newPlayer()
	w.renderer.Add(drawableOf(&w.player.Entity))
	w.publish()
}

// addShip places a spawned enemy in the world.
func (w *World) addShip(e *object.Enemy) {
	w.ships = append(w.ships, e)
	w.renderer.Add(drawableOf(&e.Entity))
}

// addProjectile places a fired laser in the world.
func (w *World) addProjectile(l *object.Laser) {
	w.projectiles = append(w.projectiles, l)
	w.renderer.Add(drawableOfLaser(l))
}

// publish builds and stores a snapshot of the current state.
func (w *World) publish() *Snapshot {
	entities := make([]Drawable, 0, 1+len(w.ships)+len(w.projectiles))
	entities = append(entities, drawableOf(&w.player.Entity))
	for _, s := range w.ships {
		entities = append(entities, drawableOf(&s.Entity))
	}
	for _, l := range w.projectiles {
		entities = append(entities, drawableOfLaser(l))
	}

	s := &Snapshot{
		Tick:     w.tick,
		Bounds:   w.bounds,
		Entities: entities,
		HUD: HUD{
			Health:    w.player.Health(),
			MaxHealth: w.player.MaxHealth(),
			Score:     w.player.Score(),
			Money:     w.player.Money(),
			Level:     w.level,
		},
	}
	w.snapshot.Store(s)
	return s
}
