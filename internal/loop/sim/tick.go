package sim

import (
	"github.com/spaceblaster/spaceblaster/internal/loop/config"
	"github.com/spaceblaster/spaceblaster/internal/object"
	"github.com/spaceblaster/spaceblaster/internal/physics"
)

// TickResult reports the events of one Step.
type TickResult struct {
	PlayerDied    bool
	LevelAdvanced bool
	Spawned       int
	Destroyed     int // Ships shot down
}

// Step advances the world by one tick:
//
//  1. projectiles move and hit the other faction,
//  2. ships are reaped, fire, move and ram the player,
//  3. the player steers and moves within the playfield,
//  4. a cleared level advances, then new enemies spawn,
//  5. a player without health ends the run.
//
// Collisions use the player's box from the start of the tick.
func (w *World) Step() TickResult {
	w.mu.Lock()
	defer w.mu.Unlock()

	var res TickResult
	w.applyCommands()
	playerBox := w.player.Bounds()

	w.stepProjectiles(playerBox)
	w.stepShips(playerBox, &res)
	w.stepPlayer()

	if w.gen.LevelDone() {
		w.gen.Advance(w.cooldown)
		w.level++
		res.LevelAdvanced = true
		w.logger.Info("level cleared", "level", w.level, "score", w.player.Score())
	}
	for _, e := range w.gen.NewEntities() {
		w.addShip(e)
		res.Spawned++
	}

	w.tick++
	if w.player.Health() <= 0 {
		res.PlayerDied = true
		w.logger.Info("player destroyed", "level", w.level, "score", w.player.Score(), "tick", w.tick)
	}

	w.renderer.Redraw(w.publish())
	return res
}

// stepProjectiles moves every laser and resolves its hits. A player laser is
// used up by the first live ship it touches.
func (w *World) stepProjectiles(playerBox physics.Rect) {
	kept := w.projectiles[:0]
	for _, l := range w.projectiles {
		l.Move()
		if !w.bounds.Contains(l.X, l.Y, l.Width()) || w.escaped(l) {
			w.renderer.Remove(l.ID())
			continue
		}

		box := l.Bounds()
		if l.Faction() == object.FactionEnemy {
			if box.Intersects(playerBox) {
				w.player.Damage(l.Damage())
				w.renderer.Remove(l.ID())
				continue
			}
		} else if ship := w.firstShipHit(box); ship != nil {
			ship.Damage(l.Damage())
			w.renderer.Remove(l.ID())
			continue
		}
		kept = append(kept, l)
	}
	clear(w.projectiles[len(kept):])
	w.projectiles = kept
}

// escaped reports whether a laser has climbed a full playfield height above the
// top edge. Ships spawn at y=0 and only move down, so it can never hit again.
func (w *World) escaped(l *object.Laser) bool {
	return l.VY <= 0 && l.Y+l.Height()/2 < -w.bounds.Height
}

func (w *World) firstShipHit(box physics.Rect) *object.Enemy {
	for _, s := range w.ships {
		if !s.Destroyed() && box.Intersects(s.Bounds()) {
			return s
		}
	}
	return nil
}

// stepShips reaps destroyed ships, fires ready guns, moves the rest and applies
// ramming. Lasers fired this tick start moving next tick.
func (w *World) stepShips(playerBox physics.Rect, res *TickResult) {
	var fired []*object.Laser

	kept := w.ships[:0]
	for _, s := range w.ships {
		if s.Destroyed() {
			w.renderer.Remove(s.ID())
			w.player.AddScore(killScore(s))
			res.Destroyed++
			continue
		}

		if s.ShouldFire() {
			fired = append(fired, s.Fire())
		}

		s.Move()
		if !w.bounds.Contains(s.X, s.Y, s.Width()) {
			w.renderer.Remove(s.ID())
			continue
		}
		if s.Alive {
			s.Update()
		}
		if s.Bounds().Intersects(playerBox) {
			w.renderer.Remove(s.ID())
			w.player.Damage(config.ContactDamage)
			continue
		}
		kept = append(kept, s)
	}
	clear(w.ships[len(kept):])
	w.ships = kept

	for _, l := range fired {
		w.addProjectile(l)
	}
}

// killScore is the enemy's configured points, or the default kill score when unset.
func killScore(s *object.Enemy) int {
	if s.Stats.Points > 0 {
		return s.Stats.Points
	}
	return config.KillScore
}

// stepPlayer applies steering and moves the player without leaving the playfield.
func (w *World) stepPlayer() {
	w.player.Update()
	w.player.MoveWithin(w.bounds)
}
