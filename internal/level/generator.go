// Package level decides which enemies enter the playfield and when a level ends.
package level

import (
	"math/rand"

	"github.com/spaceblaster/spaceblaster/internal/object"
)

// Quota growth rules applied on every level advance.
const (
	quotaGrowthMin   = 5
	quotaGrowthRange = 15 // growth is drawn from [quotaGrowthMin, quotaGrowthMin+quotaGrowthRange)
	quotaGrowthUntil = 15 // quotas stop growing once this level is reached
)

// DefaultTicksPerSecond converts cooldown seconds to ticks for a 10ms loop.
const DefaultTicksPerSecond = 100

// entry tracks one prototype of the roster.
type entry struct {
	proto   *object.Enemy
	quota   int // spawns allowed this level
	initial int // quota at level 1
	spawned int
}

// Generator spawns clones of its roster at the top of the playfield, gated by
// level, per-level quota and a per-tick random trial.
type Generator struct {
	// TicksPerSecond converts cooldown seconds into ticks.
	TicksPerSecond float64

	level    int
	roster   []*entry
	cooldown int
	width    float64
	rng      *rand.Rand
}

// NewGenerator creates a generator at level 1 for a playfield of the given width.
func NewGenerator(width float64, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Generator{
		TicksPerSecond: DefaultTicksPerSecond,
		level:          1,
		width:          width,
		rng:            rng,
	}
}

// Add appends a prototype to the roster. Its quota starts at Stats.Quota.
func (g *Generator) Add(proto *object.Enemy) {
	g.roster = append(g.roster, &entry{
		proto:   proto,
		quota:   proto.Stats.Quota,
		initial: proto.Stats.Quota,
	})
}

// Level returns the current level, starting at 1.
func (g *Generator) Level() int { return g.level }

// Len returns the number of prototypes in the roster.
func (g *Generator) Len() int { return len(g.roster) }

// Spawned returns how many clones of prototype i were spawned this level.
func (g *Generator) Spawned(i int) int { return g.roster[i].spawned }

// Quota returns how many clones of prototype i the current level allows.
func (g *Generator) Quota(i int) int { return g.roster[i].quota }

// Cooldown returns the remaining ticks before spawning resumes.
func (g *Generator) Cooldown() int { return g.cooldown }

// NewEntities runs one tick of spawning. While the level cooldown is active it only
// counts the cooldown down. Otherwise each eligible prototype gets one random trial.
func (g *Generator) NewEntities() []*object.Enemy {
	if g.cooldown > 0 {
		g.cooldown--
		return nil
	}

	var spawned []*object.Enemy
	for _, e := range g.roster {
		if g.level < e.proto.Stats.MinLevel || e.spawned >= e.quota {
			continue
		}
		if !g.trial(e.proto.Stats.Frequency) {
			continue
		}
		spawned = append(spawned, e.proto.CloneAt(g.rng.Float64()*g.width, 0))
		e.spawned++
	}
	return spawned
}

// trial succeeds with probability 1/frequency. Frequencies of 1 or less always succeed.
func (g *Generator) trial(frequency float64) bool {
	n := int(frequency)
	if n <= 1 {
		return true
	}
	return g.rng.Intn(n) == 0
}

// LevelDone reports whether every prototype has used up its quota. Prototypes
// whose MinLevel is above the current level are included, so they block
// completion. An empty roster is never done.
func (g *Generator) LevelDone() bool {
	if len(g.roster) == 0 {
		return false
	}
	for _, e := range g.roster {
		if e.spawned < e.quota {
			return false
		}
	}
	return true
}

// Advance moves to the next level: spawning pauses for cooldownSeconds, counters
// reset and, below level 15, every quota grows by 5 to 19.
func (g *Generator) Advance(cooldownSeconds float64) {
	g.cooldown = int(cooldownSeconds * g.TicksPerSecond)
	g.level++
	for _, e := range g.roster {
		e.spawned = 0
		if g.level < quotaGrowthUntil {
			e.quota += quotaGrowthMin + g.rng.Intn(quotaGrowthRange)
		}
	}
}

// Reset returns to level 1 with the level 1 quotas, keeping the roster.
func (g *Generator) Reset() {
	g.level = 1
	g.cooldown = 0
	for _, e := range g.roster {
		e.spawned = 0
		e.quota = e.initial
	}
}
