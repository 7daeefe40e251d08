// Package config centralizes the fixed game rules and front end timing.
// User-tunable values live in internal/config.
package config

import "time"

// Combat
const (
	ContactDamage = 10 // Player health lost when an enemy rams it
	KillScore     = 10 // Score for a destroyed enemy without its own points
)

// Simulation tick rate
const (
	DefaultTickTime = 10 * time.Millisecond
	CommandBuffer   = 64 // Pending player commands before new ones are dropped
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Terminal viewport: the playfield is scaled into at most this many cells.
const (
	MaxRenderCols = 160
	MaxRenderRows = 60
)
