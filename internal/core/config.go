package core

import "time"

// RuntimeConfig contains the settings an engine is created with.
type RuntimeConfig struct {
	BoardW int           // Board width in cells
	BoardH int           // Board height in cells
	Tick   time.Duration // Period between engine ticks
	Seed   int64         // RNG seed for piece generation
}

// DefaultConfig returns a RuntimeConfig with the classic board size.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		BoardW: 10,
		BoardH: 18,
		Tick:   800 * time.Millisecond,
		Seed:   0, // 0 means use current time in platform layer
	}
}
