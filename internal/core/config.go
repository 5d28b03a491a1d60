package core

import "time"

// DefaultTickRate is the host frame rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig describes the host a visualizer runs in: the terminal it
// draws to, how often it redraws, and the seed its mazes derive from.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second
	Seed     int64 // 0 picks a time-based seed
}

// DefaultConfig returns the config of a plain 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// Resolved fills in the tick rate and seed when they are unset. The
// screen size is left alone; hosts learn it from the terminal.
func (c RuntimeConfig) Resolved() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// FrameInterval is the time between two host frames.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / DefaultTickRate
	}
	return time.Second / time.Duration(c.TickRate)
}
