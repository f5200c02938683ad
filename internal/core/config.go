package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the wall-clock length of one simulation tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended (won or lost)
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunSummary describes a finished session for run-history storage.
type RunSummary struct {
	Outcome   string        // "won" or "lost"
	Collected int           // Items collected during the run
	Total     int           // Items available in the run
	Elapsed   time.Duration // Session time until the outcome was reached
	Variant   string        // Map or level identifier
}

// RunReporter is implemented by games that can describe their last finished run.
// The platform persists the summary once per game over.
type RunReporter interface {
	RunSummary() (RunSummary, bool)
}

// Resizer is implemented by games that can adapt to a new screen size
// without losing the current session.
type Resizer interface {
	Resize(screenW, screenH int)
}
