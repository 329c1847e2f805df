package core

// RuntimeConfig contains configuration passed to the engine at start.
// The engine uses this to adapt to screen size and for deterministic
// simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	TickMS  int   // Simulation tick interval in milliseconds (default 150)
	Seed    int64 // RNG seed; 0 means the platform picks a time-based seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		TickMS:  150,
		Seed:    0,
	}
}

// Status is the session-level state machine.
// Terminated is absorbing; a new session requires a fresh Reset.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusTerminated
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// GameState communicates session status to the platform after each tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by the engine after each simulation tick.
type StepResult struct {
	State GameState
}
