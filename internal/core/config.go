package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Update ticks per second
	Seed     int64 // Reserved for games with randomness; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Moves spent so far
	GameOver bool   // Whether the run has ended
	Paused   bool   // Whether input is currently ignored
	Level    string // ID of the level in play, empty when none is loaded
}

// LevelResult describes a level that finished (won or lost) during a step.
type LevelResult struct {
	Level string
	Moves int
	Won   bool
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState

	// Finished lists levels that ended during this step, in order.
	// The platform records them in the result history.
	Finished []LevelResult
}
