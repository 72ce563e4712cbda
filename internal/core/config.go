package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to size the play area and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame clock ticks per second (default 60)
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Difficulty level derived from the score
	Lives    int  // Remaining lives
	GameOver bool // Whether the run has ended
	Quit     bool // Whether the player asked to leave the session
}

// StepResult is returned by Game.Step() after each simulation step.
// Contains the updated game state and the sound triggers emitted during the step.
type StepResult struct {
	State  GameState
	Sounds []Sound
}
