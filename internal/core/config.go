package core

import "time"

// RuntimeConfig contains configuration passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW   int           // Screen width in characters
	ScreenH   int           // Screen height in characters
	TurnDelay time.Duration // Pause between agent turns
	Seed      int64         // RNG seed for the spawn sequence
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TurnDelay: 100 * time.Millisecond,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// GameState is the host-visible status of a running game.
type GameState struct {
	Score    int  // Lines cleared so far
	Turns    int  // Agent turns committed
	GameOver bool // No valid placement remained
}

// StepResult is returned after each agent turn.
type StepResult struct {
	State   GameState
	Cleared int // Lines cleared by this turn's lock
}
