package core

// RuntimeConfig is what the platform knows when a round starts.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // snake moves per second
	Seed     int64 // 0 lets the platform pick a time-based seed
}

// DefaultConfig is an 80x24 terminal at seven moves per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 7}
}

// GameState is the part of a game the platform acts on: scores are saved
// once GameOver flips, and Paused gates the back-to-menu key.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
	// Moved is false for ticks that did not advance the snake: paused,
	// already over, or a window too small for the board.
	Moved bool
}
