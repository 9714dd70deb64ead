package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driving Update/Render (default 60)
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

// GameState summarizes a game for the platform layer.
type GameState struct {
	Screen   string // Name of the active screen, e.g. "menu", "game", "game_over"
	Score    int    // Current score
	GameOver bool   // Whether the last game has ended
	Won      bool   // Whether the last game ended by filling the board
}

// StepResult is returned by a game's Update after each frame.
type StepResult struct {
	State GameState
	Quit  bool // The player asked to leave; the platform should exit
}
