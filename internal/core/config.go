package core

// DefaultTickRate is the simulation rate in ticks per second.
const DefaultTickRate = 30

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score known to the game
	Lives     int  // Remaining lives
	Level     int  // Zero-based level index
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// HighScoreStore persists a single best-score value for one game.
// Read reports false when nothing usable is stored.
// Write is synchronous; callers treat failures as best-effort.
type HighScoreStore interface {
	Read() (int, bool)
	Write(score int) error
}

// MemoryHighScores is an in-process HighScoreStore.
// Used when no database is available and in tests.
type MemoryHighScores struct {
	Value  int
	Set    bool
	Writes []int
	Err    error // returned from Write when non-nil
}

// Read returns the stored value, if any.
func (m *MemoryHighScores) Read() (int, bool) {
	return m.Value, m.Set
}

// Write records a new value.
func (m *MemoryHighScores) Write(score int) error {
	m.Writes = append(m.Writes, score)
	if m.Err != nil {
		return m.Err
	}
	m.Value = score
	m.Set = true
	return nil
}
