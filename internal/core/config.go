package core

// RuntimeConfig contains platform options passed to a game driver.
// Game rules live in config.SnakeConfig; this only covers the terminal and clock.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 25,
		Seed:     0, // 0 means use current time in platform layer
	}
}
