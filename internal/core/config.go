package core

// RuntimeConfig contains front-end settings passed to a session at start.
type RuntimeConfig struct {
	ScreenW       int // Screen width in characters
	ScreenH       int // Screen height in characters
	TickRate      int // Frames per second of the UI loop
	StepsPerFrame int // World ticks run per frame while the player is busy
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		TickRate:      30,
		StepsPerFrame: 50,
	}
}
