package config

import (
	_ "embed"
)

//go:embed defaults/gravedigger.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration.
func Default() Config {
	return Config{
		Sim: SimConfig{
			TickRate:      30,
			StepsPerFrame: 50,
			RunLimit:      100000,
		},
		Speed: SpeedConfig{
			Default: 1.0,
			Zombie:  0.75,
		},
		World: WorldConfig{
			Zombies:     4,
			SpawnRadius: 12,
			SavesDir:    "~/.gravedigger/save",
			DBPath:      "~/.gravedigger/worlds.db",
		},
		Log: LogConfig{
			Limit: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
