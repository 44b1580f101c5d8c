// Package config provides YAML-based configuration for gravedigger:
// simulation pacing, speed modifiers, world population and file locations.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gravedigger/internal/game"
)

// Config is the complete application configuration.
type Config struct {
	Sim   SimConfig   `yaml:"sim"`
	Speed SpeedConfig `yaml:"speed"`
	World WorldConfig `yaml:"world"`
	Log   LogConfig   `yaml:"log"`
}

// SimConfig controls how the front-end paces the simulation.
type SimConfig struct {
	TickRate      int `yaml:"tick_rate"`       // UI frames per second
	StepsPerFrame int `yaml:"steps_per_frame"` // world ticks per frame while the player is busy
	RunLimit      int `yaml:"run_limit"`       // tick bound for headless runs
}

// SpeedConfig holds the walking time multipliers.
type SpeedConfig struct {
	Default float64 `yaml:"default"`
	Zombie  float64 `yaml:"zombie"`
}

// WorldConfig controls new worlds and where they are stored.
type WorldConfig struct {
	Zombies     int    `yaml:"zombies"`
	SpawnRadius int    `yaml:"spawn_radius"`
	SavesDir    string `yaml:"saves_dir"`
	DBPath      string `yaml:"db_path"`
}

// LogConfig controls the in-game message log.
type LogConfig struct {
	Limit int `yaml:"limit"` // messages kept on screen
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Sim.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("sim.tick_rate must be positive, got %d", c.Sim.TickRate))
	}
	if c.Sim.StepsPerFrame <= 0 {
		errs = append(errs, fmt.Errorf("sim.steps_per_frame must be positive, got %d", c.Sim.StepsPerFrame))
	}
	if c.Sim.RunLimit <= 0 {
		errs = append(errs, fmt.Errorf("sim.run_limit must be positive, got %d", c.Sim.RunLimit))
	}
	if c.Speed.Default <= 0 {
		errs = append(errs, fmt.Errorf("speed.default must be positive, got %v", c.Speed.Default))
	}
	if c.Speed.Zombie <= 0 {
		errs = append(errs, fmt.Errorf("speed.zombie must be positive, got %v", c.Speed.Zombie))
	}
	if c.World.Zombies < 0 {
		errs = append(errs, fmt.Errorf("world.zombies must not be negative, got %d", c.World.Zombies))
	}
	if c.Log.Limit <= 0 {
		errs = append(errs, fmt.Errorf("log.limit must be positive, got %d", c.Log.Limit))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Rules converts the speed settings for the simulation.
func (c Config) Rules() game.Rules {
	return game.Rules{DefaultSpeed: c.Speed.Default, ZombieSpeed: c.Speed.Zombie}
}

// Setup converts the world settings for world creation.
func (c Config) Setup() game.Setup {
	return game.Setup{Zombies: c.World.Zombies, SpawnRadius: c.World.SpawnRadius}
}
