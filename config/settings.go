package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the process level options shared by the runners.
type Settings struct {
	TickRate  int    `env:"HAUNT_TICK_RATE" envDefault:"60"`
	LevelsDir string `env:"HAUNT_LEVELS"` // Empty plays the bundled levels
	Level     string `env:"HAUNT_LEVEL"`
	Tuning    string `env:"HAUNT_TUNING"`
	Script    string `env:"HAUNT_SCRIPT"`
	Ticks     int    `env:"HAUNT_TICKS" envDefault:"600"`
	LogLevel  string `env:"HAUNT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"HAUNT_LOG_FORMAT" envDefault:"console"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.TickRate <= 0 {
		return Settings{}, fmt.Errorf("parse env: tick rate must be positive, got %d", s.TickRate)
	}
	return s, nil
}
