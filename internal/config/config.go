package config

import (
	"time"
)

// Config defines the configuration structure.
type Config struct {
	General struct {
		LogLevel int `mapstructure:"log_level"`
	}

	Scanner struct {
		Port        string        `mapstructure:"port"`
		BaudRate    int           `mapstructure:"baud_rate"`
		ReadTimeout time.Duration `mapstructure:"read_timeout"`
		Virtual     bool          `mapstructure:"virtual"`
	}
}

// C holds the global configuration.
var C Config
