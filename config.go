package qcircuit

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

/*
Config holds the tunables of the sampler and the driver. Every field can be
overridden from the environment.
*/
type Config struct {
	MaxQubits int    `env:"QCIRCUIT_MAX_QUBITS" envDefault:"20"`
	Seed      uint64 `env:"QCIRCUIT_SEED" envDefault:"0"`
	Shots     int    `env:"QCIRCUIT_SHOTS" envDefault:"1024"`
	Workers   int    `env:"QCIRCUIT_WORKERS" envDefault:"4"`
}

func NewConfig() *Config {
	return &Config{
		MaxQubits: MaxQubits,
		Seed:      0,
		Shots:     1024,
		Workers:   4,
	}
}

// LoadConfig returns the defaults overridden by QCIRCUIT_* environment variables.
func LoadConfig() (*Config, error) {
	cfg := NewConfig()
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}

	cfg.normalize()
	return cfg, nil
}

// normalize clamps values into their usable ranges.
func (c *Config) normalize() {
	if c.MaxQubits < 1 || c.MaxQubits > MaxQubits {
		c.MaxQubits = MaxQubits
	}
	if c.Shots < 1 {
		c.Shots = 1
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
}

// RandomSource builds the measurement source from Seed.
func (c *Config) RandomSource() RandomSource {
	return NewRandomSource(c.Seed)
}
