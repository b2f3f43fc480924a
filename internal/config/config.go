package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds process configuration sourced from environment variables.
type Config struct {
	Addr           string        `env:"MERGINGTON_ADDR"            envDefault:":8080"`
	AuthSecret     string        `env:"MERGINGTON_AUTH_SECRET,required,notEmpty"`
	TokenTTL       time.Duration `env:"MERGINGTON_TOKEN_TTL"       envDefault:"24h"`
	TeachersFile   string        `env:"MERGINGTON_TEACHERS_FILE"   envDefault:"teachers.json"`
	ActivitiesFile string        `env:"MERGINGTON_ACTIVITIES_FILE"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
