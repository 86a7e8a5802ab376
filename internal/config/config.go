// Package config loads runtime settings from the environment and the
// activity seed that populates the registry at startup.
package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config carries all runtime settings. Values come from the environment;
// every field has a default so the server runs with no configuration.
type Config struct {
	ListenAddr string `env:"ACTIVITIES_ADDR,default=:8000"`
	StaticDir  string `env:"ACTIVITIES_STATIC_DIR,default=static"`
	SeedFile   string `env:"ACTIVITIES_SEED_FILE"`
	LogLevel   string `env:"ACTIVITIES_LOG_LEVEL,default=info"`

	CORSOrigins []string `env:"ACTIVITIES_CORS_ORIGINS,default=*"`

	// Rate limiting is off by default; the spec assumes non-adversarial
	// clients. Set both knobs to enable it.
	RateLimitPerSecond int `env:"ACTIVITIES_RATE_LIMIT,default=0"`
	RateLimitBurst     int `env:"ACTIVITIES_RATE_BURST,default=0"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}
