package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config with PIETOS_* environment variables declared in
// the struct tags.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
