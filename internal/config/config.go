// Package config assembles runtime settings for the Pietos CLI from
// defaults, an optional JSON file, environment variables, and command-line
// flags, in that order. Later sources win.
package config

import "time"

// Config holds runtime settings for the Pietos CLI.
//
// Fields:
//   - ServiceURL: base URL of the remote session service endpoint.
//   - DatabaseDSN: sqlite DSN for the local token store.
//   - ModalCloseDelay: how long a success message stays before the auth
//     dialog closes (registration uses one and a half times this).
//   - GatedServices / OpenServices: verification services offered on the
//     main view, with and without a login requirement.
type Config struct {
	ServiceURL      string        `env:"PIETOS_SERVICE_URL"`
	DatabaseDSN     string        `env:"PIETOS_DATABASE_DSN"`
	ModalCloseDelay time.Duration `env:"PIETOS_MODAL_CLOSE_DELAY"`
	GatedServices   []string      `env:"PIETOS_GATED_SERVICES" envSeparator:","`
	OpenServices    []string      `env:"PIETOS_OPEN_SERVICES" envSeparator:","`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServiceURL = "https://api.pietos.io/session"
	c.DatabaseDSN = "pietos.db"
	c.ModalCloseDelay = time.Second
	c.GatedServices = []string{"identity", "document", "phone"}
	c.OpenServices = []string{"public-record"}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
