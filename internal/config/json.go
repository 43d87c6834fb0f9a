package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pietos/pietos-cli/internal/flagx"
	"github.com/pietos/pietos-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify delays either as strings like "1s" or
// as integer nanoseconds.
type JsonConfig struct {
	ServiceURL      string          `json:"service_url"`
	DatabaseDSN     string          `json:"database_dsn"`
	ModalCloseDelay *timex.Duration `json:"modal_close_delay"`
	GatedServices   []string        `json:"gated_services"`
	OpenServices    []string        `json:"open_services"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c/-config flags. With no such flag the function is a
// no-op. Read or unmarshal errors panic; config is resolved before any
// user interaction, so there is nothing sensible to recover into. Only
// fields present in the file override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServiceURL != "" {
		cfg.ServiceURL = jc.ServiceURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.ModalCloseDelay != nil {
		cfg.ModalCloseDelay = time.Duration(jc.ModalCloseDelay.Duration)
	}
	if jc.GatedServices != nil {
		cfg.GatedServices = jc.GatedServices
	}
	if jc.OpenServices != nil {
		cfg.OpenServices = jc.OpenServices
	}
}
