package config

import (
	"flag"
	"os"

	"github.com/pietos/pietos-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-u string   base URL of the remote session service
//	-d string   sqlite DSN of the local token store
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServiceURL, "u", cfg.ServiceURL, "base URL of the session service")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "sqlite DSN of the local token store")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
