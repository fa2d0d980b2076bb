package config

import (
	"flag"
	"os"

	"github.com/vauthproject/vauth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   vault directory (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, so it does not interfere with the subcommand
// flag sets.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d"})

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&cfg.VaultDir, "d", cfg.VaultDir, "vault directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
