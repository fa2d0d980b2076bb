// Package config resolves runtime settings for the vauth CLI by layering
// defaults, an optional JSON file, and command-line flags. Later sources
// take precedence over earlier ones.
package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the vauth CLI.
//
// Fields:
//   - VaultDir: directory holding the vault database file.
//   - DBFileName: name of the sqlite file inside VaultDir.
type Config struct {
	VaultDir   string
	DBFileName string
}

// LoadDefaults populates c with sensible defaults: a per-user dot directory
// under the home directory.
func (c *Config) LoadDefaults() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	c.VaultDir = filepath.Join(home, ".vauth")
	c.DBFileName = "vauth.db"
}

// DBPath returns the full path of the vault database file.
func (c *Config) DBPath() string {
	return filepath.Join(c.VaultDir, c.DBFileName)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
