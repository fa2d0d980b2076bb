package config

import (
	"encoding/json"
	"os"

	"github.com/vauthproject/vauth/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	VaultDir   string `json:"vault_dir"`
	DBFileName string `json:"db_file_name"`
}

// parseJson overlays Config with values loaded from a JSON file named by the
// -c/-config flag. Empty fields in the file leave the current value alone.
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
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

	if jc.VaultDir != "" {
		cfg.VaultDir = jc.VaultDir
	}
	if jc.DBFileName != "" {
		cfg.DBFileName = jc.DBFileName
	}
}
