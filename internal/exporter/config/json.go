package config

import (
	"encoding/json"
	"os"

	"github.com/nimdaved/toolrent/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file. Keys missing from
// the file keep the value they had before loading.
type JsonConfig struct {
	Entities  []string `json:"entities"`
	OutputDir string   `json:"output_dir"`
	Indent    bool     `json:"indent"`
	LogLevel  string   `json:"log_level"`
}

// parseJson overlays the file named by -c/-config onto config.
// Nothing happens when no file is given.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{
		Entities:  config.Entities,
		OutputDir: config.OutputDir,
		Indent:    config.Indent,
		LogLevel:  config.LogLevel,
	}
	if err := json.Unmarshal(data, c); err != nil {
		return err
	}

	config.Entities = c.Entities
	config.OutputDir = c.OutputDir
	config.Indent = c.Indent
	config.LogLevel = c.LogLevel
	return nil
}
