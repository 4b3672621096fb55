// Package config handles configuration for the samples exporter,
// including defaults, JSON overlay, and command-line flags.
package config

import "fmt"

// Config holds runtime settings for the samples exporter.
//
// Fields:
//   - Entities: entity names to export; empty means all registered ones.
//   - OutputDir: directory for <entity>.test-samples.json files; empty means stdout.
//   - Indent: pretty-print the JSON output.
//   - LogLevel: slog level name (debug, info, warn, error).
type Config struct {
	Entities  []string
	OutputDir string
	Indent    bool
	LogLevel  string
}

// LoadDefaults sets every field to its default: all entities, written
// indented to stdout, logging at info.
func (c *Config) LoadDefaults() {
	c.Entities = nil
	c.OutputDir = ""
	c.Indent = true
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags in args.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
