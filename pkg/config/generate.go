package config

import (
	_ "embed"

	gotoml "github.com/pelletier/go-toml/v2"
)

//go:embed embedded/defaults.toml
var defaultsContent []byte

// GetDefaultsContent returns the annotated default config file, suitable
// for writing as a starting point for user configuration.
func GetDefaultsContent() string {
	return string(defaultsContent)
}

// Marshal renders a Config as TOML, in the same shape the annotated
// defaults file uses.
func Marshal(cfg *Config) ([]byte, error) {
	return gotoml.Marshal(cfg)
}
