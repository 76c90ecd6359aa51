// Package config loads dupclean's layered configuration: embedded
// defaults, then the user's XDG config file, then DUPCLEAN_ environment
// variables.
package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/dupclean/pkg/errors"
	"github.com/arthur-debert/dupclean/pkg/paths"
)

// Config is the resolved runtime configuration.
type Config struct {
	Destinations Destinations `koanf:"destinations" toml:"destinations"`
	Scan         Scan         `koanf:"scan" toml:"scan"`
}

// Destinations names the artifact directories, relative to the
// reference root unless absolute.
type Destinations struct {
	Report      string `koanf:"report" toml:"report"`
	Consolidate string `koanf:"consolidate" toml:"consolidate"`
	Duplicate   string `koanf:"duplicate" toml:"duplicate"`
}

// Scan controls the walker.
type Scan struct {
	// Root overrides the default scan root (the invocation directory).
	Root string `koanf:"root" toml:"root"`
	// SkipNames lists directory names pruned from every walk.
	SkipNames []string `koanf:"skip_names" toml:"skip_names"`
}

// defaults returns the built-in configuration values.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"destinations.report":      paths.DefaultReportDir,
		"destinations.consolidate": paths.DefaultConsolidateDir,
		"destinations.duplicate":   paths.DefaultDuplicateDir,
		"scan.root":                "",
		"scan.skip_names":          []string{},
	}
}

// Load resolves the configuration from defaults, the user config file
// (if present), and the environment.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}

	configPath := paths.ConfigFilePath()
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configPath)
		}
	}

	err := k.Load(env.Provider("DUPCLEAN_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "DUPCLEAN_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// Default returns the built-in configuration without consulting the
// filesystem or environment.
func Default() *Config {
	return &Config{
		Destinations: Destinations{
			Report:      paths.DefaultReportDir,
			Consolidate: paths.DefaultConsolidateDir,
			Duplicate:   paths.DefaultDuplicateDir,
		},
		Scan: Scan{SkipNames: []string{}},
	}
}
