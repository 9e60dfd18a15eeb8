package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/tomaszmj/justify-text/justify"
)

// Config holds the command defaults, optionally loaded from a TOML file:
//
//	width = 72
//	greedy = false
//	justified = true
type Config struct {
	Width     int  `toml:"width"`
	Greedy    bool `toml:"greedy"`
	Justified bool `toml:"justified"`
}

// DefaultConfig returns the built-in defaults: width 80, optimal breaking,
// flush-left rendering.
func DefaultConfig() Config {
	return Config{Width: 80}
}

// Load overlays c with the values set in the TOML file at path. Keys absent
// from the file keep their current values.
func (c *Config) Load(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	return nil
}

// Options translates the config into justify options.
func (c Config) Options() justify.Options {
	opts := justify.DefaultOptions()
	if c.Greedy {
		opts.Algorithm = justify.Greedy
	}
	if c.Justified {
		opts.Alignment = justify.Justified
	}

	return opts
}
