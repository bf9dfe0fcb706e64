package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the keys accepted in the config file. Every field
// is optional; flags parsed afterwards win over file values.
type fileConfig struct {
	Kind     string `toml:"kind"`
	Punct    string `toml:"punct"`
	TimeMode string `toml:"time_mode"`
	ShowZone *bool  `toml:"show_zone"`
	JSON     *bool  `toml:"json"`
	Color    string `toml:"color"`
}

// LoadConfigFile applies the pktfmt config file onto cfg. Location:
// PKTFMT_CONFIG_PATH env var, or ~/.pktfmt.toml. A missing file is not
// an error; a file that does not parse or names unknown values is.
func LoadConfigFile(cfg *Config) error {
	path := os.Getenv("PKTFMT_CONFIG_PATH")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".pktfmt.toml")
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return fc.apply(cfg, path)
}

func (fc *fileConfig) apply(cfg *Config, path string) error {
	if fc.Kind != "" {
		k, err := ParseKind(fc.Kind)
		if err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		cfg.Kind = k
	}
	if fc.Punct != "" {
		if len(fc.Punct) != 1 {
			return fmt.Errorf("config file %s: punct must be one character, got %q", path, fc.Punct)
		}
		cfg.Punct = fc.Punct[0]
	}
	if fc.TimeMode != "" {
		m, err := ParseTimeMode(fc.TimeMode)
		if err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		cfg.TimeMode = m
	}
	if fc.ShowZone != nil {
		cfg.ShowZone = *fc.ShowZone
	}
	if fc.JSON != nil {
		cfg.JSONOutput = *fc.JSON
	}
	if fc.Color != "" {
		c, err := ParseColorMode(fc.Color)
		if err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		cfg.Color = c
	}
	return nil
}
