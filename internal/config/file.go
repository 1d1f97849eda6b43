package config

import (
	"encoding/json"
	"io/fs"
	"os"

	"github.com/adrg/xdg"

	"github.com/lgbarn/textchess-go/internal/errors"
)

// FileName is the configuration file path relative to the XDG config
// directories.
const FileName = "textchess/config.json"

// InitConfig returns the defaults overlaid with the first config file found
// in the XDG config directories. A missing file is not an error.
func InitConfig() (*Config, error) {
	cfg := NewConfig()
	path, err := xdg.SearchConfigFile(FileName)
	if err == nil {
		if err := Load(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load overlays the JSON file at path onto cfg. Fields absent from the
// file keep their current values.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "parsing config %s: %v", path, err)
	}
	return nil
}

// Save writes cfg to the user's XDG config directory, creating it if
// needed, and returns the path written.
func (c *Config) Save() (string, error) {
	path, err := xdg.ConfigFile(FileName)
	if err != nil {
		return "", errors.Wrap(err, "locating config file")
	}
	return path, SaveFile(path, c, 0o664)
}

// SaveFile writes cfg as indented JSON.
func SaveFile(path string, cfg *Config, perm fs.FileMode) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return errors.Wrapf(err, "writing config %s", path)
	}
	return nil
}
