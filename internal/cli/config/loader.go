package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/providers/file"
)

// Config file location, relative to the user configuration directory.
const (
	AppDir   = "atlascli"
	FileName = "config.toml"
)

// DefaultConfigPath returns the default config file path:
// $XDG_CONFIG_HOME/atlascli/config.toml on Linux,
// ~/Library/Application Support/atlascli/config.toml on macOS and
// %AppData%\atlascli\config.toml on Windows.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, AppDir, FileName), nil
}

// Load reads and parses the config file at path.
// An empty path means DefaultConfigPath. A missing file is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
