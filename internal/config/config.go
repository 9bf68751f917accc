// Package config loads the optional 101-linux configuration file.
//
// The file is YAML and lives at $XDG_CONFIG_HOME/101-linux/config.yaml unless LINUX101_CONFIG
// names another path:
//
//	content_dir: ~/src/101-linux-commands/ebook/en/content
//	no_color: true
//
// Environment variables take precedence over the file: LINUX101_CONTENT_DIR replaces
// content_dir, and any non-empty NO_COLOR turns colors off.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config holds the user settings.
type Config struct {
	// ContentDir is a directory of markdown lessons listed by the list command. Empty means the
	// embedded catalog is used.
	ContentDir string `mapstructure:"content_dir"`

	// NoColor disables colored output even on terminals.
	NoColor bool `mapstructure:"no_color"`
}

// DefaultPath returns the configuration file path, or "" when no config directory is known.
func DefaultPath(getenv func(string) string) string {
	if p := getenv("LINUX101_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "101-linux", "config.yaml")
}

// Load reads the file at path, if any, and applies environment overrides read through getenv.
// A missing file is not an error.
func Load(path string, getenv func(string) string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if cfg, err = Decode(data); err != nil {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}

	if dir := getenv("LINUX101_CONTENT_DIR"); dir != "" {
		cfg.ContentDir = dir
	}
	if getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	cfg.ContentDir = expandHome(cfg.ContentDir)
	return cfg, nil
}

// Decode parses YAML configuration. Unknown keys are rejected so typos do not go unnoticed.
func Decode(data []byte) (Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if raw == nil {
		return Config{}, nil
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	return cfg, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
