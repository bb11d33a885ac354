package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the CLI's defaults. Every field can be overridden per
// invocation by a flag.
type Config struct {
	LogFile     string // empty disables file logging
	LinesLimit  int
	Timestamp   bool
	PrefixColor string
	LabelColor  string
	Theme       string // viewer theme name
}

const (
	defaultConfigPath  = "~/.config/safeprint/config.toml"
	defaultLinesLimit  = 10000
	defaultPrefixColor = "GREEN"
	defaultLabelColor  = "RED"
	defaultTheme       = "Nightfox"
)

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config, falling back to defaults when
// the file is missing or a field is empty.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		LinesLimit:  defaultLinesLimit,
		Timestamp:   true,
		PrefixColor: defaultPrefixColor,
		LabelColor:  defaultLabelColor,
		Theme:       defaultTheme,
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogFile     string `toml:"log_file"`
		LinesLimit  int    `toml:"lines_limit"`
		Timestamp   *bool  `toml:"timestamp"`
		PrefixColor string `toml:"prefix_color"`
		LabelColor  string `toml:"label_color"`
		Theme       string `toml:"theme"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if raw.LinesLimit > 0 {
		cfg.LinesLimit = raw.LinesLimit
	}
	if raw.Timestamp != nil {
		cfg.Timestamp = *raw.Timestamp
	}
	if c := strings.TrimSpace(raw.PrefixColor); c != "" {
		cfg.PrefixColor = c
	}
	if c := strings.TrimSpace(raw.LabelColor); c != "" {
		cfg.LabelColor = c
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
