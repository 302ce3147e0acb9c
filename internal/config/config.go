// Package config loads gplgen's environment configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
)

// Environment variables read by gplgen.
const (
	EnvPaletteDir = "GPLGEN_PALETTE_DIR"
	EnvLang       = "GPLGEN_LANG"
	EnvLogLevel   = "GPLGEN_LOG_LEVEL"
	EnvNoColor    = "NO_COLOR"
)

// Config is the environment configuration.
type Config struct {
	// PaletteDir overrides the Inkscape palette directory when set.
	PaletteDir string
	// Lang is the preferred message language, empty for the locale default.
	Lang string
	// LogLevel is the log level, hclog.NoLevel when unset.
	LogLevel hclog.Level
	// NoColor disables coloured output.
	NoColor bool
}

// EnvFiles returns the .env files consulted at start-up, in priority order:
// ./.env, then $XDG_CONFIG_HOME/gplgen/env (~/.config/gplgen/env by default).
func EnvFiles(getenv func(string) string) []string {
	files := []string{".env"}

	root := getenv("XDG_CONFIG_HOME")
	if root == "" {
		if home := getenv("HOME"); home != "" {
			root = filepath.Join(home, ".config")
		}
	}
	if root != "" {
		files = append(files, filepath.Join(root, "gplgen", "env"))
	}
	return files
}

// LoadEnvFiles loads the existing files among paths into the process
// environment. Variables that are already set keep their value, and earlier
// files win over later ones.
func LoadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// Load loads the .env files and reads the configuration from the environment.
func Load() (Config, error) {
	if err := LoadEnvFiles(EnvFiles(os.Getenv)...); err != nil {
		return Config{}, err
	}
	return FromEnv(os.Getenv)
}

// FromEnv reads the configuration from getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		PaletteDir: strings.TrimSpace(getenv(EnvPaletteDir)),
		Lang:       strings.TrimSpace(getenv(EnvLang)),
		LogLevel:   hclog.NoLevel,
		NoColor:    getenv(EnvNoColor) != "",
	}

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		level := hclog.LevelFromString(v)
		if level == hclog.NoLevel {
			return Config{}, fmt.Errorf("invalid %s %q (valid: trace, debug, info, warn, error, off)", EnvLogLevel, v)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}
