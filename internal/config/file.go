package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors Config with pointer fields so we can distinguish
// "not set" from zero values when merging TOML.
type fileConfig struct {
	Store     *string `toml:"store"`
	StorePath *string `toml:"store_path"`
	Listen    *string `toml:"listen"`
	DarkMode  *bool   `toml:"dark_mode"`
	Watch     *bool   `toml:"watch"`
	PerPage   *int    `toml:"per_page"`
	LogLevel  *string `toml:"log_level"`
	LogFile   *string `toml:"log_file"`
}

// ConfigDir returns the colorcraft config directory, respecting XDG_CONFIG_HOME.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "colorcraft")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "colorcraft")
}

// ConfigPath returns the full path to config.toml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadFile reads config.toml and merges non-nil fields into cfg.
// Returns true if the file existed, false otherwise.
func LoadFile(cfg *Config) (bool, error) {
	data, err := os.ReadFile(ConfigPath())
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return true, err
	}

	if fc.Store != nil {
		cfg.Store = *fc.Store
	}
	if fc.StorePath != nil {
		cfg.StorePath = ExpandHome(*fc.StorePath)
	}
	if fc.Listen != nil {
		cfg.Listen = *fc.Listen
	}
	if fc.DarkMode != nil {
		cfg.DarkMode = *fc.DarkMode
	}
	if fc.Watch != nil {
		cfg.Watch = *fc.Watch
	}
	if fc.PerPage != nil && *fc.PerPage > 0 {
		cfg.PerPage = *fc.PerPage
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFile != nil {
		cfg.LogFile = ExpandHome(*fc.LogFile)
	}

	return true, nil
}

// SaveFile writes cfg as config.toml, creating the directory if needed.
// Paths under the home directory are stored with ~ for readability.
func SaveFile(cfg Config) (string, error) {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	storePath := collapseHome(cfg.StorePath)
	logFile := collapseHome(cfg.LogFile)
	fc := fileConfig{
		Store:     &cfg.Store,
		StorePath: &storePath,
		Listen:    &cfg.Listen,
		DarkMode:  &cfg.DarkMode,
		Watch:     &cfg.Watch,
		PerPage:   &cfg.PerPage,
		LogLevel:  &cfg.LogLevel,
		LogFile:   &logFile,
	}

	path := filepath.Join(dir, "config.toml")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return path, toml.NewEncoder(f).Encode(fc)
}

func collapseHome(path string) string {
	home, _ := os.UserHomeDir()
	if home != "" && strings.HasPrefix(path, home+string(os.PathSeparator)) {
		return "~" + path[len(home):]
	}
	return path
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, _ := os.UserHomeDir()
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
