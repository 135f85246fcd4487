package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	Store     string // sqlite | file | memory
	StorePath string
	Listen    string
	DarkMode  bool
	Watch     bool // reload custom palettes when the store changes on disk
	PerPage   int
	LogLevel  string
	LogFile   string // "-" logs to stderr
}

func Default() Config {
	return Config{
		Store:     "sqlite",
		StorePath: filepath.Join(DataDir(), "palettes.db"),
		Listen:    ":2222",
		DarkMode:  false,
		Watch:     false,
		PerPage:   6,
		LogLevel:  "info",
		LogFile:   filepath.Join(StateDir(), "colorcraft.log"),
	}
}

// DataDir returns the colorcraft data directory, respecting XDG_DATA_HOME.
func DataDir() string {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// StateDir returns the colorcraft state directory, respecting XDG_STATE_HOME.
func StateDir() string {
	return xdgDir("XDG_STATE_HOME", ".local", "state")
}

func xdgDir(env string, fallback ...string) string {
	if xdg := os.Getenv(env); xdg != "" {
		return filepath.Join(xdg, "colorcraft")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(append(append([]string{home}, fallback...), "colorcraft")...)
}
