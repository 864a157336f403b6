package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Library config defaults
const (
	DefaultWatchDebounceMS = 250
	DefaultCacheSize       = 256
)

// LibraryConfig is the optional TOML configuration for the photo library
// service. All fields are optional; zero values fall back to defaults or to
// the app settings.
type LibraryConfig struct {
	Library struct {
		// Root overrides the library directory from app settings.
		Root string `toml:"root"`
		// Excludes lists glob patterns (matched against base names) to skip.
		Excludes []string `toml:"excludes"`
		// WatchDebounceMS coalesces bursts of filesystem events.
		WatchDebounceMS int `toml:"watch_debounce_ms"`
		// CacheSize bounds the rendition LRU cache.
		CacheSize int `toml:"cache_size"`
	} `toml:"library"`
}

// DefaultLibraryConfig returns a config with all defaults applied
func DefaultLibraryConfig() LibraryConfig {
	var cfg LibraryConfig
	cfg.Library.WatchDebounceMS = DefaultWatchDebounceMS
	cfg.Library.CacheSize = DefaultCacheSize
	return cfg
}

// LoadLibraryConfig reads a TOML config file. A missing file is not an
// error; defaults are returned.
func LoadLibraryConfig(path string) (LibraryConfig, error) {
	cfg := DefaultLibraryConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read library config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse library config %s: %w", path, err)
	}

	if cfg.Library.WatchDebounceMS <= 0 {
		cfg.Library.WatchDebounceMS = DefaultWatchDebounceMS
	}
	if cfg.Library.CacheSize <= 0 {
		cfg.Library.CacheSize = DefaultCacheSize
	}

	return cfg, nil
}

// WatchDebounce returns the debounce interval as a duration
func (c LibraryConfig) WatchDebounce() time.Duration {
	return time.Duration(c.Library.WatchDebounceMS) * time.Millisecond
}
