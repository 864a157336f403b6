package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadLibraryConfigMissingFile(t *testing.T) {
	cfg, err := LoadLibraryConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Missing file should not be an error, got %v", err)
	}

	if cfg.Library.WatchDebounceMS != DefaultWatchDebounceMS {
		t.Errorf("Expected default debounce %d, got %d", DefaultWatchDebounceMS, cfg.Library.WatchDebounceMS)
	}
	if cfg.Library.CacheSize != DefaultCacheSize {
		t.Errorf("Expected default cache size %d, got %d", DefaultCacheSize, cfg.Library.CacheSize)
	}
}

func TestLoadLibraryConfigEmptyPath(t *testing.T) {
	cfg, err := LoadLibraryConfig("")
	if err != nil {
		t.Fatalf("Empty path should yield defaults, got %v", err)
	}
	if cfg.Library.Root != "" {
		t.Error("Default config should have no root override")
	}
}

func TestLoadLibraryConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.toml")
	content := `
[library]
root = "/srv/photos"
excludes = ["*.tmp", ".thumbnails*"]
watch_debounce_ms = 500
cache_size = 64
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLibraryConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Library.Root != "/srv/photos" {
		t.Errorf("Expected root /srv/photos, got %s", cfg.Library.Root)
	}
	if len(cfg.Library.Excludes) != 2 {
		t.Errorf("Expected 2 excludes, got %d", len(cfg.Library.Excludes))
	}
	if cfg.WatchDebounce() != 500*time.Millisecond {
		t.Errorf("Expected 500ms debounce, got %v", cfg.WatchDebounce())
	}
	if cfg.Library.CacheSize != 64 {
		t.Errorf("Expected cache size 64, got %d", cfg.Library.CacheSize)
	}
}

func TestLoadLibraryConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[library\nroot="), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadLibraryConfig(path); err == nil {
		t.Error("Expected error for malformed TOML")
	}
}

func TestLoadLibraryConfigZeroValuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.toml")
	if err := os.WriteFile(path, []byte("[library]\nwatch_debounce_ms = 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLibraryConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Library.WatchDebounceMS != DefaultWatchDebounceMS {
		t.Error("Zero debounce should fall back to default")
	}
}
