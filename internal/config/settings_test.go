package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/photogrid/photo-gallery/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLibraryDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetLibraryDirectory()
	if dir == "" {
		t.Error("Library directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/photos"
	settings.SetLibraryDirectory(customDir)

	retrievedDir := settings.GetLibraryDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected library directory %s, got %s", customDir, retrievedDir)
	}
}

func TestColumnCount(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	count := settings.GetColumnCount()
	if count != model.DefaultColumnCount {
		t.Errorf("Expected default column count %d, got %d", model.DefaultColumnCount, count)
	}

	// Test setting each supported value
	for _, n := range model.ColumnCountOptions() {
		settings.SetColumnCount(n)
		if got := settings.GetColumnCount(); got != n {
			t.Errorf("Expected column count %d, got %d", n, got)
		}
	}

	// Out-of-range values are clamped
	settings.SetColumnCount(1)
	if settings.GetColumnCount() != model.MinColumnCount {
		t.Error("Column count should be clamped to minimum 3")
	}

	settings.SetColumnCount(8)
	if settings.GetColumnCount() != model.MaxColumnCount {
		t.Error("Column count should be clamped to maximum 5")
	}
}

func TestGrantStorePath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	path := settings.GetGrantStorePath()
	if path == "" {
		t.Error("Grant store path should not be empty")
	}

	settings.SetGrantStorePath("/custom/grants.db")
	if settings.GetGrantStorePath() != "/custom/grants.db" {
		t.Errorf("Expected custom grant store path, got %s", settings.GetGrantStorePath())
	}
}

func TestLogLevel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLogLevel() != DefaultLogLevel {
		t.Errorf("Expected default log level %s, got %s", DefaultLogLevel, settings.GetLogLevel())
	}

	settings.SetLogLevel("debug")
	if settings.GetLogLevel() != "debug" {
		t.Errorf("Expected log level debug, got %s", settings.GetLogLevel())
	}

	// Empty resets to default
	settings.SetLogLevel("")
	if settings.GetLogLevel() != DefaultLogLevel {
		t.Error("Empty log level should fall back to default")
	}
}
