package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/photogrid/photo-gallery/internal/model"
	"github.com/photogrid/photo-gallery/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyLibraryDir     = "library_directory"
	KeyColumnCount    = "grid_column_count"
	KeyGrantStorePath = "grant_store_path"
	KeyLogLevel       = "log_level"
)

// Default values
const (
	DefaultLogLevel       = "info"
	DefaultGrantStoreFile = "grants.db"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLibraryDirectory returns the configured photo library directory
func (s *Settings) GetLibraryDirectory() string {
	dir := s.app.Preferences().String(KeyLibraryDir)
	if dir == "" {
		defaultDir, err := platform.DefaultPicturesDir()
		if err != nil {
			defaultDir = "/tmp/photos"
		}
		s.SetLibraryDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetLibraryDirectory sets the photo library directory
func (s *Settings) SetLibraryDirectory(dir string) {
	s.app.Preferences().SetString(KeyLibraryDir, dir)
}

// GetColumnCount returns the persisted grid column count
func (s *Settings) GetColumnCount() int {
	value := s.app.Preferences().Int(KeyColumnCount)
	if value == 0 {
		s.SetColumnCount(model.DefaultColumnCount)
		return model.DefaultColumnCount
	}
	return model.ClampColumnCount(value)
}

// SetColumnCount sets the grid column count, clamped to the supported range
func (s *Settings) SetColumnCount(count int) {
	s.app.Preferences().SetInt(KeyColumnCount, model.ClampColumnCount(count))
}

// GetGrantStorePath returns the path of the authorization grant database
func (s *Settings) GetGrantStorePath() string {
	path := s.app.Preferences().String(KeyGrantStorePath)
	if path == "" {
		dataDir, err := platform.DefaultDataDir()
		if err != nil {
			dataDir = "/tmp/photo-gallery"
		}
		path = filepath.Join(dataDir, DefaultGrantStoreFile)
		s.SetGrantStorePath(path)
	}
	return path
}

// SetGrantStorePath sets the path of the authorization grant database
func (s *Settings) SetGrantStorePath(path string) {
	s.app.Preferences().SetString(KeyGrantStorePath, path)
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if level == "" {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level string) {
	if level == "" {
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}
