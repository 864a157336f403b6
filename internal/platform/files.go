package platform

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Image file extensions recognized by the library scanner
var (
	ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}
)

// CreateDirectoryIfNotExists creates a directory with all parents if needed
func CreateDirectoryIfNotExists(dir string) error {
	return os.MkdirAll(dir, DefaultDirPermissions)
}

// IsImageFile reports whether the path has a recognized image extension
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// CreationTime returns the best available creation timestamp for a file.
// Modification time is used as a portable stand-in; birth time is not
// exposed uniformly across platforms.
func CreationTime(info os.FileInfo) time.Time {
	return info.ModTime()
}

// DefaultPicturesDir returns the user's Pictures directory, falling back to
// the home directory when it cannot be determined.
func DefaultPicturesDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Pictures"), nil
}

// DefaultDataDir returns the per-user data directory for the app
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "photo-gallery"), nil
}
