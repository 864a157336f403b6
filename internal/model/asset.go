package model

import (
	"path/filepath"
	"time"
)

// Asset is an opaque handle to a single photo library item. It carries
// metadata only; pixel data stays with the library and is delivered as
// renditions on request.
type Asset struct {
	ID        string    // stable identifier within the library
	Path      string    // absolute path of the backing file
	CreatedAt time.Time // creation time used for sort order
}

// IsZero returns true for the empty asset handle
func (a Asset) IsZero() bool {
	return a.ID == "" && a.Path == ""
}

// DisplayName returns the file name without extension for UI labels
func (a Asset) DisplayName() string {
	name := filepath.Base(a.Path)
	if ext := filepath.Ext(name); ext != "" {
		name = name[:len(name)-len(ext)]
	}
	return name
}
