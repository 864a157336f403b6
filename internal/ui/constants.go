package ui

import "fyne.io/fyne/v2"

// Grid geometry.
const (
	// GridCellSpacing is the gap, in points, between adjacent grid cells.
	GridCellSpacing float32 = 2

	// GridSubPixelInset is subtracted from the usable row width before
	// dividing by the column count so that rounding never pushes the last
	// cell past the container edge.
	GridSubPixelInset float32 = 0.5
)

// Preview zoom limits.
const (
	PreviewMinZoom  float32 = 1.0
	PreviewMaxZoom  float32 = 2.0
	PreviewZoomStep float32 = 0.1
)

// Action button labels per authorization state.
const (
	LabelFetchPhotos   = "Fetch Photos"
	LabelAddMorePhotos = "Add More Photos"
	LabelOpenSettings  = "Open Settings"
)

// Authorization prompt strings.
const (
	PromptTitle       = "Photo Library Access"
	PromptMessage     = "Allow access to your photo library to show your photos."
	PromptAllowFull   = "Allow Full Access"
	PromptAllowSelect = "Select Photos"
	PromptDeny        = "Don't Allow"
)

// Default window geometry.
var DefaultWindowSize = fyne.NewSize(900, 600)
