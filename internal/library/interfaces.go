package library

import (
	"image"

	"github.com/photogrid/photo-gallery/internal/model"
)

// Authorization is the host-level authorization value for library read
// access. It intentionally mirrors the platform enum, including values the
// app maps to the same user-facing status.
type Authorization int

const (
	// AuthNotDetermined means the user has never been asked
	AuthNotDetermined Authorization = iota

	// AuthAuthorized means full read access was granted
	AuthAuthorized

	// AuthLimited means the user granted access to a selected subset
	AuthLimited

	// AuthRestricted means access is blocked by system policy
	AuthRestricted

	// AuthDenied means the user refused access
	AuthDenied
)

// String returns the string representation of Authorization
func (a Authorization) String() string {
	switch a {
	case AuthNotDetermined:
		return "not_determined"
	case AuthAuthorized:
		return "authorized"
	case AuthLimited:
		return "limited"
	case AuthRestricted:
		return "restricted"
	case AuthDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// ParseAuthorization converts a stored string back to an Authorization.
// Unrecognized input is treated as never-asked.
func ParseAuthorization(s string) Authorization {
	switch s {
	case "authorized":
		return AuthAuthorized
	case "limited":
		return AuthLimited
	case "restricted":
		return AuthRestricted
	case "denied":
		return AuthDenied
	default:
		return AuthNotDetermined
	}
}

// ContentMode controls how a rendition is fitted to its target size
type ContentMode int

const (
	// ContentModeAspectFill scales to cover the target, cropping overflow
	ContentModeAspectFill ContentMode = iota

	// ContentModeAspectFit scales to fit inside the target, no cropping
	ContentModeAspectFit
)

// RenditionRequest asks for a rendered bitmap of an asset at a target size.
// Token is echoed back in the result so callers can discard completions that
// arrive after the requesting slot was reused.
type RenditionRequest struct {
	Asset  model.Asset
	Width  int
	Height int
	Mode   ContentMode
	Token  string
}

// RenditionResult delivers a rendition. Image is nil when the asset could
// not be read or decoded; such failures are silently tolerated by the UI.
type RenditionResult struct {
	AssetID string
	Token   string
	Image   image.Image
}

// OK reports whether the rendition carries an image
func (r RenditionResult) OK() bool {
	return r.Image != nil
}

// AuthorizationPrompt presents the permission dialog and resolves exactly
// once with the user's answer.
type AuthorizationPrompt func(respond func(Authorization))

// ChangeObserver receives library-change notifications. Notifications are
// delivered off the UI context; observers must re-marshal before touching
// shared state.
type ChangeObserver interface {
	LibraryDidChange(details *ChangeDetails)
}

// Library defines the media-library surface the gallery screen depends on.
type Library interface {
	// CurrentAuthorization returns the persisted authorization level.
	CurrentAuthorization() Authorization

	// RequestAuthorization asynchronously prompts the user and reports the
	// outcome via completion.
	RequestAuthorization(completion func(Authorization))

	// QueryImageAssets returns a fresh snapshot of all image assets sorted
	// by creation time descending.
	QueryImageAssets() *FetchResult

	// RequestRendition asynchronously renders an asset at the requested size.
	RequestRendition(req RenditionRequest, completion func(RenditionResult))

	// RegisterChangeObserver subscribes to library mutations and returns an
	// observer ID for deregistration.
	RegisterChangeObserver(observer ChangeObserver) string

	// UnregisterChangeObserver removes a previously registered observer.
	UnregisterChangeObserver(id string)

	// LimitedSelection returns the persisted limited-access selection.
	LimitedSelection() []string

	// AddToLimitedSelection grants access to additional items and notifies
	// observers if the visible asset list changes.
	AddToLimitedSelection(paths []string) error

	// Close releases the watcher and the grant store.
	Close() error
}
