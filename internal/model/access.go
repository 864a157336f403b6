package model

// AccessStatus represents the app's current permission to read the photo library
type AccessStatus string

const (
	// AccessUndetermined means the user has not been asked yet
	AccessUndetermined AccessStatus = "Undetermined"

	// AccessAllowed means the user granted full library access
	AccessAllowed AccessStatus = "Allowed"

	// AccessLimited means the user granted access to a selected subset of items
	AccessLimited AccessStatus = "Limited"

	// AccessDenied means access was denied or restricted by the user or system
	AccessDenied AccessStatus = "Denied"
)

// String returns the string representation of AccessStatus
func (as AccessStatus) String() string {
	return string(as)
}

// CanFetch returns true if asset fetching is permitted in this status.
// Fetching must never be attempted while Undetermined or Denied.
func (as AccessStatus) CanFetch() bool {
	return as == AccessAllowed || as == AccessLimited
}

// IsResolved returns true once the user has answered the permission prompt,
// in either direction.
func (as AccessStatus) IsResolved() bool {
	return as != AccessUndetermined
}
