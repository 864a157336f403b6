// Package authz tracks the app's permission to read the photo library and
// drives the fetch/prompt flow around it.
package authz

import (
	"github.com/photogrid/photo-gallery/internal/library"
	"github.com/photogrid/photo-gallery/internal/logging"
	"github.com/photogrid/photo-gallery/internal/model"
)

// MapAuthorization maps a host authorization value onto the app's four-way
// access status. It is total: any value outside the known enum maps to
// Denied.
func MapAuthorization(a library.Authorization) model.AccessStatus {
	switch a {
	case library.AuthNotDetermined:
		return model.AccessUndetermined
	case library.AuthAuthorized:
		return model.AccessAllowed
	case library.AuthLimited:
		return model.AccessLimited
	case library.AuthRestricted, library.AuthDenied:
		return model.AccessDenied
	default:
		return model.AccessDenied
	}
}

// Tracker is the authorization state machine. All state mutations run on
// the UI-owning context via the injected dispatch function; host callbacks
// are re-marshaled before they touch anything.
type Tracker struct {
	lib      library.Library
	log      logging.Logger
	dispatch func(func())

	status         model.AccessStatus
	limitedFetched bool // a fetch already ran for Limited since launch
	requesting     bool // an authorization prompt is in flight

	onStatus func(model.AccessStatus)
	onFetch  func()
}

// Options configures a Tracker.
type Options struct {
	// Dispatch runs a function on the UI-owning context. Required.
	Dispatch func(func())
	// OnStatus is invoked (on the UI context) after every status change.
	OnStatus func(model.AccessStatus)
	// OnFetch is invoked (on the UI context) whenever the status permits a
	// fetch and one is due.
	OnFetch func()
	// Logger defaults to the process logger.
	Logger logging.Logger
}

// NewTracker creates a Tracker in the Undetermined state.
func NewTracker(lib library.Library, opts Options) *Tracker {
	log := opts.Logger
	if log == nil {
		log = logging.Default()
	}
	return &Tracker{
		lib:      lib,
		log:      log.With("component", "authz"),
		dispatch: opts.Dispatch,
		status:   model.AccessUndetermined,
		onStatus: opts.OnStatus,
		onFetch:  opts.OnFetch,
	}
}

// Status returns the current access status. Call from the UI context.
func (t *Tracker) Status() model.AccessStatus {
	return t.status
}

// CheckStatus synchronizes with the host's current authorization level and
// triggers a fetch when the resulting status permits one: always for
// Allowed, and for Limited only on the first check since launch. Call from
// the UI context, typically on view activation.
func (t *Tracker) CheckStatus() {
	status := MapAuthorization(t.lib.CurrentAuthorization())
	t.setStatus(status)

	switch status {
	case model.AccessAllowed:
		t.fetch()
	case model.AccessLimited:
		if !t.limitedFetched {
			t.fetch()
		}
	}
}

// RequestAccess prompts the user via the host dialog. Only valid while
// Undetermined; re-entry during an in-flight prompt is ignored. The
// completion is re-marshaled onto the UI context before any state changes.
func (t *Tracker) RequestAccess() {
	if t.status != model.AccessUndetermined {
		t.log.Warn("access request ignored", "status", t.status.String())
		return
	}
	if t.requesting {
		return
	}
	t.requesting = true

	t.lib.RequestAuthorization(func(a library.Authorization) {
		t.dispatch(func() {
			t.requesting = false

			status := MapAuthorization(a)
			if a != library.AuthNotDetermined && a != library.AuthAuthorized &&
				a != library.AuthLimited && a != library.AuthRestricted && a != library.AuthDenied {
				// The host answered with a value outside its own contract.
				// Treated as a denial rather than a crash.
				t.log.Error("unknown authorization value from host", "value", int(a))
			}

			t.setStatus(status)
			if status.CanFetch() {
				t.fetch()
			}
		})
	})
}

func (t *Tracker) setStatus(status model.AccessStatus) {
	changed := t.status != status
	t.status = status
	if changed {
		t.log.Info("access status changed", "status", status.String())
	}
	if t.onStatus != nil {
		t.onStatus(status)
	}
}

// fetch invokes the fetch callback. The tracker is the single guard of the
// invariant that fetching only happens while Allowed or Limited.
func (t *Tracker) fetch() {
	if !t.status.CanFetch() {
		return
	}
	if t.status == model.AccessLimited {
		t.limitedFetched = true
	}
	if t.onFetch != nil {
		t.onFetch()
	}
}
