package library

import (
	"github.com/photogrid/photo-gallery/internal/model"
)

// FetchResult is an immutable snapshot of the asset list at query time,
// ordered by creation time descending. Snapshots are replaced wholesale; the
// slice is never mutated after construction.
type FetchResult struct {
	assets     []model.Asset
	generation uint64
}

// NewFetchResult builds a snapshot from an already ordered asset slice.
// The library service builds its own snapshots; this constructor exists for
// collaborators substituting the library in tests.
func NewFetchResult(assets []model.Asset, generation uint64) *FetchResult {
	return &FetchResult{assets: assets, generation: generation}
}

func newFetchResult(assets []model.Asset, generation uint64) *FetchResult {
	return NewFetchResult(assets, generation)
}

// Count returns the number of assets in the snapshot
func (fr *FetchResult) Count() int {
	if fr == nil {
		return 0
	}
	return len(fr.assets)
}

// At returns the asset at index i. Out-of-range indices return the zero
// asset rather than panicking; a recycled cell may index past the end of a
// freshly swapped snapshot.
func (fr *FetchResult) At(i int) model.Asset {
	if fr == nil || i < 0 || i >= len(fr.assets) {
		return model.Asset{}
	}
	return fr.assets[i]
}

// Assets returns a copy of the snapshot's asset slice
func (fr *FetchResult) Assets() []model.Asset {
	if fr == nil {
		return nil
	}
	out := make([]model.Asset, len(fr.assets))
	copy(out, fr.assets)
	return out
}

// Generation returns the monotonically increasing snapshot generation
func (fr *FetchResult) Generation() uint64 {
	if fr == nil {
		return 0
	}
	return fr.generation
}

// sameAssets reports whether two snapshots hold the same assets in the same
// order. Creation-time-only changes that do not reorder are still a change.
func (fr *FetchResult) sameAssets(other *FetchResult) bool {
	if fr.Count() != other.Count() {
		return false
	}
	for i := range fr.assets {
		if fr.assets[i].ID != other.assets[i].ID {
			return false
		}
		if !fr.assets[i].CreatedAt.Equal(other.assets[i].CreatedAt) {
			return false
		}
	}
	return true
}

// ChangeDetails describes a library mutation relative to snapshots handed
// out earlier. The host computes the post-change fetch result once; every
// holder of an old snapshot asks ChangesFor whether it is affected.
type ChangeDetails struct {
	latest *FetchResult
}

// NewChangeDetails wraps a post-change snapshot. Exported for the same
// reason as NewFetchResult.
func NewChangeDetails(latest *FetchResult) *ChangeDetails {
	return &ChangeDetails{latest: latest}
}

// ChangesFor returns the post-change snapshot and whether the given held
// snapshot is affected by this change. A nil held snapshot (nothing fetched
// yet) is never affected.
func (cd *ChangeDetails) ChangesFor(held *FetchResult) (*FetchResult, bool) {
	if cd == nil || cd.latest == nil || held == nil {
		return held, false
	}
	if held.sameAssets(cd.latest) {
		return held, false
	}
	return cd.latest, true
}
