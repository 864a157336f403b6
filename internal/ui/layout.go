package ui

import (
	"sync"

	"fyne.io/fyne/v2"
)

// CellSide returns the side length of a square grid cell for the given row
// width and column count. Each row carries (columns-1) inter-cell gaps plus a
// sub-pixel inset, and the remainder is split evenly.
func CellSide(rowWidth float32, columns int) float32 {
	if columns < 1 {
		columns = 1
	}
	side := (rowWidth - GridCellSpacing*float32(columns-1) - GridSubPixelInset) / float32(columns)
	if side < 0 {
		return 0
	}
	return side
}

// gridMetrics publishes the current cell size to grid cells. The grid host
// recomputes it on resize and on column-count changes; cells read it from
// MinSize, which Fyne may call from layout passes.
type gridMetrics struct {
	mu   sync.RWMutex
	side float32
}

func newGridMetrics() *gridMetrics {
	return &gridMetrics{side: 1}
}

func (m *gridMetrics) setSide(side float32) {
	if side < 1 {
		side = 1
	}
	m.mu.Lock()
	m.side = side
	m.mu.Unlock()
}

func (m *gridMetrics) cellSize() fyne.Size {
	m.mu.RLock()
	side := m.side
	m.mu.RUnlock()
	return fyne.NewSize(side, side)
}
