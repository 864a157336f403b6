package ui

import (
	"testing"
)

func TestCellSideThreeColumns(t *testing.T) {
	got := CellSide(375, 3)
	want := float32(123.5)
	if diff := got - want; diff > 0.01 || diff < -0.01 {
		t.Errorf("CellSide(375, 3) = %v, want %v", got, want)
	}
}

func TestCellSideFiveColumns(t *testing.T) {
	got := CellSide(375, 5)
	want := float32(73.3)
	if diff := got - want; diff > 0.01 || diff < -0.01 {
		t.Errorf("CellSide(375, 5) = %v, want %v", got, want)
	}
}

func TestCellSideNeverNegative(t *testing.T) {
	if got := CellSide(1, 5); got < 0 {
		t.Errorf("CellSide(1, 5) = %v, want >= 0", got)
	}
}

func TestCellSideZeroColumns(t *testing.T) {
	if got := CellSide(100, 0); got <= 0 {
		t.Errorf("CellSide(100, 0) = %v, want > 0", got)
	}
}

func TestGridMetricsFloor(t *testing.T) {
	m := newGridMetrics()
	m.setSide(0)
	if size := m.cellSize(); size.Width < 1 {
		t.Errorf("cellSize width = %v, want >= 1", size.Width)
	}
}
