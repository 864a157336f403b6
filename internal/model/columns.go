package model

// Grid column count bounds. The gallery grid supports 3, 4 or 5 columns.
const (
	MinColumnCount     = 3
	MaxColumnCount     = 5
	DefaultColumnCount = 3
)

// ColumnCountOptions returns the selectable column counts in ascending order
func ColumnCountOptions() []int {
	return []int{3, 4, 5}
}

// ClampColumnCount normalizes a column count into the supported range.
// Zero or negative values fall back to the default.
func ClampColumnCount(n int) int {
	if n <= 0 {
		return DefaultColumnCount
	}
	if n < MinColumnCount {
		return MinColumnCount
	}
	if n > MaxColumnCount {
		return MaxColumnCount
	}
	return n
}
