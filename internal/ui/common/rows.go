package common

// RowTarget is a clickable single-row span in view-local coordinates. Index
// is the item the row selects.
type RowTarget struct {
	Index int
	Row   int
	Col   int
	Width int
}

// Hit reports whether (x, y) falls on the target's row span.
func (r RowTarget) Hit(x, y int) bool {
	return y == r.Row && x >= r.Col && x < r.Col+r.Width
}

// RowTargets is a column of row targets, at most one per row.
type RowTargets []RowTarget

// At returns the index of the target under (x, y).
func (rs RowTargets) At(x, y int) (int, bool) {
	for _, r := range rs {
		if r.Hit(x, y) {
			return r.Index, true
		}
	}
	return 0, false
}
