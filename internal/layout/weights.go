// Package layout packs modal components into the fixed 5-row grid the remote
// service renders. Each row has a capacity of 5 width units; text inputs
// always take the full 5, so in practice every occupied row holds one item.
package layout

import "fmt"

const (
	// Rows is the number of rows a modal dialog can hold.
	Rows = 5
	// RowWidth is the capacity of a single row in width units.
	RowWidth = 5
)

// Weights tracks how much of each row is occupied. The zero value is an
// empty grid.
type Weights struct {
	fill [Rows]int
}

// Place assigns an item of the given width to a row and returns the row
// index. When hasHint is true the item is pinned to the hinted row and
// placement fails if that row lacks capacity; otherwise the first row with
// room is used.
func (w *Weights) Place(hint int, hasHint bool, width int) (int, error) {
	if width < 1 || width > RowWidth {
		return 0, fmt.Errorf("layout: item width %d is outside 1..%d", width, RowWidth)
	}
	if hasHint {
		if hint < 0 || hint >= Rows {
			return 0, fmt.Errorf("layout: row %d is outside 0..%d", hint, Rows-1)
		}
		if w.fill[hint]+width > RowWidth {
			return 0, fmt.Errorf("layout: row %d does not have enough space (%d/%d used)", hint, w.fill[hint], RowWidth)
		}
		w.fill[hint] += width
		return hint, nil
	}
	for row := range w.fill {
		if w.fill[row]+width <= RowWidth {
			w.fill[row] += width
			return row, nil
		}
	}
	return 0, fmt.Errorf("layout: no row can fit an item of width %d", width)
}

// Release frees the space an item occupied.
func (w *Weights) Release(row, width int) {
	if row < 0 || row >= Rows {
		return
	}
	w.fill[row] -= width
	if w.fill[row] < 0 {
		w.fill[row] = 0
	}
}

// Used reports the occupied width of a row.
func (w *Weights) Used(row int) int {
	if row < 0 || row >= Rows {
		return 0
	}
	return w.fill[row]
}

// Clear empties the grid.
func (w *Weights) Clear() {
	w.fill = [Rows]int{}
}
