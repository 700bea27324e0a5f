package board

import "svw.info/calpuzzle/internal/domain"

const (
	// Rows is the number of grid rows.
	Rows = 7
	// MaxCols is the width of the grid's bounding box.
	MaxCols = 7
)

// rowLengths is the ragged grid: two rows of months, four full rows of
// days and a short last row for 29-31.
var rowLengths = [Rows]int{6, 6, 7, 7, 7, 7, 3}

// RowLength returns the number of valid columns in row, or 0 off the grid.
func RowLength(row int) int {
	if row < 0 || row >= Rows {
		return 0
	}
	return rowLengths[row]
}

// InGrid reports whether c is a valid grid cell. Bounds are per row.
func InGrid(c domain.CellCoord) bool {
	return c.Col >= 0 && c.Col < RowLength(c.Row)
}

// ValidCellCount is the number of grid cells, blocked ones included.
func ValidCellCount() int {
	n := 0
	for _, l := range rowLengths {
		n += l
	}
	return n
}

// Footprint returns the absolute cells covered by shape anchored at topLeft.
func Footprint(shape domain.Shape, topLeft domain.CellCoord) []domain.CellCoord {
	cells := shape.Cells()
	for i := range cells {
		cells[i] = topLeft.Offset(cells[i])
	}
	return cells
}
