package web

import (
	"svw.info/calpuzzle/internal/board"
	"svw.info/calpuzzle/internal/calendar"
	"svw.info/calpuzzle/internal/domain"
)

// Cell is one square of the printed calendar board.
type Cell struct {
	Row, Col int
	Label    string
	Blocked  bool
}

// Page is the data behind index.tmpl.
type Page struct {
	Date   domain.Date
	Title  string
	Rows   [][]Cell
	Pieces []domain.PieceDefinition
}

// NewPage lays out the board for date with its two date cells marked.
// Out-of-range dates produce a board with nothing marked.
func NewPage(date domain.Date) Page {
	blocked := map[domain.CellCoord]bool{}
	if cells, err := calendar.BlockedCells(date); err == nil {
		for _, c := range cells {
			blocked[c] = true
		}
	}
	rows := make([][]Cell, board.Rows)
	for r := range rows {
		rows[r] = make([]Cell, board.RowLength(r))
		for c := range rows[r] {
			at := domain.CellCoord{Row: r, Col: c}
			label, _ := calendar.Label(at)
			rows[r][c] = Cell{Row: r, Col: c, Label: label, Blocked: blocked[at]}
		}
	}
	return Page{
		Date:   date,
		Title:  calendar.DisplayText(date),
		Rows:   rows,
		Pieces: domain.Definitions(),
	}
}

func cellClass(c Cell) string {
	if c.Blocked {
		return "cell blocked"
	}
	return "cell"
}
