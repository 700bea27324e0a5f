package domain

import "strings"

// CellCoord identifies a cell on the calendar grid. A piece placement is
// anchored at the CellCoord of its shape's top-left corner.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Offset returns c shifted by d.
func (c CellCoord) Offset(d CellCoord) CellCoord {
	return CellCoord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Shape is a piece's occupancy matrix relative to its own top-left origin.
// Rows may be ragged; the width is the longest row.
type Shape [][]bool

// ShapeFromRows builds a Shape from rows of '#' (occupied) and '.' (empty).
func ShapeFromRows(rows ...string) (Shape, error) {
	s := make(Shape, len(rows))
	n := 0
	for r, row := range rows {
		s[r] = make([]bool, len(row))
		for c, ch := range row {
			if ch == '#' {
				s[r][c] = true
				n++
			}
		}
	}
	if n == 0 {
		return nil, ErrEmptyShape
	}
	return s, nil
}

func (s Shape) Height() int { return len(s) }

func (s Shape) Width() int {
	w := 0
	for _, row := range s {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// At reports whether the local cell (r, c) is occupied. Cells beyond a
// ragged row's end are empty.
func (s Shape) At(r, c int) bool {
	if r < 0 || r >= len(s) || c < 0 || c >= len(s[r]) {
		return false
	}
	return s[r][c]
}

// Cells lists the occupied local cells in row-major order.
func (s Shape) Cells() []CellCoord {
	var out []CellCoord
	for r, row := range s {
		for c, on := range row {
			if on {
				out = append(out, CellCoord{Row: r, Col: c})
			}
		}
	}
	return out
}

func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for r, row := range s {
		out[r] = append([]bool(nil), row...)
	}
	return out
}

// Equal compares dimensions and occupancy; a ragged row equals the same
// row padded with empty cells.
func (s Shape) Equal(o Shape) bool {
	if s.Height() != o.Height() || s.Width() != o.Width() {
		return false
	}
	w := s.Width()
	for r := range s {
		for c := 0; c < w; c++ {
			if s.At(r, c) != o.At(r, c) {
				return false
			}
		}
	}
	return true
}

// String renders the shape in the same '#'/'.' form ShapeFromRows reads.
func (s Shape) String() string {
	var b strings.Builder
	w := s.Width()
	for r := range s {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < w; c++ {
			if s.At(r, c) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Orientation is the cumulative transform state of a piece since reset.
// Angle is any multiple of 90 and is not normalized.
type Orientation struct {
	Angle    int  `json:"angle"`
	FlippedH bool `json:"flipH"`
	FlippedV bool `json:"flipV"`
}

// Date is a calendar day as the puzzle sees it: Month is 0-based (0 = January),
// Day is the day of the month starting at 1.
type Date struct {
	Month int `json:"month"`
	Day   int `json:"day"`
}

// PieceDefinition is one of the fixed puzzle pieces in canonical form.
type PieceDefinition struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Shape Shape  `json:"shape"`
	Image string `json:"image,omitempty"`
}

// Piece is a live piece instance owned by a session.
type Piece struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Shape       Shape       `json:"shape"`
	Orientation Orientation `json:"orientation"`
	Placement   *CellCoord  `json:"placement,omitempty"`
}

func (p *Piece) Placed() bool { return p.Placement != nil }

// Clone returns a deep copy safe to hand out of the session.
func (p *Piece) Clone() Piece {
	out := *p
	out.Shape = p.Shape.Clone()
	if p.Placement != nil {
		at := *p.Placement
		out.Placement = &at
	}
	return out
}

// NoPiece is the PieceID of a cell no piece occupies.
const NoPiece = -1

// CellState is the derived state of one grid cell.
type CellState struct {
	Kind    CellKind `json:"kind"`
	PieceID int      `json:"pieceId"`
}

// Snapshot is a copy of the board, one slice per grid row using that
// row's own length.
type Snapshot struct {
	Rows [][]CellState `json:"rows"`
}

// At returns the state of c, or an invalid state if c lies off the grid.
func (s Snapshot) At(c CellCoord) CellState {
	if c.Row < 0 || c.Row >= len(s.Rows) || c.Col < 0 || c.Col >= len(s.Rows[c.Row]) {
		return CellState{Kind: CellInvalid, PieceID: NoPiece}
	}
	return s.Rows[c.Row][c.Col]
}

// PlaceResult is the outcome of a placement attempt. A rejected attempt
// leaves the session unchanged.
type PlaceResult struct {
	Accepted  bool        `json:"accepted"`
	Reason    Rejection   `json:"reason,omitempty"`
	Conflicts []CellCoord `json:"conflicts,omitempty"`
	Board     Snapshot    `json:"board"`
	Solved    bool        `json:"solved"`
}
