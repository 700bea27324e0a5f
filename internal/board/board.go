// Package board holds the derived per-cell state of the calendar grid.
package board

import (
	"fmt"

	"svw.info/calpuzzle/internal/domain"
)

// Board is the occupancy map of the grid. It is always rebuilt wholesale
// from the blocked date cells and the placed pieces, never patched.
type Board struct {
	blocked []domain.CellCoord
	cells   [Rows][MaxCols]domain.CellState
}

// New returns an empty board with the given date cells blocked. Exactly
// domain.DateCellCount distinct grid cells are required.
func New(blocked []domain.CellCoord) (*Board, error) {
	if len(blocked) != domain.DateCellCount {
		return nil, fmt.Errorf("%w: want %d cells, got %d", domain.ErrInvalidBlockedCells, domain.DateCellCount, len(blocked))
	}
	seen := map[domain.CellCoord]bool{}
	for _, c := range blocked {
		if !InGrid(c) {
			return nil, fmt.Errorf("%w: %v is off the grid", domain.ErrInvalidBlockedCells, c)
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: %v repeated", domain.ErrInvalidBlockedCells, c)
		}
		seen[c] = true
	}
	b := &Board{blocked: append([]domain.CellCoord(nil), blocked...)}
	b.Reset()
	return b, nil
}

// Reset empties every cell and re-marks the date cells.
func (b *Board) Reset() {
	for r := 0; r < Rows; r++ {
		for c := 0; c < MaxCols; c++ {
			kind := domain.CellInvalid
			if c < rowLengths[r] {
				kind = domain.CellEmpty
			}
			b.cells[r][c] = domain.CellState{Kind: kind, PieceID: domain.NoPiece}
		}
	}
	for _, c := range b.blocked {
		b.cells[c.Row][c.Col].Kind = domain.CellBlocked
	}
}

// Recompute rebuilds occupancy from the date cells and the footprint of
// every placed piece. Placements are validated before commit so pieces
// never compete for a cell; if they did, the earlier piece would keep it.
func (b *Board) Recompute(pieces []*domain.Piece) {
	b.Reset()
	for _, p := range pieces {
		if !p.Placed() {
			continue
		}
		for _, c := range Footprint(p.Shape, *p.Placement) {
			if !InGrid(c) || b.cells[c.Row][c.Col].Kind != domain.CellEmpty {
				continue
			}
			b.cells[c.Row][c.Col] = domain.CellState{Kind: domain.CellOccupied, PieceID: p.ID}
		}
	}
}

// CellState returns the state of (row, col); cells off the grid are invalid.
func (b *Board) CellState(row, col int) domain.CellState {
	return b.At(domain.CellCoord{Row: row, Col: col})
}

func (b *Board) At(c domain.CellCoord) domain.CellState {
	if !InGrid(c) {
		return domain.CellState{Kind: domain.CellInvalid, PieceID: domain.NoPiece}
	}
	return b.cells[c.Row][c.Col]
}

// Blocked returns a copy of the date cells.
func (b *Board) Blocked() []domain.CellCoord {
	return append([]domain.CellCoord(nil), b.blocked...)
}

// OccupiedCount is the number of cells covered by some piece.
func (b *Board) OccupiedCount() int {
	n := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < rowLengths[r]; c++ {
			if b.cells[r][c].Kind == domain.CellOccupied {
				n++
			}
		}
	}
	return n
}

// Snapshot copies the board into ragged rows for rendering.
func (b *Board) Snapshot() domain.Snapshot {
	rows := make([][]domain.CellState, Rows)
	for r := range rows {
		rows[r] = append([]domain.CellState(nil), b.cells[r][:rowLengths[r]]...)
	}
	return domain.Snapshot{Rows: rows}
}
