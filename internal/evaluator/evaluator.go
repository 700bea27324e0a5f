// Package evaluator decides whether a puzzle arrangement is complete.
package evaluator

import (
	"svw.info/calpuzzle/internal/board"
	"svw.info/calpuzzle/internal/domain"
)

// WinEvaluator checks the completion condition. It relies on the
// placement validator's guarantees: no overlaps and no covered date cells.
// Under those, counting covered cells is the same as checking that every
// free cell is covered exactly once.
type WinEvaluator struct{}

func New() *WinEvaluator { return &WinEvaluator{} }

// IsSolved reports whether every piece is placed and the pieces cover all
// grid cells except the date cells.
func (e *WinEvaluator) IsSolved(b *board.Board, pieces []*domain.Piece) bool {
	if len(pieces) != domain.PieceCount {
		return false
	}
	for _, p := range pieces {
		if !p.Placed() {
			return false
		}
	}
	blocked := len(b.Blocked())
	if blocked != domain.DateCellCount {
		panic("evaluator: board has wrong number of date cells")
	}
	return b.OccupiedCount() == board.ValidCellCount()-blocked
}
