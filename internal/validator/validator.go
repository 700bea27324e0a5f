package validator

import (
	"svw.info/calpuzzle/internal/board"
	"svw.info/calpuzzle/internal/domain"
)

// PlacementValidator decides whether a shape fits on the board at an anchor.
// It never mutates the board, so callers can probe freely.
type PlacementValidator struct{}

func New() *PlacementValidator { return &PlacementValidator{} }

// CanPlace reports whether shape anchored at topLeft fits for pieceID.
func (v *PlacementValidator) CanPlace(b *board.Board, shape domain.Shape, topLeft domain.CellCoord, pieceID int) bool {
	reason, _ := v.Check(b, shape, topLeft, pieceID)
	return reason == domain.RejectNone
}

// Check returns the reason for the first conflicting cell in row-major order
// and every conflicting cell. Cells held by pieceID itself do not conflict.
func (v *PlacementValidator) Check(b *board.Board, shape domain.Shape, topLeft domain.CellCoord, pieceID int) (domain.Rejection, []domain.CellCoord) {
	reason := domain.RejectNone
	var conf []domain.CellCoord
	for _, c := range board.Footprint(shape, topLeft) {
		r := cellConflict(b, c, pieceID)
		if r == domain.RejectNone {
			continue
		}
		if reason == domain.RejectNone {
			reason = r
		}
		conf = append(conf, c)
	}
	return reason, conf
}

func cellConflict(b *board.Board, c domain.CellCoord, pieceID int) domain.Rejection {
	// row range first, then the row's own length
	if c.Row < 0 || c.Row >= board.Rows || c.Col < 0 || c.Col >= board.RowLength(c.Row) {
		return domain.RejectOutOfBounds
	}
	st := b.At(c)
	switch st.Kind {
	case domain.CellBlocked:
		return domain.RejectBlocked
	case domain.CellOccupied:
		if st.PieceID != pieceID {
			return domain.RejectOverlap
		}
	}
	return domain.RejectNone
}
