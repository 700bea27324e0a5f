package hint

import (
	"context"

	"svw.info/calpuzzle/internal/board"
	"svw.info/calpuzzle/internal/domain"
	"svw.info/calpuzzle/internal/ports"
)

// Fitter lists every anchor where a piece fits in its current orientation.
// It only probes; it never places anything or searches for a full solution.
type Fitter struct{}

func NewFitter() *Fitter { return &Fitter{} }

// Fits returns anchors in row-major order. Anchors may be negative when the
// shape's first rows or columns are empty.
func (f *Fitter) Fits(ctx context.Context, p ports.Prober, pieceID int) ([]domain.CellCoord, error) {
	piece, err := p.Piece(pieceID)
	if err != nil {
		return nil, err
	}
	h, w := piece.Shape.Height(), piece.Shape.Width()
	var out []domain.CellCoord
	for r := 1 - h; r < board.Rows; r++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for c := 1 - w; c < board.MaxCols; c++ {
			at := domain.CellCoord{Row: r, Col: c}
			ok, _, err := p.CanPlace(pieceID, at)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, at)
			}
		}
	}
	return out, nil
}
