package session

import (
	"svw.info/calpuzzle/internal/domain"
	"svw.info/calpuzzle/internal/geometry"
)

// Transform rotates or flips a piece. A placed piece stays on the board
// when its new footprint still fits at the same anchor and goes back to
// the palette otherwise.
func (s *Session) Transform(id int, kind domain.Transform) (domain.Piece, error) {
	p, err := s.lookup(id)
	if err != nil {
		return domain.Piece{}, err
	}
	if err := s.mutable(); err != nil {
		return domain.Piece{}, err
	}
	shape, orient, err := geometry.Apply(kind, p.Shape, p.Orientation)
	if err != nil {
		return domain.Piece{}, err
	}
	at := p.Placement
	p.Shape, p.Orientation = shape, orient
	if at != nil {
		p.Placement = nil
		s.board.Recompute(s.pieces)
		if reason, _ := s.placer.Check(s.board, p.Shape, *at, p.ID); reason == domain.RejectNone {
			p.Placement = at
		}
	}
	s.recompute()
	return p.Clone(), nil
}

// CanPlace probes whether the piece fits at topLeft in its current shape.
// Its own current footprint never blocks it. Nothing is mutated.
func (s *Session) CanPlace(id int, topLeft domain.CellCoord) (bool, domain.Rejection, error) {
	p, err := s.lookup(id)
	if err != nil {
		return false, domain.RejectNone, err
	}
	reason, _ := s.placer.Check(s.board, p.Shape, topLeft, p.ID)
	return reason == domain.RejectNone, reason, nil
}

// TryPlace moves a piece to topLeft. The piece's old placement is cleared
// before validation so it cannot collide with itself; a rejected attempt
// restores it and leaves the session unchanged.
func (s *Session) TryPlace(id int, topLeft domain.CellCoord) (domain.PlaceResult, error) {
	p, err := s.lookup(id)
	if err != nil {
		return domain.PlaceResult{}, err
	}
	if err := s.mutable(); err != nil {
		return domain.PlaceResult{}, err
	}
	prev := p.Placement
	p.Placement = nil
	s.board.Recompute(s.pieces)

	reason, conflicts := s.placer.Check(s.board, p.Shape, topLeft, p.ID)
	if reason != domain.RejectNone {
		p.Placement = prev
		s.board.Recompute(s.pieces)
		return domain.PlaceResult{
			Reason:    reason,
			Conflicts: conflicts,
			Board:     s.board.Snapshot(),
		}, nil
	}

	at := topLeft
	p.Placement = &at
	s.recompute()
	return domain.PlaceResult{
		Accepted: true,
		Board:    s.board.Snapshot(),
		Solved:   s.state == domain.StateSolved,
	}, nil
}

// Unplace returns a piece to the palette. It is the one move still allowed
// on a solved board, and it reopens the session. Unplacing a piece that is
// not on the board is a no-op.
func (s *Session) Unplace(id int) error {
	p, err := s.lookup(id)
	if err != nil {
		return err
	}
	if !p.Placed() {
		return nil
	}
	p.Placement = nil
	s.recompute()
	return nil
}

// Reset unplaces every piece and restores each to its canonical shape
// and orientation.
func (s *Session) Reset() {
	defs := domain.Definitions()
	for i, d := range defs {
		s.pieces[i] = domain.NewPiece(d)
	}
	s.board.Reset()
	s.state = domain.StateReady
}
