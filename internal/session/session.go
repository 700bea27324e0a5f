// Package session owns one puzzle attempt: the piece roster, the board
// and the Ready/Solved lifecycle. A Session is not safe for concurrent
// use; callers serialize access.
package session

import (
	"fmt"

	"svw.info/calpuzzle/internal/board"
	"svw.info/calpuzzle/internal/calendar"
	"svw.info/calpuzzle/internal/domain"
	"svw.info/calpuzzle/internal/evaluator"
	"svw.info/calpuzzle/internal/validator"
)

// PlacementValidator checks a candidate placement without mutating the board.
type PlacementValidator interface {
	Check(b *board.Board, shape domain.Shape, topLeft domain.CellCoord, pieceID int) (domain.Rejection, []domain.CellCoord)
}

// WinEvaluator decides puzzle completion.
type WinEvaluator interface {
	IsSolved(b *board.Board, pieces []*domain.Piece) bool
}

type Session struct {
	date   domain.Date
	state  domain.SessionState
	pieces []*domain.Piece
	board  *board.Board

	placer PlacementValidator
	judge  WinEvaluator
}

// New starts a session for date with the default validator and evaluator.
func New(date domain.Date) (*Session, error) {
	return NewWith(date, validator.New(), evaluator.New())
}

// NewWith starts a session for date using the given collaborators.
func NewWith(date domain.Date, v PlacementValidator, e WinEvaluator) (*Session, error) {
	s := &Session{date: date, state: domain.StateInitializing, placer: v, judge: e}
	cells, err := calendar.BlockedCells(date)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	s.board, err = board.New(cells)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	defs := domain.Definitions()
	s.pieces = make([]*domain.Piece, len(defs))
	for i, d := range defs {
		s.pieces[i] = domain.NewPiece(d)
	}
	s.state = domain.StateReady
	return s, nil
}

func (s *Session) Date() domain.Date          { return s.date }
func (s *Session) State() domain.SessionState { return s.state }

// BlockedCells returns today's month and day cells.
func (s *Session) BlockedCells() []domain.CellCoord { return s.board.Blocked() }

// Pieces returns copies of all pieces ordered by id.
func (s *Session) Pieces() []domain.Piece {
	out := make([]domain.Piece, len(s.pieces))
	for i, p := range s.pieces {
		out[i] = p.Clone()
	}
	return out
}

// Piece returns a copy of one piece.
func (s *Session) Piece(id int) (domain.Piece, error) {
	p, err := s.lookup(id)
	if err != nil {
		return domain.Piece{}, err
	}
	return p.Clone(), nil
}

// Shape returns the current shape of a piece.
func (s *Session) Shape(id int) (domain.Shape, error) {
	p, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return p.Shape.Clone(), nil
}

// Orientation returns the cumulative transform state of a piece.
func (s *Session) Orientation(id int) (domain.Orientation, error) {
	p, err := s.lookup(id)
	if err != nil {
		return domain.Orientation{}, err
	}
	return p.Orientation, nil
}

// Snapshot returns the per-cell board state.
func (s *Session) Snapshot() domain.Snapshot { return s.board.Snapshot() }

// IsSolved reports whether the current arrangement completes the puzzle.
func (s *Session) IsSolved() bool { return s.judge.IsSolved(s.board, s.pieces) }

func (s *Session) lookup(id int) (*domain.Piece, error) {
	if id < 0 || id >= len(s.pieces) {
		return nil, fmt.Errorf("%w: %d", domain.ErrPieceNotFound, id)
	}
	return s.pieces[id], nil
}

func (s *Session) mutable() error {
	if s.state == domain.StateSolved {
		return domain.ErrSessionSolved
	}
	return nil
}

func (s *Session) recompute() {
	s.board.Recompute(s.pieces)
	if s.judge.IsSolved(s.board, s.pieces) {
		s.state = domain.StateSolved
	} else {
		s.state = domain.StateReady
	}
}
