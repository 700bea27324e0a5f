package domain

import "errors"

var (
	ErrEmptyShape          = errors.New("shape has no occupied cell")
	ErrUnknownTransform    = errors.New("unknown transform")
	ErrPieceNotFound       = errors.New("piece not found")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidBlockedCells = errors.New("invalid blocked date cells")
	ErrSessionSolved       = errors.New("session already solved")
	ErrSessionNotFound     = errors.New("session not found")
)
