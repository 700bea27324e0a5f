// Package testkit holds known puzzle arrangements shared by tests.
package testkit

import "svw.info/calpuzzle/internal/domain"

// Move transforms a piece from its canonical orientation and places it.
type Move struct {
	PieceID    int
	Transforms []domain.Transform
	At         domain.CellCoord
}

var (
	JanuaryFirst      = domain.Date{Month: 0, Day: 1}
	OctoberNineteenth = domain.Date{Month: 9, Day: 19}
)

const (
	cw   = domain.RotateCW
	flip = domain.FlipH
)

// JanuaryFirstSolution covers the board with JAN and 1 blocked.
func JanuaryFirstSolution() []Move {
	return []Move{
		{PieceID: 0, Transforms: []domain.Transform{cw}, At: domain.CellCoord{Row: 4, Col: 4}},
		{PieceID: 1, Transforms: []domain.Transform{cw}, At: domain.CellCoord{Row: 0, Col: 1}},
		{PieceID: 2, Transforms: []domain.Transform{cw, cw}, At: domain.CellCoord{Row: 4, Col: 1}},
		{PieceID: 3, Transforms: []domain.Transform{cw}, At: domain.CellCoord{Row: 3, Col: 3}},
		{PieceID: 4, At: domain.CellCoord{Row: 1, Col: 0}},
		{PieceID: 5, Transforms: []domain.Transform{flip, cw, cw}, At: domain.CellCoord{Row: 0, Col: 5}},
		{PieceID: 6, Transforms: []domain.Transform{flip, cw}, At: domain.CellCoord{Row: 1, Col: 2}},
		{PieceID: 7, Transforms: []domain.Transform{flip, cw, cw}, At: domain.CellCoord{Row: 3, Col: 0}},
	}
}

// OctoberNineteenthSolution covers the board with OCT and 19 blocked.
func OctoberNineteenthSolution() []Move {
	return []Move{
		{PieceID: 0, At: domain.CellCoord{Row: 0, Col: 0}},
		{PieceID: 1, At: domain.CellCoord{Row: 0, Col: 2}},
		{PieceID: 2, Transforms: []domain.Transform{cw, cw, cw}, At: domain.CellCoord{Row: 5, Col: 0}},
		{PieceID: 3, Transforms: []domain.Transform{cw, cw, cw}, At: domain.CellCoord{Row: 3, Col: 4}},
		{PieceID: 4, At: domain.CellCoord{Row: 0, Col: 4}},
		{PieceID: 5, Transforms: []domain.Transform{flip, cw, cw}, At: domain.CellCoord{Row: 1, Col: 4}},
		{PieceID: 6, Transforms: []domain.Transform{cw, cw}, At: domain.CellCoord{Row: 3, Col: 0}},
		{PieceID: 7, Transforms: []domain.Transform{cw, cw}, At: domain.CellCoord{Row: 2, Col: 2}},
	}
}
