package domain

import (
	"fmt"
	"strings"
)

// Transform names a geometry operation requested for a piece.
type Transform string

const (
	RotateCW  Transform = "rotateCW"
	RotateCCW Transform = "rotateCCW"
	FlipH     Transform = "flipH"
	FlipV     Transform = "flipV"
)

// ParseTransform accepts the four transform names case-insensitively.
func ParseTransform(s string) (Transform, error) {
	for _, t := range []Transform{RotateCW, RotateCCW, FlipH, FlipV} {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTransform, s)
}

// CellKind classifies a grid cell.
type CellKind int

const (
	CellInvalid  CellKind = iota // outside the grid
	CellEmpty                    // free to cover
	CellBlocked                  // today's month or day
	CellOccupied                 // covered by a placed piece
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellBlocked:
		return "blocked"
	case CellOccupied:
		return "occupied"
	default:
		return "invalid"
	}
}

func (k CellKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *CellKind) UnmarshalText(b []byte) error {
	for _, c := range []CellKind{CellInvalid, CellEmpty, CellBlocked, CellOccupied} {
		if c.String() == string(b) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown cell kind %q", b)
}

// Rejection explains why a placement was refused. The zero value means
// the placement was accepted.
type Rejection string

const (
	RejectNone        Rejection = ""
	RejectOutOfBounds Rejection = "out_of_bounds"
	RejectBlocked     Rejection = "blocked"
	RejectOverlap     Rejection = "overlap"
)

// SessionState is the lifecycle of a puzzle session.
type SessionState int

const (
	StateInitializing SessionState = iota
	StateReady
	StateSolved
)

func (s SessionState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateSolved:
		return "solved"
	default:
		return "initializing"
	}
}

func (s SessionState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *SessionState) UnmarshalText(b []byte) error {
	for _, st := range []SessionState{StateInitializing, StateReady, StateSolved} {
		if st.String() == string(b) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown session state %q", b)
}
