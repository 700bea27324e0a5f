// Package geometry rotates and flips piece shapes and keeps the
// orientation bookkeeping that goes with each transform.
package geometry

import (
	"fmt"

	"svw.info/calpuzzle/internal/domain"
)

// RotateCW turns s a quarter turn clockwise. An H×W shape becomes W×H and
// source cell (y, x) lands on (x, H-1-y).
func RotateCW(s domain.Shape) domain.Shape {
	h, w := s.Height(), s.Width()
	out := blank(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < len(s[y]); x++ {
			if s[y][x] {
				out[x][h-1-y] = true
			}
		}
	}
	return out
}

// RotateCCW turns s a quarter turn counter-clockwise: source cell (y, x)
// lands on (W-1-x, y).
func RotateCCW(s domain.Shape) domain.Shape {
	h, w := s.Height(), s.Width()
	out := blank(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < len(s[y]); x++ {
			if s[y][x] {
				out[w-1-x][y] = true
			}
		}
	}
	return out
}

// FlipHorizontal mirrors s left to right. Each row is reversed within its
// own length.
func FlipHorizontal(s domain.Shape) domain.Shape {
	out := make(domain.Shape, len(s))
	for y, row := range s {
		rev := make([]bool, len(row))
		for x, on := range row {
			rev[len(row)-1-x] = on
		}
		out[y] = rev
	}
	return out
}

// FlipVertical mirrors s top to bottom.
func FlipVertical(s domain.Shape) domain.Shape {
	out := make(domain.Shape, len(s))
	for y, row := range s {
		out[len(s)-1-y] = append([]bool(nil), row...)
	}
	return out
}

// Apply runs transform t on s and returns the new shape with the updated
// orientation. Flip requests are remapped to the other flag while the
// piece sits at 90 or 270 degrees, since its visual axes are swapped
// relative to the shape matrix.
func Apply(t domain.Transform, s domain.Shape, o domain.Orientation) (domain.Shape, domain.Orientation, error) {
	switch t {
	case domain.RotateCW:
		o.Angle += 90
		return RotateCW(s), o, nil
	case domain.RotateCCW:
		o.Angle -= 90
		return RotateCCW(s), o, nil
	case domain.FlipH:
		if quarterTurned(o) {
			o.FlippedV = !o.FlippedV
		} else {
			o.FlippedH = !o.FlippedH
		}
		return FlipHorizontal(s), o, nil
	case domain.FlipV:
		if quarterTurned(o) {
			o.FlippedH = !o.FlippedH
		} else {
			o.FlippedV = !o.FlippedV
		}
		return FlipVertical(s), o, nil
	}
	return nil, o, fmt.Errorf("%w: %q", domain.ErrUnknownTransform, string(t))
}

// NormalizedAngle folds an orientation angle into [0, 360).
func NormalizedAngle(angle int) int {
	return ((angle % 360) + 360) % 360
}

func quarterTurned(o domain.Orientation) bool {
	return NormalizedAngle(o.Angle)%180 != 0
}

func blank(h, w int) domain.Shape {
	out := make(domain.Shape, h)
	for i := range out {
		out[i] = make([]bool, w)
	}
	return out
}
