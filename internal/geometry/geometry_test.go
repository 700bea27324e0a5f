package geometry

import (
	"errors"
	"testing"

	"svw.info/calpuzzle/internal/domain"
)

func shapes(t *testing.T) map[string]domain.Shape {
	t.Helper()
	out := map[string]domain.Shape{}
	for _, d := range domain.Definitions() {
		out[d.Name] = d.Shape
	}
	ragged, err := domain.ShapeFromRows("###", "#", ".#")
	if err != nil {
		t.Fatalf("ShapeFromRows failed: %v", err)
	}
	out["ragged"] = ragged
	return out
}

func mustRows(t *testing.T, rows ...string) domain.Shape {
	t.Helper()
	s, err := domain.ShapeFromRows(rows...)
	if err != nil {
		t.Fatalf("ShapeFromRows(%v) failed: %v", rows, err)
	}
	return s
}

func TestRotateCW(t *testing.T) {
	cases := []struct {
		name string
		in   domain.Shape
		want domain.Shape
	}{
		{"cane", mustRows(t, "##", "#.", "#.", "#."), mustRows(t, "####", "...#")},
		{"block", mustRows(t, "##", "##", "##"), mustRows(t, "###", "###")},
		{"lll", mustRows(t, "#..", "#..", "###"), mustRows(t, "###", "#..", "#..")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RotateCW(tc.in)
			if !got.Equal(tc.want) {
				t.Fatalf("RotateCW:\n%s\nwant:\n%s", got, tc.want)
			}
		})
	}
}

func TestRotateCCW(t *testing.T) {
	got := RotateCCW(mustRows(t, "##", "#.", "#.", "#."))
	want := mustRows(t, "#...", "####")
	if !got.Equal(want) {
		t.Fatalf("RotateCCW:\n%s\nwant:\n%s", got, want)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	for name, s := range shapes(t) {
		t.Run(name, func(t *testing.T) {
			if got := RotateCCW(RotateCW(s)); !got.Equal(s) {
				t.Fatalf("ccw(cw(s)):\n%s\nwant:\n%s", got, s)
			}
			if got := RotateCW(RotateCCW(s)); !got.Equal(s) {
				t.Fatalf("cw(ccw(s)):\n%s\nwant:\n%s", got, s)
			}
		})
	}
}

func TestFourQuarterTurnsRestore(t *testing.T) {
	for name, s := range shapes(t) {
		t.Run(name, func(t *testing.T) {
			for _, kind := range []domain.Transform{domain.RotateCW, domain.RotateCCW} {
				cur, o := s, domain.Orientation{}
				for i := 0; i < 4; i++ {
					var err error
					cur, o, err = Apply(kind, cur, o)
					if err != nil {
						t.Fatalf("Apply(%s) failed: %v", kind, err)
					}
				}
				if !cur.Equal(s) {
					t.Fatalf("4x %s:\n%s\nwant:\n%s", kind, cur, s)
				}
				if NormalizedAngle(o.Angle) != 0 {
					t.Fatalf("4x %s angle = %d", kind, o.Angle)
				}
			}
		})
	}
}

func TestFlipInvolution(t *testing.T) {
	for name, s := range shapes(t) {
		t.Run(name, func(t *testing.T) {
			if got := FlipHorizontal(FlipHorizontal(s)); !got.Equal(s) {
				t.Fatalf("flipH twice:\n%s\nwant:\n%s", got, s)
			}
			if got := FlipVertical(FlipVertical(s)); !got.Equal(s) {
				t.Fatalf("flipV twice:\n%s\nwant:\n%s", got, s)
			}
		})
	}
}

func TestFlipDoesNotAliasSource(t *testing.T) {
	s := mustRows(t, "#.", "##")
	_ = FlipHorizontal(s)
	_ = FlipVertical(s)
	if !s.Equal(mustRows(t, "#.", "##")) {
		t.Fatalf("source mutated:\n%s", s)
	}
}

func TestFlipAxisRemap(t *testing.T) {
	s := mustRows(t, "#.", "##", "#.", "#.")

	_, o, err := Apply(domain.FlipH, s, domain.Orientation{})
	if err != nil {
		t.Fatalf("Apply(flipH) failed: %v", err)
	}
	if !o.FlippedH || o.FlippedV {
		t.Fatalf("flipH at 0deg: got %+v, want FlippedH only", o)
	}

	rot, o, err := Apply(domain.RotateCW, s, domain.Orientation{})
	if err != nil {
		t.Fatalf("Apply(rotateCW) failed: %v", err)
	}
	if o.Angle != 90 {
		t.Fatalf("angle after rotateCW = %d, want 90", o.Angle)
	}
	_, o, err = Apply(domain.FlipH, rot, o)
	if err != nil {
		t.Fatalf("Apply(flipH) failed: %v", err)
	}
	if o.FlippedH || !o.FlippedV {
		t.Fatalf("flipH at 90deg: got %+v, want FlippedV only", o)
	}

	// -90 is a quarter turn as well.
	_, o, _ = Apply(domain.FlipV, s, domain.Orientation{Angle: -90})
	if !o.FlippedH || o.FlippedV {
		t.Fatalf("flipV at -90deg: got %+v, want FlippedH only", o)
	}
	_, o, _ = Apply(domain.FlipV, s, domain.Orientation{Angle: 450})
	if !o.FlippedH {
		t.Fatalf("flipV at 450deg: got %+v, want FlippedH", o)
	}
}

func TestApplyUnknownTransform(t *testing.T) {
	s := mustRows(t, "#")
	_, _, err := Apply(domain.Transform("spin"), s, domain.Orientation{})
	if !errors.Is(err, domain.ErrUnknownTransform) {
		t.Fatalf("Apply(spin) err = %v, want ErrUnknownTransform", err)
	}
}
