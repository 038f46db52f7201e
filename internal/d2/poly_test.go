package d2

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestSignedArea(t *testing.T) {
	ccw := Set{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	if a := SignedArea(ccw); math.Abs(a-4) > 1e-12 {
		t.Errorf("ccw square area %g, want 4", a)
	}
	cw := Set{ccw[3], ccw[2], ccw[1], ccw[0]}
	if a := SignedArea(cw); math.Abs(a+4) > 1e-12 {
		t.Errorf("cw square area %g, want -4", a)
	}
}

func TestSimple(t *testing.T) {
	square := Set{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	if !Simple(square) {
		t.Error("square flagged as self-intersecting")
	}
	bowtie := Set{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}}
	if Simple(bowtie) {
		t.Error("bowtie not flagged as self-intersecting")
	}
}

func TestPointSegDist(t *testing.T) {
	a, b := r2.Vec{X: 0, Y: 0}, r2.Vec{X: 10, Y: 0}
	for _, test := range []struct {
		p    r2.Vec
		want float64
	}{
		{r2.Vec{X: 5, Y: 3}, 3},
		{r2.Vec{X: -4, Y: 0}, 4},
		{r2.Vec{X: 13, Y: 4}, 5},
		{r2.Vec{X: 7, Y: 0}, 0},
	} {
		if got := PointSegDist(test.p, a, b); math.Abs(got-test.want) > 1e-12 {
			t.Errorf("dist(%v) = %g, want %g", test.p, got, test.want)
		}
	}
}

func TestTransform(t *testing.T) {
	m := Translate(r2.Vec{X: 3, Y: -1}).Mul(Rotate(math.Pi / 2))
	got := m.ApplyPos(r2.Vec{X: 1, Y: 0})
	want := r2.Vec{X: 3, Y: 0}
	if !EqualWithin(got, want, 1e-12) {
		t.Errorf("rotate+translate got %v, want %v", got, want)
	}
}
