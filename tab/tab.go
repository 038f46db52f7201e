// Package tab distributes interlocking tab/slot connectors along a
// straight panel edge. The result of Distribute is an open polyline that
// replaces the edge inside a larger boundary loop so that two mating
// panels of equal material thickness mesh with a box joint.
package tab

import (
	"errors"
	"fmt"

	"github.com/soypat/birdhouse/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrInvalidSpec is returned by Distribute when connector parameters
// cannot geometrically fit the edge. All Distribute errors wrap it.
var ErrInvalidSpec = errors.New("invalid connector spec")

// Polarity selects whether connectors protrude from or recede into the
// panel the edge belongs to.
type Polarity int

const (
	// Tab protrudes outward from the panel boundary.
	Tab Polarity = iota
	// Slot recedes into the panel boundary and receives a mating Tab.
	Slot
)

func (p Polarity) String() string {
	if p == Tab {
		return "tab"
	}
	return "slot"
}

// Inverted returns the complementary polarity.
func (p Polarity) Inverted() Polarity {
	if p == Tab {
		return Slot
	}
	return Tab
}

// Edge is a directed straight baseline along which connectors are laid
// out. Direction matters: tabs protrude to the left of the travel
// direction, so callers traverse the edge with the panel exterior on
// their left. For a counter-clockwise wound loop that means feeding the
// edge reversed and reversing the returned points.
type Edge struct {
	P0, P1 r2.Vec
}

// Length returns the baseline length.
func (e Edge) Length() float64 { return r2.Norm(r2.Sub(e.P1, e.P0)) }

// Reverse returns the edge traversed in the opposite direction.
func (e Edge) Reverse() Edge { return Edge{P0: e.P1, P1: e.P0} }

// Spec configures connector distribution along an edge.
type Spec struct {
	// Count is the number of connectors. When zero and Pitch is set the
	// count is derived as floor((L-2*Inset)/Pitch).
	Count int
	// Pitch is the spacing interval used to derive Count. Ignored when
	// Count is set.
	Pitch float64
	// Width of each connector along the baseline.
	Width float64
	// Depth of the perpendicular excursion. Usually the mating panel's
	// material thickness so tabs end flush with its far face.
	Depth float64
	// Inset is the margin kept clear of connectors at both edge ends.
	Inset float64
	// Polarity selects tab or slot.
	Polarity Polarity
}

// Complement returns the spec a mating edge must carry: identical
// geometry with inverted polarity.
func (s Spec) Complement() Spec {
	s.Polarity = s.Polarity.Inverted()
	return s
}

const lengthTol = 1e-9

// resolveCount derives the connector count for a baseline of length L.
func (s Spec) resolveCount(L float64) (int, error) {
	switch {
	case s.Count < 0:
		return 0, fmt.Errorf("%w: negative count %d", ErrInvalidSpec, s.Count)
	case s.Count > 0:
		return s.Count, nil
	case s.Pitch < 0:
		return 0, fmt.Errorf("%w: negative pitch %g", ErrInvalidSpec, s.Pitch)
	case s.Pitch > 0:
		usable := L - 2*s.Inset
		if usable <= 0 {
			return 0, nil
		}
		return int(usable / s.Pitch), nil
	}
	return 0, nil // no count, no pitch: straight edge
}

// Distribute replaces the straight edge with an interlocking connector
// profile. The returned polyline starts exactly at e.P0 and ends exactly
// at e.P1, deviates from the baseline by exactly s.Depth at each
// connector and by zero elsewhere, and never self-intersects.
//
// Connectors are centered in the usable span L-2*Inset with equal gaps
// between connectors and at both ends; leftover slack splits evenly
// between the two end gaps. A spec yielding zero connectors returns just
// the two endpoints. Distribute is a pure function of its arguments.
func Distribute(e Edge, s Spec) (d2.Set, error) {
	L := e.Length()
	if L <= lengthTol {
		return nil, fmt.Errorf("%w: degenerate edge of length %g", ErrInvalidSpec, L)
	}
	n, err := s.resolveCount(L)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return d2.Set{e.P0, e.P1}, nil
	}
	if s.Width <= 0 || s.Depth <= 0 {
		return nil, fmt.Errorf("%w: width %g and depth %g must be positive", ErrInvalidSpec, s.Width, s.Depth)
	}
	if s.Inset < 0 {
		return nil, fmt.Errorf("%w: negative inset %g", ErrInvalidSpec, s.Inset)
	}
	usable := L - 2*s.Inset
	solid := float64(n) * s.Width
	if solid > usable+lengthTol {
		return nil, fmt.Errorf("%w: %d connectors of width %g need %gmm but only %gmm is usable",
			ErrInvalidSpec, n, s.Width, solid, usable)
	}
	gap := (usable - solid) / float64(n+1)

	dir := r2.Unit(r2.Sub(e.P1, e.P0))
	// Tabs step to the left of the travel direction, slots to the right.
	off := r2.Scale(-s.Depth, d2.Perp(dir))
	if s.Polarity == Slot {
		off = r2.Scale(-1, off)
	}

	at := func(t float64) r2.Vec { return r2.Add(e.P0, r2.Scale(t, dir)) }

	pts := make(d2.Set, 0, 2+4*n)
	pts = append(pts, e.P0)
	for i := 0; i < n; i++ {
		t0 := s.Inset + gap*float64(i+1) + s.Width*float64(i)
		a := at(t0)
		b := at(t0 + s.Width)
		pts = append(pts, a, r2.Add(a, off), r2.Add(b, off), b)
	}
	pts = append(pts, e.P1)
	return pts, nil
}
