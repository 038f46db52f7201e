package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// SignedArea returns the shoelace area of the implicitly closed polygon.
// Positive area means counter-clockwise winding.
func SignedArea(s Set) float64 {
	n := len(s)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		a := s[i]
		b := s[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return 0.5 * area
}

// PointSegDist returns the distance from p to the segment a-b.
func PointSegDist(p, a, b r2.Vec) float64 {
	ab := r2.Sub(b, a)
	l2 := r2.Norm2(ab)
	if l2 == 0 {
		return r2.Norm(r2.Sub(p, a))
	}
	t := r2.Dot(r2.Sub(p, a), ab) / l2
	t = math.Min(1, math.Max(0, t))
	proj := r2.Add(a, r2.Scale(t, ab))
	return r2.Norm(r2.Sub(p, proj))
}

// orient returns the sign of the cross product (b-a)x(c-a):
// >0 for c left of a-b, <0 for right, 0 for collinear (within tol).
func orient(a, b, c r2.Vec) int {
	d := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	const tol = 1e-12
	switch {
	case d > tol:
		return 1
	case d < -tol:
		return -1
	}
	return 0
}

func on(a, b, c r2.Vec) bool {
	return math.Min(a.X, b.X) <= c.X && c.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= c.Y && c.Y <= math.Max(a.Y, b.Y)
}

// SegIntersect returns true if segments p1-p2 and q1-q2 intersect,
// including collinear overlap and endpoint touching.
func SegIntersect(p1, p2, q1, q2 r2.Vec) bool {
	o1 := orient(p1, p2, q1)
	o2 := orient(p1, p2, q2)
	o3 := orient(q1, q2, p1)
	o4 := orient(q1, q2, p2)
	if o1 != o2 && o3 != o4 {
		return true
	}
	// collinear cases
	if o1 == 0 && on(p1, p2, q1) {
		return true
	}
	if o2 == 0 && on(p1, p2, q2) {
		return true
	}
	if o3 == 0 && on(q1, q2, p1) {
		return true
	}
	if o4 == 0 && on(q1, q2, p2) {
		return true
	}
	return false
}

// Simple returns true if the implicitly closed polygon does not
// self-intersect. Adjacent segments sharing a vertex do not count as
// intersections. O(n^2) pairwise test, fine for cut outlines.
func Simple(s Set) bool {
	n := len(s)
	if n < 3 {
		return false
	}
	seg := func(i int) (r2.Vec, r2.Vec) { return s[i], s[(i+1)%n] }
	for i := 0; i < n; i++ {
		a1, a2 := seg(i)
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue // adjacent
			}
			b1, b2 := seg(j)
			if SegIntersect(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}
