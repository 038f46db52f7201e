// Package render writes birdhouse panels to cut files and previews.
// DXF is the primary exchange format for laser cutters, SVG the
// secondary; PNG previews and an assembled STL snapshot are best-effort
// visualization aids.
package render

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a 3D triangle.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the normal vector to the plane defined by the triangle.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Pose places a panel's 2D plane in 3D space: Origin is the panel's
// local (0,0), X and Y are unit basis vectors for the panel's local
// axes. Extrusion proceeds along X cross Y.
type Pose struct {
	Origin r3.Vec
	X, Y   r3.Vec
}

// To3 maps a local panel coordinate at height z above the plane into
// world space.
func (p Pose) To3(x, y, z float64) r3.Vec {
	n := r3.Cross(p.X, p.Y)
	v := r3.Add(p.Origin, r3.Scale(x, p.X))
	v = r3.Add(v, r3.Scale(y, p.Y))
	return r3.Add(v, r3.Scale(z, n))
}
