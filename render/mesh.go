package render

import (
	"fmt"

	"github.com/soypat/birdhouse/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// triTol absorbs float noise in the ear orientation and containment
// tests. Connector profiles put many vertices on shared axis-aligned
// lines, so exact-zero cross products are the norm, not the exception.
const triTol = 1e-9

// Triangulate splits a simple, counter-clockwise, implicitly closed
// polygon into triangles by ear clipping. Returned triangles keep the
// counter-clockwise winding of the input, and every boundary edge of
// the input lands in exactly one triangle. ExtrudeLoop relies on that
// to seam the caps to the side walls.
func Triangulate(loop d2.Set) ([][3]r2.Vec, error) {
	n := len(loop)
	if n < 3 {
		return nil, fmt.Errorf("triangulate: %d vertices", n)
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	tris := make([][3]r2.Vec, 0, n-2)
	for len(idx) > 3 {
		clipped := false
		for i := 0; i < len(idx); i++ {
			ip := idx[(i+len(idx)-1)%len(idx)]
			ic := idx[i]
			in := idx[(i+1)%len(idx)]
			a, b, c := loop[ip], loop[ic], loop[in]
			o := orient2(a, b, c)
			// Reflex and collinear vertices are not clippable. A
			// collinear vertex must wait until clipping turns it into
			// a corner: removing it outright would merge its two
			// boundary edges and orphan them from the cap.
			if o <= triTol {
				continue
			}
			if anyInside(loop, idx, ip, ic, in, a, b, c) {
				continue
			}
			tris = append(tris, [3]r2.Vec{a, b, c})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, fmt.Errorf("triangulate: no ear found, polygon not simple?")
		}
	}
	a, b, c := loop[idx[0]], loop[idx[1]], loop[idx[2]]
	if orient2(a, b, c) > 0 {
		tris = append(tris, [3]r2.Vec{a, b, c})
	}
	return tris, nil
}

func orient2(a, b, c r2.Vec) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// anyInside reports whether any remaining vertex lies inside the
// candidate ear or on its boundary. Boundary contact blocks the ear
// too: clipping across a vertex that sits exactly on the diagonal
// yields triangles overlapping the ones cut later on its far side.
func anyInside(loop d2.Set, idx []int, ip, ic, in int, a, b, c r2.Vec) bool {
	for _, j := range idx {
		if j == ip || j == ic || j == in {
			continue
		}
		p := loop[j]
		if orient2(a, b, p) >= -triTol && orient2(b, c, p) >= -triTol && orient2(c, a, p) >= -triTol {
			return true
		}
	}
	return false
}

// ExtrudeLoop turns a panel outline into a closed triangle mesh of the
// given thickness, placed in world space by pose. Interior holes are
// not carved; the mesh serves assembled-model snapshots, not
// fabrication. The cut files remain the fabrication source of truth.
func ExtrudeLoop(loop d2.Set, thickness float64, pose Pose) ([]Triangle3, error) {
	caps, err := Triangulate(loop)
	if err != nil {
		return nil, err
	}
	mesh := make([]Triangle3, 0, 4*len(caps))
	for _, t := range caps {
		// bottom cap faces opposite the extrusion direction
		mesh = append(mesh, Triangle3{V: [3]r3.Vec{
			pose.To3(t[0].X, t[0].Y, 0),
			pose.To3(t[2].X, t[2].Y, 0),
			pose.To3(t[1].X, t[1].Y, 0),
		}})
		mesh = append(mesh, Triangle3{V: [3]r3.Vec{
			pose.To3(t[0].X, t[0].Y, thickness),
			pose.To3(t[1].X, t[1].Y, thickness),
			pose.To3(t[2].X, t[2].Y, thickness),
		}})
	}
	// side walls, outward facing for a counter-clockwise loop
	for i := range loop {
		a := loop[i]
		b := loop[(i+1)%len(loop)]
		a0 := pose.To3(a.X, a.Y, 0)
		b0 := pose.To3(b.X, b.Y, 0)
		a1 := pose.To3(a.X, a.Y, thickness)
		b1 := pose.To3(b.X, b.Y, thickness)
		mesh = append(mesh,
			Triangle3{V: [3]r3.Vec{a0, b0, b1}},
			Triangle3{V: [3]r3.Vec{a0, b1, a1}},
		)
	}
	return mesh, nil
}
