package render_test

import (
	"math"
	"testing"

	"github.com/soypat/birdhouse"
	"github.com/soypat/birdhouse/internal/d2"
	"github.com/soypat/birdhouse/render"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func triArea(t [3]r2.Vec) float64 {
	return 0.5 * ((t[1].X-t[0].X)*(t[2].Y-t[0].Y) - (t[1].Y-t[0].Y)*(t[2].X-t[0].X))
}

func TestTriangleNormal(t *testing.T) {
	tri := render.Triangle3{V: [3]r3.Vec{{}, {X: 2}, {Y: 2}}}
	if n := tri.Normal(); n != (r3.Vec{Z: 1}) {
		t.Errorf("ccw unit triangle normal %v, want +z", n)
	}
	flipped := render.Triangle3{V: [3]r3.Vec{{}, {Y: 2}, {X: 2}}}
	if n := flipped.Normal(); n != (r3.Vec{Z: -1}) {
		t.Errorf("cw unit triangle normal %v, want -z", n)
	}
}

func TestTriangulateSquare(t *testing.T) {
	square := d2.Set{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	tris, err := render.Triangulate(square)
	if err != nil {
		t.Fatal(err)
	}
	if len(tris) != 2 {
		t.Fatalf("got %d triangles, want 2", len(tris))
	}
	area := 0.0
	for _, tri := range tris {
		area += triArea(tri)
	}
	if math.Abs(area-4) > 1e-12 {
		t.Fatalf("triangulated area %g, want 4", area)
	}
}

// TestTriangulatePanels ear-clips every real panel outline, connector
// detours included, and checks the tessellation covers the polygon area
// exactly with consistently wound triangles.
func TestTriangulatePanels(t *testing.T) {
	panels, err := birdhouse.Panels(birdhouse.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range panels {
		tris, err := render.Triangulate(p.Loop)
		if err != nil {
			t.Fatalf("%s: %v", p.Role, err)
		}
		area := 0.0
		for _, tri := range tris {
			a := triArea(tri)
			if a <= 0 {
				t.Errorf("%s: clockwise or degenerate triangle %v", p.Role, tri)
			}
			area += a
		}
		if want := d2.SignedArea(p.Loop); math.Abs(area-want) > 1e-6 {
			t.Errorf("%s: triangulated area %g, want %g", p.Role, area, want)
		}
	}
}

// TestExtrudeLoopManifold extrudes every panel, connector detours
// included, and checks the result is a closed orientable surface
// enclosing exactly the prism volume. The multi-connector side and
// roof profiles are the hard cases: their detour corners put several
// vertices on shared axis-aligned lines.
func TestExtrudeLoopManifold(t *testing.T) {
	panels, err := birdhouse.Panels(birdhouse.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	pose := render.Pose{X: r3.Vec{X: 1}, Y: r3.Vec{Y: 1}}
	for _, p := range panels {
		mesh, err := render.ExtrudeLoop(p.Loop, p.Thickness, pose)
		if err != nil {
			t.Fatalf("%s: %v", p.Role, err)
		}
		// every directed edge is matched by its reverse exactly once
		type dedge [2]r3.Vec
		edges := make(map[dedge]int)
		for _, tri := range mesh {
			for i := 0; i < 3; i++ {
				edges[dedge{tri.V[i], tri.V[(i+1)%3]}]++
			}
		}
		for e, n := range edges {
			if n != 1 {
				t.Fatalf("%s: directed edge %v used %d times", p.Role, e, n)
			}
			if edges[dedge{e[1], e[0]}] != 1 {
				t.Fatalf("%s: directed edge %v has no reverse", p.Role, e)
			}
		}
		// outward orientation encloses positive volume
		vol := 0.0
		for _, tri := range mesh {
			vol += r3.Dot(tri.V[0], r3.Cross(tri.V[1], tri.V[2])) / 6
		}
		want := d2.SignedArea(p.Loop) * p.Thickness
		if math.Abs(vol-want) > 1e-6 {
			t.Fatalf("%s: mesh volume %g, want %g", p.Role, vol, want)
		}
	}
}
