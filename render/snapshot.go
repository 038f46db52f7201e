package render

import (
	"fmt"
	"math"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/birdhouse"
	"gonum.org/v1/gonum/spatial/r3"
)

// assemblyPose places a panel in the assembled birdhouse. The world
// frame has x along the house width, y along the depth and z up; the
// front plate lies in the y=0 plane with its material extruded outward.
func assemblyPose(cfg birdhouse.Config, role birdhouse.Role) (Pose, bool) {
	w, d, t := cfg.Width, cfg.Depth, cfg.WallThickness
	ov := cfg.RoofOverhang
	hs := cfg.Height - cfg.SpaceBottom - w/2
	// both roof slopes are 45 degrees: the ridge rises half the width
	// above the walls
	k := math.Sqrt2 / 2
	switch role {
	case birdhouse.RoleFront:
		return Pose{X: r3.Vec{X: 1}, Y: r3.Vec{Z: 1}}, true
	case birdhouse.RoleBack:
		return Pose{Origin: r3.Vec{X: w, Y: d}, X: r3.Vec{X: -1}, Y: r3.Vec{Z: 1}}, true
	case birdhouse.RoleSideLeft:
		return Pose{Origin: r3.Vec{Y: d}, X: r3.Vec{Y: -1}, Y: r3.Vec{Z: 1}}, true
	case birdhouse.RoleSideRight:
		return Pose{Origin: r3.Vec{X: w}, X: r3.Vec{Y: 1}, Y: r3.Vec{Z: 1}}, true
	case birdhouse.RoleRoofLeft:
		return Pose{
			Origin: r3.Vec{X: -ov * k, Y: d + ov, Z: hs - ov*k},
			X:      r3.Vec{Y: -1},
			Y:      r3.Vec{X: k, Z: k},
		}, true
	case birdhouse.RoleRoofRight:
		return Pose{
			Origin: r3.Vec{X: w + ov*k, Y: -ov, Z: hs - ov*k},
			X:      r3.Vec{Y: 1},
			Y:      r3.Vec{X: -k, Z: k},
		}, true
	case birdhouse.RoleSlide:
		return Pose{Origin: r3.Vec{X: t}, X: r3.Vec{X: 1}, Y: r3.Vec{Y: 1}}, true
	}
	return Pose{}, false
}

// AssembleMesh extrudes every panel into place and returns the combined
// triangle mesh of the assembled birdhouse.
func AssembleMesh(cfg birdhouse.Config, panels []birdhouse.Panel) ([]Triangle3, error) {
	var mesh []Triangle3
	for _, p := range panels {
		pose, ok := assemblyPose(cfg, p.Role)
		if !ok {
			return nil, fmt.Errorf("no assembly pose for panel %q", p.Role)
		}
		m, err := ExtrudeLoop(p.Loop, p.Thickness, pose)
		if err != nil {
			return nil, fmt.Errorf("extrude %s: %w", p.Role, err)
		}
		mesh = append(mesh, m...)
	}
	return mesh, nil
}

// ViewConfig frames the snapshot camera.
type ViewConfig struct {
	// what position (point) to look at
	Lookat r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eyepos r3.Vec
	Far    float64
	Near   float64
}

// DefaultView is an isometric-ish view with z up.
var DefaultView = ViewConfig{
	Up:     r3.Vec{Z: 1},
	Eyepos: r3.Vec{X: 2.4, Y: 2.4, Z: 2.4},
	Near:   1,
	Far:    10,
}

// SnapshotPNG renders the STL at stlName into a shaded PNG at
// outputname. Purely cosmetic output for READMEs and sanity checks.
func SnapshotPNG(stlName, outputname string, view ViewConfig) error {
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		return err
	}
	const (
		scale         = 2  // supersampling
		fovy          = 30 // vertical field of view in degrees
		width, height = 768, 432
	)

	var (
		eye    = fauxgl.V(view.Eyepos.X, view.Eyepos.Y, view.Eyepos.Z)
		center = fauxgl.V(view.Lookat.X, view.Lookat.Y, view.Lookat.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color  = fauxgl.HexColor("#468966")
	)

	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := context.Image()
	image = resize.Resize(width, height, image, resize.Bilinear)
	return fauxgl.SavePNG(outputname, image)
}
