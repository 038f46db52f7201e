// Package birdhouse generates laser-cut panel outlines for a replacement
// birdhouse. Panels are flat polygons with interlocking tab/slot
// connectors along shared edges; the tab package computes the connector
// detours and the render package writes the outlines to cut files.
package birdhouse

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/birdhouse/internal/d2"
	"github.com/soypat/birdhouse/tab"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrDegenerate reports a panel outline that is self-intersecting, not
// closed or wound clockwise. All outline verification errors wrap it.
var ErrDegenerate = errors.New("degenerate panel outline")

// Role names a panel and its cut file.
type Role string

const (
	RoleFront     Role = "front"
	RoleBack      Role = "back"
	RoleSideLeft  Role = "side_left"
	RoleSideRight Role = "side_right"
	RoleRoofLeft  Role = "roof_left"
	RoleRoofRight Role = "roof_right"
	RoleSlide     Role = "slide"
)

// Circle is a circular cutout inside a panel outline.
type Circle struct {
	Center r2.Vec
	R      float64
}

// Panel is one flat piece of the birdhouse: a closed counter-clockwise
// outline plus interior cutouts. Corners holds the base polygon before
// connector detours; Edges maps base edge indices (corner i to corner
// i+1) to the connector spec applied there.
type Panel struct {
	Role      Role
	Loop      d2.Set
	Holes     []Circle
	Corners   d2.Set
	Edges     map[int]tab.Spec
	Thickness float64
}

// EdgeLength returns the base length of edge i, before connector detours.
func (p Panel) EdgeLength(i int) float64 {
	n := len(p.Corners)
	return r2.Norm(r2.Sub(p.Corners[(i+1)%n], p.Corners[i]))
}

const cornerTol = 1e-9

// appendDedup appends points to a loop, collapsing consecutive
// duplicates within cornerTol.
func appendDedup(loop d2.Set, pts ...r2.Vec) d2.Set {
	for _, p := range pts {
		if len(loop) > 0 && d2.EqualWithin(loop[len(loop)-1], p, cornerTol) {
			continue
		}
		loop = append(loop, p)
	}
	return loop
}

// buildLoop expands base corners into the full outline. Edges present in
// specs are replaced with the connector profile of the tab package. The
// loop winds counter-clockwise, so each connector edge is fed to
// tab.Distribute reversed (exterior to the left of travel) and its
// points reversed back.
func buildLoop(corners d2.Set, specs map[int]tab.Spec) (d2.Set, error) {
	n := len(corners)
	loop := make(d2.Set, 0, 4*n)
	for i := 0; i < n; i++ {
		a, b := corners[i], corners[(i+1)%n]
		spec, ok := specs[i]
		if !ok {
			loop = appendDedup(loop, a, b)
			continue
		}
		pts, err := tab.Distribute(tab.Edge{P0: a, P1: b}.Reverse(), spec)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		for j := len(pts) - 1; j >= 0; j-- {
			loop = appendDedup(loop, pts[j])
		}
	}
	// implicit closure: drop a trailing point equal to the first
	if len(loop) > 1 && d2.EqualWithin(loop[0], loop[len(loop)-1], cornerTol) {
		loop = loop[:len(loop)-1]
	}
	return loop, nil
}

func verifyLoop(role Role, loop d2.Set) error {
	if len(loop) < 3 {
		return fmt.Errorf("%s: %w: %d points", role, ErrDegenerate, len(loop))
	}
	if d2.SignedArea(loop) <= 0 {
		return fmt.Errorf("%s: %w: clockwise or zero-area outline", role, ErrDegenerate)
	}
	if !d2.Simple(loop) {
		return fmt.Errorf("%s: %w: self-intersecting outline", role, ErrDegenerate)
	}
	return nil
}

// newPanel builds, verifies and returns a panel.
func newPanel(cfg Config, role Role, corners d2.Set, specs map[int]tab.Spec, holes []Circle) (Panel, error) {
	loop, err := buildLoop(corners, specs)
	if err != nil {
		return Panel{}, fmt.Errorf("%s: %w", role, err)
	}
	if err := verifyLoop(role, loop); err != nil {
		return Panel{}, err
	}
	return Panel{
		Role:      role,
		Loop:      loop,
		Holes:     holes,
		Corners:   corners,
		Edges:     specs,
		Thickness: cfg.WallThickness,
	}, nil
}

// Gable plate edge indices, counter-clockwise from the bottom-left
// corner. The vertical wall edges carry the slots that receive the side
// plate tabs.
const (
	gableEdgeBottom = iota
	gableEdgeRight
	gableEdgeSlopeRight
	gableEdgeSlopeLeft
	gableEdgeLeft
)

// gableCorners returns the house profile: a rectangle of wall height
// topped by a triangular gable rising to the ridge at half width.
func gableCorners(cfg Config) d2.Set {
	hs, hm := cfg.gableHeights()
	w := cfg.Width
	return d2.Set{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: hs},
		{X: w / 2, Y: hm},
		{X: 0, Y: hs},
	}
}

// FrontPlate returns the front gable plate with the two round entrance
// holes. Both vertical edges carry slots for the side plate tabs.
func FrontPlate(cfg Config) (Panel, error) {
	if err := cfg.validate(); err != nil {
		return Panel{}, err
	}
	_, hm := cfg.gableHeights()
	r := cfg.Width / 6
	holes := []Circle{
		{Center: r2.Vec{X: cfg.Width / 2, Y: 0.5 * hm}, R: r},
		{Center: r2.Vec{X: cfg.Width / 2, Y: 0.75 * hm}, R: r},
	}
	specs := map[int]tab.Spec{
		gableEdgeRight: cfg.wallSpec(tab.Slot),
		gableEdgeLeft:  cfg.wallSpec(tab.Slot),
	}
	return newPanel(cfg, RoleFront, gableCorners(cfg), specs, holes)
}

// BackPlate returns the blind rear gable plate.
func BackPlate(cfg Config) (Panel, error) {
	if err := cfg.validate(); err != nil {
		return Panel{}, err
	}
	specs := map[int]tab.Spec{
		gableEdgeRight: cfg.wallSpec(tab.Slot),
		gableEdgeLeft:  cfg.wallSpec(tab.Slot),
	}
	return newPanel(cfg, RoleBack, gableCorners(cfg), specs, nil)
}

// Rectangular plate edge indices, counter-clockwise from bottom-left.
const (
	rectEdgeBottom = iota
	rectEdgeRight
	rectEdgeTop
	rectEdgeLeft
)

// SidePlate returns one of the two side walls. The vertical edges carry
// tabs that mate the gable plate slots: the right edge joins the front
// plate and the left edge joins the back plate (mirrored for the
// opposite side, which uses the same geometry).
func SidePlate(cfg Config, role Role) (Panel, error) {
	if err := cfg.validate(); err != nil {
		return Panel{}, err
	}
	if role != RoleSideLeft && role != RoleSideRight {
		return Panel{}, fmt.Errorf("side plate role %q must be %s or %s", role, RoleSideLeft, RoleSideRight)
	}
	hs, _ := cfg.gableHeights()
	corners := d2.Set{
		{X: 0, Y: 0},
		{X: cfg.Depth, Y: 0},
		{X: cfg.Depth, Y: hs},
		{X: 0, Y: hs},
	}
	specs := map[int]tab.Spec{
		rectEdgeRight: cfg.wallSpec(tab.Tab),
		rectEdgeLeft:  cfg.wallSpec(tab.Tab),
	}
	return newPanel(cfg, role, corners, specs, nil)
}

// RoofSlopeLength returns the length of one roof slope from eave to
// ridge, overhang included.
func RoofSlopeLength(cfg Config) float64 {
	hs, hm := cfg.gableHeights()
	return math.Hypot(cfg.Width/2, hm-hs) + cfg.RoofOverhang
}

// RoofPlate returns one roof half. The top edge lies along the ridge and
// carries a finger joint: tabs on the left half, slots on the right, so
// the two halves interleave when folded over the gable.
func RoofPlate(cfg Config, role Role) (Panel, error) {
	if err := cfg.validate(); err != nil {
		return Panel{}, err
	}
	var polarity tab.Polarity
	switch role {
	case RoleRoofLeft:
		polarity = tab.Tab
	case RoleRoofRight:
		polarity = tab.Slot
	default:
		return Panel{}, fmt.Errorf("roof plate role %q must be %s or %s", role, RoleRoofLeft, RoleRoofRight)
	}
	w := cfg.Depth + 2*cfg.RoofOverhang
	h := RoofSlopeLength(cfg)
	corners := d2.Set{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: h},
		{X: 0, Y: h},
	}
	specs := map[int]tab.Spec{
		rectEdgeTop: cfg.ridgeSpec(polarity),
	}
	return newPanel(cfg, role, corners, specs, nil)
}

// slideNotchFacets is the segment count of the finger notch semicircle.
const slideNotchFacets = 16

// SlidePlate returns the removable floor. It has no connectors (it
// slides between the walls for cleaning) and a semicircular finger notch
// sampled into its front edge.
func SlidePlate(cfg Config) (Panel, error) {
	if err := cfg.validate(); err != nil {
		return Panel{}, err
	}
	w := cfg.Width - 2*cfg.WallThickness
	d := cfg.Depth
	if cfg.NotchRadius*2 >= w {
		return Panel{}, fmt.Errorf("%s: %w: notch diameter %g exceeds plate width %g", RoleSlide, ErrDegenerate, 2*cfg.NotchRadius, w)
	}
	corners := d2.Set{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: d},
		{X: 0, Y: d},
	}
	loop := d2.Set{{X: 0, Y: 0}}
	if cfg.NotchRadius > 0 {
		// Sample the semicircle with a rotation matrix, sweeping the
		// radius vector clockwise from 180 to 0 degrees so the notch
		// recedes into the plate.
		rot := d2.Rotate(-math.Pi / slideNotchFacets)
		rv := r2.Vec{X: -cfg.NotchRadius}
		cx := w / 2
		for i := 0; i <= slideNotchFacets; i++ {
			loop = appendDedup(loop, r2.Vec{X: cx + rv.X, Y: rv.Y})
			rv = rot.ApplyPos(rv)
		}
	}
	loop = appendDedup(loop, corners[1], corners[2], corners[3])
	if err := verifyLoop(RoleSlide, loop); err != nil {
		return Panel{}, err
	}
	return Panel{
		Role:      RoleSlide,
		Loop:      loop,
		Corners:   corners,
		Thickness: cfg.WallThickness,
	}, nil
}

// Panels builds every panel of the birdhouse. Panels that fail to build
// are skipped and their errors collected; the returned slice holds every
// panel that did build.
func Panels(cfg Config) ([]Panel, error) {
	var errs errlist
	var panels []Panel
	add := func(p Panel, err error) {
		if err != nil {
			errs = append(errs, err)
			return
		}
		panels = append(panels, p)
	}
	add(FrontPlate(cfg))
	add(BackPlate(cfg))
	add(SidePlate(cfg, RoleSideLeft))
	add(SidePlate(cfg, RoleSideRight))
	add(RoofPlate(cfg, RoleRoofLeft))
	add(RoofPlate(cfg, RoleRoofRight))
	add(SlidePlate(cfg))
	return panels, errs.orNil()
}
