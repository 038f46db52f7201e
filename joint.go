package birdhouse

import (
	"fmt"
	"math"
)

// Joint declares that edge AEdge of panel A and edge BEdge of panel B
// meet along the same physical edge of the assembled birdhouse. For the
// parts to mesh, one side must carry tabs and the other slots with
// identical geometry.
type Joint struct {
	A     Role
	AEdge int
	B     Role
	BEdge int
}

func (j Joint) String() string {
	return fmt.Sprintf("%s[%d]/%s[%d]", j.A, j.AEdge, j.B, j.BEdge)
}

// Joints returns the assembly table of the birdhouse: the four wall
// joints between the gable plates and the side plates, and the finger
// joint along the roof ridge. The slide-out floor is held by friction
// and carries no joint.
func Joints() []Joint {
	return []Joint{
		{RoleFront, gableEdgeLeft, RoleSideLeft, rectEdgeRight},
		{RoleFront, gableEdgeRight, RoleSideRight, rectEdgeRight},
		{RoleBack, gableEdgeRight, RoleSideLeft, rectEdgeLeft},
		{RoleBack, gableEdgeLeft, RoleSideRight, rectEdgeLeft},
		{RoleRoofLeft, rectEdgeTop, RoleRoofRight, rectEdgeTop},
	}
}

// VerifyJoints checks the meshing invariant on every joint: both edges
// exist, are of equal length, and carry complementary specs (inverted
// polarity, identical count, pitch, width, depth and inset). Joints
// referencing panels absent from the slice are skipped, since a panel
// that failed to build already reported its own error.
func VerifyJoints(panels []Panel, joints []Joint) error {
	byRole := make(map[Role]Panel, len(panels))
	for _, p := range panels {
		byRole[p.Role] = p
	}
	var errs errlist
	for _, j := range joints {
		a, okA := byRole[j.A]
		b, okB := byRole[j.B]
		if !okA || !okB {
			continue
		}
		specA, okA := a.Edges[j.AEdge]
		specB, okB := b.Edges[j.BEdge]
		if !okA || !okB {
			errs = append(errs, fmt.Errorf("joint %s: connector spec missing on one side", j))
			continue
		}
		if specA != specB.Complement() {
			errs = append(errs, fmt.Errorf("joint %s: %s spec %+v does not complement %s spec %+v",
				j, j.A, specA, j.B, specB))
			continue
		}
		la, lb := a.EdgeLength(j.AEdge), b.EdgeLength(j.BEdge)
		if math.Abs(la-lb) > cornerTol {
			errs = append(errs, fmt.Errorf("joint %s: edge lengths %g and %g differ", j, la, lb))
		}
	}
	return errs.orNil()
}
