package advanced

import (
	"fmt"
	"math"
)

// VertexID addresses a vertex in the sweep's arena. IDs are never reused, and
// a vertex stays addressable after it is consumed.
type VertexID int

// NoVertex is the empty vertex reference.
const NoVertex VertexID = -1

// LineID addresses a boundary line. Line i is the input edge that leaves input
// vertex i, so it also names the roof face that edge carries.
type LineID int

// EdgeID addresses a skeleton edge.
type EdgeID int

// NoEdge is the empty edge reference, used by unfilled wing slots.
const NoEdge EdgeID = -1

// Vertex is a corner of the wavefront.
//
// Prev/Next walk the wavefront loop the vertex currently belongs to. Left and
// Right are the boundary lines meeting at the corner: Left is the line of the
// wavefront edge arriving from Prev, Right the line of the edge leaving toward
// Next. LeftVertex and RightVertex name the vertices those two lines were
// inherited from; after a split they are no longer Prev and Next.
type Vertex struct {
	ID       VertexID
	Position Point3
	Axis     RidgeLine
	Reflex   bool
	Contour  int

	Left, Right LineID

	Prev, Next              VertexID
	LeftVertex, RightVertex VertexID

	// Done is set exactly once, when an event consumes the vertex. Higher is
	// the vertex that replaced it.
	Done   bool
	Higher VertexID

	// Skeleton edges already emitted around this vertex. LeftSkeleton and
	// RightSkeleton arrive from the vertices this one replaced,
	// AdvancingSkeleton leaves toward Higher.
	LeftSkeleton      EdgeID
	RightSkeleton     EdgeID
	AdvancingSkeleton EdgeID
}

func newVertex(id VertexID, at Point3, left, right LineID) Vertex {
	return Vertex{
		ID:                id,
		Position:          at,
		Left:              left,
		Right:             right,
		Prev:              NoVertex,
		Next:              NoVertex,
		LeftVertex:        NoVertex,
		RightVertex:       NoVertex,
		Higher:            NoVertex,
		LeftSkeleton:      NoEdge,
		RightSkeleton:     NoEdge,
		AdvancingSkeleton: NoEdge,
	}
}

func (v *Vertex) Height() Number {
	return v.Position.Height()
}

func (v *Vertex) String() string {
	state := "live"
	if v.Done {
		state = fmt.Sprintf("done→%d", v.Higher)
	}
	return fmt.Sprintf("v%d%v %d←→%d lines %d/%d %s", v.ID, v.Position, v.Prev, v.Next, v.Left, v.Right, state)
}

// AxisBetween derives the axis of a wavefront corner at `at` whose arriving
// edge lies on left and whose leaving edge lies on right.
//
// Each boundary line recedes along its normal by 1/tan(slope) per unit of
// height. The corner has to stay on both receding lines, so its velocity V
// solves n_left·V = w_left and n_right·V = w_right. Unequal slopes tilt V
// toward the steeper side, which is what makes a weighted bisector differ from
// the plain angular one. A reflex corner gets the same treatment: V then
// points away from where the two lines cross, which is the bisector rotated by
// π.
//
// Parallel lines have no solution. Lines running the same way (a straight
// corner) move the vertex straight along their shared normal. Lines running
// against each other leave a horizontal ridge heading along the right line.
func AxisBetween(left, right RidgeLine, at Point3) (axis RidgeLine, reflex bool) {
	dl, dr := left.Direction(), right.Direction()
	reflex = Number(dl.Cross(dr)).Lt(0)

	nl, nr := left.Normal(), right.Normal()
	wl, wr := 1/left.Rise(), 1/right.Rise()

	var velocity Point
	if left.IntersectionAnywhere(right).IsInfinite() {
		if dl.Dot(dr) < 0 {
			return RidgeLine{Origin: at, Angle: NormalizeAngle(right.Angle), IsRidge: true}, false
		}
		velocity = nl.Scale((wl + wr) / 2)
	} else {
		det := nl.Cross(nr)
		velocity = Point{
			X: (wl*nr.Y - wr*nl.Y) / det,
			Y: (nl.X*wr - nr.X*wl) / det,
		}
	}

	return RidgeLine{
		Origin:  at,
		Angle:   NormalizeAngle(velocity.Angle()),
		Slope:   Number(math.Atan2(1, velocity.Len())),
		IsRidge: true,
	}, reflex
}
