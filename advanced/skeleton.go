package advanced

import (
	"fmt"

	"github.com/peterstace/simplefeatures/rtree"
)

// Wing holds the neighbours of a skeleton edge at one of its endpoints: Left is
// the next edge around the face on the edge's left (looking from Lower to
// Higher), Right the next edge around the face on its right.
type Wing struct {
	Left, Right EdgeID
}

func (w *Wing) slot(left bool) *EdgeID {
	if left {
		return &w.Left
	}
	return &w.Right
}

// SkeletonEdge is a segment of the finished skeleton, running from the lower
// vertex to the higher one.
type SkeletonEdge struct {
	Lower, Higher VertexID
	// Wing links at the Lower and Higher endpoint.
	LowerWing, HigherWing Wing
	// Boundary edges are the input edges. Their roof face is on the left.
	Boundary bool
	// Auxiliary edges are zero-length bookkeeping links between the two
	// vertices born from a split. The finisher removes them.
	Auxiliary bool
}

func newSkeletonEdge(lower, higher VertexID, boundary, auxiliary bool) SkeletonEdge {
	return SkeletonEdge{
		Lower:      lower,
		Higher:     higher,
		LowerWing:  Wing{NoEdge, NoEdge},
		HigherWing: Wing{NoEdge, NoEdge},
		Boundary:   boundary,
		Auxiliary:  auxiliary,
	}
}

// Other returns the endpoint that is not v.
func (e *SkeletonEdge) Other(v VertexID) VertexID {
	if e.Lower == v {
		return e.Higher
	}
	return e.Lower
}

func (e *SkeletonEdge) wing(at VertexID) *Wing {
	if at == e.Lower {
		return &e.LowerWing
	}
	return &e.HigherWing
}

// Skeleton is the finished straight skeleton. Vertex i for i < BoundaryCount is
// input point i (contours concatenated in order), and edge i for
// i < BoundaryCount is the input edge leaving that point.
type Skeleton struct {
	Vertices      []Point3
	Edges         []SkeletonEdge
	BoundaryCount int
	// Contours lists the input vertex IDs of each contour after orientation
	// was normalised.
	Contours [][]VertexID
	Stats    Stats
}

// Segment returns the two endpoints of edge id, lower first.
func (sk *Skeleton) Segment(id EdgeID) (Point3, Point3) {
	e := sk.Edges[id]
	return sk.Vertices[e.Lower], sk.Vertices[e.Higher]
}

// InteriorEdges returns the ridge, hip and valley edges, that is every edge
// that is not an input edge.
func (sk *Skeleton) InteriorEdges() []SkeletonEdge {
	return sk.Edges[sk.BoundaryCount:]
}

// Faces returns one closed vertex loop per input edge: the roof panel that
// edge carries, starting with the edge's own two vertices and running
// counterclockwise.
func (sk *Skeleton) Faces() ([][]VertexID, error) {
	faces := make([][]VertexID, 0, sk.BoundaryCount)
	for i := 0; i < sk.BoundaryCount; i++ {
		face, err := sk.face(EdgeID(i))
		if err != nil {
			return nil, err
		}
		faces = append(faces, face)
	}
	return faces, nil
}

func (sk *Skeleton) face(start EdgeID) ([]VertexID, error) {
	e := &sk.Edges[start]
	loop := []VertexID{e.Lower, e.Higher}
	cur, at, left := start, e.Higher, true
	for steps := 0; steps <= len(sk.Edges); steps++ {
		next := *sk.Edges[cur].wing(at).slot(left)
		if next == NoEdge {
			return nil, &ValidationError{Edge: cur, Vertex: at, Msg: "empty wing slot"}
		}
		if next == start {
			return loop, nil
		}
		nextEdge := &sk.Edges[next]
		left = nextEdge.Lower == at
		at = nextEdge.Other(at)
		cur = next
		if at != loop[0] {
			loop = append(loop, at)
		}
	}
	return nil, &ValidationError{Edge: start, Vertex: e.Lower, Msg: "face does not close"}
}

// Validate re-checks the structural invariants of a finished skeleton: heights
// never decrease from Lower to Higher, every wing slot that faces a roof panel
// is filled, and no two edges cross.
func (sk *Skeleton) Validate() error {
	for i := range sk.Edges {
		e := &sk.Edges[i]
		id := EdgeID(i)
		if e.Lower < 0 || int(e.Lower) >= len(sk.Vertices) || e.Higher < 0 || int(e.Higher) >= len(sk.Vertices) {
			return &ValidationError{Edge: id, Vertex: e.Lower, Msg: "endpoint out of range"}
		}
		if sk.Vertices[e.Lower].Height().Gt(sk.Vertices[e.Higher].Height()) {
			return &ValidationError{Edge: id, Vertex: e.Higher, Msg: "height decreases toward Higher"}
		}
		if e.Boundary != (i < sk.BoundaryCount) {
			return &ValidationError{Edge: id, Vertex: e.Lower, Msg: "boundary edges out of place"}
		}
		if e.LowerWing.Left == NoEdge || e.HigherWing.Left == NoEdge {
			return &ValidationError{Edge: id, Vertex: e.Lower, Msg: "left wing slot empty"}
		}
		if !e.Boundary && (e.LowerWing.Right == NoEdge || e.HigherWing.Right == NoEdge) {
			return &ValidationError{Edge: id, Vertex: e.Lower, Msg: "right wing slot empty"}
		}
	}
	return sk.checkCrossings()
}

func (sk *Skeleton) edgeBox(id EdgeID) rtree.Box {
	a, b := sk.Segment(id)
	box := rtree.Box{MinX: a.X, MinY: a.Y, MaxX: b.X, MaxY: b.Y}
	if box.MinX > box.MaxX {
		box.MinX, box.MaxX = box.MaxX, box.MinX
	}
	if box.MinY > box.MaxY {
		box.MinY, box.MaxY = box.MaxY, box.MinY
	}
	return box
}

func (sk *Skeleton) checkCrossings() error {
	var tree rtree.RTree
	for i := range sk.Edges {
		tree.Insert(sk.edgeBox(EdgeID(i)), i)
	}
	for i := range sk.Edges {
		var crossing error
		err := tree.RangeSearch(sk.edgeBox(EdgeID(i)), func(j int) error {
			if j <= i || !sk.crosses(EdgeID(i), EdgeID(j)) {
				return nil
			}
			crossing = &ValidationError{
				Edge:   EdgeID(i),
				Vertex: sk.Edges[i].Lower,
				Msg:    fmt.Sprintf("crosses edge %d", j),
			}
			return rtree.Stop
		})
		if err != nil {
			return err
		}
		if crossing != nil {
			return crossing
		}
	}
	return nil
}

// crosses reports a proper crossing: each segment has the other's endpoints
// strictly on opposite sides. Edges that share an endpoint never cross.
func (sk *Skeleton) crosses(i, j EdgeID) bool {
	ei, ej := sk.Edges[i], sk.Edges[j]
	if ei.Lower == ej.Lower || ei.Lower == ej.Higher || ei.Higher == ej.Lower || ei.Higher == ej.Higher {
		return false
	}
	a, b := sk.Segment(i)
	c, d := sk.Segment(j)
	return straddles(a.XY(), b.XY(), c.XY(), d.XY()) && straddles(c.XY(), d.XY(), a.XY(), b.XY())
}

func straddles(a, b, c, d Point) bool {
	line := NewBoundaryLine(a, b, 0)
	sc, sd := line.Side(c), line.Side(d)
	return (sc.Gt(0) && sd.Lt(0)) || (sc.Lt(0) && sd.Gt(0))
}
