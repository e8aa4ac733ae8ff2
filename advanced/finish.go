package advanced

import (
	"fmt"
	"math"

	"github.com/peterstace/simplefeatures/rtree"
)

// Finish turns the raw edges of a drained sweep into a Skeleton: it adds the
// input edges, merges vertices that different branches of the sweep created at
// the same spot, drops bookkeeping and duplicate edges, and links the wings of
// every roof face.
func (s *Sweep) Finish() (sk *Skeleton, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			sk = nil
			err = recoveredErr
		}
	}()

	raw := make([]SkeletonEdge, 0, s.inputCount+len(s.edges))
	contours := make([][]VertexID, 0, len(s.contours))
	base := 0
	for _, contour := range s.contours {
		n := len(contour)
		ids := make([]VertexID, n)
		for i := range contour {
			ids[i] = VertexID(base + i)
			raw = append(raw, newSkeletonEdge(VertexID(base+i), VertexID(base+CircularIndex(i+1, n)), true, false))
		}
		contours = append(contours, ids)
		base += n
	}
	raw = append(raw, s.edges...)

	rep := s.mergeCoincident()
	edges := s.remapEdges(raw, rep)

	// Compact the vertex list. Input vertices are their own representatives
	// and come first, so they keep their IDs.
	index := make([]VertexID, len(s.vertices))
	used := make([]bool, len(s.vertices))
	for _, e := range edges {
		used[e.Lower] = true
		used[e.Higher] = true
	}
	var vertices []Point3
	for i := range s.vertices {
		index[i] = NoVertex
		if used[i] || i < s.inputCount {
			index[i] = VertexID(len(vertices))
			vertices = append(vertices, s.vertices[i].Position)
		}
	}
	for i := range edges {
		edges[i].Lower = index[edges[i].Lower]
		edges[i].Higher = index[edges[i].Higher]
	}

	boundary := 0
	for boundary < len(edges) && edges[boundary].Boundary {
		boundary++
	}
	if boundary != s.inputCount {
		fatalf("finish", "%d of %d input edges survived merging", boundary, s.inputCount)
	}

	sk = &Skeleton{
		Vertices:      vertices,
		Edges:         edges,
		BoundaryCount: boundary,
		Contours:      contours,
		Stats:         s.stats,
	}
	if err := sk.linkWings(); err != nil {
		return nil, err
	}
	s.log.Debug("finished skeleton",
		"vertices", len(sk.Vertices),
		"edges", len(sk.Edges),
		"merged", len(s.vertices)-len(sk.Vertices))
	return sk, nil
}

// mergeCoincident maps every vertex to the smallest vertex ID at the same
// position.
func (s *Sweep) mergeCoincident() []VertexID {
	parent := make([]VertexID, len(s.vertices))
	for i := range parent {
		parent[i] = VertexID(i)
	}
	find := func(v VertexID) VertexID {
		for parent[v] != v {
			parent[v] = parent[parent[v]]
			v = parent[v]
		}
		return v
	}

	var tree rtree.RTree
	for i := range s.vertices {
		p := s.vertices[i].Position.XY()
		box := rtree.Box{
			MinX: p.X - Epsilon,
			MinY: p.Y - Epsilon,
			MaxX: p.X + Epsilon,
			MaxY: p.Y + Epsilon,
		}
		// Errors only come back from the callback, which never fails.
		_ = tree.RangeSearch(box, func(j int) error {
			if !s.vertices[j].Position.XY().Equal(p) {
				return nil
			}
			a, b := find(VertexID(i)), find(VertexID(j))
			if a > b {
				a, b = b, a
			}
			parent[b] = a
			return nil
		})
		tree.Insert(box, i)
	}

	rep := make([]VertexID, len(s.vertices))
	for i := range rep {
		rep[i] = find(VertexID(i))
	}
	return rep
}

type vertexPair struct {
	a, b VertexID
}

// remapEdges points every edge at merged vertices and drops what the merge
// made redundant: auxiliary edges, edges that shrank to a point, and repeats
// of a pair already seen. Boundary edges come first, so they win over any
// interior edge joining the same two vertices.
func (s *Sweep) remapEdges(raw []SkeletonEdge, rep []VertexID) []SkeletonEdge {
	seen := make(map[vertexPair]bool, len(raw))
	edges := make([]SkeletonEdge, 0, len(raw))
	for _, e := range raw {
		if e.Auxiliary {
			continue
		}
		lower, higher := rep[e.Lower], rep[e.Higher]
		if lower == higher {
			continue
		}
		key := vertexPair{lower, higher}
		if key.a > key.b {
			key.a, key.b = key.b, key.a
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		if !e.Boundary && s.vertices[lower].Height().Gt(s.vertices[higher].Height()) {
			lower, higher = higher, lower
		}
		edges = append(edges, newSkeletonEdge(lower, higher, e.Boundary, false))
	}
	return edges
}

func (sk *Skeleton) linkWings() error {
	incident := make([][]EdgeID, len(sk.Vertices))
	for i, e := range sk.Edges {
		incident[e.Lower] = append(incident[e.Lower], EdgeID(i))
		incident[e.Higher] = append(incident[e.Higher], EdgeID(i))
	}
	for i := 0; i < sk.BoundaryCount; i++ {
		if err := sk.walkFace(EdgeID(i), incident); err != nil {
			return err
		}
	}
	return nil
}

// walkFace follows the face on the left of a boundary edge, always taking the
// sharpest left turn, and links the wings of each consecutive pair of edges.
func (sk *Skeleton) walkFace(start EdgeID, incident [][]EdgeID) error {
	cur := start
	from, at := sk.Edges[start].Lower, sk.Edges[start].Higher
	for steps := 0; steps <= len(sk.Edges); steps++ {
		next := sk.turn(cur, from, at, incident[at])
		curLeft := sk.Edges[cur].Lower == from
		nextLeft := sk.Edges[next].Lower == at
		if err := sk.setWing(cur, at, curLeft, next); err != nil {
			return err
		}
		if err := sk.setWing(next, at, nextLeft, cur); err != nil {
			return err
		}
		if next == start {
			return nil
		}
		from, at, cur = at, sk.Edges[next].Other(at), next
	}
	return &ValidationError{Edge: start, Vertex: sk.Edges[start].Lower, Msg: "face does not close"}
}

// turn picks, among the edges at `at`, the one making the smallest clockwise
// turn from the direction back toward `from`. Going back along cur is the
// last resort.
func (sk *Skeleton) turn(cur EdgeID, from, at VertexID, candidates []EdgeID) EdgeID {
	origin := sk.Vertices[at].XY()
	back := float64(sk.Vertices[from].XY().Sub(origin).Angle())

	best := cur
	bestTurn := math.Inf(1)
	for _, e := range candidates {
		if e == cur {
			continue
		}
		to := sk.Vertices[sk.Edges[e].Other(at)].XY()
		turn := math.Mod(back-float64(to.Sub(origin).Angle()), 2*math.Pi)
		if turn < 0 {
			turn += 2 * math.Pi
		}
		if Number(turn).IsZero() {
			turn = 2 * math.Pi
		}
		if turn < bestTurn {
			best, bestTurn = e, turn
		}
	}
	return best
}

func (sk *Skeleton) setWing(e EdgeID, at VertexID, left bool, neighbour EdgeID) error {
	slot := sk.Edges[e].wing(at).slot(left)
	if *slot != NoEdge && *slot != neighbour {
		return &ValidationError{
			Edge:   e,
			Vertex: at,
			Msg:    fmt.Sprintf("wing slot holds edge %d, face walk wants edge %d", *slot, neighbour),
		}
	}
	*slot = neighbour
	return nil
}
