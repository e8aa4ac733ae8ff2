package advanced

import "math"

// classify finds the nearest event along the axis of the live vertex id, or
// nil if its axis never meets anything.
func (s *Sweep) classify(id VertexID) Event {
	v := s.vertex(id)
	if v.Done {
		return nil
	}
	origin := v.Position.XY()

	var best Event
	bestDist := math.Inf(1)

	if left := s.collapseWith(v, s.vertex(v.Prev), true); left != nil {
		best = left
		bestDist = left.Location().XY().Dist(origin)
	}
	if right := s.collapseWith(v, s.vertex(v.Next), false); right != nil {
		dist := right.Location().XY().Dist(origin)
		if best == nil || Number(dist).Lt(Number(bestDist)) {
			best = right
			bestDist = dist
		}
	}

	if v.Reflex {
		if split := s.nearestSplit(v); split != nil {
			dist := split.Point.XY().Dist(origin)
			if best == nil || Number(dist).Lt(Number(bestDist)) {
				best = split
			}
		}
	}
	return best
}

// collapseWith tests whether v and its neighbour n meet. isLeft says n is v's
// Prev; otherwise it is v's Next.
func (s *Sweep) collapseWith(v, n *Vertex, isLeft bool) *EdgeCollapse {
	if n.ID == v.ID || n.Done {
		return nil
	}
	p := v.Axis.Intersection(n.Axis)
	if p.IsInfinite() {
		return nil
	}

	// Rays that meet ahead of both origins already turn the right way. Near an
	// origin the directions say nothing, so the check only runs away from them.
	at := p.XY()
	if !at.Equal(v.Position.XY()) && !at.Equal(n.Position.XY()) {
		turn := NormalizeAngle(n.Axis.Angle - v.Axis.Angle)
		headOn := turn.Abs().Eq(math.Pi)
		if !headOn && ((isLeft && turn.Gt(0)) || (!isLeft && turn.Lt(0))) {
			return nil
		}
	}

	shared := v.Right
	if isLeft {
		shared = v.Left
	}
	h := s.line(shared).Height(at)
	if h.Lt(maxNumber(v.Height(), n.Height())) {
		return nil
	}
	// Whatever meets at v's own spot and height was resolved when v was born.
	if at.Equal(v.Position.XY()) && h.Eq(v.Height()) {
		return nil
	}

	event := &EdgeCollapse{Point: at.WithZ(float64(h))}
	if isLeft {
		event.Left, event.Right = n.ID, v.ID
	} else {
		event.Left, event.Right = v.ID, n.ID
	}
	return event
}

// nearestSplit looks for the closest wavefront edge, in any loop, that the
// axis of the reflex vertex v reaches inside the edge's current extent.
func (s *Sweep) nearestSplit(v *Vertex) *Split {
	origin := v.Position.XY()
	var best *Split
	bestDist := math.Inf(1)

	for i := range s.vertices {
		x := &s.vertices[i]
		if x.Done || x.ID == v.ID || x.Next == v.ID {
			continue
		}
		y := s.vertex(x.Next)
		if x.Right == v.Left || x.Right == v.Right {
			continue
		}
		if x.ID == v.Next && y.ID == v.Prev {
			continue
		}

		edge := s.line(x.Right)
		hit := v.Axis.Reach(edge)
		if hit.IsInfinite() {
			continue
		}
		at := hit.XY()
		h := edge.Height(at)
		if h.Lt(v.Height()) {
			continue
		}
		if at.Equal(origin) && h.Eq(v.Height()) {
			continue
		}
		if !s.withinEdge(x, y, at) {
			continue
		}

		dist := at.Dist(origin)
		if best != nil && !Number(dist).Lt(Number(bestDist)) {
			continue
		}
		candidate := &Split{
			Point:     at.WithZ(float64(h)),
			Vertex:    v.ID,
			EdgeLeft:  x.ID,
			EdgeRight: y.ID,
		}
		if s.invalidIntersection(v, candidate) {
			continue
		}
		best, bestDist = candidate, dist
	}
	return best
}

// withinEdge reports whether at lies in the strip swept by the wavefront edge
// x→y, between the axes of its two endpoints.
func (s *Sweep) withinEdge(x, y *Vertex, at Point) bool {
	fromX := Number(x.Axis.Direction().Cross(at.Sub(x.Position.XY())))
	fromY := Number(y.Axis.Direction().Cross(at.Sub(y.Position.XY())))
	return fromX.Le(0) && fromY.Ge(0)
}

// invalidIntersection rejects a split candidate when some other live vertex
// reaches the same point lower down. That vertex's own event will change the
// wavefront there first.
func (s *Sweep) invalidIntersection(v *Vertex, split *Split) bool {
	at := split.Point.XY()
	h := split.Height()
	for i := range s.vertices {
		o := &s.vertices[i]
		if o.Done || o.ID == v.ID {
			continue
		}
		meet := o.Axis.Intersection(v.Axis)
		if meet.IsInfinite() || !meet.XY().Equal(at) {
			continue
		}
		if s.line(o.Left).Height(meet.XY()).Lt(h) {
			return true
		}
	}
	return false
}

func maxNumber(a, b Number) Number {
	if a > b {
		return a
	}
	return b
}
