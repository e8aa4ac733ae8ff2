package advanced

import (
	"math"
	"sort"
)

// arrival is one piece of wavefront that reaches an event point: a run of
// consecutive vertices that all get there at the event height, or a wavefront
// edge the point lies on. Seen from the point, the outside of an arrival spans
// the counterclockwise turn from the back of its arriving line to its leaving
// line.
type arrival struct {
	members    []VertexID
	in, out    LineID
	prev, next VertexID
}

func (a *arrival) isEdge() bool {
	return len(a.members) == 0
}

// first and last name the vertices the arriving and leaving lines belong to.
func (a *arrival) first() VertexID {
	if a.isEdge() {
		return a.prev
	}
	return a.members[0]
}

func (a *arrival) last() VertexID {
	if a.isEdge() {
		return a.prev
	}
	return a.members[len(a.members)-1]
}

func fullTurn(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

func (s *Sweep) backAngle(a arrival) float64 {
	return fullTurn(float64(s.line(a.in).Angle) + math.Pi)
}

// outsideSpan is the angle the outside of a covers around the point.
func (s *Sweep) outsideSpan(a arrival) float64 {
	if a.isEdge() {
		return math.Pi
	}
	span := fullTurn(float64(s.line(a.out).Angle) - s.backAngle(a))
	if Number(span).IsZero() || Number(span).Eq(2*math.Pi) {
		// A run whose lines fold back onto each other encloses nothing.
		return 2 * math.Pi
	}
	return span
}

// reaches reports whether the live vertex v passes through at when the
// wavefront stands at height h. A horizontal ridge vertex counts only where it
// already is.
func (s *Sweep) reaches(v *Vertex, at Point, h Number) bool {
	if v.Axis.Slope.IsZero() {
		return v.Height().Eq(h) && v.Position.XY().Equal(at)
	}
	if h.Lt(v.Height()) {
		return false
	}
	t := float64(h-v.Height()) / v.Axis.Rise()
	return v.Axis.At(math.Max(t, 0)).XY().Equal(at)
}

// gather collects everything meeting at `at` at height h: the named vertices,
// every other live vertex that gets there at the same moment, and, when any
// vertex run is open, the wavefront edges the point lies on. Runs that make up
// a whole loop come back separately; such a loop simply vanishes at the point.
// The open arrivals are sorted counterclockwise around the point.
func (s *Sweep) gather(at Point, h Number, named, edges []VertexID) ([]arrival, [][]VertexID) {
	meets := make(map[VertexID]bool)
	for _, id := range named {
		meets[id] = true
	}
	for i := range s.vertices {
		v := &s.vertices[i]
		if !v.Done && !meets[v.ID] && s.reaches(v, at, h) {
			meets[v.ID] = true
		}
	}
	ids := make([]VertexID, 0, len(meets))
	for id := range meets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var arrivals []arrival
	seen := make(map[VertexID]bool, len(ids))
	for _, id := range ids {
		v := s.vertex(id)
		if meets[v.Prev] {
			continue
		}
		a := arrival{in: v.Left, prev: v.Prev}
		for cur := id; meets[cur]; cur = s.vertex(cur).Next {
			a.members = append(a.members, cur)
			seen[cur] = true
		}
		last := s.vertex(a.last())
		a.out, a.next = last.Right, last.Next
		arrivals = append(arrivals, a)
	}

	var loops [][]VertexID
	for _, id := range ids {
		if seen[id] {
			continue
		}
		var loop []VertexID
		for cur := id; !seen[cur]; cur = s.vertex(cur).Next {
			seen[cur] = true
			loop = append(loop, cur)
		}
		loops = append(loops, loop)
	}
	if len(arrivals) == 0 {
		return nil, loops
	}

	runs := len(arrivals)
	hit := make(map[VertexID]bool)
	addEdge := func(x *Vertex) {
		if x.Done || meets[x.ID] || meets[x.Next] || hit[x.ID] {
			return
		}
		hit[x.ID] = true
		arrivals = append(arrivals, arrival{in: x.Right, out: x.Right, prev: x.ID, next: x.Next})
	}
	for _, id := range edges {
		addEdge(s.vertex(id))
	}
	for i := range s.vertices {
		x := &s.vertices[i]
		if x.Done || meets[x.ID] || hit[x.ID] || meets[x.Next] {
			continue
		}
		if s.line(x.Right).Height(at).Eq(h) && s.withinEdge(x, s.vertex(x.Next), at) {
			addEdge(x)
		}
	}

	// The outsides of a real meeting never overlap. An edge that only grazes
	// the point would make them, so it is left alone.
	if len(arrivals) > runs {
		var total float64
		for _, a := range arrivals {
			total += s.outsideSpan(a)
		}
		if Number(total).Gt(2 * math.Pi) {
			arrivals = arrivals[:runs]
		}
	}

	sort.SliceStable(arrivals, func(i, j int) bool {
		return s.backAngle(arrivals[i]) < s.backAngle(arrivals[j])
	})
	return arrivals, loops
}

// planMeeting resolves everything that reaches the event point at the event
// height in a single patch. Arriving vertices are consumed, and every gap
// between two neighbouring arrivals around the point becomes one new vertex,
// which takes its leaving line from the arrival before the gap and its arriving
// line from the one after. A new vertex left in a two-vertex loop closes that
// loop with a single edge.
func (s *Sweep) planMeeting(event Event, named, edges []VertexID) patch {
	at, h := event.Location().XY(), event.Height()
	arrivals, loops := s.gather(at, h, named, edges)
	point := at.WithZ(float64(h))

	kind := patchCollapse
	for i := range arrivals {
		if arrivals[i].isEdge() {
			kind = patchSplit
		}
	}
	b := s.newPatch(kind, event)

	k := len(arrivals)
	born := make([]VertexID, k)
	for i := range arrivals {
		born[i] = b.vertex(point, arrivals[(i+1)%k].in, arrivals[i].out)
	}
	apexes := make([]VertexID, len(loops))
	for i, loop := range loops {
		apexes[i] = b.vertex(point, s.vertex(loop[0]).Left, s.vertex(loop[len(loop)-1]).Right)
	}

	live := 0
	for i := range arrivals {
		before, after := &arrivals[i], &arrivals[(i+1)%k]
		id := born[i]
		n := b.born(id)
		n.Contour = s.vertex(after.prev).Contour
		n.LeftVertex, n.RightVertex = after.first(), before.last()
		for m, member := range before.members {
			e := b.edge(member, id, false)
			b.consume(member, id, e)
			if m == 0 {
				n.LeftSkeleton = e
			}
			n.RightSkeleton = e
		}

		b.link(after.prev, id)
		b.link(id, before.next)
		if after.prev == before.next {
			w := before.next
			closing := b.edge(w, id, false)
			b.consume(w, id, closing)
			b.consume(id, NoVertex, closing)
			continue
		}
		live++
		b.retest(id, after.prev, before.next)
	}
	for i := 1; i < k; i++ {
		b.edge(born[i-1], born[i], true)
		b.edge(born[i], born[i-1], true)
	}

	for i, loop := range loops {
		apex := b.born(apexes[i])
		apex.Done = true
		apex.Contour = s.vertex(loop[0]).Contour
		apex.LeftVertex, apex.RightVertex = loop[0], loop[len(loop)-1]
		for m, member := range loop {
			e := b.edge(member, apexes[i], false)
			b.consume(member, apexes[i], e)
			if m == 0 {
				apex.LeftSkeleton = e
			}
			apex.RightSkeleton = e
		}
	}

	if live == 0 {
		b.p.kind = patchClosing
	}
	return b.build()
}
