package advanced

import "fmt"

type patchKind int

const (
	patchStale patchKind = iota
	patchCollapse
	patchClosing
	patchSplit
)

func (k patchKind) String() string {
	switch k {
	case patchCollapse:
		return "collapse"
	case patchClosing:
		return "closing"
	case patchSplit:
		return "split"
	default:
		return "stale"
	}
}

// link makes To follow From around a wavefront loop.
type link struct {
	From, To VertexID
}

type consumption struct {
	Vertex    VertexID
	Higher    VertexID
	Advancing EdgeID
}

// patch is the complete set of changes one event makes to the sweep. Planning
// only reads the arena. Every ID a patch creates is assigned up front, so apply
// can check it lands where the plan expected.
type patch struct {
	kind       patchKind
	event      Event
	vertexBase int
	edgeBase   int
	born       []Vertex
	edges      []SkeletonEdge
	links      []link
	consumed   []consumption
	retest     []VertexID
}

type patchBuilder struct {
	s *Sweep
	p patch
}

func (s *Sweep) newPatch(kind patchKind, event Event) *patchBuilder {
	return &patchBuilder{s: s, p: patch{
		kind:       kind,
		event:      event,
		vertexBase: len(s.vertices),
		edgeBase:   len(s.edges),
	}}
}

func (b *patchBuilder) vertex(at Point3, left, right LineID) VertexID {
	id := VertexID(b.p.vertexBase + len(b.p.born))
	b.p.born = append(b.p.born, newVertex(id, at, left, right))
	return id
}

// born returns a planned vertex. The pointer is only good until the next
// vertex() call.
func (b *patchBuilder) born(id VertexID) *Vertex {
	return &b.p.born[int(id)-b.p.vertexBase]
}

// edge plans a skeleton edge from lower to higher and returns its future ID.
func (b *patchBuilder) edge(lower, higher VertexID, auxiliary bool) EdgeID {
	id := EdgeID(b.p.edgeBase + len(b.p.edges))
	b.p.edges = append(b.p.edges, newSkeletonEdge(lower, higher, false, auxiliary))
	return id
}

func (b *patchBuilder) link(from, to VertexID) {
	b.p.links = append(b.p.links, link{From: from, To: to})
}

func (b *patchBuilder) consume(v, higher VertexID, advancing EdgeID) {
	b.p.consumed = append(b.p.consumed, consumption{Vertex: v, Higher: higher, Advancing: advancing})
}

func (b *patchBuilder) retest(ids ...VertexID) {
	b.p.retest = append(b.p.retest, ids...)
}

func (b *patchBuilder) build() patch {
	for i := range b.p.born {
		n := &b.p.born[i]
		n.Axis, n.Reflex = AxisBetween(b.s.line(n.Left), b.s.line(n.Right), n.Position)
	}
	return b.p
}

// apply commits a patch to the arena and queues fresh events for the vertices
// it names.
func (s *Sweep) apply(p patch) {
	op := "apply " + p.kind.String()
	if p.vertexBase != len(s.vertices) || p.edgeBase != len(s.edges) {
		fatalf(op, "arena moved between planning and applying %v", p.event)
	}
	s.vertices = append(s.vertices, p.born...)
	for _, e := range p.edges {
		s.vertex(e.Lower)
		s.vertex(e.Higher)
		s.edges = append(s.edges, e)
	}
	for _, l := range p.links {
		s.vertex(l.From).Next = l.To
		s.vertex(l.To).Prev = l.From
	}
	for _, c := range p.consumed {
		v := s.vertex(c.Vertex)
		if v.Done {
			panic(&InvariantError{
				Op:       op,
				Event:    fmt.Sprint(p.event),
				Vertices: []VertexID{v.ID},
				Msg:      "vertex consumed twice",
			})
		}
		v.Done = true
		v.Higher = c.Higher
		v.AdvancingSkeleton = c.Advancing
	}

	seen := make(map[VertexID]bool, len(p.retest))
	for _, id := range p.retest {
		if seen[id] || s.vertex(id).Done {
			continue
		}
		seen[id] = true
		s.queue.push(s.classify(id))
	}
}
