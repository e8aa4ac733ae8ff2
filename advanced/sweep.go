package advanced

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polyskel/dbg"
)

// Stats counts what the sweep did.
type Stats struct {
	EdgeEvents    int
	SplitEvents   int
	ClosingEvents int
	StaleEvents   int
}

// Sweep is one skeleton computation. It owns every vertex, boundary line and
// skeleton edge it creates; all references between them are arena indices.
//
// A Sweep is not safe for concurrent use, but separate Sweeps share nothing
// and may run in parallel.
type Sweep struct {
	opts       Options
	log        *slog.Logger
	contours   []Contour
	lines      []RidgeLine
	vertices   []Vertex
	edges      []SkeletonEdge
	queue      eventQueue
	stats      Stats
	inputCount int
}

// NewSweep validates the contours, builds the initial wavefront and queues the
// first event of every vertex.
func NewSweep(contours []Contour, opts Options) (s *Sweep, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			s = nil
			err = recoveredErr
		}
	}()

	prepared, err := PrepareContours(contours)
	if err != nil {
		return nil, err
	}
	s = &Sweep{
		opts:     opts,
		log:      opts.logger(),
		contours: prepared,
	}
	s.seed()
	return s, nil
}

func (s *Sweep) seed() {
	base := 0
	for ci, contour := range s.contours {
		n := len(contour)
		for i, cp := range contour {
			next := contour[CircularIndex(i+1, n)]
			s.lines = append(s.lines, NewBoundaryLine(cp.Point, next.Point, Number(next.Slope)))
		}
		for i, cp := range contour {
			id := VertexID(base + i)
			prev := base + CircularIndex(i-1, n)
			v := newVertex(id, cp.WithZ(0), LineID(prev), LineID(base+i))
			v.Contour = ci
			v.Prev = VertexID(prev)
			v.Next = VertexID(base + CircularIndex(i+1, n))
			v.LeftVertex, v.RightVertex = id, id
			v.Axis, v.Reflex = AxisBetween(s.line(v.Left), s.line(v.Right), v.Position)
			s.vertices = append(s.vertices, v)
		}
		base += n
	}
	s.inputCount = base

	for i := range s.vertices {
		s.queue.push(s.classify(VertexID(i)))
	}
	s.log.Debug("seeded wavefront",
		"contours", len(s.contours),
		"vertices", s.inputCount,
		"events", s.queue.Len())
}

// Run drains the event queue until every wavefront loop has collapsed.
func (s *Sweep) Run() (err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()

	budget := s.opts.eventBudget(s.inputCount)
	for pops := 0; ; pops++ {
		event := s.queue.pop()
		if event == nil {
			break
		}
		if pops >= budget {
			return &InvariantError{
				Op:    "sweep",
				Event: event.String(),
				Msg:   fmt.Sprintf("event budget of %d exhausted", budget),
			}
		}

		p := s.plan(event)
		s.count(p.kind)
		s.logPatch(p)
		s.apply(p)
	}

	var live []VertexID
	for i := range s.vertices {
		if !s.vertices[i].Done {
			live = append(live, s.vertices[i].ID)
		}
	}
	if len(live) > 0 {
		return &InvariantError{Op: "sweep", Vertices: live, Msg: "wavefront did not collapse"}
	}
	return nil
}

func (s *Sweep) Stats() Stats {
	return s.stats
}

// Vertices exposes the arena, consumed vertices included. The slice must not be
// modified.
func (s *Sweep) Vertices() []Vertex {
	return s.vertices
}

func (s *Sweep) count(kind patchKind) {
	switch kind {
	case patchCollapse:
		s.stats.EdgeEvents++
	case patchSplit:
		s.stats.SplitEvents++
	case patchClosing:
		s.stats.ClosingEvents++
	default:
		s.stats.StaleEvents++
	}
}

func (s *Sweep) vertex(id VertexID) *Vertex {
	if id < 0 || int(id) >= len(s.vertices) {
		fatalf("lookup", "no vertex v%d", id)
	}
	return &s.vertices[id]
}

func (s *Sweep) line(id LineID) RidgeLine {
	if id < 0 || int(id) >= len(s.lines) {
		fatalf("lookup", "no boundary line %d", id)
	}
	return s.lines[id]
}

func (s *Sweep) plan(event Event) patch {
	switch e := event.(type) {
	case *EdgeCollapse:
		l, r := s.vertex(e.Left), s.vertex(e.Right)
		if l.Done || r.Done || l.Next != r.ID {
			return s.stale(e, l.ID, r.ID)
		}
		return s.planMeeting(e, []VertexID{l.ID, r.ID}, nil)
	case *Split:
		v := s.vertex(e.Vertex)
		if v.Done {
			return s.stale(e)
		}
		a, c := s.vertex(e.EdgeLeft), s.vertex(e.EdgeRight)
		if a.ID == v.ID || c.ID == v.ID {
			panic(&InvariantError{
				Op:       "plan split",
				Event:    e.String(),
				Vertices: []VertexID{v.ID, a.ID, c.ID},
				Msg:      "vertex split against its own edge",
			})
		}
		if a.Done || c.Done || a.Next != c.ID {
			return s.stale(e, v.ID)
		}
		return s.planMeeting(e, []VertexID{v.ID}, []VertexID{a.ID})
	}
	fatalf("plan", "unknown event type %T", event)
	return patch{}
}

// stale drops the event and retests whichever of the named vertices are still
// live.
func (s *Sweep) stale(event Event, ids ...VertexID) patch {
	b := s.newPatch(patchStale, event)
	for _, id := range ids {
		if !s.vertex(id).Done {
			b.retest(id)
		}
	}
	return b.build()
}

func (s *Sweep) logPatch(p patch) {
	if !s.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	consumed := make([]string, len(p.consumed))
	for i, c := range p.consumed {
		consumed[i] = s.dbgName(c.Vertex)
	}
	born := make([]string, len(p.born))
	for i, n := range p.born {
		born[i] = s.dbgName(n.ID)
	}
	s.log.Debug("event",
		"kind", aurora.Yellow(p.kind.String()).String(),
		"at", p.event.Location().String(),
		"consumed", consumed,
		"born", born,
		"retest", len(p.retest),
		"queued", s.queue.Len())
}

type vertexKey struct {
	sweep *Sweep
	id    VertexID
}

// dbgName gives a vertex a readable name that stays the same for the rest of
// the process.
func (s *Sweep) dbgName(id VertexID) string {
	return fmt.Sprintf("%s(v%d)", aurora.Cyan(dbg.Name(vertexKey{s, id})), id)
}
