package advanced

import (
	"container/heap"
	"fmt"
)

// Event is a candidate wavefront change. It is one of *EdgeCollapse or *Split.
type Event interface {
	Location() Point3
	Height() Number
	String() string
	// Marker method so that only event types satisfy the interface
	eventTypeHint()
}

// EdgeCollapse is a convex event: the axes of the adjacent vertices Left and
// Right meet, and the wavefront edge between them shrinks to nothing.
type EdgeCollapse struct {
	Point       Point3
	Left, Right VertexID
}

// Split is a non-convex event: the axis of the reflex vertex Vertex reaches the
// wavefront edge running from EdgeLeft to EdgeRight, cutting its loop in two.
type Split struct {
	Point               Point3
	Vertex              VertexID
	EdgeLeft, EdgeRight VertexID
}

func (*EdgeCollapse) eventTypeHint() {}
func (*Split) eventTypeHint()        {}

func (e *EdgeCollapse) Location() Point3 { return e.Point }
func (e *Split) Location() Point3        { return e.Point }

func (e *EdgeCollapse) Height() Number { return e.Point.Height() }
func (e *Split) Height() Number        { return e.Point.Height() }

func (e *EdgeCollapse) String() string {
	return fmt.Sprintf("collapse v%d-v%d at %v", e.Left, e.Right, e.Point)
}

func (e *Split) String() string {
	return fmt.Sprintf("split v%d against v%d-v%d at %v", e.Vertex, e.EdgeLeft, e.EdgeRight, e.Point)
}

type queuedEvent struct {
	event Event
	seq   int
}

// eventQueue is a min-heap of events. Lower heights come first. Within the
// tolerance, splits come before collapses, and otherwise the event queued
// first wins, which keeps the sweep deterministic.
type eventQueue struct {
	items []queuedEvent
	seq   int
}

func (q *eventQueue) Len() int { return len(q.items) }

func (q *eventQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	ha, hb := a.event.Height(), b.event.Height()
	if !ha.Eq(hb) {
		return ha < hb
	}
	_, aSplit := a.event.(*Split)
	_, bSplit := b.event.(*Split)
	if aSplit != bSplit {
		return aSplit
	}
	return a.seq < b.seq
}

func (q *eventQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *eventQueue) Push(x interface{}) {
	q.items = append(q.items, x.(queuedEvent))
}

func (q *eventQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = queuedEvent{}
	q.items = old[:n-1]
	return item
}

// push queues an event. Events with a non-finite location are never queued.
func (q *eventQueue) push(e Event) bool {
	if e == nil || e.Location().IsInfinite() || !e.Height().IsFinite() {
		return false
	}
	heap.Push(q, queuedEvent{event: e, seq: q.seq})
	q.seq++
	return true
}

func (q *eventQueue) pop() Event {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(q).(queuedEvent).event
}
