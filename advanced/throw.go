package advanced

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrDegenerateInput is wrapped by every error that rejects a contour before
// the sweep starts. Test for it with errors.Is.
var ErrDegenerateInput = errors.New("degenerate input contour")

// InvariantError reports a structural contradiction found while the sweep was
// running: an event that cannot be applied, an arena reference that does not
// exist, or a wavefront that never collapsed. It always means the input broke
// a precondition (self intersection, near duplicate points) or there is a bug.
type InvariantError struct {
	Op       string
	Event    string
	Vertices []VertexID
	Msg      string
}

func (e *InvariantError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "polyskel: %s: %s", e.Op, e.Msg)
	if e.Event != "" {
		fmt.Fprintf(&b, " (event %s)", e.Event)
	}
	if len(e.Vertices) > 0 {
		fmt.Fprintf(&b, " (vertices %v)", e.Vertices)
	}
	return b.String()
}

// ValidationError reports a defect in the finished skeleton graph, such as a
// wing slot that two faces both claim.
type ValidationError struct {
	Edge   EdgeID
	Vertex VertexID
	Msg    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("polyskel: invalid skeleton at edge %d, vertex %d: %s", e.Edge, e.Vertex, e.Msg)
}

func invariantf(op string, vertices []VertexID, format string, args ...interface{}) *InvariantError {
	return &InvariantError{
		Op:       op,
		Vertices: vertices,
		Msg:      errors.Errorf(format, args...).Error(),
	}
}

// Threading errors through every arena lookup would bury the geometry. Deep
// helpers panic with an *InvariantError instead, and the entry points recover
// to convert it back into an error.
func fatalf(op string, format string, args ...interface{}) {
	panic(invariantf(op, nil, format, args...))
}

// HandlePanicRecover converts a recovered *InvariantError into an error.
// Anything else is a genuine bug and keeps panicking.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if invariantErr, ok := r.(*InvariantError); ok {
			return invariantErr
		}
		panic(r)
	}
	return nil
}
