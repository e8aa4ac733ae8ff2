package advanced

// Compute runs a whole skeleton computation: validate and orient the contours,
// sweep the wavefront, and finish the graph. The first contour is the outer
// boundary and the rest are holes.
//
// Input problems are reported as errors wrapping ErrDegenerateInput before any
// work is done. Structural contradictions found later come back as
// *InvariantError or *ValidationError.
func Compute(contours []Contour, opts Options) (*Skeleton, error) {
	s, err := NewSweep(contours, opts)
	if err != nil {
		return nil, err
	}
	if err := s.Run(); err != nil {
		return nil, err
	}
	return s.Finish()
}
