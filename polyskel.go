// Weighted straight skeletons of building footprints.
//
// Give it the outline of a footprint, optionally with courtyard holes, and a
// roof pitch for every edge. It returns the straight skeleton: the ridge, hip
// and valley lines of the hip roof those pitches produce, with their heights
// and enough adjacency to walk every roof panel.
package polyskel

import "github.com/osuushi/polyskel/advanced"

type Point = advanced.Point
type Point3 = advanced.Point3
type Contour = advanced.Contour
type ContourPoint = advanced.ContourPoint
type Skeleton = advanced.Skeleton
type SkeletonEdge = advanced.SkeletonEdge

// ErrDegenerateInput is wrapped by every error rejecting the input contours.
var ErrDegenerateInput = advanced.ErrDegenerateInput

// Compute the skeleton of a footprint. The first contour is the outer
// boundary, the rest are holes. Winding is fixed up automatically.
//
// Each point's Slope is the pitch, in radians strictly between 0 and π/2, of
// the edge that arrives at it.
func Compute(contours ...Contour) (result *Skeleton, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.Compute(contours, advanced.DefaultOptions())
}

// ComputeUniform is Compute with the same pitch on every edge. The first ring
// is the outer boundary, the rest are holes.
func ComputeUniform(slope float64, rings ...[]Point) (*Skeleton, error) {
	contours := make([]Contour, len(rings))
	for i, ring := range rings {
		contours[i] = advanced.UniformContour(slope, ring...)
	}
	return Compute(contours...)
}
