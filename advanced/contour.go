package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// ContourPoint is one corner of a footprint contour. Slope is the roof pitch,
// in radians, of the edge that arrives at this corner from the previous one.
type ContourPoint struct {
	Point
	Slope float64
}

// Contour is a closed loop of corners. The closing edge from the last point
// back to the first is implicit.
type Contour []ContourPoint

// UniformContour gives every edge of the loop the same slope.
func UniformContour(slope float64, points ...Point) Contour {
	contour := make(Contour, len(points))
	for i, p := range points {
		contour[i] = ContourPoint{Point: p, Slope: slope}
	}
	return contour
}

func (c Contour) Points() []Point {
	points := make([]Point, len(c))
	for i, cp := range c {
		points[i] = cp.Point
	}
	return points
}

// Reverse flips the winding. Slopes belong to edges, not corners, so each one
// moves to the corner that now ends its edge.
func (c Contour) Reverse() Contour {
	n := len(c)
	result := make(Contour, n)
	for j := range result {
		result[j] = ContourPoint{
			Point: c[n-1-j].Point,
			Slope: c[CircularIndex(n-j, n)].Slope,
		}
	}
	return result
}

func degeneratef(contour int, format string, args ...interface{}) error {
	return errors.Wrapf(ErrDegenerateInput, "contour %d: %s", contour, errors.Errorf(format, args...).Error())
}

// PrepareContours validates the input and returns a cleaned copy: exact
// duplicate points are dropped, the outer contour (the first) winds
// counterclockwise and every hole winds clockwise. Every failure wraps
// ErrDegenerateInput.
func PrepareContours(contours []Contour) ([]Contour, error) {
	if len(contours) == 0 {
		return nil, errors.Wrap(ErrDegenerateInput, "no contours")
	}
	result := make([]Contour, 0, len(contours))
	for ci, contour := range contours {
		cleaned, err := cleanContour(ci, contour)
		if err != nil {
			return nil, err
		}

		area := SignedArea(cleaned.Points())
		if Number(area).IsZero() {
			return nil, degeneratef(ci, "zero area")
		}
		if (ci == 0) != (area > 0) {
			cleaned = cleaned.Reverse()
		}
		result = append(result, cleaned)
	}
	return result, nil
}

func cleanContour(ci int, contour Contour) (Contour, error) {
	cleaned := make(Contour, 0, len(contour))
	for i, cp := range contour {
		if !cp.IsFinite() {
			return nil, degeneratef(ci, "point %d is not finite: %v", i, cp.Point)
		}
		if !(cp.Slope > 0 && cp.Slope < math.Pi/2) {
			return nil, degeneratef(ci, "point %d: slope %g outside (0, π/2)", i, cp.Slope)
		}
		if len(cleaned) > 0 {
			last := cleaned[len(cleaned)-1]
			if last.Point == cp.Point {
				// The duplicate's own slope belongs to a zero-length edge, but
				// a caller that gave it a different pitch meant something we
				// cannot honour.
				if last.Slope != cp.Slope {
					return nil, degeneratef(ci, "duplicate point %d %v with conflicting slopes", i, cp.Point)
				}
				continue
			}
		}
		cleaned = append(cleaned, cp)
	}
	// A contour written out closed repeats its first point at the end. The
	// repeat carries the slope of the real closing edge.
	for len(cleaned) > 1 && cleaned[len(cleaned)-1].Point == cleaned[0].Point {
		cleaned[0].Slope = cleaned[len(cleaned)-1].Slope
		cleaned = cleaned[:len(cleaned)-1]
	}

	if len(cleaned) < 3 {
		return nil, degeneratef(ci, "%d distinct points, need at least 3", len(cleaned))
	}
	for i, cp := range cleaned {
		next := cleaned[CircularIndex(i+1, len(cleaned))]
		if cp.Point.Equal(next.Point) {
			return nil, degeneratef(ci, "near-duplicate points %v and %v", cp.Point, next.Point)
		}
	}
	return cleaned, nil
}
