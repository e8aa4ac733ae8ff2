package advanced

import (
	"fmt"
	"math"
)

// RidgeLine is a ray on the footprint plane that also knows how fast height
// grows along it.
//
// A boundary line runs along an input edge. Its Slope is the roof pitch of that
// edge, and the plane it defines (height = distance to the line × tan(Slope))
// is the roof panel that edge will carry. A ridge line (IsRidge) is the axis a
// wavefront vertex travels along; its Slope is the rise per unit of horizontal
// travel of that vertex. A zero Slope means the axis is a horizontal ridge.
type RidgeLine struct {
	Origin  Point3
	Angle   Number
	Slope   Number
	IsRidge bool
}

// NewBoundaryLine builds the line of the input edge from -> to.
func NewBoundaryLine(from, to Point, slope Number) RidgeLine {
	return RidgeLine{
		Origin: from.WithZ(0),
		Angle:  to.Sub(from).Angle(),
		Slope:  slope,
	}
}

func (l RidgeLine) Direction() Point {
	return unitVector(l.Angle)
}

// Normal is the unit vector to the left of the direction. For a boundary line
// of a correctly wound contour, that is the inside of the footprint.
func (l RidgeLine) Normal() Point {
	d := l.Direction()
	return Point{-d.Y, d.X}
}

// Rise is the height gained per unit of horizontal distance.
func (l RidgeLine) Rise() float64 {
	return math.Tan(float64(l.Slope))
}

// Distance is the signed perpendicular distance from the line, positive on the
// left.
func (l RidgeLine) Distance(p Point) Number {
	return Number(l.Normal().Dot(p.Sub(l.Origin.XY())))
}

// Side is positive when p lies left of the (infinite) line, negative when it
// lies right of it. The magnitude is the distance.
func (l RidgeLine) Side(p Point) Number {
	return Number(l.Direction().Cross(p.Sub(l.Origin.XY())))
}

// Height of the roof plane of a boundary line above p. Outside the footprint
// side of the line this is negative.
func (l RidgeLine) Height(p Point) Number {
	return l.Distance(p) * Number(l.Rise())
}

// At returns the point reached after travelling t along the ray.
func (l RidgeLine) At(t float64) Point3 {
	p := l.Origin.XY().Add(l.Direction().Scale(t))
	return p.WithZ(l.Origin.Z + t*l.Rise())
}

// Intersection of the two rays. It returns Infinite when the rays are parallel
// and do not meet head on, or when the crossing lies behind either origin.
func (l RidgeLine) Intersection(other RidgeLine) Point3 {
	o1, o2 := l.Origin.XY(), other.Origin.XY()
	if o1.Equal(o2) {
		if l.IsRidge && other.IsRidge {
			return Point3{
				X: (l.Origin.X + other.Origin.X) / 2,
				Y: (l.Origin.Y + other.Origin.Y) / 2,
				Z: (l.Origin.Z + other.Origin.Z) / 2,
			}
		}
		return l.Origin
	}

	u1, u2 := l.Direction(), other.Direction()
	d := o2.Sub(o1)
	det := u1.Cross(u2)
	if Number(det).IsZero() {
		return l.headOn(other)
	}
	t1 := d.Cross(u2) / det
	t2 := d.Cross(u1) / det
	if Number(t1).Lt(0) || Number(t2).Lt(0) {
		return Infinite
	}
	return l.At(math.Max(t1, 0))
}

// Parallel rays only meet when they run along the same line toward each
// other. They meet where their heights agree, which for two horizontal ridges
// is halfway.
func (l RidgeLine) headOn(other RidgeLine) Point3 {
	u1, u2 := l.Direction(), other.Direction()
	d := other.Origin.XY().Sub(l.Origin.XY())
	if !Number(u1.Cross(d)).IsZero() || u1.Dot(u2) > 0 || u1.Dot(d) < 0 {
		return Infinite
	}
	gap := d.Len()
	r1, r2 := l.Rise(), other.Rise()
	if Number(r1 + r2).IsZero() {
		p := l.Origin.XY().Add(u1.Scale(gap / 2))
		return p.WithZ((l.Origin.Z + other.Origin.Z) / 2)
	}
	t := (other.Origin.Z - l.Origin.Z + r2*gap) / (r1 + r2)
	t = math.Min(math.Max(t, 0), gap)
	return l.At(t)
}

// IntersectionAnywhere intersects the two full lines, ignoring which way the
// rays point. Only parallel lines have no intersection. The Z of the result is
// extrapolated along l, so it may be negative.
func (l RidgeLine) IntersectionAnywhere(other RidgeLine) Point3 {
	u1, u2 := l.Direction(), other.Direction()
	det := u1.Cross(u2)
	if Number(det).IsZero() {
		return Infinite
	}
	d := other.Origin.XY().Sub(l.Origin.XY())
	return l.At(d.Cross(u2) / det)
}

// Reach returns the point where this axis climbs into the roof plane of the
// boundary line b, or Infinite if it never does. An axis that starts above the
// plane has already been swept past by that edge.
func (l RidgeLine) Reach(b RidgeLine) Point3 {
	rise := b.Rise()
	gap := float64(b.Height(l.Origin.XY())) - l.Origin.Z
	if Number(gap).Lt(0) {
		return Infinite
	}
	closing := l.Rise() - rise*b.Normal().Dot(l.Direction())
	if !Number(closing).Gt(0) {
		return Infinite
	}
	return l.At(math.Max(gap, 0) / closing)
}

func (l RidgeLine) String() string {
	kind := "edge"
	if l.IsRidge {
		kind = "axis"
	}
	return fmt.Sprintf("%s%v∠%.4f/%.4f", kind, l.Origin, float64(l.Angle), float64(l.Slope))
}
