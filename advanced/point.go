package advanced

import (
	"fmt"
	"math"
)

// Point is a position on the footprint plane.
type Point struct {
	X float64
	Y float64
}

// Point3 is a footprint position together with its roof height. Z is the
// height (the sweep's notion of time), not an input elevation.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Infinite is the "no intersection" sentinel returned by line intersections.
// It is a normal outcome, not an error; check it with IsInfinite.
var Infinite = Point3{math.Inf(1), math.Inf(1), math.Inf(1)}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross is the z component of the 3D cross product. It is positive when q is
// counterclockwise from p.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Len()
}

// Angle is the direction of p as a vector.
func (p Point) Angle() Number {
	return Number(math.Atan2(p.Y, p.X))
}

// Equal compares both coordinates within Epsilon.
func (p Point) Equal(q Point) bool {
	return Number(p.X).Eq(Number(q.X)) && Number(p.Y).Eq(Number(q.Y))
}

func (p Point) IsFinite() bool {
	return Number(p.X).IsFinite() && Number(p.Y).IsFinite()
}

func (p Point) WithZ(z float64) Point3 {
	return Point3{p.X, p.Y, z}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point3) XY() Point {
	return Point{p.X, p.Y}
}

func (p Point3) Height() Number {
	return Number(p.Z)
}

func (p Point3) IsInfinite() bool {
	return math.IsInf(p.X, 0) || math.IsInf(p.Y, 0)
}

// Equal compares all three coordinates within Epsilon.
func (p Point3) Equal(q Point3) bool {
	return p.XY().Equal(q.XY()) && Number(p.Z).Eq(Number(q.Z))
}

func (p Point3) String() string {
	if p.IsInfinite() {
		return "(∞)"
	}
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

func unitVector(angle Number) Point {
	return Point{math.Cos(float64(angle)), math.Sin(float64(angle))}
}

// SignedArea of a closed ring, positive for counterclockwise rings.
func SignedArea(ring []Point) float64 {
	var area float64
	for i, p := range ring {
		q := ring[CircularIndex(i+1, len(ring))]
		area += p.Cross(q)
	}
	return area / 2
}

func IsCCW(ring []Point) bool {
	return SignedArea(ring) > 0
}

func IsCW(ring []Point) bool {
	return SignedArea(ring) < 0
}
