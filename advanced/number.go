package advanced

import "math"

// Epsilon is the absolute tolerance used for every comparison in the sweep. It
// stands for the smallest distance (or height) anyone could care about on a
// real building footprint.
//
// The tolerance does not scale with the input. Footprints measured in units
// far smaller or far larger than a metre will see it as either too coarse or
// too fine, so callers should bring coordinates into a metre-ish range first.
const Epsilon = 5e-5

// Number is a float64 whose comparisons are tolerance based. Near-simultaneous
// events must be treated as the same event, and that only works if everything
// downstream agrees on what "the same" means, so geometry code compares through
// these methods and never with raw float operators.
type Number float64

func (n Number) Eq(other Number) bool {
	return math.Abs(float64(n-other)) <= Epsilon
}

// Lt is a strict less-than: the two values must differ by more than Epsilon.
func (n Number) Lt(other Number) bool {
	return n < other && !n.Eq(other)
}

func (n Number) Le(other Number) bool {
	return n < other || n.Eq(other)
}

func (n Number) Gt(other Number) bool {
	return other.Lt(n)
}

func (n Number) Ge(other Number) bool {
	return other.Le(n)
}

func (n Number) IsZero() bool {
	return n.Eq(0)
}

func (n Number) Abs() Number {
	return Number(math.Abs(float64(n)))
}

func (n Number) IsFinite() bool {
	return !math.IsInf(float64(n), 0) && !math.IsNaN(float64(n))
}

// NormalizeAngle wraps an angle into (-π, π]. Non-finite angles are returned
// unchanged.
func NormalizeAngle(angle Number) Number {
	if !angle.IsFinite() {
		return angle
	}
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle <= -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
