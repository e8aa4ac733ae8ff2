package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxisBetween(t *testing.T) {
	t.Run("square corner", func(t *testing.T) {
		left := NewBoundaryLine(Point{0, 0}, Point{10, 0}, math.Pi/4)
		right := NewBoundaryLine(Point{10, 0}, Point{10, 10}, math.Pi/4)
		axis, reflex := AxisBetween(left, right, Point3{10, 0, 0})
		assert.False(t, reflex)
		assert.True(t, axis.IsRidge)
		assert.InDelta(t, 3*math.Pi/4, float64(axis.Angle), 1e-9)
		assert.InDelta(t, math.Atan(1/math.Sqrt2), float64(axis.Slope), 1e-9)
		assertPoint3(t, Point3{5, 5, 5}, axis.At(math.Sqrt(50)))
	})

	t.Run("reflex corner", func(t *testing.T) {
		left := NewBoundaryLine(Point{12, 4}, Point{6, 4}, math.Pi/4)
		right := NewBoundaryLine(Point{6, 4}, Point{6, 10}, math.Pi/4)
		axis, reflex := AxisBetween(left, right, Point3{6, 4, 0})
		assert.True(t, reflex)
		assert.InDelta(t, -3*math.Pi/4, float64(axis.Angle), 1e-9)
	})

	t.Run("unequal slopes tilt toward the steeper edge", func(t *testing.T) {
		left := NewBoundaryLine(Point{-10, 0}, Point{0, 0}, math.Pi/4)
		right := NewBoundaryLine(Point{0, 0}, Point{0, 10}, Number(math.Atan(2)))
		axis, _ := AxisBetween(left, right, Point3{0, 0, 0})

		// The steep right edge recedes half as fast, so the vertex leaves it
		// at half the rate it leaves the floor edge.
		assert.InDelta(t, math.Atan2(1, -0.5), float64(axis.Angle), 1e-9)

		// Both roof planes agree with the axis everywhere along it.
		for _, travel := range []float64{0.5, 3, 11} {
			p := axis.At(travel)
			assert.InDelta(t, p.Z, float64(left.Height(p.XY())), Epsilon)
			assert.InDelta(t, p.Z, float64(right.Height(p.XY())), Epsilon)
		}
	})

	t.Run("straight corner", func(t *testing.T) {
		left := NewBoundaryLine(Point{0, 0}, Point{5, 0}, math.Pi/4)
		right := NewBoundaryLine(Point{5, 0}, Point{10, 0}, math.Pi/4)
		axis, reflex := AxisBetween(left, right, Point3{5, 0, 0})
		assert.False(t, reflex)
		assert.InDelta(t, math.Pi/2, float64(axis.Angle), 1e-9)
		assert.InDelta(t, math.Pi/4, float64(axis.Slope), 1e-9)
	})

	t.Run("opposed edges make a horizontal ridge", func(t *testing.T) {
		left := NewBoundaryLine(Point{10, 4}, Point{0, 4}, math.Pi/4)
		right := NewBoundaryLine(Point{0, 0}, Point{10, 0}, math.Pi/4)
		axis, reflex := AxisBetween(left, right, Point3{2, 2, 2})
		assert.False(t, reflex)
		assert.InDelta(t, 0, float64(axis.Angle), 1e-9)
		assert.Equal(t, Number(0), axis.Slope)
		assertPoint3(t, Point3{8, 2, 2}, axis.At(6))
	})
}
