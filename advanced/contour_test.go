package advanced

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContourReverse(t *testing.T) {
	c := Contour{
		{Point{0, 0}, 0.1},
		{Point{10, 0}, 0.2},
		{Point{10, 10}, 0.3},
		{Point{0, 10}, 0.4},
	}
	r := c.Reverse()
	assert.Equal(t, []Point{{0, 10}, {10, 10}, {10, 0}, {0, 0}}, r.Points())
	// Edge (0,10)->(10,10) was edge (10,10)->(0,10), whose slope sat on (0,10).
	assert.Equal(t, 0.4, r[1].Slope)
	assert.Equal(t, 0.1, r[0].Slope)
	assert.Equal(t, 0.3, r[2].Slope)
	assert.Equal(t, 0.2, r[3].Slope)
	assert.Equal(t, c, r.Reverse())
}

func TestPrepareContours(t *testing.T) {
	slope := math.Pi / 4
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	hole := []Point{{4, 4}, {4, 6}, {6, 6}, {6, 4}}

	t.Run("orientation is normalised", func(t *testing.T) {
		outerCW := UniformContour(slope, square[3], square[2], square[1], square[0])
		holeCCW := UniformContour(slope, hole[3], hole[2], hole[1], hole[0])
		prepared, err := PrepareContours([]Contour{outerCW, holeCCW})
		require.NoError(t, err)
		assert.True(t, IsCCW(prepared[0].Points()))
		assert.True(t, IsCW(prepared[1].Points()))
	})

	t.Run("duplicates are dropped", func(t *testing.T) {
		c := UniformContour(slope, Point{0, 0}, Point{0, 0}, Point{10, 0}, Point{10, 10}, Point{10, 10}, Point{0, 10}, Point{0, 0})
		prepared, err := PrepareContours([]Contour{c})
		require.NoError(t, err)
		assert.Equal(t, square, prepared[0].Points())
	})

	t.Run("closing repeat keeps its slope", func(t *testing.T) {
		c := UniformContour(slope, Point{0, 0}, Point{10, 0}, Point{10, 10}, Point{0, 10})
		c = append(c, ContourPoint{Point{0, 0}, 0.5})
		prepared, err := PrepareContours([]Contour{c})
		require.NoError(t, err)
		require.Len(t, prepared[0], 4)
		assert.Equal(t, 0.5, prepared[0][0].Slope)
	})

	degenerate := map[string][]Contour{
		"no contours":             {},
		"zero-length triangle":    {UniformContour(slope, Point{0, 0}, Point{10, 0}, Point{10, 0})},
		"two points":              {UniformContour(slope, Point{0, 0}, Point{10, 0})},
		"collinear":               {UniformContour(slope, Point{0, 0}, Point{5, 0}, Point{10, 0})},
		"flat roof":               {UniformContour(0, square...)},
		"gable":                   {UniformContour(math.Pi/2, square...)},
		"not finite":              {UniformContour(slope, Point{0, 0}, Point{math.NaN(), 0}, Point{0, 10})},
		"near duplicate":          {UniformContour(slope, Point{0, 0}, Point{10, 0}, Point{10, Epsilon / 2}, Point{0, 10})},
		"degenerate hole":         {UniformContour(slope, square...), UniformContour(slope, Point{1, 1}, Point{2, 2})},
		"conflicting duplicate":   {{{Point{0, 0}, slope}, {Point{10, 0}, slope}, {Point{10, 0}, slope / 2}, {Point{0, 10}, slope}}},
		"infinite slope argument": {UniformContour(math.Inf(1), square...)},
	}
	for name, contours := range degenerate {
		contours := contours
		t.Run(name, func(t *testing.T) {
			_, err := PrepareContours(contours)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDegenerateInput), "got %v", err)
		})
	}
}
