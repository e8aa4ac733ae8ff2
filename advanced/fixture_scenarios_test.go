package advanced_test

import (
	"math"
	"testing"

	"github.com/osuushi/polyskel/advanced"
	"github.com/osuushi/polyskel/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtures(t *testing.T) {
	for _, name := range fixture.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			for _, slope := range []float64{math.Pi / 6, math.Pi / 4, math.Pi / 3} {
				contours, err := fixture.Contours(name, slope)
				require.NoError(t, err)

				skeleton, err := advanced.Compute(contours, advanced.DefaultOptions())
				require.NoError(t, err, "slope %v", slope)
				require.NoError(t, skeleton.Validate(), "slope %v", slope)

				faces, err := skeleton.Faces()
				require.NoError(t, err)
				assert.Len(t, faces, skeleton.BoundaryCount)
			}
		})
	}
}

func TestFixtureHexagonApex(t *testing.T) {
	contours, err := fixture.Contours("hexagon", math.Pi/4)
	require.NoError(t, err)
	skeleton, err := advanced.Compute(contours, advanced.DefaultOptions())
	require.NoError(t, err)

	// Circumradius 10, so the inradius is 5√3.
	require.Len(t, skeleton.Vertices, 7)
	apex := skeleton.Vertices[6]
	assert.InDelta(t, 0, apex.X, advanced.Epsilon)
	assert.InDelta(t, 0, apex.Y, advanced.Epsilon)
	assert.InDelta(t, 5*math.Sqrt(3), apex.Z, advanced.Epsilon)
}
