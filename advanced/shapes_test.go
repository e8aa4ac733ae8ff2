package advanced

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Footprints whose arms all share one width, so reflex and convex corners
// reach the same points at the same heights.
var (
	hShape = []Point{
		{0, 0}, {3, 0}, {3, 4}, {7, 4}, {7, 0}, {10, 0},
		{10, 10}, {7, 10}, {7, 6}, {3, 6}, {3, 10}, {0, 10},
	}
	plusShape = []Point{
		{4, 0}, {6, 0}, {6, 4}, {10, 4}, {10, 6}, {6, 6},
		{6, 10}, {4, 10}, {4, 6}, {0, 6}, {0, 4}, {4, 4},
	}
	eShape = []Point{
		{0, 0}, {10, 0}, {10, 2}, {2, 2}, {2, 4}, {8, 4},
		{8, 6}, {2, 6}, {2, 8}, {10, 8}, {10, 10}, {0, 10},
	}
	tShape = []Point{{4, 0}, {6, 0}, {6, 6}, {10, 6}, {10, 8}, {0, 8}, {0, 6}, {4, 6}}
	uShape = []Point{{0, 0}, {10, 0}, {10, 10}, {7, 10}, {7, 3}, {3, 3}, {3, 10}, {0, 10}}
)

// starPolygon places one corner in each of n equal sectors around the origin,
// so the ring is simple and counterclockwise.
func starPolygon(r *rand.Rand, n int) []Point {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * (float64(i) + 0.2 + 0.6*r.Float64()) / float64(n)
		radius := 4 + 6*r.Float64()
		points[i] = Point{radius * math.Cos(angle), radius * math.Sin(angle)}
	}
	return points
}

// assertRoofConsistent checks that the faces tile the footprint and that each
// face lies in the plane rising from its input edge.
func assertRoofConsistent(t *testing.T, skeleton *Skeleton, slope float64, rings ...[]Point) {
	t.Helper()
	assertHeightsMonotone(t, skeleton)

	faces, err := skeleton.Faces()
	require.NoError(t, err)
	require.Len(t, faces, skeleton.BoundaryCount)

	var footprint float64
	for i, ring := range rings {
		if i == 0 {
			footprint += math.Abs(SignedArea(ring))
		} else {
			footprint -= math.Abs(SignedArea(ring))
		}
	}

	var total float64
	for i, face := range faces {
		area := SignedArea(pointsOf(skeleton, face))
		assert.Greater(t, area, 0.0, "face %d is not counterclockwise", i)
		total += area

		plane := NewBoundaryLine(skeleton.Vertices[face[0]].XY(), skeleton.Vertices[face[1]].XY(), Number(slope))
		for _, id := range face {
			v := skeleton.Vertices[id]
			assert.InDelta(t, float64(plane.Height(v.XY())), v.Z, 1e-3, "face %d vertex %v", i, v)
		}
	}
	assert.InDelta(t, footprint, total, 1e-3)
}

func TestComputeSharedWidthShapes(t *testing.T) {
	cases := []struct {
		name  string
		rings [][]Point
	}{
		{"h", [][]Point{hShape}},
		{"plus", [][]Point{plusShape}},
		{"e", [][]Point{eShape}},
		{"t", [][]Point{tShape}},
		{"u", [][]Point{uShape}},
		{"courtyard", courtyard},
	}
	for _, c := range cases {
		c := c
		for _, slope := range []float64{math.Pi / 6, math.Pi / 4, math.Pi / 3} {
			slope := slope
			t.Run(fmt.Sprintf("%s/%.2f", c.name, slope), func(t *testing.T) {
				skeleton := computeUniform(t, slope, c.rings...)
				assertRoofConsistent(t, skeleton, slope, c.rings...)
			})
		}
	}
}

func TestComputeStarPolygons(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 40; i++ {
		n := 6 + r.Intn(9)
		ring := starPolygon(r, n)
		t.Run(fmt.Sprintf("star%d_n%d", i, n), func(t *testing.T) {
			skeleton := computeUniform(t, math.Pi/4, ring)
			assertRoofConsistent(t, skeleton, math.Pi/4, ring)
		})
	}
}

func TestComputeCoincidentCorners(t *testing.T) {
	t.Run("h bridge", func(t *testing.T) {
		skeleton := computeUniform(t, math.Pi/4, hShape)
		// Both reflex corners on each side of the bridge meet its ridge.
		assertHasVertex(t, skeleton, Point3{2, 5, 1})
		assertHasVertex(t, skeleton, Point3{8, 5, 1})
		assertHasVertex(t, skeleton, Point3{1.5, 1.5, 1.5})
		assertHasVertex(t, skeleton, Point3{8.5, 8.5, 1.5})
		assertFlatRidge(t, skeleton, 2, 8, 5, 1)
	})

	t.Run("plus centre", func(t *testing.T) {
		skeleton := computeUniform(t, math.Pi/4, plusShape)
		assertHasVertex(t, skeleton, Point3{5, 5, 1})
		for _, arm := range []Point3{{5, 1, 1}, {9, 5, 1}, {5, 9, 1}, {1, 5, 1}} {
			assertHasVertex(t, skeleton, arm)
		}
	})

	t.Run("e arms", func(t *testing.T) {
		skeleton := computeUniform(t, math.Pi/4, eShape)
		assertHasVertex(t, skeleton, Point3{1, 1, 1})
		assertHasVertex(t, skeleton, Point3{1, 9, 1})
		assertHasVertex(t, skeleton, Point3{1, 5, 1})
	})
}

// assertFlatRidge checks that level edges at height z along y cover x from
// x0 to x1.
func assertFlatRidge(t *testing.T, skeleton *Skeleton, x0, x1, y, z float64) {
	t.Helper()
	var covered float64
	for id := range skeleton.Edges {
		lower, higher := skeleton.Segment(EdgeID(id))
		if !Number(lower.Z).Eq(Number(z)) || !Number(higher.Z).Eq(Number(z)) {
			continue
		}
		if !Number(lower.Y).Eq(Number(y)) || !Number(higher.Y).Eq(Number(y)) {
			continue
		}
		covered += math.Abs(higher.X - lower.X)
	}
	assert.InDelta(t, x1-x0, covered, 1e-3, "ridge at y=%v, z=%v", y, z)
}
