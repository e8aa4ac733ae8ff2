package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/osuushi/polyskel/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPoints(t *testing.T) {
	t.Run("outer and hole", func(t *testing.T) {
		rings, err := readPoints(strings.NewReader("0 0\n30 0\n30 20\n0 20\n\n5 8\n5 10\n7 10\n7 8\n"))
		require.NoError(t, err)
		require.Len(t, rings, 2)
		assert.Equal(t, advanced.Point{X: 30, Y: 20}, rings[0][2])
		assert.Len(t, rings[1], 4)
	})

	t.Run("extra blank lines", func(t *testing.T) {
		rings, err := readPoints(strings.NewReader("\n\n0 0\n1 0\n1 1\n\n\n"))
		require.NoError(t, err)
		assert.Len(t, rings, 1)
	})

	t.Run("malformed point", func(t *testing.T) {
		_, err := readPoints(strings.NewReader("0 0\n1\n1 1\n"))
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := readPoints(strings.NewReader(""))
		assert.Error(t, err)
	})
}

func TestReadWKT(t *testing.T) {
	t.Run("polygon with hole", func(t *testing.T) {
		rings, err := readWKT(strings.NewReader("POLYGON((0 0,30 0,30 20,0 20,0 0),(5 8,5 10,7 10,7 8,5 8))"))
		require.NoError(t, err)
		require.Len(t, rings, 2)
		assert.Len(t, rings[0], 5)
		assert.Equal(t, advanced.Point{X: 5, Y: 10}, rings[1][1])
	})

	t.Run("not a polygon", func(t *testing.T) {
		_, err := readWKT(strings.NewReader("POINT(1 2)"))
		assert.Error(t, err)
	})
}

func TestWriteWKT(t *testing.T) {
	rings, err := readWKT(strings.NewReader("POLYGON((0 0,10 0,10 10,0 10,0 0))"))
	require.NoError(t, err)
	skeleton, err := advanced.Compute([]advanced.Contour{advanced.UniformContour(math.Pi/4, rings[0]...)}, advanced.DefaultOptions())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, writeWKT(&out, skeleton))
	assert.True(t, strings.HasPrefix(out.String(), "MULTILINESTRING Z (("))
	assert.Equal(t, 3, strings.Count(out.String(), "), ("), "one linestring per hip")
}
