package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/polyskel/advanced"
	"github.com/peterstace/simplefeatures/geom"
	"github.com/pkg/errors"
)

func readPoints(in io.Reader) ([][]advanced.Point, error) {
	rings := [][]advanced.Point{}
	scanner := bufio.NewScanner(in)
	points := []advanced.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the ring
		if line == "" {
			if len(points) > 0 {
				rings = append(rings, points)
				points = []advanced.Point{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read points")
	}

	// Handle trailing ring if any
	if len(points) > 0 {
		rings = append(rings, points)
	}
	if len(rings) == 0 {
		return nil, errors.New("no points in input")
	}
	return rings, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("want \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "y")
	}
	return advanced.Point{X: x, Y: y}, nil
}

func readWKT(in io.Reader) ([][]advanced.Point, error) {
	g, err := geom.UnmarshalWKTFromReader(in)
	if err != nil {
		return nil, errors.Wrap(err, "parse wkt")
	}
	if g.Type() != geom.TypePolygon {
		return nil, errors.Errorf("want a POLYGON, got %v", g.Type())
	}
	poly := g.AsPolygon()
	rings := [][]advanced.Point{ringPoints(poly.ExteriorRing())}
	for i := 0; i < poly.NumInteriorRings(); i++ {
		rings = append(rings, ringPoints(poly.InteriorRingN(i)))
	}
	return rings, nil
}

// WKT rings repeat their first point at the end. The skeleton input cleanup
// drops the repeat.
func ringPoints(ring geom.LineString) []advanced.Point {
	seq := ring.Coordinates()
	points := make([]advanced.Point, seq.Length())
	for i := range points {
		xy := seq.GetXY(i)
		points[i] = advanced.Point{X: xy.X, Y: xy.Y}
	}
	return points
}

// writeWKT prints the interior skeleton edges, heights included, as a
// MULTILINESTRING Z.
func writeWKT(out io.Writer, skeleton *advanced.Skeleton) error {
	if len(skeleton.InteriorEdges()) == 0 {
		_, err := io.WriteString(out, "MULTILINESTRING Z EMPTY\n")
		return errors.Wrap(err, "write wkt")
	}
	var b strings.Builder
	b.WriteString("MULTILINESTRING Z (")
	for i := range skeleton.InteriorEdges() {
		if i > 0 {
			b.WriteString(", ")
		}
		lower, higher := skeleton.Segment(advanced.EdgeID(skeleton.BoundaryCount + i))
		fmt.Fprintf(&b, "(%s, %s)", wktCoord(lower), wktCoord(higher))
	}
	b.WriteString(")\n")
	_, err := io.WriteString(out, b.String())
	return errors.Wrap(err, "write wkt")
}

func wktCoord(p advanced.Point3) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return f(p.X) + " " + f(p.Y) + " " + f(p.Z)
}
