// Package fixture parses footprint SVGs. It is not a full (or even correct)
// svg parser: it takes every <polygon> element in document order, the first as
// the outer boundary and the rest as holes.
//
// Fixtures are embedded from the fixtures/ directory and available by name,
// sans extension.
package fixture

import (
	"embed"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/polyskel/advanced"
	"github.com/pkg/errors"
)

//go:embed fixtures
var fixtures embed.FS

// Parse reads the polygons out of an SVG document.
func Parse(r io.Reader) ([][]advanced.Point, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	polygonEls := rootEl.FindAll("polygon")
	if len(polygonEls) == 0 {
		return nil, errors.New("no polygons found")
	}
	rings := make([][]advanced.Point, 0, len(polygonEls))
	for i, polygonEl := range polygonEls {
		ring, err := parsePoints(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

func parsePoints(pointString string) ([]advanced.Point, error) {
	pointStrings := strings.Fields(pointString)
	points := make([]advanced.Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			return nil, errors.Errorf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", coords[0])
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", coords[1])
		}
		points = append(points, advanced.Point{X: x, Y: y})
	}
	return points, nil
}

// Load returns the rings of an embedded fixture.
func Load(name string) ([][]advanced.Point, error) {
	f, err := fixtures.Open(path.Join("fixtures", name+".svg"))
	if err != nil {
		return nil, errors.Wrapf(err, "could not load fixture %q", name)
	}
	defer f.Close()

	rings, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "fixture %q", name)
	}
	return rings, nil
}

// MustLoad is Load for tests, where a broken fixture is a broken test.
func MustLoad(name string) [][]advanced.Point {
	rings, err := Load(name)
	if err != nil {
		panic(err)
	}
	return rings
}

// Contours loads a fixture with the same slope on every edge.
func Contours(name string, slope float64) ([]advanced.Contour, error) {
	rings, err := Load(name)
	if err != nil {
		return nil, err
	}
	contours := make([]advanced.Contour, len(rings))
	for i, ring := range rings {
		contours[i] = advanced.UniformContour(slope, ring...)
	}
	return contours, nil
}

// Names lists the embedded fixtures.
func Names() []string {
	entries, err := fixtures.ReadDir("fixtures")
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".svg") {
			names = append(names, strings.TrimSuffix(entry.Name(), ".svg"))
		}
	}
	sort.Strings(names)
	return names
}
