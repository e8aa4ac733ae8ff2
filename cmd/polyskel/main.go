package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/polyskel/advanced"
	"github.com/osuushi/polyskel/internal/fixture"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Computes the straight skeleton of a footprint and prints its ridge, hip and
// valley lines as a WKT MULTILINESTRING.
//
// Input is read from a file or stdin. The "points" format is newline separated
// points in the form "x y", with each ring separated by an extra newline. The
// "wkt" format is a single POLYGON. The "svg" format takes every <polygon>
// element. In every format the first ring is the outer boundary and the rest
// are holes.
var (
	app     = kingpin.New("polyskel", "Weighted straight skeletons of building footprints.")
	input   = app.Arg("input", "Input file (default stdin).").File()
	format  = app.Flag("format", "Input format.").Short('f').Default("points").Enum("points", "wkt", "svg")
	demo    = app.Flag("fixture", "Use a built-in footprint instead of reading input.").Enum(fixture.Names()...)
	slope   = app.Flag("slope", "Roof pitch of every edge, in degrees.").Default("30").Float64()
	pngPath = app.Flag("png", "Also render the skeleton to this PNG file.").String()
	show    = app.Flag("imgcat", "Show the rendered PNG inline (iTerm2).").Bool()
	scale   = app.Flag("scale", "Pixels per footprint unit when rendering.").Default("20").Float64()
	verbose = app.Flag("verbose", "Log every sweep event to stderr.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "polyskel:", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	if *verbose {
		advanced.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	rings, err := readRings()
	if err != nil {
		return err
	}
	pitch := *slope * math.Pi / 180
	contours := make([]advanced.Contour, len(rings))
	for i, ring := range rings {
		contours[i] = advanced.UniformContour(pitch, ring...)
	}

	skeleton, err := advanced.Compute(contours, advanced.DefaultOptions())
	if err != nil {
		return err
	}
	if err := writeWKT(out, skeleton); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%d vertices, %d edges (%d boundary), %+v\n",
		len(skeleton.Vertices), len(skeleton.Edges), skeleton.BoundaryCount, skeleton.Stats)

	path := *pngPath
	if path == "" && *show {
		path = os.TempDir() + "/polyskel.png"
	}
	if path == "" {
		return nil
	}
	if err := savePNG(path, skeleton); err != nil {
		return err
	}
	if *show {
		// Stdout carries the WKT.
		if err := imgcat.CatFile(path, os.Stderr); err != nil {
			return errors.Wrap(err, "imgcat")
		}
	}
	return nil
}

func readRings() ([][]advanced.Point, error) {
	if *demo != "" {
		return fixture.Load(*demo)
	}
	in := io.Reader(os.Stdin)
	if *input != nil {
		defer (*input).Close()
		in = *input
	}
	switch *format {
	case "wkt":
		return readWKT(in)
	case "svg":
		return fixture.Parse(in)
	default:
		return readPoints(in)
	}
}

func savePNG(path string, skeleton *advanced.Skeleton) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create png")
	}
	defer f.Close()
	if err := skeleton.DrawPNG(f, *scale); err != nil {
		return errors.Wrap(err, "render png")
	}
	return f.Close()
}
