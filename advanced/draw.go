package advanced

import (
	"io"
	"math"

	"github.com/fogleman/gg"
)

const drawPadding = 20

// Render draws the skeleton from above: the footprint filled, the input edges
// in cyan, interior edges shaded from dark (low) to bright (high) and the
// skeleton vertices as dots. One footprint unit becomes `scale` pixels.
func (sk *Skeleton) Render(scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	var top float64
	for _, p := range sk.Vertices {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
		top = math.Max(top, p.Z)
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, contour := range sk.Contours {
		first := sk.Vertices[contour[0]]
		c.MoveTo(first.X, first.Y)
		for _, id := range contour[1:] {
			c.LineTo(sk.Vertices[id].X, sk.Vertices[id].Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.3, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(2 / scale)
	c.Stroke()

	for i := range sk.InteriorEdges() {
		a, b := sk.Segment(EdgeID(sk.BoundaryCount + i))
		shade := 0.4
		if top > 0 {
			shade += 0.6 * (a.Z + b.Z) / (2 * top)
		}
		c.SetRGB(shade, shade, 0)
		c.DrawLine(a.X, a.Y, b.X, b.Y)
		c.Stroke()
	}

	c.SetRGB(1, 0.3, 0.3)
	for _, p := range sk.Vertices[sk.BoundaryCount:] {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}
	return c
}

// DrawPNG renders the skeleton and writes it to w as a PNG.
func (sk *Skeleton) DrawPNG(w io.Writer, scale float64) error {
	return sk.Render(scale).EncodePNG(w)
}
