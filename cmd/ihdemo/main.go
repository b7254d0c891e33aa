// Command ihdemo renders a region of an isohedral tiling to a PNG.
package main

import (
	"flag"
	"log"

	"github.com/gogpu/gg"

	"github.com/gogpu/isohedral"
)

func main() {
	var (
		typeID = flag.Int("type", 0, "tiling type id (0-92)")
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		scale  = flag.Float64("scale", 60, "pixels per tiling unit")
		output = flag.String("output", "tiling.png", "output file")
	)
	flag.Parse()

	tiling, err := isohedral.New(isohedral.TilingType(*typeID))
	if err != nil {
		log.Fatalf("Failed to create tiling: %v", err)
	}

	dc := gg.NewContext(*width, *height)
	dc.ClearWithColor(gg.White)
	dc.SetLineWidth(2)

	palette := [3][3]float64{
		{0.93, 0.41, 0.29},
		{0.98, 0.77, 0.37},
		{0.34, 0.55, 0.62},
	}

	// Fill slightly past the visible area so boundary tiles are drawn.
	w := float64(*width) / *scale
	h := float64(*height) / *scale
	for tile := range tiling.FillRegion(-1, -1, w+1, h+1) {
		outline := tileOutline(tiling, tile)

		c := palette[tiling.Colour(tile.T1, tile.T2, tile.Aspect)]
		dc.SetRGB(c[0], c[1], c[2])
		tracePolygon(dc, outline, *scale)
		if err := dc.FillPreserve(); err != nil {
			log.Fatalf("Failed to fill tile: %v", err)
		}
		dc.SetRGB(0.15, 0.15, 0.15)
		if err := dc.Stroke(); err != nil {
			log.Fatalf("Failed to stroke tile: %v", err)
		}
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save PNG: %v", err)
	}
	log.Printf("Rendered %v to %s (%dx%d)", tiling.TilingType(), *output, *width, *height)
}

// tileOutline walks the prototile's edges under the tile's transform,
// honouring reversal flags, and returns the polygon corners.
func tileOutline(tiling *isohedral.Tiling, tile isohedral.Tile) []isohedral.Point {
	var pts []isohedral.Point
	for s := range tiling.Shapes() {
		m := tile.Transform.Multiply(s.Transform)
		p := m.TransformPoint(isohedral.Pt(0, 0))
		q := m.TransformPoint(isohedral.Pt(1, 0))
		if s.Reversed {
			p, q = q, p
		}
		if len(pts) == 0 {
			pts = append(pts, p)
		}
		pts = append(pts, q)
	}
	return pts
}

func tracePolygon(dc *gg.Context, pts []isohedral.Point, scale float64) {
	for i, p := range pts {
		if i == 0 {
			dc.MoveTo(p.X*scale, p.Y*scale)
		} else {
			dc.LineTo(p.X*scale, p.Y*scale)
		}
	}
	dc.ClosePath()
}
