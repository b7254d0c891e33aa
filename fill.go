package isohedral

import (
	"iter"
	"log/slog"
	"math"
)

// Tile describes one placed copy of the prototile inside a filled
// region: its lattice coordinates, its aspect, and the fully composed
// transform carrying the prototile onto its placement. T1 and T2 count
// steps along the tiling's two lattice translation vectors and, with
// Aspect, feed Colour.
type Tile struct {
	T1, T2    int
	Aspect    int
	Transform Matrix
}

// FillRegion returns an iterator over every placed tile whose footprint
// touches the axis-aligned rectangle from (xmin, ymin) to (xmax, ymax).
// Tiles that only partially overlap the rectangle are included.
//
// The sequence is finite, holds no reference to the Tiling's live state,
// and can be ranged over multiple times with identical results.
//
// Example:
//
//	for tile := range tiling.FillRegion(0, 0, 10, 10) {
//	    c := tiling.Colour(tile.T1, tile.T2, tile.Aspect)
//	    draw(tile.Transform, palette[c])
//	}
func (t *Tiling) FillRegion(xmin, ymin, xmax, ymax float64) iter.Seq[Tile] {
	return t.FillRegionQuad(
		Pt(xmin, ymin),
		Pt(xmax, ymin),
		Pt(xmax, ymax),
		Pt(xmin, ymax),
	)
}

// FillRegionQuad is the general form of FillRegion for an arbitrary
// (possibly rotated) quadrilateral region given by its four corners.
// The enumeration covers the quadrilateral's bounding box.
func (t *Tiling) FillRegionQuad(a, b, c, d Point) iter.Seq[Tile] {
	// Snapshot the derived state so later Reset or SetParameters calls
	// do not change an already obtained sequence.
	t1, t2 := t.t1, t.t2
	numAspects := t.data.NumAspects
	aspects := make([]Matrix, numAspects)
	copy(aspects, t.aspects[:numAspects])

	corners := [4]Point{a, b, c, d}
	vxmin, vymin, vxmax, vymax := bounds(corners[:])

	protoMin, protoMax := t.prototileBounds()

	// Lattice basis and its inverse, for expressing the region corners
	// in lattice coordinates.
	basis := Matrix{A: t1.X, B: t2.X, D: t1.Y, E: t2.Y}
	inv := basis.Invert()

	Logger().Debug("isohedral: fill region",
		slog.String("type", t.tilingType.String()),
		slog.Int("aspects", numAspects))

	return func(yield func(Tile) bool) {
		for asp := 0; asp < numAspects; asp++ {
			base := Pt(aspects[asp].C, aspects[asp].F)

			// Integer bounding box of the region corners in lattice
			// coordinates, grown by one cell on every side to catch
			// tiles that straddle the boundary.
			lxmin, lymin := math.Inf(1), math.Inf(1)
			lxmax, lymax := math.Inf(-1), math.Inf(-1)
			for _, p := range corners {
				q := inv.TransformVector(p.Sub(base))
				lxmin = math.Min(lxmin, q.X)
				lxmax = math.Max(lxmax, q.X)
				lymin = math.Min(lymin, q.Y)
				lymax = math.Max(lymax, q.Y)
			}
			n1lo := int(math.Floor(lxmin)) - 1
			n1hi := int(math.Ceil(lxmax)) + 1
			n2lo := int(math.Floor(lymin)) - 1
			n2hi := int(math.Ceil(lymax)) + 1

			for n2 := n2lo; n2 <= n2hi; n2++ {
				for n1 := n1lo; n1 <= n1hi; n1++ {
					tr := t1.Mul(float64(n1)).Add(t2.Mul(float64(n2)))
					m := Translate(tr.X, tr.Y).Multiply(aspects[asp])

					bmin, bmax := transformedBounds(m, protoMin, protoMax)
					if bmax.X < vxmin || bmin.X > vxmax ||
						bmax.Y < vymin || bmin.Y > vymax {
						continue
					}
					tile := Tile{T1: n1, T2: n2, Aspect: asp, Transform: m}
					if !yield(tile) {
						return
					}
				}
			}
		}
	}
}

// prototileBounds returns the axis-aligned bounding box of the
// prototile's vertices.
func (t *Tiling) prototileBounds() (min, max Point) {
	xmin, ymin, xmax, ymax := bounds(t.vertices[:t.data.NumVertices])
	return Pt(xmin, ymin), Pt(xmax, ymax)
}

// bounds returns the axis-aligned bounding box of a point set.
func bounds(pts []Point) (xmin, ymin, xmax, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		xmin = math.Min(xmin, p.X)
		xmax = math.Max(xmax, p.X)
		ymin = math.Min(ymin, p.Y)
		ymax = math.Max(ymax, p.Y)
	}
	return xmin, ymin, xmax, ymax
}

// transformedBounds returns the axis-aligned bounding box of the box
// (min, max) after applying m to its four corners.
func transformedBounds(m Matrix, min, max Point) (Point, Point) {
	corners := [4]Point{
		m.TransformPoint(min),
		m.TransformPoint(Pt(max.X, min.Y)),
		m.TransformPoint(max),
		m.TransformPoint(Pt(min.X, max.Y)),
	}
	xmin, ymin, xmax, ymax := bounds(corners[:])
	return Pt(xmin, ymin), Pt(xmax, ymax)
}
