package isohedral

import "iter"

// Shape describes one edge of the prototile outline.
//
// Transform carries the canonical unit segment from (0,0) to (1,0) onto
// the edge's placement on the prototile boundary. ID names the distinct
// edge shape this edge uses; edges glued to each other share an ID, so a
// caller can draw one polyline per ID and reuse it. Reversed reports
// that the canonical direction runs against the polygon winding: when
// concatenating transformed edge endpoints into an outline, walk this
// edge backwards.
type Shape struct {
	Transform Matrix
	ID        int
	Shape     EdgeShape
	Reversed  bool
}

// ShapePart describes one symmetry-constrained half of an edge, or a
// whole edge when its shape class has no constrained half.
//
// For U and S edges the caller draws only the first half of the edge
// shape; the part transforms place that half twice, with Second marking
// the mirrored or rotated copy. J and I edges yield a single whole part.
type ShapePart struct {
	Transform Matrix
	ID        int
	Shape     EdgeShape
	Reversed  bool
	Second    bool
}

// Shapes returns an iterator over the prototile's edges in polygon
// winding order.
//
// Example:
//
//	for s := range tiling.Shapes() {
//	    a := s.Transform.TransformPoint(isohedral.Pt(0, 0))
//	    b := s.Transform.TransformPoint(isohedral.Pt(1, 0))
//	    // a and b are the edge endpoints, swapped when s.Reversed.
//	}
func (t *Tiling) Shapes() iter.Seq[Shape] {
	return func(yield func(Shape) bool) {
		for idx := 0; idx < t.data.NumVertices; idx++ {
			id := int(t.data.EdgeShapeIDs[idx])
			s := Shape{
				Transform: t.edges[idx],
				ID:        id,
				Shape:     EdgeShape(t.data.EdgeShapes[id]),
				Reversed:  t.reversals[idx],
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Parts returns an iterator over the prototile's edges with U and S
// edges split into their two symmetric halves. The sequence is in
// polygon winding order, halves in drawing order along each edge.
func (t *Tiling) Parts() iter.Seq[ShapePart] {
	return func(yield func(ShapePart) bool) {
		for idx := 0; idx < t.data.NumVertices; idx++ {
			id := int(t.data.EdgeShapeIDs[idx])
			shp := EdgeShape(t.data.EdgeShapes[id])

			if shp == EdgeShapeJ || shp == EdgeShapeI {
				p := ShapePart{
					Transform: t.edges[idx],
					ID:        id,
					Shape:     shp,
					Reversed:  t.reversals[idx],
				}
				if !yield(p) {
					return
				}
				continue
			}

			halves := &halfU
			if shp == EdgeShapeS {
				halves = &halfS
			}
			first, second := 0, 1
			if t.reversals[idx] {
				first, second = 1, 0
			}
			p := ShapePart{
				Transform: t.edges[idx].Multiply(halves[first]),
				ID:        id,
				Shape:     shp,
			}
			if !yield(p) {
				return
			}
			p = ShapePart{
				Transform: t.edges[idx].Multiply(halves[second]),
				ID:        id,
				Shape:     shp,
				Reversed:  true,
				Second:    true,
			}
			if !yield(p) {
				return
			}
		}
	}
}
