// Package tiledata holds the static catalogue describing the isohedral
// tiling types. Each entry packs the combinatorial structure of one type
// (vertex, aspect and translation coefficient rows, edge classification
// and orientation flags, and the 3-colouring recurrence) in the fixed
// layout the engine slices into.
//
// The catalogue is plain package data, immutable after load; the engine
// never mutates or validates it.
package tiledata

// NumTypes is the number of tiling types in the catalogue.
const NumTypes = 93

// Edge shape codes used in Type.EdgeShapes. They mirror the public
// EdgeShape constants in the root package.
const (
	ShapeJ uint8 = iota
	ShapeU
	ShapeS
	ShapeI
)

// Type describes one tiling type. The coefficient slices hold rows of
// width NumParams+1: each row is evaluated as an affine combination of
// the active parameters plus a trailing constant term.
//
// Row layout:
//   - VertexCoeffs: two rows (x, y) per vertex, NumVertices vertices.
//   - TranslationCoeffs: two rows per translation vector, t1 then t2.
//   - AspectCoeffs: six rows per aspect, in the order a, b, c, d, e, f
//     of the affine matrix | a b c / d e f |.
//
// EdgeOrientations stores two flags per edge: flip across the edge, and
// reverse along it. Colouring packs 12 per-aspect seed colours, the
// n1-step map at offset 12, the n2-step map at offset 15, and the
// translational modulus at offset 18.
type Type struct {
	NumParams     int
	NumAspects    int
	NumVertices   int
	NumEdgeShapes int

	EdgeShapes       []uint8
	EdgeShapeIDs     []uint8
	EdgeOrientations []bool
	DefaultParams    []float64

	VertexCoeffs      []float64
	TranslationCoeffs []float64
	AspectCoeffs      []float64

	Colouring [19]uint8
}
