package isohedral

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/isohedral/internal/tiledata"
)

// NumTilingTypes is the number of isohedral tiling types.
const NumTilingTypes = tiledata.NumTypes

// ErrInvalidTilingType is returned when a tiling type id lies outside
// [0, NumTilingTypes).
var ErrInvalidTilingType = errors.New("isohedral: invalid tiling type")

// TilingType identifies one of the isohedral tiling types.
// Valid values are 0 through NumTilingTypes-1.
type TilingType int

// String returns the conventional "IHnn" display form of the type.
func (tt TilingType) String() string {
	return fmt.Sprintf("IH%02d", int(tt))
}

// Valid reports whether the type id is in range.
func (tt TilingType) Valid() bool {
	return tt >= 0 && tt < NumTilingTypes
}

// Buffer capacities shared by all tiling types. No type uses more than
// 6 parameters or vertices, or more than 12 aspects.
const (
	maxParams   = 6
	maxVertices = 6
	maxAspects  = 12
)

// Tiling generates the geometry of one isohedral tiling: the prototile's
// vertices and edge transforms, the aspect transforms, the two lattice
// translation vectors, and a 3-colouring of the tiled plane.
//
// A Tiling is bound to a TilingType at construction and can be re-bound
// with Reset. Every type change or parameter update recomputes all
// derived geometry synchronously; accessors are pure reads of the last
// recomputed state.
//
// A Tiling is not safe for concurrent mutation and read. Independent
// instances may be used from different goroutines.
type Tiling struct {
	tilingType TilingType
	numParams  int
	parameters [maxParams]float64
	vertices   [maxVertices]Point
	edges      [maxVertices]Matrix
	reversals  [maxVertices]bool
	aspects    [maxAspects]Matrix
	t1, t2     Point
	data       *tiledata.Type
}

// New creates a Tiling for the given tiling type with the type's
// default parameters. It returns ErrInvalidTilingType if the id is out
// of range.
func New(tt TilingType) (*Tiling, error) {
	t := &Tiling{}
	if err := t.Reset(tt); err != nil {
		return nil, err
	}
	return t, nil
}

// Reset re-binds the Tiling to a new tiling type, loads the type's
// default parameters, and recomputes all derived geometry. On error the
// previous state is left untouched.
func (t *Tiling) Reset(tt TilingType) error {
	if !tt.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidTilingType, int(tt))
	}
	data := &tiledata.Types[tt]

	t.tilingType = tt
	t.data = data
	t.numParams = data.NumParams
	t.parameters = [maxParams]float64{}
	copy(t.parameters[:], data.DefaultParams)

	Logger().Debug("isohedral: reset",
		slog.String("type", tt.String()),
		slog.Int("params", t.numParams),
		slog.Int("vertices", data.NumVertices),
		slog.Int("aspects", data.NumAspects))

	t.recompute()
	return nil
}

// TilingType returns the tiling type this instance is bound to.
func (t *Tiling) TilingType() TilingType {
	return t.tilingType
}

// NumParams returns the number of parameters that affect the shape of
// the prototile. Some tiling types have none (the prototile is a fixed
// shape), others have up to 6.
func (t *Tiling) NumParams() int {
	return t.numParams
}

// Parameters returns the full parameter buffer. Only the first
// NumParams entries are meaningful.
func (t *Tiling) Parameters() [maxParams]float64 {
	return t.parameters
}

// SetParameters replaces the parameter buffer and recomputes all
// derived geometry. Only the first NumParams entries are used. Values
// outside a type's nominal [0,1] domain are accepted and may produce
// degenerate or self-intersecting prototiles.
func (t *Tiling) SetParameters(params [maxParams]float64) {
	t.parameters = params
	t.recompute()
}

// NumVertices returns the number of vertices of the prototile polygon.
func (t *Tiling) NumVertices() int {
	return t.data.NumVertices
}

// Vertex returns the prototile vertex at idx.
// Valid indices are 0 through NumVertices-1.
func (t *Tiling) Vertex(idx int) Point {
	return t.vertices[idx]
}

// Vertices returns a copy of the prototile's vertices in winding order.
func (t *Tiling) Vertices() []Point {
	out := make([]Point, t.data.NumVertices)
	copy(out, t.vertices[:])
	return out
}

// NumEdgeShapes returns the number of distinct edge shapes of the
// prototile. Edges glued to each other share a shape, so this can be
// smaller than the edge count.
func (t *Tiling) NumEdgeShapes() int {
	return t.data.NumEdgeShapes
}

// EdgeShape returns the shape class of the distinct edge shape id.
// Valid ids are 0 through NumEdgeShapes-1.
func (t *Tiling) EdgeShape(id int) EdgeShape {
	return EdgeShape(t.data.EdgeShapes[id])
}

// NumAspects returns the number of aspects of the tiling: the distinct
// ways the prototile appears in the plane up to lattice translation.
func (t *Tiling) NumAspects() int {
	return t.data.NumAspects
}

// AspectTransform returns the transform of the aspect at idx.
// Valid indices are 0 through NumAspects-1.
func (t *Tiling) AspectTransform(idx int) Matrix {
	return t.aspects[idx]
}

// T1 returns the first lattice translation vector.
func (t *Tiling) T1() Point {
	return t.t1
}

// T2 returns the second lattice translation vector.
func (t *Tiling) T2() Point {
	return t.t2
}

// Colour computes the colour index of the tile at lattice position
// (n1, n2) in the given aspect. The result is 0, 1 or 2. The lattice
// coordinates and aspect of a placed tile are reported by FillRegion.
func (t *Tiling) Colour(n1, n2, aspect int) int {
	nc := int(t.data.Colouring[18])

	mt1 := n1 % nc
	if mt1 < 0 {
		mt1 += nc
	}
	mt2 := n2 % nc
	if mt2 < 0 {
		mt2 += nc
	}
	col := t.data.Colouring[aspect]

	for i := 0; i < mt1; i++ {
		col = t.data.Colouring[12+int(col)]
	}
	for i := 0; i < mt2; i++ {
		col = t.data.Colouring[15+int(col)]
	}
	return int(col)
}

// recompute derives all geometry from the bound type and the active
// parameters: vertices, edge transforms with reversal flags, aspect
// transforms, and the lattice translation vectors. Every quantity is
// evaluated with the same coefficient-row scheme, so the four outputs
// share one arithmetic definition.
func (t *Tiling) recompute() {
	np := t.numParams
	ntv := t.data.NumVertices

	// Vertex positions.
	data := t.data.VertexCoeffs
	for idx := 0; idx < ntv; idx++ {
		t.vertices[idx] = t.evalPoint(data)
		data = data[2*(np+1):]
	}

	// Edge transforms and reversal flags from the orientation table.
	for idx := 0; idx < ntv; idx++ {
		fl := t.data.EdgeOrientations[2*idx]
		ro := t.data.EdgeOrientations[2*idx+1]
		t.reversals[idx] = fl != ro
		m := matchSegment(t.vertices[idx], t.vertices[(idx+1)%ntv])
		t.edges[idx] = m.Multiply(orientations[2*b2i(fl)+b2i(ro)])
	}

	// Aspect transforms.
	data = t.data.AspectCoeffs
	for idx := 0; idx < t.data.NumAspects; idx++ {
		t.aspects[idx] = t.evalMatrix(data)
		data = data[6*(np+1):]
	}

	// Lattice translation vectors.
	data = t.data.TranslationCoeffs
	t.t1 = t.evalPoint(data)
	t.t2 = t.evalPoint(data[2*(np+1):])
}

// evalRow evaluates one coefficient row as an affine combination of the
// active parameters: sum of coeffs[i]*param[i] plus the trailing
// constant term at coeffs[numParams].
func (t *Tiling) evalRow(coeffs []float64) float64 {
	total := 0.0
	for i := 0; i < t.numParams; i++ {
		total += coeffs[i] * t.parameters[i]
	}
	return total + coeffs[t.numParams]
}

// evalPoint evaluates two consecutive coefficient rows as a point.
func (t *Tiling) evalPoint(coeffs []float64) Point {
	w := t.numParams + 1
	return Point{
		X: t.evalRow(coeffs),
		Y: t.evalRow(coeffs[w:]),
	}
}

// evalMatrix evaluates six consecutive coefficient rows as an affine
// matrix, in the row-major order a, b, c, d, e, f.
func (t *Tiling) evalMatrix(coeffs []float64) Matrix {
	w := t.numParams + 1
	return Matrix{
		A: t.evalRow(coeffs),
		B: t.evalRow(coeffs[w:]),
		C: t.evalRow(coeffs[2*w:]),
		D: t.evalRow(coeffs[3*w:]),
		E: t.evalRow(coeffs[4*w:]),
		F: t.evalRow(coeffs[5*w:]),
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
