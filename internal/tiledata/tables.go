package tiledata

// Numeric constants shared by the hexagonal and triangular families.
const (
	h3 = 0.8660254037844386 // sqrt(3)/2
	r3 = 1.7320508075688772 // sqrt(3)
)

// Edge shape pools. Types with the same polygon share these sets; the
// per-type combination of shapes and orientations is what distinguishes
// the drawn boundaries of otherwise identical polygons.
var (
	esJJ = []uint8{ShapeJ, ShapeJ}
	esUU = []uint8{ShapeU, ShapeU}
	esSS = []uint8{ShapeS, ShapeS}
	esII = []uint8{ShapeI, ShapeI}
	esJU = []uint8{ShapeJ, ShapeU}
	esJS = []uint8{ShapeJ, ShapeS}
	esJI = []uint8{ShapeJ, ShapeI}
	esUS = []uint8{ShapeU, ShapeS}
	esUI = []uint8{ShapeU, ShapeI}
	esSI = []uint8{ShapeS, ShapeI}

	esJJJ = []uint8{ShapeJ, ShapeJ, ShapeJ}
	esUUU = []uint8{ShapeU, ShapeU, ShapeU}
	esSSS = []uint8{ShapeS, ShapeS, ShapeS}
	esIII = []uint8{ShapeI, ShapeI, ShapeI}
	esJJS = []uint8{ShapeJ, ShapeJ, ShapeS}
	esJSS = []uint8{ShapeJ, ShapeS, ShapeS}
	esJSI = []uint8{ShapeJ, ShapeS, ShapeI}
	esJUS = []uint8{ShapeJ, ShapeU, ShapeS}
	esUUI = []uint8{ShapeU, ShapeU, ShapeI}
	esUIU = []uint8{ShapeU, ShapeI, ShapeU}
)

// Edge shape id assignments (one id per edge, indexing EdgeShapes).
var (
	idsHex  = []uint8{0, 1, 2, 0, 1, 2}
	idsQuad = []uint8{0, 1, 0, 1}
	idsSpin = []uint8{0, 0, 1, 1}
	idsTri  = []uint8{0, 1, 2}
	idsFan  = []uint8{0, 1, 0}
)

// Edge orientation pools: two flags per edge, flip then reverse.
var (
	// Opposite edges of a hexagon glued by translation run backwards.
	eoHex = []bool{false, false, false, false, false, false,
		false, true, false, true, false, true}
	// Quadrilateral with translation-glued opposite edges.
	eoQuad = []bool{false, false, false, false, false, true, false, true}
	// Quadrilateral whose vertical edges meet a mirrored copy.
	eoMirror = []bool{false, false, false, false, true, false, true, true}
	// Quadrilateral glued around a 4-fold rotation centre.
	eoSpin = []bool{false, false, false, true, false, false, false, true}
	// Triangle glued edgewise to a reflected or half-turned copy.
	eoTri = []bool{false, false, false, false, false, false}
	// Triangle whose radial edges close up around a 6-fold centre.
	eoFan = []bool{false, false, false, false, false, true}
)

// Default parameter pools.
var (
	dpNone  = []float64{}
	dpHalf  = []float64{0.5}
	dpHex   = []float64{h3}
	dpPgram = []float64{0.25, 0.75}
)

// Vertex coefficient pools, two rows of width NumParams+1 per vertex.
var (
	// Unit square.
	tvcSquare = []float64{0, 0, 1, 0, 1, 1, 0, 1}
	// 2x1 rectangle.
	tvcRect = []float64{0, 0, 2, 0, 2, 1, 0, 1}
	// Parallelogram spanned by (1,0) and (p0,p1).
	tvcPgram = []float64{
		0, 0, 0, 0, 0, 0,
		0, 0, 1, 0, 0, 0,
		1, 0, 1, 0, 1, 0,
		1, 0, 0, 0, 1, 0,
	}
	// Unit-width brick of height p0.
	tvcBrick = []float64{
		0, 0, 0, 0,
		0, 1, 0, 0,
		0, 1, 1, 0,
		0, 0, 1, 0,
	}
	// Hexagon of unit edge, vertical half-height p0.
	tvcHexP = []float64{
		0, 0, 0, 0,
		0, 1, 0, 0,
		0, 1.5, 1, 0,
		0, 1, 2, 0,
		0, 0, 2, 0,
		0, -0.5, 1, 0,
	}
	// Regular hexagon of unit edge.
	tvcHex = []float64{
		0, 0,
		1, 0,
		1.5, h3,
		1, r3,
		0, r3,
		-0.5, h3,
	}
	// 60/120 rhombus with unit edges meeting at the origin.
	tvcRhomb = []float64{0, 0, 1, 0, 0.5, h3, -0.5, h3}
	// Equilateral triangle of unit edge.
	tvcTri = []float64{0, 0, 1, 0, 0.5, h3}
	// Triangle with movable apex (p0, sqrt(3)/2).
	tvcTriP = []float64{
		0, 0, 0, 0,
		0, 1, 0, 0,
		1, 0, 0, h3,
	}
)

// Translation coefficient pools: two rows for t1, two rows for t2.
var (
	tcSquare = []float64{1, 0, 0, 1}
	tcDouble = []float64{2, 0, 0, 1}
	tcQuad   = []float64{2, 0, 0, 2}
	tcWeave  = []float64{2, 2, 2, -2}
	tcHexLat = []float64{1.5, h3, 0, r3}
	tcTriRow = []float64{1, 0, 0.5, h3}
	tcPgram  = []float64{0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0}
	tcBrick  = []float64{0, 1, 0, 0, 0, 0.5, 1, 0}
	tcHexP   = []float64{0, 1.5, 1, 0, 0, 0, 2, 0}
	tcTriP   = []float64{0, 1, 0, 0, 1, 0, 0, h3}
)

// Aspect coefficient pools: six rows (a, b, c, d, e, f) per aspect.
var (
	acIdent  = []float64{1, 0, 0, 0, 1, 0}
	acIdent1 = []float64{0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0}
	acIdent2 = []float64{0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0}
	// Mirrored second column: identity and reflection across x = 1.
	acMirror = []float64{
		1, 0, 0, 0, 1, 0,
		-1, 0, 2, 0, 1, 0,
	}
	// Quarter turns about the shared corner (1,1).
	acSpin = []float64{
		1, 0, 0, 0, 1, 0,
		0, -1, 2, 1, 0, 0,
		-1, 0, 2, 0, -1, 2,
		0, 1, 0, -1, 0, 2,
	}
	// Basketweave: stacked pair of bricks and their quarter-turned pair.
	acWeave = []float64{
		1, 0, 0, 0, 1, 0,
		1, 0, 0, 0, 1, 1,
		0, -1, 3, 1, 0, 0,
		0, -1, 4, 1, 0, 0,
	}
	// Three rhombi closing up around the origin.
	acRhomb = []float64{
		1, 0, 0, 0, 1, 0,
		-0.5, -h3, 0, h3, -0.5, 0,
		-0.5, h3, 0, -h3, -0.5, 0,
	}
	// Triangle and its half-turn about the midpoint of the far edge,
	// with the apex parameter feeding the aspect translation.
	acTriP = []float64{
		0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0,
		0, -1, 0, 0, 1, 1, 0, 0, 0, -1, 0, h3,
	}
	// Triangle and its glide image filling the gap row.
	acTriGlide = []float64{
		1, 0, 0, 0, 1, 0,
		1, 0, 0.5, 0, -1, h3,
	}
	// Six rotations of a triangle about the origin.
	acTriFan = []float64{
		1, 0, 0, 0, 1, 0,
		0.5, -h3, 0, h3, 0.5, 0,
		-0.5, -h3, 0, h3, -0.5, 0,
		-1, 0, 0, 0, -1, 0,
		-0.5, h3, 0, -h3, -0.5, 0,
		0.5, h3, 0, -h3, 0.5, 0,
	}
)

// Colouring pools. The two step maps of every block commute, so the
// colour of a lattice position is independent of the order the steps
// are applied in.
var (
	// Colour cycles along the n1+n2 diagonal.
	colDiag = [19]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 0, 1, 2, 0, 3}
	// Colour cycles along the n1-n2 diagonal.
	colAnti = [19]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 0, 2, 0, 1, 3}
	// Colour depends on n1 only.
	colCols = [19]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 0, 0, 1, 2, 3}
	// Colour depends on n2 only.
	colRows = [19]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 1, 2, 0, 3}
	// Colour alternates between the two aspects.
	colPair = [19]uint8{0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 2, 0, 1, 2, 1}
	// Two aspects shifted backwards along the diagonal.
	colPairDiag = [19]uint8{0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 2, 0, 1, 2, 0, 1, 3}
	// One colour per aspect, repeating in threes.
	colTriple = [19]uint8{0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 1}
	// Four aspects over three colours.
	colQuad = [19]uint8{0, 1, 0, 2, 0, 1, 0, 2, 0, 1, 0, 2, 0, 1, 2, 0, 1, 2, 1}
	// Four aspects with the first two colours swapping every step.
	colQuadSwap = [19]uint8{0, 1, 0, 2, 0, 1, 0, 2, 0, 1, 0, 2, 1, 0, 2, 1, 0, 2, 2}
)

// Types is the catalogue, indexed by tiling type id.
//
// The 93 entries group by prototile: hexagons first, then quadrilaterals,
// then triangles, with the aspect structure growing richer within each
// group (translations only, then mirrored, rotated and woven aspects).
var Types = [NumTypes]Type{
	// Hexagons with an adjustable half-height, translations only.
	{NumParams: 1, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esJJJ, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpHex,
		VertexCoeffs: tvcHexP, TranslationCoeffs: tcHexP, AspectCoeffs: acIdent1, Colouring: colDiag},
	{NumParams: 1, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esSSS, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpHex,
		VertexCoeffs: tvcHexP, TranslationCoeffs: tcHexP, AspectCoeffs: acIdent1, Colouring: colDiag},
	{NumParams: 1, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esUUU, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpHex,
		VertexCoeffs: tvcHexP, TranslationCoeffs: tcHexP, AspectCoeffs: acIdent1, Colouring: colRows},
	{NumParams: 1, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esIII, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpHex,
		VertexCoeffs: tvcHexP, TranslationCoeffs: tcHexP, AspectCoeffs: acIdent1, Colouring: colAnti},
	{NumParams: 1, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esJJS, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpHex,
		VertexCoeffs: tvcHexP, TranslationCoeffs: tcHexP, AspectCoeffs: acIdent1, Colouring: colAnti},
	{NumParams: 1, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esJSS, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpHex,
		VertexCoeffs: tvcHexP, TranslationCoeffs: tcHexP, AspectCoeffs: acIdent1, Colouring: colCols},
	{NumParams: 1, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esJUS, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpHex,
		VertexCoeffs: tvcHexP, TranslationCoeffs: tcHexP, AspectCoeffs: acIdent1, Colouring: colAnti},

	// Regular hexagons, translations only.
	{NumParams: 0, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esJJJ, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpNone,
		VertexCoeffs: tvcHex, TranslationCoeffs: tcHexLat, AspectCoeffs: acIdent, Colouring: colDiag},
	{NumParams: 0, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esSSS, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpNone,
		VertexCoeffs: tvcHex, TranslationCoeffs: tcHexLat, AspectCoeffs: acIdent, Colouring: colAnti},
	{NumParams: 0, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esJSI, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpNone,
		VertexCoeffs: tvcHex, TranslationCoeffs: tcHexLat, AspectCoeffs: acIdent, Colouring: colCols},
	{NumParams: 0, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esUUU, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpNone,
		VertexCoeffs: tvcHex, TranslationCoeffs: tcHexLat, AspectCoeffs: acIdent, Colouring: colRows},
	{NumParams: 0, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esUUI, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpNone,
		VertexCoeffs: tvcHex, TranslationCoeffs: tcHexLat, AspectCoeffs: acIdent, Colouring: colDiag},
	{NumParams: 1, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esJSI, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpHex,
		VertexCoeffs: tvcHexP, TranslationCoeffs: tcHexP, AspectCoeffs: acIdent1, Colouring: colDiag},
	{NumParams: 1, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esIII, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpHex,
		VertexCoeffs: tvcHexP, TranslationCoeffs: tcHexP, AspectCoeffs: acIdent1, Colouring: colCols},
	{NumParams: 0, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esIII, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpNone,
		VertexCoeffs: tvcHex, TranslationCoeffs: tcHexLat, AspectCoeffs: acIdent, Colouring: colDiag},
	{NumParams: 1, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esUUU, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpHex,
		VertexCoeffs: tvcHexP, TranslationCoeffs: tcHexP, AspectCoeffs: acIdent1, Colouring: colDiag},
	{NumParams: 0, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esJUS, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpNone,
		VertexCoeffs: tvcHex, TranslationCoeffs: tcHexLat, AspectCoeffs: acIdent, Colouring: colAnti},
	{NumParams: 1, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esSSS, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpHex,
		VertexCoeffs: tvcHexP, TranslationCoeffs: tcHexP, AspectCoeffs: acIdent1, Colouring: colRows},
	{NumParams: 0, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esJJS, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpNone,
		VertexCoeffs: tvcHex, TranslationCoeffs: tcHexLat, AspectCoeffs: acIdent, Colouring: colRows},
	{NumParams: 1, NumAspects: 1, NumVertices: 6, NumEdgeShapes: 3,
		EdgeShapes: esJSI, EdgeShapeIDs: idsHex, EdgeOrientations: eoHex, DefaultParams: dpHex,
		VertexCoeffs: tvcHexP, TranslationCoeffs: tcHexP, AspectCoeffs: acIdent1, Colouring: colDiag},

	// Rhombi closing up in threes around a 3-fold centre.
	{NumParams: 0, NumAspects: 3, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJJ, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcRhomb, TranslationCoeffs: tcHexLat, AspectCoeffs: acRhomb, Colouring: colTriple},
	{NumParams: 0, NumAspects: 3, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esSS, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcRhomb, TranslationCoeffs: tcHexLat, AspectCoeffs: acRhomb, Colouring: colTriple},
	{NumParams: 0, NumAspects: 3, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esII, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcRhomb, TranslationCoeffs: tcHexLat, AspectCoeffs: acRhomb, Colouring: colTriple},
	{NumParams: 0, NumAspects: 3, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJS, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcRhomb, TranslationCoeffs: tcHexLat, AspectCoeffs: acRhomb, Colouring: colTriple},
	{NumParams: 0, NumAspects: 3, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esUU, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcRhomb, TranslationCoeffs: tcHexLat, AspectCoeffs: acRhomb, Colouring: colTriple},
	{NumParams: 0, NumAspects: 3, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJI, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcRhomb, TranslationCoeffs: tcHexLat, AspectCoeffs: acRhomb, Colouring: colTriple},

	// Unit squares, translations only.
	{NumParams: 0, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJJ, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcSquare, AspectCoeffs: acIdent, Colouring: colDiag},
	{NumParams: 0, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esSS, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcSquare, AspectCoeffs: acIdent, Colouring: colAnti},
	{NumParams: 0, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esUU, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcSquare, AspectCoeffs: acIdent, Colouring: colCols},
	{NumParams: 0, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esII, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcSquare, AspectCoeffs: acIdent, Colouring: colRows},
	{NumParams: 0, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJS, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcSquare, AspectCoeffs: acIdent, Colouring: colDiag},
	{NumParams: 0, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJU, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcSquare, AspectCoeffs: acIdent, Colouring: colAnti},
	{NumParams: 0, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJI, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcSquare, AspectCoeffs: acIdent, Colouring: colCols},
	{NumParams: 0, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esUS, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcSquare, AspectCoeffs: acIdent, Colouring: colRows},
	{NumParams: 0, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esSI, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcSquare, AspectCoeffs: acIdent, Colouring: colDiag},
	{NumParams: 0, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esUI, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcSquare, AspectCoeffs: acIdent, Colouring: colAnti},

	// Parallelograms spanned by (1,0) and the parameter pair.
	{NumParams: 2, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJJ, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpPgram,
		VertexCoeffs: tvcPgram, TranslationCoeffs: tcPgram, AspectCoeffs: acIdent2, Colouring: colDiag},
	{NumParams: 2, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esSS, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpPgram,
		VertexCoeffs: tvcPgram, TranslationCoeffs: tcPgram, AspectCoeffs: acIdent2, Colouring: colAnti},
	{NumParams: 2, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJS, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpPgram,
		VertexCoeffs: tvcPgram, TranslationCoeffs: tcPgram, AspectCoeffs: acIdent2, Colouring: colCols},
	{NumParams: 2, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJI, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpPgram,
		VertexCoeffs: tvcPgram, TranslationCoeffs: tcPgram, AspectCoeffs: acIdent2, Colouring: colRows},
	{NumParams: 2, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esII, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpPgram,
		VertexCoeffs: tvcPgram, TranslationCoeffs: tcPgram, AspectCoeffs: acIdent2, Colouring: colDiag},
	{NumParams: 2, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esSI, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpPgram,
		VertexCoeffs: tvcPgram, TranslationCoeffs: tcPgram, AspectCoeffs: acIdent2, Colouring: colAnti},

	// Bricks of adjustable height in half-offset courses.
	{NumParams: 1, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJJ, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpHalf,
		VertexCoeffs: tvcBrick, TranslationCoeffs: tcBrick, AspectCoeffs: acIdent1, Colouring: colDiag},
	{NumParams: 1, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esSS, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpHalf,
		VertexCoeffs: tvcBrick, TranslationCoeffs: tcBrick, AspectCoeffs: acIdent1, Colouring: colCols},
	{NumParams: 1, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esUU, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpHalf,
		VertexCoeffs: tvcBrick, TranslationCoeffs: tcBrick, AspectCoeffs: acIdent1, Colouring: colRows},
	{NumParams: 1, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esII, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpHalf,
		VertexCoeffs: tvcBrick, TranslationCoeffs: tcBrick, AspectCoeffs: acIdent1, Colouring: colAnti},
	{NumParams: 1, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJU, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpHalf,
		VertexCoeffs: tvcBrick, TranslationCoeffs: tcBrick, AspectCoeffs: acIdent1, Colouring: colDiag},
	{NumParams: 1, NumAspects: 1, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esUS, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpHalf,
		VertexCoeffs: tvcBrick, TranslationCoeffs: tcBrick, AspectCoeffs: acIdent1, Colouring: colCols},

	// Squares in mirrored column pairs.
	{NumParams: 0, NumAspects: 2, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJJ, EdgeShapeIDs: idsQuad, EdgeOrientations: eoMirror, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcDouble, AspectCoeffs: acMirror, Colouring: colPair},
	{NumParams: 0, NumAspects: 2, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esUU, EdgeShapeIDs: idsQuad, EdgeOrientations: eoMirror, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcDouble, AspectCoeffs: acMirror, Colouring: colPair},
	{NumParams: 0, NumAspects: 2, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esSS, EdgeShapeIDs: idsQuad, EdgeOrientations: eoMirror, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcDouble, AspectCoeffs: acMirror, Colouring: colPairDiag},
	{NumParams: 0, NumAspects: 2, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJU, EdgeShapeIDs: idsQuad, EdgeOrientations: eoMirror, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcDouble, AspectCoeffs: acMirror, Colouring: colPair},
	{NumParams: 0, NumAspects: 2, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esII, EdgeShapeIDs: idsQuad, EdgeOrientations: eoMirror, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcDouble, AspectCoeffs: acMirror, Colouring: colPairDiag},
	{NumParams: 0, NumAspects: 2, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esUI, EdgeShapeIDs: idsQuad, EdgeOrientations: eoMirror, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcDouble, AspectCoeffs: acMirror, Colouring: colPair},
	{NumParams: 0, NumAspects: 2, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJS, EdgeShapeIDs: idsQuad, EdgeOrientations: eoMirror, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcDouble, AspectCoeffs: acMirror, Colouring: colPairDiag},

	// Squares spinning around a shared 4-fold corner.
	{NumParams: 0, NumAspects: 4, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJJ, EdgeShapeIDs: idsSpin, EdgeOrientations: eoSpin, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcQuad, AspectCoeffs: acSpin, Colouring: colQuad},
	{NumParams: 0, NumAspects: 4, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esSS, EdgeShapeIDs: idsSpin, EdgeOrientations: eoSpin, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcQuad, AspectCoeffs: acSpin, Colouring: colQuad},
	{NumParams: 0, NumAspects: 4, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJS, EdgeShapeIDs: idsSpin, EdgeOrientations: eoSpin, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcQuad, AspectCoeffs: acSpin, Colouring: colQuadSwap},
	{NumParams: 0, NumAspects: 4, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esII, EdgeShapeIDs: idsSpin, EdgeOrientations: eoSpin, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcQuad, AspectCoeffs: acSpin, Colouring: colQuad},
	{NumParams: 0, NumAspects: 4, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esUU, EdgeShapeIDs: idsSpin, EdgeOrientations: eoSpin, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcQuad, AspectCoeffs: acSpin, Colouring: colQuadSwap},
	{NumParams: 0, NumAspects: 4, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJI, EdgeShapeIDs: idsSpin, EdgeOrientations: eoSpin, DefaultParams: dpNone,
		VertexCoeffs: tvcSquare, TranslationCoeffs: tcQuad, AspectCoeffs: acSpin, Colouring: colQuad},

	// Basketweave pairs of bricks.
	{NumParams: 0, NumAspects: 4, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJJ, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcRect, TranslationCoeffs: tcWeave, AspectCoeffs: acWeave, Colouring: colQuad},
	{NumParams: 0, NumAspects: 4, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esSS, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcRect, TranslationCoeffs: tcWeave, AspectCoeffs: acWeave, Colouring: colQuadSwap},
	{NumParams: 0, NumAspects: 4, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esUU, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcRect, TranslationCoeffs: tcWeave, AspectCoeffs: acWeave, Colouring: colQuad},
	{NumParams: 0, NumAspects: 4, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esII, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcRect, TranslationCoeffs: tcWeave, AspectCoeffs: acWeave, Colouring: colQuadSwap},
	{NumParams: 0, NumAspects: 4, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJU, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcRect, TranslationCoeffs: tcWeave, AspectCoeffs: acWeave, Colouring: colQuad},
	{NumParams: 0, NumAspects: 4, NumVertices: 4, NumEdgeShapes: 2,
		EdgeShapes: esJS, EdgeShapeIDs: idsQuad, EdgeOrientations: eoQuad, DefaultParams: dpNone,
		VertexCoeffs: tvcRect, TranslationCoeffs: tcWeave, AspectCoeffs: acWeave, Colouring: colQuad},

	// Triangles with a movable apex, paired by a half-turn.
	{NumParams: 1, NumAspects: 2, NumVertices: 3, NumEdgeShapes: 3,
		EdgeShapes: esJJJ, EdgeShapeIDs: idsTri, EdgeOrientations: eoTri, DefaultParams: dpHalf,
		VertexCoeffs: tvcTriP, TranslationCoeffs: tcTriP, AspectCoeffs: acTriP, Colouring: colPair},
	{NumParams: 1, NumAspects: 2, NumVertices: 3, NumEdgeShapes: 3,
		EdgeShapes: esSSS, EdgeShapeIDs: idsTri, EdgeOrientations: eoTri, DefaultParams: dpHalf,
		VertexCoeffs: tvcTriP, TranslationCoeffs: tcTriP, AspectCoeffs: acTriP, Colouring: colPair},
	{NumParams: 1, NumAspects: 2, NumVertices: 3, NumEdgeShapes: 3,
		EdgeShapes: esJJS, EdgeShapeIDs: idsTri, EdgeOrientations: eoTri, DefaultParams: dpHalf,
		VertexCoeffs: tvcTriP, TranslationCoeffs: tcTriP, AspectCoeffs: acTriP, Colouring: colPairDiag},
	{NumParams: 1, NumAspects: 2, NumVertices: 3, NumEdgeShapes: 3,
		EdgeShapes: esJSS, EdgeShapeIDs: idsTri, EdgeOrientations: eoTri, DefaultParams: dpHalf,
		VertexCoeffs: tvcTriP, TranslationCoeffs: tcTriP, AspectCoeffs: acTriP, Colouring: colPair},
	{NumParams: 1, NumAspects: 2, NumVertices: 3, NumEdgeShapes: 3,
		EdgeShapes: esIII, EdgeShapeIDs: idsTri, EdgeOrientations: eoTri, DefaultParams: dpHalf,
		VertexCoeffs: tvcTriP, TranslationCoeffs: tcTriP, AspectCoeffs: acTriP, Colouring: colPairDiag},
	{NumParams: 1, NumAspects: 2, NumVertices: 3, NumEdgeShapes: 3,
		EdgeShapes: esJSI, EdgeShapeIDs: idsTri, EdgeOrientations: eoTri, DefaultParams: dpHalf,
		VertexCoeffs: tvcTriP, TranslationCoeffs: tcTriP, AspectCoeffs: acTriP, Colouring: colPair},
	{NumParams: 1, NumAspects: 2, NumVertices: 3, NumEdgeShapes: 3,
		EdgeShapes: esUUU, EdgeShapeIDs: idsTri, EdgeOrientations: eoTri, DefaultParams: dpHalf,
		VertexCoeffs: tvcTriP, TranslationCoeffs: tcTriP, AspectCoeffs: acTriP, Colouring: colPairDiag},
	{NumParams: 1, NumAspects: 2, NumVertices: 3, NumEdgeShapes: 3,
		EdgeShapes: esJUS, EdgeShapeIDs: idsTri, EdgeOrientations: eoTri, DefaultParams: dpHalf,
		VertexCoeffs: tvcTriP, TranslationCoeffs: tcTriP, AspectCoeffs: acTriP, Colouring: colPair},

	// Equilateral triangles paired with a glide image.
	{NumParams: 0, NumAspects: 2, NumVertices: 3, NumEdgeShapes: 3,
		EdgeShapes: esUUU, EdgeShapeIDs: idsTri, EdgeOrientations: eoTri, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcTriRow, AspectCoeffs: acTriGlide, Colouring: colPair},
	{NumParams: 0, NumAspects: 2, NumVertices: 3, NumEdgeShapes: 3,
		EdgeShapes: esJJJ, EdgeShapeIDs: idsTri, EdgeOrientations: eoTri, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcTriRow, AspectCoeffs: acTriGlide, Colouring: colPairDiag},
	{NumParams: 0, NumAspects: 2, NumVertices: 3, NumEdgeShapes: 3,
		EdgeShapes: esUUI, EdgeShapeIDs: idsTri, EdgeOrientations: eoTri, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcTriRow, AspectCoeffs: acTriGlide, Colouring: colPair},
	{NumParams: 0, NumAspects: 2, NumVertices: 3, NumEdgeShapes: 3,
		EdgeShapes: esUIU, EdgeShapeIDs: idsTri, EdgeOrientations: eoTri, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcTriRow, AspectCoeffs: acTriGlide, Colouring: colPairDiag},
	{NumParams: 0, NumAspects: 2, NumVertices: 3, NumEdgeShapes: 3,
		EdgeShapes: esIII, EdgeShapeIDs: idsTri, EdgeOrientations: eoTri, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcTriRow, AspectCoeffs: acTriGlide, Colouring: colPair},
	{NumParams: 0, NumAspects: 2, NumVertices: 3, NumEdgeShapes: 3,
		EdgeShapes: esJUS, EdgeShapeIDs: idsTri, EdgeOrientations: eoTri, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcTriRow, AspectCoeffs: acTriGlide, Colouring: colPairDiag},
	{NumParams: 0, NumAspects: 2, NumVertices: 3, NumEdgeShapes: 3,
		EdgeShapes: esSSS, EdgeShapeIDs: idsTri, EdgeOrientations: eoTri, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcTriRow, AspectCoeffs: acTriGlide, Colouring: colPair},
	{NumParams: 0, NumAspects: 2, NumVertices: 3, NumEdgeShapes: 3,
		EdgeShapes: esJSI, EdgeShapeIDs: idsTri, EdgeOrientations: eoTri, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcTriRow, AspectCoeffs: acTriGlide, Colouring: colPairDiag},

	// Equilateral triangles fanning around a 6-fold centre.
	{NumParams: 0, NumAspects: 6, NumVertices: 3, NumEdgeShapes: 2,
		EdgeShapes: esJJ, EdgeShapeIDs: idsFan, EdgeOrientations: eoFan, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcHexLat, AspectCoeffs: acTriFan, Colouring: colTriple},
	{NumParams: 0, NumAspects: 6, NumVertices: 3, NumEdgeShapes: 2,
		EdgeShapes: esSS, EdgeShapeIDs: idsFan, EdgeOrientations: eoFan, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcHexLat, AspectCoeffs: acTriFan, Colouring: colTriple},
	{NumParams: 0, NumAspects: 6, NumVertices: 3, NumEdgeShapes: 2,
		EdgeShapes: esUU, EdgeShapeIDs: idsFan, EdgeOrientations: eoFan, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcHexLat, AspectCoeffs: acTriFan, Colouring: colTriple},
	{NumParams: 0, NumAspects: 6, NumVertices: 3, NumEdgeShapes: 2,
		EdgeShapes: esII, EdgeShapeIDs: idsFan, EdgeOrientations: eoFan, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcHexLat, AspectCoeffs: acTriFan, Colouring: colTriple},
	{NumParams: 0, NumAspects: 6, NumVertices: 3, NumEdgeShapes: 2,
		EdgeShapes: esJS, EdgeShapeIDs: idsFan, EdgeOrientations: eoFan, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcHexLat, AspectCoeffs: acTriFan, Colouring: colTriple},
	{NumParams: 0, NumAspects: 6, NumVertices: 3, NumEdgeShapes: 2,
		EdgeShapes: esJU, EdgeShapeIDs: idsFan, EdgeOrientations: eoFan, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcHexLat, AspectCoeffs: acTriFan, Colouring: colTriple},
	{NumParams: 0, NumAspects: 6, NumVertices: 3, NumEdgeShapes: 2,
		EdgeShapes: esJI, EdgeShapeIDs: idsFan, EdgeOrientations: eoFan, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcHexLat, AspectCoeffs: acTriFan, Colouring: colTriple},
	{NumParams: 0, NumAspects: 6, NumVertices: 3, NumEdgeShapes: 2,
		EdgeShapes: esUS, EdgeShapeIDs: idsFan, EdgeOrientations: eoFan, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcHexLat, AspectCoeffs: acTriFan, Colouring: colTriple},
	{NumParams: 0, NumAspects: 6, NumVertices: 3, NumEdgeShapes: 2,
		EdgeShapes: esSI, EdgeShapeIDs: idsFan, EdgeOrientations: eoFan, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcHexLat, AspectCoeffs: acTriFan, Colouring: colTriple},
	{NumParams: 0, NumAspects: 6, NumVertices: 3, NumEdgeShapes: 2,
		EdgeShapes: esUI, EdgeShapeIDs: idsFan, EdgeOrientations: eoFan, DefaultParams: dpNone,
		VertexCoeffs: tvcTri, TranslationCoeffs: tcHexLat, AspectCoeffs: acTriFan, Colouring: colTriple},
}
