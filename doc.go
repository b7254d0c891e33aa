// Package isohedral generates the geometry of the isohedral tilings of
// the plane: edge-to-edge tilings whose symmetry group moves any tile
// onto any other.
//
// # Overview
//
// Each tiling type describes a family of prototiles controlled by up to
// six shape parameters. A Tiling evaluates the type's coefficient tables
// into concrete geometry: the prototile's vertices, a transform per edge
// (with symmetry classification and reversal flags), a transform per
// aspect, and the two translation vectors of the tiling's lattice. The
// plane-filling enumerator walks that lattice and reports every placed
// tile touching a region, together with a deterministic 3-colouring.
//
// # Quick Start
//
//	tiling, err := isohedral.New(0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for tile := range tiling.FillRegion(0, 0, 10, 10) {
//	    colour := tiling.Colour(tile.T1, tile.T2, tile.Aspect)
//	    for s := range tiling.Shapes() {
//	        m := tile.Transform.Multiply(s.Transform)
//	        // m places the edge's canonical segment in the plane;
//	        // draw the edge's polyline through it, using colour.
//	    }
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Tiling, TilingType, Matrix, Point, EdgeShape,
//     Shape/ShapePart iterators, Tile enumeration
//   - Internal: tiledata (the static per-type coefficient catalogue)
//
// Rendering is deliberately out of scope: the engine emits transforms
// and classifications, and a drawing layer such as github.com/gogpu/gg
// turns them into pixels (see cmd/ihdemo).
//
// # Coordinate System
//
// The engine works in abstract tiling coordinates with no fixed scale;
// callers map them to device space with their own transform. Composition
// follows the usual affine convention: a.Multiply(b) applies b first.
package isohedral
