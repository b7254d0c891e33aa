package tiledata

import "testing"

// applyMap runs a 3-colour step map once.
func applyMap(m [3]uint8, c uint8) uint8 { return m[c] }

func TestCatalogueWellFormed(t *testing.T) {
	for id := range Types {
		ty := &Types[id]
		np := ty.NumParams

		if ty.NumVertices < 3 || ty.NumVertices > 6 {
			t.Errorf("type %d: NumVertices = %d", id, ty.NumVertices)
		}
		if ty.NumAspects < 1 || ty.NumAspects > 12 {
			t.Errorf("type %d: NumAspects = %d", id, ty.NumAspects)
		}
		if np < 0 || np > 6 {
			t.Errorf("type %d: NumParams = %d", id, np)
		}
		if ty.NumEdgeShapes < 1 || ty.NumEdgeShapes > ty.NumVertices {
			t.Errorf("type %d: NumEdgeShapes = %d", id, ty.NumEdgeShapes)
		}

		if len(ty.EdgeShapes) != ty.NumEdgeShapes {
			t.Errorf("type %d: len(EdgeShapes) = %d, want %d",
				id, len(ty.EdgeShapes), ty.NumEdgeShapes)
		}
		for i, s := range ty.EdgeShapes {
			if s > ShapeI {
				t.Errorf("type %d: EdgeShapes[%d] = %d", id, i, s)
			}
		}
		if len(ty.EdgeShapeIDs) != ty.NumVertices {
			t.Errorf("type %d: len(EdgeShapeIDs) = %d, want %d",
				id, len(ty.EdgeShapeIDs), ty.NumVertices)
		}
		for i, sid := range ty.EdgeShapeIDs {
			if int(sid) >= ty.NumEdgeShapes {
				t.Errorf("type %d: EdgeShapeIDs[%d] = %d, want < %d",
					id, i, sid, ty.NumEdgeShapes)
			}
		}
		if len(ty.EdgeOrientations) != 2*ty.NumVertices {
			t.Errorf("type %d: len(EdgeOrientations) = %d, want %d",
				id, len(ty.EdgeOrientations), 2*ty.NumVertices)
		}
		if len(ty.DefaultParams) != np {
			t.Errorf("type %d: len(DefaultParams) = %d, want %d",
				id, len(ty.DefaultParams), np)
		}

		w := np + 1
		if want := ty.NumVertices * 2 * w; len(ty.VertexCoeffs) != want {
			t.Errorf("type %d: len(VertexCoeffs) = %d, want %d",
				id, len(ty.VertexCoeffs), want)
		}
		if want := 4 * w; len(ty.TranslationCoeffs) != want {
			t.Errorf("type %d: len(TranslationCoeffs) = %d, want %d",
				id, len(ty.TranslationCoeffs), want)
		}
		if want := ty.NumAspects * 6 * w; len(ty.AspectCoeffs) != want {
			t.Errorf("type %d: len(AspectCoeffs) = %d, want %d",
				id, len(ty.AspectCoeffs), want)
		}
	}
}

func TestColouringRecurrence(t *testing.T) {
	for id := range Types {
		ty := &Types[id]
		col := ty.Colouring

		for i := 0; i < ty.NumAspects; i++ {
			if col[i] > 2 {
				t.Errorf("type %d: aspect seed colour %d = %d", id, i, col[i])
			}
		}

		var p1, p2 [3]uint8
		copy(p1[:], col[12:15])
		copy(p2[:], col[15:18])
		for _, p := range [2][3]uint8{p1, p2} {
			seen := [3]bool{}
			for _, v := range p {
				if v > 2 || seen[v] {
					t.Fatalf("type %d: step map %v is not a permutation", id, p)
				}
				seen[v] = true
			}
		}

		nc := int(col[18])
		if nc < 1 {
			t.Errorf("type %d: modulus %d", id, nc)
		}

		for c := uint8(0); c < 3; c++ {
			// The two step maps commute, so the colour of a cell does not
			// depend on the path taken through the lattice.
			if applyMap(p1, applyMap(p2, c)) != applyMap(p2, applyMap(p1, c)) {
				t.Errorf("type %d: step maps do not commute at colour %d", id, c)
			}
			// Each map has order dividing the modulus, which makes the
			// colouring nc-periodic in both lattice directions.
			v := c
			for k := 0; k < nc; k++ {
				v = applyMap(p1, v)
			}
			if v != c {
				t.Errorf("type %d: n1 step map order does not divide %d", id, nc)
			}
			v = c
			for k := 0; k < nc; k++ {
				v = applyMap(p2, v)
			}
			if v != c {
				t.Errorf("type %d: n2 step map order does not divide %d", id, nc)
			}
		}
	}
}
