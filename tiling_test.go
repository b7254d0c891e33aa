package isohedral

import (
	"errors"
	"testing"

	"github.com/gogpu/isohedral/internal/tiledata"
)

func TestNewRejectsInvalidType(t *testing.T) {
	for _, id := range []TilingType{-1, NumTilingTypes, NumTilingTypes + 10} {
		if _, err := New(id); !errors.Is(err, ErrInvalidTilingType) {
			t.Errorf("New(%d): err = %v, want ErrInvalidTilingType", id, err)
		}
	}
}

func TestResetRejectsInvalidTypeKeepsState(t *testing.T) {
	tiling, err := New(5)
	if err != nil {
		t.Fatal(err)
	}
	before := snapshot(tiling)

	if err := tiling.Reset(-3); !errors.Is(err, ErrInvalidTilingType) {
		t.Fatalf("Reset(-3): err = %v, want ErrInvalidTilingType", err)
	}
	if tiling.TilingType() != 5 {
		t.Errorf("TilingType() = %v, want IH05", tiling.TilingType())
	}
	if after := snapshot(tiling); !before.equal(after) {
		t.Error("failed Reset changed derived state")
	}
}

func TestTilingTypeString(t *testing.T) {
	if got := TilingType(0).String(); got != "IH00" {
		t.Errorf("String() = %q, want IH00", got)
	}
	if got := TilingType(42).String(); got != "IH42" {
		t.Errorf("String() = %q, want IH42", got)
	}
}

func TestResetIdempotent(t *testing.T) {
	a, err := New(5)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(5)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Reset(5); err != nil {
		t.Fatal(err)
	}
	if !snapshot(a).equal(snapshot(b)) {
		t.Error("Reset(5) twice differs from a single Reset(5)")
	}
}

func TestRecomputeDeterministic(t *testing.T) {
	for _, id := range []TilingType{0, 20, 36, 55, 67, 83} {
		tiling, err := New(id)
		if err != nil {
			t.Fatal(err)
		}
		params := tiling.Parameters()
		first := snapshot(tiling)
		tiling.SetParameters(params)
		if !first.equal(snapshot(tiling)) {
			t.Errorf("type %v: recompute with identical parameters changed state", id)
		}
	}
}

func TestParameterContractAllTypes(t *testing.T) {
	for id := 0; id < NumTilingTypes; id++ {
		tiling, err := New(TilingType(id))
		if err != nil {
			t.Fatalf("New(%d): %v", id, err)
		}
		want := tiledata.Types[id].NumParams
		if got := tiling.NumParams(); got != want {
			t.Errorf("type %d: NumParams() = %d, want %d", id, got, want)
		}

		// Defaults must land in the leading slots.
		params := tiling.Parameters()
		for i, dp := range tiledata.Types[id].DefaultParams {
			if params[i] != dp {
				t.Errorf("type %d: default param %d = %v, want %v", id, i, params[i], dp)
			}
		}

		// Round-trip the meaningful slots.
		in := [6]float64{0.11, 0.22, 0.33, 0.44, 0.55, 0.66}
		tiling.SetParameters(in)
		out := tiling.Parameters()
		for i := 0; i < tiling.NumParams(); i++ {
			if out[i] != in[i] {
				t.Errorf("type %d: param %d round-trip = %v, want %v", id, i, out[i], in[i])
			}
		}
	}
}

func TestReversalConsistencyAllTypes(t *testing.T) {
	for id := 0; id < NumTilingTypes; id++ {
		tiling, err := New(TilingType(id))
		if err != nil {
			t.Fatalf("New(%d): %v", id, err)
		}
		n := tiling.NumVertices()
		idx := 0
		for s := range tiling.Shapes() {
			p := s.Transform.TransformPoint(Pt(0, 0))
			q := s.Transform.TransformPoint(Pt(1, 0))
			if s.Reversed {
				p, q = q, p
			}
			v0 := tiling.Vertex(idx)
			v1 := tiling.Vertex((idx + 1) % n)
			if !p.Approx(v0, 1e-9) || !q.Approx(v1, 1e-9) {
				t.Errorf("type %d edge %d: endpoints (%+v, %+v), want (%+v, %+v)",
					id, idx, p, q, v0, v1)
			}
			idx++
		}
		if idx != n {
			t.Errorf("type %d: Shapes yielded %d edges, want %d", id, idx, n)
		}
	}
}

func TestColourRangeAndPeriodicity(t *testing.T) {
	for id := 0; id < NumTilingTypes; id++ {
		tiling, err := New(TilingType(id))
		if err != nil {
			t.Fatalf("New(%d): %v", id, err)
		}
		nc := int(tiledata.Types[id].Colouring[18])
		for asp := 0; asp < tiling.NumAspects(); asp++ {
			for n1 := -3; n1 <= 3; n1++ {
				for n2 := -3; n2 <= 3; n2++ {
					c := tiling.Colour(n1, n2, asp)
					if c < 0 || c > 2 {
						t.Fatalf("type %d: Colour(%d,%d,%d) = %d, out of range",
							id, n1, n2, asp, c)
					}
					if got := tiling.Colour(n1+2*nc, n2, asp); got != c {
						t.Errorf("type %d: colour not %d-periodic in n1 at (%d,%d,%d)",
							id, nc, n1, n2, asp)
					}
					if got := tiling.Colour(n1, n2-3*nc, asp); got != c {
						t.Errorf("type %d: colour not %d-periodic in n2 at (%d,%d,%d)",
							id, nc, n1, n2, asp)
					}
				}
			}
		}
	}
}

func TestVerticesReturnsCopy(t *testing.T) {
	tiling, err := New(0)
	if err != nil {
		t.Fatal(err)
	}
	vs := tiling.Vertices()
	if len(vs) != tiling.NumVertices() {
		t.Fatalf("Vertices() len = %d, want %d", len(vs), tiling.NumVertices())
	}
	orig := tiling.Vertex(0)
	vs[0] = Pt(999, 999)
	if tiling.Vertex(0) != orig {
		t.Error("mutating Vertices() result changed engine state")
	}
}

func TestEdgeShapeAccessors(t *testing.T) {
	tiling, err := New(0)
	if err != nil {
		t.Fatal(err)
	}
	if got := tiling.NumEdgeShapes(); got != 3 {
		t.Fatalf("NumEdgeShapes() = %d, want 3", got)
	}
	for id := 0; id < tiling.NumEdgeShapes(); id++ {
		if s := tiling.EdgeShape(id); s != EdgeShapeJ {
			t.Errorf("EdgeShape(%d) = %v, want J", id, s)
		}
	}
}

func TestEdgeShapeString(t *testing.T) {
	tests := []struct {
		shape EdgeShape
		want  string
	}{
		{EdgeShapeJ, "J"},
		{EdgeShapeU, "U"},
		{EdgeShapeS, "S"},
		{EdgeShapeI, "I"},
		{EdgeShape(42), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.shape.String(); got != tt.want {
			t.Errorf("EdgeShape(%d).String() = %q, want %q", tt.shape, got, tt.want)
		}
	}
}

// tilingState captures all derived geometry for equality comparison.
type tilingState struct {
	params    [6]float64
	vertices  []Point
	edges     []Matrix
	reversals []bool
	aspects   []Matrix
	t1, t2    Point
}

func snapshot(t *Tiling) tilingState {
	st := tilingState{
		params:   t.Parameters(),
		vertices: t.Vertices(),
		t1:       t.T1(),
		t2:       t.T2(),
	}
	for s := range t.Shapes() {
		st.edges = append(st.edges, s.Transform)
		st.reversals = append(st.reversals, s.Reversed)
	}
	for i := 0; i < t.NumAspects(); i++ {
		st.aspects = append(st.aspects, t.AspectTransform(i))
	}
	return st
}

func (a tilingState) equal(b tilingState) bool {
	if a.params != b.params || a.t1 != b.t1 || a.t2 != b.t2 {
		return false
	}
	if len(a.vertices) != len(b.vertices) || len(a.edges) != len(b.edges) ||
		len(a.aspects) != len(b.aspects) {
		return false
	}
	for i := range a.vertices {
		if a.vertices[i] != b.vertices[i] {
			return false
		}
	}
	for i := range a.edges {
		if a.edges[i] != b.edges[i] || a.reversals[i] != b.reversals[i] {
			return false
		}
	}
	for i := range a.aspects {
		if a.aspects[i] != b.aspects[i] {
			return false
		}
	}
	return true
}
