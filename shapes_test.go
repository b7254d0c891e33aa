package isohedral

import "testing"

func TestShapesClassification(t *testing.T) {
	// Type 2 is the hexagon with three U edge shapes, each used twice.
	tiling, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	uses := make(map[int]int)
	for s := range tiling.Shapes() {
		if s.Shape != EdgeShapeU {
			t.Errorf("edge shape %v, want U", s.Shape)
		}
		if s.ID < 0 || s.ID >= tiling.NumEdgeShapes() {
			t.Errorf("edge shape id %d out of range", s.ID)
		}
		uses[s.ID]++
	}
	if len(uses) != tiling.NumEdgeShapes() {
		t.Errorf("saw %d distinct ids, want %d", len(uses), tiling.NumEdgeShapes())
	}
	for id, n := range uses {
		if n != 2 {
			t.Errorf("shape id %d used %d times, want 2", id, n)
		}
	}
}

func TestPartsWholeForJAndI(t *testing.T) {
	// J and I edges are unconstrained along their length, so each edge
	// yields exactly one part identical to its Shapes entry.
	for _, id := range []TilingType{0, 3, 26, 29} {
		tiling, err := New(id)
		if err != nil {
			t.Fatal(err)
		}
		for sid := 0; sid < tiling.NumEdgeShapes(); sid++ {
			if s := tiling.EdgeShape(sid); s != EdgeShapeJ && s != EdgeShapeI {
				t.Fatalf("type %v: fixture has %v edges, want only J or I", id, s)
			}
		}
		var shapes []Shape
		for s := range tiling.Shapes() {
			shapes = append(shapes, s)
		}
		idx := 0
		for p := range tiling.Parts() {
			s := shapes[idx]
			if p.Second {
				t.Errorf("type %v part %d: unexpected Second flag", id, idx)
			}
			if p.Transform != s.Transform || p.ID != s.ID ||
				p.Shape != s.Shape || p.Reversed != s.Reversed {
				t.Errorf("type %v part %d does not match its edge", id, idx)
			}
			idx++
		}
		if idx != len(shapes) {
			t.Errorf("type %v: %d parts, want %d", id, idx, len(shapes))
		}
	}
}

func TestPartsSplitForUAndS(t *testing.T) {
	// Types 1 (S edges) and 2 (U edges) are hexagons whose last three
	// edges run reversed, covering both half orderings.
	for _, id := range []TilingType{1, 2} {
		tiling, err := New(id)
		if err != nil {
			t.Fatal(err)
		}
		var shapes []Shape
		for s := range tiling.Shapes() {
			shapes = append(shapes, s)
		}

		var parts []ShapePart
		for p := range tiling.Parts() {
			parts = append(parts, p)
		}
		if len(parts) != 2*len(shapes) {
			t.Fatalf("type %v: %d parts, want %d", id, len(parts), 2*len(shapes))
		}

		for i, s := range shapes {
			first, second := parts[2*i], parts[2*i+1]
			if first.Second || !second.Second {
				t.Errorf("type %v edge %d: Second flags (%v, %v)",
					id, i, first.Second, second.Second)
			}
			if first.Reversed || !second.Reversed {
				t.Errorf("type %v edge %d: half Reversed flags (%v, %v)",
					id, i, first.Reversed, second.Reversed)
			}

			// Both halves end at the edge midpoint; their starts are the
			// edge's two endpoints.
			a := s.Transform.TransformPoint(Pt(0, 0))
			b := s.Transform.TransformPoint(Pt(1, 0))
			mid := a.Lerp(b, 0.5)
			if got := first.Transform.TransformPoint(Pt(1, 0)); !got.Approx(mid, 1e-9) {
				t.Errorf("type %v edge %d: first half end %+v, want midpoint %+v",
					id, i, got, mid)
			}
			if got := second.Transform.TransformPoint(Pt(1, 0)); !got.Approx(mid, 1e-9) {
				t.Errorf("type %v edge %d: second half end %+v, want midpoint %+v",
					id, i, got, mid)
			}
			f0 := first.Transform.TransformPoint(Pt(0, 0))
			s0 := second.Transform.TransformPoint(Pt(0, 0))
			startA, startB := a, b
			if s.Reversed {
				startA, startB = b, a
			}
			if !f0.Approx(startA, 1e-9) || !s0.Approx(startB, 1e-9) {
				t.Errorf("type %v edge %d: half starts (%+v, %+v), want (%+v, %+v)",
					id, i, f0, s0, startA, startB)
			}
		}
	}
}

func TestShapesEarlyBreak(t *testing.T) {
	tiling, err := New(0)
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for range tiling.Shapes() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("broke after %d edges, want 1", count)
	}
	count = 0
	for range tiling.Parts() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("broke after %d parts, want 2", count)
	}
}
