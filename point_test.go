package isohedral

import "testing"

func TestPointOps(t *testing.T) {
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"add", Pt(1, 2).Add(Pt(3, -1)), Pt(4, 1)},
		{"sub", Pt(1, 2).Sub(Pt(3, -1)), Pt(-2, 3)},
		{"mul", Pt(1.5, -2).Mul(2), Pt(3, -4)},
		{"lerp mid", Pt(0, 0).Lerp(Pt(4, 2), 0.5), Pt(2, 1)},
		{"lerp start", Pt(1, 1).Lerp(Pt(9, 9), 0), Pt(1, 1)},
		{"lerp end", Pt(1, 1).Lerp(Pt(9, 9), 1), Pt(9, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.want, epsilon) {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestPointDot(t *testing.T) {
	if d := Pt(1, 2).Dot(Pt(3, 4)); d != 11 {
		t.Errorf("(1,2)·(3,4) = %v, want 11", d)
	}
	if d := Pt(1, 0).Dot(Pt(0, 1)); d != 0 {
		t.Errorf("perpendicular dot = %v, want 0", d)
	}
}

func TestPointCrossSign(t *testing.T) {
	if c := Pt(1, 0).Cross(Pt(0, 1)); c != 1 {
		t.Errorf("x cross y = %v, want 1", c)
	}
	if c := Pt(0, 1).Cross(Pt(1, 0)); c != -1 {
		t.Errorf("y cross x = %v, want -1", c)
	}
}

func TestPointLength(t *testing.T) {
	if l := Pt(3, 4).Length(); l != 5 {
		t.Errorf("Length(3,4) = %v, want 5", l)
	}
	if d := Pt(1, 1).Distance(Pt(4, 5)); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
}
