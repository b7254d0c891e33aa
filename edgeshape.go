package isohedral

// EdgeShape classifies the symmetry constraints on the drawn shape of a
// prototile edge. The letters follow the visual mnemonic of the isohedral
// tiling literature: a J edge can look like anything, a U edge must look
// like the letter U, and so on.
type EdgeShape uint8

const (
	// EdgeShapeJ places no constraint on the edge's shape.
	EdgeShapeJ EdgeShape = iota

	// EdgeShapeU requires the edge to be symmetric under reflection
	// across its length (like the letter U).
	EdgeShapeU

	// EdgeShapeS requires the edge to be symmetric under a half-turn
	// about its midpoint (like the letter S).
	EdgeShapeS

	// EdgeShapeI requires both symmetries (like the letter I).
	EdgeShapeI
)

// String returns the one-letter name of the edge shape.
func (s EdgeShape) String() string {
	switch s {
	case EdgeShapeJ:
		return "J"
	case EdgeShapeU:
		return "U"
	case EdgeShapeS:
		return "S"
	case EdgeShapeI:
		return "I"
	}
	return "invalid"
}
