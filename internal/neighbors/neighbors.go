// Package neighbors precomputes fixed-order cell-adjacency offsets for a
// rectangular board, shared by the flood-fill generator and the solver's
// king-adjacency elimination.
//
// Offsets are returned in a stable iteration order because several callers
// (the flood fill's "first non-zero neighbor wins" rule, the solver's
// elimination of the four king-step diagonals) are order-sensitive.
package neighbors

// Offset is a (dRow, dCol) displacement applied to a cell coordinate.
type Offset struct {
	DR, DC int
}

// Orthogonal lists the four rook-step neighbors in the fixed order
// up, down, left, right, matching the flood fill's required scan order.
var Orthogonal = [4]Offset{
	{-1, 0}, // up
	{1, 0},  // down
	{0, -1}, // left
	{0, 1},  // right
}

// Horizontal lists only the left/right neighbors, in left-then-right order.
var Horizontal = [2]Offset{
	{0, -1},
	{0, 1},
}

// Vertical lists only the up/down neighbors, in up-then-down order.
var Vertical = [2]Offset{
	{-1, 0},
	{1, 0},
}

// KingDiagonals lists the four diagonal king-step neighbors, in the order
// the solver uses when eliminating around a placed queen.
var KingDiagonals = [4]Offset{
	{-1, -1},
	{-1, 1},
	{1, -1},
	{1, 1},
}

// InBounds reports whether (r,c) lies within a size x size board.
func InBounds(r, c, size int) bool {
	return r >= 0 && r < size && c >= 0 && c < size
}
