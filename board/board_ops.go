package board

// Zero resets every cell to its zero value (no color, no flags).
// Complexity: O(N^2).
func (b *Board) Zero() {
	for i := range b.Cells {
		b.Cells[i] = 0
	}
}

// CloneInto deep-copies b into dst, reallocating dst.Cells only if its
// capacity cannot hold b's cells. This is the scratch-board convention
// hypothetical-play strategies use to avoid a fresh heap allocation per
// candidate cell.
// Complexity: O(N^2).
func (b *Board) CloneInto(dst *Board) {
	dst.Size = b.Size
	if cap(dst.Cells) < len(b.Cells) {
		dst.Cells = make([]Cell, len(b.Cells))
	} else {
		dst.Cells = dst.Cells[:len(b.Cells)]
	}
	copy(dst.Cells, b.Cells)
}

// Clone returns a deep copy of b as a freshly allocated Board.
func (b *Board) Clone() *Board {
	out := &Board{Size: b.Size, Cells: make([]Cell, len(b.Cells))}
	copy(out.Cells, b.Cells)

	return out
}

// Equal reports whether a and b have the same size and identical cells
// in row-major order.
func Equal(a, b *Board) bool {
	if a.Size != b.Size || len(a.Cells) != len(b.Cells) {
		return false
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			return false
		}
	}

	return true
}
