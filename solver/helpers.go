package solver

import (
	"github.com/arkazolin/queens/board"
	"github.com/arkazolin/queens/internal/neighbors"
)

// place commits a player-queen placement; it never touches Q or E.
func place(b *board.Board, r, c int) {
	b.Set(r, c, b.At(r, c).WithPlayerQueen(true))
}

// eliminate sets E on (r,c) and reports whether that changed the cell.
func eliminate(b *board.Board, r, c int) bool {
	cell := b.At(r, c)
	if cell.IsEliminated() {
		return false
	}
	b.Set(r, c, cell.WithEliminated(true))
	return true
}

// eliminateSurrounding is strategy 3's per-queen rule applied to a
// single (r,c): set E on its full row, full column, and the four
// in-bounds king-step diagonals.
func eliminateSurrounding(b *board.Board, r, c int) bool {
	changed := false
	n := b.Size
	for cc := 0; cc < n; cc++ {
		if eliminate(b, r, cc) {
			changed = true
		}
	}
	for rr := 0; rr < n; rr++ {
		if eliminate(b, rr, c) {
			changed = true
		}
	}
	for _, o := range neighbors.KingDiagonals {
		nr, nc := r+o.DR, c+o.DC
		if neighbors.InBounds(nr, nc, n) && eliminate(b, nr, nc) {
			changed = true
		}
	}
	return changed
}

// eliminateSameColor is strategy 4's per-queen rule applied to a single
// (r,c): set E on every other cell sharing (r,c)'s color.
func eliminateSameColor(b *board.Board, r, c int) bool {
	changed := false
	color := b.At(r, c).Color()
	n := b.Size
	for rr := 0; rr < n; rr++ {
		for cc := 0; cc < n; cc++ {
			if rr == r && cc == c {
				continue
			}
			if b.At(rr, cc).Color() == color && eliminate(b, rr, cc) {
				changed = true
			}
		}
	}
	return changed
}

// lineBecomesDead reports whether some row or column has no player
// queen and no empty-for-solver cell left: a line that can never host
// its required queen, a hard contradiction.
func lineBecomesDead(b *board.Board) bool {
	n := b.Size
	for r := 0; r < n; r++ {
		empty, queen := 0, false
		for c := 0; c < n; c++ {
			cell := b.At(r, c)
			if cell.IsPlayerQueen() {
				queen = true
			}
			if cell.EmptyForSolver() {
				empty++
			}
		}
		if !queen && empty == 0 {
			return true
		}
	}
	for c := 0; c < n; c++ {
		empty, queen := 0, false
		for r := 0; r < n; r++ {
			cell := b.At(r, c)
			if cell.IsPlayerQueen() {
				queen = true
			}
			if cell.EmptyForSolver() {
				empty++
			}
		}
		if !queen && empty == 0 {
			return true
		}
	}
	return false
}

// colorFullyEliminated reports whether some color in [1, b.Size] has no
// player queen and no empty-for-solver cell left.
func colorFullyEliminated(b *board.Board) bool {
	n := b.Size
	empty := make([]int, n+1)
	queen := make([]bool, n+1)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := b.At(r, c)
			color := cell.Color()
			if color < 1 || color > n {
				continue
			}
			if cell.IsPlayerQueen() {
				queen[color] = true
			}
			if cell.EmptyForSolver() {
				empty[color]++
			}
		}
	}
	for color := 1; color <= n; color++ {
		if !queen[color] && empty[color] == 0 {
			return true
		}
	}
	return false
}

// isInvalid reports whether the clone has reached a contradictory
// state: a dead row/column or a fully eliminated color.
func isInvalid(b *board.Board) bool {
	return lineBecomesDead(b) || colorFullyEliminated(b)
}
