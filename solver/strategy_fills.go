package solver

import (
	"context"

	"github.com/arkazolin/queens/board"
)

// strategySingleColorFillsLine is ladder strategy 8: if every empty
// cell in a row (then column) carries the same color, that color's
// queen must land in this line, so its empty cells elsewhere are ruled
// out.
func strategySingleColorFillsLine(_ context.Context, b *board.Board, _ *arena) (bool, error) {
	n := b.Size

	for r := 0; r < n; r++ {
		color, multi := -1, false
		for c := 0; c < n; c++ {
			cell := b.At(r, c)
			if !cell.EmptyForSolver() {
				continue
			}
			if color == -1 {
				color = cell.Color()
			} else if color != cell.Color() {
				multi = true
				break
			}
		}
		if multi || color == -1 {
			continue
		}
		changed := false
		for rr := 0; rr < n; rr++ {
			if rr == r {
				continue
			}
			for c := 0; c < n; c++ {
				cell := b.At(rr, c)
				if cell.EmptyForSolver() && cell.Color() == color && eliminate(b, rr, c) {
					changed = true
				}
			}
		}
		if changed {
			return true, nil
		}
	}

	for c := 0; c < n; c++ {
		color, multi := -1, false
		for r := 0; r < n; r++ {
			cell := b.At(r, c)
			if !cell.EmptyForSolver() {
				continue
			}
			if color == -1 {
				color = cell.Color()
			} else if color != cell.Color() {
				multi = true
				break
			}
		}
		if multi || color == -1 {
			continue
		}
		changed := false
		for cc := 0; cc < n; cc++ {
			if cc == c {
				continue
			}
			for r := 0; r < n; r++ {
				cell := b.At(r, cc)
				if cell.EmptyForSolver() && cell.Color() == color && eliminate(b, r, cc) {
					changed = true
				}
			}
		}
		if changed {
			return true, nil
		}
	}

	return false, nil
}
