package solver

import (
	"context"

	"github.com/arkazolin/queens/board"
)

// strategyRegionConfinedToLine is ladder strategy 7: a color confined
// to >=2 empty cells within a single row or column, alongside at least
// one other color in that same line, forces every other color's empty
// cells out of the line.
func strategyRegionConfinedToLine(_ context.Context, b *board.Board, _ *arena) (bool, error) {
	n := b.Size

	for r := 0; r < n; r++ {
		rowColors := make([]int, n+1)
		for c := 0; c < n; c++ {
			if cell := b.At(r, c); cell.EmptyForSolver() {
				rowColors[cell.Color()]++
			}
		}
		for color := 1; color <= n; color++ {
			if rowColors[color] < 2 || !otherColorPresent(rowColors, color) {
				continue
			}
			if colorHasEmptyInOtherRow(b, color, r) {
				continue
			}
			changed := false
			for c := 0; c < n; c++ {
				cell := b.At(r, c)
				if cell.EmptyForSolver() && cell.Color() != color && eliminate(b, r, c) {
					changed = true
				}
			}
			if changed {
				return true, nil
			}
		}
	}

	for c := 0; c < n; c++ {
		colColors := make([]int, n+1)
		for r := 0; r < n; r++ {
			if cell := b.At(r, c); cell.EmptyForSolver() {
				colColors[cell.Color()]++
			}
		}
		for color := 1; color <= n; color++ {
			if colColors[color] < 2 || !otherColorPresent(colColors, color) {
				continue
			}
			if colorHasEmptyInOtherCol(b, color, c) {
				continue
			}
			changed := false
			for r := 0; r < n; r++ {
				cell := b.At(r, c)
				if cell.EmptyForSolver() && cell.Color() != color && eliminate(b, r, c) {
					changed = true
				}
			}
			if changed {
				return true, nil
			}
		}
	}

	return false, nil
}

func otherColorPresent(counts []int, exclude int) bool {
	for color := 1; color < len(counts); color++ {
		if color != exclude && counts[color] > 0 {
			return true
		}
	}
	return false
}

func colorHasEmptyInOtherRow(b *board.Board, color, excludeRow int) bool {
	n := b.Size
	for r := 0; r < n; r++ {
		if r == excludeRow {
			continue
		}
		for c := 0; c < n; c++ {
			cell := b.At(r, c)
			if cell.EmptyForSolver() && cell.Color() == color {
				return true
			}
		}
	}
	return false
}

func colorHasEmptyInOtherCol(b *board.Board, color, excludeCol int) bool {
	n := b.Size
	for c := 0; c < n; c++ {
		if c == excludeCol {
			continue
		}
		for r := 0; r < n; r++ {
			cell := b.At(r, c)
			if cell.EmptyForSolver() && cell.Color() == color {
				return true
			}
		}
	}
	return false
}
