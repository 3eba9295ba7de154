package solver

import (
	"context"

	"github.com/arkazolin/queens/board"
)

// strategyLastFreeRowColumn is ladder strategy 5: row scan takes
// precedence over column scan, per spec.md §9 open question (a) this
// implementation tests empty-for-solver uniformly in both passes.
func strategyLastFreeRowColumn(_ context.Context, b *board.Board, _ *arena) (bool, error) {
	n := b.Size

	for r := 0; r < n; r++ {
		col, count := -1, 0
		for c := 0; c < n; c++ {
			if b.At(r, c).EmptyForSolver() {
				count++
				col = c
			}
		}
		if count == 1 {
			place(b, r, col)
			return true, nil
		}
	}

	for c := 0; c < n; c++ {
		row, count := -1, 0
		for r := 0; r < n; r++ {
			if b.At(r, c).EmptyForSolver() {
				count++
				row = r
			}
		}
		if count == 1 {
			place(b, row, c)
			return true, nil
		}
	}

	return false, nil
}

// strategyOnlyOneColorRemaining is ladder strategy 6.
func strategyOnlyOneColorRemaining(_ context.Context, b *board.Board, _ *arena) (bool, error) {
	n := b.Size
	candidateCount := make([]int, n+1)
	candidateRow := make([]int, n+1)
	candidateCol := make([]int, n+1)
	pCount := make([]int, n+1)

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := b.At(r, c)
			color := cell.Color()
			if color < 1 || color > n {
				continue
			}
			if cell.IsPlayerQueen() {
				pCount[color]++
			}
			if cell.EmptyForSolver() || cell.IsPlayerQueen() {
				candidateCount[color]++
				candidateRow[color], candidateCol[color] = r, c
			}
		}
	}

	for color := 1; color <= n; color++ {
		if candidateCount[color] == 1 && pCount[color] == 0 {
			place(b, candidateRow[color], candidateCol[color])
			return true, nil
		}
	}

	return false, nil
}
