package solver

import (
	"context"

	"github.com/arkazolin/queens/board"
)

// strategyForcingSequenceRefutation is ladder strategy 12: for each
// empty cell, hypothetically place a queen and repeatedly chase forced
// placements (colors with exactly one empty cell left) until the clone
// either becomes invalid (the hypothesis is refuted, at a cost equal to
// the number of placements made) or reaches a stable, valid state. Per
// spec.md §9 open question (d): a refutation cost of exactly 1 (the
// hypothesis itself is immediately contradictory) eliminates and
// returns right away; otherwise the candidate with the smallest cost
// greater than 1 is kept and eliminated once the full sweep completes.
func strategyForcingSequenceRefutation(_ context.Context, b *board.Board, ar *arena) (bool, error) {
	n := b.Size

	bestFound := false
	var bestRow, bestCol, bestCost int

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if !b.At(r, c).EmptyForSolver() {
				continue
			}

			clone := ar.hypothesize(b, r, c)
			eliminateSurrounding(clone, r, c)
			eliminateSameColor(clone, r, c)

			refuted, cost := chaseForcingSequence(clone)
			if !refuted {
				continue
			}
			if cost == 1 {
				eliminate(b, r, c)
				return true, nil
			}
			if !bestFound || cost < bestCost {
				bestFound, bestRow, bestCol, bestCost = true, r, c, cost
			}
		}
	}

	if bestFound {
		eliminate(b, bestRow, bestCol)
		return true, nil
	}

	return false, nil
}

// chaseForcingSequence assumes the initial hypothesis placement has
// already been made and propagated into clone; it repeatedly forces any
// color down to its last remaining cell until the clone is invalid (a
// refutation, with cost counting every placement including the initial
// one) or no forced placement remains.
func chaseForcingSequence(clone *board.Board) (refuted bool, cost int) {
	cost = 1
	if isInvalid(clone) {
		return true, cost
	}

	n := clone.Size
	for i := 0; i < n; i++ {
		_, r, c, found := findForcedColor(clone)
		if !found {
			return false, cost
		}

		place(clone, r, c)
		eliminateSurrounding(clone, r, c)
		eliminateSameColor(clone, r, c)
		cost++

		if isInvalid(clone) {
			return true, cost
		}
	}

	return false, cost
}

// findForcedColor returns the first color (ascending) that has no
// queen yet and exactly one empty-for-solver cell remaining.
func findForcedColor(b *board.Board) (color, row, col int, found bool) {
	n := b.Size
	emptyCount := make([]int, n+1)
	emptyRow := make([]int, n+1)
	emptyCol := make([]int, n+1)
	hasQueen := make([]bool, n+1)

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := b.At(r, c)
			cl := cell.Color()
			if cl < 1 || cl > n {
				continue
			}
			if cell.IsPlayerQueen() {
				hasQueen[cl] = true
			}
			if cell.EmptyForSolver() {
				emptyCount[cl]++
				emptyRow[cl], emptyCol[cl] = r, c
			}
		}
	}

	for cl := 1; cl <= n; cl++ {
		if !hasQueen[cl] && emptyCount[cl] == 1 {
			return cl, emptyRow[cl], emptyCol[cl], true
		}
	}
	return 0, 0, 0, false
}
