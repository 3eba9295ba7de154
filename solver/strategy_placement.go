package solver

import (
	"context"

	"github.com/arkazolin/queens/board"
)

// strategyPlacementEmptiesLine is ladder strategy 9. Literally, "the
// row/column containing the hypothesis has all other cells eliminated"
// is tautological once strategy 3's row/column sweep runs against the
// hypothesis itself: every other cell in that line is always set E by
// construction. This implementation resolves the open question (spec.
// md §9(b) only fixes the row/column short-circuit bug, it does not
// resolve this deeper redundancy) by reading the check as "after this
// one hypothesis's row, column, and king-diagonal eliminations, is any
// row or column of the clone left with zero empty cells and no queen" —
// a genuine contradiction, in the same spirit as strategy 11's
// color-exhaustion test but for lines. Every line is checked, so a line
// that was already dead before the hypothesis refutes it as well. It
// sweeps every empty cell and returns whether any were eliminated, with
// no early return, matching the spec's explicit "applies for every
// empty cell" note.
func strategyPlacementEmptiesLine(_ context.Context, b *board.Board, ar *arena) (bool, error) {
	changed := false
	n := b.Size

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if !b.At(r, c).EmptyForSolver() {
				continue
			}
			clone := ar.hypothesize(b, r, c)
			eliminateSurrounding(clone, r, c)
			if lineBecomesDead(clone) && eliminate(b, r, c) {
				changed = true
			}
		}
	}

	return changed, nil
}

// strategyPlacementEliminatesColor is ladder strategy 11: if
// hypothetically placing a queen and propagating rules 3-4 wipes out
// every remaining cell (and queen) of some color, the hypothesis is
// refuted.
func strategyPlacementEliminatesColor(_ context.Context, b *board.Board, ar *arena) (bool, error) {
	n := b.Size

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if !b.At(r, c).EmptyForSolver() {
				continue
			}
			clone := ar.hypothesize(b, r, c)
			eliminateSurrounding(clone, r, c)
			eliminateSameColor(clone, r, c)
			if colorFullyEliminated(clone) && eliminate(b, r, c) {
				return true, nil
			}
		}
	}

	return false, nil
}
