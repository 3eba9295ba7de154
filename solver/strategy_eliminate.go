package solver

import (
	"context"

	"github.com/arkazolin/queens/board"
)

// strategyEliminateQueenSurrounding is ladder strategy 3.
func strategyEliminateQueenSurrounding(_ context.Context, b *board.Board, _ *arena) (bool, error) {
	changed := false
	n := b.Size
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b.At(r, c).IsPlayerQueen() && eliminateSurrounding(b, r, c) {
				changed = true
			}
		}
	}
	return changed, nil
}

// strategyEliminateLeftoverSameColor is ladder strategy 4.
func strategyEliminateLeftoverSameColor(_ context.Context, b *board.Board, _ *arena) (bool, error) {
	changed := false
	n := b.Size
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b.At(r, c).IsPlayerQueen() && eliminateSameColor(b, r, c) {
				changed = true
			}
		}
	}
	return changed, nil
}
