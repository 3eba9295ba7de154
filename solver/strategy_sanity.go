package solver

import (
	"context"

	"github.com/arkazolin/queens/board"
)

// strategyInvalidQueenSanity is ladder strategy 1: once any cell is
// Q-flagged, a P-flagged cell lacking Q is a player mistake; clear P on
// the first one found.
func strategyInvalidQueenSanity(_ context.Context, b *board.Board, _ *arena) (bool, error) {
	anyQ := false
	for _, cell := range b.Cells {
		if cell.IsSolutionQueen() {
			anyQ = true
			break
		}
	}
	if !anyQ {
		return false, nil
	}

	for i, cell := range b.Cells {
		if cell.IsPlayerQueen() && !cell.IsSolutionQueen() {
			b.Cells[i] = cell.WithPlayerQueen(false)
			return true, nil
		}
	}
	return false, nil
}

// strategyInvalidEliminationSanity is ladder strategy 2: a Q-flagged
// cell can never legitimately also be E; clear E on the first one found.
// A cell that also carries a player queen is left alone: strategy 3
// marks the queen's own cell E along with its row and column, and E has
// no meaning on a P cell.
func strategyInvalidEliminationSanity(_ context.Context, b *board.Board, _ *arena) (bool, error) {
	for i, cell := range b.Cells {
		if cell.IsSolutionQueen() && cell.IsEliminated() && !cell.IsPlayerQueen() {
			b.Cells[i] = cell.WithEliminated(false)
			return true, nil
		}
	}
	return false, nil
}
