package solver

import (
	"context"

	"github.com/arkazolin/queens/board"
)

type strategyFunc func(ctx context.Context, b *board.Board, ar *arena) (bool, error)

type strategyEntry struct {
	tag StrategyTag
	fn  strategyFunc
}

// ladder is the fixed-order dispatch table spec.md §9 calls for: a
// variant tag paired with a handler, mirroring tsp.SolveWithMatrix's
// switch over Options.Algo. Order is part of the contract.
var ladder = []strategyEntry{
	{InvalidQueenSanity, strategyInvalidQueenSanity},
	{InvalidEliminationSanity, strategyInvalidEliminationSanity},
	{EliminateQueenSurrounding, strategyEliminateQueenSurrounding},
	{EliminateLeftoverSameColor, strategyEliminateLeftoverSameColor},
	{LastFreeRowColumn, strategyLastFreeRowColumn},
	{OnlyOneColorRemaining, strategyOnlyOneColorRemaining},
	{RegionConfinedToLine, strategyRegionConfinedToLine},
	{SingleColorFillsLine, strategySingleColorFillsLine},
	{PlacementEmptiesLine, strategyPlacementEmptiesLine},
	{NRegionsInNLines, strategyNRegionsInNLines},
	{PlacementEliminatesColor, strategyPlacementEliminatesColor},
	{ForcingSequenceRefutation, strategyForcingSequenceRefutation},
}

// IncrementalSolve runs the strategy ladder in fixed order and returns
// the tag of the first strategy that mutated b. It returns SOLVED if b
// already satisfies the win condition, and FAILED if no strategy could
// mutate the board. ctx is checked between strategies so a caller can
// cancel a long N=15 run; a cancellation is returned as an error rather
// than folded into FAILED.
func IncrementalSolve(ctx context.Context, b *board.Board) (StrategyTag, error) {
	if IsSolved(b) {
		return SOLVED, nil
	}

	ar := newArena(b.Size)
	for _, entry := range ladder {
		select {
		case <-ctx.Done():
			return FAILED, ctx.Err()
		default:
		}

		changed, err := entry.fn(ctx, b, ar)
		if err != nil {
			return FAILED, err
		}
		if changed {
			return entry.tag, nil
		}
	}

	return FAILED, nil
}
