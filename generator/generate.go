package generator

import (
	"context"

	"github.com/arkazolin/queens/board"
	"github.com/arkazolin/queens/permutation"
	"github.com/arkazolin/queens/rng"
)

// Generate produces a size x size board with a guaranteed unique
// solution: seed queens from a random permutation, flood-fill region
// colors, and retry (with a fresh permutation and a fresh flood fill)
// until the uniqueness oracle accepts the candidate or Config.
// MaxAttempts is exhausted.
func Generate(ctx context.Context, size int, cfg Config, store *permutation.Store, src *rng.Source) (*board.Board, error) {
	// One derived stream per concern: permutation sampling and flood fill.
	permSrc := src.Derive(1)
	fillSrc := src.Derive(2)

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		b, err := seed(ctx, size, store, permSrc)
		if err != nil {
			return nil, err
		}

		if err := floodFill(b, cfg, fillSrc); err != nil {
			continue // stalled pass: discard and reseed
		}

		unique, err := IsUnique(ctx, b, store)
		if err != nil {
			return nil, err
		}
		if unique {
			return b, nil
		}
	}

	return nil, ErrGenerationFailed
}

// seed allocates a fresh board and marks the unique solution queens
// from a random permutation, colors 1..size, per spec.md §4.C step 2.
func seed(ctx context.Context, size int, store *permutation.Store, src *rng.Source) (*board.Board, error) {
	b, err := board.New(size)
	if err != nil {
		return nil, err
	}

	perm, err := store.GetRandom(ctx, size, src)
	if err != nil {
		return nil, err
	}

	for col, row := range perm {
		cell := board.Cell(0).WithColor(col + 1).WithSolutionQueen(true)
		b.Set(row, col, cell)
	}

	return b, nil
}
