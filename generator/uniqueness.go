package generator

import (
	"context"

	"github.com/arkazolin/queens/board"
	"github.com/arkazolin/queens/permutation"
)

// IsUnique is the board generator's acceptance oracle: it reports
// whether exactly one of the enumerated permutations for b.Size assigns
// a distinct, non-zero color to every column of b. This is a
// specialized use of the permutation store directly — not the
// incremental solver — per spec.md §4.C.
func IsUnique(ctx context.Context, b *board.Board, store *permutation.Store) (bool, error) {
	res, err := store.GetAll(ctx, b.Size)
	if err != nil {
		return false, err
	}

	compatible := 0
	for i := 0; i < res.BoardsCount; i++ {
		if permutationCompatible(b, res.At(i)) {
			compatible++
			if compatible > 1 {
				return false, nil
			}
		}
	}

	return compatible == 1, nil
}

// permutationCompatible reports whether perm (rows[col] = row) lands on
// a distinct, non-zero color in every column of b.
func permutationCompatible(b *board.Board, perm []int8) bool {
	var seen uint32
	for col, row := range perm {
		color := b.At(int(row), col).Color()
		if color == 0 || seen&(1<<uint(color)) != 0 {
			return false
		}
		seen |= 1 << uint(color)
	}

	return true
}
