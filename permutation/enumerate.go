package permutation

import "context"

// enumerate builds every complete permutation of size n under the
// row/column/adjacent-king-diagonal rule, returning the flattened row
// values (count*n entries) and the permutation count.
//
// The frontier holds partial permutations restricted to the columns
// filled so far; at column c, an extension to row r is kept iff r is
// unused by any earlier column and r is not within one of the previous
// column's row (the only diagonal check needed, since non-adjacent
// columns cannot attack under this rule — the forward check against
// column c+1 is performed symmetrically when that later column itself
// extends). Complexity is bounded by the eventual permutation count,
// which is the "non-attacking kings on a row" sequence for N columns.
func enumerate(ctx context.Context, n int) ([]int8, int, error) {
	frontier := [][]int8{{}}
	for col := 0; col < n; col++ {
		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		default:
		}

		next := make([][]int8, 0, len(frontier))
		used := make([]bool, n)
		for _, partial := range frontier {
			for i := range used {
				used[i] = false
			}
			for _, r := range partial {
				used[r] = true
			}
			var prevRow int8 = -1
			if len(partial) > 0 {
				prevRow = partial[len(partial)-1]
			}
			for r := 0; r < n; r++ {
				if used[r] {
					continue
				}
				if prevRow >= 0 && abs8(prevRow, int8(r)) == 1 {
					continue
				}
				ext := make([]int8, len(partial)+1)
				copy(ext, partial)
				ext[len(partial)] = int8(r)
				next = append(next, ext)
			}
		}
		frontier = next
	}

	count := len(frontier)
	rows := make([]int8, count*n)
	for i, p := range frontier {
		copy(rows[i*n:(i+1)*n], p)
	}

	return rows, count, nil
}

func abs8(a, b int8) int8 {
	d := a - b
	if d < 0 {
		return -d
	}

	return d
}
