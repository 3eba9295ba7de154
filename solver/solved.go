package solver

import "github.com/arkazolin/queens/board"

// IsSolved reports whether b already satisfies the puzzle's win
// condition: exactly one player queen per row, exactly one per column,
// no two player queens at king-distance 1, and each color hosts
// exactly one player queen.
func IsSolved(b *board.Board) bool {
	n := b.Size
	rowCount := make([]int, n)
	colCount := make([]int, n)
	colorCount := make([]int, n+1)
	type pos struct{ r, c int }
	var queens []pos

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := b.At(r, c)
			if !cell.IsPlayerQueen() {
				continue
			}
			rowCount[r]++
			colCount[c]++
			queens = append(queens, pos{r, c})
			if color := cell.Color(); color >= 1 && color <= n {
				colorCount[color]++
			}
		}
	}

	for i := 0; i < n; i++ {
		if rowCount[i] != 1 || colCount[i] != 1 {
			return false
		}
	}
	for color := 1; color <= n; color++ {
		if colorCount[color] != 1 {
			return false
		}
	}

	for i := range queens {
		for j := i + 1; j < len(queens); j++ {
			dr := queens[i].r - queens[j].r
			dc := queens[i].c - queens[j].c
			if abs(dr) <= 1 && abs(dc) <= 1 {
				return false
			}
		}
	}

	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
