package solver

import (
	"context"

	"github.com/arkazolin/queens/board"
)

// squeezeMasks are the five fixed non-contiguous length-4 masks
// strategy 10's CUSTOM phase walks at every offset, in the order
// spec.md §4.D lists them.
var squeezeMasks = [5][4]bool{
	{true, false, true, false},  // 1010
	{false, true, false, true},  // 0101
	{true, false, false, true},  // 1001
	{true, false, true, true},   // 1011
	{true, true, false, true},   // 1101
}

// strategyNRegionsInNLines is ladder strategy 10. Its window
// enumeration is the state machine spec.md describes as {NONE,
// DYNAMIC, CUSTOM, DONE}: NONE seeds the dynamic window size at 2 and
// hands off to DYNAMIC, which slides every contiguous window from size
// 2 up to ceil(N/2); once exhausted, CUSTOM walks the five fixed masks
// at every offset; DONE ends the scan. Because a single
// IncrementalSolve call exposes at most one mutation, the automaton's
// state does not need to persist across calls: each invocation replays
// the scan from NONE, stopping at the first window (row-major, then
// column-major) that eliminates anything.
func strategyNRegionsInNLines(_ context.Context, b *board.Board, _ *arena) (bool, error) {
	n := b.Size

	for rows := true; ; rows = false {
		for size := 2; size <= (n+1)/2; size++ {
			for start := 0; start+size <= n; start++ {
				set := make([]int, size)
				for i := 0; i < size; i++ {
					set[i] = start + i
				}
				if trySqueeze(b, set, rows) {
					return true, nil
				}
			}
		}
		for _, mask := range squeezeMasks {
			for offset := 0; offset+4 <= n; offset++ {
				var set []int
				for i := 0; i < 4; i++ {
					if mask[i] {
						set = append(set, offset+i)
					}
				}
				if len(set) >= 2 && trySqueeze(b, set, rows) {
					return true, nil
				}
			}
		}
		if !rows {
			break
		}
	}

	return false, nil
}

// trySqueeze evaluates one candidate line set S (row indices if rows is
// true, else column indices). Guard (a): skip if any line in S already
// hosts a player queen. Primary direction: if the colors appearing in
// S's empty cells are exactly len(S) distinct colors, those colors'
// queens must lie within S, so eliminate them from every line outside
// S. Dual direction (guard b): if exactly len(S) colors appear ONLY
// inside S's empty cells (never outside), those colors must occupy
// every line in S between them, so eliminate every other color's empty
// cells inside S.
func trySqueeze(b *board.Board, set []int, rows bool) bool {
	n := b.Size
	inSet := make([]bool, n)
	for _, idx := range set {
		inSet[idx] = true
	}

	for _, idx := range set {
		if lineHasQueen(b, idx, rows) {
			return false
		}
	}

	insideColors := make([]bool, n+1)
	outsideColors := make([]bool, n+1)
	for primary := 0; primary < n; primary++ {
		for secondary := 0; secondary < n; secondary++ {
			r, c := primary, secondary
			if !rows {
				r, c = secondary, primary
			}
			cell := b.At(r, c)
			if !cell.EmptyForSolver() {
				continue
			}
			if inSet[primary] {
				insideColors[cell.Color()] = true
			} else {
				outsideColors[cell.Color()] = true
			}
		}
	}

	insideCount := 0
	for color := 1; color <= n; color++ {
		if insideColors[color] {
			insideCount++
		}
	}
	if insideCount == len(set) {
		if eliminateColorsOutside(b, set, rows, insideColors) {
			return true
		}
	}

	confinedCount := 0
	for color := 1; color <= n; color++ {
		if insideColors[color] && !outsideColors[color] {
			confinedCount++
		}
	}
	if confinedCount == len(set) {
		confined := make([]bool, n+1)
		for color := 1; color <= n; color++ {
			confined[color] = insideColors[color] && !outsideColors[color]
		}
		if eliminateOtherColorsInside(b, set, rows, confined) {
			return true
		}
	}

	return false
}

func lineHasQueen(b *board.Board, idx int, rows bool) bool {
	n := b.Size
	for other := 0; other < n; other++ {
		r, c := idx, other
		if !rows {
			r, c = other, idx
		}
		if b.At(r, c).IsPlayerQueen() {
			return true
		}
	}
	return false
}

func eliminateColorsOutside(b *board.Board, set []int, rows bool, colors []bool) bool {
	n := b.Size
	inSet := make([]bool, n)
	for _, idx := range set {
		inSet[idx] = true
	}

	changed := false
	for primary := 0; primary < n; primary++ {
		if inSet[primary] {
			continue
		}
		for secondary := 0; secondary < n; secondary++ {
			r, c := primary, secondary
			if !rows {
				r, c = secondary, primary
			}
			cell := b.At(r, c)
			if cell.EmptyForSolver() && colors[cell.Color()] && eliminate(b, r, c) {
				changed = true
			}
		}
	}
	return changed
}

func eliminateOtherColorsInside(b *board.Board, set []int, rows bool, confined []bool) bool {
	n := b.Size
	changed := false
	for _, idx := range set {
		for other := 0; other < n; other++ {
			r, c := idx, other
			if !rows {
				r, c = other, idx
			}
			cell := b.At(r, c)
			if cell.EmptyForSolver() && !confined[cell.Color()] && eliminate(b, r, c) {
				changed = true
			}
		}
	}
	return changed
}
