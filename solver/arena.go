package solver

import "github.com/arkazolin/queens/board"

// arena holds the one scratch board hypothetical-play strategies (9, 11,
// 12) reuse across every candidate cell within a single IncrementalSolve
// call, per spec.md §9's "preallocate one scratch board per solver call"
// note, generalizing core.Graph.Clone's copy-into-fresh-value
// convention. At N ≤ 15 the remaining per-strategy O(N) counter slices
// are cheap enough that arena does not also pool them.
type arena struct {
	scratch board.Board
}

func newArena(size int) *arena {
	return &arena{scratch: board.Board{Size: size, Cells: make([]board.Cell, size*size)}}
}

// hypothesize clones b into the arena's scratch board and places a
// player queen at (r, c), returning the scratch board for the caller to
// propagate consequences into.
func (a *arena) hypothesize(b *board.Board, r, c int) *board.Board {
	b.CloneInto(&a.scratch)
	place(&a.scratch, r, c)
	return &a.scratch
}
