// Package queens (github.com/arkazolin/queens) is a generator and
// human-style incremental solver for the color-region queens puzzle
// family: place one queen per row, column, and color region, with no
// two queens touching even diagonally.
//
// What is queens?
//
//	A small, pure-Go toolkit bringing together:
//
//	  - Permutation store: enumerate and cache non-attacking row
//	    permutations under a weakened adjacent-column king rule
//	  - Board model: a flat, bit-packed N x N grid with a compact
//	    textual wire format
//	  - Board generator: seed a random solution, flood-fill regions,
//	    and accept only boards with a provably unique solution
//	  - Incremental solver: a twelve-strategy deduction ladder that
//	    exposes one step per call, suitable for animating a solve
//
// Everything is organized under four subpackages, plus the ambient
// rng, internal/render, and cmd/queens collaborators:
//
//	permutation/ — enumeration, nibble-packed cache, random sampling
//	board/       — Cell bitfield, Board, text codec
//	generator/   — stochastic region generation and the uniqueness oracle
//	solver/      — the fixed-order strategy ladder
//
// Quick ASCII example, N=5, one color region per queen:
//
//	 . Q . . .
//	 . . . Q .
//	 Q . . . .
//	 . . Q . .
//	 . . . . Q
//
// See SPEC_FULL.md and DESIGN.md for the full component design and the
// grounding behind each package's choices.
//
//	go get github.com/arkazolin/queens
package queens
