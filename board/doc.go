// Package board defines the Cell bitfield and the Board grid that the
// permutation store, the generator, and the solver all share.
//
// A Cell is a single byte: the low nibble holds a color id (0 means "no
// color", used only transiently during generation); three of the high
// bits are independent flags (Q = solution queen, P = player/solver
// queen, E = eliminated). Board is a flat, row-major [N*N]Cell plus its
// size; there is no per-row slice indirection, so Clone is a single
// copy and Equal is a single linear pass over the cells.
//
//	go get github.com/arkazolin/queens/board
package board
