// Package permutation enumerates every N-queens placement under the
// puzzle's weaker attack rule — row, column, and adjacent-column
// king-step diagonal only, long diagonals permitted — and persists the
// result to a nibble-packable on-disk cache keyed by board size.
//
// Two entry points serve the rest of the module:
//
//   - GetAll loads (or builds and caches) every complete permutation for
//     a size, decompressed to one row value per byte in memory. The
//     generator's uniqueness oracle (package generator) uses this to
//     test a candidate board for exactly-one-compatible-permutation.
//   - GetRandom ensures the cache exists, then reads exactly one
//     permutation at a uniformly random index without materializing the
//     rest of the file — the board generator's seed step.
//
// Enumeration proceeds column by column over a frontier of partial
// permutations, in the same layered-frontier shape algorithms.BFS uses
// for level-by-level graph traversal, generalized here to a "level" per
// board column instead of per graph depth. Persistence follows the
// fixed binary layout spec'd for QueensPermutations_<NN><c|n>.bin: a
// little-endian u32 permutation count, then the concatenated row
// bodies, packed two values per byte (high nibble first) or one value
// per byte depending on the filename's trailing c/n.
package permutation
