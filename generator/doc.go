// Package generator builds a colored Queens board with a guaranteed
// unique solution: seed queens from a random permutation (package
// permutation), grow region colors outward with a stochastic flood
// fill, and retry until the uniqueness oracle (IsUnique, which checks
// the enumerated permutations directly) accepts the result.
//
// The flood fill's neighbor scan reuses the fixed-order offset tables
// from internal/neighbors — the same up/down/left/right convention
// gridgraph.GridGraph precomputed for its connected-component walk —
// and every stochastic decision is drawn from an injected *rng.Source
// rather than a package-global generator, following builder's
// injected-RNG convention for reproducible structural randomness.
package generator
