// Package rng centralizes deterministic random generation for the board
// generator and the permutation store's random-sample reader.
//
// It wraps github.com/MichaelTJones/pcg's PCG64 generator — the seedable
// PCG-style source spec.md's external-interfaces section calls for —
// behind the same derive-a-substream-from-a-parent-seed shape used
// elsewhere in this codebase's ancestry for independent, reproducible
// RNG streams: one parent seed fans out into one stream per concern
// (flood-fill sampling, permutation-index sampling) via a SplitMix64
// avalanche mix, so reusing a seed never silently correlates two
// unrelated draws.
//
// Concurrency: a *Source is not goroutine-safe; each concern should
// derive and own its own stream rather than share one across goroutines
// (moot today since the whole pipeline is single-threaded, but kept as
// a documented contract for future callers).
package rng
