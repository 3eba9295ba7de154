package permutation

import "errors"

// Sentinel errors for permutation enumeration, caching, and sampling.
var (
	// ErrSizeOutOfRange indicates N is outside [board.MinSize, board.MaxSize].
	ErrSizeOutOfRange = errors.New("permutation: size out of range [5, 15]")
	// ErrCacheCorrupt indicates a cache file's body length is inconsistent
	// with its header count.
	ErrCacheCorrupt = errors.New("permutation: cache file body does not match header count")
	// ErrEmptyResult indicates GetRandom was asked to sample from a size
	// whose enumeration produced zero permutations (never occurs for
	// N in [5,15], but guarded rather than assumed).
	ErrEmptyResult = errors.New("permutation: no permutations available to sample")
)
