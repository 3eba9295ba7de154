package permutation

import (
	"context"
	"os"

	"github.com/arkazolin/queens/board"
	"github.com/arkazolin/queens/rng"
)

// Store loads and persists permutation enumerations under a single
// directory, one cache file per (size, PackMode) pair.
type Store struct {
	Dir  string
	Mode PackMode
}

// NewStore returns a Store rooted at dir, using mode for new cache
// files it creates. dir is created on first write if absent.
func NewStore(dir string, mode PackMode) *Store {
	return &Store{Dir: dir, Mode: mode}
}

// GetAll loads every complete permutation for size from cache, building
// and caching it first if no cache file exists yet. Fails if size is
// outside [board.MinSize, board.MaxSize].
func (s *Store) GetAll(ctx context.Context, size int) (*Result, error) {
	if size < board.MinSize || size > board.MaxSize {
		return &Result{OK: false}, ErrSizeOutOfRange
	}

	path := cachePath(s.Dir, size, s.Mode)
	if rows, count, err := readCacheAll(path, size, s.Mode); err == nil {
		return &Result{Size: size, BoardsCount: count, Rows: rows, OK: true}, nil
	}

	rows, count, err := enumerate(ctx, size)
	if err != nil {
		return &Result{OK: false}, err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return &Result{OK: false}, err
	}
	if err := writeCacheFile(path, size, count, rows, s.Mode); err != nil {
		return &Result{OK: false}, err
	}

	return &Result{Size: size, BoardsCount: count, Rows: rows, OK: true}, nil
}

// GetRandom ensures the cache for size exists, then reads exactly one
// permutation at a uniformly random index without materializing the
// rest of the file. The returned permutation is drawn uniformly from
// the K enumerated permutations for size.
func (s *Store) GetRandom(ctx context.Context, size int, src *rng.Source) ([]int, error) {
	if size < board.MinSize || size > board.MaxSize {
		return nil, ErrSizeOutOfRange
	}

	path, count, err := ensureCacheFile(s.Dir, size, s.Mode, func() ([]int8, int, error) {
		return enumerate(ctx, size)
	})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrEmptyResult
	}

	idx := src.Intn(0, count-1)
	rows, err := readPermutationAt(path, size, s.Mode, idx)
	if err != nil {
		return nil, err
	}

	out := make([]int, size)
	for i, v := range rows {
		out[i] = int(v)
	}

	return out, nil
}
