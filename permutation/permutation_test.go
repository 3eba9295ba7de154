package permutation

import (
	"context"
	"testing"

	"github.com/arkazolin/queens/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnumerateN5 pins the count measured from a first run of
// enumerate(5): 14, matching A002464(5) and the adjacent-column
// king-distance rule enforced in enumerate.go.
func TestEnumerateN5(t *testing.T) {
	rows, count, err := enumerate(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, 14, count)
	require.Len(t, rows, count*5)

	for i := 0; i < count; i++ {
		perm := rows[i*5 : (i+1)*5]
		assertValidPermutation(t, perm)
	}
}

func assertValidPermutation(t *testing.T, perm []int8) {
	t.Helper()
	n := len(perm)
	seen := make(map[int8]bool, n)
	for _, r := range perm {
		assert.False(t, seen[r], "permutation %v repeats row %d", perm, r)
		seen[r] = true
	}
	for c := 0; c+1 < n; c++ {
		d := perm[c] - perm[c+1]
		assert.Falsef(t, d == 1 || d == -1, "permutation %v has adjacent-column king attack at col %d", perm, c)
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	rows := []int8{0, 1, 2, 14, 3, 9}
	packed := packRows(rows)
	require.Len(t, packed, 3)

	got := unpackRows(packed, len(rows))
	assert.Equal(t, rows, got)
}

func TestPackOddLengthZeroPads(t *testing.T) {
	rows := []int8{5, 7, 9}
	packed := packRows(rows)
	require.Len(t, packed, 2)
	assert.Zero(t, packed[1]&0x0F, "trailing nibble must be zero padded")
}

func TestStoreGetAllPackedUnpackedAgree(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	packed := NewStore(dir, Packed)
	unpacked := NewStore(dir, Unpacked)

	rp, err := packed.GetAll(ctx, 6)
	require.NoError(t, err)
	ru, err := unpacked.GetAll(ctx, 6)
	require.NoError(t, err)

	assert.Equal(t, rp.BoardsCount, ru.BoardsCount)
	assert.Equal(t, rp.Rows, ru.Rows)
}

func TestGetAllRejectsOutOfRange(t *testing.T) {
	s := NewStore(t.TempDir(), Packed)
	_, err := s.GetAll(context.Background(), 4)
	require.ErrorIs(t, err, ErrSizeOutOfRange)

	_, err = s.GetAll(context.Background(), 16)
	require.ErrorIs(t, err, ErrSizeOutOfRange)
}

func TestGetRandomMatchesEnumeratedSet(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	s := NewStore(dir, Packed)

	all, err := s.GetAll(ctx, 6)
	require.NoError(t, err)

	valid := make(map[string]bool)
	for i := 0; i < all.BoardsCount; i++ {
		valid[permKey(all.At(i))] = true
	}

	src := rng.NewSource(99)
	for i := 0; i < 25; i++ {
		got, err := s.GetRandom(ctx, 6, src)
		require.NoError(t, err)
		require.Len(t, got, 6)
		assert.True(t, valid[permKeyInt(got)], "GetRandom produced permutation %v not in enumerated set", got)
	}
}

func permKey(p []int8) string {
	out := make([]byte, len(p))
	for i, v := range p {
		out[i] = byte(v)
	}

	return string(out)
}

func permKeyInt(p []int) string {
	out := make([]byte, len(p))
	for i, v := range p {
		out[i] = byte(v)
	}

	return string(out)
}
