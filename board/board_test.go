package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellPredicates(t *testing.T) {
	var c Cell
	c = c.WithColor(7)
	assert.Equal(t, 7, c.Color())
	assert.True(t, c.EmptyForSolver())
	assert.True(t, c.EmptyAll())

	c = c.WithSolutionQueen(true)
	assert.True(t, c.IsSolutionQueen())
	assert.True(t, c.EmptyForSolver(), "Q alone must not affect empty-for-solver")
	assert.False(t, c.EmptyAll(), "Q set must fail empty-all")

	c = c.WithPlayerQueen(true)
	assert.False(t, c.EmptyForSolver(), "P set must fail empty-for-solver")

	c2 := c.WithPlayerQueen(false).WithEliminated(true)
	assert.False(t, c2.EmptyForSolver(), "E set must fail empty-for-solver")
	assert.Equal(t, 7, c2.Color(), "flag mutation must not disturb color")
}

func TestNewRejectsOutOfRange(t *testing.T) {
	_, err := New(4)
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = New(16)
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = New(5)
	require.NoError(t, err)

	_, err = New(15)
	require.NoError(t, err)
}

func TestCloneAndEqual(t *testing.T) {
	b, err := New(6)
	require.NoError(t, err)
	b.Set(2, 3, Cell(0).WithColor(4).WithPlayerQueen(true))

	clone := b.Clone()
	assert.True(t, Equal(b, clone))
	clone.Set(0, 0, Cell(0).WithColor(1))
	assert.False(t, Equal(b, clone), "mutating clone must not affect source")

	var scratch Board
	b.CloneInto(&scratch)
	assert.True(t, Equal(b, &scratch))
}

func TestRoundTripSerialize(t *testing.T) {
	b, err := New(5)
	require.NoError(t, err)
	for i := range b.Cells {
		b.Cells[i] = Cell((i * 7) % 32)
	}

	s := Serialize(b)
	parsed, err := Parse(s)
	require.NoError(t, err)
	assert.True(t, Equal(b, parsed), "round trip mismatch")
	assert.Equal(t, s, Serialize(parsed))
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"5|00",
		"05|00,01",        // wrong cell count for size 5
		"04|" + zeros(16), // size below MinSize
	}
	for _, s := range cases {
		_, err := Parse(s)
		assert.Error(t, err, "Parse(%q) should fail", s)
	}
}

func zeros(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			out += ","
		}
		out += "00"
	}
	return out
}
