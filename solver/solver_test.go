package solver

import (
	"context"
	"testing"

	"github.com/arkazolin/queens/board"
	"github.com/arkazolin/queens/generator"
	"github.com/arkazolin/queens/permutation"
	"github.com/arkazolin/queens/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStrategyEliminateQueenSurroundingMarksExactRing is scenario 6:
// a single P-queen at (2,2) on a 5x5 board must eliminate row 2, column
// 2, and the four king-diagonal neighbors, and nothing else.
func TestStrategyEliminateQueenSurroundingMarksExactRing(t *testing.T) {
	b, err := board.New(5)
	require.NoError(t, err)
	place(b, 2, 2)

	changed, err := strategyEliminateQueenSurrounding(context.Background(), b, nil)
	require.NoError(t, err)
	require.True(t, changed, "expected the strategy to mutate the board")

	want := map[[2]int]bool{
		{1, 1}: true, {1, 3}: true, {3, 1}: true, {3, 3}: true,
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			inRowOrCol := r == 2 || c == 2
			wantElim := inRowOrCol || want[[2]int{r, c}]
			assert.Equal(t, wantElim, b.At(r, c).IsEliminated(), "cell (%d,%d)", r, c)
		}
	}
}

// TestStrategyNRegionsInNLinesSqueezesTwoRows is scenario 5: two rows
// together contain only two colors; those colors must be eliminated
// from every other row.
func TestStrategyNRegionsInNLinesSqueezesTwoRows(t *testing.T) {
	b, err := board.New(6)
	require.NoError(t, err)

	for c := 0; c < 6; c++ {
		color := 1
		if c >= 3 {
			color = 2
		}
		b.Set(0, c, board.Cell(0).WithColor(color))
		b.Set(1, c, board.Cell(0).WithColor(color))
	}
	for r := 2; r < 6; r++ {
		for c := 0; c < 6; c++ {
			color := (r*6+c)%4 + 3 // colors 3..6, never 1 or 2
			b.Set(r, c, board.Cell(0).WithColor(color))
		}
	}
	// give rows 2..5 at least one cell of color 1 or 2 to squeeze away.
	b.Set(2, 0, board.Cell(0).WithColor(1))
	b.Set(3, 0, board.Cell(0).WithColor(2))

	changed, err := strategyNRegionsInNLines(context.Background(), b, nil)
	require.NoError(t, err)
	require.True(t, changed, "expected the squeeze to mutate the board")

	assert.True(t, b.At(2, 0).IsEliminated(), "expected (2,0) color 1 eliminated outside the confined rows")
	assert.True(t, b.At(3, 0).IsEliminated(), "expected (3,0) color 2 eliminated outside the confined rows")
	assert.False(t, b.At(0, 0).IsEliminated(), "confined row 0 must not be eliminated by its own squeeze")
	assert.False(t, b.At(1, 3).IsEliminated(), "confined row 1 must not be eliminated by its own squeeze")
}

func TestStrategyInvalidQueenSanityClearsMismatchedPlacement(t *testing.T) {
	b, err := board.New(5)
	require.NoError(t, err)
	b.Set(0, 0, board.Cell(0).WithSolutionQueen(true).WithColor(1))
	b.Set(1, 1, board.Cell(0).WithPlayerQueen(true).WithColor(2))

	changed, err := strategyInvalidQueenSanity(context.Background(), b, nil)
	require.NoError(t, err)
	require.True(t, changed, "expected the mismatched P-queen to be cleared")
	assert.False(t, b.At(1, 1).IsPlayerQueen())
}

func TestStrategyLastFreeRowColumnPlacesTheOnlyOpenCell(t *testing.T) {
	b, err := board.New(5)
	require.NoError(t, err)
	for c := 0; c < 5; c++ {
		b.Set(0, c, board.Cell(0).WithColor(c+1))
		if c != 3 {
			b.Set(0, c, b.At(0, c).WithEliminated(true))
		}
	}

	changed, err := strategyLastFreeRowColumn(context.Background(), b, nil)
	require.NoError(t, err)
	require.True(t, changed, "expected the sole open cell to be placed")
	assert.True(t, b.At(0, 3).IsPlayerQueen())
}

// TestStrategyPlacementEmptiesLineDetectsLineDeath exercises strategy 9's
// line-death contradiction check directly: hypothesizing at (1,1) sends a
// king-diagonal elimination into (2,2), row 2's only remaining empty
// cell, killing row 2; hypothesizing at (2,2) sends one into (1,1),
// column 1's only remaining empty cell, killing column 1. Both
// hypotheses are refuted and eliminated.
func TestStrategyPlacementEmptiesLineDetectsLineDeath(t *testing.T) {
	b, err := board.New(5)
	require.NoError(t, err)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			b.Set(r, c, board.Cell(0).WithEliminated(true))
		}
	}
	b.Set(1, 1, board.Cell(0).WithColor(1))
	b.Set(2, 2, board.Cell(0).WithColor(2))

	ar := newArena(b.Size)
	changed, err := strategyPlacementEmptiesLine(context.Background(), b, ar)
	require.NoError(t, err)
	require.True(t, changed, "expected a line-death contradiction to be found")

	assert.True(t, b.At(1, 1).IsEliminated(), "hypothesis at (1,1) kills row 2 via its king diagonal")
	assert.True(t, b.At(2, 2).IsEliminated(), "hypothesis at (2,2) kills column 1 via its king diagonal")
}

// TestStrategyPlacementEliminatesColorRefutesHypothesis is strategy 11:
// hypothesizing at (2,2) sweeps its whole row, wiping out color 3's one
// remaining cell at (2,4), while colors 1, 2 and 5 hold queens and color
// 4 keeps its cell at (3,4). The hypothesis is refuted and (2,2) alone is
// eliminated.
func TestStrategyPlacementEliminatesColorRefutesHypothesis(t *testing.T) {
	b, err := board.New(5)
	require.NoError(t, err)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			b.Set(r, c, board.Cell(0).WithEliminated(true))
		}
	}
	b.Set(0, 4, board.Cell(0).WithColor(1).WithPlayerQueen(true))
	b.Set(1, 4, board.Cell(0).WithColor(2).WithPlayerQueen(true))
	b.Set(2, 2, board.Cell(0).WithColor(9))
	b.Set(2, 4, board.Cell(0).WithColor(3))
	b.Set(3, 4, board.Cell(0).WithColor(4))
	b.Set(4, 4, board.Cell(0).WithColor(5).WithPlayerQueen(true))

	ar := newArena(b.Size)
	changed, err := strategyPlacementEliminatesColor(context.Background(), b, ar)
	require.NoError(t, err)
	require.True(t, changed, "expected the color-3 refutation to be found")

	assert.True(t, b.At(2, 2).IsEliminated(), "hypothesis cell wiping out color 3 must be eliminated")
	assert.False(t, b.At(2, 4).IsEliminated(), "color 3's cell is eliminated only on the clone, not on the real board")
	assert.False(t, b.At(3, 4).IsEliminated(), "color 4's only cell must be untouched")
}

// TestStrategyForcingSequenceRefutationEliminatesForcedInOneCell is
// scenario 4: a 7x7 board with a known forced-in-one-step refutation
// cell at (2,2) (hypothesizing there immediately wipes out color 3's
// last cell, a cost==1 refutation per strategy 12's tie-break rule).
// Strategy 12 must eliminate exactly that cell and nothing else on its
// first return.
func TestStrategyForcingSequenceRefutationEliminatesForcedInOneCell(t *testing.T) {
	b, err := board.New(7)
	require.NoError(t, err)
	for r := 0; r < 7; r++ {
		for c := 0; c < 7; c++ {
			b.Set(r, c, board.Cell(0).WithEliminated(true))
		}
	}
	b.Set(0, 6, board.Cell(0).WithColor(1).WithPlayerQueen(true))
	b.Set(1, 6, board.Cell(0).WithColor(2).WithPlayerQueen(true))
	b.Set(2, 2, board.Cell(0).WithColor(9))
	b.Set(2, 6, board.Cell(0).WithColor(3))
	b.Set(3, 6, board.Cell(0).WithColor(4).WithPlayerQueen(true))
	b.Set(4, 6, board.Cell(0).WithColor(5).WithPlayerQueen(true))
	b.Set(5, 6, board.Cell(0).WithColor(6).WithPlayerQueen(true))
	b.Set(6, 6, board.Cell(0).WithColor(7).WithPlayerQueen(true))

	ar := newArena(b.Size)
	changed, err := strategyForcingSequenceRefutation(context.Background(), b, ar)
	require.NoError(t, err)
	require.True(t, changed, "expected the forced-in-one-step refutation to be found")

	assert.True(t, b.At(2, 2).IsEliminated(), "the forced-in-one-step cell must be eliminated")
	assert.False(t, b.At(2, 6).IsEliminated(), "color 3's cell is eliminated only on the clone, not on the real board")
	for _, q := range [][2]int{{0, 6}, {1, 6}, {3, 6}, {4, 6}, {5, 6}, {6, 6}} {
		assert.True(t, b.At(q[0], q[1]).IsPlayerQueen(), "queen at (%d,%d) must be untouched", q[0], q[1])
	}
}

func TestIsSolvedRejectsAdjacentQueens(t *testing.T) {
	b, err := board.New(5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		b.Set(i, i, board.Cell(0).WithPlayerQueen(true).WithColor(i+1))
	}
	assert.False(t, IsSolved(b), "diagonal placement has consecutive queens at king-distance 1 and must not be solved")
}

// TestIncrementalSolveReachesSolvedOnGeneratedBoard is scenario 1:
// generate(5) must be solvable by repeated IncrementalSolve calls in a
// modest number of steps.
func TestIncrementalSolveReachesSolvedOnGeneratedBoard(t *testing.T) {
	ctx := context.Background()
	store := permutation.NewStore(t.TempDir(), permutation.Packed)
	src := rng.NewSource(42)

	b, err := generator.Generate(ctx, 5, generator.DefaultConfig(), store, src)
	require.NoError(t, err)

	const maxSteps = 200
	tag := FAILED
	for i := 0; i < maxSteps; i++ {
		tag, err = IncrementalSolve(ctx, b)
		require.NoError(t, err)
		if tag == SOLVED || tag == FAILED {
			break
		}
	}

	assert.Equal(t, SOLVED, tag, "expected SOLVED within %d steps", maxSteps)
}
