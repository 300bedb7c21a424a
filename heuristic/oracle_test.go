package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilepuzzle/fifteen/board"
	"github.com/tilepuzzle/fifteen/heuristic"
	"github.com/tilepuzzle/fifteen/pattern"
	"github.com/tilepuzzle/fifteen/pdb"
)

func solvedTable(t *testing.T) pdb.Table {
	t.Helper()
	table, err := pdb.Build()
	require.NoError(t, err)
	return table
}

func TestOracleHZeroOnSolvedBoard(t *testing.T) {
	o, err := heuristic.NewOracle(solvedTable(t))
	require.NoError(t, err)

	h, err := o.H(board.Solved())
	require.NoError(t, err)
	assert.Equal(t, 0, h)
}

func TestOracleHPositiveAfterOneMove(t *testing.T) {
	o, err := heuristic.NewOracle(solvedTable(t))
	require.NoError(t, err)

	b := board.Solved()
	empty := b.EmptyIndex()
	_, _, ok := board.Apply(&b, empty, board.Down)
	require.True(t, ok)

	h, err := o.H(b)
	require.NoError(t, err)
	assert.Greater(t, h, 0)
}

func TestOracleHMonotoneUnderSingleMove(t *testing.T) {
	// Admissibility requires h to change by at most 1 across a single
	// slide, since that slide itself changes the true distance to the
	// goal by at most 1.
	o, err := heuristic.NewOracle(solvedTable(t))
	require.NoError(t, err)

	b := board.Solved()
	prevH, err := o.H(b)
	require.NoError(t, err)

	empty := b.EmptyIndex()
	for dir := board.Direction(0); dir < board.NumDirections; dir++ {
		moved := b
		newEmpty, _, ok := board.Apply(&moved, empty, dir)
		if !ok {
			continue
		}
		h, err := o.H(moved)
		require.NoError(t, err)
		diff := h - prevH
		assert.LessOrEqual(t, diff, 1)
		assert.GreaterOrEqual(t, diff, -1)
		_ = newEmpty
	}
}

func TestNewOracleRejectsWrongSize(t *testing.T) {
	_, err := heuristic.NewOracle(pdb.Table{1, 2, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, heuristic.ErrSizeMismatch)
}

func TestLoadOracleRoundTrip(t *testing.T) {
	table := solvedTable(t)
	path := t.TempDir() + "/" + pdb.DefaultFileName
	require.NoError(t, pdb.Save(path, table))

	o, err := heuristic.LoadOracle(path)
	require.NoError(t, err)

	h, err := o.H(board.Solved())
	require.NoError(t, err)
	assert.Equal(t, 0, h)
}

func TestOracleHWithinSummedByteBound(t *testing.T) {
	// Sanity: h of the solved board does not exceed the maximum
	// per-pattern byte value summed across all three patterns (a loose
	// but real bound).
	o, err := heuristic.NewOracle(solvedTable(t))
	require.NoError(t, err)

	b := board.Solved()
	h, err := o.H(b)
	require.NoError(t, err)
	assert.LessOrEqual(t, h, 255*len(pattern.Patterns))
}
