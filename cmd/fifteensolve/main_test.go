package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilepuzzle/fifteen/heuristic"
	"github.com/tilepuzzle/fifteen/pdb"
)

func testOracle(t *testing.T) *heuristic.Oracle {
	t.Helper()
	table, err := pdb.Build()
	require.NoError(t, err)
	o, err := heuristic.NewOracle(table)
	require.NoError(t, err)
	return o
}

func TestRunSolvesSolvedBoard(t *testing.T) {
	oracle := testOracle(t)
	in := strings.NewReader("1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 0\n")
	var out bytes.Buffer

	require.NoError(t, run(in, &out, oracle))
	assert.Equal(t, "0 moves:  \n", out.String())
}

func TestRunSkipsShortAndUnsolvableLines(t *testing.T) {
	oracle := testOracle(t)
	in := strings.NewReader("too short\n1 2 3 4 5 6 7 8 9 10 11 12 14 13 15 0 padding-for-length\n")
	var out bytes.Buffer

	require.NoError(t, run(in, &out, oracle))
	assert.Empty(t, out.String())
}
