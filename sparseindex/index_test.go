package sparseindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tilepuzzle/fifteen/board"
	"github.com/tilepuzzle/fifteen/pattern"
	"github.com/tilepuzzle/fifteen/sparseindex"
)

// solvedIndex is Σ (tiles[i]-1) * 16^i: the index of the placement that
// puts every listed tile on its solved cell.
func solvedIndex(tiles []board.Tile) int {
	idx, pow := 0, 1
	for _, tile := range tiles {
		idx += (int(tile) - 1) * pow
		pow *= board.NumCells
	}
	return idx
}

func TestIndexOfSolvedBoardPlacesEachTileOnItsSolvedCell(t *testing.T) {
	b := board.Solved()
	for _, p := range pattern.Patterns {
		assert.Equal(t, solvedIndex(p.Tiles), sparseindex.Index(b, p.Tiles), "pattern %v", p.Tiles)
	}
}

func TestIndexIsInjectiveOverPatternPlacements(t *testing.T) {
	p := pattern.Patterns[2] // {2,3,4}, small enough to permute exhaustively
	base := board.Solved()

	seen := make(map[int]board.Board)
	positions := []int{0, 1, 2, 3, 4, 5}
	permute(positions, 0, func(perm []int) {
		b := base
		for i := range b {
			b[i] = board.EmptyTile
		}
		// place pattern tiles at a permutation of positions, fill the rest
		// with placeholder distinguishable tiles so the board stays valid
		// enough for Index's lookups.
		for i, tile := range p.Tiles {
			b[positions[perm[i]]] = tile
		}
		next := board.Tile(100)
		for i := range b {
			if b[i] == board.EmptyTile && i != 15 {
				b[i] = next
				next++
			}
		}
		idx := sparseindex.Index(b, p.Tiles)
		if prior, ok := seen[idx]; ok {
			assert.Equal(t, prior, b, "index %d collided for two distinct placements", idx)
		} else {
			seen[idx] = b
		}
	})
}

func TestIndexIndependentOfNonPatternTiles(t *testing.T) {
	p := pattern.Patterns[0]
	a := board.Solved()
	c := board.Solved()
	// scramble a non-pattern tile (12) and the empty cell's position in c,
	// leaving pattern-tile positions identical.
	board.Apply(&c, c.EmptyIndex(), board.Down)
	assert.Equal(t, sparseindex.Index(a, p.Tiles), sparseindex.Index(c, p.Tiles))
}

func TestReflectedIndexOfSolvedBoardMatchesIndex(t *testing.T) {
	b := board.Solved()
	for _, p := range pattern.Patterns {
		assert.Equal(t, solvedIndex(p.Tiles), sparseindex.ReflectedIndex(b, p.ReflectedTiles))
	}
}

// permute calls fn with every permutation of indices [0,len(xs)) by
// recursive swap-and-restore, reusing a single backing slice.
func permute(xs []int, k int, fn func([]int)) {
	perm := make([]int, len(xs))
	for i := range perm {
		perm[i] = i
	}
	var rec func(k int)
	rec = func(k int) {
		if k == len(perm) {
			fn(perm)
			return
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)
}
