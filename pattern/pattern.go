package pattern

import "github.com/tilepuzzle/fifteen/board"

// Pow16_6 is 16^6, the size of the sparse index space for a 6-tile
// pattern and the stride between pattern slots in the shared PDB table.
const Pow16_6 = 1 << 24 // 16^6 == 2^24

// TotalStates is the combined size of the PDB: 2*16^6 + 16^3 slots, one
// byte each.
const TotalStates = 2*Pow16_6 + 16*16*16

// Pattern describes one disjoint tile pattern: which tiles it tracks, the
// same tiles relabelled under the diagonal reflection, and the pattern's
// byte offset within the shared PDB table.
type Pattern struct {
	// Tiles are the pattern's tile values, in the fixed order the sparse
	// index function walks them.
	Tiles []board.Tile
	// ReflectedTiles are the tiles of the diagonally-reflected
	// sub-problem, in the same walk order as Tiles.
	ReflectedTiles []board.Tile
	// Offset is this pattern's starting byte within the shared PDB table.
	Offset int
}

// Size returns the number of tiles in the pattern.
func (p Pattern) Size() int {
	return len(p.Tiles)
}

// WithEmpty returns the pattern's "visited pattern": the empty tile (0)
// prepended to Tiles. The PDB builder uses this expanded tile list to
// track states it has already enqueued, since two states differing only
// in the empty cell's position can have different successors.
func (p Pattern) WithEmpty() []board.Tile {
	out := make([]board.Tile, 0, len(p.Tiles)+1)
	out = append(out, board.EmptyTile)
	out = append(out, p.Tiles...)
	return out
}

// Patterns are the three disjoint tile patterns used by the 4x4 PDB,
// partitioning tiles 1..15 into groups of 6, 6, and 3.
var Patterns = [3]Pattern{
	{
		Tiles:          []board.Tile{1, 5, 6, 9, 10, 13},
		ReflectedTiles: []board.Tile{1, 2, 6, 3, 7, 4},
		Offset:         0,
	},
	{
		Tiles:          []board.Tile{7, 8, 11, 12, 14, 15},
		ReflectedTiles: []board.Tile{10, 14, 11, 15, 8, 12},
		Offset:         Pow16_6,
	},
	{
		Tiles:          []board.Tile{2, 3, 4},
		ReflectedTiles: []board.Tile{5, 9, 13},
		Offset:         2 * Pow16_6,
	},
}
