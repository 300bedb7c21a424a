package board

// absent marks a direction unavailable from a given empty-cell index.
const absent int8 = -1

// MoveTable[e][d] gives the board index of the tile that slides when the
// empty cell is at e and the move is in direction d, or absent if no tile
// can slide in that direction from e.
//
// Built once at init from the grid topology (not hand-copied) so the
// derivation is auditable, but every entry matches the reference puzzle's
// fixed table exactly: MoveTable[6] == {2, 7, 10, 5}, MoveTable[15] ==
// {11, -1, -1, 14}.
var MoveTable [NumCells][NumDirections]int8

func init() {
	for e := 0; e < NumCells; e++ {
		row, col := e/Side, e%Side
		MoveTable[e][Down] = neighborOrAbsent(row > 0, e-Side)
		MoveTable[e][Left] = neighborOrAbsent(col < Side-1, e+1)
		MoveTable[e][Up] = neighborOrAbsent(row < Side-1, e+Side)
		MoveTable[e][Right] = neighborOrAbsent(col > 0, e-1)
	}
}

func neighborOrAbsent(ok bool, idx int) int8 {
	if !ok {
		return absent
	}
	return int8(idx)
}

// PeekTile reports the tile that would slide if Apply(b, emptyIndex, dir)
// were called, without mutating b. ok is false if dir is unavailable from
// emptyIndex.
func PeekTile(b Board, emptyIndex int, dir Direction) (tile Tile, moveIndex int, ok bool) {
	mi := MoveTable[emptyIndex][dir]
	if mi < 0 {
		return 0, 0, false
	}
	return b[mi], int(mi), true
}

// Apply slides, in place, the tile reachable from emptyIndex in direction
// dir into the empty cell. It returns the new empty index and the tile
// that moved. ok is false (and b is left unchanged) if dir is unavailable.
func Apply(b *Board, emptyIndex int, dir Direction) (newEmptyIndex int, tile Tile, ok bool) {
	mi := MoveTable[emptyIndex][dir]
	if mi < 0 {
		return emptyIndex, 0, false
	}
	tile = b[mi]
	b[emptyIndex] = tile
	b[mi] = EmptyTile
	return int(mi), tile, true
}

// Undo reverses a single Apply call. newEmptyIndex and oldEmptyIndex are
// the empty indices after and before that Apply, and tile is the tile it
// returned. Undo restores b to exactly its pre-Apply state.
func Undo(b *Board, newEmptyIndex, oldEmptyIndex int, tile Tile) {
	b[newEmptyIndex] = tile
	b[oldEmptyIndex] = EmptyTile
}
