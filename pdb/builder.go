package pdb

import (
	"fmt"

	"github.com/tilepuzzle/fifteen/board"
	"github.com/tilepuzzle/fifteen/pattern"
	"github.com/tilepuzzle/fifteen/sparseindex"
)

// Unset marks a PDB slot that no reachable placement ever claimed.
const Unset byte = 255

// dontCare fills every board cell outside the pattern currently being
// built and the empty cell. It must be distinct from EmptyTile and from
// every real tile value, which 255 is.
const dontCare board.Tile = 255

// Table is the shared pattern-database heuristic: TotalStates bytes, one
// per (pattern, placement) slot.
type Table []byte

// Build runs an independent breadth-first search for every pattern in
// pattern.Patterns and assembles the results into a single Table of
// pattern.TotalStates bytes.
func Build() (Table, error) {
	t := make(Table, pattern.TotalStates)
	for i := range t {
		t[i] = Unset
	}
	for _, p := range pattern.Patterns {
		sub, err := BuildPattern(p)
		if err != nil {
			return nil, err
		}
		copy(t[p.Offset:p.Offset+len(sub)], sub)
	}
	return t, nil
}

// queueNode is one entry of the BFS frontier: the reduced board
// (pattern tiles placed, everything else don't-care), the empty cell's
// position, and the pattern-move cost to reach this state from solved.
type queueNode struct {
	b          board.Board
	emptyIndex int
	cost       byte
}

// BuildPattern performs the breadth-first search for a single pattern and
// returns its dense heuristic sub-table: length 16^p.Size(), unoffset.
// Slot i holds the minimum number of pattern-tile moves needed to reach
// the placement sparseindex.Index decodes as i, or Unset if that
// placement is unreachable.
//
// The search explores an expanded state (pattern-tile placement plus the
// empty cell's position) via a "visited pattern" table so that two states
// differing only in the empty cell reach their own successors, but stores
// only the reduced state (pattern tiles only) in the returned sub-table —
// the minimum over all empty-cell positions for that placement.
//
// Complexity: O(16^(p.Size()+1)) time and memory, for the expanded
// visited table; the returned sub-table is the smaller O(16^p.Size()).
func BuildPattern(p pattern.Pattern) (sub []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			sub = nil
			err = fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()

	n := p.Size()
	subSize := 1
	for i := 0; i < n; i++ {
		subSize *= board.NumCells
	}
	sub = make([]byte, subSize)
	for i := range sub {
		sub[i] = Unset
	}

	visitedTiles := p.WithEmpty()
	visited := make([]byte, subSize*board.NumCells)
	for i := range visited {
		visited[i] = Unset
	}

	var root board.Board
	for i := range root {
		root[i] = dontCare
	}
	for _, tile := range p.Tiles {
		root[tile-1] = tile
	}
	root[board.NumCells-1] = board.EmptyTile

	queue := make([]queueNode, 0, 4096)
	queue = append(queue, queueNode{b: root, emptyIndex: board.NumCells - 1, cost: 0})
	visited[sparseindex.Index(root, visitedTiles)] = 0
	sub[sparseindex.Index(root, p.Tiles)] = 0

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for dir := board.Direction(0); dir < board.NumDirections; dir++ {
			tile, _, ok := board.PeekTile(cur.b, cur.emptyIndex, dir)
			if !ok {
				continue
			}

			// Copy rather than mutate-then-undo: board.Board is a small
			// value type, so each neighbor gets its own cheap copy
			// instead of sharing and restoring cur's backing array.
			next := cur.b
			newEmpty, _, _ := board.Apply(&next, cur.emptyIndex, dir)

			cost := cur.cost
			if tile != dontCare {
				// A move of a pattern tile is charged to this pattern;
				// a don't-care tile moves for free, which is what makes
				// the heuristic additive across disjoint patterns.
				cost++
			}

			vi := sparseindex.Index(next, visitedTiles)
			if visited[vi] <= cost {
				// Already reached this expanded state via an
				// equal-or-shorter path; use that cost instead of
				// re-deriving it, and don't requeue.
				cost = visited[vi]
			} else {
				visited[vi] = cost
				queue = append(queue, queueNode{b: next, emptyIndex: newEmpty, cost: cost})
			}

			hi := sparseindex.Index(next, p.Tiles)
			if sub[hi] > cost {
				sub[hi] = cost
			}
		}
	}

	return sub, nil
}
