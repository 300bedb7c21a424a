package search

import (
	"math"

	"github.com/tilepuzzle/fifteen/board"
	"github.com/tilepuzzle/fifteen/heuristic"
)

// MaxMoves bounds any optimal solution to a solvable 4x4 board.
// http://www.iro.umontreal.ca/~gendron/Pisa/References/BB/Brungger99.pdf
const MaxMoves = 80

// node is the single mutable search frame threaded through the whole
// recursion: its board and heuristic are slid forward before recursing
// and restored before trying the next neighbor.
type node struct {
	b          board.Board
	emptyIndex int
	h          int
	numMoves   int
	moves      [MaxMoves]board.Tile
}

// outcome tags a depth-first search call's result: either the goal was
// found (the node then holds the solution path), or it wasn't and bound is the smallest
// f-value (moves-so-far plus heuristic) that was cut off, the next
// iteration's bound.
type outcome struct {
	found bool
	bound int
}

// Solve returns an optimal move sequence (the tile moved at each step)
// taking start to the solved board, using oracle as the admissible
// heuristic. The caller is responsible for confirming start is solvable:
// for an unsolvable board the bound keeps rising until some path reaches
// MaxMoves moves, and Solve then returns ErrMoveOverflow. ErrSearchExhausted
// is returned only if an iteration cuts off no path at all.
//
// Complexity: bounded by the branching factor (at most 3 after parent-move
// pruning) raised to the optimal solution length, same as any IDA* search;
// the admissible heuristic is what keeps that exponent small in practice.
// Memory: O(optimal solution length), since only one node is ever live.
func Solve(start board.Board, oracle *heuristic.Oracle) ([]board.Tile, error) {
	h, err := oracle.H(start)
	if err != nil {
		return nil, err
	}

	n := &node{b: start, emptyIndex: start.EmptyIndex(), h: h}
	bound := h
	for {
		out, err := dfs(n, bound, oracle)
		if err != nil {
			return nil, err
		}
		if out.found {
			return append([]board.Tile(nil), n.moves[:n.numMoves]...), nil
		}
		if out.bound == math.MaxInt {
			return nil, ErrSearchExhausted
		}
		bound = out.bound
	}
}

// dfs explores every neighbor of n reachable within bound, mutating n in
// place and restoring it before returning, except when the goal is found:
// then n is left holding the solution path. A neighbor that would move
// the same tile just moved back is skipped — except at the root, which
// has no previous move to avoid reversing.
func dfs(n *node, bound int, oracle *heuristic.Oracle) (outcome, error) {
	if n.h == 0 {
		return outcome{found: true, bound: 0}, nil
	}
	if n.numMoves >= MaxMoves {
		return outcome{}, ErrMoveOverflow
	}

	nextBound := math.MaxInt
	oldEmpty := n.emptyIndex

	for dir := board.Direction(0); dir < board.NumDirections; dir++ {
		tile, _, ok := board.PeekTile(n.b, oldEmpty, dir)
		if !ok {
			continue
		}
		if n.numMoves > 0 && tile == n.moves[n.numMoves-1] {
			continue
		}

		newEmpty, _, _ := board.Apply(&n.b, oldEmpty, dir)
		oldH := n.h
		h, err := oracle.H(n.b)
		if err != nil {
			return outcome{}, err
		}
		n.h = h
		n.emptyIndex = newEmpty
		n.moves[n.numMoves] = tile
		n.numMoves++

		f := n.numMoves + n.h
		var out outcome
		var derr error
		if f <= bound {
			out, derr = dfs(n, bound, oracle)
		} else {
			out = outcome{bound: f}
		}

		if derr != nil {
			return outcome{}, derr
		}
		if out.found {
			// Leave n exactly as it stands: its move list up to
			// n.numMoves is the solution. Undoing here, as every other
			// branch does, would erase it on the way back up.
			return out, nil
		}

		n.numMoves--
		n.moves[n.numMoves] = 0
		n.emptyIndex = oldEmpty
		n.h = oldH
		board.Undo(&n.b, newEmpty, oldEmpty, tile)

		if out.bound < nextBound {
			nextBound = out.bound
		}
	}

	return outcome{bound: nextBound}, nil
}
