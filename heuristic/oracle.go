package heuristic

import (
	"fmt"

	"github.com/tilepuzzle/fifteen/board"
	"github.com/tilepuzzle/fifteen/pattern"
	"github.com/tilepuzzle/fifteen/pdb"
	"github.com/tilepuzzle/fifteen/sparseindex"
)

// Oracle answers admissible cost-to-go queries against a loaded pattern
// database. It is safe for concurrent use by multiple readers: H only
// ever reads the underlying table.
type Oracle struct {
	table pdb.Table
}

// NewOracle wraps an already-built or already-loaded Table. It returns
// ErrSizeMismatch if t is not exactly pattern.TotalStates bytes.
func NewOracle(t pdb.Table) (*Oracle, error) {
	if len(t) != pattern.TotalStates {
		return nil, fmt.Errorf("%w: table has %d bytes, want %d", ErrSizeMismatch, len(t), pattern.TotalStates)
	}
	return &Oracle{table: t}, nil
}

// LoadOracle reads a Table from path via pdb.Load and wraps it.
func LoadOracle(path string) (*Oracle, error) {
	t, err := pdb.Load(path)
	if err != nil {
		return nil, err
	}
	return NewOracle(t)
}

// H returns an admissible estimate of the number of moves needed to
// solve b: the greater of the direct pattern-cost sum and the sum
// computed against the diagonally-reflected board. Both sums are
// admissible on their own: reflection is a symmetry of the puzzle, so
// neither can overestimate the true distance, and taking their maximum
// stays admissible while often being a tighter bound than either alone.
func (o *Oracle) H(b board.Board) (int, error) {
	direct, err := o.sum(b, false)
	if err != nil {
		return 0, err
	}
	reflected, err := o.sum(b, true)
	if err != nil {
		return 0, err
	}
	if reflected > direct {
		return reflected, nil
	}
	return direct, nil
}

func (o *Oracle) sum(b board.Board, reflected bool) (int, error) {
	total := 0
	for _, p := range pattern.Patterns {
		var idx int
		if reflected {
			idx = sparseindex.ReflectedIndex(b, p.ReflectedTiles)
		} else {
			idx = sparseindex.Index(b, p.Tiles)
		}
		v := o.table[p.Offset+idx]
		if v == pdb.Unset {
			return 0, fmt.Errorf("%w: pattern offset %d, slot %d", ErrSentinel, p.Offset, idx)
		}
		total += int(v)
	}
	return total, nil
}
