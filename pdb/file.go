package pdb

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tilepuzzle/fifteen/pattern"
)

// DefaultFileName is the PDB's canonical on-disk name.
const DefaultFileName = "dim4_heuristics.bin"

// Save writes t to path as exactly pattern.TotalStates bytes, no header,
// no versioning. It writes to a temporary file in the same directory and
// renames it into place, so a failed write never leaves a partial
// artifact at path.
func Save(path string, t Table) error {
	if len(t) != pattern.TotalStates {
		return fmt.Errorf("%w: table has %d bytes, want %d", ErrSizeMismatch, len(t), pattern.TotalStates)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".dim4_heuristics-*.tmp")
	if err != nil {
		return fmt.Errorf("pdb: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once the rename below succeeds

	if _, err := tmp.Write(t); err != nil {
		tmp.Close()
		return fmt.Errorf("pdb: write table: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("pdb: close table: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("pdb: rename table into place: %w", err)
	}
	return nil
}

// Load reads a previously Saved Table from path. It returns
// ErrSizeMismatch, a data-integrity fault, if the file is not exactly
// pattern.TotalStates bytes.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pdb: read table: %w", err)
	}
	if len(data) != pattern.TotalStates {
		return nil, fmt.Errorf("%w: file has %d bytes, want %d", ErrSizeMismatch, len(data), pattern.TotalStates)
	}
	return Table(data), nil
}
