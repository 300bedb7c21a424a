package heuristic

import "errors"

// ErrSizeMismatch is returned by NewOracle when the supplied pdb.Table is
// not exactly pattern.TotalStates bytes.
var ErrSizeMismatch = errors.New("heuristic: table size mismatch")

// ErrSentinel is returned by H when it reads an unreached (pdb.Unset)
// slot for some pattern. A correctly built table never produces this for
// a well-formed, solvable board; seeing it means the table is corrupt or
// was built from a different pattern layout than this package uses.
var ErrSentinel = errors.New("heuristic: pattern database has unreached slot")
