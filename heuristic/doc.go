// Package heuristic turns a built pattern database into an admissible
// cost-to-go estimate for the IDA* search: for a given board it sums the
// per-pattern costs the way pdb.Build computed them, and takes the
// larger of that sum and the equivalent sum computed against the
// diagonally-reflected board, since both are admissible and either can
// dominate depending on the board.
package heuristic
