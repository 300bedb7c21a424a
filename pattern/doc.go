// Package pattern holds the disjoint tile-pattern specification the
// pattern-database heuristic is built from: three compile-time, immutable
// records partitioning tiles 1..15, plus each pattern's tile list under
// the main-diagonal reflection.
//
// There is no runtime registration: Patterns is a fixed array; the pdb
// package is parameterized by a Pattern value and the sparseindex package
// by a pattern's tile list, rather than hard-coding tile numbers.
package pattern
