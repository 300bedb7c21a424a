// Package pdb builds and persists the additive pattern-database heuristic:
// one shared byte table covering all three disjoint tile patterns, filled
// by an independent breadth-first search per pattern from the solved
// configuration.
//
// Build runs all three searches and returns the combined Table. Save and
// Load move a Table to and from its exact on-disk format: TotalStates
// bytes, no header, no versioning.
package pdb
