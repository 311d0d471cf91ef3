// Package beachline implements the cyclic ordered collection of
// parabolic arcs that the sweep maintains as its primary state (spec
// §4.3, strategy (b)): a doubly-linked list at level 0 plus a skip
// structure of fixed height, so insertion, removal, and
// search-for-insertion all run in expected O(log n) without
// randomisation — the insertion height at each step is chosen to
// minimise the weighted level populations rather than coin-flipped.
//
// Grounded on original_source/src/beach_line.rs (BeachLine, ArcData,
// insertion_height, the arena+free-list allocation style) and
// core/adjacency_list.go's dense handle-indexed storage idiom.
package beachline
