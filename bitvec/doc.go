// Package bitvec provides an immutable, succinct bit vector with O(1)
// rank and binary-search-assisted select, built once from an append-only
// Builder and never mutated afterward.
//
// BitVector is the bottom layer of the wavelet-tree digraph engine: a
// vertex-boundary "marks" vector in package adjacency, and one node per
// level inside a package wavelet Sequence, both sit directly on top of
// this type.
//
// Contract (see spec for the authoritative definitions):
//
//	Rank1(i)   number of ones in [0,i)
//	Rank0(i)   number of zeros in [0,i), i.e. i - Rank1(i)
//	Select1(k) position of the k-th (0-based) one; a virtual one is
//	           assumed at position Len() for k == Rank1(Len())
//	Select0(k) symmetric, over zeros
//	At(i)      the bit at position i
//
// Out-of-range Rank/Select/At calls panic: they indicate a caller bug,
// never a recoverable condition (see SPEC_FULL.md §1, Errors).
//
// Complexity: Rank1/Rank0/At are O(1). Select1/Select0 binary-search a
// word-level prefix-popcount table (O(log words)) and then extract the
// exact bit in O(1) amortized by repeatedly clearing the lowest set bit
// of a 64-bit word. This is a pragmatic simplification of the classical
// superblock/broadword select layout; see SPEC_FULL.md §4 for why.
package bitvec
