// Package wavelet implements WaveletSeq: an immutable sequence of
// natural-number symbols supporting positional Access, Rank, and Select,
// each in O(log alphabet) time, used by package adjacency to hold the
// flat neighbor-symbol sequence of a compact adjacency representation.
//
// A Sequence is a classic recursive wavelet tree: each internal node
// owns a bitvec.BitVector over its own filtered subsequence, where a 0
// routes an element to the left child (lower half of the symbol range)
// and a 1 routes it to the right child. Leaves are represented
// implicitly (a nil node, once the range narrows to a single symbol) to
// avoid allocating degenerate bit vectors.
//
//	Access(i)        symbol at position i
//	Rank(sym, i)     occurrences of sym in [0, i)
//	Select(sym, k)   0-based position of the k-th (1-based) occurrence of sym
//
// Build panics if any input symbol is outside [0, alphabetSize). Access,
// Rank, and Select panic on out-of-range positions/counts, matching
// bitvec's fatal-on-misuse policy.
package wavelet
