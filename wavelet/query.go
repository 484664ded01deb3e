// File: query.go
// Role: Access/Rank/Select — the three wavelet-tree walks.

package wavelet

import "fmt"

// Access returns the symbol at position i. Panics if i is out of
// [0, Len()).
func (s *Sequence) Access(i int) int {
	if i < 0 || i >= s.length {
		panic(fmt.Sprintf("wavelet: Access index %d out of range [0,%d)", i, s.length))
	}

	lo, hi := 0, s.alphabetSize
	n := s.root
	pos := i
	for n != nil {
		mid := lo + (hi-lo)/2
		if n.bits.At(pos) {
			pos = n.bits.Rank1(pos)
			lo, n = mid, n.right
		} else {
			pos = n.bits.Rank0(pos)
			hi, n = mid, n.left
		}
	}

	return lo
}

// Rank returns the number of occurrences of sym in [0, i). i may range
// over [0, Len()]. Panics if sym is outside the alphabet or i is
// out of range.
func (s *Sequence) Rank(sym, i int) int {
	if sym < 0 || sym >= s.alphabetSize {
		panic(fmt.Sprintf("wavelet: Rank symbol %d out of alphabet [0,%d)", sym, s.alphabetSize))
	}
	if i < 0 || i > s.length {
		panic(fmt.Sprintf("wavelet: Rank index %d out of range [0,%d]", i, s.length))
	}

	lo, hi := 0, s.alphabetSize
	n := s.root
	pos := i
	for n != nil {
		mid := lo + (hi-lo)/2
		if sym < mid {
			pos = n.bits.Rank0(pos)
			hi, n = mid, n.left
		} else {
			pos = n.bits.Rank1(pos)
			lo, n = mid, n.right
		}
	}

	return pos
}

// Select returns the 0-based position of the k-th (1-based) occurrence
// of sym. Panics if sym is outside the alphabet or k exceeds
// Rank(sym, Len()).
func (s *Sequence) Select(sym, k int) int {
	if sym < 0 || sym >= s.alphabetSize {
		panic(fmt.Sprintf("wavelet: Select symbol %d out of alphabet [0,%d)", sym, s.alphabetSize))
	}
	total := s.Rank(sym, s.length)
	if k < 1 || k > total {
		panic(fmt.Sprintf("wavelet: Select(%d,%d) out of range, only %d occurrences", sym, k, total))
	}

	return selectRec(s.root, 0, s.alphabetSize, sym, k-1)
}

// selectRec returns, for the node covering [lo,hi), the 0-based position
// within that node's own subsequence of the element whose position
// within the relevant child's subsequence is localRank (0-based).
func selectRec(n *node, lo, hi, sym, localRank int) int {
	if n == nil {
		// Leaf: every element is sym, so the local rank IS the position.
		return localRank
	}
	mid := lo + (hi-lo)/2
	if sym < mid {
		p := selectRec(n.left, lo, mid, sym, localRank)
		return n.bits.Select0(p)
	}
	p := selectRec(n.right, mid, hi, sym, localRank)
	return n.bits.Select1(p)
}
