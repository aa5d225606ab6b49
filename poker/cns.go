package poker

import "math/bits"

// fullRankMask has all 13 rank bits set.
const fullRankMask uint16 = 0x1FFF

// pascal[n][k] is the binomial coefficient C(n, k) for n, k in [0, 13].
// Computed once at package init; small and deterministic, so it does not
// need the lazy-singleton treatment the (much larger) flush table does.
var pascal [14][14]int

func init() {
	for n := 0; n <= 13; n++ {
		pascal[n][0] = 1
		for k := 1; k <= n; k++ {
			pascal[n][k] = pascal[n-1][k-1] + pascal[n-1][k]
		}
	}
}

func choose(n, k int) int {
	if n < 0 || k < 0 || k > n || n > 13 {
		return 0
	}
	return pascal[n][k]
}

// highestSetBit returns the rank of the highest set bit in mask. mask must
// be non-zero.
func highestSetBit(mask uint16) uint8 {
	return uint8(bits.Len16(mask) - 1)
}

// topMask keeps only the top n set bits of mask, clearing the rest.
func topMask(mask uint16, n int) uint16 {
	for bits.OnesCount16(mask) > n {
		mask &= mask - 1 // clear lowest set bit
	}
	return mask
}

// topN returns the ranks of the top n set bits of mask, in descending order.
func topN(mask uint16, n int) []uint8 {
	out := make([]uint8, 0, n)
	for mask != 0 && len(out) < n {
		r := highestSetBit(mask)
		out = append(out, r)
		mask &^= 1 << r
	}
	return out
}

// comboIndexFromMask assigns a kicker-rank tuple (given in descending order,
// each a member of availableMask) a dense index in [0, C(n,k)) where n is
// the number of ranks set in availableMask and k = len(kickers). Index 0 is
// reserved for the highest-ranked kicker tuple and the index increases
// monotonically as the tuple gets weaker — this is the combinatorial number
// system (CNS) used to turn kicker ranks into the offset within a made-hand
// category's canonical range (see §4.1).
//
// Construction: for the j-th kicker (0-based) with rank r, let c_j be the
// number of ranks in availableMask strictly below r (r's position within
// the available-rank domain). The colex rank sum_j C(c_j, k-j) grows with
// the tuple's strength, from 0 for the weakest tuple to C(n,k)-1 for the
// strongest, so the index is C(n,k)-1 minus that sum.
func comboIndexFromMask(availableMask uint16, kickers []uint8) int {
	n := bits.OnesCount16(availableMask)
	k := len(kickers)
	colex := 0
	for j, r := range kickers {
		below := bits.OnesCount16(availableMask & (uint16(1)<<r - 1))
		colex += choose(below, k-j)
	}
	return choose(n, k) - 1 - colex
}
