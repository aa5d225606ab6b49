package poker

import (
	"math/bits"
	"sort"
	"sync"
)

// wheelMask is the rank-presence pattern of the wheel straight A-2-3-4-5.
const wheelMask uint16 = 0x100F

// straightHighRank scans a rank-presence mask (13 bits, ace in bit 12) for
// the highest straight window present and returns its high card's rank. The
// wheel (A-2-3-4-5) reports Five (rank 3) and is only consulted once the
// consecutive-bit cascade finds nothing, since any real run is always a
// stronger straight than the wheel.
func straightHighRank(mask uint16) (uint8, bool) {
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		low := uint8(bits.Len16(seq) - 1)
		return low + 4, true
	}
	if mask&wheelMask == wheelMask {
		return uint8(Five), true
	}
	return 0, false
}

// flushTable maps a 13-bit rank mask with exactly 5 bits set to its
// canonical HandRank as a flush or straight flush. Entries for masks with a
// different population count are left at 0 and never consulted. The table
// is about 16 KiB and fits in L1; it is built once, lazily, at first use.
var (
	flushTable     [8192]uint16
	flushTableOnce sync.Once
)

func ensureFlushTable() {
	flushTableOnce.Do(buildFlushTable)
}

func buildFlushTable() {
	combos := make([]uint16, 0, 1287)
	for m := 0; m < 1<<13; m++ {
		if bits.OnesCount16(uint16(m)) == 5 {
			combos = append(combos, uint16(m))
		}
	}
	// Comparing two 5-bit rank masks as plain integers is equivalent to
	// comparing the hands card-by-card from the highest differing rank
	// down, which is exactly the high-card/flush tie-break rule. So a
	// descending sort over raw mask values already yields the canonical
	// strength order; straight flush windows are pulled out of that order
	// and given their own 1..10 block.
	sort.Slice(combos, func(i, j int) bool { return combos[i] > combos[j] })

	flushRank := 0
	for _, m := range combos {
		if hi, ok := straightHighRank(m); ok {
			flushTable[m] = uint16(StraightFlushLo) + uint16(Ace-Rank(hi))
			continue
		}
		flushTable[m] = uint16(FlushLo) + uint16(flushRank)
		flushRank++
	}
}
