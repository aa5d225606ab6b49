package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStraightHighRankDetectsWheelAndBroadway(t *testing.T) {
	wheel := uint16(1<<uint(Ace) | 1<<uint(Two) | 1<<uint(Three) | 1<<uint(Four) | 1<<uint(Five))
	hi, ok := straightHighRank(wheel)
	assert.True(t, ok)
	assert.Equal(t, uint8(Five), hi)

	broadway := uint16(1<<uint(Ten) | 1<<uint(Jack) | 1<<uint(Queen) | 1<<uint(King) | 1<<uint(Ace))
	hi, ok = straightHighRank(broadway)
	assert.True(t, ok)
	assert.Equal(t, uint8(Ace), hi)
}

func TestStraightHighRankPrefersRealRunOverWheel(t *testing.T) {
	// Seven cards worth of rank presence containing both the wheel and a
	// six-high straight; six-high must win.
	mask := uint16(1<<uint(Ace) | 1<<uint(Two) | 1<<uint(Three) | 1<<uint(Four) | 1<<uint(Five) | 1<<uint(Six))
	hi, ok := straightHighRank(mask)
	assert.True(t, ok)
	assert.Equal(t, uint8(Six), hi)
}

func TestStraightHighRankNoStraight(t *testing.T) {
	mask := uint16(1<<uint(Ace) | 1<<uint(King) | 1<<uint(Two))
	_, ok := straightHighRank(mask)
	assert.False(t, ok)
}

func TestFlushTableRanksStraightFlushesOneToTen(t *testing.T) {
	ensureFlushTable()
	seen := make(map[uint16]bool)
	for hi := Six; hi <= Ace; hi++ {
		low := hi - 4
		mask := uint16(0)
		for r := low; r <= hi; r++ {
			mask |= 1 << uint(r)
		}
		rank := flushTable[mask]
		assert.GreaterOrEqual(t, rank, uint16(StraightFlushLo))
		assert.LessOrEqual(t, rank, uint16(StraightFlushHi))
		assert.False(t, seen[rank])
		seen[rank] = true
	}
	// Wheel straight flush.
	wheel := uint16(1<<uint(Ace) | 1<<uint(Two) | 1<<uint(Three) | 1<<uint(Four) | 1<<uint(Five))
	rank := flushTable[wheel]
	assert.Equal(t, uint16(StraightFlushHi), rank)
	assert.Len(t, seen, 9)
}

func TestFlushTableOrdersNonStraightFlushesByStrength(t *testing.T) {
	ensureFlushTable()
	ace654 := uint16(1<<uint(Ace) | 1<<uint(Six) | 1<<uint(Five) | 1<<uint(Four) | 1<<uint(Three))
	king := uint16(1<<uint(King) | 1<<uint(Queen) | 1<<uint(Jack) | 1<<uint(Nine) | 1<<uint(Eight))
	assert.Less(t, flushTable[ace654], flushTable[king])
}
