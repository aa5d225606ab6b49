package poker

import "sort"

// primes holds a prime per rank (Two..Ace) such that the product of five
// primes is unique per multiset of ranks — the classic prime-product
// trick for collapsing "which ranks, with which multiplicities" into a
// single comparable integer without building a lookup table. Used only by
// the reference evaluator below, which exists to cross-check Evaluate7
// against an independent, brute-force implementation in tests.
var primes = [13]int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// primePower returns the number of times prime divides n.
func primePower(n, prime int) int {
	p := 0
	for n%prime == 0 {
		n /= prime
		p++
	}
	return p
}

// rankCountsFromProduct recovers each rank's multiplicity in the hand by
// trial-dividing the prime product, rather than by tallying cards directly.
// This is what makes referenceRank5 a structurally distinct cross-check:
// Evaluate7 never computes a prime product, and this function never tallies
// ranks the way Evaluate7's countRanks does, so the two paths can only agree
// by actually agreeing on the hand's content.
func rankCountsFromProduct(cards [5]Card, product int) [13]int {
	var counts [13]int
	var seen [13]bool
	for _, c := range cards {
		r := c.Rank()
		if seen[r] {
			continue
		}
		seen[r] = true
		counts[r] = primePower(product, primes[r])
	}
	return counts
}

// referenceRank5 classifies a single 5-card hand, recovering rank
// multiplicities by prime factoring instead of counting cards. It returns a
// HandRank in the same canonical space as Evaluate7 would for the dominant 5
// of 7 cards. It shares the flush table, straightHighRank and
// comboIndexFromMask with Evaluate7, but classifies each 5-card subset on
// its own, so the two can be fuzz-tested against each other.
func referenceRank5(cards [5]Card) HandRank {
	var suitCount [4]int
	product := 1
	for _, c := range cards {
		suitCount[c.Suit()]++
		product *= primes[c.Rank()]
	}
	rankCount := rankCountsFromProduct(cards, product)

	isFlush := false
	for _, n := range suitCount {
		if n == 5 {
			isFlush = true
		}
	}

	var mask uint16
	for r, n := range rankCount {
		if n > 0 {
			mask |= 1 << uint(r)
		}
	}
	hi, isStraight := straightHighRank(mask)

	switch {
	case isFlush && isStraight:
		return HandRank(uint16(StraightFlushLo) + uint16(Ace-Rank(hi)))
	case isStraight:
		return HandRank(uint16(StraightLo) + uint16(Ace-Rank(hi)))
	}

	counts := make([]int, 0, 5)
	for _, n := range rankCount {
		if n > 0 {
			counts = append(counts, n)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	switch {
	case counts[0] == 4:
		return quadReference(rankCount, mask)
	case counts[0] == 3 && counts[1] == 2:
		return fullHouseReference(rankCount)
	case isFlush:
		ensureFlushTable()
		return HandRank(flushTable[mask])
	case counts[0] == 3:
		return tripsReference(rankCount, mask)
	case counts[0] == 2 && counts[1] == 2:
		return twoPairReference(rankCount, mask)
	case counts[0] == 2:
		return pairReference(rankCount, mask)
	default:
		ensureFlushTable()
		return HandRank(uint16(HighCardLo) + flushTable[mask] - uint16(FlushLo))
	}
}

func quadReference(rankCount [13]int, mask uint16) HandRank {
	quad := rankOfCount(rankCount, 4)
	kicker := rankOfCount(rankCount, 1)
	available := fullRankMask &^ (uint16(1) << uint(quad))
	idx := comboIndexFromMask(available, []uint8{uint8(kicker)})
	return HandRank(uint16(FourOfAKindLo) + uint16((12-quad)*12+idx))
}

func fullHouseReference(rankCount [13]int) HandRank {
	trip := rankOfCount(rankCount, 3)
	pair := rankOfCount(rankCount, 2)
	available := fullRankMask &^ (uint16(1) << uint(trip))
	idx := comboIndexFromMask(available, []uint8{uint8(pair)})
	return HandRank(uint16(FullHouseLo) + uint16((12-trip)*12+idx))
}

func tripsReference(rankCount [13]int, mask uint16) HandRank {
	trip := rankOfCount(rankCount, 3)
	available := fullRankMask &^ (uint16(1) << uint(trip))
	kickers := topN(available&mask, 2)
	idx := comboIndexFromMask(available, kickers)
	return HandRank(uint16(ThreeOfAKindLo) + uint16((12-trip)*66+idx))
}

func twoPairReference(rankCount [13]int, mask uint16) HandRank {
	var pairRanks []uint8
	for r := 12; r >= 0; r-- {
		if rankCount[r] == 2 {
			pairRanks = append(pairRanks, uint8(r))
		}
	}
	available := fullRankMask &^ (uint16(1)<<uint(pairRanks[0]) | uint16(1)<<uint(pairRanks[1]))
	kicker := rankOfCount(rankCount, 1)
	pairComboIdx := comboIndexFromMask(fullRankMask, pairRanks)
	kickerIdx := comboIndexFromMask(available, []uint8{uint8(kicker)})
	return HandRank(uint16(TwoPairLo) + uint16(pairComboIdx*11+kickerIdx))
}

func pairReference(rankCount [13]int, mask uint16) HandRank {
	pair := rankOfCount(rankCount, 2)
	available := fullRankMask &^ (uint16(1) << uint(pair))
	kickers := topN(available&mask, 3)
	idx := comboIndexFromMask(available, kickers)
	return HandRank(uint16(OnePairLo) + uint16((12-pair)*220+idx))
}

func rankOfCount(rankCount [13]int, n int) int {
	for r := 12; r >= 0; r-- {
		if rankCount[r] == n {
			return r
		}
	}
	return -1
}

// Evaluate7Reference independently evaluates a 7-card hand by enumerating
// all 21 five-card subsets with referenceRank5 and keeping the strongest.
// It exists purely as a correctness oracle for Evaluate7 in tests.
func Evaluate7Reference(cards [7]Card) HandRank {
	best := HandRank(HighCardHi)
	var combo [5]Card
	var choose func(start, k int)
	choose = func(start, k int) {
		if k == 5 {
			r := referenceRank5(combo)
			if r.Less(best) {
				best = r
			}
			return
		}
		for i := start; i < 7; i++ {
			combo[k] = cards[i]
			choose(i+1, k+1)
		}
	}
	choose(0, 0)
	return best
}
