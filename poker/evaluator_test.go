package poker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Card {
	t.Helper()
	c, err := ParseCard(s)
	require.NoError(t, err)
	return c
}

func TestEvaluate7RoyalFlush(t *testing.T) {
	board := [5]Card{mustParse(t, "Tc"), mustParse(t, "Jc"), mustParse(t, "Qc"), mustParse(t, "2h"), mustParse(t, "3d")}
	hole := [2]Card{mustParse(t, "Kc"), mustParse(t, "Ac")}
	r := Evaluate(board, hole)
	assert.Equal(t, HandRank(1), r)
	assert.Equal(t, CategoryStraightFlush, r.Category())
}

func TestEvaluate7FourOfAKindBeatsFullHouse(t *testing.T) {
	quadBoard := [5]Card{mustParse(t, "2c"), mustParse(t, "2d"), mustParse(t, "2h"), mustParse(t, "7s"), mustParse(t, "9d")}
	quadHole := [2]Card{mustParse(t, "2s"), mustParse(t, "3c")}
	quad := Evaluate(quadBoard, quadHole)

	fhBoard := [5]Card{mustParse(t, "3c"), mustParse(t, "3d"), mustParse(t, "3h"), mustParse(t, "7s"), mustParse(t, "9d")}
	fhHole := [2]Card{mustParse(t, "7c"), mustParse(t, "Ks")}
	fh := Evaluate(fhBoard, fhHole)

	assert.Equal(t, CategoryFourOfAKind, quad.Category())
	assert.Equal(t, CategoryFullHouse, fh.Category())
	assert.True(t, quad.Less(fh))
}

func TestEvaluate7CategoryOrderingHoldsAcrossHands(t *testing.T) {
	// Straight beats three of a kind beats two pair beats one pair beats high card.
	straight := Evaluate(
		[5]Card{mustParse(t, "4c"), mustParse(t, "5d"), mustParse(t, "6h"), mustParse(t, "9s"), mustParse(t, "Kd")},
		[2]Card{mustParse(t, "7c"), mustParse(t, "8h")},
	)
	trips := Evaluate(
		[5]Card{mustParse(t, "4c"), mustParse(t, "4d"), mustParse(t, "6h"), mustParse(t, "9s"), mustParse(t, "Kd")},
		[2]Card{mustParse(t, "4h"), mustParse(t, "2c")},
	)
	twoPair := Evaluate(
		[5]Card{mustParse(t, "4c"), mustParse(t, "4d"), mustParse(t, "6h"), mustParse(t, "6s"), mustParse(t, "Kd")},
		[2]Card{mustParse(t, "2h"), mustParse(t, "3c")},
	)
	onePair := Evaluate(
		[5]Card{mustParse(t, "4c"), mustParse(t, "4d"), mustParse(t, "6h"), mustParse(t, "9s"), mustParse(t, "Kd")},
		[2]Card{mustParse(t, "2h"), mustParse(t, "3c")},
	)
	highCard := Evaluate(
		[5]Card{mustParse(t, "4c"), mustParse(t, "7d"), mustParse(t, "9h"), mustParse(t, "Js"), mustParse(t, "Kd")},
		[2]Card{mustParse(t, "2h"), mustParse(t, "3c")},
	)

	assert.True(t, straight.Less(trips))
	assert.True(t, trips.Less(twoPair))
	assert.True(t, twoPair.Less(onePair))
	assert.True(t, onePair.Less(highCard))
}

func TestEvaluate7PanicsOnDuplicateCards(t *testing.T) {
	board := [5]Card{mustParse(t, "2c"), mustParse(t, "2c"), mustParse(t, "7h"), mustParse(t, "9s"), mustParse(t, "Kd")}
	hole := [2]Card{mustParse(t, "3c"), mustParse(t, "4c")}
	assert.Panics(t, func() { Evaluate(board, hole) })
}

// TestEvaluate7MatchesReferenceAcrossRandomHands is property 5: at least
// 50,000 random 7-card hands must agree between Evaluate7 and the
// independent reference evaluator.
func TestEvaluate7MatchesReferenceAcrossRandomHands(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 50,000-hand fuzz run in -short mode")
	}
	rng := rand.New(rand.NewSource(7))
	const trials = 50000
	for i := 0; i < trials; i++ {
		deck := NewDeck(rng)
		cards := deck.Deal(7)
		var seven [7]Card
		copy(seven[:], cards)
		h := NewHand(seven[:]...)

		got := Evaluate7(h)
		want := Evaluate7Reference(seven)
		require.Equal(t, want, got, "mismatch for hand %v", seven)
	}
}

// independentCategory determines the best achievable category of a 7-card
// hand by tallying ranks and suits directly, with no CNS, no flush table,
// and no prime products — entirely independent of handrank.go/evaluator.go.
func independentCategory(cards [7]Card) Category {
	var rankCount [13]int
	var suitCount [4]int
	for _, c := range cards {
		rankCount[c.Rank()]++
		suitCount[c.Suit()]++
	}

	hasConsecutiveFive := func(present [13]bool) bool {
		if present[Ace] && present[Two] && present[Three] && present[Four] && present[Five] {
			return true
		}
		for hi := Ace; hi >= Six; hi-- {
			ok := true
			for k := Rank(0); k < 5; k++ {
				if !present[hi-k] {
					ok = false
					break
				}
			}
			if ok {
				return true
			}
		}
		return false
	}

	flushSuit := -1
	for s, n := range suitCount {
		if n >= 5 {
			flushSuit = s
		}
	}
	if flushSuit >= 0 {
		var present [13]bool
		for _, c := range cards {
			if int(c.Suit()) == flushSuit {
				present[c.Rank()] = true
			}
		}
		if hasConsecutiveFive(present) {
			return CategoryStraightFlush
		}
	}

	maxOfAKind, pairCount, tripCount := 0, 0, 0
	for _, n := range rankCount {
		if n > maxOfAKind {
			maxOfAKind = n
		}
		if n == 2 {
			pairCount++
		}
		if n == 3 {
			tripCount++
		}
	}
	if maxOfAKind == 4 {
		return CategoryFourOfAKind
	}
	if tripCount >= 1 && (pairCount >= 1 || tripCount >= 2) {
		return CategoryFullHouse
	}
	if flushSuit >= 0 {
		return CategoryFlush
	}
	var present [13]bool
	for r, n := range rankCount {
		if n > 0 {
			present[r] = true
		}
	}
	if hasConsecutiveFive(present) {
		return CategoryStraight
	}
	switch {
	case tripCount >= 1:
		return CategoryThreeOfAKind
	case pairCount >= 2:
		return CategoryTwoPair
	case pairCount == 1:
		return CategoryOnePair
	default:
		return CategoryHighCard
	}
}

// TestEvaluate7CategoryMatchesIndependentRankSuitCount is property 2: over
// at least 10,000 random hands, independently tally ranks and suits across
// all 7 cards and check the evaluator's rank falls in the canonical range
// for the category that tally implies is achievable.
func TestEvaluate7CategoryMatchesIndependentRankSuitCount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10,000-hand fuzz run in -short mode")
	}
	rng := rand.New(rand.NewSource(11))
	const trials = 10000
	for i := 0; i < trials; i++ {
		deck := NewDeck(rng)
		cards := deck.Deal(7)
		var seven [7]Card
		copy(seven[:], cards)

		board := [5]Card{seven[0], seven[1], seven[2], seven[3], seven[4]}
		hole := [2]Card{seven[5], seven[6]}
		got := Evaluate(board, hole).Category()
		want := independentCategory(seven)
		require.Equal(t, want, got, "hand %v: independent tally says %s", seven, want)
	}
}

// TestEvaluate7PermutationInvariant is property 4: the rank of a hand must
// not depend on the order its cards are supplied in, either within the
// board, within the hole cards, or in how the seven cards are split between
// the two.
func TestEvaluate7PermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 2000; i++ {
		deck := NewDeck(rng)
		cards := deck.Deal(7)
		var seven [7]Card
		copy(seven[:], cards)

		want := Evaluate7Reference(seven)

		perm := rng.Perm(7)
		var shuffled [7]Card
		for j, p := range perm {
			shuffled[j] = seven[p]
		}
		board := [5]Card{shuffled[0], shuffled[1], shuffled[2], shuffled[3], shuffled[4]}
		hole := [2]Card{shuffled[5], shuffled[6]}
		require.Equal(t, want, Evaluate(board, hole), "permuted hand %v must rank the same as %v", shuffled, seven)
	}
}
