package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandAddAndHasCard(t *testing.T) {
	var h Hand
	ac := NewCard(Ace, Clubs)
	h.AddCard(ac)
	assert.True(t, h.HasCard(ac))
	assert.False(t, h.HasCard(NewCard(Two, Spades)))
	assert.Equal(t, 1, h.CountCards())
}

func TestHandSuitMask(t *testing.T) {
	h := NewHand(
		NewCard(Ace, Clubs),
		NewCard(King, Clubs),
		NewCard(Two, Spades),
	)
	clubMask := h.GetSuitMask(Clubs)
	assert.Equal(t, uint16(1<<uint(Ace)|1<<uint(King)), clubMask)
	assert.Equal(t, uint16(1<<uint(Two)), h.GetSuitMask(Spades))
	assert.Equal(t, uint16(0), h.GetSuitMask(Hearts))
}

func TestHandRankMaskUnionsAllSuits(t *testing.T) {
	h := NewHand(
		NewCard(Ace, Clubs),
		NewCard(Ace, Spades),
		NewCard(Two, Hearts),
	)
	assert.Equal(t, uint16(1<<uint(Ace)|1<<uint(Two)), h.GetRankMask())
}

func TestNewHandSevenCards(t *testing.T) {
	h := NewHand(
		NewCard(Ace, Clubs), NewCard(King, Clubs), NewCard(Queen, Clubs),
		NewCard(Jack, Clubs), NewCard(Ten, Clubs), NewCard(Two, Hearts),
		NewCard(Three, Hearts),
	)
	assert.Equal(t, 7, h.CountCards())
}
