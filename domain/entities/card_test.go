package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	assert.Len(t, deck, 52)

	seen := make(map[string]bool)
	for _, card := range deck {
		assert.False(t, seen[card.String()], "duplicate card %s", card)
		seen[card.String()] = true
	}
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name     string
		hand     []Card
		expected int
	}{
		{
			name:     "empty hand",
			hand:     nil,
			expected: 0,
		},
		{
			name:     "simple hand",
			hand:     []Card{{Rank: "7", Value: 7}, {Rank: "9", Value: 9}},
			expected: 16,
		},
		{
			name:     "natural blackjack",
			hand:     []Card{{Rank: "A", Value: 11}, {Rank: "K", Value: 10}},
			expected: 21,
		},
		{
			name:     "ace reduced after bust",
			hand:     []Card{{Rank: "A", Value: 11}, {Rank: "9", Value: 9}, {Rank: "5", Value: 5}},
			expected: 15,
		},
		{
			name:     "two aces, one reduced",
			hand:     []Card{{Rank: "A", Value: 11}, {Rank: "A", Value: 11}},
			expected: 12,
		},
		{
			name:     "two aces with face cards, both reduced",
			hand:     []Card{{Rank: "A", Value: 11}, {Rank: "A", Value: 11}, {Rank: "K", Value: 10}, {Rank: "9", Value: 9}},
			expected: 21,
		},
		{
			name:     "hard bust stays over 21",
			hand:     []Card{{Rank: "K", Value: 10}, {Rank: "Q", Value: 10}, {Rank: "5", Value: 5}},
			expected: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HandValue(tt.hand))
		})
	}
}

func TestCardString(t *testing.T) {
	card := Card{Rank: "A", Suit: "♠", Value: 11}
	assert.Equal(t, "A♠", card.String())
	assert.True(t, card.IsAce())
	assert.False(t, Card{Rank: "K", Suit: "♥", Value: 10}.IsAce())
}
