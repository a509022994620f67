package entities

// Card represents a single playing card. Value is the blackjack value:
// 11 for an Ace, 10 for face cards, otherwise the numeric rank. Aces are
// down-adjusted to 1 during hand valuation when the hand would bust.
type Card struct {
	Rank  string
	Suit  string
	Value int
}

var (
	cardSuits = []string{"♠", "♥", "♦", "♣"}
	cardRanks = []struct {
		rank  string
		value int
	}{
		{"A", 11},
		{"2", 2}, {"3", 3}, {"4", 4}, {"5", 5},
		{"6", 6}, {"7", 7}, {"8", 8}, {"9", 9}, {"10", 10},
		{"J", 10}, {"Q", 10}, {"K", 10},
	}
)

// String returns the card as rank followed by suit, e.g. "A♠".
func (c Card) String() string {
	return c.Rank + c.Suit
}

// IsAce reports whether the card is an Ace.
func (c Card) IsAce() bool {
	return c.Rank == "A"
}

// NewDeck builds an ordered 52-card deck.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, suit := range cardSuits {
		for _, r := range cardRanks {
			deck = append(deck, Card{Rank: r.rank, Suit: suit, Value: r.value})
		}
	}
	return deck
}

// HandValue computes the blackjack value of a hand. Aces count as 11 and are
// reduced to 1 one at a time while the total exceeds 21 and an Ace remains
// counted high.
func HandValue(hand []Card) int {
	total := 0
	aces := 0
	for _, c := range hand {
		total += c.Value
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}
