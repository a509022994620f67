package entities

// SessionState represents the lifecycle state of a blackjack session.
type SessionState string

const (
	SessionOpen     SessionState = "open"
	SessionResolved SessionState = "resolved"
)

// BlackjackSession holds the per-user state of a blackjack game between its
// start and resolution. At most one open session exists per user; resolved
// sessions are removed from the store.
type BlackjackSession struct {
	OwnerID    int64
	Deck       []Card
	PlayerHand []Card
	DealerHand []Card
	Bet        int64
	State      SessionState
}

// Draw removes and returns the top card of the deck.
func (s *BlackjackSession) Draw() Card {
	card := s.Deck[0]
	s.Deck = s.Deck[1:]
	return card
}

// DealToPlayer draws one card into the player's hand.
func (s *BlackjackSession) DealToPlayer() Card {
	card := s.Draw()
	s.PlayerHand = append(s.PlayerHand, card)
	return card
}

// DealToDealer draws one card into the dealer's hand.
func (s *BlackjackSession) DealToDealer() Card {
	card := s.Draw()
	s.DealerHand = append(s.DealerHand, card)
	return card
}

// PlayerValue returns the current value of the player's hand.
func (s *BlackjackSession) PlayerValue() int {
	return HandValue(s.PlayerHand)
}

// DealerValue returns the current value of the dealer's hand.
func (s *BlackjackSession) DealerValue() int {
	return HandValue(s.DealerHand)
}

// IsNatural reports whether the player was dealt 21 on the initial two cards.
func (s *BlackjackSession) IsNatural() bool {
	return len(s.PlayerHand) == 2 && s.PlayerValue() == 21
}

// IsOpen reports whether the session still accepts hit/stand actions.
func (s *BlackjackSession) IsOpen() bool {
	return s.State == SessionOpen
}

// Resolve marks the session as terminally resolved.
func (s *BlackjackSession) Resolve() {
	s.State = SessionResolved
}
