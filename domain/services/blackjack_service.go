package services

import (
	"context"
	"sync"

	"zocker/domain/entities"
	"zocker/domain/interfaces"
)

// dealerStandValue is the hand value at which the dealer stops drawing.
// The dealer stands on all 17s, including soft 17.
const dealerStandValue = 17

// blackjackService holds at most one open session per user and serializes
// start/hit/stand per user. Error paths never touch the ledger.
type blackjackService struct {
	ledger interfaces.LedgerService
	rng    interfaces.RandomSource

	mu       sync.Mutex // guards sessions map structure
	sessions map[int64]*entities.BlackjackSession
	locks    userLocks
}

// NewBlackjackService creates the blackjack session service.
func NewBlackjackService(ledger interfaces.LedgerService, rng interfaces.RandomSource) interfaces.BlackjackService {
	return &blackjackService{
		ledger:   ledger,
		rng:      rng,
		sessions: make(map[int64]*entities.BlackjackSession),
	}
}

func (s *blackjackService) Start(ctx context.Context, userID int64, bet int64) (*interfaces.BlackjackResult, error) {
	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	if bet <= 0 {
		return nil, entities.ErrInvalidBet
	}
	if s.session(userID) != nil {
		return nil, entities.ErrSessionAlreadyActive
	}

	deck := entities.NewDeck()
	shuffle(deck, s.rng)
	return s.startWithDeck(ctx, userID, bet, deck)
}

// startWithDeck opens a session over a prepared deck. The caller must hold
// the user lock.
func (s *blackjackService) startWithDeck(ctx context.Context, userID int64, bet int64, deck []entities.Card) (*interfaces.BlackjackResult, error) {
	newBalance, err := s.ledger.Debit(ctx, userID, bet)
	if err != nil {
		return nil, err
	}

	session := &entities.BlackjackSession{
		OwnerID: userID,
		Deck:    deck,
		Bet:     bet,
		State:   entities.SessionOpen,
	}
	session.DealToPlayer()
	session.DealToDealer()
	session.DealToPlayer()
	session.DealToDealer()

	if session.IsNatural() {
		// Natural 21 resolves immediately at 2.5x the bet.
		winnings := entities.RoundedPayout(bet, 5, 2)
		return s.resolveSession(ctx, session, winnings), nil
	}

	s.storeSession(session)
	return &interfaces.BlackjackResult{Session: session, NewBalance: newBalance}, nil
}

func (s *blackjackService) Hit(ctx context.Context, userID int64) (*interfaces.BlackjackResult, error) {
	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	session := s.session(userID)
	if session == nil {
		return nil, entities.ErrNoActiveSession
	}

	session.DealToPlayer()
	if session.PlayerValue() > 21 {
		// Bust: the bet was debited at start, nothing comes back.
		return s.resolveSession(ctx, session, 0), nil
	}

	return &interfaces.BlackjackResult{Session: session}, nil
}

func (s *blackjackService) Stand(ctx context.Context, userID int64) (*interfaces.BlackjackResult, error) {
	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	session := s.session(userID)
	if session == nil {
		return nil, entities.ErrNoActiveSession
	}

	for session.DealerValue() < dealerStandValue {
		session.DealToDealer()
	}

	playerValue := session.PlayerValue()
	dealerValue := session.DealerValue()

	var winnings int64
	switch {
	case dealerValue > 21 || playerValue > dealerValue:
		winnings = session.Bet * 2
	case playerValue == dealerValue:
		winnings = session.Bet // push, bet returned
	}

	return s.resolveSession(ctx, session, winnings), nil
}

// resolveSession credits winnings, marks the session resolved and removes it
// from the store.
func (s *blackjackService) resolveSession(ctx context.Context, session *entities.BlackjackSession, winnings int64) *interfaces.BlackjackResult {
	newBalance := s.ledger.GetBalance(ctx, session.OwnerID)
	if winnings > 0 {
		newBalance = s.ledger.ApplyDelta(ctx, session.OwnerID, winnings)
	}

	session.Resolve()
	s.mu.Lock()
	delete(s.sessions, session.OwnerID)
	s.mu.Unlock()

	return &interfaces.BlackjackResult{
		Session:    session,
		Resolved:   true,
		Winnings:   winnings,
		NewBalance: newBalance,
	}
}

func (s *blackjackService) session(userID int64) *entities.BlackjackSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[userID]
}

func (s *blackjackService) storeSession(session *entities.BlackjackSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.OwnerID] = session
}
