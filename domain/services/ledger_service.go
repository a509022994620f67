package services

import (
	"context"
	"sync"
	"time"

	"zocker/config"
	"zocker/domain/entities"
	"zocker/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// ledgerService owns the per-user balance ledger. In-memory state is
// authoritative; every mutation is written through to the persistence
// gateway on a best-effort basis.
type ledgerService struct {
	gateway interfaces.PersistenceGateway
	rng     interfaces.RandomSource
	now     func() time.Time

	mu       sync.RWMutex // guards accounts map structure
	accounts map[int64]*entities.Account
	locks    userLocks
}

// NewLedgerService creates a ledger seeded from a loaded state snapshot.
// A nil state starts the ledger empty.
func NewLedgerService(gateway interfaces.PersistenceGateway, rng interfaces.RandomSource, state *entities.EngineState) interfaces.LedgerService {
	s := &ledgerService{
		gateway:  gateway,
		rng:      rng,
		now:      time.Now,
		accounts: make(map[int64]*entities.Account),
	}
	if state != nil {
		for userID, balance := range state.Balances {
			s.accounts[userID] = &entities.Account{UserID: userID, Balance: balance}
		}
		for userID, claimedAt := range state.DailyClaims {
			account, ok := s.accounts[userID]
			if !ok {
				account = &entities.Account{UserID: userID, Balance: config.Get().StartingBalance}
				s.accounts[userID] = account
			}
			account.RecordDailyClaim(claimedAt)
		}
	}
	return s
}

// account returns the user's account, creating it lazily with the starting
// balance. The initial balance is written through like any other mutation.
func (s *ledgerService) account(ctx context.Context, userID int64) *entities.Account {
	s.mu.RLock()
	account, ok := s.accounts[userID]
	s.mu.RUnlock()
	if ok {
		return account
	}

	s.mu.Lock()
	account, ok = s.accounts[userID]
	if !ok {
		account = &entities.Account{
			UserID:    userID,
			Balance:   config.Get().StartingBalance,
			CreatedAt: s.now(),
		}
		s.accounts[userID] = account
	}
	s.mu.Unlock()

	if !ok {
		s.persistBalance(ctx, account)
	}
	return account
}

func (s *ledgerService) GetBalance(ctx context.Context, userID int64) int64 {
	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	return s.account(ctx, userID).Balance
}

func (s *ledgerService) ApplyDelta(ctx context.Context, userID int64, delta int64) int64 {
	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	return s.applyDeltaLocked(ctx, userID, delta)
}

// applyDeltaLocked mutates the balance under an already-held user lock.
// A debit larger than the balance clamps the result at zero rather than
// rejecting the mutation; wager paths that must reject use Debit.
func (s *ledgerService) applyDeltaLocked(ctx context.Context, userID int64, delta int64) int64 {
	account := s.account(ctx, userID)
	newBalance := account.Balance + delta
	if newBalance < 0 {
		newBalance = 0
	}
	account.Balance = newBalance
	account.UpdatedAt = s.now()
	s.persistBalance(ctx, account)
	return newBalance
}

func (s *ledgerService) Debit(ctx context.Context, userID int64, amount int64) (int64, error) {
	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	account := s.account(ctx, userID)
	if !account.CanAfford(amount) {
		return account.Balance, entities.ErrInsufficientFunds
	}
	return s.applyDeltaLocked(ctx, userID, -amount), nil
}

func (s *ledgerService) CanClaimDaily(ctx context.Context, userID int64) bool {
	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	return s.account(ctx, userID).CanClaimDaily(s.now())
}

func (s *ledgerService) ClaimDaily(ctx context.Context, userID int64) (int64, error) {
	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	account := s.account(ctx, userID)
	now := s.now()
	if !account.CanClaimDaily(now) {
		return 0, entities.ErrDailyAlreadyClaimed
	}

	cfg := config.Get()
	reward := cfg.DailyRewardMin + int64(s.rng.Intn(int(cfg.DailyRewardMax-cfg.DailyRewardMin)+1))

	account.RecordDailyClaim(now)
	s.applyDeltaLocked(ctx, userID, reward)

	if err := s.gateway.SaveDailyClaim(ctx, userID, now); err != nil {
		log.WithError(err).WithField("userID", userID).Warn("failed to persist daily claim timestamp")
	}

	return reward, nil
}

// persistBalance writes the balance through to the gateway. Persistence
// failures are logged and absorbed; in-memory state stays authoritative.
func (s *ledgerService) persistBalance(ctx context.Context, account *entities.Account) {
	if err := s.gateway.SaveBalance(ctx, account.UserID, account.Balance); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"userID":  account.UserID,
			"balance": account.Balance,
		}).Warn("failed to persist balance")
	}
}
