package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"zocker/config"
	"zocker/domain/entities"
	"zocker/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// payoutCapDivisor caps each winning ticket at 1/10 of the pool at draw
// time, so a single tier-1 hit cannot deplete a small pool.
const payoutCapDivisor = 10

// lotteryService sells tickets and executes scheduled draws. The service
// mutex makes draw execution atomic relative to purchases: the ticket
// snapshot used for prize computation and the subsequent clear cannot
// interleave with BuyTicket.
type lotteryService struct {
	gateway interfaces.PersistenceGateway
	ledger  interfaces.LedgerService
	rng     interfaces.RandomSource
	now     func() time.Time

	mu           sync.Mutex
	pool         *entities.LotteryPool
	nextTicketID int64
}

// NewLotteryService creates a lottery engine seeded from a loaded state
// snapshot. A nil state starts a fresh pool at the minimum reserve.
func NewLotteryService(gateway interfaces.PersistenceGateway, ledger interfaces.LedgerService, rng interfaces.RandomSource, state *entities.EngineState) interfaces.LotteryService {
	s := &lotteryService{
		gateway: gateway,
		ledger:  ledger,
		rng:     rng,
		now:     time.Now,
	}

	if state != nil {
		s.pool = entities.NewLotteryPool(state.PoolAmount)
		s.pool.LastDrawAt = state.LastDrawAt
		s.pool.NextDrawAt = state.NextDrawAt
		for _, ticket := range state.Tickets {
			s.pool.AddTicket(ticket)
			if ticket.ID >= s.nextTicketID {
				s.nextTicketID = ticket.ID + 1
			}
		}
	} else {
		s.pool = entities.NewLotteryPool(config.Get().LotteryMinReserve)
	}

	if s.pool.NextDrawAt.IsZero() {
		s.pool.NextDrawAt = s.NextDrawTime(s.now())
		s.persistPool(context.Background())
	}

	return s
}

// NextDrawTime returns the next occurrence of one of the configured draw
// weekdays at the configured hour, strictly after the given instant. Draws
// alternate between the two weekdays; if the hour has passed on a target
// day, that day rolls to the following week.
func (s *lotteryService) NextDrawTime(now time.Time) time.Time {
	cfg := config.Get()
	now = now.UTC()

	var next time.Time
	for _, weekday := range cfg.LotteryDrawDays {
		days := (int(weekday) - int(now.Weekday()) + 7) % 7
		candidate := time.Date(now.Year(), now.Month(), now.Day(), cfg.LotteryDrawHourUTC, 0, 0, 0, time.UTC).
			AddDate(0, 0, days)
		if !candidate.After(now) {
			candidate = candidate.AddDate(0, 0, 7)
		}
		if next.IsZero() || candidate.Before(next) {
			next = candidate
		}
	}
	return next
}

func (s *lotteryService) BuyTicket(ctx context.Context, userID int64, numbers []int, superzahl *int) (*interfaces.LotteryPurchaseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.pool.DrawDue(now) {
		// A due draw has not executed yet; the ticket would straddle two
		// draw periods unpredictably.
		return nil, entities.ErrDrawPending
	}

	if numbers == nil {
		numbers = s.generateNumbers()
	} else {
		if err := entities.ValidateLotteryNumbers(numbers); err != nil {
			return nil, err
		}
		numbers = append([]int(nil), numbers...)
	}
	sort.Ints(numbers)

	var sz int
	if superzahl == nil {
		sz = s.rng.Intn(entities.LotteryMaxSuperzahl + 1)
	} else {
		if err := entities.ValidateSuperzahl(*superzahl); err != nil {
			return nil, err
		}
		sz = *superzahl
	}

	cost := config.Get().LotteryTicketCost
	newBalance, err := s.ledger.Debit(ctx, userID, cost)
	if err != nil {
		return nil, err
	}

	ticket := &entities.LotteryTicket{
		ID:          s.nextTicketID,
		OwnerID:     userID,
		Numbers:     numbers,
		Superzahl:   sz,
		PurchasedAt: now,
	}
	s.nextTicketID++

	s.pool.AddTicket(ticket)
	s.pool.Amount += cost

	if err := s.gateway.SaveTicket(ctx, ticket); err != nil {
		log.WithError(err).WithField("userID", userID).Warn("failed to persist lottery ticket")
	}
	s.persistPool(ctx)

	return &interfaces.LotteryPurchaseResult{
		Ticket:     ticket,
		NewBalance: newBalance,
		PoolAmount: s.pool.Amount,
	}, nil
}

func (s *lotteryService) GetStatus(ctx context.Context, userID int64) (*interfaces.LotteryStatusInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userTickets := append([]*entities.LotteryTicket(nil), s.pool.TicketsByUser(userID)...)
	return &interfaces.LotteryStatusInfo{
		PoolAmount:  s.pool.Amount,
		NextDrawAt:  s.pool.NextDrawAt,
		TicketCount: s.pool.TicketCount(),
		UserTickets: userTickets,
	}, nil
}

func (s *lotteryService) CheckAndDraw(ctx context.Context) (*interfaces.LotteryDrawResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !s.pool.DrawDue(now) {
		return nil, nil
	}

	result := &interfaces.LotteryDrawResult{
		WinningNumbers: s.generateNumbers(),
		Superzahl:      s.rng.Intn(entities.LotteryMaxSuperzahl + 1),
		PoolBefore:     s.pool.Amount,
	}

	if s.pool.TicketCount() == 0 {
		// Nothing to draw against; the pool resets and the schedule
		// still advances.
		result.Skipped = true
		s.pool.Amount = 0
	} else {
		s.payOutWinners(ctx, result)
	}

	s.pool.ClearTickets()
	s.pool.LastDrawAt = now
	s.pool.NextDrawAt = s.NextDrawTime(now)
	result.PoolAfter = s.pool.Amount
	result.NextDrawAt = s.pool.NextDrawAt

	if err := s.gateway.ClearTickets(ctx); err != nil {
		log.WithError(err).Warn("failed to clear persisted lottery tickets")
	}
	s.persistPool(ctx)

	log.WithFields(log.Fields{
		"winningNumbers": result.WinningNumbers,
		"superzahl":      result.Superzahl,
		"winners":        len(result.Winners),
		"totalPayout":    result.TotalPayout,
		"poolAfter":      result.PoolAfter,
		"skipped":        result.Skipped,
	}).Info("lottery draw completed")

	return result, nil
}

// payOutWinners classifies every outstanding ticket into a prize tier and
// credits the winners. The per-winner cap is computed against the pool
// amount at draw time, before any payout is deducted.
func (s *lotteryService) payOutWinners(ctx context.Context, result *interfaces.LotteryDrawResult) {
	payoutCap := s.pool.Amount / payoutCapDivisor

	owners := make([]int64, 0, len(s.pool.Tickets))
	for ownerID := range s.pool.Tickets {
		owners = append(owners, ownerID)
	}
	sort.Slice(owners, func(i, j int) bool { return owners[i] < owners[j] })

	for _, ownerID := range owners {
		for _, ticket := range s.pool.Tickets[ownerID] {
			matches := ticket.MatchCount(result.WinningNumbers)
			tier, won := entities.ClassifyTier(matches, ticket.MatchesSuperzahl(result.Superzahl))
			if !won {
				continue
			}

			payout := tier.Prize
			if payout > payoutCap {
				payout = payoutCap
			}

			s.ledger.ApplyDelta(ctx, ownerID, payout)
			result.Winners = append(result.Winners, &interfaces.LotteryWinner{
				UserID: ownerID,
				Ticket: ticket,
				Tier:   tier,
				Payout: payout,
			})
			result.TotalPayout += payout
		}
	}

	s.pool.Amount -= result.TotalPayout
	if reserve := config.Get().LotteryMinReserve; s.pool.Amount < reserve {
		s.pool.Amount = reserve
	}
}

// generateNumbers draws 6 distinct numbers in [1, 49] by reject-and-retry
// on duplicates. The same procedure serves tickets and winning draws.
func (s *lotteryService) generateNumbers() []int {
	drawn := make(map[int]bool, entities.LotteryNumbersPerTicket)
	numbers := make([]int, 0, entities.LotteryNumbersPerTicket)
	for len(numbers) < entities.LotteryNumbersPerTicket {
		n := s.rng.Intn(entities.LotteryMaxNumber) + 1
		if drawn[n] {
			continue
		}
		drawn[n] = true
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

func (s *lotteryService) persistPool(ctx context.Context) {
	if err := s.gateway.SaveLotteryPool(ctx, s.pool.Amount, s.pool.LastDrawAt, s.pool.NextDrawAt); err != nil {
		log.WithError(err).WithField("amount", s.pool.Amount).Warn("failed to persist lottery pool")
	}
}
