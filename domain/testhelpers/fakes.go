package testhelpers

import (
	"context"
	"sync"
	"time"

	"zocker/domain/entities"
)

// MemoryGateway is an in-memory PersistenceGateway for service tests that
// don't care about persistence failures. It records what was written.
type MemoryGateway struct {
	mu          sync.Mutex
	Balances    map[int64]int64
	DailyClaims map[int64]time.Time
	PoolAmount  int64
	LastDrawAt  time.Time
	NextDrawAt  time.Time
	Tickets     []*entities.LotteryTicket
}

// NewMemoryGateway creates an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		Balances:    make(map[int64]int64),
		DailyClaims: make(map[int64]time.Time),
	}
}

func (g *MemoryGateway) LoadState(ctx context.Context) (*entities.EngineState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	state := &entities.EngineState{
		Balances:    make(map[int64]int64, len(g.Balances)),
		DailyClaims: make(map[int64]time.Time, len(g.DailyClaims)),
		PoolAmount:  g.PoolAmount,
		LastDrawAt:  g.LastDrawAt,
		NextDrawAt:  g.NextDrawAt,
		Tickets:     append([]*entities.LotteryTicket(nil), g.Tickets...),
	}
	for k, v := range g.Balances {
		state.Balances[k] = v
	}
	for k, v := range g.DailyClaims {
		state.DailyClaims[k] = v
	}
	return state, nil
}

func (g *MemoryGateway) SaveBalance(ctx context.Context, userID int64, balance int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Balances[userID] = balance
	return nil
}

func (g *MemoryGateway) SaveDailyClaim(ctx context.Context, userID int64, claimedAt time.Time) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.DailyClaims[userID] = claimedAt
	return nil
}

func (g *MemoryGateway) SaveLotteryPool(ctx context.Context, amount int64, lastDrawAt, nextDrawAt time.Time) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.PoolAmount = amount
	g.LastDrawAt = lastDrawAt
	g.NextDrawAt = nextDrawAt
	return nil
}

func (g *MemoryGateway) SaveTicket(ctx context.Context, ticket *entities.LotteryTicket) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Tickets = append(g.Tickets, ticket)
	return nil
}

func (g *MemoryGateway) ClearTickets(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Tickets = nil
	return nil
}

// ScriptedRandomSource returns queued values in order, then falls back to
// zero. Intn(n) values are taken modulo n so scripts stay in range.
type ScriptedRandomSource struct {
	mu     sync.Mutex
	Values []int
}

// NewScriptedRandomSource creates a random source that replays the given
// values.
func NewScriptedRandomSource(values ...int) *ScriptedRandomSource {
	return &ScriptedRandomSource{Values: values}
}

func (s *ScriptedRandomSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[0]
	s.Values = s.Values[1:]
	return v % n
}

// MaxRandomSource always returns n-1 from Intn. Driving a Fisher-Yates
// shuffle with it leaves the deck in its original order.
type MaxRandomSource struct{}

func (MaxRandomSource) Intn(n int) int {
	return n - 1
}
