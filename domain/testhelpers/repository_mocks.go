package testhelpers

import (
	"context"
	"time"

	"zocker/domain/entities"

	"github.com/stretchr/testify/mock"
)

// MockPersistenceGateway is a testify mock of the PersistenceGateway
// contract, for tests that assert on (or fail) persistence calls.
type MockPersistenceGateway struct {
	mock.Mock
}

func (m *MockPersistenceGateway) LoadState(ctx context.Context) (*entities.EngineState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EngineState), args.Error(1)
}

func (m *MockPersistenceGateway) SaveBalance(ctx context.Context, userID int64, balance int64) error {
	args := m.Called(ctx, userID, balance)
	return args.Error(0)
}

func (m *MockPersistenceGateway) SaveDailyClaim(ctx context.Context, userID int64, claimedAt time.Time) error {
	args := m.Called(ctx, userID, claimedAt)
	return args.Error(0)
}

func (m *MockPersistenceGateway) SaveLotteryPool(ctx context.Context, amount int64, lastDrawAt, nextDrawAt time.Time) error {
	args := m.Called(ctx, amount, lastDrawAt, nextDrawAt)
	return args.Error(0)
}

func (m *MockPersistenceGateway) SaveTicket(ctx context.Context, ticket *entities.LotteryTicket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockPersistenceGateway) ClearTickets(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
