package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"zocker/domain/entities"
	"zocker/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T, state *entities.EngineState) (*ledgerService, *testhelpers.MemoryGateway) {
	t.Helper()
	gateway := testhelpers.NewMemoryGateway()
	ledger := NewLedgerService(gateway, testhelpers.NewScriptedRandomSource(), state).(*ledgerService)
	return ledger, gateway
}

func TestGetBalanceCreatesAccountWithStartingBalance(t *testing.T) {
	ledger, gateway := newTestLedger(t, nil)
	ctx := context.Background()

	balance := ledger.GetBalance(ctx, 100)

	assert.Equal(t, int64(500), balance)
	assert.Equal(t, int64(500), gateway.Balances[100], "initial balance written through")
}

func TestLedgerSeedsFromState(t *testing.T) {
	claimed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	state := &entities.EngineState{
		Balances:    map[int64]int64{100: 1234},
		DailyClaims: map[int64]time.Time{100: claimed},
	}
	ledger, _ := newTestLedger(t, state)
	ctx := context.Background()

	assert.Equal(t, int64(1234), ledger.GetBalance(ctx, 100))

	ledger.now = func() time.Time { return claimed.Add(time.Hour) }
	assert.False(t, ledger.CanClaimDaily(ctx, 100), "loaded claim timestamp is honored")
}

func TestApplyDeltaClampsAtZero(t *testing.T) {
	ledger, gateway := newTestLedger(t, nil)
	ctx := context.Background()

	balance := ledger.ApplyDelta(ctx, 100, -2000)

	assert.Equal(t, int64(0), balance)
	assert.Equal(t, int64(0), gateway.Balances[100])
}

func TestDebit(t *testing.T) {
	ledger, gateway := newTestLedger(t, nil)
	ctx := context.Background()

	balance, err := ledger.Debit(ctx, 100, 200)
	require.NoError(t, err)
	assert.Equal(t, int64(300), balance)
	assert.Equal(t, int64(300), gateway.Balances[100])
}

func TestDebitInsufficientFunds(t *testing.T) {
	ledger, _ := newTestLedger(t, nil)
	ctx := context.Background()

	balance, err := ledger.Debit(ctx, 100, 600)

	assert.ErrorIs(t, err, entities.ErrInsufficientFunds)
	assert.Equal(t, int64(500), balance, "balance unchanged on rejection")
	assert.Equal(t, int64(500), ledger.GetBalance(ctx, 100))
}

func TestClaimDaily(t *testing.T) {
	gateway := testhelpers.NewMemoryGateway()
	rng := testhelpers.NewScriptedRandomSource(250)
	ledger := NewLedgerService(gateway, rng, nil).(*ledgerService)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ledger.now = func() time.Time { return now }
	ctx := context.Background()

	reward, err := ledger.ClaimDaily(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(350), reward, "reward is min + scripted offset")
	assert.Equal(t, int64(850), ledger.GetBalance(ctx, 100))
	assert.Equal(t, now, gateway.DailyClaims[100])

	// Second claim inside the window is rejected without changing state.
	_, err = ledger.ClaimDaily(ctx, 100)
	assert.ErrorIs(t, err, entities.ErrDailyAlreadyClaimed)
	assert.Equal(t, int64(850), ledger.GetBalance(ctx, 100))

	now = now.Add(entities.DailyClaimInterval)
	assert.True(t, ledger.CanClaimDaily(ctx, 100))
	_, err = ledger.ClaimDaily(ctx, 100)
	assert.NoError(t, err)
}

func TestClaimDailyRewardBounds(t *testing.T) {
	gateway := testhelpers.NewMemoryGateway()
	ledger := NewLedgerService(gateway, NewRandomSource(), nil).(*ledgerService)
	ctx := context.Background()

	for userID := int64(1); userID <= 20; userID++ {
		reward, err := ledger.ClaimDaily(ctx, userID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, reward, int64(100))
		assert.LessOrEqual(t, reward, int64(800))
	}
}

func TestPersistenceFailureIsAbsorbed(t *testing.T) {
	gateway := new(testhelpers.MockPersistenceGateway)
	gateway.On("SaveBalance", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	ledger := NewLedgerService(gateway, testhelpers.NewScriptedRandomSource(), nil)
	ctx := context.Background()

	balance := ledger.ApplyDelta(ctx, 100, 50)
	assert.Equal(t, int64(550), balance, "in-memory state stays authoritative")

	balance, err := ledger.Debit(ctx, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(450), balance)
	gateway.AssertExpectations(t)
}

func TestConcurrentDeltasAreSerialized(t *testing.T) {
	ledger, _ := newTestLedger(t, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ledger.ApplyDelta(ctx, 100, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(600), ledger.GetBalance(ctx, 100))
}
