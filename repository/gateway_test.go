package repository

import (
	"context"
	"testing"
	"time"

	"zocker/domain/entities"
	"zocker/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_LoadStateEmpty(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	gateway := NewGateway(testDB.DB)
	ctx := context.Background()

	state, err := gateway.LoadState(ctx)
	require.NoError(t, err)

	assert.Empty(t, state.Balances)
	assert.Empty(t, state.DailyClaims)
	assert.Equal(t, int64(0), state.PoolAmount)
	assert.True(t, state.LastDrawAt.IsZero())
	assert.True(t, state.NextDrawAt.IsZero())
	assert.Empty(t, state.Tickets)
}

func TestGateway_SaveAndLoadBalances(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	gateway := NewGateway(testDB.DB)
	ctx := context.Background()

	require.NoError(t, gateway.SaveBalance(ctx, 100, 1234))
	require.NoError(t, gateway.SaveBalance(ctx, 200, 0))

	// Upsert overwrites the first write.
	require.NoError(t, gateway.SaveBalance(ctx, 100, 2000))

	state, err := gateway.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), state.Balances[100])
	assert.Equal(t, int64(0), state.Balances[200])
}

func TestGateway_SaveAndLoadDailyClaims(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	gateway := NewGateway(testDB.DB)
	ctx := context.Background()

	claimedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Claim for a user with an existing account and one without.
	require.NoError(t, gateway.SaveBalance(ctx, 100, 750))
	require.NoError(t, gateway.SaveDailyClaim(ctx, 100, claimedAt))
	require.NoError(t, gateway.SaveDailyClaim(ctx, 200, claimedAt))

	state, err := gateway.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(750), state.Balances[100], "claim upsert preserves the balance")
	assert.True(t, state.DailyClaims[100].Equal(claimedAt))
	assert.True(t, state.DailyClaims[200].Equal(claimedAt))
}

func TestGateway_SaveAndLoadLotteryPool(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	gateway := NewGateway(testDB.DB)
	ctx := context.Background()

	lastDraw := time.Date(2025, 6, 4, 19, 0, 0, 0, time.UTC)
	nextDraw := time.Date(2025, 6, 7, 19, 0, 0, 0, time.UTC)
	require.NoError(t, gateway.SaveLotteryPool(ctx, 5000, lastDraw, nextDraw))

	state, err := gateway.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), state.PoolAmount)
	assert.True(t, state.LastDrawAt.Equal(lastDraw))
	assert.True(t, state.NextDrawAt.Equal(nextDraw))
}

func TestGateway_SaveLotteryPoolZeroTimes(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	gateway := NewGateway(testDB.DB)
	ctx := context.Background()

	require.NoError(t, gateway.SaveLotteryPool(ctx, 1000, time.Time{}, time.Time{}))

	state, err := gateway.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), state.PoolAmount)
	assert.True(t, state.LastDrawAt.IsZero())
	assert.True(t, state.NextDrawAt.IsZero())
}

func TestGateway_SaveAndClearTickets(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	gateway := NewGateway(testDB.DB)
	ctx := context.Background()

	purchasedAt := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	ticket1 := &entities.LotteryTicket{
		OwnerID:     100,
		Numbers:     []int{1, 7, 13, 25, 38, 49},
		Superzahl:   4,
		PurchasedAt: purchasedAt,
	}
	ticket2 := &entities.LotteryTicket{
		OwnerID:     200,
		Numbers:     []int{2, 3, 5, 8, 13, 21},
		Superzahl:   0,
		PurchasedAt: purchasedAt.Add(time.Minute),
	}
	require.NoError(t, gateway.SaveTicket(ctx, ticket1))
	require.NoError(t, gateway.SaveTicket(ctx, ticket2))

	state, err := gateway.LoadState(ctx)
	require.NoError(t, err)
	require.Len(t, state.Tickets, 2)

	loaded := state.Tickets[0]
	assert.Equal(t, int64(100), loaded.OwnerID)
	assert.Equal(t, []int{1, 7, 13, 25, 38, 49}, loaded.Numbers)
	assert.Equal(t, 4, loaded.Superzahl)
	assert.True(t, loaded.PurchasedAt.Equal(purchasedAt))
	assert.NotZero(t, loaded.ID, "IDs assigned by the database")

	require.NoError(t, gateway.ClearTickets(ctx))

	state, err = gateway.LoadState(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Tickets)
}
