package services

import (
	"context"
	"testing"
	"time"

	"zocker/domain/entities"
	"zocker/domain/interfaces"
	"zocker/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLottery wires a lottery service over a fresh ledger with a fixed
// clock. The state controls the starting pool and schedule; the scripted
// values drive number generation.
func newTestLottery(t *testing.T, state *entities.EngineState, clock time.Time, rngValues ...int) (*lotteryService, interfaces.LedgerService, *testhelpers.MemoryGateway) {
	t.Helper()
	gateway := testhelpers.NewMemoryGateway()
	ledger := NewLedgerService(gateway, testhelpers.NewScriptedRandomSource(), nil)
	lottery := NewLotteryService(gateway, ledger, testhelpers.NewScriptedRandomSource(rngValues...), state).(*lotteryService)
	lottery.now = func() time.Time { return clock }
	return lottery, ledger, gateway
}

// poolState builds an engine state with only the lottery pool populated.
func poolState(amount int64, nextDrawAt time.Time) *entities.EngineState {
	return &entities.EngineState{PoolAmount: amount, NextDrawAt: nextDrawAt}
}

func intPtr(v int) *int { return &v }

var (
	// Monday before the Wednesday 19:00 UTC draw.
	lotteryTestClock = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	lotteryTestDraw  = time.Date(2025, 6, 4, 19, 0, 0, 0, time.UTC)
)

func TestNextDrawTime(t *testing.T) {
	lottery, _, _ := newTestLottery(t, poolState(1000, lotteryTestDraw), lotteryTestClock)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "monday rolls to wednesday",
			now:  time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 4, 19, 0, 0, 0, time.UTC),
		},
		{
			name: "wednesday before the hour stays on wednesday",
			now:  time.Date(2025, 6, 4, 18, 59, 0, 0, time.UTC),
			want: time.Date(2025, 6, 4, 19, 0, 0, 0, time.UTC),
		},
		{
			name: "wednesday at the hour rolls to saturday",
			now:  time.Date(2025, 6, 4, 19, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 7, 19, 0, 0, 0, time.UTC),
		},
		{
			name: "saturday evening rolls to next wednesday",
			now:  time.Date(2025, 6, 7, 20, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 11, 19, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lottery.NextDrawTime(tt.now))
		})
	}
}

func TestBuyTicketWithChosenNumbers(t *testing.T) {
	lottery, ledger, gateway := newTestLottery(t, poolState(1000, lotteryTestDraw), lotteryTestClock)
	ctx := context.Background()

	result, err := lottery.BuyTicket(ctx, 100, []int{49, 1, 13, 25, 7, 38}, intPtr(4))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 7, 13, 25, 38, 49}, result.Ticket.Numbers, "numbers stored sorted")
	assert.Equal(t, 4, result.Ticket.Superzahl)
	assert.Equal(t, int64(450), result.NewBalance, "ticket cost debited")
	assert.Equal(t, int64(1050), result.PoolAmount, "cost feeds the pool")
	assert.Equal(t, int64(450), ledger.GetBalance(ctx, 100))
	require.Len(t, gateway.Tickets, 1)
	assert.Equal(t, int64(1050), gateway.PoolAmount)
}

func TestBuyTicketGeneratesMissingParts(t *testing.T) {
	// Six draws for the numbers (values v give number v+1), then the superzahl.
	lottery, _, _ := newTestLottery(t, poolState(1000, lotteryTestDraw), lotteryTestClock,
		0, 10, 20, 30, 40, 48, 7)
	ctx := context.Background()

	result, err := lottery.BuyTicket(ctx, 100, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 11, 21, 31, 41, 49}, result.Ticket.Numbers)
	assert.Equal(t, 7, result.Ticket.Superzahl)
}

func TestBuyTicketRetriesDuplicateNumbers(t *testing.T) {
	lottery, _, _ := newTestLottery(t, poolState(1000, lotteryTestDraw), lotteryTestClock,
		0, 0, 1, 2, 3, 4, 5, 0)
	ctx := context.Background()

	result, err := lottery.BuyTicket(ctx, 100, nil, intPtr(9))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, result.Ticket.Numbers)
}

func TestBuyTicketValidation(t *testing.T) {
	lottery, ledger, _ := newTestLottery(t, poolState(1000, lotteryTestDraw), lotteryTestClock)
	ctx := context.Background()

	_, err := lottery.BuyTicket(ctx, 100, []int{1, 2, 3}, nil)
	assert.ErrorIs(t, err, entities.ErrInvalidLotteryNumbers)

	_, err = lottery.BuyTicket(ctx, 100, []int{1, 2, 3, 4, 5, 6}, intPtr(12))
	assert.ErrorIs(t, err, entities.ErrInvalidSuperzahl)

	assert.Equal(t, int64(500), ledger.GetBalance(ctx, 100), "rejected purchases never debit")
}

func TestBuyTicketInsufficientFunds(t *testing.T) {
	lottery, ledger, _ := newTestLottery(t, poolState(1000, lotteryTestDraw), lotteryTestClock)
	ctx := context.Background()
	ledger.ApplyDelta(ctx, 100, -460) // leaves 40, below the ticket cost

	_, err := lottery.BuyTicket(ctx, 100, []int{1, 2, 3, 4, 5, 6}, intPtr(0))
	assert.ErrorIs(t, err, entities.ErrInsufficientFunds)

	status, err := lottery.GetStatus(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, status.TicketCount)
	assert.Equal(t, int64(1000), status.PoolAmount)
}

func TestBuyTicketRejectedWhileDrawPending(t *testing.T) {
	lottery, _, _ := newTestLottery(t, poolState(1000, lotteryTestDraw), lotteryTestDraw.Add(time.Minute))
	ctx := context.Background()

	_, err := lottery.BuyTicket(ctx, 100, []int{1, 2, 3, 4, 5, 6}, intPtr(0))
	assert.ErrorIs(t, err, entities.ErrDrawPending)
}

func TestGetStatus(t *testing.T) {
	lottery, _, _ := newTestLottery(t, poolState(1000, lotteryTestDraw), lotteryTestClock)
	ctx := context.Background()

	_, err := lottery.BuyTicket(ctx, 100, []int{1, 2, 3, 4, 5, 6}, intPtr(0))
	require.NoError(t, err)
	_, err = lottery.BuyTicket(ctx, 200, []int{7, 8, 9, 10, 11, 12}, intPtr(1))
	require.NoError(t, err)

	status, err := lottery.GetStatus(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1100), status.PoolAmount)
	assert.Equal(t, lotteryTestDraw, status.NextDrawAt)
	assert.Equal(t, 2, status.TicketCount)
	require.Len(t, status.UserTickets, 1)
	assert.Equal(t, int64(100), status.UserTickets[0].OwnerID)
}

func TestCheckAndDrawNotDue(t *testing.T) {
	lottery, _, _ := newTestLottery(t, poolState(1000, lotteryTestDraw), lotteryTestClock)

	result, err := lottery.CheckAndDraw(context.Background())
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestCheckAndDrawSkipsWithoutTickets(t *testing.T) {
	lottery, _, gateway := newTestLottery(t, poolState(5000, lotteryTestDraw), lotteryTestDraw,
		0, 1, 2, 3, 4, 5, 7)

	result, err := lottery.CheckAndDraw(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Skipped)
	assert.Equal(t, int64(5000), result.PoolBefore)
	assert.Equal(t, int64(0), result.PoolAfter, "empty draw resets the pool")
	assert.Empty(t, result.Winners)
	assert.Equal(t, time.Date(2025, 6, 7, 19, 0, 0, 0, time.UTC), result.NextDrawAt)
	assert.Equal(t, int64(0), gateway.PoolAmount)
}

func TestCheckAndDrawPaysJackpot(t *testing.T) {
	lottery, ledger, gateway := newTestLottery(t, poolState(20_000_000, lotteryTestDraw), lotteryTestClock,
		// Purchase draws nothing; the draw produces numbers 1-6 and superzahl 7.
		0, 1, 2, 3, 4, 5, 7)
	ctx := context.Background()

	_, err := lottery.BuyTicket(ctx, 100, []int{1, 2, 3, 4, 5, 6}, intPtr(7))
	require.NoError(t, err)

	lottery.now = func() time.Time { return lotteryTestDraw }
	result, err := lottery.CheckAndDraw(ctx)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, result.WinningNumbers)
	assert.Equal(t, 7, result.Superzahl)
	require.Len(t, result.Winners, 1)
	assert.Equal(t, "6+SZ", result.Winners[0].Tier.Label)
	assert.Equal(t, int64(1_000_000), result.Winners[0].Payout)
	assert.Equal(t, int64(20_000_050-1_000_000), result.PoolAfter)
	assert.Equal(t, int64(500-50+1_000_000), ledger.GetBalance(ctx, 100))

	// Tickets are gone, both in memory and in the store.
	status, err := lottery.GetStatus(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, status.TicketCount)
	assert.Empty(t, gateway.Tickets)
}

func TestCheckAndDrawCapsPayoutAtTenthOfPool(t *testing.T) {
	lottery, ledger, _ := newTestLottery(t, poolState(950, lotteryTestDraw), lotteryTestClock,
		0, 1, 2, 3, 4, 5, 7)
	ctx := context.Background()

	_, err := lottery.BuyTicket(ctx, 100, []int{1, 2, 3, 4, 5, 6}, intPtr(7))
	require.NoError(t, err)

	lottery.now = func() time.Time { return lotteryTestDraw }
	result, err := lottery.CheckAndDraw(ctx)
	require.NoError(t, err)

	require.Len(t, result.Winners, 1)
	assert.Equal(t, int64(100), result.Winners[0].Payout, "capped at pool/10")
	assert.Equal(t, int64(1000), result.PoolAfter, "pool floored at the reserve")
	assert.Equal(t, int64(550), ledger.GetBalance(ctx, 100))
}

func TestCheckAndDrawLowerTiers(t *testing.T) {
	// Winning numbers 1-6, superzahl 7. One ticket matches three numbers
	// without the superzahl, one matches two with it, one matches nothing.
	lottery, ledger, _ := newTestLottery(t, poolState(10_000, lotteryTestDraw), lotteryTestClock,
		0, 1, 2, 3, 4, 5, 7)
	ctx := context.Background()

	_, err := lottery.BuyTicket(ctx, 100, []int{1, 2, 3, 40, 41, 42}, intPtr(0))
	require.NoError(t, err)
	_, err = lottery.BuyTicket(ctx, 200, []int{1, 2, 40, 41, 42, 43}, intPtr(7))
	require.NoError(t, err)
	_, err = lottery.BuyTicket(ctx, 300, []int{40, 41, 42, 43, 44, 45}, intPtr(7))
	require.NoError(t, err)

	lottery.now = func() time.Time { return lotteryTestDraw }
	result, err := lottery.CheckAndDraw(ctx)
	require.NoError(t, err)

	require.Len(t, result.Winners, 2)
	assert.Equal(t, "3", result.Winners[0].Tier.Label)
	assert.Equal(t, int64(20), result.Winners[0].Payout)
	assert.Equal(t, "2+SZ", result.Winners[1].Tier.Label)
	assert.Equal(t, int64(10), result.Winners[1].Payout)
	assert.Equal(t, int64(30), result.TotalPayout)

	assert.Equal(t, int64(500-50+20), ledger.GetBalance(ctx, 100))
	assert.Equal(t, int64(500-50+10), ledger.GetBalance(ctx, 200))
	assert.Equal(t, int64(450), ledger.GetBalance(ctx, 300))
}

func TestDrawAdvancesScheduleAndAllowsPurchases(t *testing.T) {
	lottery, _, _ := newTestLottery(t, poolState(5000, lotteryTestDraw), lotteryTestDraw,
		0, 1, 2, 3, 4, 5, 7)
	ctx := context.Background()

	_, err := lottery.CheckAndDraw(ctx)
	require.NoError(t, err)

	// The schedule moved past the clock, so purchases work again.
	_, err = lottery.BuyTicket(ctx, 100, []int{1, 2, 3, 4, 5, 6}, intPtr(0))
	assert.NoError(t, err)
}
