package interfaces

import (
	"context"
	"time"

	"zocker/domain/entities"
)

// LedgerService owns per-user balances. All mutations for one user are
// serialized; operations on different users proceed concurrently.
type LedgerService interface {
	// GetBalance returns the user's balance, creating the account with the
	// configured starting balance if absent.
	GetBalance(ctx context.Context, userID int64) int64

	// ApplyDelta atomically adds delta (possibly negative) to the balance,
	// clamping the result at zero, and returns the new balance.
	ApplyDelta(ctx context.Context, userID int64, delta int64) int64

	// Debit atomically checks sufficiency and subtracts amount. Returns
	// entities.ErrInsufficientFunds without mutating state if the balance
	// is too low.
	Debit(ctx context.Context, userID int64, amount int64) (int64, error)

	// CanClaimDaily reports whether the daily reward is currently claimable.
	CanClaimDaily(ctx context.Context, userID int64) bool

	// ClaimDaily claims the daily reward, crediting a uniformly random
	// amount in the configured range. Returns the reward amount, or
	// entities.ErrDailyAlreadyClaimed inside the claim window.
	ClaimDaily(ctx context.Context, userID int64) (int64, error)
}

// GamePlayResult is the result of playing a one-shot game.
type GamePlayResult struct {
	Outcome    *entities.Outcome
	NewBalance int64
}

// GameService resolves one-shot wager games against the ledger: the bet is
// atomically debited up front and winnings are credited per the payout table.
type GameService interface {
	// Play resolves one round of the given game. Param carries the
	// game-specific bet parameter (roulette: "red", "black" or an exact
	// number); it is ignored by games that take none.
	Play(ctx context.Context, userID int64, gameType entities.GameType, bet int64, param string) (*GamePlayResult, error)
}

// BlackjackResult describes the session after an action. Winnings and
// NewBalance are meaningful only when Resolved is true.
type BlackjackResult struct {
	Session    *entities.BlackjackSession
	Resolved   bool
	Winnings   int64
	NewBalance int64
}

// BlackjackService runs the multi-step blackjack state machine. Actions for
// one user are serialized; error paths never touch the ledger.
type BlackjackService interface {
	// Start opens a session, debits the bet and deals the initial hands.
	// A dealt natural 21 resolves immediately at 2.5x.
	Start(ctx context.Context, userID int64, bet int64) (*BlackjackResult, error)

	// Hit draws one card to the player's hand. Busting resolves the
	// session as a loss.
	Hit(ctx context.Context, userID int64) (*BlackjackResult, error)

	// Stand plays out the dealer (draws to 17, stands on all 17s) and
	// resolves the session.
	Stand(ctx context.Context, userID int64) (*BlackjackResult, error)
}

// LotteryPurchaseResult is the result of a successful ticket purchase.
type LotteryPurchaseResult struct {
	Ticket     *entities.LotteryTicket
	NewBalance int64
	PoolAmount int64
}

// LotteryStatusInfo summarizes the current draw period for display.
type LotteryStatusInfo struct {
	PoolAmount  int64
	NextDrawAt  time.Time
	TicketCount int
	UserTickets []*entities.LotteryTicket
}

// LotteryWinner is one winning ticket in a draw.
type LotteryWinner struct {
	UserID int64
	Ticket *entities.LotteryTicket
	Tier   entities.PrizeTier
	Payout int64
}

// LotteryDrawResult describes an executed (or skipped) draw.
type LotteryDrawResult struct {
	WinningNumbers []int
	Superzahl      int
	Winners        []*LotteryWinner
	TotalPayout    int64
	PoolBefore     int64
	PoolAfter      int64
	Skipped        bool
	NextDrawAt     time.Time
}

// LotteryService sells tickets, executes scheduled draws and accounts for
// the prize pool. Draw execution excludes concurrent purchases.
type LotteryService interface {
	// BuyTicket purchases one ticket. Nil numbers or superzahl are
	// generated uniformly. Fails with ErrDrawPending while a due draw has
	// not yet executed.
	BuyTicket(ctx context.Context, userID int64, numbers []int, superzahl *int) (*LotteryPurchaseResult, error)

	// GetStatus returns pool, schedule and the user's tickets.
	GetStatus(ctx context.Context, userID int64) (*LotteryStatusInfo, error)

	// CheckAndDraw executes the draw if it is due. Returns (nil, nil) when
	// no draw is due.
	CheckAndDraw(ctx context.Context) (*LotteryDrawResult, error)

	// NextDrawTime returns the draw time following the given instant.
	NextDrawTime(now time.Time) time.Time
}
