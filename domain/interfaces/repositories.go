package interfaces

import (
	"context"
	"time"

	"zocker/domain/entities"
)

// PersistenceGateway is the narrow storage contract consumed by the engine.
// Implementations may be file-backed or relational. All calls may fail;
// failures are non-fatal to the in-memory state and are logged by callers.
type PersistenceGateway interface {
	// LoadState loads the full engine snapshot at startup.
	LoadState(ctx context.Context) (*entities.EngineState, error)

	// SaveBalance writes a user's balance.
	SaveBalance(ctx context.Context, userID int64, balance int64) error

	// SaveDailyClaim records the timestamp of a user's daily reward claim.
	SaveDailyClaim(ctx context.Context, userID int64, claimedAt time.Time) error

	// SaveLotteryPool writes the pool amount and draw schedule.
	SaveLotteryPool(ctx context.Context, amount int64, lastDrawAt, nextDrawAt time.Time) error

	// SaveTicket writes a newly purchased ticket.
	SaveTicket(ctx context.Context, ticket *entities.LotteryTicket) error

	// ClearTickets removes all stored tickets after a draw.
	ClearTickets(ctx context.Context) error
}
