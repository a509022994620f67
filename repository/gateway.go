package repository

import (
	"context"
	"fmt"
	"time"

	"zocker/database"
	"zocker/domain/entities"
)

// Gateway implements the PersistenceGateway contract on Postgres.
type Gateway struct {
	db *database.DB
}

// NewGateway creates a new Postgres-backed persistence gateway.
func NewGateway(db *database.DB) *Gateway {
	return &Gateway{db: db}
}

// LoadState loads the full engine snapshot.
func (g *Gateway) LoadState(ctx context.Context) (*entities.EngineState, error) {
	state := &entities.EngineState{
		Balances:    make(map[int64]int64),
		DailyClaims: make(map[int64]time.Time),
	}

	rows, err := g.db.Query(ctx, `SELECT user_id, balance, last_daily_claim FROM accounts`)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID, balance int64
		var lastClaim *time.Time
		if err := rows.Scan(&userID, &balance, &lastClaim); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		state.Balances[userID] = balance
		if lastClaim != nil {
			state.DailyClaims[userID] = *lastClaim
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	var lastDrawAt, nextDrawAt *time.Time
	err = g.db.QueryRow(ctx, `SELECT amount, last_draw_at, next_draw_at FROM lottery_pool WHERE id = 1`).
		Scan(&state.PoolAmount, &lastDrawAt, &nextDrawAt)
	if err != nil {
		return nil, fmt.Errorf("failed to load lottery pool: %w", err)
	}
	if lastDrawAt != nil {
		state.LastDrawAt = *lastDrawAt
	}
	if nextDrawAt != nil {
		state.NextDrawAt = *nextDrawAt
	}

	ticketRows, err := g.db.Query(ctx, `SELECT id, owner_id, numbers, superzahl, purchased_at FROM lottery_tickets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load lottery tickets: %w", err)
	}
	defer ticketRows.Close()

	for ticketRows.Next() {
		var ticket entities.LotteryTicket
		var numbers []int32
		if err := ticketRows.Scan(&ticket.ID, &ticket.OwnerID, &numbers, &ticket.Superzahl, &ticket.PurchasedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lottery ticket: %w", err)
		}
		ticket.Numbers = make([]int, len(numbers))
		for i, n := range numbers {
			ticket.Numbers[i] = int(n)
		}
		state.Tickets = append(state.Tickets, &ticket)
	}
	if err := ticketRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lottery tickets: %w", err)
	}

	return state, nil
}

// SaveBalance upserts a user's balance.
func (g *Gateway) SaveBalance(ctx context.Context, userID int64, balance int64) error {
	query := `
		INSERT INTO accounts (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET balance = EXCLUDED.balance, updated_at = NOW()
	`
	if _, err := g.db.Exec(ctx, query, userID, balance); err != nil {
		return fmt.Errorf("failed to save balance for user %d: %w", userID, err)
	}
	return nil
}

// SaveDailyClaim records a daily reward claim timestamp.
func (g *Gateway) SaveDailyClaim(ctx context.Context, userID int64, claimedAt time.Time) error {
	query := `
		INSERT INTO accounts (user_id, balance, last_daily_claim)
		VALUES ($1, 0, $2)
		ON CONFLICT (user_id) DO UPDATE SET last_daily_claim = EXCLUDED.last_daily_claim, updated_at = NOW()
	`
	if _, err := g.db.Exec(ctx, query, userID, claimedAt); err != nil {
		return fmt.Errorf("failed to save daily claim for user %d: %w", userID, err)
	}
	return nil
}

// SaveLotteryPool writes the pool amount and draw schedule.
func (g *Gateway) SaveLotteryPool(ctx context.Context, amount int64, lastDrawAt, nextDrawAt time.Time) error {
	var last, next *time.Time
	if !lastDrawAt.IsZero() {
		last = &lastDrawAt
	}
	if !nextDrawAt.IsZero() {
		next = &nextDrawAt
	}

	query := `
		UPDATE lottery_pool
		SET amount = $1, last_draw_at = $2, next_draw_at = $3
		WHERE id = 1
	`
	if _, err := g.db.Exec(ctx, query, amount, last, next); err != nil {
		return fmt.Errorf("failed to save lottery pool: %w", err)
	}
	return nil
}

// SaveTicket inserts a purchased ticket.
func (g *Gateway) SaveTicket(ctx context.Context, ticket *entities.LotteryTicket) error {
	numbers := make([]int32, len(ticket.Numbers))
	for i, n := range ticket.Numbers {
		numbers[i] = int32(n)
	}

	query := `
		INSERT INTO lottery_tickets (owner_id, numbers, superzahl, purchased_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := g.db.Exec(ctx, query, ticket.OwnerID, numbers, ticket.Superzahl, ticket.PurchasedAt); err != nil {
		return fmt.Errorf("failed to save lottery ticket for user %d: %w", ticket.OwnerID, err)
	}
	return nil
}

// ClearTickets removes all stored tickets after a draw.
func (g *Gateway) ClearTickets(ctx context.Context) error {
	if _, err := g.db.Exec(ctx, `DELETE FROM lottery_tickets`); err != nil {
		return fmt.Errorf("failed to clear lottery tickets: %w", err)
	}
	return nil
}
