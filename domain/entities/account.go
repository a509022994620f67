package entities

import "time"

// Account holds a user's virtual currency balance. Accounts are created
// lazily on first access and never deleted.
type Account struct {
	UserID         int64      `db:"user_id"`
	Balance        int64      `db:"balance"`
	LastDailyClaim *time.Time `db:"last_daily_claim"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// DailyClaimInterval is the minimum time between two daily reward claims.
const DailyClaimInterval = 24 * time.Hour

// CanAfford checks if the account has sufficient balance for an amount.
func (a *Account) CanAfford(amount int64) bool {
	return a.Balance >= amount
}

// CanClaimDaily reports whether the daily reward may be claimed at the given
// time: either no prior claim exists or the claim interval has elapsed.
func (a *Account) CanClaimDaily(now time.Time) bool {
	if a.LastDailyClaim == nil {
		return true
	}
	return now.Sub(*a.LastDailyClaim) >= DailyClaimInterval
}

// RecordDailyClaim marks the daily reward as claimed at the given time.
func (a *Account) RecordDailyClaim(now time.Time) {
	claimed := now
	a.LastDailyClaim = &claimed
}
