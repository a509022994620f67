package entities

import "errors"

// Error taxonomy surfaced to the command dispatcher. Validation errors are
// reported at the point of the call and never mutate ledger or session state.
// Persistence failures are not part of this set: they are logged inside the
// services and absorbed, since in-memory state stays authoritative.
var (
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInvalidBet            = errors.New("bet amount must be a positive integer")
	ErrInvalidLotteryNumbers = errors.New("lottery numbers must be 6 distinct integers between 1 and 49")
	ErrInvalidSuperzahl      = errors.New("superzahl must be between 0 and 9")
	ErrNoActiveSession       = errors.New("no active blackjack session")
	ErrSessionAlreadyActive  = errors.New("a blackjack session is already active")
	ErrDrawPending           = errors.New("ticket sales are closed while a draw is pending")
	ErrDailyAlreadyClaimed   = errors.New("daily reward already claimed")
)
