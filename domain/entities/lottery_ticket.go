package entities

import "time"

const (
	// LotteryNumbersPerTicket is the count of main numbers on a ticket.
	LotteryNumbersPerTicket = 6
	// LotteryMaxNumber is the upper bound of the main number range [1, 49].
	LotteryMaxNumber = 49
	// LotteryMaxSuperzahl is the upper bound of the superzahl range [0, 9].
	LotteryMaxSuperzahl = 9
)

// LotteryTicket represents a single lottery ticket: 6 distinct main numbers
// in [1, 49] plus one superzahl digit in [0, 9]. Tickets are created on
// purchase and cleared after each draw.
type LotteryTicket struct {
	ID          int64     `db:"id"`
	OwnerID     int64     `db:"owner_id"`
	Numbers     []int     `db:"numbers"`
	Superzahl   int       `db:"superzahl"`
	PurchasedAt time.Time `db:"purchased_at"`
}

// MatchCount returns the intersection size between the ticket's numbers and
// the winning numbers.
func (t *LotteryTicket) MatchCount(winning []int) int {
	drawn := make(map[int]bool, len(winning))
	for _, n := range winning {
		drawn[n] = true
	}
	matches := 0
	for _, n := range t.Numbers {
		if drawn[n] {
			matches++
		}
	}
	return matches
}

// MatchesSuperzahl reports whether the ticket's superzahl equals the drawn one.
func (t *LotteryTicket) MatchesSuperzahl(superzahl int) bool {
	return t.Superzahl == superzahl
}

// ValidateLotteryNumbers checks that the numbers form a valid ticket:
// exactly 6, all distinct, each in [1, 49].
func ValidateLotteryNumbers(numbers []int) error {
	if len(numbers) != LotteryNumbersPerTicket {
		return ErrInvalidLotteryNumbers
	}
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if n < 1 || n > LotteryMaxNumber || seen[n] {
			return ErrInvalidLotteryNumbers
		}
		seen[n] = true
	}
	return nil
}

// ValidateSuperzahl checks that the superzahl is in [0, 9].
func ValidateSuperzahl(superzahl int) error {
	if superzahl < 0 || superzahl > LotteryMaxSuperzahl {
		return ErrInvalidSuperzahl
	}
	return nil
}
