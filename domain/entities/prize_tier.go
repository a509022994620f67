package entities

// PrizeTier is a lottery prize category defined by match count and superzahl
// match. Prize is the nominal payout per winning ticket; the actual payout is
// capped at 10% of the pool at draw time.
type PrizeTier struct {
	Label             string
	Matches           int
	RequiresSuperzahl bool
	Prize             int64
}

// PrizeTiers lists the 9 prize categories from highest to lowest.
var PrizeTiers = []PrizeTier{
	{Label: "6+SZ", Matches: 6, RequiresSuperzahl: true, Prize: 1_000_000},
	{Label: "6", Matches: 6, RequiresSuperzahl: false, Prize: 100_000},
	{Label: "5+SZ", Matches: 5, RequiresSuperzahl: true, Prize: 10_000},
	{Label: "5", Matches: 5, RequiresSuperzahl: false, Prize: 5_000},
	{Label: "4+SZ", Matches: 4, RequiresSuperzahl: true, Prize: 500},
	{Label: "4", Matches: 4, RequiresSuperzahl: false, Prize: 100},
	{Label: "3+SZ", Matches: 3, RequiresSuperzahl: true, Prize: 50},
	{Label: "3", Matches: 3, RequiresSuperzahl: false, Prize: 20},
	{Label: "2+SZ", Matches: 2, RequiresSuperzahl: true, Prize: 10},
}

// ClassifyTier maps a ticket's match count and superzahl match to a prize
// tier. The second return value is false if the ticket wins nothing.
func ClassifyTier(matches int, superzahlMatch bool) (PrizeTier, bool) {
	for _, tier := range PrizeTiers {
		if matches == tier.Matches && (superzahlMatch || !tier.RequiresSuperzahl) {
			return tier, true
		}
	}
	return PrizeTier{}, false
}
