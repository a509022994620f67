package entities

// GameType identifies a one-shot wager game.
type GameType string

const (
	GameSlots    GameType = "slots"
	GameCoinflip GameType = "coinflip"
	GameDice     GameType = "dice"
	GameRoulette GameType = "roulette"
	GameScratch  GameType = "scratch"
	GameWar      GameType = "war"
	GameWheel    GameType = "wheel"
)

// Outcome is the immutable result of resolving one instance of a one-shot
// game. It is produced per invocation and never persisted.
type Outcome struct {
	GameType   GameType
	Bet        int64
	Winnings   int64
	Multiplier float64
	// Detail describes the realized result for display: the reel symbols,
	// the rolled number, the drawn roulette number, the cards, the scratch
	// grid or the wheel segment.
	Detail string
}

// Won reports whether the outcome returned anything to the player.
func (o *Outcome) Won() bool {
	return o.Winnings > 0
}

// RoundedPayout computes bet * num/den in integer arithmetic, rounding
// half-up. This is the single rounding rule for fractional multipliers
// (1.5x, 2.5x) against the integer currency unit.
func RoundedPayout(bet, num, den int64) int64 {
	return (bet*num + den/2) / den
}
