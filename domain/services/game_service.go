package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"zocker/domain/entities"
	"zocker/domain/interfaces"
)

// Slot reels carry 7 symbols drawn by weight, rarest last. A jackpot triple
// pays 50x, a diamond triple 20x, any other triple 10x, a pair 2x. Weights
// sum to 100.
type slotSymbol struct {
	weight int
	symbol string
}

var slotSymbols = []slotSymbol{
	{weight: 25, symbol: "🍒"},
	{weight: 20, symbol: "🍋"},
	{weight: 17, symbol: "🍉"},
	{weight: 15, symbol: "🍇"},
	{weight: 12, symbol: "🔔"},
	{weight: 8, symbol: "💎"},
	{weight: 3, symbol: "7️⃣"},
}

const (
	slotJackpotSymbol = "7️⃣"
	slotDiamondSymbol = "💎"
)

// Scratch cards have 9 cells over 6 symbols. Three or more of one symbol win
// count x weight. Weights: premium 10, second tier 5, third tier 3, others 1.
var (
	scratchSymbols = []string{"💰", "⭐", "🍀", "🍒", "🍋", "🍇"}
	scratchWeights = map[string]int64{
		"💰": 10,
		"⭐": 5,
		"🍀": 3,
		"🍒": 1,
		"🍋": 1,
		"🍇": 1,
	}
)

// rouletteReds is the fixed set of red numbers. 0 is neither red nor black;
// black is any non-zero, non-red number.
var rouletteReds = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// wheelSegments are selected by a cumulative-probability draw; the weights
// sum to 100.
type wheelSegment struct {
	weight int
	num    int64
	den    int64
	label  string
}

var wheelSegments = []wheelSegment{
	{weight: 40, num: 0, den: 1, label: "0x"},
	{weight: 25, num: 3, den: 2, label: "1.5x"},
	{weight: 15, num: 2, den: 1, label: "2x"},
	{weight: 10, num: 3, den: 1, label: "3x"},
	{weight: 7, num: 5, den: 1, label: "5x"},
	{weight: 3, num: 50, den: 1, label: "50x"},
}

type gameService struct {
	ledger interfaces.LedgerService
	rng    interfaces.RandomSource
}

// NewGameService creates the one-shot game service.
func NewGameService(ledger interfaces.LedgerService, rng interfaces.RandomSource) interfaces.GameService {
	return &gameService{ledger: ledger, rng: rng}
}

func (s *gameService) Play(ctx context.Context, userID int64, gameType entities.GameType, bet int64, param string) (*interfaces.GamePlayResult, error) {
	if bet <= 0 {
		return nil, entities.ErrInvalidBet
	}
	if err := validateParam(gameType, param); err != nil {
		return nil, err
	}

	// The bet is debited atomically before the outcome is resolved, so two
	// concurrent wagers cannot both pass a sufficiency check against a
	// stale balance.
	newBalance, err := s.ledger.Debit(ctx, userID, bet)
	if err != nil {
		return nil, err
	}

	outcome, err := s.resolve(gameType, bet, param)
	if err != nil {
		return nil, err
	}

	if outcome.Winnings > 0 {
		newBalance = s.ledger.ApplyDelta(ctx, userID, outcome.Winnings)
	}

	return &interfaces.GamePlayResult{
		Outcome:    outcome,
		NewBalance: newBalance,
	}, nil
}

// validateParam rejects malformed game parameters before any ledger access.
func validateParam(gameType entities.GameType, param string) error {
	switch gameType {
	case entities.GameSlots, entities.GameCoinflip, entities.GameDice,
		entities.GameScratch, entities.GameWar, entities.GameWheel:
		return nil
	case entities.GameRoulette:
		_, err := parseRouletteBet(param)
		return err
	default:
		return fmt.Errorf("unknown game type %q", gameType)
	}
}

// parseRouletteBet returns the exact number bet on, or -1 for a color bet.
func parseRouletteBet(param string) (int, error) {
	param = strings.ToLower(strings.TrimSpace(param))
	if param == "red" || param == "black" {
		return -1, nil
	}
	n, err := strconv.Atoi(param)
	if err != nil || n < 0 || n > 36 {
		return 0, fmt.Errorf("%w: roulette bet must be red, black or a number from 0 to 36", entities.ErrInvalidBet)
	}
	return n, nil
}

// resolve maps (game type, bet, param) to an outcome, consuming draws from
// the random source. It performs no ledger access.
func (s *gameService) resolve(gameType entities.GameType, bet int64, param string) (*entities.Outcome, error) {
	switch gameType {
	case entities.GameSlots:
		return s.resolveSlots(bet), nil
	case entities.GameCoinflip:
		return s.resolveCoinflip(bet), nil
	case entities.GameDice:
		return s.resolveDice(bet), nil
	case entities.GameRoulette:
		return s.resolveRoulette(bet, param)
	case entities.GameScratch:
		return s.resolveScratch(bet), nil
	case entities.GameWar:
		return s.resolveWar(bet), nil
	case entities.GameWheel:
		return s.resolveWheel(bet), nil
	default:
		return nil, fmt.Errorf("unknown game type %q", gameType)
	}
}

func (s *gameService) resolveSlots(bet int64) *entities.Outcome {
	reels := []string{s.spinReel(), s.spinReel(), s.spinReel()}

	var num, den int64 = 0, 1
	switch {
	case reels[0] == reels[1] && reels[1] == reels[2]:
		switch reels[0] {
		case slotJackpotSymbol:
			num = 50
		case slotDiamondSymbol:
			num = 20
		default:
			num = 10
		}
	case reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2]:
		num = 2
	}

	return s.outcome(entities.GameSlots, bet, num, den, strings.Join(reels, " "))
}

func (s *gameService) spinReel() string {
	draw := s.rng.Intn(100)

	cumulative := 0
	for _, sym := range slotSymbols {
		cumulative += sym.weight
		if draw < cumulative {
			return sym.symbol
		}
	}
	return slotSymbols[len(slotSymbols)-1].symbol
}

func (s *gameService) resolveCoinflip(bet int64) *entities.Outcome {
	if s.rng.Intn(2) == 0 {
		return s.outcome(entities.GameCoinflip, bet, 2, 1, "heads")
	}
	return s.outcome(entities.GameCoinflip, bet, 0, 1, "tails")
}

func (s *gameService) resolveDice(bet int64) *entities.Outcome {
	roll := s.rng.Intn(6) + 1

	var num, den int64 = 0, 1
	switch roll {
	case 6:
		num = 6
	case 5:
		num = 3
	case 3, 4:
		num, den = 3, 2
	}

	return s.outcome(entities.GameDice, bet, num, den, strconv.Itoa(roll))
}

func (s *gameService) resolveRoulette(bet int64, param string) (*entities.Outcome, error) {
	param = strings.ToLower(strings.TrimSpace(param))
	exactNumber, err := parseRouletteBet(param)
	if err != nil {
		return nil, err
	}

	drawn := s.rng.Intn(37)
	color := "green"
	if drawn != 0 {
		if rouletteReds[drawn] {
			color = "red"
		} else {
			color = "black"
		}
	}

	var num, den int64 = 0, 1
	switch {
	case exactNumber == drawn:
		num = 36
	case exactNumber == -1 && param == color:
		num = 2
	}

	detail := fmt.Sprintf("%d (%s)", drawn, color)
	return s.outcome(entities.GameRoulette, bet, num, den, detail), nil
}

func (s *gameService) resolveScratch(bet int64) *entities.Outcome {
	cells := make([]string, 9)
	counts := make(map[string]int)
	for i := range cells {
		symbol := scratchSymbols[s.rng.Intn(len(scratchSymbols))]
		cells[i] = symbol
		counts[symbol]++
	}

	// Best multiplier among symbols appearing at least three times.
	var num int64
	for symbol, count := range counts {
		if count < 3 {
			continue
		}
		if m := int64(count) * scratchWeights[symbol]; m > num {
			num = m
		}
	}

	return s.outcome(entities.GameScratch, bet, num, 1, strings.Join(cells, " "))
}

func (s *gameService) resolveWar(bet int64) *entities.Outcome {
	deck := entities.NewDeck()
	shuffle(deck, s.rng)
	player, dealer := deck[0], deck[1]

	var num int64
	switch {
	case player.Value > dealer.Value:
		num = 2
	case player.Value == dealer.Value:
		num = 1 // stake returned
	}

	detail := fmt.Sprintf("%s vs %s", player, dealer)
	return s.outcome(entities.GameWar, bet, num, 1, detail)
}

func (s *gameService) resolveWheel(bet int64) *entities.Outcome {
	draw := s.rng.Intn(100)

	cumulative := 0
	segment := wheelSegments[len(wheelSegments)-1]
	for _, seg := range wheelSegments {
		cumulative += seg.weight
		if draw < cumulative {
			segment = seg
			break
		}
	}

	return s.outcome(entities.GameWheel, bet, segment.num, segment.den, segment.label)
}

// outcome assembles an Outcome with winnings rounded half-up per the
// documented rounding rule.
func (s *gameService) outcome(gameType entities.GameType, bet, num, den int64, detail string) *entities.Outcome {
	return &entities.Outcome{
		GameType:   gameType,
		Bet:        bet,
		Winnings:   entities.RoundedPayout(bet, num, den),
		Multiplier: float64(num) / float64(den),
		Detail:     detail,
	}
}

// shuffle performs a uniform Fisher-Yates shuffle driven by the injected
// random source.
func shuffle(deck []entities.Card, rng interfaces.RandomSource) {
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}
