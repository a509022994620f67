package games

import (
	"zocker/domain/entities"
	"zocker/domain/interfaces"
)

// Feature handles all one-shot game commands. Each slash command maps onto
// one game type; roulette additionally carries a bet parameter.
type Feature struct {
	games interfaces.GameService
}

// New creates the games feature
func New(games interfaces.GameService) *Feature {
	return &Feature{games: games}
}

// CommandGameTypes maps slash command names to game types.
var CommandGameTypes = map[string]entities.GameType{
	"slots":    entities.GameSlots,
	"coinflip": entities.GameCoinflip,
	"dice":     entities.GameDice,
	"roulette": entities.GameRoulette,
	"scratch":  entities.GameScratch,
	"war":      entities.GameWar,
	"wheel":    entities.GameWheel,
}
