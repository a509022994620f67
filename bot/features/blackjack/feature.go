package blackjack

import (
	"zocker/domain/interfaces"
)

// Feature handles the blackjack subcommands
type Feature struct {
	blackjack interfaces.BlackjackService
}

// New creates the blackjack feature
func New(blackjack interfaces.BlackjackService) *Feature {
	return &Feature{blackjack: blackjack}
}
