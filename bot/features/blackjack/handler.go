package blackjack

import (
	"context"
	"fmt"
	"strconv"

	"zocker/bot/common"
	"zocker/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleCommand routes the blackjack subcommand
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "Missing subcommand.")
		return
	}

	ctx := context.Background()
	sub := options[0]

	var result *interfaces.BlackjackResult
	switch sub.Name {
	case "start":
		var bet int64
		for _, opt := range sub.Options {
			if opt.Name == "bet" {
				bet = opt.IntValue()
			}
		}
		result, err = f.blackjack.Start(ctx, userID, bet)
	case "hit":
		result, err = f.blackjack.Hit(ctx, userID)
	case "stand":
		result, err = f.blackjack.Stand(ctx, userID)
	default:
		common.RespondWithError(s, i, "Unknown subcommand.")
		return
	}

	if err != nil {
		common.HandleError(s, i, err)
		return
	}

	common.Respond(s, i, formatResult(result))
}

// formatResult renders the table state. While the session is open only the
// dealer's first card is shown.
func formatResult(result *interfaces.BlackjackResult) string {
	session := result.Session

	if !result.Resolved {
		return fmt.Sprintf("🃏 Your hand: %s\nDealer shows: %s\nHit or stand?",
			common.FormatHand(session.PlayerHand), session.DealerHand[0])
	}

	summary := fmt.Sprintf("🃏 Your hand: %s\nDealer's hand: %s\n",
		common.FormatHand(session.PlayerHand), common.FormatHand(session.DealerHand))

	switch {
	case session.IsNatural():
		summary += fmt.Sprintf("✨ **Blackjack!** You won **%s coins**.", common.FormatBalance(result.Winnings))
	case result.Winnings > session.Bet:
		summary += fmt.Sprintf("🎉 **You won %s coins!**", common.FormatBalance(result.Winnings))
	case result.Winnings == session.Bet:
		summary += "🤝 **Push.** Your bet was returned."
	case session.PlayerValue() > 21:
		summary += fmt.Sprintf("💥 **Bust!** You lost **%s coins**.", common.FormatBalance(session.Bet))
	default:
		summary += fmt.Sprintf("😔 **Dealer wins.** You lost **%s coins**.", common.FormatBalance(session.Bet))
	}

	summary += fmt.Sprintf("\nNew balance: **%s coins**", common.FormatBalance(result.NewBalance))
	return summary
}
