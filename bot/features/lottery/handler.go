package lottery

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"zocker/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleCommand routes the lotto subcommand
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

	switch options[0].Name {
	case "buy":
		f.handleBuy(s, i, userID, options[0])
	case "status":
		f.handleStatus(s, i, userID)
	default:
		common.RespondWithError(s, i, "Unknown subcommand.")
	}
}

func (f *Feature) handleBuy(s *discordgo.Session, i *discordgo.InteractionCreate, userID int64, sub *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	var numbers []int
	var superzahl *int
	for _, opt := range sub.Options {
		switch opt.Name {
		case "numbers":
			parsed, err := parseNumbers(opt.StringValue())
			if err != nil {
				common.RespondWithError(s, i, "Pick 6 different numbers between 1 and 49, separated by spaces.")
				return
			}
			numbers = parsed
		case "superzahl":
			sz := int(opt.IntValue())
			superzahl = &sz
		}
	}

	result, err := f.lottery.BuyTicket(ctx, userID, numbers, superzahl)
	if err != nil {
		common.HandleError(s, i, err)
		return
	}

	message := fmt.Sprintf("🎟️ Ticket purchased: **%s**\nPot: **%s coins** · Your balance: **%s coins**",
		common.FormatLotteryNumbers(result.Ticket.Numbers, result.Ticket.Superzahl),
		common.FormatBalance(result.PoolAmount),
		common.FormatBalance(result.NewBalance))
	common.Respond(s, i, message)
}

func (f *Feature) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate, userID int64) {
	ctx := context.Background()

	status, err := f.lottery.GetStatus(ctx, userID)
	if err != nil {
		common.HandleError(s, i, err)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎰 Pot: **%s coins** · %d tickets in play\n", common.FormatBalance(status.PoolAmount), status.TicketCount)
	fmt.Fprintf(&b, "Next draw: %s\n", common.FormatDiscordTimestamp(status.NextDrawAt, "F"))

	if len(status.UserTickets) == 0 {
		b.WriteString("You have no tickets for this draw.")
	} else {
		fmt.Fprintf(&b, "Your tickets (%d):\n", len(status.UserTickets))
		for _, ticket := range status.UserTickets {
			fmt.Fprintf(&b, "· %s\n", common.FormatLotteryNumbers(ticket.Numbers, ticket.Superzahl))
		}
	}

	common.RespondEphemeral(s, i, b.String())
}

// parseNumbers parses a space or comma separated list of lottery numbers.
// Range and uniqueness are validated by the lottery service.
func parseNumbers(input string) ([]int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == ','
	})

	numbers := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", field, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
