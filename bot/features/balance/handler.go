package balance

import (
	"context"
	"fmt"
	"strconv"

	"zocker/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleBalance responds with the user's current balance
func (f *Feature) HandleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	balance := f.ledger.GetBalance(ctx, userID)
	message := fmt.Sprintf("Your current balance: **%s coins**", common.FormatBalance(balance))
	common.RespondEphemeral(s, i, message)
}

// HandleDaily claims the daily reward
func (f *Feature) HandleDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	reward, err := f.ledger.ClaimDaily(ctx, userID)
	if err != nil {
		common.HandleError(s, i, err)
		return
	}

	balance := f.ledger.GetBalance(ctx, userID)
	message := fmt.Sprintf("🎁 You claimed **%s coins**! New balance: **%s coins**",
		common.FormatBalance(reward), common.FormatBalance(balance))
	common.Respond(s, i, message)
}
