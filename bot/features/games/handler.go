package games

import (
	"context"
	"strconv"

	"zocker/bot/common"
	"zocker/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandlePlay resolves one round of the game behind the invoked command
func (f *Feature) HandlePlay(s *discordgo.Session, i *discordgo.InteractionCreate, gameType entities.GameType) {
	ctx := context.Background()

	userID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var bet int64
	var param string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "bet":
			bet = opt.IntValue()
		case "on":
			param = opt.StringValue()
		}
	}

	result, err := f.games.Play(ctx, userID, gameType, bet, param)
	if err != nil {
		common.HandleError(s, i, err)
		return
	}

	common.Respond(s, i, common.FormatGameResult(result.Outcome, result.NewBalance))
}
