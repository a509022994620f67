package common

import (
	"errors"
	"fmt"

	"zocker/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// RespondWithError sends an error message as an ephemeral interaction response
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("❌ %s", message),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

// Respond sends a plain interaction response
func Respond(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
	if err != nil {
		log.Errorf("Error responding to interaction: %v", err)
	}
}

// RespondEphemeral sends an interaction response only the invoking user sees
func RespondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error responding to interaction: %v", err)
	}
}

// UserErrorMessage maps a domain error to a user-facing message. The second
// return value is false for unexpected errors that should stay generic.
func UserErrorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, entities.ErrInsufficientFunds):
		return "You don't have enough coins for that.", true
	case errors.Is(err, entities.ErrInvalidBet):
		return "That bet isn't valid.", true
	case errors.Is(err, entities.ErrInvalidLotteryNumbers):
		return "Pick 6 different numbers between 1 and 49.", true
	case errors.Is(err, entities.ErrInvalidSuperzahl):
		return "The Superzahl must be between 0 and 9.", true
	case errors.Is(err, entities.ErrNoActiveSession):
		return "You don't have a blackjack game running. Start one with `/blackjack start`.", true
	case errors.Is(err, entities.ErrSessionAlreadyActive):
		return "You already have a blackjack game running. Finish it first.", true
	case errors.Is(err, entities.ErrDrawPending):
		return "The draw is about to run. Try again in a minute.", true
	case errors.Is(err, entities.ErrDailyAlreadyClaimed):
		return "You already claimed your daily reward. Come back tomorrow.", true
	default:
		return "Something went wrong. Please try again later.", false
	}
}

// HandleError responds to the interaction based on the error kind: domain
// errors get their specific message, anything else is logged and kept generic.
func HandleError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	message, known := UserErrorMessage(err)
	if !known {
		log.WithFields(log.Fields{
			"user_id": i.Member.User.ID,
			"command": i.ApplicationCommandData().Name,
			"error":   err.Error(),
		}).Error("Unexpected error in bot command")
	}
	RespondWithError(s, i, message)
}
