package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func betOption(description string) *discordgo.ApplicationCommandOption {
	minBet := float64(1)
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "bet",
		Description: description,
		Required:    true,
		MinValue:    &minBet,
	}
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "balance",
			Description: "Check your current balance",
		},
		{
			Name:        "daily",
			Description: "Claim your daily reward",
		},
		{
			Name:        "slots",
			Description: "Spin the slot machine",
			Options:     []*discordgo.ApplicationCommandOption{betOption("Amount to bet")},
		},
		{
			Name:        "coinflip",
			Description: "Flip a coin, double or nothing",
			Options:     []*discordgo.ApplicationCommandOption{betOption("Amount to bet")},
		},
		{
			Name:        "dice",
			Description: "Roll a die, high rolls pay out",
			Options:     []*discordgo.ApplicationCommandOption{betOption("Amount to bet")},
		},
		{
			Name:        "roulette",
			Description: "Bet on red, black or an exact number",
			Options: []*discordgo.ApplicationCommandOption{
				betOption("Amount to bet"),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "on",
					Description: "red, black or a number from 0 to 36",
					Required:    true,
				},
			},
		},
		{
			Name:        "scratch",
			Description: "Buy a scratch card",
			Options:     []*discordgo.ApplicationCommandOption{betOption("Amount to bet")},
		},
		{
			Name:        "war",
			Description: "Play a round of casino war",
			Options:     []*discordgo.ApplicationCommandOption{betOption("Amount to bet")},
		},
		{
			Name:        "wheel",
			Description: "Spin the wheel of fortune",
			Options:     []*discordgo.ApplicationCommandOption{betOption("Amount to bet")},
		},
		{
			Name:        "blackjack",
			Description: "Play blackjack against the dealer",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a new game",
					Options:     []*discordgo.ApplicationCommandOption{betOption("Amount to bet")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "hit",
					Description: "Draw another card",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stand",
					Description: "Stand and let the dealer play",
				},
			},
		},
		{
			Name:        "lotto",
			Description: "Play the 6-of-49 lottery",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "buy",
					Description: "Buy a ticket for the next draw",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "numbers",
							Description: "6 numbers from 1 to 49, e.g. \"3 7 12 25 38 49\" (random if omitted)",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "superzahl",
							Description: "Superzahl from 0 to 9 (random if omitted)",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show the pot, the next draw and your tickets",
				},
			},
		},
	}

	log.Infof("Registering %d slash commands...", len(commands))
	for _, command := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, command)
		if err != nil {
			return fmt.Errorf("cannot create command %s: %w", command.Name, err)
		}
	}
	log.Info("Slash commands registered")

	return nil
}
