package bot

import (
	"fmt"

	"zocker/bot/features/balance"
	"zocker/bot/features/blackjack"
	"zocker/bot/features/games"
	"zocker/bot/features/lottery"
	"zocker/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token          string
	GuildID        string
	LottoChannelID string
}

// Bot manages the Discord session and all feature modules
type Bot struct {
	config  Config
	session *discordgo.Session

	balance   *balance.Feature
	games     *games.Feature
	blackjack *blackjack.Feature
	lottery   *lottery.Feature
}

// New creates a new bot instance with all features and opens the connection
func New(config Config, ledger interfaces.LedgerService, gameService interfaces.GameService, blackjackService interfaces.BlackjackService, lotteryService interfaces.LotteryService) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:  config,
		session: dg,
	}

	bot.balance = balance.New(ledger)
	bot.games = games.New(gameService)
	bot.blackjack = blackjack.New(blackjackService)
	bot.lottery = lottery.New(dg, lotteryService, config.LottoChannelID)

	dg.AddHandler(bot.handleCommands)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	log.Info("Bot is now running")
	return bot, nil
}

// Lottery exposes the lottery feature for draw announcements
func (b *Bot) Lottery() *lottery.Feature {
	return b.lottery
}

// handleCommands routes slash commands to their feature handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.Member == nil || i.Member.User == nil {
		// Commands are guild-only; ignore DMs.
		return
	}

	name := i.ApplicationCommandData().Name
	log.WithFields(log.Fields{
		"command": name,
		"user_id": i.Member.User.ID,
	}).Debug("Handling slash command")

	if gameType, ok := games.CommandGameTypes[name]; ok {
		b.games.HandlePlay(s, i, gameType)
		return
	}

	switch name {
	case "balance":
		b.balance.HandleBalance(s, i)
	case "daily":
		b.balance.HandleDaily(s, i)
	case "blackjack":
		b.blackjack.HandleCommand(s, i)
	case "lotto":
		b.lottery.HandleCommand(s, i)
	default:
		log.Warnf("Received unknown command: %s", name)
	}
}

// Close shuts down the Discord session
func (b *Bot) Close() error {
	log.Info("Shutting down bot...")
	return b.session.Close()
}
