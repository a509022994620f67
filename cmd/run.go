package cmd

import (
	"context"
	"fmt"
	"time"

	"zocker/application"
	"zocker/bot"
	"zocker/config"
	"zocker/database"
	"zocker/domain/services"
	"zocker/repository"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting zocker bot...")

	cfg := config.Get()

	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established successfully")

	gateway := repository.NewGateway(db)

	// Load the persisted snapshot. A failed load is not fatal: the engine
	// starts fresh and writes state back as it goes.
	state, err := gateway.LoadState(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to load persisted state, starting fresh")
		state = nil
	}

	rng := services.NewRandomSource()
	ledger := services.NewLedgerService(gateway, rng, state)
	games := services.NewGameService(ledger, rng)
	blackjack := services.NewBlackjackService(ledger, rng)
	lottery := services.NewLotteryService(gateway, ledger, rng, state)
	log.Info("Game engine initialized successfully")

	log.Info("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:          cfg.DiscordToken,
		GuildID:        cfg.GuildID,
		LottoChannelID: cfg.LottoChannelID,
	}
	discordBot, err := bot.New(botConfig, ledger, games, blackjack, lottery)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	drawWorker := application.NewDrawWorker(lottery, discordBot.Lottery(), time.Minute)
	stopDrawWorker := drawWorker.Start(ctx)

	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	log.Info("Shutting down...")
	stopDrawWorker()

	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}
