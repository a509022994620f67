package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"zocker/database"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string
	GuildID      string // Primary Discord guild ID

	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// Ledger configuration
	StartingBalance int64
	DailyRewardMin  int64
	DailyRewardMax  int64

	// Lottery configuration
	LotteryTicketCost int64
	LotteryMinReserve int64
	// Draws alternate between these weekdays at LotteryDrawHourUTC.
	LotteryDrawDays    []time.Weekday
	LotteryDrawHourUTC int
	LottoChannelID     string // Channel ID for draw result announcements

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			// In test environment, use a default test config instead of panicking
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
				instance.DiscordToken = "test-token"
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		GuildID:      os.Getenv("GUILD_ID"),

		// Database
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		// Ledger defaults
		StartingBalance: 500,
		DailyRewardMin:  100,
		DailyRewardMax:  800,

		// Lottery defaults: Wednesday and Saturday at 19:00 UTC
		LotteryTicketCost:  50,
		LotteryMinReserve:  1000,
		LotteryDrawDays:    []time.Weekday{time.Wednesday, time.Saturday},
		LotteryDrawHourUTC: 19,
		LottoChannelID:     os.Getenv("LOTTO_CHANNEL_ID"),

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		if parsedBalance, err := strconv.ParseInt(balance, 10, 64); err == nil {
			config.StartingBalance = parsedBalance
		}
	}
	if cost := os.Getenv("LOTTERY_TICKET_COST"); cost != "" {
		if parsedCost, err := strconv.ParseInt(cost, 10, 64); err == nil {
			config.LotteryTicketCost = parsedCost
		}
	}
	if reserve := os.Getenv("LOTTERY_MIN_RESERVE"); reserve != "" {
		if parsedReserve, err := strconv.ParseInt(reserve, 10, 64); err == nil {
			config.LotteryMinReserve = parsedReserve
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		// If DatabaseName is provided, ensure it's not empty
		if config.DatabaseName != "" && strings.TrimSpace(config.DatabaseName) == "" {
			return nil, fmt.Errorf("DATABASE_NAME cannot be empty when provided")
		}
	}

	return config, nil
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:        "test",
		StartingBalance:    500,
		DailyRewardMin:     100,
		DailyRewardMax:     800,
		LotteryTicketCost:  50,
		LotteryMinReserve:  1000,
		LotteryDrawDays:    []time.Weekday{time.Wednesday, time.Saturday},
		LotteryDrawHourUTC: 19,
	}
}
