package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration
type Config struct {
	// HTTP server configuration
	ListenAddr string

	// Database configuration
	DatabaseURL string

	// Hedera configuration
	HederaNetwork   string // "testnet" or "mainnet"
	OperatorID      string
	OperatorKey     string
	TreasuryAccount string
	ShareTokenID    string

	// Exchange rate oracle
	RateURL      string
	FallbackRate decimal.Decimal

	// Investment settings with defaults
	HenPriceKsh      decimal.Decimal
	MinInvestmentKsh decimal.Decimal
	BonusRate        decimal.Decimal
	LockDays         int

	// Hour in UTC when daily profit distribution runs (0-23)
	DistributionHour int

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	// Best effort; real deployments set env vars directly
	_ = godotenv.Load()

	config := &Config{
		ListenAddr: os.Getenv("LISTEN_ADDR"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		HederaNetwork:   os.Getenv("HEDERA_NETWORK"),
		OperatorID:      os.Getenv("HEDERA_OPERATOR_ID"),
		OperatorKey:     os.Getenv("HEDERA_OPERATOR_KEY"),
		TreasuryAccount: os.Getenv("PLATFORM_TREASURY_ACCOUNT"),
		ShareTokenID:    os.Getenv("SHARE_TOKEN_ID"),

		RateURL: os.Getenv("RATE_URL"),

		// Investment settings with defaults
		FallbackRate:     decimal.NewFromInt(45),
		HenPriceKsh:      decimal.NewFromInt(700),
		MinInvestmentKsh: decimal.NewFromInt(10),
		BonusRate:        decimal.RequireFromString("0.05"),
		LockDays:         3,
		DistributionHour: 6,

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if config.ListenAddr == "" {
		config.ListenAddr = ":8080"
	}
	if config.HederaNetwork == "" {
		config.HederaNetwork = "testnet"
	}
	if config.RateURL == "" {
		config.RateURL = "https://api.coinbase.com/v2/exchange-rates?currency=HBAR"
	}

	// Override defaults if environment variables are set
	if price := os.Getenv("HEN_PRICE_KSH"); price != "" {
		if parsed, err := decimal.NewFromString(price); err == nil && parsed.IsPositive() {
			config.HenPriceKsh = parsed
		}
	}
	if minAmount := os.Getenv("MIN_INVESTMENT_KSH"); minAmount != "" {
		if parsed, err := decimal.NewFromString(minAmount); err == nil && parsed.IsPositive() {
			config.MinInvestmentKsh = parsed
		}
	}
	if fallback := os.Getenv("FALLBACK_HBAR_RATE"); fallback != "" {
		if parsed, err := decimal.NewFromString(fallback); err == nil && parsed.IsPositive() {
			config.FallbackRate = parsed
		}
	}
	if days := os.Getenv("LOCK_DAYS"); days != "" {
		if parsed, err := strconv.Atoi(days); err == nil && parsed > 0 {
			config.LockDays = parsed
		}
	}
	if hour := os.Getenv("DISTRIBUTION_HOUR"); hour != "" {
		if parsed, err := strconv.Atoi(hour); err == nil && parsed >= 0 && parsed <= 23 {
			config.DistributionHour = parsed
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.TreasuryAccount == "" {
			return nil, fmt.Errorf("PLATFORM_TREASURY_ACCOUNT is required")
		}
		if config.ShareTokenID == "" {
			return nil, fmt.Errorf("SHARE_TOKEN_ID is required")
		}
	}

	return config, nil
}
