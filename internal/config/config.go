package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBrokerBaseURL = "https://www.iwi.hs-karlsruhe.de/hskampus-broker/api"
	defaultNewsFeedURL   = "https://www.iwi.hs-karlsruhe.de/intranet/feed/rss/news.xml"
	defaultSessionTTL    = 30 * time.Minute
)

type Config struct {
	TelegramToken string
	DBDSN         string
	Environment   string

	BrokerBaseURL string
	NewsFeedURL   string

	// SessionTTL is how long an appointment dialog may stay idle before it
	// expires.
	SessionTTL time.Duration

	// ClockOffsetHours compensates the server clock when combining the
	// entered date and time. The production deployment runs on UTC while the
	// users enter local (Berlin) times.
	ClockOffsetHours int
}

func Load() (*Config, error) {
	// Load .env if present, otherwise fall back to the environment.
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DBDSN:         os.Getenv("DB_DSN"),
		Environment:   os.Getenv("ENV"),
		BrokerBaseURL: os.Getenv("CAMPUS_BROKER_URL"),
		NewsFeedURL:   os.Getenv("NEWS_FEED_URL"),
		SessionTTL:    defaultSessionTTL,
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.BrokerBaseURL == "" {
		cfg.BrokerBaseURL = defaultBrokerBaseURL
	}
	if cfg.NewsFeedURL == "" {
		cfg.NewsFeedURL = defaultNewsFeedURL
	}

	if ttlStr := os.Getenv("SESSION_TTL_MINUTES"); ttlStr != "" {
		ttl, err := strconv.Atoi(ttlStr)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("SESSION_TTL_MINUTES must be a positive integer, got %q", ttlStr)
		}
		cfg.SessionTTL = time.Duration(ttl) * time.Minute
	}

	// The production server runs two hours behind the campus local time.
	if cfg.Environment == "production" {
		cfg.ClockOffsetHours = 2
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	return cfg, nil
}

// IsProduction reports whether the bot runs in the production deployment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
