package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	SheetIDPlaceholder       = "YOUR_SHEET_ID_PLACEHOLDER"
	BotTokenPlaceholder      = "YOUR_BOT_TOKEN_PLACEHOLDER"
	ChatIDPlaceholder        = "YOUR_CHAT_ID_PLACEHOLDER"
	defaultRateLimitRequests = 5
	defaultRateLimitWindow   = 300
	defaultOutboundTimeout   = 10
)

type Config struct {
	MongoDBConnectionString string
	MongoDBDatabaseName     string

	GoogleSheetID         string
	GoogleSheetName       string
	GoogleCredentialsFile string

	TelegramBotToken string
	TelegramChatID   string
	TelegramAPIURL   string

	RateLimitMaxRequests int
	RateLimitWindow      time.Duration
	OutboundTimeout      time.Duration

	HTTPPort string
}

func LoadConfig() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables only")
	}

	config := &Config{
		MongoDBConnectionString: getenv("MONGODB_CONNECTION_STRING", "mongodb://localhost:27017/"),
		MongoDBDatabaseName:     getenv("MONGODB_DATABASE_NAME", "shopeasy_db"),
		GoogleSheetID:           getenv("GOOGLE_SHEET_ID", SheetIDPlaceholder),
		GoogleSheetName:         getenv("GOOGLE_SHEET_NAME", "Sheet1"),
		GoogleCredentialsFile:   getenv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		TelegramBotToken:        getenv("TELEGRAM_BOT_TOKEN", BotTokenPlaceholder),
		TelegramChatID:          getenv("TELEGRAM_CHAT_ID", ChatIDPlaceholder),
		TelegramAPIURL:          getenv("TELEGRAM_API_URL", "https://api.telegram.org"),
		RateLimitMaxRequests:    getenvInt("RATE_LIMIT_MAX_REQUESTS", defaultRateLimitRequests),
		RateLimitWindow:         time.Duration(getenvInt("RATE_LIMIT_WINDOW_SECONDS", defaultRateLimitWindow)) * time.Second,
		OutboundTimeout:         time.Duration(getenvInt("OUTBOUND_TIMEOUT_SECONDS", defaultOutboundTimeout)) * time.Second,
		HTTPPort:                getenv("HTTP_PORT", "8080"),
	}

	return config, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getenvInt ignores malformed and non-positive values.
func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		log.Printf("Warning: invalid value %q for %s, using %d", v, key, fallback)
		return fallback
	}
	return i
}
