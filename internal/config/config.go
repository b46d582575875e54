package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL        string
	PexelsAPIKey      string
	KafkaAddress      string
	KafkaTopic        string
	StoragePath       string
	PollInterval      time.Duration
	AdminPollInterval time.Duration
	LogLevel          string
}

func must(v string, name string) string {
	if v == "" {
		log.Fatalf("missing required env %s", name)
	}
	return v
}

func duration(name string, def time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Notice: invalid %s=%q, using %s", name, v, def)
		return def
	}
	return d
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		APIBaseURL:        must(os.Getenv("FOODHUB_API_URL"), "FOODHUB_API_URL"),
		PexelsAPIKey:      os.Getenv("PEXELS_API_KEY"),
		KafkaAddress:      os.Getenv("KAFKA_ADDRESS"),
		KafkaTopic:        os.Getenv("KAFKA_TOPIC"),
		StoragePath:       os.Getenv("STORAGE_PATH"),
		PollInterval:      duration("POLL_INTERVAL", 10*time.Second),
		AdminPollInterval: duration("ADMIN_POLL_INTERVAL", 5*time.Second),
		LogLevel:          os.Getenv("LOG_LEVEL"),
	}

	if config.StoragePath == "" {
		config.StoragePath = "foodhub.db"
	}
	if config.KafkaTopic == "" {
		config.KafkaTopic = "cart-events"
	}

	return config, nil
}
