package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Email  EmailConfig
	CORS   CORSConfig
	App    AppConfig
}

type ServerConfig struct {
	Port string
}

type MongoConfig struct {
	URL    string
	DBName string
}

type RedisConfig struct {
	Addr     string
	Password string
}

// EmailConfig drives the inquiry notification. Notifications are disabled
// when APIKey or NotificationEmail is empty.
type EmailConfig struct {
	APIKey            string
	SenderEmail       string
	NotificationEmail string
}

type CORSConfig struct {
	Origins []string
}

type AppConfig struct {
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Mongo: MongoConfig{
			URL:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
			DBName: getEnv("DB_NAME", "quietwealth"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Email: EmailConfig{
			APIKey:            getEnv("RESEND_API_KEY", ""),
			SenderEmail:       getEnv("SENDER_EMAIL", "onboarding@resend.dev"),
			NotificationEmail: getEnv("NOTIFICATION_EMAIL", ""),
		},
		CORS: CORSConfig{
			Origins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		},
		App: AppConfig{
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Mongo.URL == "" {
		return fmt.Errorf("MONGO_URL is required")
	}
	if c.Mongo.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
