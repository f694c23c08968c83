package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
	PostgresTimeZone string

	RedisURL     string
	CartTTLHours int

	StripeSecretKey  string
	StripeWebhookKey string

	JWTSecret string

	// PublicBaseURL is where Stripe redirects the buyer after payment.
	PublicBaseURL string
	AllowedOrigin string

	// Optional event publishing. Empty values disable the publisher.
	KafkaBrokers     string
	KafkaOrderTopic  string
	OrderSNSTopicARN string

	// Optional S3 upload presigning for artwork images.
	S3Bucket string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// no .env file, fall back to process environment
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone: getEnv("POSTGRES_TIMEZONE", "Europe/Sofia"),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379/0"),
		CartTTLHours:     720,
		StripeSecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookKey: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		JWTSecret:        strings.TrimSpace(os.Getenv("JWT_SECRET")),
		PublicBaseURL:    getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),
		AllowedOrigin:    getEnv("ALLOWED_ORIGIN", "*"),
		KafkaBrokers:     os.Getenv("KAFKA_BROKERS"),
		KafkaOrderTopic:  getEnv("KAFKA_ORDER_TOPIC", "order-events"),
		OrderSNSTopicARN: os.Getenv("ORDER_SNS_TOPIC_ARN"),
		S3Bucket:         os.Getenv("ARTWORK_S3_BUCKET"),
	}

	if cfg.PostgresUser == "" || cfg.PostgresPassword == "" || cfg.PostgresDB == "" || cfg.PostgresHost == "" ||
		cfg.StripeSecretKey == "" || cfg.StripeWebhookKey == "" || cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required environment variables")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
