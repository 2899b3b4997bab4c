package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"card_payments/internal/domain/entities"
)

const (
	TransactionStoreLog      = "log"
	TransactionStoreDynamoDB = "dynamodb"
)

// Config is built once at startup and passed into route wiring. Nothing in the
// process reads the environment after Load.
type Config struct {
	Port         string
	Stripe       StripeConfig
	Square       SquareConfig
	MercadoPago  MercadoPagoConfig
	Redis        RedisConfig
	Transactions TransactionStoreConfig
	DynamoDB     DynamoDBConfig
}

type StripeConfig struct {
	SecretKey       string
	WebhookSecret   string
	BaseURL         string
	HTTPTimeout     time.Duration
	MinAmount       int64
	DefaultCurrency string
}

type SquareConfig struct {
	AccessToken     string
	LocationID      string
	Environment     string
	APIVersion      string
	BaseURL         string
	HTTPTimeout     time.Duration
	MinAmount       int64
	DefaultCurrency string
}

type MercadoPagoConfig struct {
	AccessToken     string
	MockMode        bool
	TestPayerEmail  string
	TestPayerUserID string
	HTTPTimeout     time.Duration
	MinAmount       int64
	DefaultCurrency string
}

type RedisConfig struct {
	URL       string
	QueueName string
}

type TransactionStoreConfig struct {
	Store string
	Table string
}

// DynamoDBConfig supports local-friendly defaults:
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (optional; unset uses the default
//     credential chain, or placeholder keys when DYNAMODB_ENDPOINT is set)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

// Load reads the environment. defaultPort is the service's own default, used when
// PORT is unset.
func Load(defaultPort string) (*Config, error) {
	var errs []string
	intVar := func(key string, def int64) int64 {
		v, err := getenvInt(key, def)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return v
	}
	durationVar := func(key string, def time.Duration) time.Duration {
		v, err := getenvDuration(key, def)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return v
	}

	cfg := &Config{
		Port: getenvDefault("PORT", defaultPort),
		Stripe: StripeConfig{
			SecretKey:       os.Getenv("STRIPE_SECRET_KEY"),
			WebhookSecret:   os.Getenv("STRIPE_WEBHOOK_SECRET"),
			BaseURL:         os.Getenv("STRIPE_BASE_URL"),
			HTTPTimeout:     durationVar("STRIPE_HTTP_TIMEOUT", 30*time.Second),
			MinAmount:       intVar("STRIPE_MIN_AMOUNT", 50),
			DefaultCurrency: getenvDefault("STRIPE_DEFAULT_CURRENCY", "eur"),
		},
		Square: SquareConfig{
			AccessToken:     os.Getenv("SQUARE_ACCESS_TOKEN"),
			LocationID:      os.Getenv("SQUARE_LOCATION_ID"),
			Environment:     strings.ToLower(getenvDefault("SQUARE_ENVIRONMENT", "sandbox")),
			APIVersion:      os.Getenv("SQUARE_API_VERSION"),
			BaseURL:         os.Getenv("SQUARE_BASE_URL"),
			HTTPTimeout:     durationVar("SQUARE_HTTP_TIMEOUT", 30*time.Second),
			MinAmount:       intVar("SQUARE_MIN_AMOUNT", 1),
			DefaultCurrency: getenvDefault("SQUARE_DEFAULT_CURRENCY", "USD"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken:     os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			MockMode:        isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
			TestPayerEmail:  os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"),
			TestPayerUserID: os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"),
			HTTPTimeout:     durationVar("MERCADOPAGO_HTTP_TIMEOUT", 30*time.Second),
			MinAmount:       intVar("MERCADOPAGO_MIN_AMOUNT", 1),
			DefaultCurrency: getenvDefault("MERCADOPAGO_DEFAULT_CURRENCY", "BRL"),
		},
		Redis: RedisConfig{
			URL:       os.Getenv("REDIS_URL"),
			QueueName: getenvDefault("REDIS_EVENTS_QUEUE", "payment_events"),
		},
		Transactions: TransactionStoreConfig{
			Store: strings.ToLower(getenvDefault("TRANSACTION_STORE", TransactionStoreLog)),
			Table: getenvDefault("TRANSACTIONS_TABLE", "transactions"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},
	}

	switch cfg.Transactions.Store {
	case TransactionStoreLog, TransactionStoreDynamoDB:
	default:
		errs = append(errs, fmt.Sprintf("TRANSACTION_STORE must be %q or %q, got %q", TransactionStoreLog, TransactionStoreDynamoDB, cfg.Transactions.Store))
	}
	switch cfg.Square.Environment {
	case "sandbox", "production":
	default:
		errs = append(errs, fmt.Sprintf("SQUARE_ENVIRONMENT must be sandbox or production, got %q", cfg.Square.Environment))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

func (c *Config) StripePolicy() entities.PaymentPolicy {
	return entities.PaymentPolicy{Provider: entities.ProviderStripe, MinAmount: c.Stripe.MinAmount, DefaultCurrency: c.Stripe.DefaultCurrency}
}

func (c *Config) SquarePolicy() entities.PaymentPolicy {
	return entities.PaymentPolicy{Provider: entities.ProviderSquare, MinAmount: c.Square.MinAmount, DefaultCurrency: c.Square.DefaultCurrency}
}

func (c *Config) MercadoPagoPolicy() entities.PaymentPolicy {
	return entities.PaymentPolicy{Provider: entities.ProviderMercadoPago, MinAmount: c.MercadoPago.MinAmount, DefaultCurrency: c.MercadoPago.DefaultCurrency}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return def, fmt.Errorf("%s must be a non-negative integer, got %q", key, v)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def, fmt.Errorf("%s must be a positive duration, got %q", key, v)
	}
	return d, nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
