// Package config reads process settings from the environment and the shop
// schedule from a YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

type AWS struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type Tables struct {
	Services string
	Slots    string
	Requests string
	Payments string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Payment struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

type Config struct {
	Env           string
	LogLevel      string
	HTTPPort      string
	StorageDriver string
	ShopConfig    string

	AWS    AWS
	Tables Tables
	Redis  Redis

	CatalogCacheTTL time.Duration

	CalendarUsername string
	CalendarPassword string
	CORSOrigins      []string

	// SubmitRatePerMinute limits submissions per client IP; zero disables it.
	SubmitRatePerMinute int
	SubmitBurst         int

	HorizonInterval   time.Duration
	ReconcileInterval time.Duration

	Payment Payment
}

// FromEnv builds the configuration from environment variables.
func FromEnv() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}
	var problems []string
	getInt := func(key string, def int) int {
		raw := get(key, "")
		if raw == "" {
			return def
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			problems = append(problems, fmt.Sprintf("%s must be a non-negative integer, got %q", key, raw))
			return def
		}
		return n
	}

	cfg := Config{
		Env:           get("APP_ENV", "development"),
		LogLevel:      get("LOG_LEVEL", "info"),
		HTTPPort:      get("HTTP_PORT", "8080"),
		StorageDriver: strings.ToLower(get("STORAGE_DRIVER", StorageDynamoDB)),
		ShopConfig:    get("SHOP_CONFIG_PATH", ""),
		AWS: AWS{
			Region:          get("AWS_REGION", "us-east-1"),
			Endpoint:        get("DYNAMODB_ENDPOINT", ""),
			AccessKeyID:     get("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: get("AWS_SECRET_ACCESS_KEY", "local"),
		},
		Tables: Tables{
			Services: get("SERVICES_TABLE", "repair_services"),
			Slots:    get("SLOTS_TABLE", "appointment_slots"),
			Requests: get("REQUESTS_TABLE", "repair_requests"),
			Payments: get("PAYMENTS_TABLE", "repair_payments"),
		},
		Redis: Redis{
			Addr:     get("REDIS_ADDR", ""),
			Password: get("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		CatalogCacheTTL:     time.Duration(getInt("CATALOG_CACHE_TTL_SECONDS", 300)) * time.Second,
		CalendarUsername:    get("CALENDAR_USERNAME", ""),
		CalendarPassword:    get("CALENDAR_PASSWORD", ""),
		CORSOrigins:         splitList(get("CORS_ORIGINS", "*")),
		SubmitRatePerMinute: getInt("SUBMIT_RATE_PER_MINUTE", 10),
		SubmitBurst:         getInt("SUBMIT_BURST", 5),
		HorizonInterval:     time.Duration(getInt("HORIZON_INTERVAL_MINUTES", 60)) * time.Minute,
		ReconcileInterval:   time.Duration(getInt("RECONCILE_INTERVAL_SECONDS", 30)) * time.Second,
		Payment: Payment{
			Mock:            isTruthy(get("PAYMENT_GATEWAY_MOCK", "")) || isTruthy(get("MERCADOPAGO_MOCK", "")),
			AccessToken:     get("MERCADOPAGO_ACCESS_TOKEN", ""),
			TestPayerEmail:  get("MERCADOPAGO_TEST_PAYER_EMAIL", ""),
			TestPayerUserID: get("MERCADOPAGO_TEST_PAYER_USER_ID", ""),
		},
	}

	switch cfg.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	default:
		problems = append(problems, fmt.Sprintf("STORAGE_DRIVER must be %q or %q, got %q", StorageDynamoDB, StorageMemory, cfg.StorageDriver))
	}
	if (cfg.CalendarUsername == "") != (cfg.CalendarPassword == "") {
		problems = append(problems, "CALENDAR_USERNAME and CALENDAR_PASSWORD must be set together")
	}

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}

// StaffAuthEnabled reports whether staff endpoints are protected.
func (c Config) StaffAuthEnabled() bool {
	return c.CalendarUsername != ""
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
