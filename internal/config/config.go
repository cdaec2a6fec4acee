package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a Postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Courier stores courier API settings. Client credentials may be overridden
// by the courier_configs table row; env values take precedence when set.
type Courier struct {
	BaseURL           string
	ClientID          string
	ClientSecret      string
	PickupDaysAhead   int
	DeliveryDaysAhead int
}

// WhatsApp stores WhatsApp-sending gateway settings.
type WhatsApp struct {
	BaseURL     string
	CountryCode string
}

// Kafka stores dispatch-consumer settings. Empty brokers disable the worker.
type Kafka struct {
	Brokers []string
	GroupID string
	Topic   string
}

// RateLimit stores webhook rate limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Config stores all service settings.
type Config struct {
	Port      int
	DB        DB
	Courier   Courier
	WhatsApp  WhatsApp
	Kafka     Kafka
	RateLimit RateLimit
	PprofAddr string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		DB:        DefaultDB(),
		Courier:   DefaultCourier(),
		WhatsApp:  DefaultWhatsApp(),
		RateLimit: DefaultRateLimit(),
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = p
	}

	readEnv := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	readEnv("POSTGRES_HOST", &cfg.DB.Host)
	readEnv("POSTGRES_PORT", &cfg.DB.Port)
	readEnv("POSTGRES_USER", &cfg.DB.User)
	readEnv("POSTGRES_PASSWORD", &cfg.DB.Pass)
	readEnv("POSTGRES_DB", &cfg.DB.Name)

	readEnv("COURIER_BASE_URL", &cfg.Courier.BaseURL)
	readEnv("COURIER_CLIENT_ID", &cfg.Courier.ClientID)
	readEnv("COURIER_CLIENT_SECRET", &cfg.Courier.ClientSecret)
	if v := os.Getenv("COURIER_DELIVERY_DAYS_AHEAD"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("invalid COURIER_DELIVERY_DAYS_AHEAD %q", v)
		}
		cfg.Courier.DeliveryDaysAhead = d
	}

	readEnv("WHATSAPP_BASE_URL", &cfg.WhatsApp.BaseURL)
	readEnv("WHATSAPP_COUNTRY_CODE", &cfg.WhatsApp.CountryCode)

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitAndTrim(v)
	}
	readEnv("KAFKA_GROUP_ID", &cfg.Kafka.GroupID)
	readEnv("KAFKA_TOPIC", &cfg.Kafka.Topic)

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_ENABLED %q: %w", v, err)
		}
		cfg.RateLimit.Enabled = b
	}
	if v := os.Getenv("RATE_LIMIT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_TTL %q: %w", v, err)
		}
		cfg.RateLimit.TTL = d
	}

	readEnv("PPROF_ADDR", &cfg.PprofAddr)

	fs := pflag.NewFlagSet("orderdesk", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.Courier.BaseURL, "courier-base-url", cfg.Courier.BaseURL, "courier API base URL")
	fs.StringVar(&cfg.WhatsApp.BaseURL, "whatsapp-base-url", cfg.WhatsApp.BaseURL, "WhatsApp gateway base URL")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if _, err := strconv.Atoi(c.DB.Port); err != nil {
		return fmt.Errorf("invalid postgres port %q: %w", c.DB.Port, err)
	}
	if c.Courier.DeliveryDaysAhead < c.Courier.PickupDaysAhead {
		return fmt.Errorf("delivery target %dd before pickup %dd",
			c.Courier.DeliveryDaysAhead, c.Courier.PickupDaysAhead)
	}
	if c.WhatsApp.CountryCode == "" {
		return fmt.Errorf("whatsapp country code must not be empty")
	}
	return nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
