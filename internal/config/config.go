package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

type Config struct {
	HTTPPort               string
	AppEnv                 string
	LogLevel               string
	StoreDriver            string
	MongoURI               string
	MongoDatabase          string
	DBConnectTimeout       time.Duration
	StripeSecretKey        string
	PaymentCurrency        string
	RedisURL               string
	PaymentRateLimitPerMin int
	RequestTimeout         time.Duration
	CORSAllowedOrigins     []string
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "3000")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", StoreDriverMongo)
	v.SetDefault("MONGODB_DATABASE", "ScholarshipStream")
	v.SetDefault("DB_CONNECT_TIMEOUT", 30*time.Second)
	v.SetDefault("PAYMENT_CURRENCY", "usd")
	v.SetDefault("PAYMENT_RATE_LIMIT_PER_MIN", 20)
	v.SetDefault("REQUEST_TIMEOUT", 10*time.Second)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	return v
}

func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		HTTPPort:               strings.TrimSpace(v.GetString("PORT")),
		AppEnv:                 strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV"))),
		LogLevel:               strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		StoreDriver:            strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		MongoURI:               strings.TrimSpace(v.GetString("MONGODB_URI")),
		MongoDatabase:          strings.TrimSpace(v.GetString("MONGODB_DATABASE")),
		DBConnectTimeout:       v.GetDuration("DB_CONNECT_TIMEOUT"),
		StripeSecretKey:        strings.TrimSpace(v.GetString("STRIPE_SECRET_KEY")),
		PaymentCurrency:        strings.ToLower(strings.TrimSpace(v.GetString("PAYMENT_CURRENCY"))),
		RedisURL:               strings.TrimSpace(v.GetString("REDIS_URL")),
		PaymentRateLimitPerMin: v.GetInt("PAYMENT_RATE_LIMIT_PER_MIN"),
		RequestTimeout:         v.GetDuration("REQUEST_TIMEOUT"),
		CORSAllowedOrigins:     splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	missing := make([]string, 0, 2)
	switch cfg.StoreDriver {
	case StoreDriverMongo:
		if cfg.MongoURI == "" {
			missing = append(missing, "MONGODB_URI")
		}
	case StoreDriverMemory:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}
	if cfg.StripeSecretKey == "" {
		missing = append(missing, "STRIPE_SECRET_KEY")
	}
	if len(missing) > 0 {
		return nil, errors.New("missing required config: " + strings.Join(missing, ", "))
	}
	return cfg, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
