// Package config builds runtime configuration from environment variables so
// main stays lean. Every setting has a working default; a bare
// `go run ./cmd/server` serves the full API with no external services.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures top-level service configuration.
type Server struct {
	Addr string

	// StructuredPolicy switches scoring from trend-text scanning to the
	// typed policy alerts on each catalog record.
	StructuredPolicy bool

	Advisor   Advisor
	Redis     Redis
	Kafka     Kafka
	RateLimit RateLimit
}

// Advisor configures the optional advisory-text client. Empty endpoint or
// key leaves the deterministic narrative note in charge.
type Advisor struct {
	Endpoint    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Redis configures the optional shared rate-limit store.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Kafka configures the optional audit event sink.
type Kafka struct {
	Brokers []string
	Topic   string
}

// RateLimit configures the per-IP request limit.
type RateLimit struct {
	Disabled bool
	Limit    int
	Window   time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	return Server{
		Addr:             envOr("PATHWISE_ADDR", ":8080"),
		StructuredPolicy: envBool("PATHWISE_STRUCTURED_POLICY"),
		Advisor: Advisor{
			Endpoint:    os.Getenv("PATHWISE_ADVISOR_ENDPOINT"),
			APIKey:      os.Getenv("PATHWISE_ADVISOR_API_KEY"),
			Model:       os.Getenv("PATHWISE_ADVISOR_MODEL"),
			Temperature: envFloat("PATHWISE_ADVISOR_TEMPERATURE", 0),
			MaxTokens:   envInt("PATHWISE_ADVISOR_MAX_TOKENS", 0),
			Timeout:     envDuration("PATHWISE_ADVISOR_TIMEOUT", 0),
		},
		Redis: Redis{
			URL:          os.Getenv("PATHWISE_REDIS_URL"),
			PoolSize:     envInt("PATHWISE_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("PATHWISE_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("PATHWISE_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("PATHWISE_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("PATHWISE_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: Kafka{
			Brokers: envList("PATHWISE_KAFKA_BROKERS"),
			Topic:   os.Getenv("PATHWISE_KAFKA_TOPIC"),
		},
		RateLimit: RateLimit{
			Disabled: envBool("PATHWISE_RATELIMIT_DISABLED"),
			Limit:    envInt("PATHWISE_RATELIMIT_LIMIT", 0),
			Window:   envDuration("PATHWISE_RATELIMIT_WINDOW", 0),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	return os.Getenv(key) == "true"
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
