package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultServiceName = "storefront"
	DefaultServerPort  = 3000
	DefaultDatabaseURL = "file:storefront.db"
	DefaultCartTopic   = "cart_events"
)

type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string

	DatabaseURL string
	SeedCatalog bool

	KafkaBrokers   []string
	KafkaCartTopic string

	ShutdownTimeout time.Duration
}

// Load reads .env (when present) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("notice: .env file not found: %v. Using system environment variables", err)
	}
	return FromEnv()
}

func FromEnv() *Config {
	return &Config{
		ServiceName: EnvDefault("SERVICE_NAME", DefaultServiceName),
		ServerPort:  EnvIntDefault("SERVER_PORT", DefaultServerPort),
		LogLevel:    EnvDefault("LOG_LEVEL", "info"),

		DatabaseURL: EnvDefault("DATABASE_URL", DefaultDatabaseURL),
		SeedCatalog: EnvBoolDefault("SEED_CATALOG", true),

		KafkaBrokers:   CSV(os.Getenv("KAFKA_BROKERS")),
		KafkaCartTopic: EnvDefault("KAFKA_CART_TOPIC", DefaultCartTopic),

		ShutdownTimeout: time.Duration(EnvIntDefault("SHUTDOWN_TIMEOUT_SEC", 10)) * time.Second,
	}
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.ServerPort)
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
