package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/edgeledger/bet-engine-service/pkg/staking"
)

// Config holds all configuration for bet-engine-service
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Results  ResultsConfig
	Staking  StakingConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig holds bet store configuration
type PostgresConfig struct {
	DSN string
}

// RedisConfig holds quote cache configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string // Topic to consume from (game_results)
	GroupID string
}

// ResultsConfig holds the results provider configuration
type ResultsConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StakingConfig holds stake sizing parameters
type StakingConfig struct {
	KellyMultiplier  float64 // Fraction of full Kelly (0.25 = quarter Kelly)
	MaxKellyFraction float64 // Max bankroll fraction Kelly may suggest (0.10 = 10%)
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 8082)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("postgres.dsn", "postgres://localhost:5432/bet_engine?sslmode=disable")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 5*time.Minute)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "game_results")
	v.SetDefault("kafka.group_id", "bet-engine")

	v.SetDefault("results.base_url", "https://site.api.espn.com/apis/site/v2/sports")
	v.SetDefault("results.timeout", 30*time.Second)

	v.SetDefault("staking.kelly_multiplier", 0.25)
	v.SetDefault("staking.max_kelly_fraction", 0.10)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Read config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	v.SetEnvPrefix("BET_ENGINE")
	v.AutomaticEnv()
	// Replace . with _ for environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unmarshal to struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// ToStakingParams converts config to staking parameters
func (c *StakingConfig) ToStakingParams() staking.Params {
	return staking.Params{
		KellyMultiplier:  c.KellyMultiplier,
		MaxKellyFraction: c.MaxKellyFraction,
	}
}
