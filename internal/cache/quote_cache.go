package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/edgeledger/bet-engine-service/internal/models"
)

// QuoteCache keeps the latest bookmaker quotes per matchup in Redis.
// Quotes are short-lived market data; entries expire on their own so a
// stale price is never served past the TTL.
type QuoteCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// QuoteCacheConfig holds Redis cache configuration
type QuoteCacheConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // e.g., 5 * time.Minute
}

// cachedQuotes is the stored envelope
type cachedQuotes struct {
	Quotes   []models.Quote `json:"quotes"`
	CachedAt time.Time      `json:"cached_at"`
}

// NewQuoteCache creates a new Redis quote cache
func NewQuoteCache(config QuoteCacheConfig, logger zerolog.Logger) *QuoteCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &QuoteCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "quote_cache").Logger(),
	}
}

// SetQuotes caches the quote list for a matchup
func (c *QuoteCache) SetQuotes(ctx context.Context, matchup models.Matchup, quotes []models.Quote) error {
	key := quoteKey(matchup)

	data, err := json.Marshal(cachedQuotes{Quotes: quotes, CachedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal quotes: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Str("key", key).
		Int("count", len(quotes)).
		Dur("ttl", c.ttl).
		Msg("cached quotes")

	return nil
}

// GetQuotes retrieves cached quotes for a matchup
func (c *QuoteCache) GetQuotes(ctx context.Context, matchup models.Matchup) ([]models.Quote, error) {
	key := quoteKey(matchup)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("quotes not found in cache")
	} else if err != nil {
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}

	var cached cachedQuotes
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quotes: %w", err)
	}

	return cached.Quotes, nil
}

// Ping checks Redis connection
func (c *QuoteCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *QuoteCache) Close() error {
	return c.client.Close()
}

// quoteKey builds the Redis key: quotes:{sport}:{home}:{away}
func quoteKey(matchup models.Matchup) string {
	slug := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	}
	return fmt.Sprintf("quotes:%s:%s:%s", slug(matchup.Sport), slug(matchup.HomeTeam), slug(matchup.AwayTeam))
}
