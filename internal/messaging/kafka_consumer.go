package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/edgeledger/bet-engine-service/internal/models"
	"github.com/edgeledger/bet-engine-service/internal/service"
)

// KafkaConsumer consumes final-score events from the results pipeline
// and settles the pending bets on each finished game
type KafkaConsumer struct {
	reader  *kafka.Reader
	settler service.GameSettler
	logger  zerolog.Logger
}

// KafkaConsumerConfig holds Kafka consumer configuration
type KafkaConsumerConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "game_results"
	GroupID string   // e.g., "bet-engine"
}

// NewKafkaConsumer creates a new Kafka consumer
func NewKafkaConsumer(
	config KafkaConsumerConfig,
	settler service.GameSettler,
	logger zerolog.Logger,
) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.GroupID,
		MinBytes:       1e3,  // 1KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: 1000, // Commit every 1 second
	})

	return &KafkaConsumer{
		reader:  reader,
		settler: settler,
		logger:  logger.With().Str("component", "kafka_consumer").Logger(),
	}
}

// Start begins consuming messages from Kafka
func (c *KafkaConsumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("topic", c.reader.Config().Topic).
		Str("group_id", c.reader.Config().GroupID).
		Msg("started consuming from Kafka")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("stopping Kafka consumer")
			return c.reader.Close()

		default:
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if err == context.Canceled {
					return nil
				}
				c.logger.Error().Err(err).Msg("failed to fetch message")
				continue
			}

			if err := c.processMessage(ctx, msg); err != nil {
				c.logger.Error().
					Err(err).
					Int64("offset", msg.Offset).
					Str("key", string(msg.Key)).
					Msg("failed to process message")
				// Don't commit if processing failed
				continue
			}

			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error().Err(err).Msg("failed to commit message")
			}
		}
	}
}

// processMessage settles bets for a single final-score event
func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message) error {
	var event models.KafkaGameResultMessage
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	if !event.Result.IsFinal {
		c.logger.Debug().
			Str("event_id", event.EventID).
			Str("matchup", fmt.Sprintf("%s @ %s", event.Result.AwayTeam, event.Result.HomeTeam)).
			Msg("skipping non-final score event")
		return nil
	}

	report, err := c.settler.SettleGame(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to settle game: %w", err)
	}

	c.logger.Info().
		Str("event_id", event.EventID).
		Int("settled", len(report.Settled)).
		Int("errors", len(report.Errors)).
		Str("bankroll_change", report.BankrollChange.String()).
		Msg("processed final-score event")

	return nil
}

// Close closes the Kafka reader
func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
