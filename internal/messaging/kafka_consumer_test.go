package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/edgeledger/bet-engine-service/internal/mocks"
	"github.com/edgeledger/bet-engine-service/internal/models"
)

// testKafkaConsumerSetup is a helper struct to hold test dependencies
type testKafkaConsumerSetup struct {
	mockSettler *mocks.MockGameSettler
	logger      zerolog.Logger
	ctrl        *gomock.Controller
}

// setupTestKafkaConsumer creates a test consumer with mocked dependencies
func setupTestKafkaConsumer(t *testing.T) *testKafkaConsumerSetup {
	ctrl := gomock.NewController(t)

	return &testKafkaConsumerSetup{
		mockSettler: mocks.NewMockGameSettler(ctrl),
		logger:      zerolog.Nop(),
		ctrl:        ctrl,
	}
}

// cleanup cleans up test resources
func (s *testKafkaConsumerSetup) cleanup() {
	s.ctrl.Finish()
}

func testConsumerConfig() KafkaConsumerConfig {
	return KafkaConsumerConfig{
		Brokers: []string{"localhost:9092"},
		Topic:   "game_results",
		GroupID: "test-group",
	}
}

func finalScoreEvent() models.KafkaGameResultMessage {
	return models.KafkaGameResultMessage{
		EventID: "event-123",
		Sport:   "nba",
		Result: models.GameResult{
			HomeTeam:  "Los Angeles Lakers",
			AwayTeam:  "Golden State Warriors",
			HomeScore: 110,
			AwayScore: 108,
			IsFinal:   true,
		},
		Timestamp: time.Now().UTC(),
	}
}

// TestNewKafkaConsumer tests consumer creation
func TestNewKafkaConsumer(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	config := testConsumerConfig()
	consumer := NewKafkaConsumer(config, setup.mockSettler, setup.logger)

	assert.NotNil(t, consumer)
	assert.NotNil(t, consumer.reader)
	assert.NotNil(t, consumer.settler)
	assert.Equal(t, config.Topic, consumer.reader.Config().Topic)
	assert.Equal(t, config.GroupID, consumer.reader.Config().GroupID)

	consumer.Close()
}

// TestProcessMessage_FinalScore tests settling off a final-score event
func TestProcessMessage_FinalScore(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	consumer := NewKafkaConsumer(testConsumerConfig(), setup.mockSettler, setup.logger)
	defer consumer.Close()

	event := finalScoreEvent()
	msgBytes, err := json.Marshal(event)
	require.NoError(t, err)

	setup.mockSettler.EXPECT().
		SettleGame(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.KafkaGameResultMessage) (*models.SweepReport, error) {
			assert.Equal(t, event.EventID, got.EventID)
			assert.Equal(t, event.Result.HomeScore, got.Result.HomeScore)
			return &models.SweepReport{BankrollChange: decimal.NewFromInt(50)}, nil
		})

	err = consumer.processMessage(context.Background(), kafka.Message{Value: msgBytes})

	assert.NoError(t, err)
}

// TestProcessMessage_NonFinalSkipped tests that partial scores never
// reach the settler
func TestProcessMessage_NonFinalSkipped(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	consumer := NewKafkaConsumer(testConsumerConfig(), setup.mockSettler, setup.logger)
	defer consumer.Close()

	event := finalScoreEvent()
	event.Result.IsFinal = false
	msgBytes, err := json.Marshal(event)
	require.NoError(t, err)

	// No SettleGame expectation: the mock fails the test if called

	err = consumer.processMessage(context.Background(), kafka.Message{Value: msgBytes})

	assert.NoError(t, err)
}

// TestProcessMessage_InvalidJSON tests the unmarshal failure
func TestProcessMessage_InvalidJSON(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	consumer := NewKafkaConsumer(testConsumerConfig(), setup.mockSettler, setup.logger)
	defer consumer.Close()

	err := consumer.processMessage(context.Background(), kafka.Message{Value: []byte("not json")})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal")
}

// TestProcessMessage_SettlerFailure tests that settlement errors are
// surfaced so the message is not committed
func TestProcessMessage_SettlerFailure(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	consumer := NewKafkaConsumer(testConsumerConfig(), setup.mockSettler, setup.logger)
	defer consumer.Close()

	msgBytes, err := json.Marshal(finalScoreEvent())
	require.NoError(t, err)

	setup.mockSettler.EXPECT().
		SettleGame(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("store unavailable"))

	err = consumer.processMessage(context.Background(), kafka.Message{Value: msgBytes})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to settle game")
}

// TestGameResultMessage_RoundTrip tests the event wire format
func TestGameResultMessage_RoundTrip(t *testing.T) {
	event := finalScoreEvent()

	msgBytes, err := json.Marshal(event)
	require.NoError(t, err)
	assert.NotEmpty(t, msgBytes)

	var parsed models.KafkaGameResultMessage
	err = json.Unmarshal(msgBytes, &parsed)

	assert.NoError(t, err)
	assert.Equal(t, event.EventID, parsed.EventID)
	assert.Equal(t, event.Sport, parsed.Sport)
	assert.Equal(t, event.Result.HomeTeam, parsed.Result.HomeTeam)
	assert.Equal(t, event.Result.AwayScore, parsed.Result.AwayScore)
	assert.True(t, parsed.Result.IsFinal)
}

// TestKafkaConsumerConfig tests different configurations
func TestKafkaConsumerConfig(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	tests := []struct {
		name   string
		config KafkaConsumerConfig
	}{
		{
			name: "Single broker",
			config: KafkaConsumerConfig{
				Brokers: []string{"localhost:9092"},
				Topic:   "game_results",
				GroupID: "bet-engine",
			},
		},
		{
			name: "Multiple brokers",
			config: KafkaConsumerConfig{
				Brokers: []string{"broker1:9092", "broker2:9092", "broker3:9092"},
				Topic:   "game_results",
				GroupID: "bet-engine",
			},
		},
		{
			name: "Different topic",
			config: KafkaConsumerConfig{
				Brokers: []string{"localhost:9092"},
				Topic:   "game_results_v2",
				GroupID: "bet-engine-staging",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumer := NewKafkaConsumer(tt.config, setup.mockSettler, setup.logger)

			assert.NotNil(t, consumer)
			assert.Equal(t, tt.config.Topic, consumer.reader.Config().Topic)
			assert.Equal(t, tt.config.GroupID, consumer.reader.Config().GroupID)
			assert.Equal(t, tt.config.Brokers, consumer.reader.Config().Brokers)

			consumer.Close()
		})
	}
}

// TestKafkaConsumer_Close tests consumer closing
func TestKafkaConsumer_Close(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	consumer := NewKafkaConsumer(testConsumerConfig(), setup.mockSettler, setup.logger)

	assert.NoError(t, consumer.Close())
}

// TestKafkaConsumer_ContextCancellation tests context cancellation handling
func TestKafkaConsumer_ContextCancellation(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	consumer := NewKafkaConsumer(testConsumerConfig(), setup.mockSettler, setup.logger)
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error)
	go func() {
		done <- consumer.Start(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Consumer did not stop within timeout")
	}
}
