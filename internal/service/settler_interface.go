package service

import (
	"context"

	"github.com/edgeledger/bet-engine-service/internal/models"
)

// GameSettler is an interface that abstracts settling bets for a
// finished game. This allows for easier testing and mocking
type GameSettler interface {
	SettleGame(ctx context.Context, msg models.KafkaGameResultMessage) (*models.SweepReport, error)
}
