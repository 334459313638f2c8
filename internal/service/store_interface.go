package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/edgeledger/bet-engine-service/internal/models"
)

// BetStore is an interface that abstracts bet and bankroll persistence
// This allows for easier testing and mocking
type BetStore interface {
	CreateBet(ctx context.Context, bet *models.BetSelection) error
	GetBet(ctx context.Context, betID uuid.UUID) (*models.BetSelection, error)
	PendingBets(ctx context.Context, userID *uuid.UUID) ([]models.BetSelection, error)
	SettleBet(ctx context.Context, betID uuid.UUID, graded models.Graded, actualResult string, settledAt time.Time) error
	Bankroll(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}
