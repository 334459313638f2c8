package service

import (
	"context"

	"github.com/edgeledger/bet-engine-service/internal/models"
)

// QuoteSource is an interface that abstracts the per-matchup quote
// cache. This allows for easier testing and mocking
type QuoteSource interface {
	GetQuotes(ctx context.Context, matchup models.Matchup) ([]models.Quote, error)
	SetQuotes(ctx context.Context, matchup models.Matchup, quotes []models.Quote) error
}
