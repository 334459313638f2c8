package service

import (
	"context"
	"time"

	"github.com/edgeledger/bet-engine-service/internal/models"
)

// ResultsProvider is an interface that abstracts final-score lookups
// This allows for easier testing and mocking
type ResultsProvider interface {
	// FetchResult returns (nil, nil) when the provider has no game for
	// the given teams and date yet
	FetchResult(ctx context.Context, sport, homeTeam, awayTeam string, gameDate time.Time) (*models.GameResult, error)
}
