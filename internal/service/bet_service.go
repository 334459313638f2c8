package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/edgeledger/bet-engine-service/internal/metrics"
	"github.com/edgeledger/bet-engine-service/internal/models"
	"github.com/edgeledger/bet-engine-service/pkg/lineshop"
	"github.com/edgeledger/bet-engine-service/pkg/oddsmath"
	"github.com/edgeledger/bet-engine-service/pkg/staking"
)

// BetService orchestrates the bet-creation flow: line shopping over
// cached quotes, stake sizing, and persisting confirmed bets.
type BetService struct {
	finder *lineshop.Finder
	sizer  *staking.Sizer
	quotes QuoteSource
	store  BetStore
	logger zerolog.Logger
}

// NewBetService creates a new bet service
func NewBetService(
	finder *lineshop.Finder,
	sizer *staking.Sizer,
	quotes QuoteSource,
	store BetStore,
	logger zerolog.Logger,
) *BetService {
	return &BetService{
		finder: finder,
		sizer:  sizer,
		quotes: quotes,
		store:  store,
		logger: logger.With().Str("component", "bet_service").Logger(),
	}
}

// BestPrice line-shops a recommendation against the cached quotes for
// the matchup. A nil result with nil error means no price could be
// safely matched; the caller falls back to manual entry.
func (s *BetService) BestPrice(
	ctx context.Context,
	rec models.Recommendation,
	matchup models.Matchup,
	policy *models.BankrollPolicy,
) (*models.BestPrice, error) {
	// Boundary normalization: the prediction model sometimes emits
	// aliases like "ml" or "o/u"
	rec.BetType = models.NormalizeBetType(string(rec.BetType))

	quotes, err := s.quotes.GetQuotes(ctx, matchup)
	if err != nil {
		return nil, fmt.Errorf("quotes unavailable for %s @ %s: %w", matchup.AwayTeam, matchup.HomeTeam, err)
	}

	best := s.finder.FindBestPrice(rec, quotes, matchup, policy)
	if best == nil {
		metrics.BestPriceLookups.WithLabelValues("none").Inc()
		s.logger.Info().
			Str("bet_type", string(rec.BetType)).
			Str("selection", rec.Selection).
			Msg("no matching price found")
		return nil, nil
	}

	metrics.BestPriceLookups.WithLabelValues("found").Inc()
	s.logger.Info().
		Str("bookmaker", best.Bookmaker).
		Int("odds", best.Odds).
		Str("selection", best.Selection).
		Msg("found best price")

	return best, nil
}

// RecommendStake sizes a stake for the given policy and confidence
func (s *BetService) RecommendStake(policy models.BankrollPolicy, confidence float64, odds *int) models.StakeRecommendation {
	return s.sizer.Recommend(policy, confidence, odds)
}

// IngestQuotes stores a fresh quote batch for a matchup
func (s *BetService) IngestQuotes(ctx context.Context, matchup models.Matchup, quotes []models.Quote) error {
	if err := s.quotes.SetQuotes(ctx, matchup, quotes); err != nil {
		return fmt.Errorf("failed to cache quotes: %w", err)
	}
	return nil
}

// PlaceBetRequest carries a confirmed bet from the caller
type PlaceBetRequest struct {
	UserID    uuid.UUID       `json:"user_id"`
	Matchup   models.Matchup  `json:"matchup"`
	BetType   models.BetType  `json:"bet_type"`
	Selection string          `json:"selection"`
	Odds      int             `json:"odds"`
	Line      *float64        `json:"line,omitempty"`
	Bookmaker string          `json:"bookmaker"`
	Stake     decimal.Decimal `json:"stake"`
}

// PlaceBet persists a confirmed wager as Pending, with its potential
// payout fixed at placement
func (s *BetService) PlaceBet(ctx context.Context, req PlaceBetRequest) (*models.BetSelection, error) {
	if req.Odds == 0 {
		return nil, fmt.Errorf("invalid odds: 0")
	}
	if !req.Stake.IsPositive() {
		return nil, fmt.Errorf("invalid stake: %s", req.Stake.String())
	}

	bet := &models.BetSelection{
		ID:              uuid.New(),
		UserID:          req.UserID,
		HomeTeam:        req.Matchup.HomeTeam,
		AwayTeam:        req.Matchup.AwayTeam,
		Sport:           req.Matchup.Sport,
		GameDate:        req.Matchup.StartTime,
		BetType:         models.NormalizeBetType(string(req.BetType)),
		Selection:       req.Selection,
		Odds:            req.Odds,
		Line:            req.Line,
		Bookmaker:       req.Bookmaker,
		Stake:           req.Stake,
		PotentialPayout: oddsmath.Payout(req.Stake, req.Odds),
		Status:          models.StatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.store.CreateBet(ctx, bet); err != nil {
		return nil, fmt.Errorf("failed to place bet: %w", err)
	}

	s.logger.Info().
		Str("bet_id", bet.ID.String()).
		Str("bet_type", string(bet.BetType)).
		Str("bookmaker", bet.Bookmaker).
		Str("stake", bet.Stake.String()).
		Msg("placed bet")

	return bet, nil
}
