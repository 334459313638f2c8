package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/edgeledger/bet-engine-service/internal/metrics"
	"github.com/edgeledger/bet-engine-service/internal/models"
	"github.com/edgeledger/bet-engine-service/internal/store"
	"github.com/edgeledger/bet-engine-service/pkg/grading"
	"github.com/edgeledger/bet-engine-service/pkg/teammatch"
)

// gameDateWindow bounds how far a final-score event's timestamp may sit
// from a bet's stored game date and still settle it (late tip-offs
// cross midnight UTC).
const gameDateWindow = 36 * time.Hour

// SettlementService grades pending bets against final scores and
// applies the outcome atomically through the store
type SettlementService struct {
	store   BetStore
	results ResultsProvider
	logger  zerolog.Logger
}

// NewSettlementService creates a new settlement service
func NewSettlementService(betStore BetStore, results ResultsProvider, logger zerolog.Logger) *SettlementService {
	return &SettlementService{
		store:   betStore,
		results: results,
		logger:  logger.With().Str("component", "settlement_service").Logger(),
	}
}

// SettlePending sweeps all pending bets (optionally scoped to one
// user), fetching each game's score from the results provider. Games
// that are missing or not final leave their bets Pending for the next
// sweep; per-bet failures are collected and never abort the sweep.
func (s *SettlementService) SettlePending(ctx context.Context, userID *uuid.UUID) (*models.SweepReport, error) {
	timer := prometheus.NewTimer(metrics.SweepDuration)
	defer timer.ObserveDuration()

	pending, err := s.store.PendingBets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending bets: %w", err)
	}

	s.logger.Info().Int("pending", len(pending)).Msg("starting settlement sweep")

	report := &models.SweepReport{BankrollChange: decimal.Zero}

	for _, bet := range pending {
		result, err := s.results.FetchResult(ctx, bet.Sport, bet.HomeTeam, bet.AwayTeam, bet.GameDate)
		if err != nil {
			metrics.SettlementErrors.Inc()
			report.Errors = append(report.Errors, fmt.Sprintf("bet %s: %v", bet.ID, err))
			s.logger.Warn().Err(err).Str("bet_id", bet.ID.String()).Msg("results lookup failed")
			continue
		}
		if result == nil || !result.IsFinal {
			s.logger.Debug().
				Str("bet_id", bet.ID.String()).
				Str("matchup", fmt.Sprintf("%s @ %s", bet.AwayTeam, bet.HomeTeam)).
				Msg("game not final, bet stays pending")
			continue
		}

		settled, err := s.settleOne(ctx, bet, *result)
		if err != nil {
			metrics.SettlementErrors.Inc()
			report.Errors = append(report.Errors, fmt.Sprintf("bet %s: %v", bet.ID, err))
			continue
		}
		if settled == nil {
			continue // lost the race to another sweep
		}

		report.Settled = append(report.Settled, *settled)
		report.BankrollChange = report.BankrollChange.Add(settled.Profit)
	}

	s.logger.Info().
		Int("settled", len(report.Settled)).
		Int("errors", len(report.Errors)).
		Str("bankroll_change", report.BankrollChange.String()).
		Msg("settlement sweep complete")

	return report, nil
}

// SettleGame settles every pending bet matching a final-score event
// from the results pipeline. Matching is by sport, fuzzy team equality
// on both sides, and game date within the event window.
func (s *SettlementService) SettleGame(ctx context.Context, msg models.KafkaGameResultMessage) (*models.SweepReport, error) {
	report := &models.SweepReport{BankrollChange: decimal.Zero}

	if !msg.Result.IsFinal {
		return report, nil
	}

	pending, err := s.store.PendingBets(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending bets: %w", err)
	}

	for _, bet := range pending {
		if !s.betMatchesGame(bet, msg) {
			continue
		}

		settled, err := s.settleOne(ctx, bet, msg.Result)
		if err != nil {
			metrics.SettlementErrors.Inc()
			report.Errors = append(report.Errors, fmt.Sprintf("bet %s: %v", bet.ID, err))
			continue
		}
		if settled == nil {
			continue
		}

		report.Settled = append(report.Settled, *settled)
		report.BankrollChange = report.BankrollChange.Add(settled.Profit)
	}

	return report, nil
}

// settleOne grades a single bet and applies the verdict atomically.
// Returns (nil, nil) when the bet was already settled by a concurrent
// sweep; the Pending guard in the store makes that a safe no-op.
func (s *SettlementService) settleOne(ctx context.Context, bet models.BetSelection, result models.GameResult) (*models.SettledBet, error) {
	graded := grading.Grade(bet, result)

	// The original product records scores away-first
	actualResult := fmt.Sprintf("%d-%d", result.AwayScore, result.HomeScore)

	err := s.store.SettleBet(ctx, bet.ID, graded, actualResult, time.Now().UTC())
	if errors.Is(err, store.ErrAlreadySettled) {
		s.logger.Warn().Str("bet_id", bet.ID.String()).Msg("bet already settled, skipping")
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	metrics.BetsSettled.WithLabelValues(string(graded.Outcome)).Inc()

	return &models.SettledBet{
		BetID:     bet.ID,
		Outcome:   graded.Outcome,
		Profit:    graded.Profit,
		HomeScore: result.HomeScore,
		AwayScore: result.AwayScore,
	}, nil
}

func (s *SettlementService) betMatchesGame(bet models.BetSelection, msg models.KafkaGameResultMessage) bool {
	if teammatch.Normalize(bet.Sport) != teammatch.Normalize(msg.Sport) {
		return false
	}
	if !teammatch.TeamsEqual(bet.HomeTeam, msg.Result.HomeTeam) {
		return false
	}
	if !teammatch.TeamsEqual(bet.AwayTeam, msg.Result.AwayTeam) {
		return false
	}

	gap := msg.Timestamp.Sub(bet.GameDate)
	if gap < 0 {
		gap = -gap
	}
	return gap <= gameDateWindow
}
