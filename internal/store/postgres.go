package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/edgeledger/bet-engine-service/internal/models"
)

// ErrAlreadySettled is returned when a settle attempt targets a bet
// that is no longer Pending. The Pending->terminal transition is the
// idempotency guard: a second sweep hitting the same bet gets this
// error instead of double-crediting the bankroll.
var ErrAlreadySettled = errors.New("bet is not pending")

// PostgresStore persists bets, user bankrolls and bankroll history
type PostgresStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewPostgresStore opens a Postgres connection pool
func NewPostgresStore(dsn string, logger zerolog.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresStore{
		db:     db,
		logger: logger.With().Str("component", "postgres_store").Logger(),
	}, nil
}

// CreateBet inserts a new pending bet
func (s *PostgresStore) CreateBet(ctx context.Context, bet *models.BetSelection) error {
	query := `
		INSERT INTO bets (
			id, user_id, home_team, away_team, sport, game_date,
			bet_type, selection, odds, line, bookmaker,
			stake, potential_payout, status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`

	var line sql.NullFloat64
	if bet.Line != nil {
		line = sql.NullFloat64{Float64: *bet.Line, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		bet.ID, bet.UserID, bet.HomeTeam, bet.AwayTeam, bet.Sport, bet.GameDate,
		bet.BetType, bet.Selection, bet.Odds, line, bet.Bookmaker,
		bet.Stake, bet.PotentialPayout, bet.Status, bet.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bet: %w", err)
	}

	s.logger.Debug().
		Str("bet_id", bet.ID.String()).
		Str("bet_type", string(bet.BetType)).
		Str("bookmaker", bet.Bookmaker).
		Msg("created bet")

	return nil
}

// GetBet loads a single bet by ID
func (s *PostgresStore) GetBet(ctx context.Context, betID uuid.UUID) (*models.BetSelection, error) {
	query := selectBetColumns + ` WHERE id = $1`

	bet, err := scanBet(s.db.QueryRowContext(ctx, query, betID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("bet %s not found", betID)
	} else if err != nil {
		return nil, fmt.Errorf("failed to query bet: %w", err)
	}

	return bet, nil
}

// PendingBets returns all pending bets, optionally scoped to one user
func (s *PostgresStore) PendingBets(ctx context.Context, userID *uuid.UUID) ([]models.BetSelection, error) {
	query := selectBetColumns + ` WHERE status = 'Pending'`
	args := []interface{}{}
	if userID != nil {
		query += ` AND user_id = $1`
		args = append(args, *userID)
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending bets: %w", err)
	}
	defer rows.Close()

	var bets []models.BetSelection
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, *bet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending bets: %w", err)
	}

	return bets, nil
}

// SettleBet applies a grading verdict as one transaction: the bet's
// terminal status, the owner's bankroll increment and a bankroll
// history point land together or not at all. Only a Pending bet can be
// settled; anything else returns ErrAlreadySettled.
func (s *PostgresStore) SettleBet(
	ctx context.Context,
	betID uuid.UUID,
	graded models.Graded,
	actualResult string,
	settledAt time.Time,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var userID uuid.UUID
	err = tx.QueryRowContext(ctx, `
		UPDATE bets
		SET status = $2, profit = $3, actual_result = $4, settled_at = $5
		WHERE id = $1 AND status = 'Pending'
		RETURNING user_id
	`, betID, graded.Outcome, graded.Profit, actualResult, settledAt).Scan(&userID)
	if err == sql.ErrNoRows {
		return ErrAlreadySettled
	} else if err != nil {
		return fmt.Errorf("failed to update bet: %w", err)
	}

	var bankroll decimal.Decimal
	err = tx.QueryRowContext(ctx, `
		UPDATE users
		SET current_bankroll = current_bankroll + $2
		WHERE id = $1
		RETURNING current_bankroll
	`, userID, graded.BankrollReturn).Scan(&bankroll)
	if err != nil {
		return fmt.Errorf("failed to update bankroll: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bankroll_history (user_id, bankroll, recorded_at)
		VALUES ($1, $2, $3)
	`, userID, bankroll, settledAt)
	if err != nil {
		return fmt.Errorf("failed to record bankroll history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settlement: %w", err)
	}

	s.logger.Info().
		Str("bet_id", betID.String()).
		Str("outcome", string(graded.Outcome)).
		Str("profit", graded.Profit.String()).
		Str("bankroll_return", graded.BankrollReturn.String()).
		Msg("settled bet")

	return nil
}

// Bankroll returns a user's current bankroll
func (s *PostgresStore) Bankroll(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var bankroll decimal.Decimal
	err := s.db.QueryRowContext(ctx,
		`SELECT current_bankroll FROM users WHERE id = $1`, userID,
	).Scan(&bankroll)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query bankroll: %w", err)
	}
	return bankroll, nil
}

// Ping checks the database connection
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the connection pool
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

const selectBetColumns = `
	SELECT id, user_id, home_team, away_team, sport, game_date,
	       bet_type, selection, odds, line, bookmaker,
	       stake, potential_payout, status, profit, actual_result,
	       created_at, settled_at
	FROM bets`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBet(row rowScanner) (*models.BetSelection, error) {
	var bet models.BetSelection
	var line sql.NullFloat64
	var profit decimal.NullDecimal
	var actualResult sql.NullString
	var settledAt sql.NullTime

	err := row.Scan(
		&bet.ID, &bet.UserID, &bet.HomeTeam, &bet.AwayTeam, &bet.Sport, &bet.GameDate,
		&bet.BetType, &bet.Selection, &bet.Odds, &line, &bet.Bookmaker,
		&bet.Stake, &bet.PotentialPayout, &bet.Status, &profit, &actualResult,
		&bet.CreatedAt, &settledAt,
	)
	if err != nil {
		return nil, err
	}

	if line.Valid {
		bet.Line = &line.Float64
	}
	if profit.Valid {
		bet.Profit = &profit.Decimal
	}
	if actualResult.Valid {
		bet.ActualResult = &actualResult.String
	}
	if settledAt.Valid {
		bet.SettledAt = &settledAt.Time
	}

	return &bet, nil
}
