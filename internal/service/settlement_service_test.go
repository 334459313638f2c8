package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/edgeledger/bet-engine-service/internal/mocks"
	"github.com/edgeledger/bet-engine-service/internal/models"
	"github.com/edgeledger/bet-engine-service/internal/store"
)

// testSettlementSetup is a helper struct to hold test dependencies
type testSettlementSetup struct {
	service *SettlementService
	store   *mocks.MockBetStore
	results *mocks.MockResultsProvider
	ctx     context.Context
}

// setupTestSettlementService creates a service with mocked collaborators
func setupTestSettlementService(t *testing.T) *testSettlementSetup {
	ctrl := gomock.NewController(t)

	betStore := mocks.NewMockBetStore(ctrl)
	results := mocks.NewMockResultsProvider(ctrl)

	return &testSettlementSetup{
		service: NewSettlementService(betStore, results, zerolog.Nop()),
		store:   betStore,
		results: results,
		ctx:     context.Background(),
	}
}

func pendingBet(betType models.BetType, selection string, line *float64, odds int, stake int64) models.BetSelection {
	return models.BetSelection{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		HomeTeam:  "Los Angeles Lakers",
		AwayTeam:  "Golden State Warriors",
		Sport:     "nba",
		GameDate:  time.Date(2025, 1, 15, 19, 0, 0, 0, time.UTC),
		BetType:   betType,
		Selection: selection,
		Line:      line,
		Odds:      odds,
		Stake:     decimal.NewFromInt(stake),
		Status:    models.StatusPending,
	}
}

func finalScore(home, away int) *models.GameResult {
	return &models.GameResult{
		HomeTeam:  "Los Angeles Lakers",
		AwayTeam:  "Golden State Warriors",
		HomeScore: home,
		AwayScore: away,
		IsFinal:   true,
	}
}

// TestSettlePending_WonBet tests a full sweep settling a winning bet
func TestSettlePending_WonBet(t *testing.T) {
	setup := setupTestSettlementService(t)

	bet := pendingBet(models.BetTypeMoneyline, "Lakers", nil, 100, 50)

	setup.store.EXPECT().
		PendingBets(gomock.Any(), nil).
		Return([]models.BetSelection{bet}, nil)

	setup.results.EXPECT().
		FetchResult(gomock.Any(), "nba", bet.HomeTeam, bet.AwayTeam, bet.GameDate).
		Return(finalScore(110, 108), nil)

	var gotGraded models.Graded
	var gotResult string
	setup.store.EXPECT().
		SettleBet(gomock.Any(), bet.ID, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, graded models.Graded, actualResult string, _ time.Time) error {
			gotGraded = graded
			gotResult = actualResult
			return nil
		})

	report, err := setup.service.SettlePending(setup.ctx, nil)

	require.NoError(t, err)
	require.Len(t, report.Settled, 1)
	assert.Empty(t, report.Errors)

	assert.Equal(t, models.StatusWon, gotGraded.Outcome)
	// Scores are recorded away-first
	assert.Equal(t, "108-110", gotResult)
	// +100 odds: profit equals the stake
	assert.True(t, gotGraded.Profit.Equal(decimal.NewFromInt(50)))
	assert.True(t, gotGraded.BankrollReturn.Equal(decimal.NewFromInt(100)))
	assert.True(t, report.BankrollChange.Equal(decimal.NewFromInt(50)))
}

// TestSettlePending_GameNotFinal tests that in-progress games leave the
// bet pending with no store write
func TestSettlePending_GameNotFinal(t *testing.T) {
	setup := setupTestSettlementService(t)

	bet := pendingBet(models.BetTypeMoneyline, "Lakers", nil, -110, 50)

	setup.store.EXPECT().
		PendingBets(gomock.Any(), nil).
		Return([]models.BetSelection{bet}, nil)

	inProgress := &models.GameResult{HomeScore: 55, AwayScore: 60, IsFinal: false}
	setup.results.EXPECT().
		FetchResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(inProgress, nil)

	report, err := setup.service.SettlePending(setup.ctx, nil)

	require.NoError(t, err)
	assert.Empty(t, report.Settled)
	assert.Empty(t, report.Errors)
}

// TestSettlePending_NoGameFound tests the nil-result convention
func TestSettlePending_NoGameFound(t *testing.T) {
	setup := setupTestSettlementService(t)

	bet := pendingBet(models.BetTypeMoneyline, "Lakers", nil, -110, 50)

	setup.store.EXPECT().
		PendingBets(gomock.Any(), nil).
		Return([]models.BetSelection{bet}, nil)

	setup.results.EXPECT().
		FetchResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	report, err := setup.service.SettlePending(setup.ctx, nil)

	require.NoError(t, err)
	assert.Empty(t, report.Settled)
	assert.Empty(t, report.Errors)
}

// TestSettlePending_ErrorIsolation tests that one failing bet never
// aborts the sweep
func TestSettlePending_ErrorIsolation(t *testing.T) {
	setup := setupTestSettlementService(t)

	failing := pendingBet(models.BetTypeMoneyline, "Lakers", nil, -110, 50)
	healthy := pendingBet(models.BetTypeMoneyline, "Warriors", nil, 120, 25)

	setup.store.EXPECT().
		PendingBets(gomock.Any(), nil).
		Return([]models.BetSelection{failing, healthy}, nil)

	setup.results.EXPECT().
		FetchResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("provider timeout"))

	setup.results.EXPECT().
		FetchResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(finalScore(100, 102), nil)

	setup.store.EXPECT().
		SettleBet(gomock.Any(), healthy.ID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	report, err := setup.service.SettlePending(setup.ctx, nil)

	require.NoError(t, err)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], failing.ID.String())
	require.Len(t, report.Settled, 1)
	assert.Equal(t, healthy.ID, report.Settled[0].BetID)
}

// TestSettlePending_AlreadySettled tests the idempotent skip when a
// concurrent sweep won the race
func TestSettlePending_AlreadySettled(t *testing.T) {
	setup := setupTestSettlementService(t)

	bet := pendingBet(models.BetTypeMoneyline, "Lakers", nil, -110, 50)

	setup.store.EXPECT().
		PendingBets(gomock.Any(), nil).
		Return([]models.BetSelection{bet}, nil)

	setup.results.EXPECT().
		FetchResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(finalScore(110, 108), nil)

	setup.store.EXPECT().
		SettleBet(gomock.Any(), bet.ID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(store.ErrAlreadySettled)

	report, err := setup.service.SettlePending(setup.ctx, nil)

	require.NoError(t, err)
	assert.Empty(t, report.Settled)
	assert.Empty(t, report.Errors)
	assert.True(t, report.BankrollChange.IsZero())
}

// TestSettlePending_BankrollChangeIsNet tests that the report sums net
// profit across mixed outcomes
func TestSettlePending_BankrollChangeIsNet(t *testing.T) {
	setup := setupTestSettlementService(t)

	won := pendingBet(models.BetTypeMoneyline, "Lakers", nil, 100, 50)
	lost := pendingBet(models.BetTypeMoneyline, "Warriors", nil, -110, 30)

	setup.store.EXPECT().
		PendingBets(gomock.Any(), nil).
		Return([]models.BetSelection{won, lost}, nil)

	setup.results.EXPECT().
		FetchResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(finalScore(110, 108), nil).
		Times(2)

	setup.store.EXPECT().
		SettleBet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	report, err := setup.service.SettlePending(setup.ctx, nil)

	require.NoError(t, err)
	require.Len(t, report.Settled, 2)
	// +50 from the winner, -30 from the loser
	assert.True(t, report.BankrollChange.Equal(decimal.NewFromInt(20)),
		"bankroll change %s", report.BankrollChange)
}

// TestSettlePending_UserScoped passes the user filter through
func TestSettlePending_UserScoped(t *testing.T) {
	setup := setupTestSettlementService(t)

	userID := uuid.New()
	setup.store.EXPECT().
		PendingBets(gomock.Any(), &userID).
		Return(nil, nil)

	report, err := setup.service.SettlePending(setup.ctx, &userID)

	require.NoError(t, err)
	assert.Empty(t, report.Settled)
}

// TestSettlePending_StoreUnavailable tests the load failure
func TestSettlePending_StoreUnavailable(t *testing.T) {
	setup := setupTestSettlementService(t)

	setup.store.EXPECT().
		PendingBets(gomock.Any(), nil).
		Return(nil, errors.New("connection refused"))

	report, err := setup.service.SettlePending(setup.ctx, nil)

	assert.Error(t, err)
	assert.Nil(t, report)
}

// TestSettleGame_MatchesByFuzzyTeams tests event-driven settlement with
// provider spellings that differ from the stored bet
func TestSettleGame_MatchesByFuzzyTeams(t *testing.T) {
	setup := setupTestSettlementService(t)

	bet := pendingBet(models.BetTypeMoneyline, "Lakers", nil, 100, 50)

	msg := models.KafkaGameResultMessage{
		EventID: "evt-1",
		Sport:   "NBA",
		Result: models.GameResult{
			HomeTeam:  "LA Lakers",
			AwayTeam:  "Warriors",
			HomeScore: 110,
			AwayScore: 108,
			IsFinal:   true,
		},
		Timestamp: bet.GameDate.Add(3 * time.Hour),
	}

	setup.store.EXPECT().
		PendingBets(gomock.Any(), nil).
		Return([]models.BetSelection{bet}, nil)

	setup.store.EXPECT().
		SettleBet(gomock.Any(), bet.ID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	report, err := setup.service.SettleGame(setup.ctx, msg)

	require.NoError(t, err)
	require.Len(t, report.Settled, 1)
	assert.Equal(t, models.StatusWon, report.Settled[0].Outcome)
}

// TestSettleGame_SkipsOtherGames tests that unrelated bets are left
// alone
func TestSettleGame_SkipsOtherGames(t *testing.T) {
	setup := setupTestSettlementService(t)

	other := pendingBet(models.BetTypeMoneyline, "Celtics", nil, -110, 50)
	other.HomeTeam = "Boston Celtics"
	other.AwayTeam = "Miami Heat"

	msg := models.KafkaGameResultMessage{
		Sport: "nba",
		Result: models.GameResult{
			HomeTeam:  "Los Angeles Lakers",
			AwayTeam:  "Golden State Warriors",
			HomeScore: 110,
			AwayScore: 108,
			IsFinal:   true,
		},
		Timestamp: other.GameDate,
	}

	setup.store.EXPECT().
		PendingBets(gomock.Any(), nil).
		Return([]models.BetSelection{other}, nil)

	report, err := setup.service.SettleGame(setup.ctx, msg)

	require.NoError(t, err)
	assert.Empty(t, report.Settled)
}

// TestSettleGame_OutsideDateWindow tests that a rematch weeks later
// never settles an old bet
func TestSettleGame_OutsideDateWindow(t *testing.T) {
	setup := setupTestSettlementService(t)

	bet := pendingBet(models.BetTypeMoneyline, "Lakers", nil, 100, 50)

	msg := models.KafkaGameResultMessage{
		Sport:     "nba",
		Result:    *finalScore(110, 108),
		Timestamp: bet.GameDate.Add(14 * 24 * time.Hour),
	}

	setup.store.EXPECT().
		PendingBets(gomock.Any(), nil).
		Return([]models.BetSelection{bet}, nil)

	report, err := setup.service.SettleGame(setup.ctx, msg)

	require.NoError(t, err)
	assert.Empty(t, report.Settled)
}

// TestSettleGame_IgnoresNonFinal tests that partial scores do nothing
func TestSettleGame_IgnoresNonFinal(t *testing.T) {
	setup := setupTestSettlementService(t)

	msg := models.KafkaGameResultMessage{
		Sport: "nba",
		Result: models.GameResult{
			HomeTeam: "Los Angeles Lakers", AwayTeam: "Golden State Warriors",
			HomeScore: 55, AwayScore: 60, IsFinal: false,
		},
	}

	report, err := setup.service.SettleGame(setup.ctx, msg)

	require.NoError(t, err)
	assert.Empty(t, report.Settled)
}
