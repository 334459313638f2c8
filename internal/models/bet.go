package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BetType identifies the market a bet is placed on
type BetType string

const (
	BetTypeMoneyline BetType = "moneyline"
	BetTypeSpread    BetType = "spread"
	BetTypeTotal     BetType = "total"
)

// NormalizeBetType maps free-form bet type strings (including the
// abbreviations the prediction model emits) onto the three supported
// markets. Anything unrecognized becomes a moneyline.
func NormalizeBetType(raw string) BetType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "moneyline", "ml", "h2h":
		return BetTypeMoneyline
	case "spread", "spr", "spreads":
		return BetTypeSpread
	case "total", "totals", "o/u", "over/under":
		return BetTypeTotal
	default:
		return BetTypeMoneyline
	}
}

// BetStatus is the lifecycle state of a placed bet.
// Pending is the only non-terminal state; grading produces one of the
// other three and a settled bet never transitions again.
type BetStatus string

const (
	StatusPending BetStatus = "Pending"
	StatusWon     BetStatus = "Won"
	StatusLost    BetStatus = "Lost"
	StatusPush    BetStatus = "Push"
)

// Terminal reports whether the status is a settled outcome
func (s BetStatus) Terminal() bool {
	return s == StatusWon || s == StatusLost || s == StatusPush
}

// Recommendation is the prediction model's suggested wager
type Recommendation struct {
	BetType    BetType  `json:"bet_type"`
	Selection  string   `json:"selection"`
	Line       *float64 `json:"line,omitempty"`
	Confidence float64  `json:"confidence"` // 0-100
	Reasoning  string   `json:"reasoning"`
}

// BankrollPolicy is the user's sizing configuration, passed in
// explicitly by the caller for every sizing request
type BankrollPolicy struct {
	CurrentBankroll decimal.Decimal `json:"current_bankroll"`
	MinStake        decimal.Decimal `json:"min_stake"`
	MaxStake        decimal.Decimal `json:"max_stake"`
	UseKelly        bool            `json:"use_kelly"`
}

// SizingMethod names the staking policy that produced a recommendation
type SizingMethod string

const (
	MethodConfidence SizingMethod = "confidence"
	MethodKelly      SizingMethod = "kelly"
)

// StakeRecommendation is the stake sizer's output
type StakeRecommendation struct {
	Stake             decimal.Decimal `json:"stake"`
	PercentOfBankroll float64         `json:"percent_of_bankroll"`
	Method            SizingMethod    `json:"method"`
}

// BetSelection is a placed wager. Status, Profit, ActualResult and
// SettledAt are written exactly once, by settlement; everything else is
// fixed at placement.
type BetSelection struct {
	ID              uuid.UUID        `json:"id"`
	UserID          uuid.UUID        `json:"user_id"`
	HomeTeam        string           `json:"home_team"`
	AwayTeam        string           `json:"away_team"`
	Sport           string           `json:"sport"`
	GameDate        time.Time        `json:"game_date"`
	BetType         BetType          `json:"bet_type"`
	Selection       string           `json:"selection"`
	Odds            int              `json:"odds"` // American, fixed at placement
	Line            *float64         `json:"line,omitempty"`
	Bookmaker       string           `json:"bookmaker"`
	Stake           decimal.Decimal  `json:"stake"`
	PotentialPayout decimal.Decimal  `json:"potential_payout"`
	Status          BetStatus        `json:"status"`
	Profit          *decimal.Decimal `json:"profit,omitempty"`
	ActualResult    *string          `json:"actual_result,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	SettledAt       *time.Time       `json:"settled_at,omitempty"`
}

// GameResult is a final (or in-progress) score from the results provider
type GameResult struct {
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	IsFinal   bool   `json:"is_final"`
}

// Graded is the pure grading verdict for one bet against one final score
type Graded struct {
	Outcome        BetStatus       `json:"outcome"`
	Profit         decimal.Decimal `json:"profit"`
	BankrollReturn decimal.Decimal `json:"bankroll_return"`
}

// SettledBet summarizes one bet settled during a sweep
type SettledBet struct {
	BetID     uuid.UUID       `json:"bet_id"`
	Outcome   BetStatus       `json:"outcome"`
	Profit    decimal.Decimal `json:"profit"`
	HomeScore int             `json:"home_score"`
	AwayScore int             `json:"away_score"`
}

// SweepReport aggregates a batch settlement run. Per-bet failures are
// collected in Errors; they never abort the sweep.
type SweepReport struct {
	Settled        []SettledBet    `json:"settled"`
	Errors         []string        `json:"errors"`
	BankrollChange decimal.Decimal `json:"bankroll_change"`
}

// KafkaGameResultMessage is the final-score event published by the
// results pipeline
type KafkaGameResultMessage struct {
	EventID   string     `json:"event_id"`
	Sport     string     `json:"sport"`
	Result    GameResult `json:"result"`
	Timestamp time.Time  `json:"timestamp"`
}
