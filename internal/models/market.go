package models

import "time"

// Matchup is a scheduled contest between two teams. Immutable; supplied
// by the odds provider.
type Matchup struct {
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	HomeShort string    `json:"home_short,omitempty"`
	AwayShort string    `json:"away_short,omitempty"`
	Sport     string    `json:"sport"`
	StartTime time.Time `json:"start_time"`
}

// PricePoint pairs a handicap/total point with its American price
type PricePoint struct {
	Point float64 `json:"point"`
	Price int     `json:"price"`
}

// MoneylineMarket holds both sides' American prices
type MoneylineMarket struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// SpreadMarket holds both sides' points and prices
type SpreadMarket struct {
	Home PricePoint `json:"home"`
	Away PricePoint `json:"away"`
}

// TotalMarket holds the over and under points and prices
type TotalMarket struct {
	Over  PricePoint `json:"over"`
	Under PricePoint `json:"under"`
}

// Quote is one bookmaker's current prices for a matchup. Any of the
// three markets may be absent; nil means the book is not quoting it.
type Quote struct {
	Bookmaker string           `json:"bookmaker"`
	Moneyline *MoneylineMarket `json:"moneyline,omitempty"`
	Spread    *SpreadMarket    `json:"spread,omitempty"`
	Total     *TotalMarket     `json:"total,omitempty"`
}

// BestPrice is the line-shopping result: the single most favorable
// price found across all quotes for the recommended side.
type BestPrice struct {
	Bookmaker          string               `json:"bookmaker"`
	BetType            BetType              `json:"bet_type"`
	Selection          string               `json:"selection"`
	Odds               int                  `json:"odds"`
	Line               *float64             `json:"line,omitempty"`
	ImpliedProbability float64              `json:"implied_probability"`
	Stake              *StakeRecommendation `json:"stake,omitempty"`
}

// KafkaQuotesMessage is the quote batch published by the odds provider
type KafkaQuotesMessage struct {
	Matchup   Matchup   `json:"matchup"`
	Quotes    []Quote   `json:"quotes"`
	Timestamp time.Time `json:"timestamp"`
	BatchID   string    `json:"batch_id"`
}
