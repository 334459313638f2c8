// Package oddsmath provides pure conversions between American and
// decimal odds and the money math derived from them. Every value that
// can reach a bankroll is a decimal.Decimal; American odds stay plain
// signed integers.
package oddsmath

import (
	"github.com/shopspring/decimal"

	"github.com/edgeledger/bet-engine-service/internal/models"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// AmericanToDecimal converts American odds to decimal (multiplicative)
// odds. +150 -> 2.50, -110 -> 1.9090...; zero odds are degenerate and
// map to 1 (stake back, no profit).
func AmericanToDecimal(odds int) decimal.Decimal {
	if odds == 0 {
		return one
	}
	if odds > 0 {
		return one.Add(decimal.NewFromInt(int64(odds)).Div(hundred))
	}
	return one.Add(hundred.Div(decimal.NewFromInt(int64(-odds))))
}

// ImpliedProbability returns the break-even win probability implied by
// American odds, in [0,1].
func ImpliedProbability(odds int) float64 {
	if odds == 0 {
		return 0
	}
	if odds > 0 {
		return 100.0 / (float64(odds) + 100.0)
	}
	abs := float64(-odds)
	return abs / (abs + 100.0)
}

// Payout is the gross amount returned on a winning bet: stake times
// decimal odds.
func Payout(stake decimal.Decimal, odds int) decimal.Decimal {
	return stake.Mul(AmericanToDecimal(odds))
}

// Profit is the net P/L for a settled bet: zero on a push, the full
// stake lost on a loss, payout minus stake on a win.
func Profit(stake decimal.Decimal, odds int, outcome models.BetStatus) decimal.Decimal {
	switch outcome {
	case models.StatusPush:
		return decimal.Zero
	case models.StatusWon:
		return Payout(stake, odds).Sub(stake)
	default:
		return stake.Neg()
	}
}

// BankrollReturn is the gross amount credited back to the bankroll for
// a settled bet. It differs from Profit by the original stake on a win
// or push: a push refunds the stake, a win refunds stake plus profit,
// a loss credits nothing.
func BankrollReturn(stake decimal.Decimal, odds int, outcome models.BetStatus) decimal.Decimal {
	switch outcome {
	case models.StatusPush:
		return stake
	case models.StatusWon:
		return Payout(stake, odds)
	default:
		return decimal.Zero
	}
}
