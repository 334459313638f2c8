// Package staking computes recommended stakes from a bankroll policy
// and the prediction model's confidence, under either flat
// confidence-tier sizing or fractional Kelly.
package staking

import (
	"math"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/edgeledger/bet-engine-service/internal/models"
	"github.com/edgeledger/bet-engine-service/pkg/oddsmath"
)

// Params holds the staking knobs
type Params struct {
	KellyMultiplier  float64 // fraction of full Kelly to bet (0.25 = quarter Kelly)
	MaxKellyFraction float64 // hard cap on the bankroll fraction Kelly may suggest
}

// DefaultParams is quarter Kelly capped at 10% of bankroll
var DefaultParams = Params{
	KellyMultiplier:  0.25,
	MaxKellyFraction: 0.10,
}

// Sizer computes stake recommendations
type Sizer struct {
	params Params
	logger zerolog.Logger
}

// NewSizer creates a new stake sizer
func NewSizer(params Params, logger zerolog.Logger) *Sizer {
	return &Sizer{
		params: params,
		logger: logger.With().Str("component", "stake_sizer").Logger(),
	}
}

// Recommend sizes a stake for the given policy and confidence (0-100).
// Kelly sizing is used when the policy asks for it and odds are known;
// otherwise (including degenerate even-money odds where the Kelly
// denominator is zero) it falls back to confidence tiers. The final
// stake is always clamped to [MinStake, MaxStake]; the configured
// bounds override whatever the model suggests.
func (s *Sizer) Recommend(policy models.BankrollPolicy, confidence float64, odds *int) models.StakeRecommendation {
	if policy.UseKelly && odds != nil {
		if rec, ok := s.kelly(policy, confidence, *odds); ok {
			return rec
		}
	}
	return s.confidenceTier(policy, confidence)
}

// kelly computes fractional Kelly sizing. Returns false when the edge
// is degenerate (b <= 0) so the caller can fall back to tiers.
func (s *Sizer) kelly(policy models.BankrollPolicy, confidence float64, odds int) (models.StakeRecommendation, bool) {
	b := oddsmath.AmericanToDecimal(odds).InexactFloat64() - 1
	if b <= 0 {
		s.logger.Debug().Int("odds", odds).Msg("degenerate kelly denominator, using confidence tiers")
		return models.StakeRecommendation{}, false
	}

	p := confidence / 100.0
	q := 1 - p

	fraction := ((b*p - q) / b) * s.params.KellyMultiplier
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return models.StakeRecommendation{}, false
	}

	// Never bet a negative edge, never exceed the bankroll cap
	if fraction < 0 {
		fraction = 0
	}
	if fraction > s.params.MaxKellyFraction {
		fraction = s.params.MaxKellyFraction
	}

	stake := policy.CurrentBankroll.Mul(decimal.NewFromFloat(fraction))

	return models.StakeRecommendation{
		Stake:             clampStake(stake, policy),
		PercentOfBankroll: fraction * 100,
		Method:            models.MethodKelly,
	}, true
}

// confidenceTier maps confidence onto a fixed bankroll fraction
func (s *Sizer) confidenceTier(policy models.BankrollPolicy, confidence float64) models.StakeRecommendation {
	var fraction float64
	switch {
	case confidence >= 90:
		fraction = 0.07
	case confidence >= 80:
		fraction = 0.05
	case confidence >= 70:
		fraction = 0.03
	case confidence >= 60:
		fraction = 0.015
	default:
		fraction = 0.01
	}

	stake := policy.CurrentBankroll.Mul(decimal.NewFromFloat(fraction))

	return models.StakeRecommendation{
		Stake:             clampStake(stake, policy),
		PercentOfBankroll: fraction * 100,
		Method:            models.MethodConfidence,
	}
}

// clampStake applies the hard floor/ceiling from the policy
func clampStake(stake decimal.Decimal, policy models.BankrollPolicy) decimal.Decimal {
	if stake.LessThan(policy.MinStake) {
		return policy.MinStake
	}
	if stake.GreaterThan(policy.MaxStake) {
		return policy.MaxStake
	}
	return stake
}
