// Package lineshop scans bookmaker quotes for the best available price
// on the exact side a recommendation asked for: true line shopping, not
// "best number on any line".
package lineshop

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/edgeledger/bet-engine-service/internal/models"
	"github.com/edgeledger/bet-engine-service/pkg/oddsmath"
	"github.com/edgeledger/bet-engine-service/pkg/staking"
	"github.com/edgeledger/bet-engine-service/pkg/teammatch"
)

// Finder locates the most favorable quoted price for a recommendation
type Finder struct {
	sizer  *staking.Sizer
	logger zerolog.Logger
}

// NewFinder creates a new best-price finder
func NewFinder(sizer *staking.Sizer, logger zerolog.Logger) *Finder {
	return &Finder{
		sizer:  sizer,
		logger: logger.With().Str("component", "lineshop").Logger(),
	}
}

// FindBestPrice scans quotes for the highest American price matching
// the recommendation's market and side. A nil result means no quote
// could be safely matched (missing market, unresolvable side, or no
// line passing the acceptability filter); the caller must fall back to
// manual entry rather than guess.
//
// When policy is non-nil and a price is found, a stake recommendation
// for the winning price is attached.
func (f *Finder) FindBestPrice(
	rec models.Recommendation,
	quotes []models.Quote,
	matchup models.Matchup,
	policy *models.BankrollPolicy,
) *models.BestPrice {
	if len(quotes) == 0 {
		return nil
	}

	// The model's line is the minimum acceptable number, recovered from
	// the selection text when not given explicitly.
	aiLine := rec.Line
	if aiLine == nil && (rec.BetType == models.BetTypeSpread || rec.BetType == models.BetTypeTotal) {
		if v, ok := teammatch.ExtractLine(rec.Selection); ok {
			aiLine = &v
		}
	}

	side := teammatch.MatchSide(rec.Selection, matchup.HomeTeam, matchup.AwayTeam, matchup.HomeShort, matchup.AwayShort)
	overUnder := teammatch.DetectOverUnder(rec.Selection)

	var best *models.BestPrice
	bestOdds := math.MinInt

	for _, quote := range quotes {
		candidate := f.candidateFromQuote(quote, rec.BetType, side, overUnder, aiLine, matchup)
		if candidate == nil {
			continue
		}
		// Plain numeric comparison: +150 beats +120 and -105 beats
		// -110. Ties keep the first book encountered.
		if candidate.Odds > bestOdds {
			bestOdds = candidate.Odds
			best = candidate
		}
	}

	if best == nil {
		f.logger.Debug().
			Str("bet_type", string(rec.BetType)).
			Str("selection", rec.Selection).
			Msg("no quote matched the recommendation")
		return nil
	}

	best.ImpliedProbability = oddsmath.ImpliedProbability(best.Odds)

	if policy != nil && policy.CurrentBankroll.IsPositive() {
		stake := f.sizer.Recommend(*policy, rec.Confidence, &best.Odds)
		best.Stake = &stake
	}

	return best
}

// candidateFromQuote extracts the price a single book offers for the
// requested market and side, or nil if the book does not qualify
func (f *Finder) candidateFromQuote(
	quote models.Quote,
	betType models.BetType,
	side teammatch.Side,
	overUnder teammatch.OverUnder,
	aiLine *float64,
	matchup models.Matchup,
) *models.BestPrice {
	switch betType {
	case models.BetTypeMoneyline:
		if quote.Moneyline == nil {
			return nil
		}
		switch side {
		case teammatch.SideHome:
			return &models.BestPrice{
				Bookmaker: quote.Bookmaker,
				BetType:   betType,
				Selection: matchup.HomeTeam,
				Odds:      quote.Moneyline.Home,
			}
		case teammatch.SideAway:
			return &models.BestPrice{
				Bookmaker: quote.Bookmaker,
				BetType:   betType,
				Selection: matchup.AwayTeam,
				Odds:      quote.Moneyline.Away,
			}
		}
		return nil

	case models.BetTypeSpread:
		if quote.Spread == nil {
			return nil
		}
		var point models.PricePoint
		var team string
		switch side {
		case teammatch.SideHome:
			point, team = quote.Spread.Home, matchup.HomeTeam
		case teammatch.SideAway:
			point, team = quote.Spread.Away, matchup.AwayTeam
		default:
			return nil
		}
		if !spreadLineAcceptable(aiLine, point.Point) {
			return nil
		}
		line := point.Point
		return &models.BestPrice{
			Bookmaker: quote.Bookmaker,
			BetType:   betType,
			Selection: fmt.Sprintf("%s %+g", team, line),
			Odds:      point.Price,
			Line:      &line,
		}

	case models.BetTypeTotal:
		if quote.Total == nil {
			return nil
		}
		var point models.PricePoint
		var label string
		switch overUnder {
		case teammatch.PickOver:
			point, label = quote.Total.Over, "Over"
		case teammatch.PickUnder:
			point, label = quote.Total.Under, "Under"
		default:
			return nil
		}
		if !totalLineAcceptable(aiLine, point.Point, overUnder) {
			return nil
		}
		line := point.Point
		return &models.BestPrice{
			Bookmaker: quote.Bookmaker,
			BetType:   betType,
			Selection: fmt.Sprintf("%s %g", label, line),
			Odds:      point.Price,
			Line:      &line,
		}
	}

	return nil
}

// spreadLineAcceptable accepts a book's handicap only when it gives at
// least the cushion the model required. The comparison is the same for
// home and away sides: never take fewer points than the model asked
// for. No model line disables the filter.
func spreadLineAcceptable(aiLine *float64, bookPoint float64) bool {
	if aiLine == nil {
		return true
	}
	return bookPoint >= *aiLine
}

// totalLineAcceptable accepts an over only at a number no higher than
// required, and an under only at a number no lower
func totalLineAcceptable(aiLine *float64, bookPoint float64, pick teammatch.OverUnder) bool {
	if aiLine == nil {
		return true
	}
	if pick == teammatch.PickOver {
		return bookPoint <= *aiLine
	}
	return bookPoint >= *aiLine
}
