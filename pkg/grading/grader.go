// Package grading turns a final score and a placed bet into a
// Won/Lost/Push verdict with the resulting money movement. It is pure:
// persistence and bankroll mutation belong to the settlement service.
package grading

import (
	"github.com/edgeledger/bet-engine-service/internal/models"
	"github.com/edgeledger/bet-engine-service/pkg/oddsmath"
	"github.com/edgeledger/bet-engine-service/pkg/teammatch"
)

// Grade determines the outcome of a bet against a final score and
// derives its net profit and the gross amount to credit back to the
// bankroll. Any bet whose side, direction or required line cannot be
// resolved grades Lost: an unresolvable pick is never credited as a
// win.
func Grade(bet models.BetSelection, result models.GameResult) models.Graded {
	outcome := outcomeFor(bet, result)
	return models.Graded{
		Outcome:        outcome,
		Profit:         oddsmath.Profit(bet.Stake, bet.Odds, outcome),
		BankrollReturn: oddsmath.BankrollReturn(bet.Stake, bet.Odds, outcome),
	}
}

func outcomeFor(bet models.BetSelection, result models.GameResult) models.BetStatus {
	switch bet.BetType {
	case models.BetTypeMoneyline:
		return gradeMoneyline(bet, result)
	case models.BetTypeSpread:
		return gradeSpread(bet, result)
	case models.BetTypeTotal:
		return gradeTotal(bet, result)
	default:
		return models.StatusLost
	}
}

func gradeMoneyline(bet models.BetSelection, result models.GameResult) models.BetStatus {
	if result.HomeScore == result.AwayScore {
		return models.StatusPush
	}

	side := teammatch.MatchSide(bet.Selection, bet.HomeTeam, bet.AwayTeam, "", "")
	switch side {
	case teammatch.SideHome:
		if result.HomeScore > result.AwayScore {
			return models.StatusWon
		}
	case teammatch.SideAway:
		if result.AwayScore > result.HomeScore {
			return models.StatusWon
		}
	default:
		return models.StatusLost
	}
	return models.StatusLost
}

func gradeSpread(bet models.BetSelection, result models.GameResult) models.BetStatus {
	if bet.Line == nil {
		return models.StatusLost
	}
	side := teammatch.MatchSide(bet.Selection, bet.HomeTeam, bet.AwayTeam, "", "")
	if side == teammatch.SideUnknown {
		return models.StatusLost
	}

	scoreDiff := float64(result.HomeScore - result.AwayScore)
	var coverMargin float64
	if side == teammatch.SideHome {
		coverMargin = scoreDiff + *bet.Line
	} else {
		coverMargin = -scoreDiff + *bet.Line
	}

	switch {
	case coverMargin == 0:
		return models.StatusPush
	case coverMargin > 0:
		return models.StatusWon
	default:
		return models.StatusLost
	}
}

func gradeTotal(bet models.BetSelection, result models.GameResult) models.BetStatus {
	if bet.Line == nil {
		return models.StatusLost
	}

	totalScore := float64(result.HomeScore + result.AwayScore)
	if totalScore == *bet.Line {
		return models.StatusPush
	}

	switch teammatch.DetectOverUnder(bet.Selection) {
	case teammatch.PickOver:
		if totalScore > *bet.Line {
			return models.StatusWon
		}
	case teammatch.PickUnder:
		if totalScore < *bet.Line {
			return models.StatusWon
		}
	default:
		return models.StatusLost
	}
	return models.StatusLost
}
