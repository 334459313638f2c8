// Package results fetches final scores from the ESPN scoreboard API
// and reconciles provider team spellings with stored matchups.
package results

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/edgeledger/bet-engine-service/internal/models"
	"github.com/edgeledger/bet-engine-service/pkg/teammatch"
)

// Client is an ESPN scoreboard results client
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// ClientConfig holds results client configuration
type ClientConfig struct {
	BaseURL string        // e.g., "https://site.api.espn.com/apis/site/v2/sports"
	Timeout time.Duration // per-request timeout
}

// NewClient creates a new results client
func NewClient(config ClientConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    config.BaseURL,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     logger.With().Str("component", "results_client").Logger(),
	}
}

// sportPath maps a sport key onto the ESPN scoreboard path
var sportPath = map[string]string{
	"nfl":   "football/nfl",
	"nba":   "basketball/nba",
	"mlb":   "baseball/mlb",
	"nhl":   "hockey/nhl",
	"ncaaf": "football/college-football",
	"ncaab": "basketball/mens-college-basketball",
}

// scoreboardResponse mirrors the subset of the scoreboard payload we read
type scoreboardResponse struct {
	Events []struct {
		Status struct {
			Type struct {
				Name string `json:"name"`
			} `json:"type"`
		} `json:"status"`
		Competitions []struct {
			Competitors []struct {
				HomeAway string `json:"homeAway"`
				Score    string `json:"score"`
				Team     struct {
					DisplayName string `json:"displayName"`
					Name        string `json:"name"`
				} `json:"team"`
			} `json:"competitors"`
		} `json:"competitions"`
	} `json:"events"`
}

// FetchResult looks up the game for the given teams on the given date.
// Returns (nil, nil) when the provider has no matching game yet; a
// non-final game comes back with IsFinal=false and zero scores so the
// caller leaves the bet pending.
func (c *Client) FetchResult(ctx context.Context, sport, homeTeam, awayTeam string, gameDate time.Time) (*models.GameResult, error) {
	path, ok := sportPath[teammatch.Normalize(sport)]
	if !ok {
		return nil, fmt.Errorf("unsupported sport: %s", sport)
	}

	url := fmt.Sprintf("%s/%s/scoreboard?dates=%s", c.baseURL, path, gameDate.UTC().Format("20060102"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scoreboard: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scoreboard returned %d", resp.StatusCode)
	}

	var scoreboard scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&scoreboard); err != nil {
		return nil, fmt.Errorf("failed to decode scoreboard: %w", err)
	}

	for _, event := range scoreboard.Events {
		if len(event.Competitions) == 0 {
			continue
		}

		var home, away *struct {
			name  string
			score string
		}
		for _, comp := range event.Competitions[0].Competitors {
			name := comp.Team.DisplayName
			if name == "" {
				name = comp.Team.Name
			}
			entry := &struct {
				name  string
				score string
			}{name: name, score: comp.Score}
			switch comp.HomeAway {
			case "home":
				home = entry
			case "away":
				away = entry
			}
		}
		if home == nil || away == nil {
			continue
		}

		if !teammatch.TeamsEqual(homeTeam, home.name) || !teammatch.TeamsEqual(awayTeam, away.name) {
			continue
		}

		statusName := event.Status.Type.Name
		if statusName != "STATUS_FINAL" && statusName != "STATUS_FULL_TIME" {
			c.logger.Debug().
				Str("home", home.name).
				Str("away", away.name).
				Str("status", statusName).
				Msg("game not final")
			return &models.GameResult{
				HomeTeam: home.name,
				AwayTeam: away.name,
				IsFinal:  false,
			}, nil
		}

		homeScore, _ := strconv.Atoi(home.score)
		awayScore, _ := strconv.Atoi(away.score)

		return &models.GameResult{
			HomeTeam:  home.name,
			AwayTeam:  away.name,
			HomeScore: homeScore,
			AwayScore: awayScore,
			IsFinal:   true,
		}, nil
	}

	return nil, nil
}
