package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edgeledger/bet-engine-service/internal/models"
	"github.com/edgeledger/bet-engine-service/internal/service"
)

// BetsHandler handles HTTP requests for the bet-creation and
// settlement flows
type BetsHandler struct {
	bets       *service.BetService
	settlement *service.SettlementService
	logger     zerolog.Logger
}

// NewBetsHandler creates a new bets HTTP handler
func NewBetsHandler(bets *service.BetService, settlement *service.SettlementService, logger zerolog.Logger) *BetsHandler {
	return &BetsHandler{
		bets:       bets,
		settlement: settlement,
		logger:     logger.With().Str("component", "bets_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *BetsHandler) RegisterRoutes(mux *http.ServeMux) {
	// POST /api/v1/best-price - line-shop a recommendation
	mux.HandleFunc("/api/v1/best-price", h.handleBestPrice)

	// POST /api/v1/stake - size a stake for a policy and confidence
	mux.HandleFunc("/api/v1/stake", h.handleStake)

	// POST /api/v1/quotes - ingest a quote batch for a matchup
	mux.HandleFunc("/api/v1/quotes", h.handleQuotes)

	// POST /api/v1/bets - place a confirmed bet
	mux.HandleFunc("/api/v1/bets", h.handlePlaceBet)

	// POST /api/v1/settle - run a settlement sweep
	mux.HandleFunc("/api/v1/settle", h.handleSettle)
}

// BestPriceRequest is the line-shopping request body
type BestPriceRequest struct {
	Recommendation models.Recommendation  `json:"recommendation"`
	Matchup        models.Matchup         `json:"matchup"`
	Policy         *models.BankrollPolicy `json:"policy,omitempty"`
}

// handleBestPrice handles POST /api/v1/best-price
func (h *BetsHandler) handleBestPrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req BestPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	best, err := h.bets.BestPrice(r.Context(), req.Recommendation, req.Matchup, req.Policy)
	if err != nil {
		h.logger.Error().Err(err).Msg("best-price lookup failed")
		h.errorResponse(w, http.StatusInternalServerError, "best-price lookup failed")
		return
	}
	if best == nil {
		// No safe match; the client falls back to manual entry
		h.errorResponse(w, http.StatusNotFound, "no matching price")
		return
	}

	h.jsonResponse(w, http.StatusOK, best)
}

// StakeRequest is the stake-sizing request body
type StakeRequest struct {
	Policy     models.BankrollPolicy `json:"policy"`
	Confidence float64               `json:"confidence"`
	Odds       *int                  `json:"odds,omitempty"`
}

// handleStake handles POST /api/v1/stake
func (h *BetsHandler) handleStake(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req StakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Confidence < 0 || req.Confidence > 100 {
		h.errorResponse(w, http.StatusBadRequest, "confidence must be in [0,100]")
		return
	}

	h.jsonResponse(w, http.StatusOK, h.bets.RecommendStake(req.Policy, req.Confidence, req.Odds))
}

// QuotesRequest is the quote-ingest request body
type QuotesRequest struct {
	Matchup models.Matchup `json:"matchup"`
	Quotes  []models.Quote `json:"quotes"`
}

// handleQuotes handles POST /api/v1/quotes
func (h *BetsHandler) handleQuotes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req QuotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Matchup.HomeTeam == "" || req.Matchup.AwayTeam == "" {
		h.errorResponse(w, http.StatusBadRequest, "matchup teams are required")
		return
	}

	if err := h.bets.IngestQuotes(r.Context(), req.Matchup, req.Quotes); err != nil {
		h.logger.Error().Err(err).Msg("failed to ingest quotes")
		h.errorResponse(w, http.StatusInternalServerError, "failed to ingest quotes")
		return
	}

	h.jsonResponse(w, http.StatusAccepted, map[string]int{"count": len(req.Quotes)})
}

// handlePlaceBet handles POST /api/v1/bets
func (h *BetsHandler) handlePlaceBet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req service.PlaceBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bet, err := h.bets.PlaceBet(r.Context(), req)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to place bet")
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.jsonResponse(w, http.StatusCreated, bet)
}

// handleSettle handles POST /api/v1/settle?user_id=...
func (h *BetsHandler) handleSettle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var userID *uuid.UUID
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "invalid user_id")
			return
		}
		userID = &id
	}

	report, err := h.settlement.SettlePending(r.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Msg("settlement sweep failed")
		h.errorResponse(w, http.StatusInternalServerError, "settlement sweep failed")
		return
	}

	h.jsonResponse(w, http.StatusOK, report)
}

// jsonResponse writes a JSON response
func (h *BetsHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *BetsHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
