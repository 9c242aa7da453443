package api

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/motorwala/motorwala/internal/catalog"
	"github.com/motorwala/motorwala/internal/config"
	"github.com/motorwala/motorwala/internal/events"
	"github.com/motorwala/motorwala/internal/scoring"
)

type RecommendationsHandler struct {
	table  *catalog.Table
	events events.Client
	cfg    *config.Config
	logger *slog.Logger
}

func NewRecommendationsHandler(t *catalog.Table, ev events.Client, cfg *config.Config, logger *slog.Logger) *RecommendationsHandler {
	return &RecommendationsHandler{table: t, events: ev, cfg: cfg, logger: logger}
}

// RecommendRequest is one ranking call. Budgets are free text in the same
// format the budget parser accepts. Fuel and body each carry a mode: "hard"
// excludes non-matching cars before scoring, "soft" folds the preference
// into the score as a weighted bonus.
type RecommendRequest struct {
	MinBudget string             `json:"min_budget,omitempty"`
	MaxBudget string             `json:"max_budget,omitempty"`
	Fuel      string             `json:"fuel,omitempty"`
	FuelMode  string             `json:"fuel_mode,omitempty"`
	Body      string             `json:"body,omitempty"`
	BodyMode  string             `json:"body_mode,omitempty"`
	Seats     *int               `json:"seats,omitempty"`
	Weights   map[string]float64 `json:"weights,omitempty"`
	TopN      *int               `json:"top_n,omitempty"`
}

type RecommendResponse struct {
	RequestID  string                   `json:"request_id"`
	Total      int                      `json:"total"`
	Candidates int                      `json:"candidates"`
	Shown      int                      `json:"shown"`
	MinBudget  *int64                   `json:"min_budget,omitempty"`
	MaxBudget  *int64                   `json:"max_budget,omitempty"`
	Results    []map[string]interface{} `json:"results"`
}

// Recommend handles POST /api/v1/recommendations.
func (h *RecommendationsHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	var fuel catalog.FuelCategory
	if req.Fuel != "" {
		c, ok := catalog.ParseFuelCategory(req.Fuel)
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown fuel category: " + req.Fuel})
			return
		}
		fuel = c
	}
	fuelMode, ok := parseMode(req.FuelMode)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "fuel_mode must be hard or soft"})
		return
	}
	bodyMode, ok := parseMode(req.BodyMode)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "body_mode must be hard or soft"})
		return
	}

	start := time.Now()

	filter := catalog.HardFilter{}
	var minBudget, maxBudget *int64
	if v, ok := scoring.ParseBudget(req.MinBudget); ok {
		minBudget = &v
		filter.MinPrice = &v
	}
	if v, ok := scoring.ParseBudget(req.MaxBudget); ok {
		maxBudget = &v
		filter.MaxPrice = &v
	}
	filter.Seats = req.Seats
	if fuel != "" && fuelMode == "hard" {
		filter.Fuel = fuel
	}
	if req.Body != "" && bodyMode == "hard" {
		filter.Body = req.Body
	}

	candidates := filter.Apply(h.table)

	rankReq := scoring.Request{
		Weights:   req.Weights,
		TopN:      h.topN(req.TopN),
		MaxBudget: maxBudget,
	}
	if len(rankReq.Weights) == 0 {
		rankReq.Weights = h.cfg.Scoring.Weights.Map()
	}
	if fuel != "" && fuelMode == "soft" {
		rankReq.SoftFuel = fuel
	}
	if req.Body != "" && bodyMode == "soft" {
		rankReq.SoftBody = req.Body
	}

	ranked := scoring.Rank(candidates, rankReq)

	recommendationsTotal.Inc()
	recommendationDuration.Observe(time.Since(start).Seconds())
	recommendationCandidates.Observe(float64(candidates.Len()))

	resp := RecommendResponse{
		RequestID:  uuid.New().String(),
		Total:      h.table.Len(),
		Candidates: candidates.Len(),
		Shown:      ranked.Len(),
		MinBudget:  minBudget,
		MaxBudget:  maxBudget,
		Results:    resultRecords(ranked),
	}

	if h.events != nil {
		ev := events.RecommendationServedEvent{
			RequestID:  resp.RequestID,
			Candidates: resp.Candidates,
			Shown:      resp.Shown,
			Timestamp:  time.Now().UTC(),
		}
		if scores, ok := ranked.Derived(scoring.ColFinalScore); ok && len(scores) > 0 {
			ev.TopScore = scores[0]
		}
		if err := h.events.Publish(events.SubjectRecommendationServed(resp.RequestID), ev); err != nil {
			h.logger.Warn("failed to publish recommendation event", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// ParseBudget handles POST /api/v1/budget/parse. It exists so UIs can echo
// back how ambiguous budget text is being read before a search runs.
func (h *RecommendationsHandler) ParseBudget(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	amount, ok := scoring.ParseBudget(req.Text)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{"recognized": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"recognized": true,
		"amount":     amount,
		"display":    scoring.FormatINR(amount),
	})
}

func (h *RecommendationsHandler) topN(requested *int) int {
	n := h.cfg.Scoring.DefaultTopN
	if requested != nil {
		n = *requested
	}
	if max := h.cfg.Scoring.MaxTopN; max > 0 && n > max {
		n = max
	}
	return n
}

// resultRecords materializes ranked rows for the response, annotating each
// with its rank, mapped fuel category, and a formatted price.
func resultRecords(ranked *catalog.Table) []map[string]interface{} {
	records := ranked.Records()
	prices, hasPrice := ranked.Numeric(catalog.ColPrice)
	for i, rec := range records {
		rec["rank"] = i + 1
		rec["fuel_category"] = catalog.FuelCategoryAt(ranked, i)
		display := "N/A"
		if hasPrice && prices[i] != nil {
			display = scoring.FormatINR(int64(math.Round(*prices[i])))
		}
		rec["price_display"] = display
	}
	return records
}

func parseMode(s string) (string, bool) {
	switch s {
	case "", "hard":
		return "hard", true
	case "soft":
		return "soft", true
	default:
		return "", false
	}
}
