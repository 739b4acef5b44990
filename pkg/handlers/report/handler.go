package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cesar-richard-ei/weekly-ingestor/pkg/adapters"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/api"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/domain"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/analysis"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/rates"
	"github.com/rs/zerolog"
)

const (
	dateLayout      = "2006-01-02"
	defaultInterval = 7 // days
)

// EntrySource supplies raw per-day records for a period. The engine never
// fetches entries itself.
type EntrySource interface {
	GetEntries(ctx context.Context, from, to time.Time) ([]domain.RawEntry, error)
}

type Handler struct {
	source   EntrySource
	analyzer *analysis.Analyzer
	rates    rates.Lookup
}

func NewHandler(source EntrySource, analyzer *analysis.Analyzer, lookup rates.Lookup) *Handler {
	return &Handler{
		source:   source,
		analyzer: analyzer,
		rates:    lookup,
	}
}

// GetAnalysis runs the full analysis over the requested period.
// Query params: from, to (YYYY-MM-DD, default last 7 days), clients
// (comma-separated filter).
func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	to := time.Now().UTC().Truncate(24 * time.Hour)
	from := to.AddDate(0, 0, -defaultInterval)

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			http.Error(w, "invalid 'from' date format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			http.Error(w, "invalid 'to' date format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		to = parsed
	}

	var clientFilter []string
	if raw := r.URL.Query().Get("clients"); raw != "" {
		clientFilter = strings.Split(raw, ",")
	}

	entries, err := h.source.GetEntries(ctx, from, to)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch entries")
		http.Error(w, "failed to fetch entries", http.StatusBadGateway)
		return
	}

	result, err := h.analyzer.Analyze(entries, from, to, clientFilter, h.rates)
	if err != nil {
		if errors.Is(err, analysis.ErrInvalidRange) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Error().Err(err).Msg("analysis failed")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapAnalysisResultToApi(result)); err != nil {
		logger.Error().Err(err).Msg("failed to encode analysis report")
	}
}

// ListRates exposes the configured client day-rates.
func (h *Handler) ListRates(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	response := []api.ClientRate{}
	for _, client := range h.rates.Clients() {
		response = append(response, api.ClientRate{Client: client, Rate: h.rates.Rate(client)})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode client rates")
	}
}
