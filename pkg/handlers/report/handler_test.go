package report

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/api"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/domain"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/analysis"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/calendar"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/rates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSource struct{ mock.Mock }

func (m *mockSource) GetEntries(ctx context.Context, from, to time.Time) ([]domain.RawEntry, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawEntry), args.Error(1)
}

func newHandler(source EntrySource) *Handler {
	analyzer := analysis.NewAnalyzer(calendar.France(), analysis.DefaultSettings())
	return NewHandler(source, analyzer, rates.NewStatic(map[string]float64{"Acme": 500}))
}

func weekEntries() []domain.RawEntry {
	var raw []domain.RawEntry
	for d := 3; d <= 7; d++ {
		raw = append(raw, domain.RawEntry{
			Date: time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC),
			Kind: "work", Duration: "1", Client: "Acme",
		})
	}
	return raw
}

func TestGetAnalysis(t *testing.T) {
	source := new(mockSource)
	from := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC)
	source.On("GetEntries", mock.Anything, from, to).Return(weekEntries(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/analysis?from=2024-06-03&to=2024-06-09", nil)
	rec := httptest.NewRecorder()
	newHandler(source).GetAnalysis(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var report api.AnalysisReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.Equal(t, "2024-06-03", report.Summary.Period.Start)
	assert.Equal(t, "2024-06-09", report.Summary.Period.End)
	assert.Equal(t, 7, report.Summary.Period.Days)
	assert.Equal(t, 5.0, report.Summary.Activity.TotalHours)
	assert.Equal(t, 5, report.Summary.Activity.ActiveDays)
	assert.Zero(t, report.Summary.Anomalies.Total)
	assert.Equal(t, 2500.0, report.Revenue.Total)
	assert.Equal(t, 500.0, report.Revenue.AverageRate)
	assert.Equal(t, 100.0, report.Efficiency.OccupancyRate)
	assert.Len(t, report.Days, 7)
	source.AssertExpectations(t)
}

func TestGetAnalysis_WireFieldNames(t *testing.T) {
	source := new(mockSource)
	source.On("GetEntries", mock.Anything, mock.Anything, mock.Anything).Return(weekEntries(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/analysis?from=2024-06-03&to=2024-06-09", nil)
	rec := httptest.NewRecorder()
	newHandler(source).GetAnalysis(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{"summary", "anomalies", "incoherences", "gaps", "statistiques", "donnees_jour"} {
		assert.Contains(t, raw, key)
	}

	var summary map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["summary"], &summary))
	assert.Contains(t, summary, "periode")
	assert.Contains(t, summary, "activite")
	assert.Contains(t, summary, "anomalies")

	var stats map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["statistiques"], &stats))
	assert.Contains(t, stats, "pattern_hebdomadaire")
	assert.Contains(t, stats, "distribution_quotidienne")
}

func TestGetAnalysis_InvalidDates(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"from", "/api/v1/reports/analysis?from=invalid-date", "invalid 'from' date format. Expected format: YYYY-MM-DD\n"},
		{"to", "/api/v1/reports/analysis?to=invalid-date", "invalid 'to' date format. Expected format: YYYY-MM-DD\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()
			newHandler(new(mockSource)).GetAnalysis(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body, _ := io.ReadAll(rec.Body)
			assert.Equal(t, tc.expected, string(body))
		})
	}
}

func TestGetAnalysis_ReversedRange(t *testing.T) {
	source := new(mockSource)
	source.On("GetEntries", mock.Anything, mock.Anything, mock.Anything).Return([]domain.RawEntry{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/analysis?from=2024-06-09&to=2024-06-03", nil)
	rec := httptest.NewRecorder()
	newHandler(source).GetAnalysis(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAnalysis_SourceFailure(t *testing.T) {
	source := new(mockSource)
	source.On("GetEntries", mock.Anything, mock.Anything, mock.Anything).Return(nil, io.ErrUnexpectedEOF)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/analysis?from=2024-06-03&to=2024-06-09", nil)
	rec := httptest.NewRecorder()
	newHandler(source).GetAnalysis(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestListRates(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients/rates", nil)
	rec := httptest.NewRecorder()
	newHandler(new(mockSource)).ListRates(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response []api.ClientRate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, []api.ClientRate{{Client: "Acme", Rate: 500}}, response)
}
