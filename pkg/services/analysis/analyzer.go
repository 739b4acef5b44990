package analysis

import (
	"time"

	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/domain"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/calendar"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/rates"
)

// Analyzer runs the full analysis pipeline over a period of raw entries.
// It holds no mutable state: every Analyze call owns its working set, so
// concurrent calls are independent.
type Analyzer struct {
	cal      calendar.Calendar
	settings Settings
}

func NewAnalyzer(cal calendar.Calendar, settings Settings) *Analyzer {
	return &Analyzer{cal: cal, settings: settings}
}

// Analyze normalizes the raw entries over [from, to], runs every detector
// and aggregator, and assembles the immutable result. The rate lookup is a
// read-only capability owned by the caller. Identical inputs always yield
// an identical result.
func (a *Analyzer) Analyze(
	raw []domain.RawEntry,
	from, to time.Time,
	clientFilter []string,
	lookup rates.Lookup,
) (*domain.AnalysisResult, error) {
	entries, err := Normalize(raw, from, to, clientFilter)
	if err != nil {
		return nil, err
	}

	dist := ComputeDistribution(entries, a.settings.StdDevFactor)
	anomalies := DetectAnomalies(entries, dist, a.cal, a.settings)
	revenue := AttributeRevenue(entries, lookup, a.settings)
	efficiency := ComputeEfficiency(entries, a.cal)

	activeDays, emptyDays := 0, 0
	for _, entry := range entries {
		if entry.Worked() {
			activeDays++
		}
		if entry.Kind == domain.KindEmpty && calendar.IsWorkable(a.cal, entry.Date) {
			emptyDays++
		}
	}

	return &domain.AnalysisResult{
		Period: domain.Period{
			Start: entries[0].Date,
			End:   entries[len(entries)-1].Date,
			Days:  len(entries),
		},
		Activity: domain.ActivitySummary{
			ActiveDays:     activeDays,
			EmptyDays:      emptyDays,
			MeanDailyHours: dist.Mean,
			StdDev:         dist.StdDev,
			TotalHours:     revenue.TotalHours,
		},
		AnomalyCounts:   CountBySeverity(anomalies),
		Anomalies:       anomalies,
		Incoherences:    DetectIncoherences(entries, a.settings),
		Gaps:            DetectGaps(entries, a.cal),
		WeeklyPattern:   WeeklyPattern(entries),
		Distribution:    dist,
		Revenue:         revenue,
		Efficiency:      efficiency,
		Diversification: ComputeDiversification(entries, a.settings),
		Entries:         entries,
	}, nil
}
