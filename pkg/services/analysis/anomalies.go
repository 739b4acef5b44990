package analysis

import (
	"fmt"

	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/domain"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/calendar"
)

// DetectAnomalies classifies suspicious days. Rules are evaluated
// independently: a day may carry zero or several anomalies. Threshold rules
// compare against fixed settings; statistical rules compare worked
// durations against the period baseline. A rule that matches nothing simply
// contributes no records.
func DetectAnomalies(
	entries []domain.DayEntry,
	dist domain.Distribution,
	cal calendar.Calendar,
	settings Settings,
) []domain.Anomaly {
	var anomalies []domain.Anomaly

	for _, entry := range entries {
		if entry.Duration < 0 {
			anomalies = append(anomalies, domain.Anomaly{
				Type:     domain.AnomalyNegativeHours,
				Severity: domain.SeverityError,
				Date:     entry.Date,
				Message:  fmt.Sprintf("Durée négative enregistrée: %.2f jour(s)", entry.Duration),
				Threshold: &domain.ThresholdEvidence{
					Observed:  entry.Duration,
					Threshold: 0,
				},
			})
		}

		if entry.Duration > settings.MaxDailyDuration {
			anomalies = append(anomalies, domain.Anomaly{
				Type:     domain.AnomalyImpossibleHours,
				Severity: domain.SeverityError,
				Date:     entry.Date,
				Message: fmt.Sprintf("Durée impossible: %.2f jour(s) pour une seule journée (maximum %.2f)",
					entry.Duration, settings.MaxDailyDuration),
				Threshold: &domain.ThresholdEvidence{
					Observed:  entry.Duration,
					Threshold: settings.MaxDailyDuration,
				},
			})
		}

		if entry.Kind == domain.KindEmpty && calendar.IsWorkable(cal, entry.Date) {
			anomalies = append(anomalies, domain.Anomaly{
				Type:     domain.AnomalyEmptyDay,
				Severity: domain.SeverityWarning,
				Date:     entry.Date,
				Message:  "Jour ouvré sans aucune activité enregistrée",
				Threshold: &domain.ThresholdEvidence{
					Observed:  0,
					Threshold: 0,
				},
			})
		}

		if !entry.Worked() {
			continue
		}

		if entry.Duration < dist.Low {
			anomalies = append(anomalies, domain.Anomaly{
				Type:     domain.AnomalyUnderActivity,
				Severity: domain.SeverityInfo,
				Date:     entry.Date,
				Message: fmt.Sprintf("Activité inhabituellement basse: %.2f jour(s) (moyenne %.2f)",
					entry.Duration, dist.Mean),
				Baseline: &domain.BaselineEvidence{
					Observed: entry.Duration,
					Mean:     dist.Mean,
					StdDev:   dist.StdDev,
					Bound:    dist.Low,
				},
			})
		}

		if entry.Duration > dist.High {
			anomalies = append(anomalies, domain.Anomaly{
				Type:     domain.AnomalyOverActivity,
				Severity: domain.SeverityWarning,
				Date:     entry.Date,
				Message: fmt.Sprintf("Activité inhabituellement haute: %.2f jour(s) (moyenne %.2f)",
					entry.Duration, dist.Mean),
				Baseline: &domain.BaselineEvidence{
					Observed: entry.Duration,
					Mean:     dist.Mean,
					StdDev:   dist.StdDev,
					Bound:    dist.High,
				},
			})
		}
	}

	return anomalies
}

// CountBySeverity tallies anomalies for the report summary.
func CountBySeverity(anomalies []domain.Anomaly) domain.AnomalyCounts {
	counts := domain.AnomalyCounts{Total: len(anomalies)}
	for _, a := range anomalies {
		switch a.Severity {
		case domain.SeverityError:
			counts.Errors++
		case domain.SeverityWarning:
			counts.Warnings++
		case domain.SeverityInfo:
			counts.Infos++
		}
	}
	return counts
}
