package adapters

import (
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/api"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/domain"
)

const dateLayout = "2006-01-02"

func MapAnalysisResultToApi(result *domain.AnalysisResult) api.AnalysisReport {
	report := api.AnalysisReport{
		Summary: api.Summary{
			Period: api.Period{
				Start: result.Period.Start.Format(dateLayout),
				End:   result.Period.End.Format(dateLayout),
				Days:  result.Period.Days,
			},
			Activity: api.Activity{
				ActiveDays:     result.Activity.ActiveDays,
				EmptyDays:      result.Activity.EmptyDays,
				MeanDailyHours: result.Activity.MeanDailyHours,
				StdDev:         result.Activity.StdDev,
				TotalHours:     result.Activity.TotalHours,
			},
			Anomalies: api.AnomalyCounts{
				Total: result.AnomalyCounts.Total,
				BySeverity: api.SeverityCount{
					Error:   result.AnomalyCounts.Errors,
					Warning: result.AnomalyCounts.Warnings,
					Info:    result.AnomalyCounts.Infos,
				},
			},
		},
		Anomalies:    []api.Anomaly{},
		Incoherences: []api.Incoherence{},
		Gaps:         []api.Gap{},
		Statistics: api.Statistics{
			WeeklyPattern: map[string]api.WeekdayStats{},
			Daily: api.DailyDistribution{
				Mean:   result.Distribution.Mean,
				StdDev: result.Distribution.StdDev,
				Bounds: api.Bounds{
					Low:  result.Distribution.Low,
					High: result.Distribution.High,
				},
			},
		},
		Revenue:         MapRevenueToApi(result.Revenue),
		Efficiency:      MapEfficiencyToApi(result.Efficiency),
		Diversification: MapDiversificationToApi(result.Diversification),
		Days:            map[string]api.DayEntry{},
	}

	for _, a := range result.Anomalies {
		report.Anomalies = append(report.Anomalies, MapAnomalyToApi(a))
	}
	for _, inc := range result.Incoherences {
		report.Incoherences = append(report.Incoherences, api.Incoherence{
			Type:    string(inc.Type),
			Date:    inc.Date.Format(dateLayout),
			Client:  inc.Client,
			Message: inc.Message,
			Details: inc.Detail,
		})
	}
	for _, g := range result.Gaps {
		report.Gaps = append(report.Gaps, api.Gap{
			Start:        g.Start.Format(dateLayout),
			End:          g.End.Format(dateLayout),
			DurationDays: g.DurationDays,
			Message:      g.Message,
		})
	}
	for name, stats := range result.WeeklyPattern {
		report.Statistics.WeeklyPattern[name] = api.WeekdayStats{
			Mean:  stats.Mean,
			Min:   stats.Min,
			Max:   stats.Max,
			Count: stats.Count,
		}
	}
	for _, entry := range result.Entries {
		report.Days[entry.Date.Format(dateLayout)] = api.DayEntry{
			Kind:        string(entry.Kind),
			Duration:    entry.Duration,
			Description: entry.Description,
			Clients:     entry.Clients,
		}
	}

	return report
}

func MapAnomalyToApi(a domain.Anomaly) api.Anomaly {
	out := api.Anomaly{
		Type:     string(a.Type),
		Severity: string(a.Severity),
		Date:     a.Date.Format(dateLayout),
		Message:  a.Message,
	}
	switch {
	case a.Threshold != nil:
		out.Details = api.AnomalyDetails{
			Observed:  a.Threshold.Observed,
			Threshold: ptr(a.Threshold.Threshold),
		}
	case a.Baseline != nil:
		out.Details = api.AnomalyDetails{
			Observed: a.Baseline.Observed,
			Mean:     ptr(a.Baseline.Mean),
			StdDev:   ptr(a.Baseline.StdDev),
			Bound:    ptr(a.Baseline.Bound),
		}
	}
	return out
}

func MapRevenueToApi(rev domain.RevenueSummary) api.Revenue {
	out := api.Revenue{
		TotalHours:      rev.TotalHours,
		Total:           rev.TotalRevenue,
		AverageRate:     rev.AverageRate,
		TargetRateDelta: rev.TargetRateDelta,
		PerClient:       map[string]api.ClientRevenue{},
	}
	for client, cr := range rev.PerClient {
		out.PerClient[client] = api.ClientRevenue{
			Hours:   cr.Hours,
			Revenue: cr.Revenue,
			Rate:    cr.Rate,
		}
	}
	return out
}

func MapEfficiencyToApi(eff domain.Efficiency) api.Efficiency {
	return api.Efficiency{
		WorkableDays:   eff.WorkableDays,
		ProductiveDays: eff.ProductiveDays,
		OccupancyRate:  eff.OccupancyRate,
		EfficiencyRate: eff.EfficiencyRate,
	}
}

func MapDiversificationToApi(div domain.Diversification) api.Diversification {
	out := api.Diversification{
		Index:  div.Index,
		Level:  div.Level,
		Shares: map[string]float64{},
	}
	for client, share := range div.Shares {
		out.Shares[client] = share
	}
	return out
}

func ptr(v float64) *float64 { return &v }
