package analysis

import (
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/domain"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/rates"
)

// AttributeRevenue splits each worked day's duration evenly across its
// clients and prices every share at the client's day-rate. Totals are
// accumulated from the same per-client additions, so the global revenue is
// the exact sum of the per-client revenues.
func AttributeRevenue(entries []domain.DayEntry, lookup rates.Lookup, settings Settings) domain.RevenueSummary {
	summary := domain.RevenueSummary{
		PerClient: make(map[string]domain.ClientRevenue),
	}

	for _, entry := range entries {
		if !entry.Worked() {
			continue
		}
		if len(entry.Clients) == 0 {
			// Worked time with no client attached counts as hours but
			// cannot be billed to anyone.
			summary.TotalHours += entry.Duration
			continue
		}

		share := entry.Duration / float64(len(entry.Clients))
		for _, client := range entry.Clients {
			cr := summary.PerClient[client]
			if cr.Rate == 0 {
				cr.Rate = lookup.Rate(client)
			}
			cr.Hours += share
			cr.Revenue += share * cr.Rate
			summary.PerClient[client] = cr

			summary.TotalHours += share
			summary.TotalRevenue += share * cr.Rate
		}
	}

	if summary.TotalHours > 0 {
		summary.AverageRate = summary.TotalRevenue / summary.TotalHours
		summary.TargetRateDelta = summary.AverageRate - settings.TargetDailyRate
	}

	return summary
}
