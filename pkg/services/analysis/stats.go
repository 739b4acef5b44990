package analysis

import (
	"math"
	"time"

	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/domain"
)

// French weekday names, used as keys of the weekly pattern.
var weekdayNames = map[time.Weekday]string{
	time.Monday:    "lundi",
	time.Tuesday:   "mardi",
	time.Wednesday: "mercredi",
	time.Thursday:  "jeudi",
	time.Friday:    "vendredi",
	time.Saturday:  "samedi",
	time.Sunday:    "dimanche",
}

// WeeklyPattern aggregates worked durations per weekday. Weekdays with no
// observation are absent from the map, not zero-filled.
func WeeklyPattern(entries []domain.DayEntry) map[string]domain.WeekdayStats {
	sums := make(map[string]float64)
	pattern := make(map[string]domain.WeekdayStats)

	for _, entry := range entries {
		if !entry.Worked() {
			continue
		}
		name := weekdayNames[entry.Date.Weekday()]
		stats, seen := pattern[name]
		if !seen {
			stats = domain.WeekdayStats{Min: entry.Duration, Max: entry.Duration}
		}
		stats.Min = math.Min(stats.Min, entry.Duration)
		stats.Max = math.Max(stats.Max, entry.Duration)
		stats.Count++
		sums[name] += entry.Duration
		pattern[name] = stats
	}

	for name, stats := range pattern {
		stats.Mean = sums[name] / float64(stats.Count)
		pattern[name] = stats
	}

	return pattern
}

// ComputeDistribution derives the statistical baseline of worked durations:
// mean, population standard deviation, and the low/high bounds at
// mean ± factor·stddev used by the under/over-activity rules.
func ComputeDistribution(entries []domain.DayEntry, factor float64) domain.Distribution {
	var durations []float64
	for _, entry := range entries {
		if entry.Worked() {
			durations = append(durations, entry.Duration)
		}
	}
	if len(durations) == 0 {
		return domain.Distribution{}
	}

	var sum float64
	for _, d := range durations {
		sum += d
	}
	mean := sum / float64(len(durations))

	var variance float64
	for _, d := range durations {
		variance += (d - mean) * (d - mean)
	}
	stdDev := math.Sqrt(variance / float64(len(durations)))

	return domain.Distribution{
		Mean:   mean,
		StdDev: stdDev,
		Low:    mean - factor*stdDev,
		High:   mean + factor*stdDev,
	}
}
