package analysis

import "github.com/cesar-richard-ei/weekly-ingestor/pkg/models/domain"

// Diversification levels, from most to least concentrated.
const (
	DiversificationLow       = "faible"
	DiversificationMedium    = "moyenne"
	DiversificationGood      = "bonne"
	DiversificationExcellent = "excellente"
)

// ComputeDiversification scores client concentration with the
// Herfindahl-Hirschman index over per-client hour shares. A single client
// yields 1.0; an even split across n clients yields 1/n. With no worked
// hours the index is 0 and the level is left empty.
func ComputeDiversification(entries []domain.DayEntry, settings Settings) domain.Diversification {
	hours := make(map[string]float64)
	var total float64

	for _, entry := range entries {
		if !entry.Worked() || len(entry.Clients) == 0 {
			continue
		}
		share := entry.Duration / float64(len(entry.Clients))
		for _, client := range entry.Clients {
			hours[client] += share
			total += share
		}
	}

	div := domain.Diversification{Shares: make(map[string]float64)}
	if total == 0 {
		return div
	}

	for client, h := range hours {
		share := h / total
		div.Shares[client] = share
		div.Index += share * share
	}

	switch {
	case div.Index >= settings.HHILowThreshold:
		div.Level = DiversificationLow
	case div.Index > settings.HHIMediumThreshold:
		div.Level = DiversificationMedium
	case div.Index > settings.HHIGoodThreshold:
		div.Level = DiversificationGood
	default:
		div.Level = DiversificationExcellent
	}

	return div
}
