package analysis

import (
	"fmt"
	"strings"

	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/domain"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/calendar"
)

// DetectIncoherences flags entries whose kind and narrative contradict each
// other. Off days are expected to carry no notes; half-off days are
// expected to account for their non-worked half with the configured off
// marker in the description.
func DetectIncoherences(entries []domain.DayEntry, settings Settings) []domain.Incoherence {
	var incoherences []domain.Incoherence

	for _, entry := range entries {
		client := ""
		if len(entry.Clients) > 0 {
			client = strings.Join(entry.Clients, ", ")
		}

		if entry.Kind == domain.KindOff && strings.TrimSpace(entry.Description) != "" {
			incoherences = append(incoherences, domain.Incoherence{
				Type:    domain.IncoherenceOffWithNotes,
				Date:    entry.Date,
				Client:  client,
				Message: "Jour off avec des notes d'activité",
				Detail:  strings.TrimSpace(entry.Description),
			})
		}

		if entry.Kind == domain.KindHalfOff && !containsMarker(entry.Description, settings.OffMarker) {
			incoherences = append(incoherences, domain.Incoherence{
				Type:    domain.IncoherenceHalfWithoutOff,
				Date:    entry.Date,
				Client:  client,
				Message: fmt.Sprintf("Demi-journée sans mention %q pour la demi-journée non travaillée", settings.OffMarker),
				Detail:  strings.TrimSpace(entry.Description),
			})
		}
	}

	return incoherences
}

func containsMarker(description, marker string) bool {
	return strings.Contains(strings.ToUpper(description), strings.ToUpper(marker))
}

// DetectGaps scans entries in date order for maximal runs of workable days
// with no recorded activity. Weekends and holidays inside a run neither
// break it nor count in its duration.
func DetectGaps(entries []domain.DayEntry, cal calendar.Calendar) []domain.Gap {
	var gaps []domain.Gap
	var open *domain.Gap

	flush := func() {
		if open != nil {
			open.Message = fmt.Sprintf("Aucune activité sur %d jour(s) ouvré(s)", open.DurationDays)
			gaps = append(gaps, *open)
			open = nil
		}
	}

	for _, entry := range entries {
		if !calendar.IsWorkable(cal, entry.Date) {
			continue
		}
		if entry.Kind == domain.KindEmpty {
			if open == nil {
				open = &domain.Gap{Start: entry.Date}
			}
			open.End = entry.Date
			open.DurationDays++
			continue
		}
		flush()
	}
	flush()

	return gaps
}
