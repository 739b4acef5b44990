package analysis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/domain"
)

// ErrInvalidRange is returned when the requested period starts after it ends.
var ErrInvalidRange = errors.New("invalid date range: start date is after end date")

const clientSeparator = " + "

// Normalize canonicalizes raw entries into exactly one DayEntry per
// calendar day of [from, to], sorted by date. Days with no raw record
// become empty entries. When clientFilter is non-empty, worked entries are
// restricted to the listed clients and their duration is scaled down by the
// share of clients dropped; a worked day left with no matching client keeps
// its kind with a zero duration.
func Normalize(raw []domain.RawEntry, from, to time.Time, clientFilter []string) ([]domain.DayEntry, error) {
	from = truncateDay(from)
	to = truncateDay(to)
	if from.After(to) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			from.Format("2006-01-02"), to.Format("2006-01-02"))
	}

	byDay := make(map[time.Time]domain.RawEntry, len(raw))
	for _, r := range raw {
		byDay[truncateDay(r.Date)] = r
	}

	filter := make(map[string]bool, len(clientFilter))
	for _, c := range clientFilter {
		if c = strings.TrimSpace(c); c != "" {
			filter[c] = true
		}
	}

	days := int(to.Sub(from).Hours()/24) + 1
	entries := make([]domain.DayEntry, 0, days)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		r, ok := byDay[day]
		if !ok {
			entries = append(entries, domain.DayEntry{Date: day, Kind: domain.KindEmpty})
			continue
		}

		entry, err := normalizeEntry(r, day)
		if err != nil {
			return nil, err
		}
		if len(filter) > 0 {
			entry = applyClientFilter(entry, filter)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func normalizeEntry(r domain.RawEntry, day time.Time) (domain.DayEntry, error) {
	kind, err := domain.ParseDayKind(r.Kind)
	if err != nil {
		return domain.DayEntry{}, fmt.Errorf("entry %s: %w", day.Format("2006-01-02"), err)
	}

	duration := 0.0
	if strings.TrimSpace(r.Duration) != "" {
		duration, err = strconv.ParseFloat(strings.TrimSpace(r.Duration), 64)
		if err != nil {
			return domain.DayEntry{}, fmt.Errorf("entry %s: unparseable duration %q",
				day.Format("2006-01-02"), r.Duration)
		}
	}

	entry := domain.DayEntry{
		Date:        day,
		Kind:        kind,
		Duration:    duration,
		Description: r.Description,
	}
	if kind == domain.KindWork || kind == domain.KindHalfOff {
		entry.Clients = SplitClients(r.Client)
	}

	return entry, nil
}

// SplitClients parses the raw multi-client encoding ("A + B") into the
// trimmed, de-duplicated client list, preserving order.
func SplitClients(raw string) []string {
	var clients []string
	seen := make(map[string]bool)
	for _, token := range strings.Split(raw, clientSeparator) {
		token = strings.TrimSpace(token)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		clients = append(clients, token)
	}
	return clients
}

func applyClientFilter(entry domain.DayEntry, filter map[string]bool) domain.DayEntry {
	if entry.Kind != domain.KindWork && entry.Kind != domain.KindHalfOff {
		return entry
	}

	var kept []string
	for _, c := range entry.Clients {
		if filter[c] {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(entry.Clients) {
		return entry
	}

	// Dropped clients take their even share of the duration with them.
	if len(entry.Clients) > 0 {
		entry.Duration = entry.Duration * float64(len(kept)) / float64(len(entry.Clients))
	}
	entry.Clients = kept
	return entry
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
