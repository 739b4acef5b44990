package timely

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/domain"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/calendar"
)

// Projects whose notes are prefixed with their name in the day description.
var taggedProjects = map[string]bool{
	"CI":     true,
	"DevOps": true,
}

const offToken = "OFF"

// Source turns Timely events into raw per-day entries. Day kinds follow the
// note conventions of the original report: a day whose notes are all OFF is
// an off day, a day with one OFF note among others is a half-off day at 0.5,
// anything else worked counts as one full day. Weekends and holidays come
// from the calendar, whatever the events say.
type Source struct {
	client *Client
	cal    calendar.Calendar
}

func NewSource(client *Client, cal calendar.Calendar) *Source {
	return &Source{client: client, cal: cal}
}

// GetEntries builds one raw entry per day of [from, to] from the account's
// Timely events.
func (s *Source) GetEntries(ctx context.Context, from, to time.Time) ([]domain.RawEntry, error) {
	events, err := s.client.Events(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timely events: %w", err)
	}

	byDay := make(map[string][]Event)
	for _, ev := range events {
		byDay[ev.Day] = append(byDay[ev.Day], ev)
	}

	var entries []domain.RawEntry
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		entries = append(entries, buildEntry(day, byDay[key], s.cal))
	}

	return entries, nil
}

func buildEntry(day time.Time, events []Event, cal calendar.Calendar) domain.RawEntry {
	entry := domain.RawEntry{Date: day, Duration: "0"}

	switch {
	case calendar.IsWeekend(day):
		entry.Kind = string(domain.KindWeekend)
		return entry
	case cal.IsHoliday(day):
		entry.Kind = string(domain.KindHoliday)
		return entry
	case len(events) == 0:
		entry.Kind = string(domain.KindEmpty)
		return entry
	}

	var notes []string
	offNotes := 0
	clients := make([]string, 0, len(events))
	seenClients := make(map[string]bool)

	for _, ev := range events {
		note := strings.TrimSpace(ev.Note)
		if strings.EqualFold(note, offToken) {
			offNotes++
		}
		if taggedProjects[ev.Project.Name] && note != "" {
			note = fmt.Sprintf("[%s] %s", ev.Project.Name, note)
		}
		if note != "" {
			notes = append(notes, note)
		}
		if name := strings.TrimSpace(ev.Project.Client.Name); name != "" && !seenClients[name] {
			seenClients[name] = true
			clients = append(clients, name)
		}
	}

	entry.Description = strings.Join(notes, "\n\n")
	entry.Client = strings.Join(clients, " + ")

	switch {
	case offNotes == len(events):
		// The OFF token is the day's kind, not narrative.
		entry.Kind = string(domain.KindOff)
		entry.Client = ""
		entry.Description = ""
	case offNotes > 0:
		entry.Kind = string(domain.KindHalfOff)
		entry.Duration = "0.5"
	default:
		entry.Kind = string(domain.KindWork)
		entry.Duration = "1"
	}

	return entry
}
