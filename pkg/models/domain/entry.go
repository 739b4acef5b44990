package domain

import (
	"fmt"
	"time"
)

// DayKind classifies a calendar day entry. The set is closed: entry sources
// producing any other value are rejected at the normalization boundary.
type DayKind string

const (
	KindEmpty   DayKind = "empty"
	KindWeekend DayKind = "weekend"
	KindHoliday DayKind = "holiday"
	KindOff     DayKind = "off"
	KindHalfOff DayKind = "half_off"
	KindWork    DayKind = "work"
)

func ParseDayKind(s string) (DayKind, error) {
	switch DayKind(s) {
	case KindEmpty, KindWeekend, KindHoliday, KindOff, KindHalfOff, KindWork:
		return DayKind(s), nil
	}
	return "", fmt.Errorf("unknown day kind %q", s)
}

// RawEntry is a per-day record as produced by an entry source. Duration is
// kept as text until normalization so that malformed values surface as
// errors instead of being coerced to zero. Client holds the source encoding,
// possibly multi-client ("A + B").
type RawEntry struct {
	Date        time.Time
	Kind        string
	Duration    string
	Description string
	Client      string
}

// DayEntry is the normalized form: one per calendar day, closed kind,
// parsed duration in day-equivalents, clients split into a list.
type DayEntry struct {
	Date        time.Time
	Kind        DayKind
	Duration    float64
	Description string
	Clients     []string
}

// Worked reports whether the entry contributes hours to revenue and
// statistics. Off, weekend, holiday and empty days never do, whatever their
// recorded duration.
func (e DayEntry) Worked() bool {
	return (e.Kind == KindWork || e.Kind == KindHalfOff) && e.Duration != 0
}

type Period struct {
	Start time.Time
	End   time.Time
	Days  int
}
