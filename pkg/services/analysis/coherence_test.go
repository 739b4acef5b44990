package analysis

import (
	"testing"
	"time"

	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/domain"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectIncoherences_OffWithNotes(t *testing.T) {
	entries := []domain.DayEntry{
		{Date: day(2024, time.June, 3), Kind: domain.KindOff, Description: "réunion client"},
		{Date: day(2024, time.June, 4), Kind: domain.KindOff, Description: "   "},
	}

	incoherences := DetectIncoherences(entries, DefaultSettings())

	require.Len(t, incoherences, 1)
	assert.Equal(t, domain.IncoherenceOffWithNotes, incoherences[0].Type)
	assert.Equal(t, day(2024, time.June, 3), incoherences[0].Date)
	assert.Equal(t, "réunion client", incoherences[0].Detail)
}

func TestDetectIncoherences_HalfDayWithoutOffMarker(t *testing.T) {
	entries := []domain.DayEntry{
		{Date: day(2024, time.June, 3), Kind: domain.KindHalfOff, Duration: 0.5,
			Clients: []string{"Acme"}, Description: "matin: support prod"},
		{Date: day(2024, time.June, 4), Kind: domain.KindHalfOff, Duration: 0.5,
			Clients: []string{"Acme"}, Description: "matin: support prod\n\nOFF"},
		{Date: day(2024, time.June, 5), Kind: domain.KindHalfOff, Duration: 0.5,
			Clients: []string{"Acme"}, Description: "après-midi off"},
	}

	incoherences := DetectIncoherences(entries, DefaultSettings())

	// The marker match is case-insensitive, so only the first day is flagged.
	require.Len(t, incoherences, 1)
	assert.Equal(t, domain.IncoherenceHalfWithoutOff, incoherences[0].Type)
	assert.Equal(t, day(2024, time.June, 3), incoherences[0].Date)
	assert.Equal(t, "Acme", incoherences[0].Client)
}

func TestDetectGaps_SeparatedDaysMakeSeparateGaps(t *testing.T) {
	entries := []domain.DayEntry{
		{Date: day(2024, time.June, 3), Kind: domain.KindEmpty},
		{Date: day(2024, time.June, 4), Kind: domain.KindWork, Duration: 1, Clients: []string{"Acme"}},
		{Date: day(2024, time.June, 5), Kind: domain.KindEmpty},
	}

	gaps := DetectGaps(entries, calendar.France())

	require.Len(t, gaps, 2)
	assert.Equal(t, 1, gaps[0].DurationDays)
	assert.Equal(t, day(2024, time.June, 3), gaps[0].Start)
	assert.Equal(t, day(2024, time.June, 3), gaps[0].End)
	assert.Equal(t, 1, gaps[1].DurationDays)
	assert.Equal(t, day(2024, time.June, 5), gaps[1].Start)
}

func TestDetectGaps_ConsecutiveDaysMergeIntoOne(t *testing.T) {
	entries := []domain.DayEntry{
		{Date: day(2024, time.June, 3), Kind: domain.KindEmpty},
		{Date: day(2024, time.June, 4), Kind: domain.KindEmpty},
		{Date: day(2024, time.June, 5), Kind: domain.KindEmpty},
		{Date: day(2024, time.June, 6), Kind: domain.KindWork, Duration: 1, Clients: []string{"Acme"}},
	}

	gaps := DetectGaps(entries, calendar.France())

	require.Len(t, gaps, 1)
	assert.Equal(t, 3, gaps[0].DurationDays)
	assert.Equal(t, day(2024, time.June, 3), gaps[0].Start)
	assert.Equal(t, day(2024, time.June, 5), gaps[0].End)
}

func TestDetectGaps_WeekendBridgesButDoesNotCount(t *testing.T) {
	// Friday empty, weekend, Monday empty: one gap of 2 workable days.
	entries := []domain.DayEntry{
		{Date: day(2024, time.June, 7), Kind: domain.KindEmpty},
		{Date: day(2024, time.June, 8), Kind: domain.KindWeekend},
		{Date: day(2024, time.June, 9), Kind: domain.KindWeekend},
		{Date: day(2024, time.June, 10), Kind: domain.KindEmpty},
	}

	gaps := DetectGaps(entries, calendar.France())

	require.Len(t, gaps, 1)
	assert.Equal(t, 2, gaps[0].DurationDays)
	assert.Equal(t, day(2024, time.June, 7), gaps[0].Start)
	assert.Equal(t, day(2024, time.June, 10), gaps[0].End)
}

func TestDetectGaps_OpenGapClosesAtEndOfRange(t *testing.T) {
	entries := []domain.DayEntry{
		{Date: day(2024, time.June, 3), Kind: domain.KindWork, Duration: 1, Clients: []string{"Acme"}},
		{Date: day(2024, time.June, 4), Kind: domain.KindEmpty},
		{Date: day(2024, time.June, 5), Kind: domain.KindEmpty},
	}

	gaps := DetectGaps(entries, calendar.France())

	require.Len(t, gaps, 1)
	assert.Equal(t, 2, gaps[0].DurationDays)
	assert.Equal(t, day(2024, time.June, 5), gaps[0].End)
}

func TestDetectGaps_NoGapsOnFullyBookedWeek(t *testing.T) {
	assert.Empty(t, DetectGaps(fullWeek(), calendar.France()))
}
