package analysis

import (
	"testing"
	"time"

	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/domain"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/calendar"
	"github.com/stretchr/testify/assert"
)

func fullWeek() []domain.DayEntry {
	var entries []domain.DayEntry
	for d := 3; d <= 7; d++ { // 2024-06-03 is a Monday
		entries = append(entries, domain.DayEntry{
			Date: day(2024, time.June, d), Kind: domain.KindWork, Duration: 1, Clients: []string{"Acme"},
		})
	}
	return append(entries,
		domain.DayEntry{Date: day(2024, time.June, 8), Kind: domain.KindWeekend},
		domain.DayEntry{Date: day(2024, time.June, 9), Kind: domain.KindWeekend},
	)
}

func TestComputeEfficiency_FullWeek(t *testing.T) {
	eff := ComputeEfficiency(fullWeek(), calendar.France())

	assert.Equal(t, 7, eff.TotalDays)
	assert.Equal(t, 5, eff.WorkableDays)
	assert.Equal(t, 2, eff.WeekendDays)
	assert.Equal(t, 0, eff.HolidayDays)
	assert.Equal(t, 5.0, eff.ProductiveDays)
	assert.Equal(t, 5.0, eff.TotalHours)
	assert.Equal(t, 100.0, eff.OccupancyRate)
	assert.Equal(t, 100.0, eff.EfficiencyRate)
}

func TestComputeEfficiency_HalfOffCountsAsHalf(t *testing.T) {
	entries := []domain.DayEntry{
		{Date: day(2024, time.June, 3), Kind: domain.KindWork, Duration: 1},
		{Date: day(2024, time.June, 4), Kind: domain.KindHalfOff, Duration: 0.5},
	}

	eff := ComputeEfficiency(entries, calendar.France())

	assert.Equal(t, 1.5, eff.ProductiveDays)
	assert.Equal(t, 1.5, eff.TotalHours)
	assert.Equal(t, 75.0, eff.EfficiencyRate)
}

func TestComputeEfficiency_HolidayNotWorkable(t *testing.T) {
	entries := []domain.DayEntry{
		{Date: day(2024, time.May, 1), Kind: domain.KindHoliday}, // Wednesday, fête du travail
		{Date: day(2024, time.May, 2), Kind: domain.KindWork, Duration: 1},
	}

	eff := ComputeEfficiency(entries, calendar.France())

	assert.Equal(t, 1, eff.WorkableDays)
	assert.Equal(t, 1, eff.HolidayDays)
	assert.Equal(t, 100.0, eff.OccupancyRate)
	// Holidays stay in the efficiency denominator; only weekends come out.
	assert.Equal(t, 50.0, eff.EfficiencyRate)
}

func TestComputeEfficiency_ZeroWorkableDays(t *testing.T) {
	entries := []domain.DayEntry{
		{Date: day(2024, time.June, 8), Kind: domain.KindWeekend},
		{Date: day(2024, time.June, 9), Kind: domain.KindWeekend},
	}

	eff := ComputeEfficiency(entries, calendar.France())

	assert.Zero(t, eff.OccupancyRate)
	assert.Zero(t, eff.EfficiencyRate)
}

func TestComputeEfficiency_OverBookingExceedsHundred(t *testing.T) {
	entries := []domain.DayEntry{
		{Date: day(2024, time.June, 3), Kind: domain.KindWork, Duration: 1.5},
	}

	eff := ComputeEfficiency(entries, calendar.France())

	assert.Equal(t, 150.0, eff.OccupancyRate)
}
