package analysis

import (
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/domain"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/calendar"
)

// ComputeEfficiency derives the time-usage metrics of the period: workable
// days (calendar minus weekends and holidays), productive days (full work
// days plus half for half-off days), and the occupancy and efficiency
// rates. Both rates are unclamped percentages: more than one day-equivalent
// recorded on a workable day pushes them past 100, which signals
// over-booking rather than an error.
func ComputeEfficiency(entries []domain.DayEntry, cal calendar.Calendar) domain.Efficiency {
	eff := domain.Efficiency{TotalDays: len(entries)}

	for _, entry := range entries {
		switch {
		case calendar.IsWeekend(entry.Date):
			eff.WeekendDays++
		case cal.IsHoliday(entry.Date):
			eff.HolidayDays++
		default:
			eff.WorkableDays++
		}

		switch entry.Kind {
		case domain.KindWork:
			eff.ProductiveDays++
		case domain.KindHalfOff:
			eff.ProductiveDays += 0.5
		}

		if entry.Worked() {
			eff.TotalHours += entry.Duration
		}
	}

	if eff.WorkableDays > 0 {
		eff.OccupancyRate = 100 * eff.TotalHours / float64(eff.WorkableDays)
	}
	if openDays := eff.TotalDays - eff.WeekendDays; openDays > 0 {
		eff.EfficiencyRate = 100 * eff.ProductiveDays / float64(openDays)
	}

	return eff
}
