package calendar

import "time"

// france implements the French public holiday calendar: the eight fixed
// national holidays plus the three movable feasts derived from Easter.
type france struct{}

// France returns the holiday calendar for metropolitan France.
func France() Calendar {
	return france{}
}

func (france) Locale() string { return "FR" }

func (france) IsHoliday(date time.Time) bool {
	day, month, year := date.Day(), date.Month(), date.Year()

	switch {
	case month == time.January && day == 1: // Jour de l'an
		return true
	case month == time.May && day == 1: // Fête du travail
		return true
	case month == time.May && day == 8: // Victoire 1945
		return true
	case month == time.July && day == 14: // Fête nationale
		return true
	case month == time.August && day == 15: // Assomption
		return true
	case month == time.November && day == 1: // Toussaint
		return true
	case month == time.November && day == 11: // Armistice 1918
		return true
	case month == time.December && day == 25: // Noël
		return true
	}

	easter := easterSunday(year)
	switch {
	case sameDay(date, easter.AddDate(0, 0, 1)): // Lundi de Pâques
		return true
	case sameDay(date, easter.AddDate(0, 0, 39)): // Ascension
		return true
	case sameDay(date, easter.AddDate(0, 0, 50)): // Lundi de Pentecôte
		return true
	}

	return false
}

// easterSunday computes Easter for the Gregorian calendar using the
// anonymous Gregorian algorithm (Meeus/Jones/Butcher).
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}
