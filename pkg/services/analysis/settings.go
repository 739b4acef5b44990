package analysis

// Settings contains the configurable thresholds for the analysis engine.
type Settings struct {
	// MaxDailyDuration is the largest plausible day-equivalent duration for
	// a single day; anything above is flagged as impossible (default: 2.0)
	MaxDailyDuration float64
	// StdDevFactor is the number of standard deviations around the mean
	// that bounds normal activity (default: 1.0)
	StdDevFactor float64
	// TargetDailyRate is the reference TJM the average billed rate is
	// compared against (default: 500)
	TargetDailyRate float64
	// HHILowThreshold is the HHI above which diversification is low (default: 0.6)
	HHILowThreshold float64
	// HHIMediumThreshold is the HHI above which diversification is medium (default: 0.4)
	HHIMediumThreshold float64
	// HHIGoodThreshold is the HHI above which diversification is good,
	// and at or below which it is excellent (default: 0.2)
	HHIGoodThreshold float64
	// OffMarker is the token expected in a half-off day's description to
	// account for the non-worked half (default: "OFF")
	OffMarker string
}

// DefaultSettings returns the default engine configuration.
func DefaultSettings() Settings {
	return Settings{
		MaxDailyDuration:   2.0,
		StdDevFactor:       1.0,
		TargetDailyRate:    500,
		HHILowThreshold:    0.6,
		HHIMediumThreshold: 0.4,
		HHIGoodThreshold:   0.2,
		OffMarker:          "OFF",
	}
}
