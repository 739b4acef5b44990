package domain

import "time"

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

type AnomalyType string

const (
	AnomalyNegativeHours   AnomalyType = "heures_negatives"
	AnomalyImpossibleHours AnomalyType = "heures_impossibles"
	AnomalyEmptyDay        AnomalyType = "jour_vide"
	AnomalyUnderActivity   AnomalyType = "sous_activite"
	AnomalyOverActivity    AnomalyType = "sur_activite"
)

// ThresholdEvidence documents a value compared against a fixed bound.
type ThresholdEvidence struct {
	Observed  float64
	Threshold float64
}

// BaselineEvidence documents a value compared against the statistical
// baseline of the analyzed period.
type BaselineEvidence struct {
	Observed float64
	Mean     float64
	StdDev   float64
	Bound    float64
}

// Anomaly is a suspicious day flagged by one detection rule. Exactly one of
// Threshold and Baseline is set, depending on the rule that fired.
type Anomaly struct {
	Type      AnomalyType
	Severity  Severity
	Date      time.Time
	Message   string
	Threshold *ThresholdEvidence
	Baseline  *BaselineEvidence
}

type IncoherenceType string

const (
	IncoherenceOffWithNotes   IncoherenceType = "off_avec_notes"
	IncoherenceHalfWithoutOff IncoherenceType = "demi_journee_sans_off"
)

type Incoherence struct {
	Type    IncoherenceType
	Date    time.Time
	Client  string
	Message string
	Detail  string
}

// Gap is a maximal run of workable days with no recorded activity.
// Weekends and holidays inside the run neither break it nor count in
// DurationDays.
type Gap struct {
	Start        time.Time
	End          time.Time
	DurationDays int
	Message      string
}

type WeekdayStats struct {
	Mean  float64
	Min   float64
	Max   float64
	Count int
}

// Distribution is the statistical baseline of worked durations over the
// period: mean, population standard deviation and the low/high activity
// bounds derived from them.
type Distribution struct {
	Mean   float64
	StdDev float64
	Low    float64
	High   float64
}

type ClientRevenue struct {
	Hours   float64
	Revenue float64
	Rate    float64
}

type RevenueSummary struct {
	TotalHours      float64
	TotalRevenue    float64
	AverageRate     float64
	TargetRateDelta float64
	PerClient       map[string]ClientRevenue
}

type Efficiency struct {
	TotalDays      int
	WorkableDays   int
	WeekendDays    int
	HolidayDays    int
	ProductiveDays float64
	TotalHours     float64
	OccupancyRate  float64
	EfficiencyRate float64
}

type Diversification struct {
	Index  float64
	Level  string
	Shares map[string]float64
}

type ActivitySummary struct {
	ActiveDays     int
	EmptyDays      int
	MeanDailyHours float64
	StdDev         float64
	TotalHours     float64
}

type AnomalyCounts struct {
	Total    int
	Errors   int
	Warnings int
	Infos    int
}

// AnalysisResult is the single immutable value produced by one engine run.
// It carries no wall-clock or random dependency: identical inputs yield an
// identical result.
type AnalysisResult struct {
	Period          Period
	Activity        ActivitySummary
	AnomalyCounts   AnomalyCounts
	Anomalies       []Anomaly
	Incoherences    []Incoherence
	Gaps            []Gap
	WeeklyPattern   map[string]WeekdayStats
	Distribution    Distribution
	Revenue         RevenueSummary
	Efficiency      Efficiency
	Diversification Diversification
	Entries         []DayEntry
}
