package api

// Wire types for the analysis report. Field names follow the product's
// French schema and are part of the public contract: do not rename.

type AnalysisReport struct {
	Summary         Summary             `json:"summary"`
	Anomalies       []Anomaly           `json:"anomalies"`
	Incoherences    []Incoherence       `json:"incoherences"`
	Gaps            []Gap               `json:"gaps"`
	Statistics      Statistics          `json:"statistiques"`
	Revenue         Revenue             `json:"revenus"`
	Efficiency      Efficiency          `json:"efficacite"`
	Diversification Diversification     `json:"diversification"`
	Days            map[string]DayEntry `json:"donnees_jour"`
}

type Summary struct {
	Period    Period        `json:"periode"`
	Activity  Activity      `json:"activite"`
	Anomalies AnomalyCounts `json:"anomalies"`
}

type Period struct {
	Start string `json:"debut"`
	End   string `json:"fin"`
	Days  int    `json:"nb_jours"`
}

type Activity struct {
	ActiveDays     int     `json:"jours_avec_activite"`
	EmptyDays      int     `json:"jours_vides"`
	MeanDailyHours float64 `json:"moyenne_heures_jour"`
	StdDev         float64 `json:"ecart_type"`
	TotalHours     float64 `json:"total_heures"`
}

type AnomalyCounts struct {
	Total      int           `json:"total"`
	BySeverity SeverityCount `json:"par_severite"`
}

type SeverityCount struct {
	Error   int `json:"error"`
	Warning int `json:"warning"`
	Info    int `json:"info"`
}

type Anomaly struct {
	Type     string         `json:"type"`
	Severity string         `json:"severity"`
	Date     string         `json:"date"`
	Message  string         `json:"message"`
	Details  AnomalyDetails `json:"details"`
}

// AnomalyDetails carries the numeric evidence behind an anomaly. Threshold
// rules fill seuil; statistical rules fill moyenne/ecart_type/borne.
type AnomalyDetails struct {
	Observed  float64  `json:"valeur_observee"`
	Threshold *float64 `json:"seuil,omitempty"`
	Mean      *float64 `json:"moyenne,omitempty"`
	StdDev    *float64 `json:"ecart_type,omitempty"`
	Bound     *float64 `json:"borne,omitempty"`
}

type Incoherence struct {
	Type    string `json:"type"`
	Date    string `json:"date"`
	Client  string `json:"client,omitempty"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type Gap struct {
	Start        string `json:"start_date"`
	End          string `json:"end_date"`
	DurationDays int    `json:"duration_days"`
	Message      string `json:"message"`
}

type Statistics struct {
	WeeklyPattern map[string]WeekdayStats `json:"pattern_hebdomadaire"`
	Daily         DailyDistribution       `json:"distribution_quotidienne"`
}

type WeekdayStats struct {
	Mean  float64 `json:"moyenne"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

type DailyDistribution struct {
	Mean   float64 `json:"moyenne"`
	StdDev float64 `json:"ecart_type"`
	Bounds Bounds  `json:"seuils"`
}

type Bounds struct {
	Low  float64 `json:"bas"`
	High float64 `json:"haut"`
}

type Revenue struct {
	TotalHours      float64                  `json:"total_heures"`
	Total           float64                  `json:"total"`
	AverageRate     float64                  `json:"taux_moyen"`
	TargetRateDelta float64                  `json:"ecart_tjm_cible"`
	PerClient       map[string]ClientRevenue `json:"par_client"`
}

type ClientRevenue struct {
	Hours   float64 `json:"heures"`
	Revenue float64 `json:"revenu"`
	Rate    float64 `json:"tjm"`
}

type Efficiency struct {
	WorkableDays   int     `json:"jours_ouvrables"`
	ProductiveDays float64 `json:"jours_productifs"`
	OccupancyRate  float64 `json:"taux_occupation"`
	EfficiencyRate float64 `json:"taux_efficacite"`
}

type Diversification struct {
	Index  float64            `json:"indice"`
	Level  string             `json:"niveau"`
	Shares map[string]float64 `json:"parts"`
}

type DayEntry struct {
	Kind        string   `json:"type"`
	Duration    float64  `json:"duree"`
	Description string   `json:"description,omitempty"`
	Clients     []string `json:"clients,omitempty"`
}

type ClientRate struct {
	Client string  `json:"client"`
	Rate   float64 `json:"tjm"`
}
