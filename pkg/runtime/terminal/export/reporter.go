package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/domain"
)

type TableConfig struct {
	ClientWidth int
	HoursWidth  int
	AmountWidth int
	RateWidth   int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		ClientWidth: 30,
		HoursWidth:  10,
		AmountWidth: 14,
		RateWidth:   10,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type clientRow struct {
	Name    string
	Revenue domain.ClientRevenue
}

type reportView struct {
	Result  *domain.AnalysisResult
	Clients []clientRow
}

// Handle renders the analysis result as a terminal report.
func (c *Reporter) Handle(result *domain.AnalysisResult) error {
	funcMap := template.FuncMap{
		"formatRow": func(client string, hours, amount, rate interface{}) string {
			return fmt.Sprintf("| %-*s | %*v | %*v | %*v |",
				c.config.ClientWidth, client,
				c.config.HoursWidth, hours,
				c.config.AmountWidth, amount,
				c.config.RateWidth, rate)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.ClientWidth+2),
				strings.Repeat("-", c.config.HoursWidth+2),
				strings.Repeat("-", c.config.AmountWidth+2),
				strings.Repeat("-", c.config.RateWidth+2))
		},
		"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
		"f2":  func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}

	tmpl := `
Rapport d'activité du {{.Result.Period.Start.Format "2006-01-02"}} au {{.Result.Period.End.Format "2006-01-02"}} ({{.Result.Period.Days}} jours)

Jours travaillés: {{.Result.Activity.ActiveDays}}   Jours vides: {{.Result.Activity.EmptyDays}}   Total: {{f2 .Result.Activity.TotalHours}} j
CA: {{f2 .Result.Revenue.TotalRevenue}}   TJM moyen: {{f2 .Result.Revenue.AverageRate}}
Occupation: {{pct .Result.Efficiency.OccupancyRate}}   Efficacité: {{pct .Result.Efficiency.EfficiencyRate}}
Diversification: HHI {{f2 .Result.Diversification.Index}}{{with .Result.Diversification.Level}} ({{.}}){{end}}

{{separator}}
{{formatRow "Client" "Jours" "CA" "TJM"}}
{{separator}}
{{range .Clients}}{{formatRow .Name (f2 .Revenue.Hours) (f2 .Revenue.Revenue) (f2 .Revenue.Rate)}}
{{end}}{{separator}}
{{if .Result.Anomalies}}
Anomalies ({{.Result.AnomalyCounts.Total}}):
{{range .Result.Anomalies}}  [{{.Severity}}] {{.Date.Format "2006-01-02"}} {{.Type}}: {{.Message}}
{{end}}{{end}}{{if .Result.Incoherences}}
Incohérences:
{{range .Result.Incoherences}}  {{.Date.Format "2006-01-02"}} {{.Type}}: {{.Message}}
{{end}}{{end}}{{if .Result.Gaps}}
Périodes sans activité:
{{range .Result.Gaps}}  {{.Start.Format "2006-01-02"}} → {{.End.Format "2006-01-02"}}: {{.Message}}
{{end}}{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	view := reportView{Result: result}
	for name, cr := range result.Revenue.PerClient {
		view.Clients = append(view.Clients, clientRow{Name: name, Revenue: cr})
	}
	sort.Slice(view.Clients, func(i, j int) bool { return view.Clients[i].Name < view.Clients[j].Name })

	return t.Execute(c.writer, view)
}
