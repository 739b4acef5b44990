package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cesar-richard-ei/weekly-ingestor/pkg/runtime/terminal/export"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/analysis"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/calendar"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/rates"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/store/csvfile"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

type AnalyzeCmd struct {
	entriesPath string
	ratesPath   string
	from        string
	to          string
	clients     string
	reporter    *export.Reporter
}

func NewAnalyzeCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a period of timesheet entries",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.entriesPath, "entries", "", "Path to the entries CSV file")
	cmd.Flags().StringVar(&ac.ratesPath, "rates", "", "Path to the client rates ini profile")
	cmd.Flags().StringVar(&ac.from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ac.to, "to", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ac.clients, "clients", "", "Comma-separated client filter")

	_ = cmd.MarkFlagRequired("entries")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	from, err := time.Parse(dateLayout, ac.from)
	if err != nil {
		return fmt.Errorf("invalid --from date %q, expected YYYY-MM-DD", ac.from)
	}
	to, err := time.Parse(dateLayout, ac.to)
	if err != nil {
		return fmt.Errorf("invalid --to date %q, expected YYYY-MM-DD", ac.to)
	}

	lookup := rates.Lookup(rates.NewStatic(nil))
	if ac.ratesPath != "" {
		lookup, err = rates.NewRegistry(ac.ratesPath)
		if err != nil {
			return err
		}
	}

	var clientFilter []string
	if ac.clients != "" {
		clientFilter = strings.Split(ac.clients, ",")
	}

	entries, err := csvfile.NewStore(ac.entriesPath).GetEntries(ctx, from, to)
	if err != nil {
		return err
	}

	analyzer := analysis.NewAnalyzer(calendar.France(), analysis.DefaultSettings())
	result, err := analyzer.Analyze(entries, from, to, clientFilter, lookup)
	if err != nil {
		return err
	}

	return ac.reporter.Handle(result)
}
