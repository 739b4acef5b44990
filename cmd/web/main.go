package main

import (
	"fmt"
	"os"

	"github.com/cesar-richard-ei/weekly-ingestor/pkg/handlers/report"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/server"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/analysis"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/calendar"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/config"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/rates"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/store/csvfile"
	"github.com/cesar-richard-ei/weekly-ingestor/pkg/store/timely"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the timesheet analysis web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "weekly.yaml",
		"Path to the configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	cal := calendar.France()

	var source report.EntrySource
	switch cfg.Entries.Source {
	case "timely":
		client := timely.NewClient(timely.Config{
			BaseURL:      cfg.Timely.BaseURL,
			AccountID:    cfg.Timely.AccountID,
			ClientID:     cfg.Timely.ClientID,
			ClientSecret: cfg.Timely.ClientSecret,
			Email:        cfg.Timely.Email,
			Password:     cfg.Timely.Password,
		})
		source = timely.NewSource(client, cal)
	case "csv":
		source = csvfile.NewStore(cfg.Entries.CSVPath)
	default:
		return fmt.Errorf("unknown entries source %q, expected \"timely\" or \"csv\"", cfg.Entries.Source)
	}

	lookup := rates.Lookup(rates.NewStatic(nil))
	if cfg.Rates.Path != "" {
		lookup, err = rates.NewRegistry(cfg.Rates.Path)
		if err != nil {
			return fmt.Errorf("failed to load client rates: %w", err)
		}
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Str("source", cfg.Entries.Source).Msg("entry source configured")

	analyzer := analysis.NewAnalyzer(cal, cfg.Settings())
	handler := report.NewHandler(source, analyzer, lookup)

	api := server.NewWebAPI(logger, server.Config{
		Addr: cfg.Server.Addr,
		Dependencies: server.Dependencies{
			Report: handler,
			Logger: logger,
		},
	})

	return api.Start()
}
