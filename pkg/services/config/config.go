package config

import (
	"fmt"

	"github.com/cesar-richard-ei/weekly-ingestor/pkg/services/analysis"
	"github.com/spf13/viper"
)

type Server struct {
	Addr string `mapstructure:"addr"`
}

type Rates struct {
	// Path to the ini profile holding client day-rates.
	Path string `mapstructure:"path"`
}

type Timely struct {
	BaseURL      string `mapstructure:"base_url"`
	AccountID    string `mapstructure:"account_id"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	Email        string `mapstructure:"email"`
	Password     string `mapstructure:"password"`
}

type Entries struct {
	// Source selects the entry source: "timely" or "csv".
	Source string `mapstructure:"source"`
	// CSVPath is the entries file used by the csv source.
	CSVPath string `mapstructure:"csv_path"`
}

type Analysis struct {
	MaxDailyDuration float64 `mapstructure:"max_daily_duration"`
	StdDevFactor     float64 `mapstructure:"stddev_factor"`
	TargetDailyRate  float64 `mapstructure:"target_daily_rate"`
	OffMarker        string  `mapstructure:"off_marker"`
}

type Config struct {
	Server   Server   `mapstructure:"server"`
	Rates    Rates    `mapstructure:"rates"`
	Timely   Timely   `mapstructure:"timely"`
	Entries  Entries  `mapstructure:"entries"`
	Analysis Analysis `mapstructure:"analysis"`
}

// Load reads the application config file and applies defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := analysis.DefaultSettings()
	v.SetDefault("server.addr", ":8000")
	v.SetDefault("entries.source", "csv")
	v.SetDefault("analysis.max_daily_duration", defaults.MaxDailyDuration)
	v.SetDefault("analysis.stddev_factor", defaults.StdDevFactor)
	v.SetDefault("analysis.target_daily_rate", defaults.TargetDailyRate)
	v.SetDefault("analysis.off_marker", defaults.OffMarker)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &config, nil
}

// Settings maps the config overrides onto the engine defaults.
func (c *Config) Settings() analysis.Settings {
	settings := analysis.DefaultSettings()
	settings.MaxDailyDuration = c.Analysis.MaxDailyDuration
	settings.StdDevFactor = c.Analysis.StdDevFactor
	settings.TargetDailyRate = c.Analysis.TargetDailyRate
	settings.OffMarker = c.Analysis.OffMarker
	return settings
}
