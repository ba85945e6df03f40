package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Report inputs and outputs
	EntriesFile        string `env:"LEDGER_ENTRIES_FILE"         envDefault:"docs/templates/daily_entry_template.csv"   validate:"required"`
	DailySummaryFile   string `env:"LEDGER_DAILY_SUMMARY_FILE"   envDefault:"docs/reports/daily_summary_sample.csv"     validate:"required"`
	MonthlySummaryFile string `env:"LEDGER_MONTHLY_SUMMARY_FILE" envDefault:"docs/reports/monthly_summary_sample.csv"   validate:"required"`

	// Legacy migration
	LegacyFile          string `env:"LEDGER_LEGACY_FILE"           envDefault:"docs/templates/data-template.xlsx"                      validate:"required"`
	MigratedEntriesFile string `env:"LEDGER_MIGRATED_ENTRIES_FILE" envDefault:"docs/templates/legacy_import/daily_entry_data.csv"  validate:"required"`
	CostLogFile         string `env:"LEDGER_COST_LOG_FILE"         envDefault:"docs/templates/legacy_import/cost_legacy_data.csv" validate:"required"`
	RevenueSheet        string `env:"LEDGER_REVENUE_SHEET"         envDefault:""`
	CostSheet           string `env:"LEDGER_COST_SHEET"            envDefault:""`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"    validate:"oneof=debug info warn error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console" validate:"oneof=json console"`

	// Metrics textfile, empty disables it
	MetricsFile string `env:"METRICS_FILE" envDefault:""`
}

// Load loads configuration from an optional .env file and environment
// variables and validates it.
func Load(envFiles ...string) (*Config, error) {
	cfg, err := Parse(envFiles...)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse reads configuration like Load but leaves validation to the caller,
// so command line overrides can be applied first.
func Parse(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
