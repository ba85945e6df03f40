package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/salonledger/internal/adapter/repository/csvfile"
	"github.com/iho/salonledger/internal/infrastructure/config"
	"github.com/iho/salonledger/internal/infrastructure/logger"
	"github.com/iho/salonledger/internal/infrastructure/metrics"
	"github.com/iho/salonledger/internal/infrastructure/runid"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		log:    zerolog.New(stderr).With().Timestamp().Logger(),
	}

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		a.log.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}

// app carries what every command shares once configuration is loaded.
type app struct {
	stdout io.Writer
	stderr io.Writer

	envFile   string
	logLevel  string
	logFormat string

	cfg     *config.Config
	log     zerolog.Logger
	metrics *metrics.Metrics
	store   *csvfile.Store
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "salonledger",
		Short:         "Salon ledger reporting and legacy migration",
		Long:          `Aggregates daily salon ledger entries into daily and monthly summaries and migrates the legacy spreadsheet ledger, allocating shared costs over revenue entries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd.Name())
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "Load environment from this file instead of .env")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: json or console")

	root.AddCommand(a.reportCmd())
	root.AddCommand(a.migrateCmd())
	root.AddCommand(a.reconcileCmd())
	root.AddCommand(a.versionCmd())

	return root
}

func (a *app) setup(command string) error {
	var envFiles []string
	if a.envFile != "" {
		envFiles = append(envFiles, a.envFile)
	}

	cfg, err := config.Parse(envFiles...)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	id := runid.NewGenerator().Generate()
	started, err := runid.Time(id)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Out:    a.stderr,
		RunID:  id,
	})
	a.log.Info().Str("command", command).Time("started_at", started).Msg("run started")
	a.metrics = metrics.New()
	a.store = csvfile.NewStore(csvfile.NewRetrier(a.log), a.log)

	return nil
}

// observe wraps a command body with run metrics. The metrics file is written
// whether or not the command succeeded.
func (a *app) observe(command string, fn func(ctx context.Context) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		started := time.Now()
		err := fn(cmd.Context())
		a.metrics.ObserveRun(command, started, err)

		if a.cfg.MetricsFile != "" {
			if werr := a.metrics.WriteTextfile(a.cfg.MetricsFile); werr != nil {
				a.log.Warn().Err(werr).Str("path", a.cfg.MetricsFile).Msg("failed to write metrics file")
			}
		}

		return err
	}
}

func orDefault(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
