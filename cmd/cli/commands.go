package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/iho/salonledger/internal/adapter/repository/xlsx"
	"github.com/iho/salonledger/internal/usecase"
)

func (a *app) reportCmd() *cobra.Command {
	var entries, daily, monthly string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate daily entries into daily and monthly summaries",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.observe("report", func(ctx context.Context) error {
		input := usecase.ReportInput{
			EntriesPath: orDefault(entries, a.cfg.EntriesFile),
			DailyPath:   orDefault(daily, a.cfg.DailySummaryFile),
			MonthlyPath: orDefault(monthly, a.cfg.MonthlySummaryFile),
		}

		result, err := usecase.NewReportUseCase(a.store, a.store, a.metrics, a.log).Generate(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Daily summary written to %s\n", input.DailyPath)
		fmt.Fprintf(a.stdout, "Monthly summary written to %s\n", input.MonthlyPath)

		report, err := usecase.NewReconciliationUseCase(a.store, a.log).
			ReconcileSummaries(ctx, result, input.DailyPath, input.MonthlyPath)
		if err != nil {
			return err
		}
		return report.Err()
	})

	cmd.Flags().StringVar(&entries, "entries", "", "Daily entry CSV (default from LEDGER_ENTRIES_FILE)")
	cmd.Flags().StringVar(&daily, "daily", "", "Daily summary output (default from LEDGER_DAILY_SUMMARY_FILE)")
	cmd.Flags().StringVar(&monthly, "monthly", "", "Monthly summary output (default from LEDGER_MONTHLY_SUMMARY_FILE)")

	return cmd
}

func (a *app) migrateCmd() *cobra.Command {
	var legacy, entries, costs, revenueSheet, costSheet string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Convert the legacy workbook into daily entries and a cost log",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.observe("migrate", func(ctx context.Context) error {
		input := usecase.MigrationInput{
			LegacyPath:  orDefault(legacy, a.cfg.LegacyFile),
			EntriesPath: orDefault(entries, a.cfg.MigratedEntriesFile),
			CostLogPath: orDefault(costs, a.cfg.CostLogFile),
		}

		schema := xlsx.DefaultLegacySchema().WithSheetNames(
			orDefault(revenueSheet, a.cfg.RevenueSheet),
			orDefault(costSheet, a.cfg.CostSheet),
		)
		reader := xlsx.NewReader(schema, a.log)

		result, err := usecase.NewMigrationUseCase(reader, a.store, a.metrics, a.log).Migrate(ctx, input)
		if err != nil {
			return err
		}

		if err := usecase.NewReconciliationUseCase(a.store, a.log).CheckAllocationConsistency(result.Groups); err != nil {
			return err
		}

		fmt.Fprintf(a.stdout, "Migrated %d revenue rows to %s\n", len(result.Entries), input.EntriesPath)
		fmt.Fprintf(a.stdout, "Captured %d cost rows to %s\n", len(result.Costs), input.CostLogPath)
		return nil
	})

	cmd.Flags().StringVar(&legacy, "legacy", "", "Legacy workbook (default from LEDGER_LEGACY_FILE)")
	cmd.Flags().StringVar(&entries, "entries", "", "Migrated entries output (default from LEDGER_MIGRATED_ENTRIES_FILE)")
	cmd.Flags().StringVar(&costs, "costs", "", "Cost log output (default from LEDGER_COST_LOG_FILE)")
	cmd.Flags().StringVar(&revenueSheet, "revenue-sheet", "", "Revenue sheet name (default: third sheet)")
	cmd.Flags().StringVar(&costSheet, "cost-sheet", "", "Cost sheet name (default: fourth sheet)")

	return cmd
}

func (a *app) reconcileCmd() *cobra.Command {
	var entries, daily, monthly string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Check written summaries against the entries they came from",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.observe("reconcile", func(ctx context.Context) error {
		entriesPath := orDefault(entries, a.cfg.EntriesFile)
		dailyPath := orDefault(daily, a.cfg.DailySummaryFile)
		monthlyPath := orDefault(monthly, a.cfg.MonthlySummaryFile)

		rows, err := a.store.ReadRows(ctx, entriesPath)
		if err != nil {
			return fmt.Errorf("failed to read entries: %w", err)
		}
		expected := usecase.NewReportUseCase(a.store, a.store, a.metrics, a.log).Build(rows)

		report, err := usecase.NewReconciliationUseCase(a.store, a.log).
			ReconcileSummaries(ctx, expected, dailyPath, monthlyPath)
		if err != nil {
			return err
		}

		printReconciliation(a.stdout, report)
		return report.Err()
	})

	cmd.Flags().StringVar(&entries, "entries", "", "Daily entry CSV (default from LEDGER_ENTRIES_FILE)")
	cmd.Flags().StringVar(&daily, "daily", "", "Daily summary file (default from LEDGER_DAILY_SUMMARY_FILE)")
	cmd.Flags().StringVar(&monthly, "monthly", "", "Monthly summary file (default from LEDGER_MONTHLY_SUMMARY_FILE)")

	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "salonledger %s\n", version)
		},
	}
}

func printReconciliation(w io.Writer, report *usecase.ReconciliationReport) {
	for _, r := range report.Results {
		status := "OK"
		if !r.IsReconciled {
			status = "MISMATCH"
		}
		fmt.Fprintf(w, "%-8s %s: %s (buckets expected=%d recorded=%d, gross expected=%s recorded=%s)\n",
			r.Period, r.Path, status, r.ExpectedBuckets, r.RecordedBuckets,
			r.Expected.GrossTotal.StringFixed(2), r.Recorded.GrossTotal.StringFixed(2))
	}
	fmt.Fprintf(w, "Periods consistent: %v\n", report.PeriodsConsistent)
	fmt.Fprintf(w, "Active days matching: %v\n", report.ActiveDaysMatching)

	if report.Reconciled() {
		fmt.Fprintln(w, "Reconciliation PASSED")
		return
	}
	fmt.Fprintln(w, "Reconciliation FAILED")
}
