package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/salonledger/internal/domain"
)

var (
	// ErrSummaryMismatch is returned when a written summary does not match the entries it came from.
	ErrSummaryMismatch = errors.New("summary file does not match aggregated entries")
)

// halfCent is the largest rounding error a single written bucket can carry.
var halfCent = decimal.RequireFromString("0.005")

// ReconciliationUseCase verifies written reports against in-memory results.
type ReconciliationUseCase struct {
	reader SummaryReader
	log    zerolog.Logger
}

// NewReconciliationUseCase creates a new reconciliation use case
func NewReconciliationUseCase(reader SummaryReader, log zerolog.Logger) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		reader: reader,
		log:    log,
	}
}

// ReconciliationResult compares one summary file with the expected buckets.
type ReconciliationResult struct {
	Period          string
	Path            string
	ExpectedBuckets int
	RecordedBuckets int
	Expected        domain.SummaryTotals
	Recorded        domain.SummaryTotals
	IsReconciled    bool
}

// ReconciliationReport represents a full reconciliation report
type ReconciliationReport struct {
	Results            []*ReconciliationResult
	Discrepancies      []*ReconciliationResult
	PeriodsConsistent  bool
	ActiveDaysMatching bool
	CheckedAt          time.Time
}

// Reconciled reports whether every check passed.
func (r *ReconciliationReport) Reconciled() bool {
	return len(r.Discrepancies) == 0 && r.PeriodsConsistent && r.ActiveDaysMatching
}

// Err returns ErrSummaryMismatch describing the failed checks, or nil.
func (r *ReconciliationReport) Err() error {
	if r.Reconciled() {
		return nil
	}

	var errs []error
	for _, d := range r.Discrepancies {
		errs = append(errs, fmt.Errorf("%w: %s summary %s (buckets expected=%d recorded=%d)",
			ErrSummaryMismatch, d.Period, d.Path, d.ExpectedBuckets, d.RecordedBuckets))
	}
	if !r.PeriodsConsistent {
		errs = append(errs, fmt.Errorf("%w: daily and monthly totals disagree", ErrSummaryMismatch))
	}
	if !r.ActiveDaysMatching {
		errs = append(errs, fmt.Errorf("%w: active days do not match accepted rows", ErrSummaryMismatch))
	}
	return errors.Join(errs...)
}

// ReconcileSummaries re-reads both summary files and compares them with expected.
func (uc *ReconciliationUseCase) ReconcileSummaries(ctx context.Context, expected *ReportResult, dailyPath, monthlyPath string) (*ReconciliationReport, error) {
	daily, err := uc.reader.ReadDailySummaries(ctx, dailyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read daily summary: %w", err)
	}

	monthly, err := uc.reader.ReadMonthlySummaries(ctx, monthlyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read monthly summary: %w", err)
	}

	dailyResult := &ReconciliationResult{
		Period:          PeriodDaily,
		Path:            dailyPath,
		ExpectedBuckets: len(expected.Daily),
		RecordedBuckets: len(daily),
		Expected:        roundedDailyTotal(expected.Daily),
		Recorded:        roundedDailyTotal(daily),
	}
	dailyResult.IsReconciled = dailyResult.ExpectedBuckets == dailyResult.RecordedBuckets &&
		dailyResult.Expected.Equal(dailyResult.Recorded)

	monthlyResult := &ReconciliationResult{
		Period:          PeriodMonthly,
		Path:            monthlyPath,
		ExpectedBuckets: len(expected.Monthly),
		RecordedBuckets: len(monthly),
		Expected:        roundedMonthlyTotal(expected.Monthly),
		Recorded:        roundedMonthlyTotal(monthly),
	}
	monthlyResult.IsReconciled = monthlyResult.ExpectedBuckets == monthlyResult.RecordedBuckets &&
		monthlyResult.Expected.Equal(monthlyResult.Recorded)

	var activeDays int64
	for _, m := range monthly {
		activeDays += m.ActiveDays
	}

	tolerance := halfCent.Mul(decimal.NewFromInt(int64(len(daily) + len(monthly))))
	report := &ReconciliationReport{
		Results:            []*ReconciliationResult{dailyResult, monthlyResult},
		Discrepancies:      make([]*ReconciliationResult, 0),
		PeriodsConsistent:  totalsAgree(dailyResult.Recorded, monthlyResult.Recorded, tolerance),
		ActiveDaysMatching: activeDays == int64(expected.RowsRead-expected.RowsSkipped),
		CheckedAt:          time.Now().UTC(),
	}

	for _, result := range report.Results {
		if !result.IsReconciled {
			report.Discrepancies = append(report.Discrepancies, result)
		}
	}

	uc.log.Info().
		Bool("reconciled", report.Reconciled()).
		Int("discrepancies", len(report.Discrepancies)).
		Bool("periods_consistent", report.PeriodsConsistent).
		Msg("summary reconciliation finished")

	return report, nil
}

// CheckAllocationConsistency verifies that every group's shares add up to its cost.
func (uc *ReconciliationUseCase) CheckAllocationConsistency(groups []*domain.AllocationGroup) error {
	var errs []error
	for _, g := range groups {
		if err := g.Verify(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		uc.log.Error().Int("groups", len(errs)).Msg("allocation inconsistency detected")
		return errors.Join(errs...)
	}

	return nil
}

func roundedDailyTotal(summaries []*domain.DailySummary) domain.SummaryTotals {
	var total domain.SummaryTotals
	for _, s := range summaries {
		total.Merge(s.Rounded())
	}
	return total
}

func roundedMonthlyTotal(summaries []*domain.MonthlySummary) domain.SummaryTotals {
	var total domain.SummaryTotals
	for _, s := range summaries {
		total.Merge(s.Rounded())
	}
	return total
}

// totalsAgree compares counts exactly and money within tolerance.
func totalsAgree(a, b domain.SummaryTotals, tolerance decimal.Decimal) bool {
	if a.CustomerCount != b.CustomerCount ||
		a.ExceptionCount != b.ExceptionCount ||
		a.HandoverPendingCount != b.HandoverPendingCount {
		return false
	}

	pairs := [][2]decimal.Decimal{
		{a.GrossTotal, b.GrossTotal},
		{a.GrossCash, b.GrossCash},
		{a.GrossTransfer, b.GrossTransfer},
		{a.GrossOther, b.GrossOther},
		{a.BeauticianShare, b.BeauticianShare},
		{a.BeauticianSubsidy, b.BeauticianSubsidy},
		{a.NetRevenue, b.NetRevenue},
		{a.AllocatableCost, b.AllocatableCost},
		{a.NetAfterCost, b.NetAfterCost},
		{a.PartnerProfitEach, b.PartnerProfitEach},
		{a.CashReceived, b.CashReceived},
		{a.CashVariance, b.CashVariance},
	}
	for _, p := range pairs {
		if p[0].Sub(p[1]).Abs().GreaterThan(tolerance) {
			return false
		}
	}
	return true
}
