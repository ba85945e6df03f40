package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/iho/salonledger/internal/domain"
)

// ReportUseCase aggregates daily entries into daily and monthly summaries.
type ReportUseCase struct {
	source   RowSource
	writer   SummaryWriter
	recorder Recorder
	log      zerolog.Logger
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(source RowSource, writer SummaryWriter, recorder Recorder, log zerolog.Logger) *ReportUseCase {
	return &ReportUseCase{
		source:   source,
		writer:   writer,
		recorder: recorder,
		log:      log,
	}
}

// ReportInput names the files of a report run.
type ReportInput struct {
	EntriesPath string
	DailyPath   string
	MonthlyPath string
}

// ReportResult holds the sorted summaries of a run.
type ReportResult struct {
	Daily       []*domain.DailySummary
	Monthly     []*domain.MonthlySummary
	RowsRead    int
	RowsSkipped int
}

// Generate reads the entries file, aggregates it and writes both summaries.
func (uc *ReportUseCase) Generate(ctx context.Context, input ReportInput) (*ReportResult, error) {
	rows, err := uc.source.ReadRows(ctx, input.EntriesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	result := uc.Build(rows)

	if err := uc.writer.WriteDailySummaries(ctx, input.DailyPath, result.Daily); err != nil {
		return nil, fmt.Errorf("failed to write daily summary: %w", err)
	}
	uc.recorder.BucketsWritten(PeriodDaily, len(result.Daily))

	if err := uc.writer.WriteMonthlySummaries(ctx, input.MonthlyPath, result.Monthly); err != nil {
		return nil, fmt.Errorf("failed to write monthly summary: %w", err)
	}
	uc.recorder.BucketsWritten(PeriodMonthly, len(result.Monthly))

	uc.log.Info().
		Str("daily", input.DailyPath).
		Str("monthly", input.MonthlyPath).
		Int("rows", result.RowsRead).
		Int("skipped", result.RowsSkipped).
		Int("daily_buckets", len(result.Daily)).
		Int("monthly_buckets", len(result.Monthly)).
		Msg("summaries written")

	return result, nil
}

// Build groups rows by (date, store) and (month, store). Rows whose entry date
// is empty or malformed are skipped.
func (uc *ReportUseCase) Build(rows []domain.Row) *ReportResult {
	daily := make(map[domain.SummaryKey]*domain.DailySummary)
	monthly := make(map[domain.SummaryKey]*domain.MonthlySummary)
	result := &ReportResult{RowsRead: len(rows)}

	for i, row := range rows {
		uc.recorder.RowRead(SourceEntries)

		entry, err := domain.EntryFromRow(row)
		if err != nil {
			result.RowsSkipped++
			uc.recorder.RowSkipped(SourceEntries, skipReason(err))
			// header is line 1
			uc.log.Debug().Err(err).Int("line", i+2).Msg("skipping entry row")
			continue
		}

		dayKey := domain.SummaryKey{
			Period:    domain.FormatDate(entry.Date),
			StoreCode: entry.StoreCode,
			StoreName: entry.StoreName,
		}
		d, ok := daily[dayKey]
		if !ok {
			d = &domain.DailySummary{SummaryKey: dayKey}
			daily[dayKey] = d
		}
		d.Add(entry)

		monthKey := dayKey
		monthKey.Period = entry.Date.Format(domain.MonthLayout)
		m, ok := monthly[monthKey]
		if !ok {
			m = &domain.MonthlySummary{SummaryKey: monthKey}
			monthly[monthKey] = m
		}
		m.Add(entry)
		m.ActiveDays++
	}

	result.Daily = make([]*domain.DailySummary, 0, len(daily))
	for _, d := range daily {
		result.Daily = append(result.Daily, d)
	}
	sort.Slice(result.Daily, func(i, j int) bool {
		return result.Daily[i].SummaryKey.Less(result.Daily[j].SummaryKey)
	})

	result.Monthly = make([]*domain.MonthlySummary, 0, len(monthly))
	for _, m := range monthly {
		result.Monthly = append(result.Monthly, m)
	}
	sort.Slice(result.Monthly, func(i, j int) bool {
		return result.Monthly[i].SummaryKey.Less(result.Monthly[j].SummaryKey)
	})

	return result
}
