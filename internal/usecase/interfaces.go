package usecase

import (
	"context"

	"github.com/iho/salonledger/internal/domain"
)

// RowSource reads a delimited file into rows keyed by header name.
type RowSource interface {
	ReadRows(ctx context.Context, path string) ([]domain.Row, error)
}

// SummaryWriter persists summary reports.
type SummaryWriter interface {
	WriteDailySummaries(ctx context.Context, path string, summaries []*domain.DailySummary) error
	WriteMonthlySummaries(ctx context.Context, path string, summaries []*domain.MonthlySummary) error
}

// SummaryReader loads previously written summary reports.
type SummaryReader interface {
	ReadDailySummaries(ctx context.Context, path string) ([]*domain.DailySummary, error)
	ReadMonthlySummaries(ctx context.Context, path string) ([]*domain.MonthlySummary, error)
}

// LegacySource reads the revenue and cost sheets of a legacy workbook.
type LegacySource interface {
	ReadLegacy(ctx context.Context, path string) (*domain.LegacySheets, error)
}

// MigrationWriter persists migrated entries and the cost log.
type MigrationWriter interface {
	WriteEntries(ctx context.Context, path string, entries []*domain.Entry) error
	WriteCostLog(ctx context.Context, path string, costs []*domain.CostRecord) error
}

// Recorder collects run metrics.
type Recorder interface {
	RowRead(source string)
	RowSkipped(source, reason string)
	EntryMigrated()
	CostRecorded()
	GroupAllocated(mode string, cost float64)
	BucketsWritten(period string, n int)
}
