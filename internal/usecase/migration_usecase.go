package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iho/salonledger/internal/domain"
)

// MigrationUseCase converts a legacy workbook into daily entries and a cost
// log, allocating each day's store costs over that day's revenue entries.
type MigrationUseCase struct {
	source   LegacySource
	writer   MigrationWriter
	recorder Recorder
	log      zerolog.Logger
}

// NewMigrationUseCase creates a new MigrationUseCase.
func NewMigrationUseCase(source LegacySource, writer MigrationWriter, recorder Recorder, log zerolog.Logger) *MigrationUseCase {
	return &MigrationUseCase{
		source:   source,
		writer:   writer,
		recorder: recorder,
		log:      log,
	}
}

// MigrationInput names the files of a migration run.
type MigrationInput struct {
	LegacyPath  string
	EntriesPath string
	CostLogPath string
}

// MigrationResult holds the migrated records in sheet order.
type MigrationResult struct {
	Entries        []*domain.Entry
	Costs          []*domain.CostRecord
	Groups         []*domain.AllocationGroup
	RevenueSkipped int
	CostSkipped    int
}

// Migrate reads the legacy workbook, converts and allocates it, and writes the
// migrated entries and the cost log.
func (uc *MigrationUseCase) Migrate(ctx context.Context, input MigrationInput) (*MigrationResult, error) {
	sheets, err := uc.source.ReadLegacy(ctx, input.LegacyPath)
	if err != nil {
		return nil, err
	}

	result := uc.Convert(sheets)

	if err := uc.writer.WriteEntries(ctx, input.EntriesPath, result.Entries); err != nil {
		return nil, fmt.Errorf("failed to write migrated entries: %w", err)
	}
	if err := uc.writer.WriteCostLog(ctx, input.CostLogPath, result.Costs); err != nil {
		return nil, fmt.Errorf("failed to write cost log: %w", err)
	}

	uc.log.Info().
		Int("entries", len(result.Entries)).
		Str("entries_file", input.EntriesPath).
		Int("revenue_skipped", result.RevenueSkipped).
		Msg("migrated revenue rows")
	uc.log.Info().
		Int("costs", len(result.Costs)).
		Str("cost_file", input.CostLogPath).
		Int("cost_skipped", result.CostSkipped).
		Msg("captured cost rows")

	return result, nil
}

// Convert turns legacy sheets into entries and cost records and allocates the
// costs. The first row of each sheet is its header.
func (uc *MigrationUseCase) Convert(sheets *domain.LegacySheets) *MigrationResult {
	result := &MigrationResult{
		Entries: make([]*domain.Entry, 0, len(sheets.Revenue)),
		Costs:   make([]*domain.CostRecord, 0, len(sheets.Costs)),
	}

	for _, row := range dataRows(sheets.Revenue) {
		uc.recorder.RowRead(SourceLegacyRevenue)

		entry, err := domain.EntryFromLegacyRow(row)
		if err != nil {
			result.RevenueSkipped++
			uc.skip(SourceLegacyRevenue, row.Number, err)
			continue
		}

		result.Entries = append(result.Entries, entry)
		uc.recorder.EntryMigrated()
	}

	for _, row := range dataRows(sheets.Costs) {
		uc.recorder.RowRead(SourceLegacyCost)

		cost, err := domain.CostFromLegacyRow(row)
		if err != nil {
			result.CostSkipped++
			uc.skip(SourceLegacyCost, row.Number, err)
			continue
		}

		result.Costs = append(result.Costs, cost)
		uc.recorder.CostRecorded()
	}

	result.Groups = domain.GroupEntries(result.Entries)
	domain.AllocateGroups(result.Groups, domain.SumCosts(result.Costs))

	for _, g := range result.Groups {
		cost, _ := g.TotalCost.Float64()
		uc.recorder.GroupAllocated(string(g.Mode), cost)
		if g.Mode != domain.AllocationNone {
			uc.log.Debug().
				Str("group", g.Key.String()).
				Str("mode", string(g.Mode)).
				Str("cost", g.TotalCost.String()).
				Int("entries", len(g.Entries)).
				Msg("allocated group cost")
		}
	}

	return result
}

func (uc *MigrationUseCase) skip(source string, number int, err error) {
	uc.recorder.RowSkipped(source, skipReason(err))
	uc.log.Debug().Err(err).Str("source", source).Int("row", number).Msg("skipping legacy row")
}

func dataRows(rows []domain.LegacyRow) []domain.LegacyRow {
	if len(rows) <= 1 {
		return nil
	}
	return rows[1:]
}
