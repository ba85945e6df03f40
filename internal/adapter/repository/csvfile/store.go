package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iho/salonledger/internal/domain"
)

const bom = "\ufeff"

// Store reads and writes the ledger's CSV files. Every file has a header row;
// written files are UTF-8 with Unix line endings.
type Store struct {
	retrier *Retrier
	log     zerolog.Logger
}

// NewStore creates a new Store.
func NewStore(retrier *Retrier, log zerolog.Logger) *Store {
	return &Store{
		retrier: retrier,
		log:     log,
	}
}

// ReadRows reads a CSV file into rows keyed by header name. Rows shorter than
// the header leave the missing fields empty.
func (s *Store) ReadRows(ctx context.Context, path string) ([]domain.Row, error) {
	var rows []domain.Row
	err := s.retrier.Retry(ctx, func() error {
		var err error
		rows, err = readTable(path)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug().Str("path", path).Int("rows", len(rows)).Msg("read csv")
	return rows, nil
}

// WriteDailySummaries writes the daily summary file, header first.
func (s *Store) WriteDailySummaries(ctx context.Context, path string, summaries []*domain.DailySummary) error {
	records := make([][]string, 0, len(summaries))
	for _, d := range summaries {
		records = append(records, d.Record())
	}
	return s.write(ctx, path, domain.DailySummaryColumns, records)
}

// WriteMonthlySummaries writes the monthly summary file, header first.
func (s *Store) WriteMonthlySummaries(ctx context.Context, path string, summaries []*domain.MonthlySummary) error {
	records := make([][]string, 0, len(summaries))
	for _, m := range summaries {
		records = append(records, m.Record())
	}
	return s.write(ctx, path, domain.MonthlySummaryColumns, records)
}

// ReadDailySummaries reads back a daily summary file.
func (s *Store) ReadDailySummaries(ctx context.Context, path string) ([]*domain.DailySummary, error) {
	rows, err := s.ReadRows(ctx, path)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.DailySummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.DailySummaryFromRow(row))
	}
	return out, nil
}

// ReadMonthlySummaries reads back a monthly summary file.
func (s *Store) ReadMonthlySummaries(ctx context.Context, path string) ([]*domain.MonthlySummary, error) {
	rows, err := s.ReadRows(ctx, path)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.MonthlySummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.MonthlySummaryFromRow(row))
	}
	return out, nil
}

// WriteEntries writes migrated entries in the daily-entry schema.
func (s *Store) WriteEntries(ctx context.Context, path string, entries []*domain.Entry) error {
	records := make([][]string, 0, len(entries))
	for _, e := range entries {
		records = append(records, e.Record())
	}
	return s.write(ctx, path, domain.EntryColumns, records)
}

// WriteCostLog writes the cost log.
func (s *Store) WriteCostLog(ctx context.Context, path string, costs []*domain.CostRecord) error {
	records := make([][]string, 0, len(costs))
	for _, c := range costs {
		records = append(records, c.Record())
	}
	return s.write(ctx, path, domain.CostColumns, records)
}

func (s *Store) write(ctx context.Context, path string, header []string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	err := s.retrier.Retry(ctx, func() error {
		return writeTable(path, header, records)
	})
	if err != nil {
		return err
	}

	s.log.Debug().Str("path", path).Int("rows", len(records)).Msg("wrote csv")
	return nil
}

func readTable(path string) ([]domain.Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	// Hand-typed free text may carry quotes inside unquoted fields.
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []domain.Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}

	rows := make([]domain.Row, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		row := make(domain.Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// writeTable writes to a temporary file next to path and renames it into
// place, so readers never observe a partial file.
func writeTable(path string, header []string, records [][]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}

	writer := csv.NewWriter(tmp)
	if err := writer.Write(header); err != nil {
		tmp.Close()
		return err
	}
	if err := writer.WriteAll(records); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
