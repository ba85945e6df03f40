package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/iho/salonledger/internal/domain"
)

// MemoryStore is an in-memory implementation of RowSource, SummaryWriter,
// SummaryReader and MigrationWriter. Files are keyed by path.
type MemoryStore struct {
	mu       sync.RWMutex
	rows     map[string][]domain.Row
	daily    map[string][]*domain.DailySummary
	monthly  map[string][]*domain.MonthlySummary
	entries  map[string][]*domain.Entry
	costLogs map[string][]*domain.CostRecord

	ReadRowsFunc     func(ctx context.Context, path string) ([]domain.Row, error)
	WriteEntriesFunc func(ctx context.Context, path string, entries []*domain.Entry) error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rows:     make(map[string][]domain.Row),
		daily:    make(map[string][]*domain.DailySummary),
		monthly:  make(map[string][]*domain.MonthlySummary),
		entries:  make(map[string][]*domain.Entry),
		costLogs: make(map[string][]*domain.CostRecord),
	}
}

// PutRows seeds the rows returned by ReadRows for path.
func (m *MemoryStore) PutRows(path string, rows []domain.Row) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[path] = rows
}

func (m *MemoryStore) ReadRows(ctx context.Context, path string) ([]domain.Row, error) {
	if m.ReadRowsFunc != nil {
		return m.ReadRowsFunc(ctx, path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	rows, ok := m.rows[path]
	if !ok {
		return nil, fmt.Errorf("%s: no such file", path)
	}
	return rows, nil
}

// Summaries are stored as written records so reads see the rounded values.
func (m *MemoryStore) WriteDailySummaries(_ context.Context, path string, summaries []*domain.DailySummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.DailySummary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, domain.DailySummaryFromRow(toRow(domain.DailySummaryColumns, s.Record())))
	}
	m.daily[path] = out
	return nil
}

func (m *MemoryStore) WriteMonthlySummaries(_ context.Context, path string, summaries []*domain.MonthlySummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.MonthlySummary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, domain.MonthlySummaryFromRow(toRow(domain.MonthlySummaryColumns, s.Record())))
	}
	m.monthly[path] = out
	return nil
}

func (m *MemoryStore) ReadDailySummaries(_ context.Context, path string) ([]*domain.DailySummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.daily[path]
	if !ok {
		return nil, fmt.Errorf("%s: no such file", path)
	}
	return s, nil
}

func (m *MemoryStore) ReadMonthlySummaries(_ context.Context, path string) ([]*domain.MonthlySummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.monthly[path]
	if !ok {
		return nil, fmt.Errorf("%s: no such file", path)
	}
	return s, nil
}

func (m *MemoryStore) WriteEntries(ctx context.Context, path string, entries []*domain.Entry) error {
	if m.WriteEntriesFunc != nil {
		return m.WriteEntriesFunc(ctx, path, entries)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[path] = entries
	return nil
}

func (m *MemoryStore) WriteCostLog(_ context.Context, path string, costs []*domain.CostRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.costLogs[path] = costs
	return nil
}

// Entries returns the entries written to path.
func (m *MemoryStore) Entries(path string) []*domain.Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[path]
}

// CostLog returns the cost records written to path.
func (m *MemoryStore) CostLog(path string) []*domain.CostRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.costLogs[path]
}

// MemoryLegacySource serves fixed legacy sheets.
type MemoryLegacySource struct {
	Sheets *domain.LegacySheets
	Err    error
}

func (s *MemoryLegacySource) ReadLegacy(context.Context, string) (*domain.LegacySheets, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Sheets, nil
}

// NopRecorder discards all metrics.
type NopRecorder struct{}

func (NopRecorder) RowRead(string) {}
func (NopRecorder) RowSkipped(string, string) {}
func (NopRecorder) EntryMigrated() {}
func (NopRecorder) CostRecorded() {}
func (NopRecorder) GroupAllocated(string, float64) {}
func (NopRecorder) BucketsWritten(string, int) {}

func toRow(columns, record []string) domain.Row {
	row := make(domain.Row, len(columns))
	for i, col := range columns {
		row[col] = record[i]
	}
	return row
}
