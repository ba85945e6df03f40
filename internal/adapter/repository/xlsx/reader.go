package xlsx

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/iho/salonledger/internal/domain"
)

// Reader loads legacy workbooks.
type Reader struct {
	schema LegacySchema
	log    zerolog.Logger
}

// NewReader creates a new Reader for the given schema.
func NewReader(schema LegacySchema, log zerolog.Logger) *Reader {
	return &Reader{
		schema: schema,
		log:    log,
	}
}

// ReadLegacy reads the revenue and cost sheets of the workbook at path. Cells
// are returned as stored, without number formatting, so dates stay serial
// numbers. Fully empty rows are dropped.
func (r *Reader) ReadLegacy(ctx context.Context, path string) (*domain.LegacySheets, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrLegacyFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	revenueSheet, err := resolveSheet(f, r.schema.RevenueSheet, r.schema.RevenueIndex)
	if err != nil {
		return nil, err
	}
	costSheet, err := resolveSheet(f, r.schema.CostSheet, r.schema.CostIndex)
	if err != nil {
		return nil, err
	}

	revenue, err := readSheet(f, revenueSheet, r.schema.Revenue)
	if err != nil {
		return nil, err
	}
	costs, err := readSheet(f, costSheet, r.schema.Cost)
	if err != nil {
		return nil, err
	}

	r.log.Debug().
		Str("revenue_sheet", revenueSheet).
		Int("revenue_rows", len(revenue)).
		Str("cost_sheet", costSheet).
		Int("cost_rows", len(costs)).
		Msg("read legacy workbook")

	return &domain.LegacySheets{Revenue: revenue, Costs: costs}, nil
}

func resolveSheet(f *excelize.File, name string, index int) (string, error) {
	sheets := f.GetSheetList()

	if name != "" {
		for _, s := range sheets {
			if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(name)) {
				return s, nil
			}
		}
		return "", fmt.Errorf("%w: no sheet named %q", domain.ErrSheetNotFound, name)
	}

	if index < 0 || index >= len(sheets) {
		return "", fmt.Errorf("%w: workbook has %d sheets, need sheet %d", domain.ErrSheetNotFound, len(sheets), index+1)
	}
	return sheets[index], nil
}

func readSheet(f *excelize.File, sheet string, layout SheetLayout) ([]domain.LegacyRow, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	out := make([]domain.LegacyRow, 0, len(rows))
	for i, cells := range rows {
		fields := make(domain.Row, len(layout))
		empty := true
		for c, value := range cells {
			if strings.TrimSpace(value) != "" {
				empty = false
			}
			col, err := excelize.ColumnNumberToName(c + 1)
			if err != nil {
				return nil, err
			}
			if field, ok := layout[col]; ok {
				fields[field] = value
			}
		}
		if empty {
			continue
		}
		out = append(out, domain.LegacyRow{Number: i + 1, Fields: fields})
	}

	return out, nil
}
