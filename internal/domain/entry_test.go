package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestEntryFromRow(t *testing.T) {
	t.Parallel()

	row := Row{
		"entry_date":         "2024-05-02",
		"store_code":         "S01",
		"store_name":         "Central",
		"payment_method":     "Cash",
		"customer_count":     "2",
		"gross_revenue":      "$1,000.00",
		"net_revenue":        "600",
		"cash_received":      "1000",
		"cash_short_over":    "-5",
		"handover_confirmed": "yes",
		"handover_status":    "closed",
		"exception_flag":     "Normal",
	}

	e, err := EntryFromRow(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if FormatDate(e.Date) != "2024-05-02" {
		t.Fatalf("unexpected date %s", FormatDate(e.Date))
	}
	if !e.GrossRevenue.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected gross 1000, got %s", e.GrossRevenue)
	}
	if e.CustomerCount != 2 {
		t.Fatalf("expected 2 customers, got %d", e.CustomerCount)
	}
	if e.Channel() != ChannelCash {
		t.Fatalf("expected cash channel, got %s", e.Channel())
	}
	if e.HasException() {
		t.Fatalf("normal flag must not count as exception")
	}
	if e.HandoverPending() {
		t.Fatalf("confirmed and closed handover must not be pending")
	}
}

func TestEntryFromRowDefaults(t *testing.T) {
	t.Parallel()

	e, err := EntryFromRow(Row{"entry_date": "2024-05-02", "gross_revenue": "oops"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e.StoreCode != UnknownStore || e.StoreName != UnknownStore {
		t.Fatalf("expected UNKNOWN store, got %q/%q", e.StoreCode, e.StoreName)
	}
	if !e.GrossRevenue.IsZero() {
		t.Fatalf("expected unparseable gross to be zero, got %s", e.GrossRevenue)
	}

	e, err = EntryFromRow(Row{"entry_date": "2024-05-02", "store_code": "S02"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.StoreName != "S02" {
		t.Fatalf("expected store name to fall back to code, got %q", e.StoreName)
	}
}

func TestEntryFromRowRejectsDates(t *testing.T) {
	t.Parallel()

	if _, err := EntryFromRow(Row{"entry_date": ""}); !errors.Is(err, ErrMissingEntryDate) {
		t.Fatalf("expected ErrMissingEntryDate, got %v", err)
	}
	if _, err := EntryFromRow(Row{"entry_date": "2024/05/02"}); !errors.Is(err, ErrInvalidEntryDate) {
		t.Fatalf("expected ErrInvalidEntryDate, got %v", err)
	}
}

func TestEntryFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		entry     Entry
		channel   string
		exception bool
		pending   bool
	}{
		{
			name:      "transfer with confirmed open handover",
			entry:     Entry{PaymentMethod: "TRANSFER", HandoverConfirmed: "true", HandoverStatus: "Open", ExceptionFlag: "short"},
			channel:   ChannelTransfer,
			exception: true,
			pending:   true,
		},
		{
			name:    "unknown method, unconfirmed",
			entry:   Entry{PaymentMethod: "Unknown", HandoverStatus: "closed"},
			channel: ChannelOther,
			pending: true,
		},
		{
			name:    "confirmed with empty status is pending",
			entry:   Entry{PaymentMethod: " cash ", HandoverConfirmed: "Y"},
			channel: ChannelCash,
			pending: true,
		},
		{
			name:    "confirmed and done",
			entry:   Entry{HandoverConfirmed: "1", HandoverStatus: "done", ExceptionFlag: " NORMAL "},
			channel: ChannelOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Channel(); got != tt.channel {
				t.Errorf("Channel() = %s, want %s", got, tt.channel)
			}
			if got := tt.entry.HasException(); got != tt.exception {
				t.Errorf("HasException() = %v, want %v", got, tt.exception)
			}
			if got := tt.entry.HandoverPending(); got != tt.pending {
				t.Errorf("HandoverPending() = %v, want %v", got, tt.pending)
			}
		})
	}
}

func TestEntryRecordMatchesColumns(t *testing.T) {
	t.Parallel()

	e, err := EntryFromRow(Row{"entry_date": "2024-05-02", "store_code": "S01", "net_revenue": "10.005"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	record := e.Record()
	if len(record) != len(EntryColumns) {
		t.Fatalf("record has %d fields, header has %d", len(record), len(EntryColumns))
	}

	parsed := Row{}
	for i, col := range EntryColumns {
		parsed[col] = record[i]
	}
	if parsed["net_revenue"] != "10.00" {
		t.Fatalf("expected net revenue rounded at write time, got %q", parsed["net_revenue"])
	}
	if parsed["store_name"] != "S01" {
		t.Fatalf("unexpected store name %q", parsed["store_name"])
	}
}
