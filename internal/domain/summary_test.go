package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryTotals_Add(t *testing.T) {
	t.Parallel()

	var totals SummaryTotals
	totals.Add(&Entry{
		PaymentMethod:  "cash",
		GrossRevenue:   dec("100"),
		NetRevenue:     dec("60"),
		CashReceived:   dec("95"),
		CashShortOver:  dec("-5"),
		CustomerCount:  2,
		ExceptionFlag:  "short",
		HandoverStatus: "closed",
	})
	totals.Add(&Entry{
		PaymentMethod:     "Transfer",
		GrossRevenue:      dec("50"),
		NetRevenue:        dec("30"),
		CashReceived:      dec("50"),
		CustomerCount:     1,
		HandoverConfirmed: "yes",
		HandoverStatus:    "closed",
	})
	totals.Add(&Entry{
		PaymentMethod: "voucher",
		GrossRevenue:  dec("20.5"),
		CashShortOver: dec("3"),
	})

	assert.True(t, totals.GrossTotal.Equal(dec("170.5")))
	assert.True(t, totals.GrossCash.Equal(dec("100")))
	assert.True(t, totals.GrossTransfer.Equal(dec("50")))
	assert.True(t, totals.GrossOther.Equal(dec("20.5")))
	assert.True(t, totals.NetRevenue.Equal(dec("90")))
	assert.True(t, totals.CashReceived.Equal(dec("95")), "cash received only counts cash entries")
	assert.True(t, totals.CashVariance.Equal(dec("-5")), "variance only counts cash entries")
	assert.Equal(t, int64(3), totals.CustomerCount)
	assert.Equal(t, int64(1), totals.ExceptionCount)
	assert.Equal(t, int64(2), totals.HandoverPendingCount)
}

func TestSummaryTotals_RoundedAndEqual(t *testing.T) {
	t.Parallel()

	a := SummaryTotals{GrossTotal: dec("10.004"), NetRevenue: dec("3.335"), CustomerCount: 1}
	b := SummaryTotals{GrossTotal: dec("10"), NetRevenue: dec("3.34"), CustomerCount: 1}

	assert.False(t, a.Equal(b))
	assert.True(t, a.Rounded().Equal(b))
	assert.True(t, a.GrossTotal.Equal(dec("10.004")), "Rounded must not modify the receiver")

	var merged SummaryTotals
	merged.Merge(a)
	merged.Merge(b)
	assert.True(t, merged.GrossTotal.Equal(dec("20.004")))
	assert.Equal(t, int64(2), merged.CustomerCount)
}

func TestSummaryRecordsRoundTrip(t *testing.T) {
	t.Parallel()

	daily := &DailySummary{
		SummaryKey: SummaryKey{Period: "2024-05-02", StoreCode: "S01", StoreName: "Central"},
		SummaryTotals: SummaryTotals{
			CustomerCount:        4,
			GrossCash:            dec("100.456"),
			GrossTotal:           dec("100.456"),
			CashVariance:         dec("-1.5"),
			ExceptionCount:       1,
			HandoverPendingCount: 2,
		},
	}

	record := daily.Record()
	require.Len(t, record, len(DailySummaryColumns))

	row := Row{}
	for i, col := range DailySummaryColumns {
		row[col] = record[i]
	}
	assert.Equal(t, "100.46", row["gross_revenue_cash"])

	back := DailySummaryFromRow(row)
	assert.Equal(t, daily.SummaryKey, back.SummaryKey)
	assert.True(t, back.SummaryTotals.Equal(daily.Rounded()))

	monthly := &MonthlySummary{
		SummaryKey:    SummaryKey{Period: "2024-05", StoreCode: "S01", StoreName: "Central"},
		SummaryTotals: daily.SummaryTotals,
		ActiveDays:    3,
	}
	record = monthly.Record()
	require.Len(t, record, len(MonthlySummaryColumns))

	row = Row{}
	for i, col := range MonthlySummaryColumns {
		row[col] = record[i]
	}
	mback := MonthlySummaryFromRow(row)
	assert.Equal(t, int64(3), mback.ActiveDays)
	assert.True(t, mback.SummaryTotals.Equal(monthly.Rounded()))
}

func TestSummaryKey_Less(t *testing.T) {
	t.Parallel()

	a := SummaryKey{Period: "2024-05-01", StoreCode: "S02"}
	b := SummaryKey{Period: "2024-05-02", StoreCode: "S01"}
	c := SummaryKey{Period: "2024-05-02", StoreCode: "S01", StoreName: "Z"}

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(c))
}
