package domain

import (
	"github.com/shopspring/decimal"
)

// totalsColumns are shared by the daily and monthly summaries, in file order.
var totalsColumns = []string{
	"customer_count",
	"gross_revenue_cash",
	"gross_revenue_transfer",
	"gross_revenue_other",
	"gross_revenue_total",
	"beautician_share",
	"beautician_subsidy",
	"net_revenue",
	"allocatable_cost",
	"net_after_cost",
	"partner_profit_each",
	"cash_received",
	"cash_variance",
	"exception_count",
	"handover_pending_count",
}

// DailySummaryColumns is the daily summary header.
var DailySummaryColumns = append([]string{"report_date", "store_code", "store_name"}, totalsColumns...)

// MonthlySummaryColumns is the monthly summary header.
var MonthlySummaryColumns = append([]string{"month", "store_code", "store_name", "active_days"}, totalsColumns...)

// SummaryKey identifies a summary bucket. Period is a date for daily buckets
// and a month for monthly ones.
type SummaryKey struct {
	Period    string
	StoreCode string
	StoreName string
}

// Less orders keys by period, store code, then store name.
func (k SummaryKey) Less(o SummaryKey) bool {
	if k.Period != o.Period {
		return k.Period < o.Period
	}
	if k.StoreCode != o.StoreCode {
		return k.StoreCode < o.StoreCode
	}
	return k.StoreName < o.StoreName
}

// SummaryTotals accumulates the figures of a bucket.
type SummaryTotals struct {
	CustomerCount        int64
	GrossCash            decimal.Decimal
	GrossTransfer        decimal.Decimal
	GrossOther           decimal.Decimal
	GrossTotal           decimal.Decimal
	BeauticianShare      decimal.Decimal
	BeauticianSubsidy    decimal.Decimal
	NetRevenue           decimal.Decimal
	AllocatableCost      decimal.Decimal
	NetAfterCost         decimal.Decimal
	PartnerProfitEach    decimal.Decimal
	CashReceived         decimal.Decimal
	CashVariance         decimal.Decimal
	ExceptionCount       int64
	HandoverPendingCount int64
}

// Add accumulates one entry.
func (t *SummaryTotals) Add(e *Entry) {
	t.GrossTotal = t.GrossTotal.Add(e.GrossRevenue)
	switch e.Channel() {
	case ChannelCash:
		t.GrossCash = t.GrossCash.Add(e.GrossRevenue)
		t.CashReceived = t.CashReceived.Add(e.CashReceived)
		t.CashVariance = t.CashVariance.Add(e.CashShortOver)
	case ChannelTransfer:
		t.GrossTransfer = t.GrossTransfer.Add(e.GrossRevenue)
	default:
		t.GrossOther = t.GrossOther.Add(e.GrossRevenue)
	}

	t.BeauticianShare = t.BeauticianShare.Add(e.BeauticianShare)
	t.BeauticianSubsidy = t.BeauticianSubsidy.Add(e.BeauticianSubsidy)
	t.NetRevenue = t.NetRevenue.Add(e.NetRevenue)
	t.AllocatableCost = t.AllocatableCost.Add(e.AllocatableCost)
	t.NetAfterCost = t.NetAfterCost.Add(e.NetAfterCost)
	t.PartnerProfitEach = t.PartnerProfitEach.Add(e.PartnerProfitEach)
	t.CustomerCount += e.CustomerCount

	if e.HasException() {
		t.ExceptionCount++
	}
	if e.HandoverPending() {
		t.HandoverPendingCount++
	}
}

// Merge adds the figures of o to t.
func (t *SummaryTotals) Merge(o SummaryTotals) {
	t.CustomerCount += o.CustomerCount
	t.GrossCash = t.GrossCash.Add(o.GrossCash)
	t.GrossTransfer = t.GrossTransfer.Add(o.GrossTransfer)
	t.GrossOther = t.GrossOther.Add(o.GrossOther)
	t.GrossTotal = t.GrossTotal.Add(o.GrossTotal)
	t.BeauticianShare = t.BeauticianShare.Add(o.BeauticianShare)
	t.BeauticianSubsidy = t.BeauticianSubsidy.Add(o.BeauticianSubsidy)
	t.NetRevenue = t.NetRevenue.Add(o.NetRevenue)
	t.AllocatableCost = t.AllocatableCost.Add(o.AllocatableCost)
	t.NetAfterCost = t.NetAfterCost.Add(o.NetAfterCost)
	t.PartnerProfitEach = t.PartnerProfitEach.Add(o.PartnerProfitEach)
	t.CashReceived = t.CashReceived.Add(o.CashReceived)
	t.CashVariance = t.CashVariance.Add(o.CashVariance)
	t.ExceptionCount += o.ExceptionCount
	t.HandoverPendingCount += o.HandoverPendingCount
}

// Rounded returns a copy with every money figure rounded to cents, the way it
// is written to file.
func (t SummaryTotals) Rounded() SummaryTotals {
	r := t
	for _, f := range r.money() {
		*f = f.RoundBank(2)
	}
	return r
}

// Equal compares two totals figure by figure.
func (t SummaryTotals) Equal(o SummaryTotals) bool {
	if t.CustomerCount != o.CustomerCount ||
		t.ExceptionCount != o.ExceptionCount ||
		t.HandoverPendingCount != o.HandoverPendingCount {
		return false
	}

	a, b := t.money(), o.money()
	for i := range a {
		if !a[i].Equal(*b[i]) {
			return false
		}
	}
	return true
}

func (t *SummaryTotals) money() []*decimal.Decimal {
	return []*decimal.Decimal{
		&t.GrossCash,
		&t.GrossTransfer,
		&t.GrossOther,
		&t.GrossTotal,
		&t.BeauticianShare,
		&t.BeauticianSubsidy,
		&t.NetRevenue,
		&t.AllocatableCost,
		&t.NetAfterCost,
		&t.PartnerProfitEach,
		&t.CashReceived,
		&t.CashVariance,
	}
}

func (t *SummaryTotals) record() []string {
	out := []string{formatCount(t.CustomerCount)}
	for _, f := range t.money() {
		out = append(out, FormatMoney(*f))
	}
	return append(out, formatCount(t.ExceptionCount), formatCount(t.HandoverPendingCount))
}

func totalsFromRow(row Row) SummaryTotals {
	return SummaryTotals{
		CustomerCount:        ParseInt(row.Get("customer_count")),
		GrossCash:            ParseAmount(row.Get("gross_revenue_cash")),
		GrossTransfer:        ParseAmount(row.Get("gross_revenue_transfer")),
		GrossOther:           ParseAmount(row.Get("gross_revenue_other")),
		GrossTotal:           ParseAmount(row.Get("gross_revenue_total")),
		BeauticianShare:      ParseAmount(row.Get("beautician_share")),
		BeauticianSubsidy:    ParseAmount(row.Get("beautician_subsidy")),
		NetRevenue:           ParseAmount(row.Get("net_revenue")),
		AllocatableCost:      ParseAmount(row.Get("allocatable_cost")),
		NetAfterCost:         ParseAmount(row.Get("net_after_cost")),
		PartnerProfitEach:    ParseAmount(row.Get("partner_profit_each")),
		CashReceived:         ParseAmount(row.Get("cash_received")),
		CashVariance:         ParseAmount(row.Get("cash_variance")),
		ExceptionCount:       ParseInt(row.Get("exception_count")),
		HandoverPendingCount: ParseInt(row.Get("handover_pending_count")),
	}
}

// DailySummary is the bucket of one store on one day.
type DailySummary struct {
	SummaryKey
	SummaryTotals
}

// Record renders the summary in DailySummaryColumns order.
func (s *DailySummary) Record() []string {
	return append([]string{s.Period, s.StoreCode, s.StoreName}, s.record()...)
}

// DailySummaryFromRow parses a row of a written daily summary.
func DailySummaryFromRow(row Row) *DailySummary {
	return &DailySummary{
		SummaryKey: SummaryKey{
			Period:    row.Get("report_date"),
			StoreCode: row.Get("store_code"),
			StoreName: row.Get("store_name"),
		},
		SummaryTotals: totalsFromRow(row),
	}
}

// MonthlySummary is the bucket of one store in one month.
type MonthlySummary struct {
	SummaryKey
	SummaryTotals
	// ActiveDays counts contributing rows, not distinct dates.
	ActiveDays int64
}

// Record renders the summary in MonthlySummaryColumns order.
func (s *MonthlySummary) Record() []string {
	head := []string{s.Period, s.StoreCode, s.StoreName, formatCount(s.ActiveDays)}
	return append(head, s.record()...)
}

// MonthlySummaryFromRow parses a row of a written monthly summary.
func MonthlySummaryFromRow(row Row) *MonthlySummary {
	return &MonthlySummary{
		SummaryKey: SummaryKey{
			Period:    row.Get("month"),
			StoreCode: row.Get("store_code"),
			StoreName: row.Get("store_name"),
		},
		SummaryTotals: totalsFromRow(row),
		ActiveDays:    ParseInt(row.Get("active_days")),
	}
}
