package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row is one source row keyed by field name.
type Row map[string]string

// Get returns the trimmed value of field, or "" if absent.
func (r Row) Get(field string) string {
	return strings.TrimSpace(r[field])
}

// UnknownStore is the store code used when a row carries none.
const UnknownStore = "UNKNOWN"

// Payment channels.
const (
	ChannelCash     = "cash"
	ChannelTransfer = "transfer"
	ChannelOther    = "other"
)

// EntryColumns is the daily-entry schema in file order.
var EntryColumns = []string{
	"entry_date",
	"store_code",
	"store_name",
	"beautician_id",
	"beautician_name",
	"service_type",
	"payment_method",
	"appointment_ref",
	"customer_count",
	"service_duration_min",
	"service_duration_hour",
	"gross_revenue",
	"beautician_share",
	"beautician_subsidy",
	"net_revenue",
	"allocatable_cost",
	"net_after_cost",
	"partner_profit_each",
	"cash_received",
	"cash_short_over",
	"entry_channel",
	"entered_by",
	"entry_timestamp",
	"cash_handover_from",
	"cash_handover_to",
	"handover_confirmed",
	"handover_batch_id",
	"handover_status",
	"exception_flag",
	"exception_reason",
	"notes",
}

// Entry represents a single revenue transaction of one store on one day.
type Entry struct {
	Date                time.Time
	StoreCode           string
	StoreName           string
	BeauticianID        string
	BeauticianName      string
	ServiceType         string
	PaymentMethod       string
	AppointmentRef      string
	CustomerCount       int64
	ServiceDurationMin  string
	ServiceDurationHour string
	GrossRevenue        decimal.Decimal
	BeauticianShare     decimal.Decimal
	BeauticianSubsidy   decimal.Decimal
	NetRevenue          decimal.Decimal
	AllocatableCost     decimal.Decimal
	NetAfterCost        decimal.Decimal
	PartnerProfitEach   decimal.Decimal
	CashReceived        decimal.Decimal
	CashShortOver       decimal.Decimal
	EntryChannel        string
	EnteredBy           string
	EntryTimestamp      string
	CashHandoverFrom    string
	CashHandoverTo      string
	HandoverConfirmed   string
	HandoverBatchID     string
	HandoverStatus      string
	ExceptionFlag       string
	ExceptionReason     string
	Notes               string
}

// EntryFromRow normalizes a daily-entry row. Only the date can make it fail;
// every other field falls back to its zero value.
func EntryFromRow(row Row) (*Entry, error) {
	date, err := ParseDate(row.Get("entry_date"))
	if err != nil {
		return nil, err
	}

	storeCode := row.Get("store_code")
	if storeCode == "" {
		storeCode = UnknownStore
	}
	storeName := row.Get("store_name")
	if storeName == "" {
		storeName = storeCode
	}

	return &Entry{
		Date:                date,
		StoreCode:           storeCode,
		StoreName:           storeName,
		BeauticianID:        row.Get("beautician_id"),
		BeauticianName:      row.Get("beautician_name"),
		ServiceType:         row.Get("service_type"),
		PaymentMethod:       row.Get("payment_method"),
		AppointmentRef:      row.Get("appointment_ref"),
		CustomerCount:       ParseInt(row.Get("customer_count")),
		ServiceDurationMin:  row.Get("service_duration_min"),
		ServiceDurationHour: row.Get("service_duration_hour"),
		GrossRevenue:        ParseAmount(row.Get("gross_revenue")),
		BeauticianShare:     ParseAmount(row.Get("beautician_share")),
		BeauticianSubsidy:   ParseAmount(row.Get("beautician_subsidy")),
		NetRevenue:          ParseAmount(row.Get("net_revenue")),
		AllocatableCost:     ParseAmount(row.Get("allocatable_cost")),
		NetAfterCost:        ParseAmount(row.Get("net_after_cost")),
		PartnerProfitEach:   ParseAmount(row.Get("partner_profit_each")),
		CashReceived:        ParseAmount(row.Get("cash_received")),
		CashShortOver:       ParseAmount(row.Get("cash_short_over")),
		EntryChannel:        row.Get("entry_channel"),
		EnteredBy:           row.Get("entered_by"),
		EntryTimestamp:      row.Get("entry_timestamp"),
		CashHandoverFrom:    row.Get("cash_handover_from"),
		CashHandoverTo:      row.Get("cash_handover_to"),
		HandoverConfirmed:   row.Get("handover_confirmed"),
		HandoverBatchID:     row.Get("handover_batch_id"),
		HandoverStatus:      row.Get("handover_status"),
		ExceptionFlag:       row.Get("exception_flag"),
		ExceptionReason:     row.Get("exception_reason"),
		Notes:               row.Get("notes"),
	}, nil
}

// Channel returns the normalized payment channel: cash, transfer or other.
func (e *Entry) Channel() string {
	switch strings.ToLower(strings.TrimSpace(e.PaymentMethod)) {
	case ChannelCash:
		return ChannelCash
	case ChannelTransfer:
		return ChannelTransfer
	default:
		return ChannelOther
	}
}

// HasException reports whether the entry is flagged with anything but "normal".
func (e *Entry) HasException() bool {
	flag := strings.ToLower(strings.TrimSpace(e.ExceptionFlag))
	return flag != "" && flag != "normal"
}

// HandoverPending reports whether cash handover is unconfirmed or still open.
func (e *Entry) HandoverPending() bool {
	if !ParseBool(e.HandoverConfirmed) {
		return true
	}

	switch strings.ToLower(strings.TrimSpace(e.HandoverStatus)) {
	case "pending", "open", "":
		return true
	}
	return false
}

// Key returns the allocation key of the entry, (date, store name).
func (e *Entry) Key() GroupKey {
	return GroupKey{Date: FormatDate(e.Date), Store: e.StoreName}
}

// Record renders the entry in EntryColumns order.
func (e *Entry) Record() []string {
	return []string{
		FormatDate(e.Date),
		e.StoreCode,
		e.StoreName,
		e.BeauticianID,
		e.BeauticianName,
		e.ServiceType,
		e.PaymentMethod,
		e.AppointmentRef,
		formatCount(e.CustomerCount),
		e.ServiceDurationMin,
		e.ServiceDurationHour,
		FormatMoney(e.GrossRevenue),
		FormatMoney(e.BeauticianShare),
		FormatMoney(e.BeauticianSubsidy),
		FormatMoney(e.NetRevenue),
		FormatMoney(e.AllocatableCost),
		FormatMoney(e.NetAfterCost),
		FormatMoney(e.PartnerProfitEach),
		FormatMoney(e.CashReceived),
		FormatMoney(e.CashShortOver),
		e.EntryChannel,
		e.EnteredBy,
		e.EntryTimestamp,
		e.CashHandoverFrom,
		e.CashHandoverTo,
		e.HandoverConfirmed,
		e.HandoverBatchID,
		e.HandoverStatus,
		e.ExceptionFlag,
		e.ExceptionReason,
		e.Notes,
	}
}
