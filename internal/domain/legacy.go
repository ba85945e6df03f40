package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Semantic fields of the legacy revenue sheet.
const (
	LegacyDate             = "date"
	LegacyStore            = "store"
	LegacyBeautician       = "beautician"
	LegacyCustomers        = "customers"
	LegacyGross            = "gross"
	LegacyNet              = "net"
	LegacyDurationMin      = "duration_min"
	LegacyDurationHour     = "duration_hour"
	LegacyValuePerCustomer = "value_per_customer"
)

// Semantic fields of the legacy cost sheet. Date and store reuse the revenue names.
const (
	LegacyPayer       = "payer"
	LegacyCategory    = "category"
	LegacySubCategory = "sub_category"
	LegacyAmount      = "amount"
	LegacyRemark      = "remark"
)

// Values stamped on migrated entries.
const (
	LegacyServiceType    = "Legacy"
	LegacyPaymentMethod  = "Unknown"
	LegacyEntryChannel   = "Legacy Migration"
	LegacyEnteredBy      = "System"
	LegacyHandoverStatus = "Pending"
	LegacyExceptionFlag  = "Normal"
)

// LegacyRow is a legacy sheet row keyed by semantic field, together with its
// 1-based row number in the sheet.
type LegacyRow struct {
	Number int
	Fields Row
}

// EntryFromLegacyRow converts a legacy revenue row. Rows without a date, store
// or gross amount, with an invalid serial date, or with a gross amount that is
// not a number are rejected.
func EntryFromLegacyRow(lr LegacyRow) (*Entry, error) {
	row := lr.Fields
	serial := row.Get(LegacyDate)
	store := row.Get(LegacyStore)
	gross := row.Get(LegacyGross)

	if serial == "" || store == "" || gross == "" {
		return nil, fmt.Errorf("%w: row %d needs date, store and gross", ErrMissingField, lr.Number)
	}

	date, err := ParseSerialDate(serial)
	if err != nil {
		return nil, err
	}

	grossVal, ok := ParseStrictAmount(gross)
	if !ok {
		return nil, fmt.Errorf("%w: gross %q on row %d", ErrInvalidAmount, gross, lr.Number)
	}

	netVal, ok := ParseStrictAmount(row.Get(LegacyNet))
	if !ok {
		netVal = decimal.Zero
	}

	share := grossVal.Sub(netVal)
	if share.IsNegative() {
		share = decimal.Zero
	}

	customers := row.Get(LegacyCustomers)
	if customers == "" {
		customers = "1"
	}

	beautician := row.Get(LegacyBeautician)
	notes := ""
	if v := row.Get(LegacyValuePerCustomer); v != "" {
		notes = "value_per_customer=" + v
	}

	dateStr := FormatDate(date)
	e := &Entry{
		Date:                date,
		StoreCode:           store,
		StoreName:           store,
		BeauticianName:      beautician,
		ServiceType:         LegacyServiceType,
		PaymentMethod:       LegacyPaymentMethod,
		AppointmentRef:      fmt.Sprintf("legacy-row-%d", lr.Number),
		CustomerCount:       ParseInt(customers),
		ServiceDurationMin:  row.Get(LegacyDurationMin),
		ServiceDurationHour: row.Get(LegacyDurationHour),
		GrossRevenue:        grossVal,
		BeauticianShare:     share,
		BeauticianSubsidy:   decimal.Zero,
		NetRevenue:          netVal,
		CashReceived:        grossVal,
		CashShortOver:       decimal.Zero,
		EntryChannel:        LegacyEntryChannel,
		EnteredBy:           LegacyEnteredBy,
		EntryTimestamp:      dateStr + " 23:59",
		CashHandoverFrom:    beautician,
		HandoverStatus:      LegacyHandoverStatus,
		ExceptionFlag:       LegacyExceptionFlag,
		Notes:               notes,
	}
	e.applyShare(decimal.Zero)

	return e, nil
}

// CostFromLegacyRow converts a legacy cost row. Rows without a date, store or
// amount, with an invalid serial date, or with an amount that is not a number
// are rejected.
func CostFromLegacyRow(lr LegacyRow) (*CostRecord, error) {
	row := lr.Fields
	serial := row.Get(LegacyDate)
	store := row.Get(LegacyStore)
	spending := row.Get(LegacyAmount)

	if serial == "" || store == "" || spending == "" {
		return nil, fmt.Errorf("%w: row %d needs date, store and amount", ErrMissingField, lr.Number)
	}

	date, err := ParseSerialDate(serial)
	if err != nil {
		return nil, err
	}

	amount, ok := ParseStrictAmount(spending)
	if !ok {
		return nil, fmt.Errorf("%w: amount %q on row %d", ErrInvalidAmount, spending, lr.Number)
	}

	return &CostRecord{
		Date:        date,
		Store:       store,
		Payer:       row.Get(LegacyPayer),
		Category:    row.Get(LegacyCategory),
		SubCategory: row.Get(LegacySubCategory),
		Amount:      amount,
		Remark:      row.Get(LegacyRemark),
	}, nil
}

// LegacySheets holds the revenue and cost sheets of a legacy workbook, header
// row included, in sheet order.
type LegacySheets struct {
	Revenue []LegacyRow
	Costs   []LegacyRow
}
