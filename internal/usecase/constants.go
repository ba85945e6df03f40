package usecase

import (
	"errors"

	"github.com/iho/salonledger/internal/domain"
)

// Row sources, used as metric labels and log fields.
const (
	SourceEntries       = "entries"
	SourceLegacyRevenue = "legacy_revenue"
	SourceLegacyCost    = "legacy_cost"
)

// Summary periods.
const (
	PeriodDaily   = "daily"
	PeriodMonthly = "monthly"
)

// Skip reasons.
const (
	ReasonMissingDate   = "missing_date"
	ReasonInvalidDate   = "invalid_date"
	ReasonMissingField  = "missing_field"
	ReasonInvalidAmount = "invalid_amount"
	ReasonOther         = "other"
)

// skipReason maps a row error to its metric label.
func skipReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingEntryDate):
		return ReasonMissingDate
	case errors.Is(err, domain.ErrInvalidEntryDate), errors.Is(err, domain.ErrInvalidSerialDate):
		return ReasonInvalidDate
	case errors.Is(err, domain.ErrMissingField):
		return ReasonMissingField
	case errors.Is(err, domain.ErrInvalidAmount):
		return ReasonInvalidAmount
	default:
		return ReasonOther
	}
}
