package domain

import "errors"

var (
	// Row errors
	ErrMissingEntryDate  = errors.New("entry date is empty")
	ErrInvalidEntryDate  = errors.New("entry date is not in YYYY-MM-DD format")
	ErrInvalidSerialDate = errors.New("invalid spreadsheet serial date")
	ErrMissingField      = errors.New("required field is empty")
	ErrInvalidAmount     = errors.New("amount is not a number")

	// Legacy workbook errors
	ErrLegacyFileNotFound = errors.New("legacy file not found")
	ErrSheetNotFound      = errors.New("sheet not found in workbook")

	// Allocation errors
	ErrAllocationMismatch = errors.New("allocated shares do not sum to group cost")
)
