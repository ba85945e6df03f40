package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the only accepted entry date format.
const DateLayout = "2006-01-02"

// MonthLayout formats the monthly bucket key.
const MonthLayout = "2006-01"

// spreadsheetEpoch is day zero of spreadsheet serial dates.
var spreadsheetEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Serial day bounds that keep dates within 0001-01-01 and 9999-12-31.
const (
	minSerialDay = -693593
	maxSerialDay = 2958465
)

var amountNoise = strings.NewReplacer(
	",", "",
	"$", "",
	"€", "",
	"£", "",
	"¥", "",
	"₩", "",
	"₫", "",
	"฿", "",
	"Rp", "",
	" ", "",
)

var truthy = map[string]bool{
	"yes":  true,
	"true": true,
	"y":    true,
	"1":    true,
}

// ParseAmount parses a money value leniently. Currency symbols and thousands
// separators are stripped; anything that still fails to parse yields zero.
func ParseAmount(value string) decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero
	}

	if d, err := decimal.NewFromString(value); err == nil {
		return d
	}

	cleaned := amountNoise.Replace(value)
	if cleaned == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// ParseStrictAmount parses a plain number without any cleanup.
func ParseStrictAmount(value string) (decimal.Decimal, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}

// ParseInt rounds the lenient amount of value to the nearest integer, ties to even.
func ParseInt(value string) int64 {
	return ParseAmount(value).RoundBank(0).IntPart()
}

// ParseBool reports whether value is one of yes, true, y or 1.
func ParseBool(value string) bool {
	return truthy[strings.ToLower(strings.TrimSpace(value))]
}

// ParseDate parses a strict YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrMissingEntryDate
	}

	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidEntryDate, value)
	}

	return t, nil
}

// ParseSerialDate converts a spreadsheet serial day count into a calendar date.
// The fractional (time of day) part is discarded.
func ParseSerialDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidSerialDate
	}

	serial, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidSerialDate, value)
	}

	day := math.Floor(serial)
	if day < minSerialDay || day > maxSerialDay {
		return time.Time{}, fmt.Errorf("%w: %q out of range", ErrInvalidSerialDate, value)
	}

	return spreadsheetEpoch.AddDate(0, 0, int(day)), nil
}

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatMoney renders d rounded to cents, ties to even.
func FormatMoney(d decimal.Decimal) string {
	return d.RoundBank(2).StringFixed(2)
}
