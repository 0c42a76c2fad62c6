package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceNumber converts a raw spreadsheet cell into a decimal quantity or
// rate. It is total: it never fails, it only reports. An absent/blank cell is
// zero and ok; a cell that still cannot be parsed after stripping whitespace
// and thousands separators is zero and not ok, so the caller can record a
// diagnostic with row/column context.
func CoerceNumber(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, true
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
