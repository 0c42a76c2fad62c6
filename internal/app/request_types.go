package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"bill-generator/internal/core"
)

// GenerateBillRequest carries one uploaded workbook and its premium terms.
type GenerateBillRequest struct {
	FileName string
	Workbook io.Reader

	// PremiumPercent and PremiumDirection come in as submitted strings and
	// are parsed by Policy, so adapters share one set of validation messages.
	PremiumPercent   string
	PremiumDirection string

	// PriorBillAmount is optional; blank means a first and final bill.
	PriorBillAmount string
}

// Policy parses the premium fields into a validated core policy.
func (r GenerateBillRequest) Policy() (core.PremiumPolicy, error) {
	pct, err := decimal.NewFromString(strings.TrimSpace(r.PremiumPercent))
	if err != nil {
		return core.PremiumPolicy{}, fmt.Errorf("invalid premium percent %q", r.PremiumPercent)
	}
	policy := core.PremiumPolicy{
		Percent:   pct,
		Direction: core.PremiumDirection(strings.ToLower(strings.TrimSpace(r.PremiumDirection))),
	}
	if err := policy.Validate(); err != nil {
		return core.PremiumPolicy{}, err
	}
	return policy, nil
}

// PriorBill parses the optional prior-bill amount, defaulting to zero.
func (r GenerateBillRequest) PriorBill() (decimal.Decimal, error) {
	s := strings.TrimSpace(r.PriorBillAmount)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid prior bill amount %q", r.PriorBillAmount)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("prior bill amount must be >= 0, got %s", d)
	}
	return d, nil
}
