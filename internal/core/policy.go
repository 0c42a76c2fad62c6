package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	percentHundred = decimal.NewFromInt(100)
)

// Validate enforces the tender rules on the policy: percent within 0–100 and
// a known direction. A zero-value policy (0%, empty direction) is rejected so
// a forgotten policy fails fast instead of silently billing without premium.
func (p PremiumPolicy) Validate() error {
	if p.Direction != PremiumAdd && p.Direction != PremiumDeduct {
		return fmt.Errorf("premium direction must be %q or %q, got %q", PremiumAdd, PremiumDeduct, p.Direction)
	}
	if p.Percent.IsNegative() {
		return fmt.Errorf("premium percent must be >= 0, got %s", p.Percent)
	}
	if p.Percent.GreaterThan(percentHundred) {
		return fmt.Errorf("premium percent must be <= 100, got %s", p.Percent)
	}
	return nil
}

// Apply returns the signed, whole-rupee premium over base:
// base × Percent/100, positive for an addition, negative for a deduction.
// Rounding happens here, at the point the amount is finalized, so that totals
// built from applied premiums never drift from their displayed parts.
func (p PremiumPolicy) Apply(base decimal.Decimal) decimal.Decimal {
	amt := base.Mul(p.Percent).Div(percentHundred)
	if p.Direction == PremiumDeduct {
		amt = amt.Neg()
	}
	return roundRupees(amt)
}

// roundRupees finalizes a monetary amount to whole rupees using banker's
// rounding, matching the measurement-book convention the bills are audited
// against.
func roundRupees(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(0)
}
