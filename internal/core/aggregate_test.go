package core_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"bill-generator/internal/core"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func item(t *testing.T, qty, rate string) core.LineItem {
	t.Helper()
	q, r := dec(t, qty), dec(t, rate)
	return core.LineItem{Quantity: q, Rate: r, Amount: q.Mul(r).RoundBank(0)}
}

func TestAggregate_PerCategoryPremium(t *testing.T) {
	executed := []core.LineItem{item(t, "10", "100")} // 1000
	extras := []core.LineItem{item(t, "2", "50")}     // 100
	policy := core.PremiumPolicy{Percent: dec(t, "10"), Direction: core.PremiumAdd}

	totals := core.Aggregate(executed, extras, policy, decimal.Zero)

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"work order subtotal", totals.WorkOrderSubtotal, "1000"},
		{"extra items subtotal", totals.ExtraItemsSubtotal, "100"},
		{"work order premium", totals.WorkOrderPremium, "100"},
		{"extra items premium", totals.ExtraItemsPremium, "10"},
		{"combined premium", totals.PremiumAmount, "110"},
		{"grand total", totals.GrandTotal, "1210"},
		{"payable", totals.PayableAmount, "1210"},
		{"extra items with premium", totals.ExtraItemsWithPremium, "110"},
	}
	for _, c := range checks {
		if c.got.String() != c.want {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
}

func TestAggregate_DeductionPremium(t *testing.T) {
	executed := []core.LineItem{item(t, "10", "100")}
	policy := core.PremiumPolicy{Percent: dec(t, "5"), Direction: core.PremiumDeduct}

	totals := core.Aggregate(executed, nil, policy, decimal.Zero)

	if totals.WorkOrderPremium.String() != "-50" {
		t.Errorf("deduction premium = %s, want -50", totals.WorkOrderPremium)
	}
	if totals.GrandTotal.String() != "950" {
		t.Errorf("grand total = %s, want 950", totals.GrandTotal)
	}
}

// Premium sign law: for a fixed base, the ADD and DEDUCT premiums differ by
// 2 × base × pct/100 within rounding.
func TestAggregate_PremiumSignLaw(t *testing.T) {
	executed := []core.LineItem{item(t, "7", "333")} // 2331
	pct := dec(t, "11.25")

	add := core.Aggregate(executed, nil, core.PremiumPolicy{Percent: pct, Direction: core.PremiumAdd}, decimal.Zero)
	ded := core.Aggregate(executed, nil, core.PremiumPolicy{Percent: pct, Direction: core.PremiumDeduct}, decimal.Zero)

	diff := add.PremiumAmount.Sub(ded.PremiumAmount)
	want := dec(t, "2331").Mul(pct).Div(dec(t, "100")).Mul(dec(t, "2"))
	if diff.Sub(want).Abs().GreaterThan(dec(t, "1")) {
		t.Errorf("ADD minus DEDUCT premium = %s, want %s within 1 rupee", diff, want)
	}
}

func TestAggregate_DividersExcluded(t *testing.T) {
	executed := []core.LineItem{
		item(t, "10", "100"),
		{Description: "Extra Items (With Premium)", IsDivider: true, Amount: dec(t, "9999")},
	}
	policy := core.PremiumPolicy{Percent: decimal.Zero, Direction: core.PremiumAdd}

	totals := core.Aggregate(executed, nil, policy, decimal.Zero)

	if totals.WorkOrderSubtotal.String() != "1000" {
		t.Errorf("divider leaked into subtotal: %s", totals.WorkOrderSubtotal)
	}
}

func TestAggregate_PriorBill(t *testing.T) {
	executed := []core.LineItem{item(t, "10", "100")}
	policy := core.PremiumPolicy{Percent: decimal.Zero, Direction: core.PremiumAdd}

	tests := []struct {
		name  string
		prior string
		want  string
	}{
		{"partial prior bill", "400", "600"},
		{"no prior bill", "0", "1000"},
		{"prior exceeds grand total", "1500", "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			totals := core.Aggregate(executed, nil, policy, dec(t, tc.prior))
			if totals.PayableAmount.String() != tc.want {
				t.Errorf("payable = %s, want %s", totals.PayableAmount, tc.want)
			}
		})
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	executed := []core.LineItem{item(t, "3.25", "147.50")}
	extras := []core.LineItem{item(t, "1.5", "99.99")}
	policy := core.PremiumPolicy{Percent: dec(t, "11.25"), Direction: core.PremiumAdd}

	a := core.Aggregate(executed, extras, policy, decimal.Zero)
	b := core.Aggregate(executed, extras, policy, decimal.Zero)

	if !a.GrandTotal.Equal(b.GrandTotal) || !a.PayableAmount.Equal(b.PayableAmount) || !a.PremiumAmount.Equal(b.PremiumAmount) {
		t.Errorf("repeated aggregation differs: %+v vs %+v", a, b)
	}
}
