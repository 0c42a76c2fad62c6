package core_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"bill-generator/internal/core"
)

func TestAnalyzeDeviation_ExcessRow(t *testing.T) {
	ordered := []core.LineItem{item(t, "10", "20")}
	executed := []core.LineItem{item(t, "15", "20")}
	policy := core.PremiumPolicy{Percent: decimal.Zero, Direction: core.PremiumAdd}

	items, summary := core.AnalyzeDeviation(ordered, executed, policy)

	if len(items) != 1 {
		t.Fatalf("got %d deviation items, want 1", len(items))
	}
	it := items[0]
	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"amount ordered", it.AmountOrdered, "200"},
		{"amount executed", it.AmountExecuted, "300"},
		{"excess qty", it.ExcessQty, "5"},
		{"excess amount", it.ExcessAmount, "100"},
		{"saving qty", it.SavingQty, "0"},
		{"saving amount", it.SavingAmount, "0"},
	}
	for _, c := range checks {
		if c.got.String() != c.want {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
	if summary.NetDifference.String() != "100" {
		t.Errorf("net difference = %s, want 100", summary.NetDifference)
	}
}

// Exactly one of excess/saving may be non-zero for a row; both are zero only
// on an exact match.
func TestAnalyzeDeviation_ExcessSavingExclusive(t *testing.T) {
	tests := []struct {
		name     string
		ordered  string
		executed string
	}{
		{"excess", "10", "15"},
		{"saving", "10", "4"},
		{"exact match", "10", "10"},
		{"zero ordered", "0", "3"},
		{"zero executed", "7", "0"},
	}
	policy := core.PremiumPolicy{Percent: decimal.Zero, Direction: core.PremiumAdd}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items, _ := core.AnalyzeDeviation(
				[]core.LineItem{item(t, tc.ordered, "20")},
				[]core.LineItem{item(t, tc.executed, "20")},
				policy,
			)
			it := items[0]
			if it.ExcessQty.IsPositive() && it.SavingQty.IsPositive() {
				t.Errorf("both excess (%s) and saving (%s) non-zero", it.ExcessQty, it.SavingQty)
			}
			wantExact := tc.ordered == tc.executed
			gotExact := it.ExcessQty.IsZero() && it.SavingQty.IsZero()
			if gotExact != wantExact {
				t.Errorf("exact match = %v, want %v (excess=%s saving=%s)", gotExact, wantExact, it.ExcessQty, it.SavingQty)
			}
		})
	}
}

func TestAnalyzeDeviation_FourWayPremium(t *testing.T) {
	ordered := []core.LineItem{
		item(t, "10", "100"), // 1000 ordered
		item(t, "10", "50"),  // 500 ordered
	}
	executed := []core.LineItem{
		item(t, "14", "100"), // 1400: excess 400
		item(t, "6", "50"),   // 300: saving 200
	}
	policy := core.PremiumPolicy{Percent: dec(t, "10"), Direction: core.PremiumAdd}

	_, s := core.AnalyzeDeviation(ordered, executed, policy)

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"ordered total", s.OrderedTotal, "1500"},
		{"executed total", s.ExecutedTotal, "1700"},
		{"total excess", s.TotalExcess, "400"},
		{"total saving", s.TotalSaving, "200"},
		{"ordered premium", s.OrderedPremium, "150"},
		{"executed premium", s.ExecutedPremium, "170"},
		{"excess premium", s.ExcessPremium, "40"},
		{"saving premium", s.SavingPremium, "20"},
		{"ordered with premium", s.OrderedWithPremium, "1650"},
		{"executed with premium", s.ExecutedWithPremium, "1870"},
		{"excess with premium", s.ExcessWithPremium, "440"},
		{"saving with premium", s.SavingWithPremium, "220"},
		{"net difference", s.NetDifference, "220"},
	}
	for _, c := range checks {
		if c.got.String() != c.want {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
}

func TestAnalyzeDeviation_ShortExecutedList(t *testing.T) {
	ordered := []core.LineItem{
		item(t, "5", "10"),
		item(t, "5", "10"),
	}
	executed := []core.LineItem{item(t, "5", "10")}
	policy := core.PremiumPolicy{Percent: decimal.Zero, Direction: core.PremiumAdd}

	items, summary := core.AnalyzeDeviation(ordered, executed, policy)

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if !items[1].QtyExecuted.IsZero() || items[1].SavingQty.String() != "5" {
		t.Errorf("row beyond executed extent: %+v", items[1])
	}
	if summary.ExecutedTotal.String() != "50" {
		t.Errorf("executed total = %s, want 50", summary.ExecutedTotal)
	}
}

func TestAnalyzeDeviation_SummaryPreservesRowRounding(t *testing.T) {
	// Row amounts are rounded before summing; the summary must equal the sum
	// of the printed row values, not the re-derived quantity product.
	ordered := []core.LineItem{
		item(t, "1.5", "33.33"), // 49.995 -> 50
		item(t, "1.5", "33.33"),
	}
	executed := []core.LineItem{
		item(t, "1.5", "33.33"),
		item(t, "1.5", "33.33"),
	}
	policy := core.PremiumPolicy{Percent: decimal.Zero, Direction: core.PremiumAdd}

	items, summary := core.AnalyzeDeviation(ordered, executed, policy)

	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.AmountOrdered)
	}
	if !summary.OrderedTotal.Equal(sum) {
		t.Errorf("summary ordered total %s != sum of row amounts %s", summary.OrderedTotal, sum)
	}
}
