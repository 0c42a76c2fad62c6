package render

import (
	"github.com/johnfercher/maroto/v2/pkg/components/row"

	"bill-generator/internal/core"
)

// ExtraItems renders the standalone extra-items sheet: the items after the
// divider in the combined sequence, with the premium-inclusive total.
func ExtraItems(res *core.BillResult) ([]byte, error) {
	m := newPortrait()

	addTitle(m, "EXTRA ITEMS", res.Meta)

	m.AddRows(
		row.New(7).Add(
			headerCell(1, "S.No."),
			headerCell(2, "Remark"),
			headerCell(4, "Description"),
			headerCell(1, "Unit"),
			headerCell(1, "Qty"),
			headerCell(1, "Rate"),
			headerCell(2, "Amount"),
		),
	)

	for _, it := range extraItemsOf(res.Items) {
		m.AddRows(
			row.New(5).Add(
				textCell(1, it.SerialNo),
				textCell(2, it.Remark),
				textCell(4, it.Description),
				textCell(1, it.Unit),
				numCell(1, qty(it.Quantity)),
				numCell(1, qty(it.Rate)),
				numCell(2, money(it.Amount)),
			),
		)
	}

	m.AddRows(row.New(3))
	m.AddRows(
		row.New(6).Add(
			textCell(8, "Extra Items Total (Subtotal)"),
			boldCell(4, money(res.Totals.ExtraItemsSubtotal)),
		),
		row.New(6).Add(
			textCell(8, "Extra Items Total (With Premium)"),
			boldCell(4, money(res.Totals.ExtraItemsWithPremium)),
		),
	)

	return generate(m)
}

// extraItemsOf returns the non-divider items after the divider row.
func extraItemsOf(items []core.LineItem) []core.LineItem {
	var out []core.LineItem
	seen := false
	for _, it := range items {
		if it.IsDivider {
			seen = true
			continue
		}
		if seen {
			out = append(out, it)
		}
	}
	return out
}
