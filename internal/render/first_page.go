package render

import (
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	mcore "github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"bill-generator/internal/core"
)

// FirstPage renders the tabular bill: the workbook header block, the
// divider-delimited item table, and the premium and payable totals.
func FirstPage(res *core.BillResult) ([]byte, error) {
	m := newPortrait()

	addTitle(m, "FIRST & FINAL BILL", res.Meta)
	addHeaderBlock(m, res.Header)
	addItemsTable(m, res.Items)
	addBillTotals(m, res.Totals)

	return generate(m)
}

// addHeaderBlock reproduces the non-empty workbook header lines verbatim.
func addHeaderBlock(m mcore.Maroto, header [][]string) {
	for _, cells := range header {
		line := strings.TrimSpace(strings.Join(cells, "  "))
		if line == "" {
			continue
		}
		m.AddRows(
			row.New(4).Add(
				text.NewCol(12, line, props.Text{Size: 8, Align: align.Left}),
			),
		)
	}
	m.AddRows(row.New(3))
}

func addItemsTable(m mcore.Maroto, items []core.LineItem) {
	m.AddRows(
		row.New(7).Add(
			headerCell(1, "S.No."),
			headerCell(5, "Description"),
			headerCell(1, "Unit"),
			headerCell(1, "Qty"),
			headerCell(2, "Rate"),
			headerCell(2, "Amount"),
		),
	)

	for _, it := range items {
		if it.IsDivider {
			m.AddRows(
				row.New(6).Add(
					text.NewCol(12, it.Description, props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Center}),
				),
			)
			continue
		}
		m.AddRows(
			row.New(5).Add(
				textCell(1, it.SerialNo),
				textCell(5, it.Description),
				textCell(1, it.Unit),
				numCell(1, qty(it.Quantity)),
				numCell(2, qty(it.Rate)),
				numCell(2, money(it.Amount)),
			),
		)
	}
}

func addBillTotals(m mcore.Maroto, t core.BillTotals) {
	m.AddRows(row.New(3))

	rows := []struct {
		label string
		value string
	}{
		{"Work Order Items Total", money(t.WorkOrderSubtotal)},
		{"Tender Premium on Work Order Items", money(t.WorkOrderPremium)},
		{"Extra Items Total", money(t.ExtraItemsSubtotal)},
		{"Tender Premium on Extra Items", money(t.ExtraItemsPremium)},
		{"Grand Total", money(t.GrandTotal)},
		{"Payable Amount", money(t.PayableAmount)},
	}
	for _, r := range rows {
		m.AddRows(
			row.New(5).Add(
				textCell(8, r.label),
				boldCell(4, r.value),
			),
		)
	}
}
