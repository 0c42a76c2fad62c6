package render

import (
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	mcore "github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"bill-generator/internal/core"
)

// DeviationStatement renders the landscape ordered-vs-executed comparison
// with the four premium-adjusted summary columns and the net difference.
func DeviationStatement(res *core.BillResult) ([]byte, error) {
	m := newLandscape()

	addTitle(m, "DEVIATION STATEMENT", res.Meta)
	addDeviationTable(m, res.Deviation)
	addDeviationSummary(m, res.Summary)

	return generate(m)
}

func addDeviationTable(m mcore.Maroto, items []core.DeviationLineItem) {
	m.AddRows(
		row.New(7).Add(
			headerCell(1, "S.No."),
			headerCell(2, "Description"),
			headerCell(1, "Unit"),
			headerCell(1, "WO Qty"),
			headerCell(1, "Rate"),
			headerCell(1, "WO Amt"),
			headerCell(1, "Exec Qty"),
			headerCell(1, "Exec Amt"),
			headerCell(1, "Excess Qty"),
			headerCell(1, "Excess Amt"),
			headerCell(1, "Saving Amt"),
		),
	)

	for _, it := range items {
		m.AddRows(
			row.New(5).Add(
				textCell(1, it.SerialNo),
				textCell(2, it.Description),
				textCell(1, it.Unit),
				numCell(1, qty(it.QtyOrdered)),
				numCell(1, qty(it.Rate)),
				numCell(1, money(it.AmountOrdered)),
				numCell(1, qty(it.QtyExecuted)),
				numCell(1, money(it.AmountExecuted)),
				numCell(1, qty(it.ExcessQty)),
				numCell(1, money(it.ExcessAmount)),
				numCell(1, money(it.SavingAmount)),
			),
		)
	}
}

func addDeviationSummary(m mcore.Maroto, s core.DeviationSummary) {
	m.AddRows(row.New(3))

	rows := []struct {
		label string
		base  string
		prem  string
		total string
	}{
		{"Work Order", money(s.OrderedTotal), money(s.OrderedPremium), money(s.OrderedWithPremium)},
		{"Executed", money(s.ExecutedTotal), money(s.ExecutedPremium), money(s.ExecutedWithPremium)},
		{"Overall Excess", money(s.TotalExcess), money(s.ExcessPremium), money(s.ExcessWithPremium)},
		{"Overall Saving", money(s.TotalSaving), money(s.SavingPremium), money(s.SavingWithPremium)},
	}

	m.AddRows(
		row.New(6).Add(
			headerCell(3, ""),
			headerCell(3, "Amount"),
			headerCell(3, "Tender Premium"),
			headerCell(3, "Grand Total"),
		),
	)
	for _, r := range rows {
		m.AddRows(
			row.New(5).Add(
				textCell(3, r.label),
				numCell(3, r.base),
				numCell(3, r.prem),
				boldCell(3, r.total),
			),
		)
	}

	m.AddRows(
		row.New(7).Add(
			text.NewCol(9, "Net Difference (Executed − Work Order, premium inclusive)", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}),
			boldCell(3, money(s.NetDifference)),
		),
	)
}
