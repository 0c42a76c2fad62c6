package render

import (
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"bill-generator/internal/core"
)

// NoteSheet renders the numbered audit observations and the signature block.
func NoteSheet(res *core.BillResult) ([]byte, error) {
	m := newPortrait()

	addTitle(m, "NOTE SHEET", res.Meta)

	metaRows := []struct {
		label string
		value string
	}{
		{"Agreement No.", res.Meta.AgreementNo},
		{"Date of Commencement", res.Meta.DateCommencement},
		{"Stipulated Date of Completion", res.Meta.DateCompletion},
		{"Actual Date of Completion", res.Meta.ActualCompletion},
		{"Payable Amount", money(res.Totals.PayableAmount)},
	}
	for _, r := range metaRows {
		if r.value == "" {
			continue
		}
		m.AddRows(
			row.New(5).Add(
				textCell(4, r.label),
				textCell(8, r.value),
			),
		)
	}
	m.AddRows(row.New(4))

	for _, note := range res.Notes.Notes {
		m.AddRows(
			row.New(7).Add(
				text.NewCol(12, note, props.Text{Size: 9, Align: align.Left}),
			),
		)
	}

	m.AddRows(row.New(10))
	for _, line := range res.Notes.Signature {
		m.AddRows(
			row.New(5).Add(
				text.NewCol(12, line, props.Text{Size: 9, Align: align.Right}),
			),
		)
	}

	return generate(m)
}
