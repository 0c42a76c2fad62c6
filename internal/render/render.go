// Package render maps a computed bill result onto the departmental output
// documents. It consumes the result snapshot read-only; nothing here feeds
// back into the computation.
package render

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	mcore "github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"bill-generator/internal/core"
)

// Document is one rendered artifact, ready for download or packaging.
type Document struct {
	Name  string
	Bytes []byte
}

// AllDocuments renders the complete output set for one bill.
func AllDocuments(res *core.BillResult) ([]Document, error) {
	renderers := []struct {
		name string
		fn   func(*core.BillResult) ([]byte, error)
	}{
		{"First_Page.pdf", FirstPage},
		{"Certificate_II.pdf", CertificateII},
		{"Certificate_III.pdf", CertificateIII},
		{"Deviation_Statement.pdf", DeviationStatement},
		{"Extra_Items.pdf", ExtraItems},
		{"Note_Sheet.pdf", NoteSheet},
	}

	docs := make([]Document, 0, len(renderers))
	for _, r := range renderers {
		b, err := r.fn(res)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", r.name, err)
		}
		docs = append(docs, Document{Name: r.name, Bytes: b})
	}
	return docs, nil
}

// newPortrait and newLandscape build A4 documents with the uniform 10 mm
// margins all department documents use.
func newPortrait() mcore.Maroto {
	return maroto.New(pageConfig(orientation.Vertical))
}

func newLandscape() mcore.Maroto {
	return maroto.New(pageConfig(orientation.Horizontal))
}

func pageConfig(o orientation.Type) *entity.Config {
	return config.NewBuilder().
		WithOrientation(o).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithBottomMargin(10).
		Build()
}

func generate(m mcore.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

// addTitle renders the centered document caption with the work and firm names
// beneath it.
func addTitle(m mcore.Maroto, title string, meta core.WorkOrderMeta) {
	m.AddRows(
		row.New(8).Add(
			text.NewCol(12, title, props.Text{Size: 13, Style: fontstyle.Bold, Align: align.Center}),
		),
	)
	if meta.NameOfWork != "" {
		m.AddRows(
			row.New(6).Add(
				text.NewCol(12, "Name of Work: "+meta.NameOfWork, props.Text{Size: 9, Align: align.Center}),
			),
		)
	}
	if meta.NameOfFirm != "" {
		m.AddRows(
			row.New(5).Add(
				text.NewCol(12, "Contractor: "+meta.NameOfFirm, props.Text{Size: 9, Align: align.Center}),
			),
		)
	}
	if meta.AgreementNo != "" {
		m.AddRows(
			row.New(5).Add(
				text.NewCol(12, "Agreement No.: "+meta.AgreementNo, props.Text{Size: 9, Align: align.Center}),
			),
		)
	}
	m.AddRows(row.New(3))
}

func headerCell(size int, label string) mcore.Col {
	return text.NewCol(size, label, props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center})
}

func textCell(size int, value string) mcore.Col {
	return text.NewCol(size, value, props.Text{Size: 8, Align: align.Left})
}

func numCell(size int, value string) mcore.Col {
	return text.NewCol(size, value, props.Text{Size: 8, Align: align.Right})
}

func boldCell(size int, value string) mcore.Col {
	return text.NewCol(size, value, props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})
}

// money renders a whole-rupee amount; blank for zero on display-only columns
// would hide real zeros, so it always prints.
func money(d decimal.Decimal) string {
	return d.StringFixed(0)
}

// qty renders a quantity without trailing decimal noise.
func qty(d decimal.Decimal) string {
	return d.String()
}
