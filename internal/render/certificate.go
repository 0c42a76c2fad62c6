package render

import (
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	mcore "github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"bill-generator/internal/core"
)

// CertificateII renders the measurement certificate over the executed work.
func CertificateII(res *core.BillResult) ([]byte, error) {
	m := newPortrait()

	addTitle(m, "CERTIFICATE II", res.Meta)
	addParagraphs(m,
		"Certified that the work recorded in this bill has been actually measured and the measurements are recorded in the Measurement Book.",
		"Certified that the quantities billed do not exceed the quantities actually executed at site.",
		fmt.Sprintf("Total value of work done (including tender premium): Rs. %s.", money(res.Totals.GrandTotal)),
	)

	return generate(m)
}

// CertificateIII renders the payment certificate carrying the payable amount
// in figures and words.
func CertificateIII(res *core.BillResult) ([]byte, error) {
	m := newPortrait()

	addTitle(m, "CERTIFICATE III", res.Meta)
	addParagraphs(m,
		fmt.Sprintf("Certified that a sum of Rs. %s (%s) is payable to %s against this bill.",
			money(res.Totals.PayableAmount), res.PayableInWords, firmOrContractor(res.Meta)),
		"Certified that the payment has been verified against the work order, the executed quantities and the applicable tender premium.",
	)

	return generate(m)
}

func firmOrContractor(meta core.WorkOrderMeta) string {
	if meta.NameOfFirm != "" {
		return meta.NameOfFirm
	}
	return "the contractor"
}

func addParagraphs(m mcore.Maroto, paragraphs ...string) {
	for i, p := range paragraphs {
		m.AddRows(
			row.New(12).Add(
				text.NewCol(12, fmt.Sprintf("%d. %s", i+1, p), props.Text{Size: 10, Align: align.Left}),
			),
		)
	}
}
