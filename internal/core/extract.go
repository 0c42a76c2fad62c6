package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Sheet layouts are fixed configuration, not inference. The Work Order and
// Bill Quantity sheets share one layout; the Extra Items sheet carries a
// remark/BSR column before the description, which shifts unit and rate right.
type sheetLayout struct {
	headerRows int // metadata rows before the first line item
	serialCol  int
	descCol    int
	unitCol    int
	qtyCol     int
	rateCol    int
	remarkCol  int
}

var (
	workOrderLayout  = sheetLayout{headerRows: 21, serialCol: 0, descCol: 1, unitCol: 2, qtyCol: 3, rateCol: 4, remarkCol: 6}
	extraItemsLayout = sheetLayout{headerRows: 6, serialCol: 0, remarkCol: 1, descCol: 2, qtyCol: 3, unitCol: 4, rateCol: 5}
)

// Names used in diagnostics so a finding points back at the physical sheet.
const (
	SheetWorkOrder    = "Work Order"
	SheetBillQuantity = "Bill Quantity"
	SheetExtraItems   = "Extra Items"
)

// headerExtent is how many leading Work Order rows belong to the bill header
// block reproduced on the first page.
const (
	headerExtent = 19
	headerWidth  = 7
)

// Extraction is the typed view of the three raw tables. Ordered and Executed
// are aligned index-for-index: entry i of both describes the same physical
// work-order line, with quantity taken from the Work Order and Bill Quantity
// tables respectively.
type Extraction struct {
	Meta        WorkOrderMeta
	Header      [][]string
	Ordered     []LineItem
	Executed    []LineItem
	Extras      []LineItem
	Diagnostics []Diagnostic
}

// extractor accumulates non-fatal diagnostics while reading cells.
type extractor struct {
	diags []Diagnostic
}

func (e *extractor) number(sheet string, t Table, row, col int) decimal.Decimal {
	raw := t.Cell(row, col)
	v, ok := CoerceNumber(raw)
	if !ok {
		e.diags = append(e.diags, Diagnostic{
			Sheet:   sheet,
			Row:     row + 1,
			Col:     col + 1,
			Raw:     raw,
			Message: "unparseable number treated as zero",
		})
	}
	return v
}

// ExtractItems maps the three raw tables to typed line items.
//
// Blank-row policy: a work-order row with an empty description and no
// quantity or rate in either aligned table is skipped entirely (from both the
// ordered and executed sequences, preserving alignment) rather than emitted
// as a zero-amount item. The same rule applies to extra-item rows.
func ExtractItems(t Tables) Extraction {
	e := &extractor{}

	out := Extraction{
		Meta:   extractMeta(t.WorkOrder),
		Header: extractHeader(t.WorkOrder),
	}

	wo, bq := t.WorkOrder, t.BillQuantity
	for i := workOrderLayout.headerRows; i < wo.Rows(); i++ {
		desc := strings.TrimSpace(wo.Cell(i, workOrderLayout.descCol))
		if desc == "" &&
			wo.cellBlank(i, workOrderLayout.qtyCol) &&
			wo.cellBlank(i, workOrderLayout.rateCol) &&
			bq.cellBlank(i, workOrderLayout.qtyCol) {
			continue
		}

		rate := e.number(SheetWorkOrder, wo, i, workOrderLayout.rateCol)
		qtyOrdered := e.number(SheetWorkOrder, wo, i, workOrderLayout.qtyCol)
		qtyExecuted := e.number(SheetBillQuantity, bq, i, workOrderLayout.qtyCol)

		base := LineItem{
			SerialNo:    strings.TrimSpace(wo.Cell(i, workOrderLayout.serialCol)),
			Description: desc,
			Unit:        strings.TrimSpace(wo.Cell(i, workOrderLayout.unitCol)),
			Rate:        rate,
			Remark:      strings.TrimSpace(wo.Cell(i, workOrderLayout.remarkCol)),
		}

		ordered := base
		ordered.Quantity = qtyOrdered
		ordered.Amount = lineAmount(qtyOrdered, rate)

		executed := base
		executed.Quantity = qtyExecuted
		executed.Amount = lineAmount(qtyExecuted, rate)

		out.Ordered = append(out.Ordered, ordered)
		out.Executed = append(out.Executed, executed)
	}

	ex := t.ExtraItems
	for i := extraItemsLayout.headerRows; i < ex.Rows(); i++ {
		desc := strings.TrimSpace(ex.Cell(i, extraItemsLayout.descCol))
		if desc == "" &&
			ex.cellBlank(i, extraItemsLayout.qtyCol) &&
			ex.cellBlank(i, extraItemsLayout.rateCol) {
			continue
		}

		qty := e.number(SheetExtraItems, ex, i, extraItemsLayout.qtyCol)
		rate := e.number(SheetExtraItems, ex, i, extraItemsLayout.rateCol)

		out.Extras = append(out.Extras, LineItem{
			SerialNo:    strings.TrimSpace(ex.Cell(i, extraItemsLayout.serialCol)),
			Description: desc,
			Unit:        strings.TrimSpace(ex.Cell(i, extraItemsLayout.unitCol)),
			Quantity:    qty,
			Rate:        rate,
			Amount:      lineAmount(qty, rate),
			Remark:      strings.TrimSpace(ex.Cell(i, extraItemsLayout.remarkCol)),
		})
	}

	out.Diagnostics = e.diags
	return out
}

// lineAmount finalizes a line total: zero if either operand is zero, else the
// banker's-rounded product.
func lineAmount(qty, rate decimal.Decimal) decimal.Decimal {
	if qty.IsZero() || rate.IsZero() {
		return decimal.Zero
	}
	return roundRupees(qty.Mul(rate))
}

// extractMeta reads the fixed contract header cells at the top of the Work
// Order sheet (one field per row, value in the second column).
func extractMeta(wo Table) WorkOrderMeta {
	return WorkOrderMeta{
		AgreementNo:      strings.TrimSpace(wo.Cell(0, 1)),
		NameOfWork:       strings.TrimSpace(wo.Cell(1, 1)),
		NameOfFirm:       strings.TrimSpace(wo.Cell(2, 1)),
		DateCommencement: strings.TrimSpace(wo.Cell(3, 1)),
		DateCompletion:   strings.TrimSpace(wo.Cell(4, 1)),
		ActualCompletion: strings.TrimSpace(wo.Cell(5, 1)),
	}
}

// extractHeader copies the header block reproduced verbatim on the first page.
func extractHeader(wo Table) [][]string {
	rows := headerExtent
	if wo.Rows() < rows {
		rows = wo.Rows()
	}
	header := make([][]string, rows)
	for i := 0; i < rows; i++ {
		row := make([]string, headerWidth)
		for j := 0; j < headerWidth; j++ {
			row[j] = wo.Cell(i, j)
		}
		header[i] = row
	}
	return header
}
