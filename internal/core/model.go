package core

import "github.com/shopspring/decimal"

type PremiumDirection string

const (
	PremiumAdd    PremiumDirection = "add"
	PremiumDeduct PremiumDirection = "deduct"
)

// PremiumPolicy is the contractual percentage adjustment fixed at tender time.
// Percent is the human-readable figure (11.25 means 11.25%), applied as
// base × Percent/100, signed by Direction.
type PremiumPolicy struct {
	Percent   decimal.Decimal  `json:"percent"`
	Direction PremiumDirection `json:"direction"`
}

// LineItem is one billable row from the Work Order or Extra Items table.
// Amount is always the banker's-rounded product of Quantity and Rate, or zero
// when either operand is zero. Divider rows group the display and never
// participate in sums.
type LineItem struct {
	SerialNo    string          `json:"serial_no"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	Remark      string          `json:"remark"`
	IsDivider   bool            `json:"is_divider"`
}

// DeviationLineItem compares one work-order row against its executed
// counterpart. At most one of ExcessQty/SavingQty is non-zero; both are zero
// when ordered and executed quantities match exactly.
type DeviationLineItem struct {
	SerialNo       string          `json:"serial_no"`
	Description    string          `json:"description"`
	Unit           string          `json:"unit"`
	QtyOrdered     decimal.Decimal `json:"qty_ordered"`
	QtyExecuted    decimal.Decimal `json:"qty_executed"`
	Rate           decimal.Decimal `json:"rate"`
	AmountOrdered  decimal.Decimal `json:"amount_ordered"`
	AmountExecuted decimal.Decimal `json:"amount_executed"`
	ExcessQty      decimal.Decimal `json:"excess_qty"`
	ExcessAmount   decimal.Decimal `json:"excess_amount"`
	SavingQty      decimal.Decimal `json:"saving_qty"`
	SavingAmount   decimal.Decimal `json:"saving_amount"`
	Remark         string          `json:"remark"`
}

// BillTotals is the aggregate of one bill computation. Premium is computed
// independently per category (work order, extra items) so each category's
// premium-inclusive total stays auditable on its own; PremiumAmount is the sum
// of the two category premiums.
type BillTotals struct {
	WorkOrderSubtotal     decimal.Decimal `json:"work_order_subtotal"`
	ExtraItemsSubtotal    decimal.Decimal `json:"extra_items_subtotal"`
	WorkOrderPremium      decimal.Decimal `json:"work_order_premium"`
	ExtraItemsPremium     decimal.Decimal `json:"extra_items_premium"`
	PremiumAmount         decimal.Decimal `json:"premium_amount"`
	GrandTotal            decimal.Decimal `json:"grand_total"`
	PayableAmount         decimal.Decimal `json:"payable_amount"`
	ExtraItemsWithPremium decimal.Decimal `json:"extra_items_with_premium"`
}

// DeviationSummary rolls the per-row deviation figures up into the statement
// footer. Premium is applied independently to all four bases — ordered,
// executed, excess, saving — because the statement must show the premium
// contribution under each lens. NetDifference is always computed from the
// premium-inclusive executed and ordered totals.
type DeviationSummary struct {
	OrderedTotal        decimal.Decimal `json:"ordered_total"`
	ExecutedTotal       decimal.Decimal `json:"executed_total"`
	TotalExcess         decimal.Decimal `json:"total_excess"`
	TotalSaving         decimal.Decimal `json:"total_saving"`
	OrderedPremium      decimal.Decimal `json:"ordered_premium"`
	ExecutedPremium     decimal.Decimal `json:"executed_premium"`
	ExcessPremium       decimal.Decimal `json:"excess_premium"`
	SavingPremium       decimal.Decimal `json:"saving_premium"`
	OrderedWithPremium  decimal.Decimal `json:"ordered_with_premium"`
	ExecutedWithPremium decimal.Decimal `json:"executed_with_premium"`
	ExcessWithPremium   decimal.Decimal `json:"excess_with_premium"`
	SavingWithPremium   decimal.Decimal `json:"saving_with_premium"`
	NetDifference       decimal.Decimal `json:"net_difference"`
}

// NoteSheet is the derived audit narrative: numbered observations followed by
// a fixed, unnumbered signature block.
type NoteSheet struct {
	Notes     []string `json:"notes"`
	Signature []string `json:"signature"`
}

// WorkOrderMeta holds the contract header fields read from the fixed cells at
// the top of the Work Order sheet. Dates are kept as the raw dd/mm/yyyy
// strings the sheet carries; consumers that need date arithmetic parse them
// and degrade gracefully when they cannot.
type WorkOrderMeta struct {
	AgreementNo      string `json:"agreement_no"`
	NameOfWork       string `json:"name_of_work"`
	NameOfFirm       string `json:"name_of_firm"`
	DateCommencement string `json:"date_commencement"`
	DateCompletion   string `json:"date_completion"`
	ActualCompletion string `json:"actual_completion"`
}

// Diagnostic is a non-fatal data-quality finding recorded during extraction.
// Row and Col are 1-based, matching what a person sees in the spreadsheet.
type Diagnostic struct {
	Sheet   string `json:"sheet"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Raw     string `json:"raw"`
	Message string `json:"message"`
}

// BillResult is the immutable snapshot handed to rendering and persistence.
// It holds no references back into the input tables.
type BillResult struct {
	Meta           WorkOrderMeta       `json:"meta"`
	Header         [][]string          `json:"header"`
	Items          []LineItem          `json:"items"`
	Totals         BillTotals          `json:"totals"`
	Deviation      []DeviationLineItem `json:"deviation"`
	Summary        DeviationSummary    `json:"summary"`
	Notes          NoteSheet           `json:"notes"`
	PayableInWords string              `json:"payable_in_words"`
	Diagnostics    []Diagnostic        `json:"diagnostics,omitempty"`
}
