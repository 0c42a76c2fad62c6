package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Divider caption separating the work-order block from the extra-items block
// on the first page.
const extraItemsDivider = "Extra Items (With Premium)"

// ComputeBill runs the whole pipeline over one set of input tables:
// extraction, aggregation, deviation analysis, note generation and the
// payable-in-words rendering. It is a pure function of its inputs and safe to
// call concurrently for independent bills.
//
// Data-quality problems never fail the computation; they degrade to zero
// values and surface in BillResult.Diagnostics. Only an invalid policy is an
// error, because billing without a validated premium would be silently wrong.
//
// priorBill is the amount paid on the previous running bill; pass
// decimal.Zero for a first and final bill.
func ComputeBill(t Tables, policy PremiumPolicy, priorBill decimal.Decimal) (*BillResult, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("premium policy: %w", err)
	}

	ex := ExtractItems(t)
	totals := Aggregate(ex.Executed, ex.Extras, policy, priorBill)
	devItems, summary := AnalyzeDeviation(ex.Ordered, ex.Executed, policy)

	notes := GenerateNotes(NotesInput{
		PayableAmount:    totals.PayableAmount,
		WorkOrderAmount:  summary.OrderedTotal,
		ExtraItemAmount:  totals.ExtraItemsWithPremium,
		DateCommencement: ex.Meta.DateCommencement,
		DateCompletion:   ex.Meta.DateCompletion,
		ActualCompletion: ex.Meta.ActualCompletion,
	})

	return &BillResult{
		Meta:           ex.Meta,
		Header:         ex.Header,
		Items:          combinedItems(ex.Executed, ex.Extras),
		Totals:         totals,
		Deviation:      devItems,
		Summary:        summary,
		Notes:          notes,
		PayableInWords: AmountInWords(totals.PayableAmount),
		Diagnostics:    ex.Diagnostics,
	}, nil
}

// combinedItems builds the divider-delimited first-page sequence: executed
// work-order items, then the extra-items divider, then the extra items.
func combinedItems(executed, extras []LineItem) []LineItem {
	items := make([]LineItem, 0, len(executed)+len(extras)+1)
	items = append(items, executed...)
	items = append(items, LineItem{Description: extraItemsDivider, IsDivider: true})
	items = append(items, extras...)
	return items
}
