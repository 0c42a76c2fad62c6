package core

import "github.com/shopspring/decimal"

// Aggregate sums executed work-order items and extra items into category
// totals and applies the premium policy.
//
// Premium policy choice: premium is computed independently over each category
// and the grand total is the sum of the two premium-inclusive category
// totals. This keeps the extra-items figure quoted on the note sheet
// independently auditable. Dividers never participate in sums.
//
// priorBill is the amount already paid on the previous running bill; the
// payable amount is floored at zero so an over-paid prior bill can never
// produce a negative demand. Callers with no prior bill pass decimal.Zero.
//
// The policy must have been validated; Aggregate itself is pure and total.
func Aggregate(executed, extras []LineItem, policy PremiumPolicy, priorBill decimal.Decimal) BillTotals {
	woSubtotal := sumAmounts(executed)
	exSubtotal := sumAmounts(extras)

	woPremium := policy.Apply(woSubtotal)
	exPremium := policy.Apply(exSubtotal)

	grand := woSubtotal.Add(woPremium).Add(exSubtotal).Add(exPremium)

	payable := grand.Sub(roundRupees(priorBill))
	if payable.IsNegative() {
		payable = decimal.Zero
	}

	return BillTotals{
		WorkOrderSubtotal:     woSubtotal,
		ExtraItemsSubtotal:    exSubtotal,
		WorkOrderPremium:      woPremium,
		ExtraItemsPremium:     exPremium,
		PremiumAmount:         woPremium.Add(exPremium),
		GrandTotal:            grand,
		PayableAmount:         payable,
		ExtraItemsWithPremium: exSubtotal.Add(exPremium),
	}
}

// sumAmounts adds the already-rounded line amounts of non-divider items, so
// the subtotal equals the sum of the figures printed on the bill.
func sumAmounts(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if it.IsDivider {
			continue
		}
		total = total.Add(it.Amount)
	}
	return total
}
