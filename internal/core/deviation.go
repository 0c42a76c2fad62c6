package core

import "github.com/shopspring/decimal"

// AnalyzeDeviation compares every ordered work-order line against its
// executed counterpart, classifies the difference as excess or saving, and
// rolls the monetized figures up into a DeviationSummary.
//
// ordered and executed are aligned by index (the extraction invariant); when
// executed is shorter, the missing rows count as zero executed quantity.
// Summary totals are plain sums of the per-row monetized values, preserving
// row-level rounding. Premium is applied independently to all four bases and
// the net difference comes from the premium-inclusive executed and ordered
// grand totals.
func AnalyzeDeviation(ordered, executed []LineItem, policy PremiumPolicy) ([]DeviationLineItem, DeviationSummary) {
	items := make([]DeviationLineItem, 0, len(ordered))

	orderedTotal := decimal.Zero
	executedTotal := decimal.Zero
	totalExcess := decimal.Zero
	totalSaving := decimal.Zero

	for i, ord := range ordered {
		if ord.IsDivider {
			continue
		}

		qtyExec := decimal.Zero
		if i < len(executed) {
			qtyExec = executed[i].Quantity
		}

		item := DeviationLineItem{
			SerialNo:       ord.SerialNo,
			Description:    ord.Description,
			Unit:           ord.Unit,
			QtyOrdered:     ord.Quantity,
			QtyExecuted:    qtyExec,
			Rate:           ord.Rate,
			AmountOrdered:  lineAmount(ord.Quantity, ord.Rate),
			AmountExecuted: lineAmount(qtyExec, ord.Rate),
			Remark:         ord.Remark,
		}

		switch {
		case qtyExec.GreaterThan(ord.Quantity):
			item.ExcessQty = qtyExec.Sub(ord.Quantity)
			item.ExcessAmount = lineAmount(item.ExcessQty, ord.Rate)
		case ord.Quantity.GreaterThan(qtyExec):
			item.SavingQty = ord.Quantity.Sub(qtyExec)
			item.SavingAmount = lineAmount(item.SavingQty, ord.Rate)
		}

		orderedTotal = orderedTotal.Add(item.AmountOrdered)
		executedTotal = executedTotal.Add(item.AmountExecuted)
		totalExcess = totalExcess.Add(item.ExcessAmount)
		totalSaving = totalSaving.Add(item.SavingAmount)

		items = append(items, item)
	}

	summary := DeviationSummary{
		OrderedTotal:    orderedTotal,
		ExecutedTotal:   executedTotal,
		TotalExcess:     totalExcess,
		TotalSaving:     totalSaving,
		OrderedPremium:  policy.Apply(orderedTotal),
		ExecutedPremium: policy.Apply(executedTotal),
		ExcessPremium:   policy.Apply(totalExcess),
		SavingPremium:   policy.Apply(totalSaving),
	}
	summary.OrderedWithPremium = orderedTotal.Add(summary.OrderedPremium)
	summary.ExecutedWithPremium = executedTotal.Add(summary.ExecutedPremium)
	summary.ExcessWithPremium = totalExcess.Add(summary.ExcessPremium)
	summary.SavingWithPremium = totalSaving.Add(summary.SavingPremium)
	summary.NetDifference = summary.ExecutedWithPremium.Sub(summary.OrderedWithPremium)

	return items, summary
}
