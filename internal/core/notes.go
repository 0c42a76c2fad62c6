package core

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Approval thresholds from the departmental delegation of powers. Deviations
// pushing the executed amount past 105% of the work order, extra items past 5%
// of it, or delays past half the allowed time all escalate beyond this office.
const (
	deviationJurisdictionPct = 90
	deviationEscalationPct   = 105
	extraItemEscalationPct   = 5
)

const approvalAuthority = "the Superintending Engineer, PWD Electrical Circle, Udaipur"

// The signature block is fixed text, never numbered.
var noteSignature = []string{
	"                                Premlata Jain",
	"                               AAO- As Auditor",
}

const metaDateLayout = "02/01/2006"

// NotesInput carries the aggregated figures the note rules are evaluated
// against. The three dates are the raw dd/mm/yyyy header strings; the delay
// rules are skipped when any of them fails to parse.
type NotesInput struct {
	PayableAmount    decimal.Decimal
	WorkOrderAmount  decimal.Decimal
	ExtraItemAmount  decimal.Decimal
	DateCommencement string
	DateCompletion   string
	ActualCompletion string
}

// noteWriter numbers observations as they are appended.
type noteWriter struct {
	lines  []string
	serial int
}

func (w *noteWriter) add(format string, args ...any) {
	w.serial++
	w.lines = append(w.lines, fmt.Sprintf("%d. ", w.serial)+fmt.Sprintf(format, args...))
}

// GenerateNotes derives the note-sheet narrative from the aggregated totals.
// The rules run in fixed order and each appends at most one numbered line:
// completion percentage, deviation-approval observations, time-delay
// observations, the QC attachment, the extra-item approval observation, and a
// closing request, followed by the signature block.
func GenerateNotes(in NotesInput) NoteSheet {
	w := &noteWriter{}

	pct := percentOf(in.PayableAmount, in.WorkOrderAmount)
	w.add("The work has been completed %s%% of the Work Order Amount.", pct.StringFixed(2))

	switch {
	case pct.LessThan(decimal.NewFromInt(deviationJurisdictionPct)):
		w.add("The execution of work at final stage is less than 90%% of the Work Order Amount, the Requisite Deviation Statement is enclosed to observe check on unuseful expenditure. Approval of the Deviation is having jurisdiction under this office.")
	case pct.GreaterThan(percentHundred) && !pct.GreaterThan(decimal.NewFromInt(deviationEscalationPct)):
		w.add("Requisite Deviation Statement is enclosed. The Overall Excess is less than or equal to 5%% and is having approval jurisdiction under this office.")
	case pct.GreaterThan(decimal.NewFromInt(deviationEscalationPct)):
		w.add("Requisite Deviation Statement is enclosed. The Overall Excess is more than 5%% and Approval of the Deviation Case is required from %s.", approvalAuthority)
	}

	addDelayNotes(w, in)

	w.add("Quality Control (QC) test reports attached.")

	if in.ExtraItemAmount.GreaterThan(decimal.Zero) {
		extraPct := percentOf(in.ExtraItemAmount, in.WorkOrderAmount)
		if extraPct.GreaterThan(decimal.NewFromInt(extraItemEscalationPct)) {
			w.add("The amount of Extra items is Rs. %s which is %s%% of the Work Order Amount; exceed 5%%, require approval from %s.",
				in.ExtraItemAmount.StringFixed(0), extraPct.StringFixed(2), approvalAuthority)
		} else {
			w.add("The amount of Extra items is Rs. %s which is %s%% of the Work Order Amount; under 5%%, approval of the same is to be granted by this office.",
				in.ExtraItemAmount.StringFixed(0), extraPct.StringFixed(2))
		}
	}

	w.add("Please peruse above details for necessary decision-making.")

	return NoteSheet{Notes: w.lines, Signature: noteSignature}
}

// addDelayNotes emits the time-delay observations when all three contract
// dates parse. Finishing late by more than half the allowed time escalates
// the time-extension case.
func addDelayNotes(w *noteWriter, in NotesInput) {
	started, err1 := time.Parse(metaDateLayout, in.DateCommencement)
	due, err2 := time.Parse(metaDateLayout, in.DateCompletion)
	finished, err3 := time.Parse(metaDateLayout, in.ActualCompletion)
	if err1 != nil || err2 != nil || err3 != nil {
		return
	}

	delayDays := int(finished.Sub(due).Hours() / 24)
	if delayDays <= 0 {
		w.add("Work was completed in time.")
		return
	}

	timeAllowed := int(due.Sub(started).Hours() / 24)
	w.add("Time allowed for completion of the work was %d days. The Work was delayed by %d days.", timeAllowed, delayDays)
	if 2*delayDays > timeAllowed {
		w.add("Approval of the Time Extension Case is required from %s.", approvalAuthority)
	} else {
		w.add("Approval of the Time Extension Case is to be done by this office.")
	}
}

// percentOf returns part/whole × 100, or zero when whole is zero.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(percentHundred)
}
