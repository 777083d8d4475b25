// Package workflow derives the pipeline status of a purchase from its
// milestone dates. The status is purely positional: whichever milestone
// furthest along the canonical sequence carries a date wins, regardless of
// what the dates themselves say.
package workflow

import (
	"fmt"
	"strings"
	"time"
)

// Stage is one named point in the procurement workflow, ordered by its
// canonical index (RFQ Sent first, Sent for Receipting last).
type Stage int

const (
	StageRFQSent Stage = iota
	StageQuoteReceived
	StageRequisitionRequested
	StageOrderSent
	StageDelivered
	StageInvoiceSigned
	StageSentForReceipting
)

// StatusNotStarted is returned when no milestone date is present.
const StatusNotStarted = "Not Started"

// DateLayout is the display format every milestone date is stored in,
// e.g. "24 August 2025". Chosen over ISO so the persisted records read
// naturally in reports and exported PDFs.
const DateLayout = "2 January 2006"

var stageLabels = [...]string{
	"RFQ Sent",
	"Quote Received",
	"Requisition Requested",
	"Order Sent",
	"Delivered",
	"Invoice Signed",
	"Sent for Receipting",
}

// Stages returns all stages in canonical order.
func Stages() []Stage {
	out := make([]Stage, len(stageLabels))
	for i := range stageLabels {
		out[i] = Stage(i)
	}
	return out
}

// Label returns the human-readable status label for the stage.
func (s Stage) Label() string {
	if s < 0 || int(s) >= len(stageLabels) {
		return ""
	}
	return stageLabels[s]
}

// ParseStage resolves a label back to its stage. Matching is
// case-insensitive on the exact label text.
func ParseStage(label string) (Stage, error) {
	for i, l := range stageLabels {
		if strings.EqualFold(strings.TrimSpace(label), l) {
			return Stage(i), nil
		}
	}
	return 0, fmt.Errorf("workflow: unknown stage %q", label)
}

// Milestones maps each stage to its recorded date string. A missing key or
// a blank value both mean the stage has not been reached.
type Milestones map[Stage]string

// DeriveStatus folds over the milestones in canonical order and returns the
// label of the last stage that carries a date, or StatusNotStarted when none
// do. Dates are never parsed here — an out-of-order calendar sequence does
// not change the outcome.
func DeriveStatus(m Milestones) string {
	status := StatusNotStarted
	for _, s := range Stages() {
		if strings.TrimSpace(m[s]) != "" {
			status = s.Label()
		}
	}
	return status
}

// FormatDate renders t in the stored milestone format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a stored milestone date ("2 January 2006"). Used when a
// report needs the calendar value back out of a record.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("workflow: parse date %q: %w", s, err)
	}
	return t, nil
}
