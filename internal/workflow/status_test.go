package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatusEmpty(t *testing.T) {
	assert.Equal(t, StatusNotStarted, DeriveStatus(Milestones{}))
	assert.Equal(t, StatusNotStarted, DeriveStatus(nil))
}

func TestDeriveStatusSingleStage(t *testing.T) {
	m := Milestones{StageRFQSent: "1 January 2025"}
	assert.Equal(t, "RFQ Sent", DeriveStatus(m))
}

func TestDeriveStatusSkipsGaps(t *testing.T) {
	// Delivered present without the intermediate stages still wins —
	// only the highest canonical index matters.
	m := Milestones{
		StageRFQSent:   "1 January 2025",
		StageDelivered: "10 January 2025",
	}
	assert.Equal(t, "Delivered", DeriveStatus(m))
}

func TestDeriveStatusIgnoresCalendarOrder(t *testing.T) {
	// Delivered dated before Order Sent — positional presence decides.
	m := Milestones{
		StageOrderSent: "20 March 2025",
		StageDelivered: "1 February 2025",
	}
	assert.Equal(t, "Delivered", DeriveStatus(m))
}

func TestDeriveStatusBlankEqualsAbsent(t *testing.T) {
	m := Milestones{
		StageRFQSent:       "1 January 2025",
		StageQuoteReceived: "   ",
		StageOrderSent:     "",
	}
	assert.Equal(t, "RFQ Sent", DeriveStatus(m))
}

func TestDeriveStatusAllStages(t *testing.T) {
	m := Milestones{}
	for _, s := range Stages() {
		m[s] = "5 May 2025"
	}
	assert.Equal(t, "Sent for Receipting", DeriveStatus(m))
}

func TestDeriveStatusEveryPrefix(t *testing.T) {
	// Filling stages one by one always yields the label just filled.
	m := Milestones{}
	for _, s := range Stages() {
		m[s] = "5 May 2025"
		assert.Equal(t, s.Label(), DeriveStatus(m))
	}
}

func TestParseStageRoundTrip(t *testing.T) {
	for _, s := range Stages() {
		got, err := ParseStage(s.Label())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseStage("Shipped")
	assert.Error(t, err)
}

func TestDateRoundTrip(t *testing.T) {
	d := time.Date(2025, time.August, 24, 0, 0, 0, 0, time.UTC)
	s := FormatDate(d)
	assert.Equal(t, "24 August 2025", s)

	back, err := ParseDate(s)
	require.NoError(t, err)
	assert.True(t, d.Equal(back))
}

func TestParseDateRejectsNumeric(t *testing.T) {
	_, err := ParseDate("2025-08-24")
	assert.Error(t, err)
}
