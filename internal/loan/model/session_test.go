package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestApplyIntentFillsUnsetFields(t *testing.T) {
	s := NewSessionState()

	s.ApplyIntent(LoanIntent{Amount: fptr(300000)})
	require.True(t, s.LoanIntent.HasAmount())
	assert.Equal(t, float64(300000), *s.LoanIntent.Amount)

	s.ApplyIntent(LoanIntent{TenureMonths: iptr(24), Purpose: "Wedding"})
	assert.Equal(t, 24, *s.LoanIntent.TenureMonths)
	assert.Equal(t, "Wedding", s.LoanIntent.Purpose)
}

func TestApplyIntentNeverOverwrites(t *testing.T) {
	s := NewSessionState()
	s.ApplyIntent(LoanIntent{Amount: fptr(300000), TenureMonths: iptr(12), Purpose: "Car"})

	s.ApplyIntent(LoanIntent{Amount: fptr(900000), TenureMonths: iptr(36), Purpose: "Travel"})
	assert.Equal(t, float64(300000), *s.LoanIntent.Amount)
	assert.Equal(t, 12, *s.LoanIntent.TenureMonths)
	assert.Equal(t, "Car", s.LoanIntent.Purpose)
}

func TestMarkVerifiedWritesCustomerIDOnce(t *testing.T) {
	s := NewSessionState()

	s.MarkVerified(VerificationResult{Verified: true, CustomerID: "CUST001"})
	assert.Equal(t, "CUST001", s.CustomerID)

	// A later failed attempt replaces the record but never the id.
	s.MarkVerified(VerificationResult{Verified: false, CustomerID: "CUST999"})
	assert.Equal(t, "CUST001", s.CustomerID)
	assert.Equal(t, "CUST999", s.Verification.CustomerID)
}

func TestSetUnderwritingReplacesWhole(t *testing.T) {
	s := NewSessionState()
	s.SetUnderwriting(UnderwritingResult{
		Decision:          DecisionPending,
		MaxEligibleAmount: 350000,
		Conditions:        []string{"Salary slip required"},
	})
	require.True(t, s.IsPending())

	emi := 16804.51
	s.SetUnderwriting(UnderwritingResult{
		Decision:          DecisionApproved,
		MaxEligibleAmount: 350000,
		EMI:               &emi,
	})
	assert.True(t, s.IsApproved())
	assert.False(t, s.IsPending())
	// The replacement carries none of the previous result's fields.
	assert.Nil(t, s.Underwriting.Conditions)
}

func TestDecisionPredicatesOnEmptyState(t *testing.T) {
	s := NewSessionState()
	assert.False(t, s.IsApproved())
	assert.False(t, s.IsPending())
}

func TestTranscriptAppend(t *testing.T) {
	s := NewSessionState()
	s.AppendUser("hello")
	s.AppendAssistant("hi there")

	require.Len(t, s.History, 2)
	assert.Equal(t, ChatTurn{Role: RoleUser, Text: "hello"}, s.History[0])
	assert.Equal(t, ChatTurn{Role: RoleAssistant, Text: "hi there"}, s.History[1])
}
