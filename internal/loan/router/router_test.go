package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loanassist-poc/server/internal/loan/model"
)

func approvedState() *model.SessionState {
	s := model.NewSessionState()
	s.CustomerID = "CUST001"
	s.SetUnderwriting(model.UnderwritingResult{Decision: model.DecisionApproved})
	return s
}

func pendingState() *model.SessionState {
	s := model.NewSessionState()
	s.CustomerID = "CUST003"
	s.SetUnderwriting(model.UnderwritingResult{Decision: model.DecisionPending})
	return s
}

func verifiedState() *model.SessionState {
	s := model.NewSessionState()
	s.CustomerID = "CUST001"
	return s
}

func TestRoute(t *testing.T) {
	cases := []struct {
		name    string
		message string
		state   *model.SessionState
		want    model.Agent
	}{
		{"fresh greeting", "hello", model.NewSessionState(), model.AgentSales},
		{"phone number", "my number is 9876543210", model.NewSessionState(), model.AgentVerification},
		{"verification intent without digits", "please verify me", model.NewSessionState(), model.AgentVerification},
		{"eligibility before verification", "am I eligible for a loan?", model.NewSessionState(), model.AgentUnderwriting},
		{"amount mention unverified", "I need 3 lakh", model.NewSessionState(), model.AgentSales},
		{"verified amount mention", "I need 5 lakh", verifiedState(), model.AgentUnderwriting},
		{"verified eligibility query", "check my eligibility", verifiedState(), model.AgentUnderwriting},
		{"verified document mention", "I have uploaded my salary slip", verifiedState(), model.AgentUnderwriting},
		{"verified casual chat", "what's the weather like?", verifiedState(), model.AgentSales},
		{"verified digits with borrow verb", "I want to borrow 500000", verifiedState(), model.AgentUnderwriting},
		{"pending keeps underwriting", "anything else?", pendingState(), model.AgentUnderwriting},
		{"approved confirmation", "yes please", approvedState(), model.AgentSanction},
		{"approved download request", "download the letter", approvedState(), model.AgentSanction},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Route(tc.message, tc.state))
		})
	}
}

func TestRouteSanctionConfirmBeatsPhoneNumber(t *testing.T) {
	// An approved applicant confirming while repeating their phone number
	// must not be bounced back to verification.
	got := Route("yes, go ahead, 9876543210", approvedState())
	assert.Equal(t, model.AgentSanction, got)
}

func TestRouteCaseInsensitive(t *testing.T) {
	assert.Equal(t, model.AgentUnderwriting, Route("CHECK MY ELIGIBILITY", verifiedState()))
}

func TestFindPhoneNumber(t *testing.T) {
	assert.Equal(t, "9876543210", FindPhoneNumber("call me at 9876543210 anytime"))
	assert.Empty(t, FindPhoneNumber("call me maybe"))
	// An 11-digit run is not a phone number.
	assert.Empty(t, FindPhoneNumber("98765432101"))
}

func TestWantsVerification(t *testing.T) {
	assert.True(t, WantsVerification("can you verify my account"))
	assert.True(t, WantsVerification("here is my Phone"))
	assert.False(t, WantsVerification("hello"))
}
