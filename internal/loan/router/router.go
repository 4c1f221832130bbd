// Package router selects the handler for the next turn. Routing is a pure
// function of the message and the session flags, re-evaluated fresh every
// turn: there is no hidden "current state" machine, only an ordered list of
// predicate rules where the first match wins.
package router

import (
	"regexp"
	"strings"

	"github.com/loanassist-poc/server/internal/loan/model"
)

// Rule pairs a predicate with the agent that handles the turn when it fires.
type Rule struct {
	Name  string
	When  func(msg string, state *model.SessionState) bool
	Agent model.Agent
}

var phoneRe = regexp.MustCompile(`\b\d{10}\b`)

var (
	affirmWords       = []string{"yes", "generate", "sanction", "letter", "proceed", "ok", "sure", "download"}
	amountWords       = []string{"lakh", "lac", "thousand", "₹", "rs", "amount", "emi", "tenure"}
	borrowWords       = []string{"need", "want", "loan", "borrow", "apply"}
	eligibilityWords  = []string{"eligible", "eligibility", "loan status", "check eligibility"}
	documentWords     = []string{"salary", "slip", "uploaded", "document"}
	verificationWords = []string{"phone", "number", "verify"}
)

var digitsRe = regexp.MustCompile(`\d`)

// Rules returns the routing rules in evaluation order.
func Rules() []Rule {
	return []Rule{
		{
			// An approved applicant confirming wins over everything,
			// including a phone number in the same message.
			Name:  "sanction-confirm",
			Agent: model.AgentSanction,
			When: func(msg string, s *model.SessionState) bool {
				return s.IsApproved() && containsAny(msg, affirmWords)
			},
		},
		{
			// A verified customer goes to underwriting only on loan-relevant
			// signal; casual chat falls through to sales instead of trapping
			// them in an eligibility loop.
			Name:  "verified-loan-signal",
			Agent: model.AgentUnderwriting,
			When: func(msg string, s *model.SessionState) bool {
				if s.CustomerID == "" {
					return false
				}
				if containsAny(msg, amountWords) || containsAny(msg, eligibilityWords) || containsAny(msg, documentWords) {
					return true
				}
				return digitsRe.MatchString(msg) && containsAny(msg, borrowWords)
			},
		},
		{
			Name:  "needs-verification",
			Agent: model.AgentVerification,
			When: func(msg string, s *model.SessionState) bool {
				if s.CustomerID != "" {
					return false
				}
				return phoneRe.MatchString(msg) || containsAny(msg, verificationWords)
			},
		},
		{
			Name:  "eligibility-query",
			Agent: model.AgentUnderwriting,
			When: func(msg string, s *model.SessionState) bool {
				return containsAny(msg, eligibilityWords)
			},
		},
		{
			// A pending decision keeps the conversation in underwriting
			// until the awaited document shows up.
			Name:  "pending-documents",
			Agent: model.AgentUnderwriting,
			When: func(msg string, s *model.SessionState) bool {
				return s.IsPending()
			},
		},
	}
}

// Route returns the agent for the next turn, defaulting to sales.
func Route(message string, state *model.SessionState) model.Agent {
	msg := strings.ToLower(message)
	for _, r := range Rules() {
		if r.When(msg, state) {
			return r.Agent
		}
	}
	return model.AgentSales
}

// FindPhoneNumber returns the first 10-digit token in the message, or "".
func FindPhoneNumber(message string) string {
	return phoneRe.FindString(message)
}

// HasPhoneNumber reports whether the message carries a 10-digit token.
func HasPhoneNumber(message string) bool {
	return phoneRe.MatchString(message)
}

// WantsVerification reports whether the message expresses verification intent.
func WantsVerification(message string) bool {
	return containsAny(strings.ToLower(message), verificationWords)
}

func containsAny(msg string, words []string) bool {
	for _, w := range words {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}
