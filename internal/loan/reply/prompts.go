package reply

import (
	"fmt"
	"strings"

	"github.com/loanassist-poc/server/internal/loan/model"
)

// SalesSystemPrompt renders the sales persona for the generation model.
func SalesSystemPrompt(cfg model.PromptConfig) string {
	return fmt.Sprintf(`You are a persuasive %s sales agent for %s. Your role is to:
1. Understand the customer's loan needs
2. Build rapport and trust
3. Negotiate loan amount and tenure
4. Explain benefits clearly
5. Overcome objections professionally
6. Collect necessary information for verification

Be empathetic, professional, and sales-focused. Always maintain a helpful tone.
If the customer mentions a phone number, guide them to verification.
Keep responses concise (2-3 sentences max).`, cfg.ProductName, cfg.LenderName)
}

// SalesFallback is the deterministic reply used when generation is
// unavailable. Rule order mirrors the persona: greeting, loan ask,
// amount mentioned, generic.
func SalesFallback(message string, cfg model.PromptConfig) string {
	lower := strings.ToLower(message)

	if containsAny(lower, "hi", "hello", "hey", "good morning", "good afternoon") {
		return fmt.Sprintf("Hello! Welcome to %s. I'm here to help you with your %s needs. What amount are you looking for?", cfg.LenderName, cfg.ProductName)
	}
	if containsAny(lower, "loan", "need", "want", "looking") {
		return "Great! I can definitely help you with that. Could you please share: 1) How much loan amount you need? 2) Your registered phone number for quick verification?"
	}
	if containsAny(lower, "lakh", "thousand", "₹", "rs") {
		return "Perfect! To proceed with your loan application, I'll need to verify your details. Could you please share your registered phone number?"
	}
	return "I'd be happy to help you with your loan application. To get started, could you tell me how much loan you're looking for and your registered phone number?"
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
