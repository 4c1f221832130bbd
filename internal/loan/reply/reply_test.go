package reply

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	errx "github.com/loanassist-poc/server/internal/core/error"
	"github.com/loanassist-poc/server/internal/loan/model"
)

func testPrompt() model.PromptConfig {
	return model.PromptConfig{LenderName: "Tata Capital", ProductName: "personal loan"}
}

func TestSalesSystemPrompt(t *testing.T) {
	prompt := SalesSystemPrompt(testPrompt())
	assert.Contains(t, prompt, "Tata Capital")
	assert.Contains(t, prompt, "personal loan")
}

func TestSalesFallbackRuleOrder(t *testing.T) {
	cfg := testPrompt()

	// Greeting wins even when the message also mentions a loan.
	greeting := SalesFallback("Hi, I need a loan", cfg)
	assert.Contains(t, greeting, "Welcome to Tata Capital")

	loanAsk := SalesFallback("I need some money, looking for options", cfg)
	assert.Contains(t, loanAsk, "How much loan amount")

	amount := SalesFallback("around 3 lakh", cfg)
	assert.Contains(t, amount, "registered phone number")

	generic := SalesFallback("tell me more", cfg)
	assert.Contains(t, generic, "how much loan you're looking for")
}

func TestDisabledGeneratorAlwaysErrors(t *testing.T) {
	_, err := Disabled{}.Generate(context.Background(), "system", nil, "hello")
	assert.ErrorIs(t, err, errx.ErrCollaboratorUnavailable)
}

func TestTrimTail(t *testing.T) {
	turns := []model.ChatTurn{
		{Role: model.RoleUser, Text: "1"},
		{Role: model.RoleAssistant, Text: "2"},
		{Role: model.RoleUser, Text: "3"},
		{Role: model.RoleAssistant, Text: "4"},
	}

	assert.Equal(t, turns, trimTail(turns, 6))
	assert.Equal(t, turns, trimTail(turns, 0))
	assert.Equal(t, turns[2:], trimTail(turns, 2))
}
