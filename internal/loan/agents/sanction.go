package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/loanassist-poc/server/internal/loan/model"
	"github.com/loanassist-poc/server/internal/loan/sanction"
	logx "github.com/loanassist-poc/server/pkg/logger"
)

// SanctionAgent fixes the final terms into a sanction letter, delegates
// rendering to the document collaborator, and ends the flow.
type SanctionAgent struct {
	deps Deps
}

func NewSanctionAgent(deps Deps) *SanctionAgent {
	return &SanctionAgent{deps: deps}
}

func (a *SanctionAgent) Handle(ctx context.Context, message string, state *model.SessionState) (Response, error) {
	if !state.IsApproved() {
		return Response{
			Message: "I can only generate a sanction letter for an approved application. Let's check your eligibility first.",
			Next:    model.AgentUnderwriting,
		}, nil
	}

	name := "Valued Customer"
	if state.Verification != nil && state.Verification.Details["name"] != "" {
		name = state.Verification.Details["name"]
	}

	letter := sanction.NewLetter(name, state.ApprovedAmount, state.TenureMonths, state.InterestRate, state.EMI, a.deps.Sanction)

	artifact, err := a.deps.Renderer.Render(ctx, letter)
	if err != nil {
		// The decision stands; only the document is deferred.
		logx.Warn().Err(err).Str("reference", letter.ReferenceNumber).Msg("sanction letter rendering deferred")
	}

	state.Sanction = &letter

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s, congratulations! Your loan has been officially sanctioned.\n\n", name)
	fmt.Fprintf(&b, "Reference No: %s\n", letter.ReferenceNumber)
	fmt.Fprintf(&b, "Loan Amount: %s\n", model.FormatINR(letter.LoanAmount))
	fmt.Fprintf(&b, "EMI: %s per month\n", model.FormatINR(letter.EMI))
	fmt.Fprintf(&b, "Tenure: %d months\n", letter.TenureMonths)
	fmt.Fprintf(&b, "Interest Rate: %.1f%% per annum\n", letter.InterestRate)
	fmt.Fprintf(&b, "Sanction Date: %s (valid until %s)\n", letter.SanctionDate, letter.ValidUntil)
	fmt.Fprintf(&b, "Processing Fee: %s, Net Disbursement: %s\n\n", model.FormatINR(letter.ProcessingFee), model.FormatINR(letter.NetDisbursement))
	if err == nil {
		fmt.Fprintf(&b, "Your official sanction letter (%s) is ready for download. ", artifact)
	} else {
		b.WriteString("Document generation is in progress; you can download the letter shortly. ")
	}
	b.WriteString("Next: e-sign the loan agreement, and the amount will be disbursed within 24-48 hours.")

	// Terminal: no next handler once the letter is produced.
	return Response{Message: b.String(), Next: ""}, nil
}

var _ Handler = (*SanctionAgent)(nil)
