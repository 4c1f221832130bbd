package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errx "github.com/loanassist-poc/server/internal/core/error"
	"github.com/loanassist-poc/server/internal/loan/model"
	"github.com/loanassist-poc/server/internal/loan/underwriting"
	logx "github.com/loanassist-poc/server/pkg/logger"
)

// UnderwritingAgent resolves the customer profile and interest rate, runs
// the eligibility engine, and stores the full result in the session,
// replacing any previous decision.
type UnderwritingAgent struct {
	deps Deps
}

func NewUnderwritingAgent(deps Deps) *UnderwritingAgent {
	return &UnderwritingAgent{deps: deps}
}

func (a *UnderwritingAgent) Handle(ctx context.Context, message string, state *model.SessionState) (Response, error) {
	customerID := state.CustomerID
	if customerID == "" && state.Verification != nil {
		// Recover the id from the verification record if an older client
		// dropped the top-level field.
		customerID = state.Verification.CustomerID
		state.CustomerID = customerID
	}
	if customerID == "" {
		return Response{
			Message: "I need to verify your identity first to check loan eligibility. Could you please provide your registered phone number?",
			Next:    model.AgentVerification,
		}, nil
	}

	if !state.LoanIntent.HasAmount() {
		return Response{
			Message: "To check your eligibility, I need to know how much loan you're looking for. For example: '₹3 lakh' or '₹500000'.",
			Next:    model.AgentSales,
		}, nil
	}
	amount := *state.LoanIntent.Amount

	tenure := a.deps.Policy.DefaultTenureMonths
	if state.LoanIntent.HasTenure() {
		tenure = *state.LoanIntent.TenureMonths
	}

	cust, err := a.deps.Customers.FindByID(ctx, customerID)
	switch {
	case errors.Is(err, errx.ErrCustomerNotFound):
		return Response{
			Message: "I couldn't find your customer details. Please complete verification first to proceed with loan eligibility.",
			Next:    model.AgentVerification,
		}, nil
	case err != nil:
		logx.Warn().Err(err).Str("customer_id", customerID).Msg("customer store degraded during underwriting")
		return Response{
			Message: "I'm having trouble accessing your records right now. Please try again in a moment.",
			Next:    model.AgentUnderwriting,
		}, nil
	}

	rate, err := a.deps.Offers.RateFor(ctx, customerID)
	if err != nil {
		if !errors.Is(err, errx.ErrCustomerNotFound) {
			logx.Warn().Err(err).Str("customer_id", customerID).Msg("offer lookup degraded; using default rate")
		}
		rate = a.deps.Policy.DefaultAnnualRate
	}

	verifiedSalary := cust.Salary
	if state.VerifiedSalary != nil {
		verifiedSalary = *state.VerifiedSalary
	}

	outcome := a.deps.Engine.Evaluate(underwriting.Input{
		Amount:             amount,
		TenureMonths:       tenure,
		AnnualRate:         rate,
		SalarySlipVerified: state.SalarySlipVerified,
		VerifiedSalary:     verifiedSalary,
	}, *cust)

	state.SetUnderwriting(outcome.Record())

	logx.Debug().
		Str("customer_id", customerID).
		Float64("amount", amount).
		Int("tenure_months", tenure).
		Float64("annual_rate", rate).
		Str("decision", string(outcome.Decision())).
		Msg("underwriting decision")

	switch o := outcome.(type) {
	case underwriting.Approved:
		state.ApprovedAmount = o.Amount
		state.TenureMonths = o.TenureMonths
		state.InterestRate = o.AnnualRate
		state.EMI = o.EMI
		return Response{Message: a.approvedMessage(o, cust, state.LoanIntent.Purpose), Next: model.AgentSanction}, nil

	case underwriting.Pending:
		return Response{Message: a.pendingMessage(o, cust, amount), Next: model.AgentUnderwriting}, nil

	case underwriting.Rejected:
		return Response{Message: a.rejectedMessage(o, cust, amount), Next: model.AgentSales}, nil

	default:
		return Response{}, fmt.Errorf("unknown underwriting outcome %T", outcome)
	}
}

func (a *UnderwritingAgent) approvedMessage(o underwriting.Approved, cust *model.CustomerRecord, purpose string) string {
	var b strings.Builder
	b.WriteString("Congratulations! Your loan application has been approved.\n\n")
	fmt.Fprintf(&b, "Amount: %s\n", model.FormatINR(o.Amount))
	fmt.Fprintf(&b, "Tenure: %d months\n", o.TenureMonths)
	fmt.Fprintf(&b, "Interest Rate: %.1f%% p.a.\n", o.AnnualRate)
	fmt.Fprintf(&b, "EMI: %s/month\n", model.FormatINR(o.EMI))
	if purpose != "" {
		fmt.Fprintf(&b, "Purpose: %s\n", purpose)
	}
	fmt.Fprintf(&b, "\nCredit score: %d/900, pre-approved limit %s.\n", cust.CreditScore, model.FormatINR(cust.PreapprovedLimit))
	fmt.Fprintf(&b, "%s\n\n", o.Reason)
	b.WriteString("Would you like me to generate your sanction letter? (Just say 'yes' or 'generate sanction letter'.)")
	return b.String()
}

func (a *UnderwritingAgent) pendingMessage(o underwriting.Pending, cust *model.CustomerRecord, amount float64) string {
	affordable := a.deps.Policy.EMISalaryRatio * cust.Salary
	var b strings.Builder
	b.WriteString("Additional documentation required.\n\n")
	fmt.Fprintf(&b, "%s\n\n", o.Reason)
	fmt.Fprintf(&b, "Requested amount: %s\n", model.FormatINR(amount))
	fmt.Fprintf(&b, "Pre-approved limit: %s\n", model.FormatINR(cust.PreapprovedLimit))
	fmt.Fprintf(&b, "Maximum eligible with salary proof: %s\n", model.FormatINR(o.MaxEligible))
	fmt.Fprintf(&b, "Projected EMI: %s/month (must stay within %s, %g%% of your verified salary)\n\n",
		model.FormatINR(o.ProjectedEMI), model.FormatINR(affordable), a.deps.Policy.EMISalaryRatio*100)
	b.WriteString("Please upload your latest salary slip to continue.")
	return b.String()
}

func (a *UnderwritingAgent) rejectedMessage(o underwriting.Rejected, cust *model.CustomerRecord, amount float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I'm sorry, but your loan application for %s cannot be approved at this time.\n\n", model.FormatINR(amount))
	fmt.Fprintf(&b, "Reason: %s\n\n", o.Reason)
	if cust.CreditScore < a.deps.Policy.MinCreditScore {
		fmt.Fprintf(&b, "Your current score is %d/900 against a minimum of %d/900. Paying EMIs on time and clearing card dues are the fastest ways to improve it.\n\n",
			cust.CreditScore, a.deps.Policy.MinCreditScore)
	}
	fmt.Fprintf(&b, "Your pre-approved limit of %s is still available. Would you like to apply for an amount within it?",
		model.FormatINR(o.FallbackLimit))
	return b.String()
}

var _ Handler = (*UnderwritingAgent)(nil)
