// Package underwriting applies the deterministic eligibility rules and EMI
// computation to a loan request. Rules are evaluated in strict order; the
// first applicable rule decides the outcome.
package underwriting

import (
	"fmt"
	"math"

	"github.com/loanassist-poc/server/internal/loan/model"
)

// Input is one eligibility evaluation request. The caller guarantees a
// positive amount and tenure and has already resolved the interest rate
// from the customer's offer (or the policy default).
type Input struct {
	Amount             float64
	TenureMonths       int
	AnnualRate         float64
	SalarySlipVerified bool
	VerifiedSalary     float64
}

// Outcome is the result of an eligibility evaluation. Exactly one of the
// Approved, Pending or Rejected variants is returned; each carries only
// the fields that exist for its case.
type Outcome interface {
	Decision() model.Decision
	// Record flattens the outcome into the serializable session form.
	Record() model.UnderwritingResult
}

// Approved carries the final sanctioned terms.
type Approved struct {
	Amount       float64
	TenureMonths int
	AnnualRate   float64
	EMI          float64
	MaxEligible  float64
	Reason       string
}

func (a Approved) Decision() model.Decision { return model.DecisionApproved }

func (a Approved) Record() model.UnderwritingResult {
	emi := a.EMI
	return model.UnderwritingResult{
		Decision:          model.DecisionApproved,
		MaxEligibleAmount: a.MaxEligible,
		EMI:               &emi,
		Reason:            a.Reason,
	}
}

// Pending means the request can still be approved once documents arrive.
type Pending struct {
	MaxEligible  float64
	ProjectedEMI float64
	Reason       string
	Conditions   []string
}

func (p Pending) Decision() model.Decision { return model.DecisionPending }

func (p Pending) Record() model.UnderwritingResult {
	return model.UnderwritingResult{
		Decision:          model.DecisionPending,
		MaxEligibleAmount: p.MaxEligible,
		Reason:            p.Reason,
		Conditions:        p.Conditions,
	}
}

// Rejected carries the fallback amount the customer could still request.
type Rejected struct {
	FallbackLimit float64
	Reason        string
}

func (r Rejected) Decision() model.Decision { return model.DecisionRejected }

func (r Rejected) Record() model.UnderwritingResult {
	return model.UnderwritingResult{
		Decision:          model.DecisionRejected,
		MaxEligibleAmount: r.FallbackLimit,
		Reason:            r.Reason,
	}
}

// Engine evaluates loan requests against the configured policy.
type Engine struct {
	policy model.PolicyConfig
}

func NewEngine(policy model.PolicyConfig) *Engine {
	return &Engine{policy: policy}
}

// Evaluate runs the ordered eligibility rules:
//
//  1. Amounts above LimitMultiplier x pre-approved limit are rejected
//     outright, regardless of credit score or salary.
//  2. Amounts within the pre-approved limit need only the credit score
//     check; the score is never checked outside this branch.
//  3. Amounts between the limit and the cap stay pending until a salary
//     slip is verified, then approve iff the EMI fits within
//     EMISalaryRatio of the verified salary.
func (e *Engine) Evaluate(in Input, cust model.CustomerRecord) Outcome {
	limit := cust.PreapprovedLimit
	cap := e.policy.LimitMultiplier * limit

	switch {
	case in.Amount > cap:
		return Rejected{
			FallbackLimit: limit,
			Reason: fmt.Sprintf("Loan amount %s exceeds %gx pre-approved limit of %s",
				model.FormatINR(in.Amount), e.policy.LimitMultiplier, model.FormatINR(cap)),
		}

	case in.Amount <= limit:
		if cust.CreditScore < e.policy.MinCreditScore {
			return Rejected{
				FallbackLimit: limit,
				Reason: fmt.Sprintf("Credit score %d is below minimum requirement of %d",
					cust.CreditScore, e.policy.MinCreditScore),
			}
		}
		return Approved{
			Amount:       in.Amount,
			TenureMonths: in.TenureMonths,
			AnnualRate:   in.AnnualRate,
			EMI:          EMI(in.Amount, in.AnnualRate, in.TenureMonths),
			MaxEligible:  in.Amount,
			Reason: fmt.Sprintf("Loan amount within pre-approved limit of %s",
				model.FormatINR(limit)),
		}

	default:
		// Between the limit and the cap.
		if !in.SalarySlipVerified {
			return Pending{
				MaxEligible:  math.Min(in.Amount, cap),
				ProjectedEMI: EMI(in.Amount, in.AnnualRate, in.TenureMonths),
				Reason: fmt.Sprintf("Loan amount %s exceeds pre-approved limit %s. Please upload salary slip for verification.",
					model.FormatINR(in.Amount), model.FormatINR(limit)),
				Conditions: []string{"Salary slip required"},
			}
		}

		emi := EMI(in.Amount, in.AnnualRate, in.TenureMonths)
		affordable := e.policy.EMISalaryRatio * in.VerifiedSalary
		if emi <= affordable {
			return Approved{
				Amount:       in.Amount,
				TenureMonths: in.TenureMonths,
				AnnualRate:   in.AnnualRate,
				EMI:          emi,
				MaxEligible:  math.Min(in.Amount, cap),
				Reason: fmt.Sprintf("Loan approved with salary slip verification. EMI %s is within %g%% of salary %s",
					model.FormatINR(emi), e.policy.EMISalaryRatio*100, model.FormatINR(in.VerifiedSalary)),
			}
		}
		return Rejected{
			FallbackLimit: limit,
			Reason: fmt.Sprintf("EMI %s exceeds %g%% of salary %s",
				model.FormatINR(emi), e.policy.EMISalaryRatio*100, model.FormatINR(in.VerifiedSalary)),
		}
	}
}

// EMI computes the equated monthly installment with the standard
// reducing-balance amortization formula, rounded to 2 decimals. A zero
// rate degenerates to straight principal division.
func EMI(principal, annualRatePercent float64, months int) float64 {
	monthlyRate := annualRatePercent / 12 / 100
	if monthlyRate == 0 {
		return round2(principal / float64(months))
	}
	factor := math.Pow(1+monthlyRate, float64(months))
	return round2(principal * monthlyRate * factor / (factor - 1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
