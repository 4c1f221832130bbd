package underwriting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanassist-poc/server/internal/loan/model"
)

func testPolicy() model.PolicyConfig {
	return model.PolicyConfig{
		MinCreditScore:      700,
		LimitMultiplier:     2,
		EMISalaryRatio:      0.5,
		DefaultAnnualRate:   14.0,
		DefaultTenureMonths: 24,
		MinVerifiedSalary:   30000,
	}
}

func customer(score int, limit float64) model.CustomerRecord {
	return model.CustomerRecord{
		CustomerID:       "CUST-T",
		Name:             "Test Customer",
		CreditScore:      score,
		PreapprovedLimit: limit,
		Salary:           75000,
		KYCVerified:      true,
	}
}

func TestEvaluateHardCapRejectsRegardlessOfScore(t *testing.T) {
	e := NewEngine(testPolicy())

	for _, score := range []int{650, 785, 900} {
		out := e.Evaluate(Input{Amount: 1200000, TenureMonths: 24, AnnualRate: 12.5}, customer(score, 500000))
		rej, ok := out.(Rejected)
		require.True(t, ok, "score %d: expected rejection, got %T", score, out)
		assert.Equal(t, float64(500000), rej.FallbackLimit)
		assert.Contains(t, rej.Reason, "2x pre-approved limit")
	}
}

func TestEvaluateWithinLimitApproved(t *testing.T) {
	e := NewEngine(testPolicy())

	out := e.Evaluate(Input{Amount: 300000, TenureMonths: 24, AnnualRate: 12.5}, customer(785, 500000))
	app, ok := out.(Approved)
	require.True(t, ok, "expected approval, got %T", out)

	assert.Equal(t, float64(300000), app.Amount)
	assert.Equal(t, 24, app.TenureMonths)
	assert.Equal(t, 12.5, app.AnnualRate)
	assert.Equal(t, float64(300000), app.MaxEligible)
	assert.InDelta(t, 14192.3, app.EMI, 2.0)
}

func TestEvaluateWithinLimitLowScoreRejected(t *testing.T) {
	e := NewEngine(testPolicy())

	out := e.Evaluate(Input{Amount: 100000, TenureMonths: 24, AnnualRate: 14}, customer(650, 150000))
	rej, ok := out.(Rejected)
	require.True(t, ok, "expected rejection, got %T", out)
	assert.Contains(t, rej.Reason, "Credit score 650")
	assert.Equal(t, float64(150000), rej.FallbackLimit)
}

func TestEvaluateBetweenLimitAndCapPendingWithoutSlip(t *testing.T) {
	e := NewEngine(testPolicy())

	out := e.Evaluate(Input{Amount: 350000, TenureMonths: 24, AnnualRate: 14}, customer(680, 200000))
	pend, ok := out.(Pending)
	require.True(t, ok, "expected pending, got %T", out)

	assert.Equal(t, float64(350000), pend.MaxEligible)
	assert.InDelta(t, 16804.5, pend.ProjectedEMI, 1.0)
	assert.Contains(t, pend.Reason, "salary slip")
	assert.Equal(t, []string{"Salary slip required"}, pend.Conditions)
}

func TestEvaluateBetweenScoreNeverChecked(t *testing.T) {
	// The credit score gate applies only within the pre-approved limit;
	// a sub-minimum score between limit and cap still goes pending.
	e := NewEngine(testPolicy())

	out := e.Evaluate(Input{Amount: 250000, TenureMonths: 24, AnnualRate: 14}, customer(650, 150000))
	assert.Equal(t, model.DecisionPending, out.Decision())
}

func TestEvaluateSlipVerifiedApprovesWhenEMIFits(t *testing.T) {
	e := NewEngine(testPolicy())

	out := e.Evaluate(Input{
		Amount:             350000,
		TenureMonths:       24,
		AnnualRate:         14,
		SalarySlipVerified: true,
		VerifiedSalary:     75000,
	}, customer(680, 200000))

	app, ok := out.(Approved)
	require.True(t, ok, "expected approval, got %T", out)
	assert.InDelta(t, 16804.5, app.EMI, 1.0)
	assert.LessOrEqual(t, app.EMI, 0.5*75000)
	assert.Equal(t, float64(350000), app.MaxEligible)
}

func TestEvaluateSlipVerifiedRejectsWhenEMITooHigh(t *testing.T) {
	e := NewEngine(testPolicy())

	// EMI ~16.8k against half of a 30k salary (15k) fails the ratio.
	out := e.Evaluate(Input{
		Amount:             350000,
		TenureMonths:       24,
		AnnualRate:         14,
		SalarySlipVerified: true,
		VerifiedSalary:     30000,
	}, customer(680, 200000))

	rej, ok := out.(Rejected)
	require.True(t, ok, "expected rejection, got %T", out)
	assert.Contains(t, rej.Reason, "exceeds")
	assert.Equal(t, float64(200000), rej.FallbackLimit)
}

func TestEvaluateAmountEqualToCapStaysEligible(t *testing.T) {
	e := NewEngine(testPolicy())

	// Exactly 2x the limit is the last amount inside the cap.
	out := e.Evaluate(Input{Amount: 400000, TenureMonths: 24, AnnualRate: 14}, customer(720, 200000))
	assert.Equal(t, model.DecisionPending, out.Decision())

	out = e.Evaluate(Input{Amount: 400001, TenureMonths: 24, AnnualRate: 14}, customer(720, 200000))
	assert.Equal(t, model.DecisionRejected, out.Decision())
}

func TestEMI(t *testing.T) {
	assert.InDelta(t, 16804.5, EMI(350000, 14, 24), 1.0)
	assert.InDelta(t, 14192.3, EMI(300000, 12.5, 24), 2.0)

	// Zero rate degenerates to straight principal division.
	assert.Equal(t, float64(5000), EMI(120000, 0, 24))
}

func TestEMIRoundedToPaise(t *testing.T) {
	emi := EMI(350000, 14, 24)
	assert.Equal(t, math.Round(emi*100)/100, emi)
}

func TestOutcomeRecords(t *testing.T) {
	app := Approved{Amount: 300000, TenureMonths: 24, AnnualRate: 12.5, EMI: 14192.31, MaxEligible: 300000, Reason: "ok"}
	rec := app.Record()
	assert.Equal(t, model.DecisionApproved, rec.Decision)
	require.NotNil(t, rec.EMI)
	assert.Equal(t, 14192.31, *rec.EMI)

	pend := Pending{MaxEligible: 350000, ProjectedEMI: 16804.51, Reason: "docs", Conditions: []string{"Salary slip required"}}
	rec = pend.Record()
	assert.Equal(t, model.DecisionPending, rec.Decision)
	assert.Nil(t, rec.EMI)
	assert.Equal(t, []string{"Salary slip required"}, rec.Conditions)

	rej := Rejected{FallbackLimit: 200000, Reason: "no"}
	rec = rej.Record()
	assert.Equal(t, model.DecisionRejected, rec.Decision)
	assert.Equal(t, float64(200000), rec.MaxEligibleAmount)
}
