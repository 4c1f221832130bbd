package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanassist-poc/server/internal/loan/model"
)

func TestExtractAmount(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    float64
	}{
		{"lakh with rupee sign", "Hi, I need ₹3 lakh for a wedding", 300000},
		{"lakh plural", "give me 5 lakhs please", 500000},
		{"lakh fractional", "looking for 2.5 lakh", 250000},
		{"lac spelling", "need 4 lac urgently", 400000},
		{"thousand word", "I need 50 thousand", 50000},
		{"k suffix", "can I get 50k", 50000},
		{"rupee sign figure", "₹350000 for home renovation", 350000},
		{"rs prefix", "Rs. 45000 should do", 45000},
		{"bare small figure reads as lakhs", "rs 5 should be enough", 500000},
		{"western comma grouping", "₹450,000 exactly", 450000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Extract(tc.message, model.LoanIntent{})
			require.True(t, got.HasAmount(), "no amount extracted")
			assert.Equal(t, tc.want, *got.Amount)
		})
	}
}

func TestExtractAmountPriority(t *testing.T) {
	// The lakh pattern wins even when a thousand figure appears first.
	got := Extract("not 50k, I need ₹2 lakh", model.LoanIntent{})
	require.True(t, got.HasAmount())
	assert.Equal(t, float64(200000), *got.Amount)
}

func TestExtractNoAmount(t *testing.T) {
	for _, msg := range []string{
		"hello there",
		"what documents do you need",
		"my number is 9876543210", // a phone number is not an amount
	} {
		got := Extract(msg, model.LoanIntent{})
		assert.False(t, got.HasAmount(), "unexpected amount from %q", msg)
		assert.False(t, got.HasTenure(), "unexpected tenure from %q", msg)
	}
}

func TestExtractTenure(t *testing.T) {
	got := Extract("repay over 3 years", model.LoanIntent{})
	require.True(t, got.HasTenure())
	assert.Equal(t, 36, *got.TenureMonths)

	got = Extract("18 months works for me", model.LoanIntent{})
	require.True(t, got.HasTenure())
	assert.Equal(t, 18, *got.TenureMonths)
}

func TestExtractDefaultTenureWithAmount(t *testing.T) {
	// An amount without an explicit tenure defaults to two years.
	got := Extract("I need ₹3 lakh", model.LoanIntent{})
	require.True(t, got.HasAmount())
	require.True(t, got.HasTenure())
	assert.Equal(t, 24, *got.TenureMonths)
}

func TestExtractAmountAndTenureTogether(t *testing.T) {
	got := Extract("I need ₹3 lakh for 24 months", model.LoanIntent{})
	require.True(t, got.HasAmount())
	require.True(t, got.HasTenure())
	assert.Equal(t, float64(300000), *got.Amount)
	assert.Equal(t, 24, *got.TenureMonths)
}

func TestExtractPurpose(t *testing.T) {
	got := Extract("need a loan for my wedding", model.LoanIntent{})
	assert.Equal(t, "Wedding", got.Purpose)

	got = Extract("CAR loan please", model.LoanIntent{})
	assert.Equal(t, "Car", got.Purpose)

	got = Extract("just asking", model.LoanIntent{})
	assert.Empty(t, got.Purpose)
}

func TestExtractMonotonic(t *testing.T) {
	amt := float64(300000)
	months := 12
	prior := model.LoanIntent{Amount: &amt, TenureMonths: &months, Purpose: "Car"}

	got := Extract("actually make it ₹9 lakh for 36 months for travel", prior)
	assert.Equal(t, float64(300000), *got.Amount)
	assert.Equal(t, 12, *got.TenureMonths)
	assert.Equal(t, "Car", got.Purpose)
}

func TestExtractIdempotent(t *testing.T) {
	msg := "I need 50 thousand for 18 months for medical expenses"
	once := Extract(msg, model.LoanIntent{})
	twice := Extract(msg, once)
	assert.Equal(t, once, twice)
}
