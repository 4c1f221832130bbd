package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{500, "₹500"},
		{5000, "₹5,000"},
		{300000, "₹300,000"},
		{1000000, "₹1,000,000"},
		{16804.51, "₹16,804.51"},
		{1234567.8, "₹1,234,567.80"},
		{-2500, "-₹2,500"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatINR(tc.in), "FormatINR(%v)", tc.in)
	}
}
