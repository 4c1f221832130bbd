package model

import (
	"math"
	"strconv"
	"strings"
)

// FormatINR renders a rupee amount with comma grouping, e.g. ₹3,50,000
// becomes "₹350,000" and ₹16,804.51 becomes "₹16,804.51". Whole amounts
// drop the fractional part.
func FormatINR(v float64) string {
	neg := v < 0
	s := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteRune('₹')

	n := len(intPart)
	for i, c := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}

	if fracPart != "00" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
