// Package intent parses free-form chat text into a structured loan request.
// Extraction is a pure function over the message and the fixed pattern
// tables; it only fills fields the prior intent left unset.
package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/loanassist-poc/server/internal/loan/model"
)

const (
	lakh = 100_000
	thou = 1_000
	// Bare rupee figures below this are read as lakhs ("rs 3" => ₹3 lakh).
	bareAmountLakhCutoff = 1_000

	defaultTenureMonths = 24
)

// Amount patterns, evaluated in priority order. First match wins.
var (
	lakhRe     = regexp.MustCompile(`(?i)(?:₹|\brs\.?)?\s*(\d+(?:,\d{3})*(?:\.\d+)?)\s*(?:lakh|lac)s?\b`)
	thousandRe = regexp.MustCompile(`(?i)(\d+(?:,\d{3})*(?:\.\d+)?)\s*(?:thousand|k)\b`)
	rupeeRe    = regexp.MustCompile(`(?i)(?:₹|\brs\.?)\s*(\d+(?:,\d{3})*(?:\.\d+)?)`)

	yearsRe  = regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)\b`)
	monthsRe = regexp.MustCompile(`(?i)(\d+)\s*months?\b`)
)

// purposes is the fixed purpose vocabulary, matched case-insensitively in order.
var purposes = []string{
	"home", "car", "education", "medical", "business", "wedding",
	"travel", "debt", "renovation", "emergency", "construction",
}

// Extract fills the unset fields of prior from the message. Already-set
// fields are never replaced, so running it twice on the same input is a
// no-op. Unparseable values are silently skipped.
func Extract(message string, prior model.LoanIntent) model.LoanIntent {
	out := prior

	if !out.HasAmount() {
		if amt, ok := extractAmount(message); ok {
			out.Amount = &amt
		}
	}

	if !out.HasTenure() {
		if months, ok := extractTenure(message); ok {
			out.TenureMonths = &months
		}
	}

	// An amount without a tenure defaults to two years.
	if out.HasAmount() && !out.HasTenure() {
		months := defaultTenureMonths
		out.TenureMonths = &months
	}

	if out.Purpose == "" {
		lower := strings.ToLower(message)
		for _, p := range purposes {
			if strings.Contains(lower, p) {
				out.Purpose = capitalize(p)
				break
			}
		}
	}

	return out
}

func extractAmount(message string) (float64, bool) {
	if m := lakhRe.FindStringSubmatch(message); m != nil {
		if v, err := parseFigure(m[1]); err == nil {
			return v * lakh, true
		}
	}
	if m := thousandRe.FindStringSubmatch(message); m != nil {
		if v, err := parseFigure(m[1]); err == nil {
			return v * thou, true
		}
	}
	if m := rupeeRe.FindStringSubmatch(message); m != nil {
		if v, err := parseFigure(m[1]); err == nil {
			if v < bareAmountLakhCutoff {
				return v * lakh, true
			}
			return v, true
		}
	}
	return 0, false
}

func extractTenure(message string) (int, bool) {
	if m := yearsRe.FindStringSubmatch(message); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil && v > 0 {
			return v * 12, true
		}
	}
	if m := monthsRe.FindStringSubmatch(message); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil && v > 0 {
			return v, true
		}
	}
	return 0, false
}

func parseFigure(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
