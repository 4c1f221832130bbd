// Package sanction fixes the final loan terms into a sanction letter and
// delegates the printable artifact to a document renderer.
package sanction

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/loanassist-poc/server/internal/loan/model"
)

const dateLayout = "02-01-2006"

// NewLetter builds the sanction record for approved terms: a fresh
// reference number, sanction date today, validity per config, and the
// processing-fee/net-disbursement split.
func NewLetter(customerName string, amount float64, tenureMonths int, annualRate, emi float64, cfg model.SanctionConfig) model.SanctionLetter {
	now := time.Now()
	ref := fmt.Sprintf("TCL/%s/%s", now.Format("200601"), strings.ToUpper(uuid.NewString()[:8]))

	fee := amount * cfg.ProcessingFeePct / 100
	return model.SanctionLetter{
		CustomerName:    customerName,
		ReferenceNumber: ref,
		LoanAmount:      amount,
		TenureMonths:    tenureMonths,
		InterestRate:    annualRate,
		EMI:             emi,
		SanctionDate:    now.Format(dateLayout),
		ValidUntil:      now.AddDate(0, 0, cfg.ValidityDays).Format(dateLayout),
		ProcessingFee:   fee,
		NetDisbursement: amount - fee,
	}
}
