package sanction

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/loanassist-poc/server/internal/loan/model"
	logx "github.com/loanassist-poc/server/pkg/logger"
)

// Renderer turns a finalized sanction record into a downloadable artifact
// and returns its file name.
type Renderer interface {
	Render(ctx context.Context, letter model.SanctionLetter) (string, error)
}

// FileRenderer writes the sanction letter as a formatted text document
// under a fixed output directory.
type FileRenderer struct {
	dir string
}

func NewFileRenderer(dir string) *FileRenderer {
	return &FileRenderer{dir: dir}
}

// Dir returns the output directory artifacts are written to.
func (r *FileRenderer) Dir() string {
	return r.dir
}

func (r *FileRenderer) Render(_ context.Context, letter model.SanctionLetter) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create sanction dir: %w", err)
	}

	name := fmt.Sprintf("sanction_%s.txt", strings.ReplaceAll(letter.ReferenceNumber, "/", "_"))
	path := filepath.Join(r.dir, name)

	if err := os.WriteFile(path, []byte(formatLetter(letter)), 0o644); err != nil {
		return "", fmt.Errorf("write sanction letter: %w", err)
	}

	logx.Info().Str("reference", letter.ReferenceNumber).Str("path", path).Msg("sanction letter rendered")
	return name, nil
}

func formatLetter(l model.SanctionLetter) string {
	var b strings.Builder
	b.WriteString("SANCTION LETTER\n")
	b.WriteString("===============\n\n")
	fmt.Fprintf(&b, "Reference No : %s\n", l.ReferenceNumber)
	fmt.Fprintf(&b, "Date         : %s\n\n", l.SanctionDate)
	fmt.Fprintf(&b, "Dear %s,\n\n", l.CustomerName)
	b.WriteString("We are pleased to inform you that your loan has been sanctioned on the following terms:\n\n")
	fmt.Fprintf(&b, "  Loan Amount      : %s\n", model.FormatINR(l.LoanAmount))
	fmt.Fprintf(&b, "  Tenure           : %d months\n", l.TenureMonths)
	fmt.Fprintf(&b, "  Interest Rate    : %.1f%% p.a.\n", l.InterestRate)
	fmt.Fprintf(&b, "  EMI              : %s per month\n", model.FormatINR(l.EMI))
	fmt.Fprintf(&b, "  Processing Fee   : %s\n", model.FormatINR(l.ProcessingFee))
	fmt.Fprintf(&b, "  Net Disbursement : %s\n\n", model.FormatINR(l.NetDisbursement))
	fmt.Fprintf(&b, "This sanction is valid until %s.\n", l.ValidUntil)
	b.WriteString("\nPlease e-sign the loan agreement to proceed with disbursement.\n")
	return b.String()
}

var _ Renderer = (*FileRenderer)(nil)
