package model

// Agent identifies a specialized conversation handler.
type Agent string

const (
	AgentSales        Agent = "sales"
	AgentVerification Agent = "verification"
	AgentUnderwriting Agent = "underwriting"
	AgentSanction     Agent = "sanction"
)

// Decision is the outcome class of an underwriting pass.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionPending  Decision = "pending"
	DecisionRejected Decision = "rejected"
)

// Chat history roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// LoanIntent is the structured loan request extracted from free text.
// Fields are filled monotonically: once set within a session they are
// never overwritten by a later extraction.
type LoanIntent struct {
	Amount       *float64 `json:"amount,omitempty"`
	TenureMonths *int     `json:"tenure_months,omitempty"`
	Purpose      string   `json:"purpose,omitempty"`
}

func (li LoanIntent) HasAmount() bool {
	return li.Amount != nil && *li.Amount > 0
}

func (li LoanIntent) HasTenure() bool {
	return li.TenureMonths != nil && *li.TenureMonths > 0
}

// VerificationResult is the last identity verification outcome.
type VerificationResult struct {
	Verified   bool              `json:"verified"`
	CustomerID string            `json:"customer_id"`
	Details    map[string]string `json:"details,omitempty"`
}

// UnderwritingResult is the serialized form of an underwriting outcome,
// recomputed whole on every underwriting pass.
type UnderwritingResult struct {
	Decision          Decision `json:"decision"`
	MaxEligibleAmount float64  `json:"max_eligible_amount"`
	EMI               *float64 `json:"emi,omitempty"`
	Reason            string   `json:"reason"`
	Conditions        []string `json:"conditions,omitempty"`
}

// SanctionLetter holds the final sanctioned terms.
type SanctionLetter struct {
	CustomerName    string  `json:"customer_name"`
	ReferenceNumber string  `json:"reference_number"`
	LoanAmount      float64 `json:"loan_amount"`
	TenureMonths    int     `json:"tenure_months"`
	InterestRate    float64 `json:"interest_rate"`
	EMI             float64 `json:"emi"`
	SanctionDate    string  `json:"sanction_date"`
	ValidUntil      string  `json:"valid_until"`
	ProcessingFee   float64 `json:"processing_fee"`
	NetDisbursement float64 `json:"net_disbursement"`
}

// ChatTurn is one entry of the append-only session transcript.
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// SessionState is the typed conversation context carried turn to turn.
// The caller supplies it with each request and receives the updated copy
// back; the server keeps only a TTL-bounded snapshot for reconnects.
type SessionState struct {
	CustomerID           string              `json:"customer_id,omitempty"`
	Verification         *VerificationResult `json:"verification,omitempty"`
	VerificationAttempts int                 `json:"verification_attempts,omitempty"`
	LoanIntent           LoanIntent          `json:"loan_intent"`
	Underwriting         *UnderwritingResult `json:"underwriting_result,omitempty"`
	SalarySlipVerified   bool                `json:"salary_slip_verified,omitempty"`
	VerifiedSalary       *float64            `json:"verified_salary,omitempty"`

	// Final terms, set only on approval.
	ApprovedAmount float64 `json:"approved_amount,omitempty"`
	TenureMonths   int     `json:"tenure_months,omitempty"`
	InterestRate   float64 `json:"interest_rate,omitempty"`
	EMI            float64 `json:"emi,omitempty"`

	Sanction     *SanctionLetter `json:"sanction_letter,omitempty"`
	CurrentAgent Agent           `json:"current_agent,omitempty"`
	History      []ChatTurn      `json:"history,omitempty"`
}

// NewSessionState returns the empty state created at first contact.
func NewSessionState() *SessionState {
	return &SessionState{}
}

// ApplyIntent merges a freshly extracted intent into the session,
// filling only fields that are still unset.
func (s *SessionState) ApplyIntent(in LoanIntent) {
	if !s.LoanIntent.HasAmount() && in.HasAmount() {
		s.LoanIntent.Amount = in.Amount
	}
	if !s.LoanIntent.HasTenure() && in.HasTenure() {
		s.LoanIntent.TenureMonths = in.TenureMonths
	}
	if s.LoanIntent.Purpose == "" && in.Purpose != "" {
		s.LoanIntent.Purpose = in.Purpose
	}
}

// MarkVerified records a verification outcome. CustomerID is written once
// and never cleared within the session, even if a later attempt fails.
func (s *SessionState) MarkVerified(v VerificationResult) {
	s.Verification = &v
	if s.CustomerID == "" {
		s.CustomerID = v.CustomerID
	}
}

// SetUnderwriting replaces the previous underwriting result whole; results
// are never merged field by field.
func (s *SessionState) SetUnderwriting(r UnderwritingResult) {
	s.Underwriting = &r
}

// IsApproved reports whether the last underwriting pass approved the loan.
func (s *SessionState) IsApproved() bool {
	return s.Underwriting != nil && s.Underwriting.Decision == DecisionApproved
}

// IsPending reports whether the last underwriting pass is awaiting documents.
func (s *SessionState) IsPending() bool {
	return s.Underwriting != nil && s.Underwriting.Decision == DecisionPending
}

// AppendUser adds a user message to the transcript.
func (s *SessionState) AppendUser(text string) {
	s.History = append(s.History, ChatTurn{Role: RoleUser, Text: text})
}

// AppendAssistant adds an assistant reply to the transcript.
func (s *SessionState) AppendAssistant(text string) {
	s.History = append(s.History, ChatTurn{Role: RoleAssistant, Text: text})
}
