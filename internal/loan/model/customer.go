package model

// CustomerRecord is the read-only customer profile owned by the external store.
type CustomerRecord struct {
	CustomerID       string  `json:"customer_id"`
	Name             string  `json:"name"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
	City             string  `json:"city"`
	Address          string  `json:"address"`
	Age              int     `json:"age"`
	CreditScore      int     `json:"credit_score"`
	PreapprovedLimit float64 `json:"preapproved_limit"`
	Salary           float64 `json:"salary"`
	ExistingLoans    float64 `json:"existing_loans"`
	KYCVerified      bool    `json:"kyc_verified"`
}

// Offer is a customer-specific pre-approved loan offer.
type Offer struct {
	OfferID       string  `json:"offer_id"`
	CustomerID    string  `json:"customer_id"`
	LoanType      string  `json:"loan_type"`
	MaxAmount     float64 `json:"max_amount"`
	InterestRate  float64 `json:"interest_rate"`
	TenureOptions []int   `json:"tenure_options"`
	ProcessingFee float64 `json:"processing_fee"`
}
