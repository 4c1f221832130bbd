package model

import "context"

// SessionRepository stores the per-session state snapshot between turns.
type SessionRepository interface {
	// Load retrieves the session state, or a fresh empty state when the
	// session is unknown.
	Load(ctx context.Context, sessionID string) (*SessionState, error)

	// Save persists the session state, refreshing its TTL.
	Save(ctx context.Context, sessionID string, state *SessionState) error

	// Clear removes the session state.
	Clear(ctx context.Context, sessionID string) error
}

// CustomerRepository looks up customer records. Lookups return
// errx.ErrCustomerNotFound when no record matches.
type CustomerRepository interface {
	FindByPhone(ctx context.Context, phone string) (*CustomerRecord, error)
	FindByID(ctx context.Context, customerID string) (*CustomerRecord, error)
}

// OfferRepository resolves customer-specific pre-approved offers.
type OfferRepository interface {
	// FindByCustomer returns the customer's offer, or
	// errx.ErrCustomerNotFound when none exists.
	FindByCustomer(ctx context.Context, customerID string) (*Offer, error)

	// RateFor returns the customer-specific annual interest rate, or
	// errx.ErrCustomerNotFound when the customer has no offer.
	RateFor(ctx context.Context, customerID string) (float64, error)
}
