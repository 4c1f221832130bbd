package repo

import (
	"context"
	"encoding/json"
	"sync"

	errx "github.com/loanassist-poc/server/internal/core/error"
	"github.com/loanassist-poc/server/internal/loan/model"
)

// MemorySessionRepository is the in-process fallback session store, used
// when Redis is unavailable and in tests. Snapshots are deep-copied via
// JSON so callers never share a state pointer with the store.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string][]byte)}
}

func (m *MemorySessionRepository) Load(_ context.Context, sessionID string) (*model.SessionState, error) {
	m.mu.RLock()
	raw, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok {
		return model.NewSessionState(), nil
	}
	var state model.SessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (m *MemorySessionRepository) Save(_ context.Context, sessionID string, state *model.SessionState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.sessions[sessionID] = b
	m.mu.Unlock()
	return nil
}

func (m *MemorySessionRepository) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
	return nil
}

// MemoryCustomerRepository is the in-process fallback customer/offer store.
type MemoryCustomerRepository struct {
	mu      sync.RWMutex
	byID    map[string]model.CustomerRecord
	byPhone map[string]string
	offers  map[string]model.Offer
}

func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{
		byID:    make(map[string]model.CustomerRecord),
		byPhone: make(map[string]string),
		offers:  make(map[string]model.Offer),
	}
}

func (m *MemoryCustomerRepository) Seed(_ context.Context, customers []model.CustomerRecord, offers []model.Offer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range customers {
		m.byID[c.CustomerID] = c
		m.byPhone[c.Phone] = c.CustomerID
	}
	for _, o := range offers {
		m.offers[o.CustomerID] = o
	}
	return nil
}

func (m *MemoryCustomerRepository) FindByPhone(ctx context.Context, phone string) (*model.CustomerRecord, error) {
	m.mu.RLock()
	id, ok := m.byPhone[phone]
	m.mu.RUnlock()
	if !ok {
		return nil, errx.ErrCustomerNotFound
	}
	return m.FindByID(ctx, id)
}

func (m *MemoryCustomerRepository) FindByID(_ context.Context, customerID string) (*model.CustomerRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.byID[customerID]
	if !ok {
		return nil, errx.ErrCustomerNotFound
	}
	return &c, nil
}

func (m *MemoryCustomerRepository) FindByCustomer(_ context.Context, customerID string) (*model.Offer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.offers[customerID]
	if !ok {
		return nil, errx.ErrCustomerNotFound
	}
	return &o, nil
}

func (m *MemoryCustomerRepository) RateFor(ctx context.Context, customerID string) (float64, error) {
	offer, err := m.FindByCustomer(ctx, customerID)
	if err != nil {
		return 0, err
	}
	return offer.InterestRate, nil
}

var (
	_ model.SessionRepository  = (*MemorySessionRepository)(nil)
	_ model.CustomerRepository = (*MemoryCustomerRepository)(nil)
	_ model.OfferRepository    = (*MemoryCustomerRepository)(nil)
)
