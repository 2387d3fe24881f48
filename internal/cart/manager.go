package cart

import (
	"fmt"
	"sync"
)

// Manager hands out one Store per user, creating stores lazily. Each
// store persists under keys namespaced by the user id, so carts of
// different users never collide in shared storage.
type Manager struct {
	mu      sync.Mutex
	storage Storage
	stores  map[string]*Store
}

// NewManager creates a manager over the given storage backend.
func NewManager(storage Storage) *Manager {
	return &Manager{
		storage: storage,
		stores:  make(map[string]*Store),
	}
}

// StoreFor returns the cart store for a user, creating and loading it on
// first use.
func (m *Manager) StoreFor(userID string) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, exists := m.stores[userID]; exists {
		return store, nil
	}

	store, err := NewStore(m.storage, userID+":")
	if err != nil {
		return nil, fmt.Errorf("failed to open cart for user %s: %w", userID, err)
	}

	m.stores[userID] = store
	return store, nil
}
