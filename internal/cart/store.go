package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/foodtuck/storefront/internal/models"
)

var (
	ErrItemNotFound = errors.New("cart item not found")
)

// Direction selects whether a quantity change increments or decrements.
type Direction int

const (
	Increment Direction = iota
	Decrement
)

// Snapshot is the cart state handed to subscribers after each mutation.
type Snapshot struct {
	Items    []models.CartItem
	Discount int
}

// ItemCount returns the number of line entries, which is what the header
// badge displays.
func (s Snapshot) ItemCount() int {
	return len(s.Items)
}

// Store owns one cart's state. Every mutation persists the full cart
// snapshot back to storage and notifies subscribers, so observers such
// as the badge counter refresh without being coupled to the store.
type Store struct {
	mu          sync.Mutex
	storage     Storage
	cartKey     string
	discountKey string
	items       []models.CartItem
	discount    int

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// NewStore creates a store persisting under the given key prefix and
// loads any previously persisted cart and discount.
func NewStore(storage Storage, keyPrefix string) (*Store, error) {
	s := &Store{
		storage:     storage,
		cartKey:     keyPrefix + "cart",
		discountKey: keyPrefix + "discount",
		subs:        make(map[int]func(Snapshot)),
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	raw, exists, err := s.storage.Get(s.cartKey)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	if exists {
		if err := json.Unmarshal(raw, &s.items); err != nil {
			return fmt.Errorf("failed to parse persisted cart: %w", err)
		}
	}

	raw, exists, err = s.storage.Get(s.discountKey)
	if err != nil {
		return fmt.Errorf("failed to load discount: %w", err)
	}
	if exists {
		discount, err := strconv.Atoi(string(raw))
		if err != nil {
			return fmt.Errorf("failed to parse persisted discount: %w", err)
		}
		s.discount = discount
	}

	return nil
}

// Subscribe registers a callback invoked after every mutation with the
// new cart snapshot. The returned function unsubscribes it.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// AddItem adds an item to the cart. If an item with the same id already
// exists its quantity is incremented by one; otherwise the item is
// appended with quantity one.
func (s *Store) AddItem(item models.CartItem) error {
	s.mu.Lock()

	found := false
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		s.items = append(s.items, item)
	}

	if err := s.persistCart(); err != nil {
		s.mu.Unlock()
		return err
	}

	snapshot := s.snapshot()
	s.mu.Unlock()

	s.notify(snapshot)
	return nil
}

// ChangeQuantity increments or decrements the matching item's quantity.
// Quantity never drops below one: decrementing a quantity of one leaves
// the item in place unchanged.
func (s *Store) ChangeQuantity(id string, direction Direction) error {
	s.mu.Lock()

	found := false
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		found = true

		quantity := s.items[i].Quantity
		if direction == Increment {
			quantity++
		} else {
			quantity--
		}
		if quantity < 1 {
			quantity = 1
		}
		s.items[i].Quantity = quantity
		break
	}

	if !found {
		s.mu.Unlock()
		return ErrItemNotFound
	}

	if err := s.persistCart(); err != nil {
		s.mu.Unlock()
		return err
	}

	snapshot := s.snapshot()
	s.mu.Unlock()

	s.notify(snapshot)
	return nil
}

// RemoveItem deletes the matching entry entirely, regardless of quantity.
func (s *Store) RemoveItem(id string) error {
	s.mu.Lock()

	index := -1
	for i := range s.items {
		if s.items[i].ID == id {
			index = i
			break
		}
	}

	if index < 0 {
		s.mu.Unlock()
		return ErrItemNotFound
	}

	s.items = append(s.items[:index], s.items[index+1:]...)

	if err := s.persistCart(); err != nil {
		s.mu.Unlock()
		return err
	}

	snapshot := s.snapshot()
	s.mu.Unlock()

	s.notify(snapshot)
	return nil
}

// SetDiscount persists the applied discount percentage. A zero discount
// clears the persisted value entirely, matching the coupon-mismatch
// reset behaviour.
func (s *Store) SetDiscount(percent int) error {
	s.mu.Lock()

	s.discount = percent

	var err error
	if percent == 0 {
		err = s.storage.Delete(s.discountKey)
	} else {
		err = s.storage.Set(s.discountKey, []byte(strconv.Itoa(percent)))
	}
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to persist discount: %w", err)
	}

	snapshot := s.snapshot()
	s.mu.Unlock()

	s.notify(snapshot)
	return nil
}

// Clear empties the cart and removes both persisted keys. Called after a
// successful order.
func (s *Store) Clear() error {
	s.mu.Lock()

	s.items = nil
	s.discount = 0

	if err := s.storage.Delete(s.cartKey); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	if err := s.storage.Delete(s.discountKey); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to clear discount: %w", err)
	}

	snapshot := s.snapshot()
	s.mu.Unlock()

	s.notify(snapshot)
	return nil
}

// Items returns a copy of the current cart lines.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Discount returns the currently applied discount percentage.
func (s *Store) Discount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discount
}

// ItemCount returns the number of line entries in the cart.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// persistCart writes the full cart snapshot to storage. Callers must
// hold the lock.
func (s *Store) persistCart() error {
	raw, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.storage.Set(s.cartKey, raw); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// snapshot copies the current state. Callers must hold the lock.
func (s *Store) snapshot() Snapshot {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return Snapshot{Items: items, Discount: s.discount}
}

func (s *Store) notify(snapshot Snapshot) {
	s.subMu.Lock()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}
