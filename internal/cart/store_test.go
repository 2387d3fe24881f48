package cart

import (
	"path/filepath"
	"testing"

	"github.com/foodtuck/storefront/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(NewMemoryStorage(), "")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestStore_AddItem(t *testing.T) {
	store := newTestStore(t)

	if err := store.AddItem(models.CartItem{ID: "food-1", Name: "Pizza", Price: 14.99}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Quantity != 1 {
		t.Errorf("new item quantity = %d, want 1", items[0].Quantity)
	}

	// Adding the same id again increments the quantity instead of
	// appending a second line.
	if err := store.AddItem(models.CartItem{ID: "food-1", Name: "Pizza", Price: 14.99}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	items = store.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item after duplicate add, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("quantity after duplicate add = %d, want 2", items[0].Quantity)
	}
}

func TestStore_ChangeQuantity(t *testing.T) {
	tests := []struct {
		name      string
		startQty  int
		direction Direction
		wantQty   int
	}{
		{name: "increment", startQty: 1, direction: Increment, wantQty: 2},
		{name: "decrement", startQty: 3, direction: Decrement, wantQty: 2},
		{name: "decrement at one stays at one", startQty: 1, direction: Decrement, wantQty: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			if err := store.AddItem(models.CartItem{ID: "food-1", Name: "Burger", Price: 13.99}); err != nil {
				t.Fatalf("AddItem() error = %v", err)
			}
			for i := 1; i < tt.startQty; i++ {
				if err := store.ChangeQuantity("food-1", Increment); err != nil {
					t.Fatalf("setup increment error = %v", err)
				}
			}

			if err := store.ChangeQuantity("food-1", tt.direction); err != nil {
				t.Fatalf("ChangeQuantity() error = %v", err)
			}

			if got := store.Items()[0].Quantity; got != tt.wantQty {
				t.Errorf("quantity = %d, want %d", got, tt.wantQty)
			}
		})
	}

	t.Run("unknown item", func(t *testing.T) {
		store := newTestStore(t)
		if err := store.ChangeQuantity("missing", Increment); err != ErrItemNotFound {
			t.Errorf("ChangeQuantity() error = %v, want ErrItemNotFound", err)
		}
	})
}

func TestStore_RemoveItem(t *testing.T) {
	store := newTestStore(t)

	for _, id := range []string{"food-1", "food-2", "food-3"} {
		if err := store.AddItem(models.CartItem{ID: id, Name: id, Price: 10}); err != nil {
			t.Fatalf("AddItem(%s) error = %v", id, err)
		}
	}

	if err := store.RemoveItem("food-2"); err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}

	items := store.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after removal, got %d", len(items))
	}
	for _, item := range items {
		if item.ID == "food-2" {
			t.Errorf("removed item still present")
		}
	}

	if err := store.RemoveItem("food-2"); err != ErrItemNotFound {
		t.Errorf("RemoveItem() on absent item error = %v, want ErrItemNotFound", err)
	}
}

func TestStore_SetDiscount(t *testing.T) {
	storage := NewMemoryStorage()
	store, err := NewStore(storage, "")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if err := store.SetDiscount(15); err != nil {
		t.Fatalf("SetDiscount() error = %v", err)
	}
	if store.Discount() != 15 {
		t.Errorf("discount = %d, want 15", store.Discount())
	}
	if _, exists, _ := storage.Get("discount"); !exists {
		t.Error("discount not persisted")
	}

	// A zero discount clears the persisted value entirely.
	if err := store.SetDiscount(0); err != nil {
		t.Fatalf("SetDiscount(0) error = %v", err)
	}
	if store.Discount() != 0 {
		t.Errorf("discount = %d, want 0", store.Discount())
	}
	if _, exists, _ := storage.Get("discount"); exists {
		t.Error("persisted discount not cleared")
	}
}

func TestStore_StateSurvivesReload(t *testing.T) {
	storage := NewMemoryStorage()

	store, err := NewStore(storage, "")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := store.AddItem(models.CartItem{ID: "food-1", Name: "Pizza", Price: 14.99}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if err := store.ChangeQuantity("food-1", Increment); err != nil {
		t.Fatalf("ChangeQuantity() error = %v", err)
	}
	if err := store.SetDiscount(15); err != nil {
		t.Fatalf("SetDiscount() error = %v", err)
	}

	// A second store over the same storage sees the persisted state,
	// like a page reload reading local storage.
	reloaded, err := NewStore(storage, "")
	if err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}

	items := reloaded.Items()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Errorf("reloaded cart = %+v, want one item with quantity 2", items)
	}
	if reloaded.Discount() != 15 {
		t.Errorf("reloaded discount = %d, want 15", reloaded.Discount())
	}
}

func TestStore_Clear(t *testing.T) {
	storage := NewMemoryStorage()
	store, err := NewStore(storage, "")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if err := store.AddItem(models.CartItem{ID: "food-1", Name: "Pizza", Price: 14.99}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if err := store.SetDiscount(15); err != nil {
		t.Fatalf("SetDiscount() error = %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	if store.ItemCount() != 0 {
		t.Errorf("item count after clear = %d, want 0", store.ItemCount())
	}
	if store.Discount() != 0 {
		t.Errorf("discount after clear = %d, want 0", store.Discount())
	}
	if _, exists, _ := storage.Get("cart"); exists {
		t.Error("cart key still persisted after clear")
	}
	if _, exists, _ := storage.Get("discount"); exists {
		t.Error("discount key still persisted after clear")
	}
}

func TestStore_SubscribersNotifiedOnEveryMutation(t *testing.T) {
	store := newTestStore(t)

	var notifications []Snapshot
	unsubscribe := store.Subscribe(func(s Snapshot) {
		notifications = append(notifications, s)
	})

	if err := store.AddItem(models.CartItem{ID: "food-1", Name: "Pizza", Price: 14.99}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if err := store.ChangeQuantity("food-1", Increment); err != nil {
		t.Fatalf("ChangeQuantity() error = %v", err)
	}
	if err := store.RemoveItem("food-1"); err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}

	if len(notifications) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(notifications))
	}
	if notifications[0].ItemCount() != 1 {
		t.Errorf("first notification item count = %d, want 1", notifications[0].ItemCount())
	}
	if notifications[2].ItemCount() != 0 {
		t.Errorf("last notification item count = %d, want 0", notifications[2].ItemCount())
	}

	unsubscribe()
	if err := store.AddItem(models.CartItem{ID: "food-2", Name: "Burger", Price: 13.99}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if len(notifications) != 3 {
		t.Errorf("unsubscribed observer still notified, got %d notifications", len(notifications))
	}
}

func TestFileStorage_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart-data.json")

	storage, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("failed to open storage: %v", err)
	}

	store, err := NewStore(storage, "user-1:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := store.AddItem(models.CartItem{ID: "food-1", Name: "Pizza", Price: 14.99}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	reopened, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("failed to reopen storage: %v", err)
	}
	reloaded, err := NewStore(reopened, "user-1:")
	if err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}

	if reloaded.ItemCount() != 1 {
		t.Errorf("reloaded item count = %d, want 1", reloaded.ItemCount())
	}
}

func TestManager_NamespacesCartsPerUser(t *testing.T) {
	manager := NewManager(NewMemoryStorage())

	alice, err := manager.StoreFor("alice")
	if err != nil {
		t.Fatalf("StoreFor(alice) error = %v", err)
	}
	bob, err := manager.StoreFor("bob")
	if err != nil {
		t.Fatalf("StoreFor(bob) error = %v", err)
	}

	if err := alice.AddItem(models.CartItem{ID: "food-1", Name: "Pizza", Price: 14.99}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	if bob.ItemCount() != 0 {
		t.Errorf("bob's cart has %d items, want 0", bob.ItemCount())
	}

	again, err := manager.StoreFor("alice")
	if err != nil {
		t.Fatalf("StoreFor(alice) error = %v", err)
	}
	if again != alice {
		t.Error("manager returned a different store for the same user")
	}
}
