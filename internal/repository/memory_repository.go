package repository

import (
	"context"
	"sync"

	"github.com/foodtuck/storefront/internal/models"
	"github.com/google/uuid"
)

// InMemoryUserRepository implements UserRepository with in-memory storage.
// Used in dev mode (no content repository token) and in tests.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User // keyed by document id
}

// NewInMemoryUserRepository creates an empty in-memory user repository.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]models.User),
	}
}

// FindByClerkID returns the user with the given external auth id, or (nil, nil).
func (r *InMemoryUserRepository) FindByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ClerkID == clerkID {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

// Create stores a new user with a generated document id.
func (r *InMemoryUserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = uuid.New().String()
	r.users[user.ID] = user
	return &user, nil
}

// Count returns the number of stored users.
func (r *InMemoryUserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// InMemoryOrderRepository implements OrderRepository with in-memory storage.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

// NewInMemoryOrderRepository creates an empty in-memory order repository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// Create stores a new order with a generated document id.
func (r *InMemoryOrderRepository) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = uuid.New().String()
	r.orders[order.ID] = order
	return &order, nil
}

// Get returns a stored order by id, or nil.
func (r *InMemoryOrderRepository) Get(id string) *models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if order, exists := r.orders[id]; exists {
		return &order
	}
	return nil
}

// Count returns the number of stored orders.
func (r *InMemoryOrderRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

// InMemoryCatalogRepository implements CatalogRepository with seed data so
// the storefront is browsable without a content repository connection.
type InMemoryCatalogRepository struct {
	foods      map[string]models.Food
	categories []models.Category
	chefs      []models.Chef
	menus      []models.Menu
	blogs      []models.Blog
}

// NewInMemoryCatalogRepository creates a catalog repository with seed data.
func NewInMemoryCatalogRepository() *InMemoryCatalogRepository {
	pizza := models.Category{ID: "cat-pizza", Name: "Pizza"}
	burger := models.Category{ID: "cat-burger", Name: "Burger"}
	dessert := models.Category{ID: "cat-dessert", Name: "Dessert"}
	drink := models.Category{ID: "cat-drink", Name: "Drink"}

	foods := map[string]models.Food{
		"food-1": {ID: "food-1", Name: "Margherita Pizza", Price: 14.99, OriginalPrice: 17.99, Tags: []string{"Popular"}, Available: true, Category: pizza},
		"food-2": {ID: "food-2", Name: "Pepperoni Pizza", Price: 16.99, Available: true, Category: pizza},
		"food-3": {ID: "food-3", Name: "Classic Burger", Price: 13.99, Tags: []string{"Popular"}, Available: true, Category: burger},
		"food-4": {ID: "food-4", Name: "Cheese Burger", Price: 12.49, Available: true, Category: burger},
		"food-5": {ID: "food-5", Name: "Chocolate Muffin", Price: 4.99, Available: true, Category: dessert},
		"food-6": {ID: "food-6", Name: "Fresh Lime", Price: 3.49, Available: true, Category: drink},
	}

	chefs := []models.Chef{
		{ID: "chef-1", Name: "Tahmina Rumi", Position: "Head Chef", Experience: 12, Specialty: "Italian Cuisine", Available: true},
		{ID: "chef-2", Name: "Jorina Begum", Position: "Sous Chef", Experience: 8, Specialty: "Grill", Available: true},
	}

	menus := []models.Menu{
		{
			Title: "Starter Menu",
			Sections: []models.MenuSection{
				{
					Title: "Appetizers",
					Items: []models.MenuItem{
						{Name: "Alder Grilled Chinook Salmon", Calories: 560, Price: 32},
						{Name: "Berries and Creme Tart", Calories: 420, Price: 25},
					},
				},
			},
		},
	}

	return &InMemoryCatalogRepository{
		foods:      foods,
		categories: []models.Category{pizza, burger, dessert, drink},
		chefs:      chefs,
		menus:      menus,
		blogs:      []models.Blog{},
	}
}

// ListFoods returns all seeded foods.
func (r *InMemoryCatalogRepository) ListFoods(ctx context.Context) ([]models.Food, error) {
	foods := make([]models.Food, 0, len(r.foods))
	for _, food := range r.foods {
		foods = append(foods, food)
	}
	return foods, nil
}

// GetFood returns a seeded food by id.
func (r *InMemoryCatalogRepository) GetFood(ctx context.Context, id string) (*models.Food, error) {
	food, exists := r.foods[id]
	if !exists {
		return nil, ErrFoodNotFound
	}
	return &food, nil
}

// ListCategories returns all seeded categories.
func (r *InMemoryCatalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	return r.categories, nil
}

// ListChefs returns all seeded chefs.
func (r *InMemoryCatalogRepository) ListChefs(ctx context.Context) ([]models.Chef, error) {
	return r.chefs, nil
}

// ListMenus returns all seeded menus.
func (r *InMemoryCatalogRepository) ListMenus(ctx context.Context) ([]models.Menu, error) {
	return r.menus, nil
}

// ListBlogs returns all seeded blog posts.
func (r *InMemoryCatalogRepository) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return r.blogs, nil
}
