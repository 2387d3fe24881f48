package repository

import (
	"context"
	"errors"

	"github.com/foodtuck/storefront/internal/models"
)

var (
	ErrFoodNotFound = errors.New("food not found")
)

// ContentAPI is the subset of the content repository client the
// repositories depend on. Consumers define this interface, not the client.
type ContentAPI interface {
	Fetch(ctx context.Context, query string, params map[string]interface{}, dest interface{}) error
	Create(ctx context.Context, doc interface{}) (string, error)
}

// UserRepository defines data access for user documents.
// FindByClerkID returns (nil, nil) when no user matches.
type UserRepository interface {
	FindByClerkID(ctx context.Context, clerkID string) (*models.User, error)
	Create(ctx context.Context, user models.User) (*models.User, error)
}

// OrderRepository defines data access for order documents.
type OrderRepository interface {
	Create(ctx context.Context, order models.Order) (*models.Order, error)
}

// CatalogRepository defines read access to the shop and marketing content.
type CatalogRepository interface {
	ListFoods(ctx context.Context) ([]models.Food, error)
	GetFood(ctx context.Context, id string) (*models.Food, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListChefs(ctx context.Context) ([]models.Chef, error)
	ListMenus(ctx context.Context) ([]models.Menu, error)
	ListBlogs(ctx context.Context) ([]models.Blog, error)
}
