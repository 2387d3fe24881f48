package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/foodtuck/storefront/internal/models"
)

// GROQ projections used against the content repository. They match the
// document schemas (user, order, food, foodCategories, chef, menu, blog).
const (
	userByClerkIDQuery = `*[_type == "user" && clerkId == $clerkId][0]{_id, clerkId, name, email, phone}`

	listFoodsQuery = `*[_type == "food"]{_id, name, price, originalPrice, tags, description, "imageUrl": image.asset->url, available, category->{_id, name}}`

	foodByIDQuery = `*[_type == "food" && _id == $id][0]{_id, name, price, originalPrice, tags, description, "imageUrl": image.asset->url, available, category->{_id, name}}`

	listCategoriesQuery = `*[_type == "foodCategories"]{_id, name}`

	listChefsQuery = `*[_type == "chef"]{_id, name, position, experience, specialty, description, available, "imageUrl": image.asset->url}`

	listMenusQuery = `*[_type == "menu"]{title, "imageUrl": image.asset->url, sections[]{title, items[]{name, description, calories, price}}}`

	listBlogsQuery = `*[_type == "blog"] | order(publishedAt desc){title, description, publishedAt, "image": mainImage.asset->url, author, comments, "slug": slug.current, tags, "menu": menu->title}`
)

// SanityUserRepository implements UserRepository against the remote
// content repository.
type SanityUserRepository struct {
	api ContentAPI
}

// NewSanityUserRepository creates a user repository backed by the given client.
func NewSanityUserRepository(api ContentAPI) *SanityUserRepository {
	return &SanityUserRepository{api: api}
}

// FindByClerkID looks up a user document by its external auth identifier.
// Returns (nil, nil) when the user does not exist.
func (r *SanityUserRepository) FindByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	var user models.User
	err := r.api.Fetch(ctx, userByClerkIDQuery, map[string]interface{}{"clerkId": clerkID}, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.ID == "" {
		return nil, nil
	}

	return &user, nil
}

// Create persists a new user document.
func (r *SanityUserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	doc := map[string]interface{}{
		"_type":   "user",
		"clerkId": user.ClerkID,
		"name":    user.Name,
		"email":   user.Email,
		"phone":   user.Phone,
	}

	id, err := r.api.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = id
	return &user, nil
}

// SanityOrderRepository implements OrderRepository against the remote
// content repository.
type SanityOrderRepository struct {
	api ContentAPI
}

// NewSanityOrderRepository creates an order repository backed by the given client.
func NewSanityOrderRepository(api ContentAPI) *SanityOrderRepository {
	return &SanityOrderRepository{api: api}
}

// Create persists a new order document referencing the order's user.
func (r *SanityOrderRepository) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	items := make([]map[string]interface{}, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, map[string]interface{}{
			"name":     item.Name,
			"price":    item.Price,
			"quantity": item.Quantity,
		})
	}

	doc := map[string]interface{}{
		"_type":           "order",
		"userId":          map[string]interface{}{"_type": "reference", "_ref": order.UserID},
		"items":           items,
		"subtotal":        order.Subtotal,
		"discount":        order.Discount,
		"shipping":        order.Shipping,
		"total":           order.Total,
		"shippingDetails": order.ShippingDetails,
		"createdAt":       order.CreatedAt.Format(time.RFC3339),
	}

	id, err := r.api.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	order.ID = id
	return &order, nil
}

// SanityCatalogRepository implements CatalogRepository against the remote
// content repository.
type SanityCatalogRepository struct {
	api ContentAPI
}

// NewSanityCatalogRepository creates a catalog repository backed by the given client.
func NewSanityCatalogRepository(api ContentAPI) *SanityCatalogRepository {
	return &SanityCatalogRepository{api: api}
}

// ListFoods returns all foods available in the shop.
func (r *SanityCatalogRepository) ListFoods(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	if err := r.api.Fetch(ctx, listFoodsQuery, nil, &foods); err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	return foods, nil
}

// GetFood returns a single food by its document id.
func (r *SanityCatalogRepository) GetFood(ctx context.Context, id string) (*models.Food, error) {
	var food models.Food
	err := r.api.Fetch(ctx, foodByIDQuery, map[string]interface{}{"id": id}, &food)
	if err != nil {
		return nil, fmt.Errorf("failed to get food: %w", err)
	}

	if food.ID == "" {
		return nil, ErrFoodNotFound
	}

	return &food, nil
}

// ListCategories returns all food categories.
func (r *SanityCatalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.api.Fetch(ctx, listCategoriesQuery, nil, &categories); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListChefs returns all chef profiles.
func (r *SanityCatalogRepository) ListChefs(ctx context.Context) ([]models.Chef, error) {
	var chefs []models.Chef
	if err := r.api.Fetch(ctx, listChefsQuery, nil, &chefs); err != nil {
		return nil, fmt.Errorf("failed to list chefs: %w", err)
	}
	return chefs, nil
}

// ListMenus returns all curated menus.
func (r *SanityCatalogRepository) ListMenus(ctx context.Context) ([]models.Menu, error) {
	var menus []models.Menu
	if err := r.api.Fetch(ctx, listMenusQuery, nil, &menus); err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	return menus, nil
}

// ListBlogs returns all blog posts, newest first.
func (r *SanityCatalogRepository) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := r.api.Fetch(ctx, listBlogsQuery, nil, &blogs); err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}
