package service

import (
	"context"
	"log/slog"

	"github.com/foodtuck/storefront/internal/models"
	"github.com/foodtuck/storefront/internal/repository"
)

// ErrorPolicy selects how a catalog read reacts to a repository failure.
// Display surfaces (lists on marketing pages) degrade to an empty result
// set; anything on the strict path propagates the error to the caller.
type ErrorPolicy int

const (
	// DegradeToEmpty swallows the error, logs it, and returns no results.
	DegradeToEmpty ErrorPolicy = iota
	// Propagate surfaces the error to the caller unchanged.
	Propagate
)

// CatalogService serves shop and marketing content reads.
type CatalogService struct {
	repo       repository.CatalogRepository
	log        *slog.Logger
	listPolicy ErrorPolicy
}

// NewCatalogService creates a catalog service. listPolicy applies to the
// list surfaces; single-item reads always propagate.
func NewCatalogService(repo repository.CatalogRepository, log *slog.Logger, listPolicy ErrorPolicy) *CatalogService {
	return &CatalogService{
		repo:       repo,
		log:        log,
		listPolicy: listPolicy,
	}
}

// ListFoods returns the shop's foods.
func (s *CatalogService) ListFoods(ctx context.Context) ([]models.Food, error) {
	foods, err := s.repo.ListFoods(ctx)
	if err != nil {
		if s.listPolicy == DegradeToEmpty {
			s.log.Warn("food list unavailable, serving empty result", "error", err)
			return []models.Food{}, nil
		}
		return nil, err
	}
	if foods == nil {
		foods = []models.Food{}
	}
	return foods, nil
}

// GetFood returns a single food. Not-found and repository errors always
// propagate; a product page has nothing sensible to degrade to.
func (s *CatalogService) GetFood(ctx context.Context, id string) (*models.Food, error) {
	return s.repo.GetFood(ctx, id)
}

// ListCategories returns the food categories used for shop filtering.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		if s.listPolicy == DegradeToEmpty {
			s.log.Warn("category list unavailable, serving empty result", "error", err)
			return []models.Category{}, nil
		}
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// ListChefs returns the chef profiles.
func (s *CatalogService) ListChefs(ctx context.Context) ([]models.Chef, error) {
	chefs, err := s.repo.ListChefs(ctx)
	if err != nil {
		if s.listPolicy == DegradeToEmpty {
			s.log.Warn("chef list unavailable, serving empty result", "error", err)
			return []models.Chef{}, nil
		}
		return nil, err
	}
	if chefs == nil {
		chefs = []models.Chef{}
	}
	return chefs, nil
}

// ListMenus returns the curated menus.
func (s *CatalogService) ListMenus(ctx context.Context) ([]models.Menu, error) {
	menus, err := s.repo.ListMenus(ctx)
	if err != nil {
		if s.listPolicy == DegradeToEmpty {
			s.log.Warn("menu list unavailable, serving empty result", "error", err)
			return []models.Menu{}, nil
		}
		return nil, err
	}
	if menus == nil {
		menus = []models.Menu{}
	}
	return menus, nil
}

// ListBlogs returns the blog posts, newest first.
func (s *CatalogService) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	blogs, err := s.repo.ListBlogs(ctx)
	if err != nil {
		if s.listPolicy == DegradeToEmpty {
			s.log.Warn("blog list unavailable, serving empty result", "error", err)
			return []models.Blog{}, nil
		}
		return nil, err
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	return blogs, nil
}
