package service

import (
	"context"
	"errors"
	"testing"

	"github.com/foodtuck/storefront/internal/models"
	"github.com/foodtuck/storefront/internal/repository"
	"github.com/foodtuck/storefront/pkg/logger"
)

type failingCatalogRepo struct {
	err error
}

func (f *failingCatalogRepo) ListFoods(ctx context.Context) ([]models.Food, error) {
	return nil, f.err
}

func (f *failingCatalogRepo) GetFood(ctx context.Context, id string) (*models.Food, error) {
	return nil, f.err
}

func (f *failingCatalogRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	return nil, f.err
}

func (f *failingCatalogRepo) ListChefs(ctx context.Context) ([]models.Chef, error) {
	return nil, f.err
}

func (f *failingCatalogRepo) ListMenus(ctx context.Context) ([]models.Menu, error) {
	return nil, f.err
}

func (f *failingCatalogRepo) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return nil, f.err
}

func TestCatalogService_ListsDegradeToEmpty(t *testing.T) {
	repo := &failingCatalogRepo{err: errors.New("upstream unavailable")}
	svc := NewCatalogService(repo, logger.New("error"), DegradeToEmpty)
	ctx := context.Background()

	foods, err := svc.ListFoods(ctx)
	if err != nil {
		t.Errorf("ListFoods() error = %v, want degraded empty result", err)
	}
	if foods == nil || len(foods) != 0 {
		t.Errorf("ListFoods() = %v, want empty slice", foods)
	}

	chefs, err := svc.ListChefs(ctx)
	if err != nil {
		t.Errorf("ListChefs() error = %v, want degraded empty result", err)
	}
	if len(chefs) != 0 {
		t.Errorf("ListChefs() = %v, want empty slice", chefs)
	}

	blogs, err := svc.ListBlogs(ctx)
	if err != nil {
		t.Errorf("ListBlogs() error = %v, want degraded empty result", err)
	}
	if len(blogs) != 0 {
		t.Errorf("ListBlogs() = %v, want empty slice", blogs)
	}
}

func TestCatalogService_ListsPropagateWhenStrict(t *testing.T) {
	upstreamErr := errors.New("upstream unavailable")
	svc := NewCatalogService(&failingCatalogRepo{err: upstreamErr}, logger.New("error"), Propagate)

	if _, err := svc.ListFoods(context.Background()); !errors.Is(err, upstreamErr) {
		t.Errorf("ListFoods() error = %v, want propagated upstream error", err)
	}
}

func TestCatalogService_GetFoodAlwaysStrict(t *testing.T) {
	upstreamErr := errors.New("upstream unavailable")
	svc := NewCatalogService(&failingCatalogRepo{err: upstreamErr}, logger.New("error"), DegradeToEmpty)

	if _, err := svc.GetFood(context.Background(), "food-1"); !errors.Is(err, upstreamErr) {
		t.Errorf("GetFood() error = %v, want propagated upstream error", err)
	}
}

func TestCatalogService_HappyPath(t *testing.T) {
	repo := repository.NewInMemoryCatalogRepository()
	svc := NewCatalogService(repo, logger.New("error"), DegradeToEmpty)
	ctx := context.Background()

	foods, err := svc.ListFoods(ctx)
	if err != nil {
		t.Fatalf("ListFoods() error = %v", err)
	}
	if len(foods) == 0 {
		t.Error("expected seeded foods")
	}

	food, err := svc.GetFood(ctx, foods[0].ID)
	if err != nil {
		t.Fatalf("GetFood() error = %v", err)
	}
	if food.ID != foods[0].ID {
		t.Errorf("GetFood() id = %s, want %s", food.ID, foods[0].ID)
	}

	if _, err := svc.GetFood(ctx, "no-such-food"); !errors.Is(err, repository.ErrFoodNotFound) {
		t.Errorf("GetFood() error = %v, want ErrFoodNotFound", err)
	}
}
