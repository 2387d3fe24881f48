package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/foodtuck/storefront/internal/repository"
	"github.com/foodtuck/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

// CatalogHandler serves the shop and marketing content endpoints. List
// surfaces degrade to empty results when the content repository is
// unreachable; the single-food endpoint is strict.
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

// ListFoods handles GET /api/foods
func (h *CatalogHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.service.ListFoods(r.Context())
	if err != nil {
		h.logger.Error("failed to list foods", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, foods, h.logger)
}

// GetFood handles GET /api/foods/{foodId}
// - 200: successful operation
// - 404: food not found
// - 500: repository failure
func (h *CatalogHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	foodID := chi.URLParam(r, "foodId")

	food, err := h.service.GetFood(r.Context(), foodID)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			h.logger.Info("food not found", "foodId", foodID)
			WriteError(w, http.StatusNotFound, "Food not found", h.logger)
			return
		}

		h.logger.Error("failed to get food", "foodId", foodID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, food, h.logger)
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, categories, h.logger)
}

// ListChefs handles GET /api/chefs
func (h *CatalogHandler) ListChefs(w http.ResponseWriter, r *http.Request) {
	chefs, err := h.service.ListChefs(r.Context())
	if err != nil {
		h.logger.Error("failed to list chefs", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, chefs, h.logger)
}

// ListMenus handles GET /api/menus
func (h *CatalogHandler) ListMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.service.ListMenus(r.Context())
	if err != nil {
		h.logger.Error("failed to list menus", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, menus, h.logger)
}

// ListBlogs handles GET /api/blogs
func (h *CatalogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.service.ListBlogs(r.Context())
	if err != nil {
		h.logger.Error("failed to list blogs", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, blogs, h.logger)
}
