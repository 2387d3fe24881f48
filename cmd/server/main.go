package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/foodtuck/storefront/internal/cart"
	"github.com/foodtuck/storefront/internal/config"
	"github.com/foodtuck/storefront/internal/coupon"
	"github.com/foodtuck/storefront/internal/handlers"
	"github.com/foodtuck/storefront/internal/middleware"
	"github.com/foodtuck/storefront/internal/repository"
	"github.com/foodtuck/storefront/internal/sanity"
	"github.com/foodtuck/storefront/internal/service"
	"github.com/foodtuck/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize repositories: content repository when a token is
	// configured, seeded in-memory otherwise (dev mode)
	var (
		userRepo    repository.UserRepository
		orderRepo   repository.OrderRepository
		catalogRepo repository.CatalogRepository
	)
	if cfg.Sanity.Token != "" {
		client := sanity.NewClient(cfg.Sanity)
		userRepo = repository.NewSanityUserRepository(client)
		orderRepo = repository.NewSanityOrderRepository(client)
		catalogRepo = repository.NewSanityCatalogRepository(client)
		log.Info("using sanity content repository",
			"project_id", cfg.Sanity.ProjectID,
			"dataset", cfg.Sanity.Dataset,
		)
	} else {
		userRepo = repository.NewInMemoryUserRepository()
		orderRepo = repository.NewInMemoryOrderRepository()
		catalogRepo = repository.NewInMemoryCatalogRepository()
		log.Warn("SANITY_API_TOKEN not set, using in-memory content repository")
	}

	// Initialize cart storage
	cartStorage, err := cart.NewFileStorage(cfg.Cart.StoragePath)
	if err != nil {
		log.Error("failed to open cart storage", "path", cfg.Cart.StoragePath, "error", err)
		os.Exit(1)
	}
	cartManager := cart.NewManager(cartStorage)

	// Initialize coupon validator
	couponValidator := coupon.NewValidator(cfg.Coupon)

	// Initialize services
	orderService := service.NewOrderService(userRepo, orderRepo)
	catalogService := service.NewCatalogService(catalogRepo, log, service.DegradeToEmpty)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	catalogHandler := handlers.NewCatalogHandler(catalogService, log)
	cartHandler := handlers.NewCartHandler(cartManager, couponValidator, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-User-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Order placement
		r.Post("/placeOrder", orderHandler.PlaceOrder)

		// Shop and marketing content
		r.Get("/foods", catalogHandler.ListFoods)
		r.Get("/foods/{foodId}", catalogHandler.GetFood)
		r.Get("/categories", catalogHandler.ListCategories)
		r.Get("/chefs", catalogHandler.ListChefs)
		r.Get("/menus", catalogHandler.ListMenus)
		r.Get("/blogs", catalogHandler.ListBlogs)

		// Per-user shopping cart
		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.UserID())
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Get("/count", cartHandler.Count)
			r.Post("/items", cartHandler.AddItem)
			r.Post("/items/{itemId}/quantity", cartHandler.ChangeQuantity)
			r.Delete("/items/{itemId}", cartHandler.RemoveItem)
			r.Post("/coupon", cartHandler.ApplyCoupon)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
