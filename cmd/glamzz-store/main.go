package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glamzz/glamzz-store/internal/api/handlers"
	"github.com/glamzz/glamzz-store/internal/api/middleware"
	"github.com/glamzz/glamzz-store/internal/catalog"
	"github.com/glamzz/glamzz-store/internal/config"
	"github.com/glamzz/glamzz-store/internal/health"
	"github.com/glamzz/glamzz-store/internal/metrics"
	repository "github.com/glamzz/glamzz-store/internal/repositories"
	service "github.com/glamzz/glamzz-store/internal/services"
	"github.com/glamzz/glamzz-store/pkg/gemini"
	"github.com/glamzz/glamzz-store/pkg/sendgrid"
	"github.com/joho/godotenv"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// .env is optional, real env vars win
	_ = godotenv.Load()

	// Load config
	cfg := config.MustLoad()

	// Catalog: parsed and price-coerced exactly once
	cat, err := catalog.Load()
	if err != nil {
		slog.Error("❌ Error loading the product catalog", "error", err.Error())
		os.Exit(1)
	}

	// All session state lives in memory for the lifetime of this process
	repos := repository.New()

	var geminiClient gemini.Client

	if cfg.Gemini.APIKey != "" {
		geminiClient, err = gemini.NewClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.AspectRatio)
		if err != nil {
			slog.Error("❌ Error creating the image-generation client", "error", err.Error())
			os.Exit(1)
		}
	} else {
		slog.Warn("⚠️ GEMINI_API_KEY not set, catalog keeps its default images")
	}

	var emailService sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	jwtKey := []byte(cfg.Security.JWTKey)

	enrichmentService := service.NewEnrichmentService(repos.Images, cat, geminiClient, cfg.Enrichment.Workers)
	enrichmentHandler := handlers.NewEnrichmentHandler(enrichmentService)
	productService := service.NewProductService(cat, enrichmentService)
	productHandler := handlers.NewProductHandler(productService)
	cartService := service.NewCartService(repos.Cart, cat)
	cartHandler := handlers.NewCartHandler(cartService)
	orderService := service.NewOrderService(repos.Orders, repos.Cart, repos.Session, cat, service.RandomOrderIDGenerator{}, emailService)
	orderHandler := handlers.NewOrderHandler(orderService)
	userService := service.NewUserService(repos.Session, jwtKey)
	userHandler := handlers.NewUserHandler(userService)
	reviewService := service.NewReviewService(repos.Reviews, repos.Session, cat)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	wishlistService := service.NewWishlistService(repos.Wishlist, cat)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	partnerService := service.NewPartnerService(repos.Partners, emailService)
	partnerHandler := handlers.NewPartnerHandler(partnerService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(&health.Endpoints{
		Catalog:      cat,
		GeminiClient: geminiClient,
	})
	if err != nil {
		slog.Error("❌ Error creating the health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("session state initialized", slog.String("env", cfg.Env), slog.Int("products", cat.Size()))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("POST /api/v1/users/logout", authMiddleware.Authenticate(userHandler.Logout()))
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/categories", productHandler.Categories())
	routerMux.HandleFunc("GET /api/v1/products/{id}/reviews", reviewHandler.ListReviews())
	routerMux.HandleFunc("POST /api/v1/products/{id}/reviews", authMiddleware.Authenticate(reviewHandler.AddReview()))
	routerMux.HandleFunc("POST /api/v1/products/{id}/image/regenerate", enrichmentHandler.Regenerate())
	routerMux.HandleFunc("POST /api/v1/products/{id}/image/commit", enrichmentHandler.Commit())
	routerMux.HandleFunc("POST /api/v1/products/{id}/image/upload", enrichmentHandler.Upload())
	routerMux.HandleFunc("GET /api/v1/enrichment/status", enrichmentHandler.Status())
	routerMux.HandleFunc("GET /api/v1/carts", authMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/carts/items", authMiddleware.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/carts/items", authMiddleware.Authenticate(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/carts/items", authMiddleware.Authenticate(cartHandler.RemoveItem()))
	routerMux.HandleFunc("POST /api/v1/orders", authMiddleware.Authenticate(orderHandler.Checkout()))
	routerMux.HandleFunc("POST /api/v1/orders/buy-now", authMiddleware.Authenticate(orderHandler.BuyNow()))
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("PATCH /api/v1/orders/{id}/status", authMiddleware.Authenticate(orderHandler.AdvanceStatus()))
	routerMux.HandleFunc("POST /api/v1/wishlist/{id}", authMiddleware.Authenticate(wishlistHandler.Toggle()))
	routerMux.HandleFunc("GET /api/v1/wishlist", authMiddleware.Authenticate(wishlistHandler.List()))
	routerMux.HandleFunc("POST /api/v1/partners/{kind}", partnerHandler.Apply())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	// Kick off the catalog enrichment batch without blocking startup. Each
	// product settles independently; the storefront renders partial progress.
	if cfg.Enrichment.Enabled && geminiClient != nil {
		go enrichmentService.EnrichAll(context.Background(), cat.Products())
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {

		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
