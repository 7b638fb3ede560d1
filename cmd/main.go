package main

import (
	"context"
	"fmt"
	"log"
	"os"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"github.com/joho/godotenv"

	"breakfastpos/internal/caching"
	"breakfastpos/internal/config"
	"breakfastpos/internal/handlers"
	"breakfastpos/internal/jobs/background"
	"breakfastpos/internal/middleware"
	"breakfastpos/internal/models"
	"breakfastpos/internal/repositories"
	"breakfastpos/internal/services"
	"breakfastpos/pkg/database"
)

const version = "1.0.0"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = random.String(32)
		log.Printf("WARNING: JWT_SECRET not set, using a generated secret; tokens will not survive restarts")
	}

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	redisClient := caching.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	cacheSvc := caching.NewRedisCacheService(redisClient)

	// Repositories
	orderRepo := repositories.NewOrderRepo(pool)
	productRepo := repositories.NewProductRepo(pool)
	categoryRepo := repositories.NewCategoryRepo(pool)
	userRepo := repositories.NewUserRepo(pool)

	// Services
	menuSvc := services.NewMenuService(productRepo, categoryRepo, cacheSvc)
	printSvc := services.NewPrintService()
	notifySvc := services.NewNotifyService()
	orderSvc := services.NewOrderService(orderRepo, menuSvc, printSvc, notifySvc)
	adminOrderSvc := services.NewAdminOrderService(orderRepo, notifySvc)
	statsSvc := services.NewStatisticsService(orderRepo, productRepo, cacheSvc)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	// First-run data
	if err := database.SeedMenu(ctx, categoryRepo, productRepo); err != nil {
		log.Printf("WARN: menu seeding failed: %v", err)
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword != "" {
		if err := database.SeedAdminUser(ctx, userRepo, "admin", adminPassword, services.HashPassword); err != nil {
			log.Printf("WARN: admin user seeding failed: %v", err)
		}
	}

	// Handlers
	authHandlers := handlers.NewAuthHandlers(authSvc)
	menuHandlers := handlers.NewMenuHandlers(menuSvc)
	orderHandlers := handlers.NewOrderHandlers(orderSvc)
	adminOrderHandlers := handlers.NewAdminOrderHandlers(adminOrderSvc)
	adminProductHandlers := handlers.NewAdminProductHandlers(menuSvc)
	statsHandlers := handlers.NewStatisticsHandlers(statsSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, redisClient)

	// Background jobs
	scheduler := background.NewJobScheduler(statsSvc)
	if err := scheduler.Start(); err != nil {
		log.Printf("WARN: job scheduler failed to start: %v", err)
	}
	defer scheduler.Stop()

	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandlers.Login)
	api.GET("/menu/products", menuHandlers.ListProducts)
	api.GET("/menu/products/:id", menuHandlers.GetProduct)
	api.GET("/menu/categories", menuHandlers.ListCategories)
	api.POST("/orders/checkout", orderHandlers.Checkout)

	// Staff routes require a valid token; admin routes additionally require
	// the admin role.
	admin := api.Group("/admin")
	admin.Use(echojwt.WithConfig(middleware.JWTConfig(cfg.JWTSecret)))
	admin.Use(middleware.RequireRole(models.RoleAdmin))

	admin.GET("/orders", adminOrderHandlers.ListOrders)
	admin.GET("/orders/:id", adminOrderHandlers.GetOrder)
	admin.PUT("/orders/:id/status", adminOrderHandlers.UpdateStatus)

	admin.GET("/products", menuHandlers.ListProducts)
	admin.POST("/products", adminProductHandlers.CreateProduct)
	admin.PUT("/products/:id", adminProductHandlers.UpdateProduct)
	admin.DELETE("/products/:id", adminProductHandlers.DeleteProduct)
	admin.PATCH("/products/:id/toggle", adminProductHandlers.ToggleAvailability)

	admin.POST("/categories", adminProductHandlers.CreateCategory)
	admin.DELETE("/categories/:id", adminProductHandlers.DeleteCategory)

	admin.GET("/statistics/today", statsHandlers.Today)
	admin.GET("/statistics/revenue", statsHandlers.Revenue)
	admin.GET("/statistics/top-products", statsHandlers.TopProducts)

	log.Printf("Breakfast POS server v%s starting on port %d", version, cfg.Port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
