package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopkit/commerce-api/internal/api/handler"
	"github.com/shopkit/commerce-api/internal/api/middleware"
	"github.com/shopkit/commerce-api/internal/core/domain"
	"github.com/shopkit/commerce-api/internal/core/service"
	mongostore "github.com/shopkit/commerce-api/internal/infrastructure/db/mongo"
	"github.com/shopkit/commerce-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	productRepo := mongostore.NewProductRepository(db)
	categoryRepo := mongostore.NewCategoryRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, log)
	productService := service.NewProductService(productRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	authenticated := middleware.Auth(cfg.JWTSecret, cfg.TokenHeader)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- User routes (public) ---
	e.POST("/users/register", authHandler.Register)
	e.POST("/users/login", authHandler.Login)

	// --- Product routes ---
	products := e.Group("/products", authenticated)
	products.POST("", productHandler.Create, adminOnly)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.PUT("/:id", productHandler.Update, adminOnly)
	products.DELETE("/:id", productHandler.Delete, adminOnly)

	// --- Category routes ---
	categories := e.Group("/categories", authenticated)
	categories.POST("", categoryHandler.Create, adminOnly)
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.PUT("/:id", categoryHandler.Update, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, adminOnly)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
