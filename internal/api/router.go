package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Danjes623/Inventario-SIGI/internal/api/handler"
	"github.com/Danjes623/Inventario-SIGI/internal/api/middleware"
	"github.com/Danjes623/Inventario-SIGI/internal/core/domain"
	"github.com/Danjes623/Inventario-SIGI/internal/core/service"
	mongostore "github.com/Danjes623/Inventario-SIGI/internal/infrastructure/db/mongo"
	redisstore "github.com/Danjes623/Inventario-SIGI/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	sessionRepo := mongostore.NewSessionRepository(db)
	productRepo := mongostore.NewProductRepository(db)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour, log)
	sessionService := service.NewSessionService(sessionRepo, log)
	productService := service.NewProductService(productRepo, log)
	categoryService := service.NewCategoryService(
		productRepo, // store-side aggregation pipeline
		service.NewLocalSummaryProvider(productRepo),
		redisstore.NewSummaryCache(rdb, log),
		log,
	)

	authHandler := handler.NewAuthHandler(authService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	productHandler := handler.NewProductHandler(productService, categoryService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.PUT("/auth/profile/:id", authHandler.UpdateProfile)
	e.GET("/auth/user/:id", authHandler.GetUser)

	// --- Session routes ---
	e.POST("/auth/register-session", sessionHandler.RegisterSession)
	e.POST("/auth/validate-session", sessionHandler.ValidateSession)
	e.POST("/auth/logout", sessionHandler.Logout)
	e.POST("/auth/logout-beacon", sessionHandler.LogoutBeacon)
	e.POST("/auth/cleanup-sessions", sessionHandler.CleanupSessions,
		middleware.Auth(jwtSecret), middleware.RBAC(domain.RoleAdmin))

	// --- Product routes ---
	e.GET("/productos", productHandler.List)
	e.POST("/productos", productHandler.Create)
	e.GET("/productos/categorias/lista", productHandler.ListCategories)
	e.GET("/productos/:id", productHandler.Get)
	e.PUT("/productos/:id", productHandler.Update)
	e.DELETE("/productos/:id", productHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
