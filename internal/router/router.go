package router

import (
	"database/sql"

	"cantina_backend/internal/handlers"
	"cantina_backend/internal/middleware"
	"cantina_backend/internal/repositories"
	"cantina_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Config carries the environment-derived settings the services need.
type Config struct {
	AdmEmail        string
	AdmPassword     string
	RestockOnDelete bool
	CountryCode     string // phone prefix for WhatsApp links
}

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, cfg Config) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	costRepo := repositories.NewCostRepository(db)
	listRepo := repositories.NewListRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, db, cfg.AdmEmail, cfg.AdmPassword)
	catalogService := services.NewCatalogService(productRepo, db)
	costService := services.NewCostService(costRepo, productRepo, db)
	listService := services.NewListService(listRepo, orderRepo, db)
	orderService := services.NewOrderService(orderRepo, productRepo, listRepo, db, cfg.RestockOnDelete)
	reportService := services.NewReportService(productRepo, orderRepo, costRepo)
	summaryService := services.NewSummaryService(cfg.CountryCode)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService)
	costHandler := handlers.NewCostHandler(costService)
	listHandler := handlers.NewListHandler(listService, orderService, summaryService)
	orderHandler := handlers.NewOrderHandler(orderService, summaryService)
	reportHandler := handlers.NewReportHandler(reportService)

	apiV1 := engine.Group("/api/v1")

	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupProductRoutes(authenticated, productHandler, costHandler)
		SetupListRoutes(authenticated, listHandler)
		SetupOrderRoutes(authenticated, orderHandler)
		SetupReportRoutes(authenticated, reportHandler)
	}
}
