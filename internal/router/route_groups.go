package router

import (
	"cantina_backend/internal/handlers"
	"cantina_backend/internal/middleware"
	"cantina_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupPublicAuthRoutes registers the unauthenticated auth endpoints.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/register", authHandler.RegisterJovem)
	group.POST("/login", authHandler.Login)
	group.POST("/login-adm", authHandler.LoginAdm)
	group.POST("/refresh-token", authHandler.RefreshToken)
}

// SetupAuthenticatedAuthRoutes registers auth endpoints that require a token.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.GET("/me", authHandler.GetCurrentUser)
}

// SetupProductRoutes registers catalog and cost endpoints. Reads are open to
// every authenticated user; writes are admin-only.
func SetupProductRoutes(group *gin.RouterGroup, productHandler *handlers.ProductHandler, costHandler *handlers.CostHandler) {
	products := group.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)

		adm := products.Group("")
		adm.Use(middleware.RoleAuthMiddleware(models.RoleAdm))
		{
			adm.POST("", productHandler.CreateProduct)
			adm.PUT("/:id", productHandler.UpdateProduct)
			adm.DELETE("/:id", productHandler.DeleteProduct)
			adm.POST("/:id/adjust-stock", productHandler.AdjustStock)
			adm.PUT("/:id/cost", costHandler.SetProductCost)
			adm.GET("/:id/cost", costHandler.GetProductCost)
		}
	}

	costs := group.Group("/costs")
	costs.Use(middleware.RoleAuthMiddleware(models.RoleAdm))
	{
		costs.GET("", costHandler.GetAllProductCosts)
	}
}

// SetupListRoutes registers order-list endpoints.
func SetupListRoutes(group *gin.RouterGroup, listHandler *handlers.ListHandler) {
	lists := group.Group("/lists")
	{
		lists.POST("", listHandler.CreateList)
		lists.GET("", listHandler.GetLists)
		lists.GET("/:id", listHandler.GetListDetail)
		lists.DELETE("/:id", listHandler.DeleteList)
		lists.GET("/:id/summary", listHandler.GetListSummary)
		lists.GET("/:id/summary/whatsapp", listHandler.GetListSummaryWhatsApp)
	}
}

// SetupOrderRoutes registers order endpoints.
func SetupOrderRoutes(group *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := group.Group("/orders")
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
		orders.GET("/:id/whatsapp", orderHandler.GetOrderWhatsApp)
	}
}

// SetupReportRoutes registers the admin-only aggregate reports.
func SetupReportRoutes(group *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := group.Group("/admin/reports")
	reports.Use(middleware.RoleAuthMiddleware(models.RoleAdm))
	{
		reports.GET("/inventory", reportHandler.GetInventoryAnalysis)
		reports.GET("/profit", reportHandler.GetProfitAnalysis)
	}
}
