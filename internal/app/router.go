// internal/app/router.go
package app

import (
	authHandler "sellerhub-service/internal/handlers/auth"
	catalogHandler "sellerhub-service/internal/handlers/catalog"
	customersHandler "sellerhub-service/internal/handlers/customers"
	dashboardHandler "sellerhub-service/internal/handlers/dashboard"
	eventsHandler "sellerhub-service/internal/handlers/events"
	messagesHandler "sellerhub-service/internal/handlers/messages"
	ordersHandler "sellerhub-service/internal/handlers/orders"
	sellersHandler "sellerhub-service/internal/handlers/sellers"
	"sellerhub-service/internal/domain/principal"
	"sellerhub-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler      *authHandler.AuthHandler
	DashboardHandler *dashboardHandler.DashboardHandler
	SellersHandler   *sellersHandler.SellersHandler
	CustomersHandler *customersHandler.CustomersHandler
	CatalogHandler   *catalogHandler.CatalogHandler
	OrdersHandler    *ordersHandler.OrdersHandler
	MessagesHandler  *messagesHandler.MessagesHandler
	EventsHandler    *eventsHandler.EventsHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Public Auth Routes ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/admin/login", h.AuthHandler.AdminLogin)
		authPublic.POST("/seller/login", h.AuthHandler.SellerLogin)
		authPublic.POST("/register", h.AuthHandler.Register)
	}

	// ==================== Authenticated Auth Routes ====================
	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Auth())
	{
		authProtected.POST("/refresh", h.AuthHandler.Refresh)
		authProtected.POST("/logout", h.AuthHandler.Logout)
		authProtected.GET("/me", h.AuthHandler.Me)
	}

	// ==================== Session Events (WebSocket) ====================
	r.GET("/ws/session", h.AuthMiddleware.Auth(), h.EventsHandler.Session)

	// ==================== Dashboards ====================
	dashboards := api.Group("/dashboard")
	{
		adminDash := dashboards.Group("")
		adminDash.Use(h.AuthMiddleware.AdminOnly()...)
		adminDash.GET("/admin", h.DashboardHandler.Admin)

		sellerDash := dashboards.Group("")
		sellerDash.Use(h.AuthMiddleware.SellerOnly()...)
		sellerDash.GET("/seller", h.DashboardHandler.Seller)
	}

	// ==================== Sellers (Admin Only) ====================
	sellers := api.Group("/sellers")
	sellers.Use(h.AuthMiddleware.AdminOnly()...)
	{
		sellers.GET("", h.SellersHandler.List)
		sellers.GET("/top", h.SellersHandler.Top)
		sellers.GET("/search", h.SellersHandler.Search)
		sellers.GET("/statistics", h.SellersHandler.Statistics)
		sellers.GET("/:id", h.SellersHandler.Get)
		sellers.POST("", h.SellersHandler.Register)
		sellers.PUT("/:id", h.SellersHandler.Update)
		sellers.DELETE("/:id", h.SellersHandler.Delete)
	}

	// ==================== Customers (Admin Only) ====================
	customers := api.Group("/customers")
	customers.Use(h.AuthMiddleware.AdminOnly()...)
	{
		customers.GET("", h.CustomersHandler.List)
		customers.GET("/:id", h.CustomersHandler.Get)
		customers.POST("", h.CustomersHandler.Create)
		customers.PUT("/:id", h.CustomersHandler.Update)
		customers.DELETE("/:id", h.CustomersHandler.Delete)
	}

	// ==================== Products ====================
	products := api.Group("/products")
	products.Use(h.AuthMiddleware.Auth())
	{
		products.GET("", h.CatalogHandler.List)
		products.GET("/mine", h.CatalogHandler.Mine)
		products.GET("/low-stock", h.CatalogHandler.LowStock)
		products.GET("/:id", h.CatalogHandler.Get)

		// Catalog writes require a seller or admin session.
		writer := products.Group("")
		writer.Use(h.AuthMiddleware.RequireRole(principal.RoleAdmin, principal.RoleSeller))
		{
			writer.POST("", h.CatalogHandler.Create)
			writer.PUT("/:id", h.CatalogHandler.Update)
			writer.DELETE("/:id", h.CatalogHandler.Delete)
		}
	}

	// ==================== Orders ====================
	orders := api.Group("/orders")
	orders.Use(h.AuthMiddleware.Auth())
	{
		orders.GET("", h.OrdersHandler.List)
		orders.GET("/pending", h.OrdersHandler.Pending)
		orders.PATCH("/:id/status", h.OrdersHandler.UpdateStatus)

		orders.GET("/recent", h.AuthMiddleware.RequireRole(principal.RoleAdmin), h.OrdersHandler.Recent)
	}

	// ==================== Messages ====================
	messages := api.Group("/messages")
	messages.Use(h.AuthMiddleware.Auth())
	{
		messages.GET("", h.MessagesHandler.List)
		messages.GET("/unread-count", h.MessagesHandler.UnreadCount)
		messages.PATCH("/:id/read", h.MessagesHandler.MarkRead)
		messages.POST("", h.MessagesHandler.Send)
	}
}
