// internal/app/server.go
package app

import (
	"fmt"
	"log"

	"sellerhub-service/internal/config"
	"sellerhub-service/internal/db"
	authHandler "sellerhub-service/internal/handlers/auth"
	catalogHandler "sellerhub-service/internal/handlers/catalog"
	customersHandler "sellerhub-service/internal/handlers/customers"
	dashboardHandler "sellerhub-service/internal/handlers/dashboard"
	eventsHandler "sellerhub-service/internal/handlers/events"
	messagesHandler "sellerhub-service/internal/handlers/messages"
	ordersHandler "sellerhub-service/internal/handlers/orders"
	sellersHandler "sellerhub-service/internal/handlers/sellers"
	"sellerhub-service/internal/middleware"
	"sellerhub-service/internal/session"
	authUsecase "sellerhub-service/internal/service/auth"
	dashboardUsecase "sellerhub-service/internal/service/dashboard"
	"sellerhub-service/internal/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server is the storefront/admin portal: it terminates browser sessions and
// proxies every resource call to the upstream platform API.
type Server struct {
	cfg    config.PortalConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.LoadPortal()
	engine := gin.Default()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("[REDIS] ✅ Connected successfully")

	// ----- Session Store -----
	sessions := session.NewRedisStore(redisClient, s.cfg.SessionTTL)

	// ----- Upstream API Clients -----
	apiClient := upstream.NewClient(s.cfg.UpstreamBaseURL, logger)
	authAPI := upstream.NewAuthClient(apiClient)
	sellersAPI := upstream.NewSellersClient(apiClient)
	customersAPI := upstream.NewCustomersClient(apiClient)
	productsAPI := upstream.NewProductsClient(apiClient)
	ordersAPI := upstream.NewOrdersClient(apiClient)
	messagesAPI := upstream.NewMessagesClient(apiClient)

	// ----- Services (Usecases) -----
	authService := authUsecase.New(authAPI, sessions, logger)
	dashboardService := dashboardUsecase.New(
		sellersAPI,
		customersAPI,
		productsAPI,
		ordersAPI,
		messagesAPI,
		logger,
	)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService, s.cfg.SessionCookie, s.cfg.CookieSecure)
	dashboardHandlerInst := dashboardHandler.NewDashboardHandler(dashboardService, sessions)
	sellersHandlerInst := sellersHandler.NewSellersHandler(sellersAPI, sessions)
	customersHandlerInst := customersHandler.NewCustomersHandler(customersAPI, sessions)
	catalogHandlerInst := catalogHandler.NewCatalogHandler(productsAPI, sessions)
	ordersHandlerInst := ordersHandler.NewOrdersHandler(ordersAPI, sessions)
	messagesHandlerInst := messagesHandler.NewMessagesHandler(messagesAPI, sessions)
	eventsHandlerInst := eventsHandler.NewEventsHandler(sessions, logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(sessions, s.cfg.SessionCookie)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:      authHandlerInst,
		DashboardHandler: dashboardHandlerInst,
		SellersHandler:   sellersHandlerInst,
		CustomersHandler: customersHandlerInst,
		CatalogHandler:   catalogHandlerInst,
		OrdersHandler:    ordersHandlerInst,
		MessagesHandler:  messagesHandlerInst,
		EventsHandler:    eventsHandlerInst,
		AuthMiddleware:   authMiddleware,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	log.Printf("🚀 Portal running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
