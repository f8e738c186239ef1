// internal/app/registration.go
package app

import (
	"context"
	"fmt"
	"log"

	"sellerhub-service/internal/config"
	"sellerhub-service/internal/db"
	registerHandler "sellerhub-service/internal/handlers/register"
	"sellerhub-service/internal/middleware"
	"sellerhub-service/internal/repository/postgres"
	registerUsecase "sellerhub-service/internal/service/register"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegistrationServer is the standalone account-registration API backed by
// PostgreSQL. It runs as its own binary next to the portal.
type RegistrationServer struct {
	cfg    config.RegistrationConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewRegistrationServer() *RegistrationServer {
	cfg := config.LoadRegistration()
	engine := gin.Default()
	return &RegistrationServer{cfg: cfg, engine: engine}
}

func (s *RegistrationServer) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectPostgres(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// ----- Repositories -----
	dbWrapper := postgres.NewDB(pool)
	userRepo := postgres.NewUserRepository(dbWrapper)
	if err := userRepo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare database schema: %w", err)
	}

	// ----- Services -----
	registerService := registerUsecase.New(userRepo, logger)

	// ----- Handlers -----
	registerHandlerInst := registerHandler.NewRegisterHandler(registerService, logger)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
	)

	// ----- Router -----
	api := s.engine.Group("/api")
	api.GET("/health", registerHandlerInst.Health)
	api.POST("/register", registerHandlerInst.Register)

	// ----- Start HTTP -----
	log.Printf("🚀 Registration service running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
