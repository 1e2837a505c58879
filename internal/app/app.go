package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"servimarket_backend/internal/auth"
	"servimarket_backend/internal/chatbot"
	"servimarket_backend/internal/config"
	"servimarket_backend/internal/database"
	"servimarket_backend/internal/email"
	"servimarket_backend/internal/handlers"
	"servimarket_backend/internal/logger"
	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/routes"
	"servimarket_backend/internal/services"
	"servimarket_backend/internal/storage"
	"servimarket_backend/internal/workers"
)

// Run boots the whole application: config, database, services, routes, and
// the background scheduler. It blocks serving HTTP.
func Run() error {
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := seedFirstAdmin(db, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	store, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	container := services.NewServiceContainer(db, cfg, store, email.NewProvider(cfg), chatbot.NewResponder(cfg))
	appHandlers := handlers.NewAppHandlers(container)

	scheduler := workers.NewScheduler(
		repositories.NewPostingRepository(db),
		repositories.NewPromoRepository(db),
		repositories.NewUserRepository(db),
	)
	if err := scheduler.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	defer scheduler.Stop()

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	routes.RegisterRoutes(router, db, cfg, appHandlers)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server listening", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// seedFirstAdmin creates the bootstrap admin account when none exists and
// credentials are configured.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	userRepo := repositories.NewUserRepository(db)
	if _, err := userRepo.GetByEmail(cfg.FirstAdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}
	logger.Info("first admin account created", "email", cfg.FirstAdminEmail)
	return nil
}
