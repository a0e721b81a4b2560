package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gigboard_backend/internal/auth"
	"gigboard_backend/internal/config"
	"gigboard_backend/internal/email"
	"gigboard_backend/internal/handlers"
	"gigboard_backend/internal/logger"
	"gigboard_backend/internal/middleware"
	"gigboard_backend/internal/models"
	"gigboard_backend/internal/realtime"
	"gigboard_backend/internal/repositories"
	"gigboard_backend/internal/routes"
	"gigboard_backend/internal/services"
	"gigboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Run boots the whole application and blocks until shutdown.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	auth.InitJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	router, err := SetupRouter(cfg, db)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "env", cfg.Server.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

// SetupRouter builds the fully wired gin engine. Split out from Run so tests
// can construct the application against their own database.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	repos := services.Repositories{
		User:         repositories.NewUserRepository(db),
		Archive:      repositories.NewArchiveRepository(db),
		Profile:      repositories.NewProfileRepository(db),
		Job:          repositories.NewJobRepository(db),
		Proposal:     repositories.NewProposalRepository(db),
		Interview:    repositories.NewInterviewRepository(db),
		Conversation: repositories.NewConversationRepository(db),
		Package:      repositories.NewPackageRepository(db),
		Discount:     repositories.NewDiscountRepository(db),
		Invoice:      repositories.NewInvoiceRepository(db),
		Transaction:  repositories.NewTransactionRepository(db),
		Notification: repositories.NewNotificationRepository(db),
	}

	svc := services.NewServiceContainer(repos, newMailer(cfg), newPublisher(cfg), cfg)

	if err := seedFirstAdmin(cfg, repos.User); err != nil {
		return nil, err
	}

	appHandlers := handlers.NewAppHandlers(svc, validator.New())

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.DBMiddleware(db),
	)

	routes.RegisterRoutes(router, appHandlers)
	return router, nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormLevel := gormlogger.Warn
	if cfg.Server.Env == "development" {
		gormLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.TalentProfile{},
		&models.ManagerProfile{},
		&models.Skill{},
		&models.ArchivedUser{},
		&models.Job{},
		&models.Proposal{},
		&models.Interview{},
		&models.Conversation{},
		&models.Message{},
		&models.PricingPackage{},
		&models.Discount{},
		&models.Invoice{},
		&models.TransactionLog{},
		&models.CommissionSettings{},
		&models.Notification{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// newMailer falls back to the recording mock when SMTP is not configured so
// local setups run without a mail server.
func newMailer(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("smtp not configured, using mock email provider")
		return email.NewMockProvider()
	}

	baseURL := fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)
	return email.NewSMTPProvider(cfg, baseURL)
}

func newPublisher(cfg *config.Config) realtime.Publisher {
	client, err := realtime.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("redis unavailable, realtime notifications disabled", "error", err.Error())
		return realtime.NoopPublisher{}
	}
	return realtime.NewRedisPublisher(client)
}

// seedFirstAdmin creates the bootstrap admin account when configured and
// missing.
func seedFirstAdmin(cfg *config.Config, userRepo repositories.UserRepository) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return nil
	}

	exists, err := userRepo.EmailExists(cfg.Admin.Email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		FirstName:    "Platform",
		LastName:     "Admin",
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := userRepo.Create(admin); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil
		}
		return err
	}

	logger.Info("seeded first admin", "email", cfg.Admin.Email)
	return nil
}
