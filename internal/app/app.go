package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"kbbq/internal/config"
	"kbbq/internal/handlers"
	"kbbq/internal/middleware"
	"kbbq/internal/repositories"
	"kbbq/internal/services"
	"kbbq/pkg/mailer"
	"kbbq/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// App is the assembled API: the fiber server plus the resources it owns.
type App struct {
	Server *fiber.App
	Events *rabbitmq.Client // nil when RABBITMQ_URL is unset

	db       *gorm.DB
	otpStore repositories.OTPStore
}

// NewApp builds storage, services and handlers from cfg and composes the
// route groups.
func NewApp(cfg config.Config) (*App, error) {
	a := &App{}

	db, err := repositories.OpenDatabase(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	a.db = db
	if err := repositories.Seed(db); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	otpStore, err := newOTPStore(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.otpStore = otpStore

	if cfg.RabbitMQURL != "" {
		events, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		a.Events = events
	}

	// --- Repositories ---
	menuRepo := repositories.NewGORMMenuRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	shopRepo := repositories.NewGORMShopRepository(db)

	// --- Services ---
	var publisher services.EventPublisher
	if a.Events != nil {
		publisher = a.Events
	}
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	otpService := services.NewOTPService(otpStore, mailer.NewSMTPMailer(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		Timeout:  cfg.SMTP.Timeout,
	}))
	authService := services.NewAuthService(userRepo, tokenService, otpService)
	menuService := services.NewMenuService(menuRepo)
	orderService := services.NewOrderService(publisher)
	paymentService := services.NewPaymentService()
	catalogService := services.NewCatalogService(categoryRepo, shopRepo)
	adminService := services.NewAdminService(userRepo)

	for _, cred := range cfg.Credentials {
		if err := authService.SeedAccount(cred.Username, cred.Password, cred.Email, cred.Role); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to seed account %s: %w", cred.Username, err)
		}
	}

	// --- Fiber ---
	server := fiber.New(fiber.Config{
		AppName: "Korean BBQ API",
	})
	server.Use(recover.New())
	server.Use(requestid.New())
	server.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	server.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Korean BBQ API",
		})
	})
	server.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": a.Events != nil,
		})
	})

	authRequired := middleware.AuthRequired(tokenService)

	handlers.NewAuthHandler(authService).RegisterRoutes(server, authRequired)

	api := server.Group("/api")
	menuHandler := handlers.NewMenuHandler(menuService)
	menuHandler.RegisterRoutes(api)
	menuHandler.RegisterRoutes(server)
	handlers.NewOrderHandler(orderService).RegisterRoutes(api, authRequired)
	handlers.NewPaymentHandler(paymentService).RegisterRoutes(api, authRequired)
	handlers.NewCatalogHandler(catalogService).RegisterRoutes(api)
	handlers.NewAdminHandler(adminService, menuService, catalogService).
		RegisterRoutes(api, authRequired, middleware.AdminOnly())

	a.Server = server
	return a, nil
}

func newOTPStore(cfg config.Config) (repositories.OTPStore, error) {
	if cfg.RedisAddr == "" {
		log.Println("[app] REDIS_ADDR not set, keeping OTP codes in memory")
		return repositories.NewMemoryOTPStore(cfg.OTPTTL), nil
	}

	store := repositories.NewRedisOTPStore(cfg.RedisAddr, cfg.OTPTTL)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		store.Close()
		return nil, err
	}
	log.Printf("[app] OTP codes stored in redis at %s", cfg.RedisAddr)
	return store, nil
}

// Close releases the broker connection, the OTP store and the database, in
// that order. It does not stop the fiber server.
func (a *App) Close() error {
	var errs []error
	if a.Events != nil {
		if err := a.Events.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if closer, ok := a.otpStore.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close otp store: %w", err))
		}
	}
	if a.db != nil {
		if err := repositories.CloseDatabase(a.db); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors while closing app: %v", errs)
	}
	return nil
}
