package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arpanregmi/cafepos-api/internal/application/service"
	"github.com/arpanregmi/cafepos-api/internal/config"
	"github.com/arpanregmi/cafepos-api/internal/infrastructure/jsonstore"
	"github.com/arpanregmi/cafepos-api/internal/infrastructure/repository"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/handler"
	"github.com/arpanregmi/cafepos-api/internal/presentation/http/routes"
	"github.com/arpanregmi/cafepos-api/pkg/email"
	"github.com/arpanregmi/cafepos-api/pkg/utils"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the flat-file document store
	store, err := jsonstore.New(cfg.Storage.DataDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Storage.DataDir).Msg("Failed to open data store")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	billRepo := repository.NewBillRepository(store)
	creditorRepo := repository.NewCreditorRepository(store)
	creditLogRepo := repository.NewCreditLogRepository(store)
	dayRepo := repository.NewDayRepository(store)
	inventoryRepo := repository.NewInventoryRepository(store)
	timesheetRepo := repository.NewTimesheetRepository(store)
	wageRepo := repository.NewWageRepository(store)
	userRepo := repository.NewUserRepository(store)
	recipientRepo := repository.NewRecipientRepository(store)

	// Initialize email service
	emailService := email.NewService(email.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		ShopName:     cfg.Shop.Name,
	})

	// Initialize services
	creditService := service.NewCreditService(billRepo, creditorRepo, creditLogRepo)
	tabService := service.NewTabService(billRepo, creditService)
	creditorService := service.NewCreditorService(creditorRepo, creditLogRepo)
	dayService := service.NewDayService(
		dayRepo,
		billRepo,
		inventoryRepo,
		timesheetRepo,
		recipientRepo,
		emailService,
		cfg.Shop.DailyRent,
		cfg.Shop.HourlyWageRate,
	)
	inventoryService := service.NewInventoryService(inventoryRepo)
	timesheetService := service.NewTimesheetService(timesheetRepo)
	wageService := service.NewWageService(wageRepo, userRepo)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, jwtManager)
	recipientService := service.NewRecipientService(recipientRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Tab:       handler.NewTabHandler(tabService),
		Credit:    handler.NewCreditHandler(creditService),
		Creditor:  handler.NewCreditorHandler(creditorService, creditService),
		Day:       handler.NewDayHandler(dayService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Timesheet: handler.NewTimesheetHandler(timesheetService),
		Wage:      handler.NewWageHandler(wageService),
		User:      handler.NewUserHandler(userService),
		Recipient: handler.NewRecipientHandler(recipientService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "3001"
	}

	log.Info().Str("service", cfg.App.Name).Str("port", port).Str("env", cfg.App.Env).Msg("Starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
