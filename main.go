package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shootflow/config"
	"shootflow/cron"
	"shootflow/database"
	catalogRepoPkg "shootflow/database/repository/catalog"
	invoiceRepoPkg "shootflow/database/repository/invoice"
	shootRepoPkg "shootflow/database/repository/shoot"
	userRepoPkg "shootflow/database/repository/user"
	"shootflow/handlers"
	"shootflow/middleware"
	"shootflow/routes"
	"shootflow/services/account"
	"shootflow/services/catalog"
	"shootflow/services/geocode"
	"shootflow/services/invoice"
	"shootflow/services/notification"
	"shootflow/services/ranking"
	"shootflow/services/shoot"
	"shootflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	shootRepo := shootRepoPkg.NewMongoShootRepo()
	accountRepo := userRepoPkg.NewMongoAccountRepo()
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo()

	// services.
	accountService := &account.DefaultAccountService{
		Repo: accountRepo,
	}

	catalogService := &catalog.DefaultCatalogService{
		Repo: catalogRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Accounts: accountRepo,
	}

	geocodeService := geocode.NewGoogleGeocodeService()
	propertyService := geocode.NewBridgePropertyService()

	rankerService := &ranking.DefaultRankerService{
		Geocoder:    geocodeService,
		CacheClient: utils.GetCacheClient(),
		Logger:      logger,
	}

	shootService := &shoot.DefaultShootService{
		Repo:         shootRepo,
		CatalogRepo:  catalogRepo,
		AccountRepo:  accountRepo,
		Ranker:       rankerService,
		Notification: notificationService,
		TaxRate:      config.AppConfig.TaxRate,
	}

	invoiceService := &invoice.DefaultInvoiceService{
		Repo:         invoiceRepo,
		ShootRepo:    shootRepo,
		AccountRepo:  accountRepo,
		Notification: notificationService,
	}

	// handlers.
	authHandler := handlers.NewAuthHandler(accountService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	shootHandler := handlers.NewShootHandler(shootService, logger)
	photographerHandler := handlers.NewPhotographerHandler(accountService, shootService, logger)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, logger)
	addressHandler := handlers.NewAddressHandler(geocodeService, propertyService, logger)
	storageHandler := handlers.NewStorageHandler(storageService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AccountRepo: accountRepo,

		// Auth endpoints.
		LoginHandler:           authHandler.LoginHandler,
		LogoutHandler:          authHandler.LogoutHandler,
		RegisterAccountHandler: authHandler.RegisterAccountHandler,
		UpdateFCMTokenHandler:  authHandler.UpdateFCMTokenHandler,

		// Catalog endpoints.
		ListServicesHandler:   catalogHandler.ListServicesHandler,
		GetServiceHandler:     catalogHandler.GetServiceHandler,
		CreateServiceHandler:  catalogHandler.CreateServiceHandler,
		UpdateServiceHandler:  catalogHandler.UpdateServiceHandler,
		DeleteServiceHandler:  catalogHandler.DeleteServiceHandler,
		ListCategoriesHandler: catalogHandler.ListCategoriesHandler,
		CreateCategoryHandler: catalogHandler.CreateCategoryHandler,
		UpdateCategoryHandler: catalogHandler.UpdateCategoryHandler,
		DeleteCategoryHandler: catalogHandler.DeleteCategoryHandler,

		// Shoot endpoints.
		BookShootHandler:       shootHandler.BookShootHandler,
		QuoteHandler:           shootHandler.QuoteHandler,
		GetShootHandler:        shootHandler.GetShootHandler,
		ListShootsHandler:      shootHandler.ListShootsHandler,
		PatchShootHandler:      shootHandler.PatchShootHandler,
		DeclineShootHandler:    shootHandler.DeclineShootHandler,
		UpdateTourLinksHandler: shootHandler.UpdateTourLinksHandler,
		AttachMediaHandler:     shootHandler.AttachMediaHandler,

		// Photographer endpoints.
		ListPhotographersHandler:  photographerHandler.ListPhotographersHandler,
		CandidatesHandler:         photographerHandler.CandidatesHandler,
		AssignPhotographerHandler: photographerHandler.AssignPhotographerHandler,
		SetAvailabilityHandler:    photographerHandler.SetAvailabilityHandler,
		GetAvailabilityHandler:    photographerHandler.GetAvailabilityHandler,

		// Invoice endpoints.
		PendingInvoicesHandler:   invoiceHandler.PendingInvoicesHandler,
		MyInvoicesHandler:        invoiceHandler.MyInvoicesHandler,
		ApproveInvoiceHandler:    invoiceHandler.ApproveInvoiceHandler,
		RejectInvoiceHandler:     invoiceHandler.RejectInvoiceHandler,
		PayInvoiceHandler:        invoiceHandler.PayInvoiceHandler,
		AggregateInvoicesHandler: invoiceHandler.AggregateInvoicesHandler,

		// Address endpoints.
		SearchAddressHandler:   addressHandler.SearchAddressHandler,
		AddressDetailsHandler:  addressHandler.AddressDetailsHandler,
		PropertyMetricsHandler: addressHandler.PropertyMetricsHandler,

		// Storage endpoints.
		UploadMediaHandler: storageHandler.UploadMediaHandler,
		DownloadURLHandler: storageHandler.DownloadURLHandler,
		DeleteMediaHandler: storageHandler.DeleteMediaHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the weekly invoice aggregation worker.
	cron.InitInvoiceWorker(invoiceService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
