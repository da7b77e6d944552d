package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sudsy/config"
	"sudsy/cron"
	"sudsy/database"
	availabilityRepo "sudsy/database/repository/availability"
	catalogRepo "sudsy/database/repository/catalog"
	reservationRepo "sudsy/database/repository/reservation"
	"sudsy/handlers"
	"sudsy/middleware"
	"sudsy/routes"
	"sudsy/services/availability"
	"sudsy/services/booking"
	"sudsy/services/notification"
	"sudsy/services/tasks"
	"sudsy/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	ruleRepo := availabilityRepo.NewMongoRuleRepo()
	blockRepo := availabilityRepo.NewMongoBlockRepo()
	resRepo := reservationRepo.NewMongoReservationRepo()
	catRepo := catalogRepo.NewMongoCatalogRepo()

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Rules:  ruleRepo,
		Blocks: blockRepo,
	}

	notificationService := &notification.LogNotificationService{}
	reminderQueue := tasks.NewReminderQueue()

	wizardService := &booking.DefaultWizardService{
		Sessions:     booking.NewRedisSessionStore(),
		Catalog:      catRepo,
		Reservations: resRepo,
		Availability: availabilityService,
		Reminders:    reminderQueue,
		ReminderLead: time.Duration(config.AppConfig.ReminderLeadMin) * time.Minute,
	}

	// Background reminder worker.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Booking:      handlers.NewBookingHandler(wizardService, logger),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Reservations: handlers.NewReservationHandler(resRepo),
	}
	routes.RegisterRoutes(router, handlerBundle)

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
