// File: theyool/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"theyool/config"
	"theyool/database"
	blockedRepoPkg "theyool/database/repository/blocked"
	bookingRepoPkg "theyool/database/repository/booking"
	"theyool/handlers"
	"theyool/middleware"
	"theyool/routes"
	"theyool/services/blockedtime"
	"theyool/services/booking"
	"theyool/services/notification"
	"theyool/services/notification/solapi"
	"theyool/services/tasks"
	"theyool/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	blockedRepo := blockedRepoPkg.NewMongoBlockedTimeRepo()
	if err := bookingRepoPkg.EnsureIndexes(bookingRepo); err != nil {
		logger.Sugar().Fatalf("main: failed to create booking indexes: %v", err)
	}
	if err := blockedRepoPkg.EnsureIndexes(blockedRepo); err != nil {
		logger.Sugar().Fatalf("main: failed to create blocked time indexes: %v", err)
	}

	// notification providers.
	emailSender := notification.NewResendEmailSender(
		config.AppConfig.ResendAPIKey,
		config.AppConfig.EmailFrom,
		config.AppConfig.EmailReplyTo,
	)
	smsSender := solapi.NewClient(
		config.AppConfig.SolapiAPIKey,
		config.AppConfig.SolapiAPISecret,
		config.AppConfig.SolapiFromNumber,
	)
	notificationService, err := notification.NewDefaultNotificationService(
		emailSender, smsSender, config.AppConfig.OfficeAlertPhone)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		BlockedRepo:  blockedRepo,
		Notification: notificationService,
	}
	blockedTimeService := &blockedtime.DefaultBlockedTimeService{
		Repo: blockedRepo,
	}
	reminderJob := &tasks.ReminderJob{
		Repo:         bookingRepo,
		Notification: notificationService,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:      handlers.NewBookingHandler(bookingService, logger),
		Availability: handlers.NewAvailabilityHandler(bookingService, utils.GetCacheClient(), logger),
		BlockedTime:  handlers.NewBlockedTimeHandler(blockedTimeService, logger),
		Reminder:     handlers.NewReminderHandler(reminderJob, logger),
	}

	// Register routes with the assembled handler bundle.
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
