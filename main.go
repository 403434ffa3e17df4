package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"homestay-backend/config"
	"homestay-backend/controllers"
	"homestay-backend/routes"
	"homestay-backend/services"
)

func main() {
	// .env is optional
	envLoaded := godotenv.Load() == nil

	logger := config.NewLogger(os.Getenv("APP_ENV"))
	defer logger.Sync()

	if !envLoaded {
		logger.Warn(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	db := config.DB
	logger.Info("database connection established and migrations applied")

	userService := services.NewUserService(db)
	listingService := services.NewListingService(db)
	bookingService := services.NewBookingService(db)

	authController := controllers.NewAuthController(userService, logger)
	listingController := controllers.NewListingController(listingService, logger)
	bookingController := controllers.NewBookingController(bookingService, logger)

	router := routes.SetupRouter(authController, listingController, bookingController, logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}
