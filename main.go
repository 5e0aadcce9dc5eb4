// File: meetslot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetslot/config"
	"meetslot/handlers"
	"meetslot/middleware"
	"meetslot/routes"
	"meetslot/services/availability"
	"meetslot/utils"
	"meetslot/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	workday, err := availability.NewWorkdayBounds(config.AppConfig.WorkdayStart, config.AppConfig.WorkdayEnd)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid workday configuration: %v", err)
	}

	// Suggestion cache is optional; without Redis every query is computed.
	var cache availability.SuggestionCache = availability.NoopCache{}
	cacheClient, err := utils.NewCacheClient(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	if cacheClient != nil {
		defer cacheClient.Close()
		cache = availability.NewRedisSuggestionCache(cacheClient, config.AppConfig.SuggestionCacheTTL)
		logger.Info("main: suggestion cache enabled", zap.String("redisAddr", config.AppConfig.RedisAddr))
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	handlers.RegisterValidators()

	// Create the Gin router.
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	router.SetHTMLTemplate(web.Templates())

	// services.
	store := availability.NewStore()
	finder := availability.NewFinder(
		store,
		workday,
		config.AppConfig.MaxSuggestions,
		config.AppConfig.OverlappingSuggestions,
	)
	availabilityService := availability.NewAvailabilityService(store, finder, cache, logger.Named("availability"))
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		IndexHandler:  availabilityHandler.IndexHandler,
		HealthHandler: handlers.NewHealthHandler(cacheClient),

		SetBusySlotsHandler: availabilityHandler.SetBusySlotsHandler,
		SuggestHandler:      availabilityHandler.SuggestHandler,
		GetCalendarHandler:  availabilityHandler.GetCalendarHandler,
		BookHandler:         availabilityHandler.BookHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.AllowedOrigins())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s (workday %s-%s)...",
		srv.Addr, availability.FromMinutes(workday.Start), availability.FromMinutes(workday.End))
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
