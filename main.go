// File: eletrigo/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eletrigo/config"
	"eletrigo/handlers"
	"eletrigo/middleware"
	"eletrigo/routes"
	"eletrigo/services/client"
	"eletrigo/services/dashboard"
	"eletrigo/services/electrician"
	"eletrigo/services/ledger"
	"eletrigo/services/notification"
	"eletrigo/store"
	"eletrigo/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Single in-memory store, owned here and injected everywhere.
	mem := store.NewMemory()

	emitter := notification.NewMemoryEmitter(
		time.Duration(config.AppConfig.NotificationTTLSeconds)*time.Second,
		config.AppConfig.NotificationFeedCap,
	)
	janitor := notification.StartJanitor(emitter, logger)
	defer janitor.Stop()

	ledgerService := &ledger.DefaultService{
		Services:     mem.Services,
		Electricians: mem.Electricians,
		Clients:      mem.Clients,
		Notifier:     emitter,
		Logger:       logger,
		Latency:      time.Duration(config.AppConfig.SimulatedLatencyMS) * time.Millisecond,
	}
	clientService := &client.DefaultService{
		Repo:     mem.Clients,
		Notifier: emitter,
		Logger:   logger,
	}
	electricianService := &electrician.DefaultService{
		Repo:     mem.Electricians,
		Notifier: emitter,
		Logger:   logger,
	}
	dashboardService := &dashboard.DefaultService{
		Services:     mem.Services,
		Electricians: mem.Electricians,
		Clients:      mem.Clients,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	bundle := &handlers.HandlerBundle{
		Service:      handlers.NewServiceHandler(ledgerService, logger),
		Dashboard:    handlers.NewDashboardHandler(dashboardService),
		Client:       handlers.NewClientHandler(clientService),
		Electrician:  handlers.NewElectricianHandler(electricianService),
		Notification: handlers.NewNotificationHandler(emitter),
	}
	routes.RegisterRoutes(router, bundle)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed: %v", err)
		}
	}()

	// Wait for an interrupt, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
