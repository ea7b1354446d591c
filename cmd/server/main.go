package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bus_transport/internal/config"
	"bus_transport/internal/controllers"
	"bus_transport/internal/logger"
	"bus_transport/internal/middleware"
	"bus_transport/internal/routes"
	"bus_transport/internal/services"
	"bus_transport/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Initialize structured logging to file
	appLog, accessLog := logger.Setup(cfg.LogFile, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	// Connect to the database
	db, err := config.OpenDB(cfg, logger.GormLogger(appLog))
	if err != nil {
		appLog.WithError(err).Fatal("database setup failed")
	}

	st := store.New(db)
	routeSvc := services.NewRouteService(st, appLog)
	busSvc := services.NewBusService(st, appLog)

	r := routes.SetupRouter(routes.Deps{
		Routes:    controllers.NewRouteController(routeSvc),
		Buses:     controllers.NewBusController(busSvc),
		Health:    controllers.NewHealthController(st),
		AccessLog: accessLog,
	})

	// Wrap with CORS
	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           middleware.EnableCORS(cfg.CORSAllowedOrigins)(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLog.Infof("🚀 Server running at %s (db=%s)", cfg.ServerAddr, cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.WithError(err).Error("graceful shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
