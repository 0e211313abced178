package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/config"
	"github.com/LakhiniVoshadee/litshelf-storefront/internal/logger"
	"github.com/LakhiniVoshadee/litshelf-storefront/internal/mockapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(&logger.Config{
		Level:       cfg.Log.Level,
		ServiceName: "litshelf-mockapi",
		Development: cfg.IsDevelopment(),
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	zlog := logger.Get()
	zlog.Info("Starting mock bookstore API...")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	server := mockapi.NewServer(mockapi.Config{
		JWTSecret: cfg.Mock.JWTSecret,
		TokenTTL:  cfg.Mock.TokenTTL,
	}, zlog)

	srv := &http.Server{
		Addr:         cfg.Mock.Addr(),
		Handler:      server.Engine(),
		ReadTimeout:  cfg.Mock.ReadTimeout,
		WriteTimeout: cfg.Mock.WriteTimeout,
	}

	go func() {
		zlog.Info(fmt.Sprintf("Mock API listening on %s", cfg.Mock.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	zlog.Info("Server exited gracefully")
}
