package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pipe-sizing-service/internal/adapters/primary/http/handlers"
	"pipe-sizing-service/internal/bootstrap"
	"pipe-sizing-service/internal/config"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	bootstrap.InitLogger(cfg.Logger)

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Core Services (Application Layer) with their secondary adapters
	sizingSvc, fieldSvc, err := bootstrap.NewServices(cfg)
	if err != nil {
		log.Fatalf("init services: %v", err)
	}
	log.WithFields(log.Fields{
		"field_domain": fieldSvc.Domain().Key(),
		"cache":        fieldSvc.CacheStatus(context.Background()),
	}).Info("services initialized")

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(sizingSvc, fieldSvc)
	router := bootstrap.BuildRouter(h, cfg.CORS)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}
