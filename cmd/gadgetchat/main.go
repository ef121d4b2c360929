package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lojasmm/gadgetchat/internal/chatapi"
	"github.com/lojasmm/gadgetchat/internal/config"
	"github.com/lojasmm/gadgetchat/internal/logging"
	"github.com/lojasmm/gadgetchat/internal/session"
	"github.com/lojasmm/gadgetchat/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		logrus.Fatalf("logging: %v", err)
	}

	chat := chatapi.NewClient(cfg.ChatEndpoint, cfg.ChatTimeout)
	sessions := session.NewManager(chat, log)

	// Idle browser sessions are dropped so the map does not grow forever
	go func() {
		ticker := time.NewTicker(cfg.CleanupInterval)
		defer ticker.Stop()
		for range ticker.C {
			sessions.Cleanup(cfg.SessionIdleTTL)
		}
	}()

	handler := web.NewHandler(sessions, log)

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     web.NewRouter(handler, cfg.AllowedOrigin, log),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"port":     cfg.Port,
			"endpoint": chat.Endpoint(),
		}).Info("gadgetchat: listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("gadgetchat: shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Info("gadgetchat: stopped")
}
