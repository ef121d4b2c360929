package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lojasmm/gadgetchat/internal/chatapi"
	"github.com/lojasmm/gadgetchat/internal/config"
	"github.com/lojasmm/gadgetchat/internal/logging"
	"github.com/lojasmm/gadgetchat/internal/session"
	"github.com/lojasmm/gadgetchat/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gadgetchat-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := os.OpenFile(cfg.TermLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	defer logFile.Close()

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, logFile)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	chat := chatapi.NewClient(cfg.ChatEndpoint, cfg.ChatTimeout)
	s := session.New(chat, log)

	log.WithField("endpoint", chat.Endpoint()).Info("gadgetchat-term: starting")
	if err := tui.Run(ctx, s); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	log.Info("gadgetchat-term: stopped")
	return nil
}
