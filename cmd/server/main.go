// Command server runs the conference agent backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/inboundaero/conference-agent/internal/application/repository/supabase"
	"github.com/inboundaero/conference-agent/internal/application/service/chat"
	"github.com/inboundaero/conference-agent/internal/application/service/intent"
	"github.com/inboundaero/conference-agent/internal/application/service/networking"
	"github.com/inboundaero/conference-agent/internal/application/service/runner"
	"github.com/inboundaero/conference-agent/internal/application/service/schedule"
	"github.com/inboundaero/conference-agent/internal/application/service/session"
	"github.com/inboundaero/conference-agent/internal/config"
	"github.com/inboundaero/conference-agent/internal/logger"
	"github.com/inboundaero/conference-agent/internal/router"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf(ctx, "failed to load configuration: %v", err)
	}

	logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})

	gateway, err := supabase.New(cfg.Supabase)
	if err != nil {
		logger.Fatalf(ctx, "failed to create store gateway: %v", err)
	}

	contextService := session.NewContextService(gateway, cfg.Conference.Name)
	scheduleService := schedule.NewService(gateway)
	networkingService := networking.NewService(gateway)

	agentRunner, err := runner.New(cfg.Agent, scheduleService, networkingService)
	if err != nil {
		logger.Fatalf(ctx, "failed to create agent runner: %v", err)
	}
	if agentRunner == nil {
		logger.Warn(ctx, "agent runner disabled (no API key); using local dispatch only")
	}

	chatService := chat.NewService(
		contextService,
		intent.NewRouter(),
		agentRunner,
		scheduleService,
		networkingService,
		cfg.Conference.Name,
	)

	engine := router.New(chatService, contextService)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: engine,
	}

	go func() {
		logger.Infof(ctx, "conference agent system listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf(ctx, "server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "graceful shutdown failed: %v", err)
	}
}
