package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"foodbot-miniapp/internal/common/config"
	"foodbot-miniapp/internal/common/logger"
	"foodbot-miniapp/internal/mockapi"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger.Init("foodbot-mockserver", cfg.Debug)

	if cfg.Telegram.BotToken == "" {
		logger.Fatal().Msg("BOT_TOKEN is required; refusing to accept unsigned init data")
	}

	server := mockapi.NewServer(mockapi.Config{
		BotToken: cfg.Telegram.BotToken,
		Origin:   cfg.Server.Origin,
		Debug:    cfg.Debug,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("mock backend listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen failed")
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
	logger.Info().Msg("server stopped")
}
