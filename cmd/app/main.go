package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"foodbot-miniapp/internal/common/config"
	"foodbot-miniapp/internal/common/logger"
	"foodbot-miniapp/internal/features/api"
	"foodbot-miniapp/internal/features/auth"
	"foodbot-miniapp/internal/features/cart"
	"foodbot-miniapp/internal/features/telegram"
	"foodbot-miniapp/internal/platform/storage"
)

// The CLI runs the same boot sequence the browser build does: restore
// persisted state, detect the Telegram host, perform the handshake, then
// report who we are. Useful for poking a backend without a frontend build.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger.Init("foodbot-miniapp", cfg.Debug)

	store, cleanup, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("storage init failed")
	}
	defer cleanup()

	sessions := auth.NewSessionStore(store)
	carts := cart.NewStore(store)

	var gateway *auth.Gateway
	client := api.NewClient(cfg.API.BaseURL, sessions,
		api.WithUnauthorizedHook(func(ctx context.Context) {
			if gateway != nil {
				gateway.Invalidate(ctx)
			}
		}),
	)

	// A typed nil bridge must stay a nil interface for browser-mode
	// detection to work.
	var bridge telegram.Bridge
	if envBridge := telegram.NewEnvBridge(cfg.Telegram.InitData); envBridge != nil {
		bridge = envBridge
	}
	reader := telegram.NewReader(bridge)

	var opts []auth.GatewayOption
	if cfg.Telegram.BotToken != "" {
		opts = append(opts, auth.WithLocalValidation(cfg.Telegram.BotToken))
	}
	gateway = auth.NewGateway(reader, sessions, client, opts...)

	if gateway.Resume(ctx) {
		logger.Info().Msg("resumed persisted session")
	} else if err := gateway.Run(ctx); err != nil {
		if errors.Is(err, auth.ErrNotEmbedded) {
			logger.Info().Msg("no telegram host; use the staff login or set TELEGRAM_INIT_DATA")
		} else {
			logger.Error().Err(err).Msg("authentication failed")
			os.Exit(1)
		}
	}

	if identity, ok := gateway.Identity(); ok {
		fmt.Printf("authenticated as %s (id=%d, role=%s)\n", identity.Name, identity.ID, identity.Role)

		profile, err := client.Me(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("profile fetch failed")
		} else if profile.Phone == "" {
			fmt.Println("no phone on file; the app would open the capture flow")
		} else {
			fmt.Printf("phone on file: %s\n", profile.Phone)
		}
	} else {
		fmt.Println("running unauthenticated (browser mode)")
	}

	restored := carts.Load(ctx)
	fmt.Printf("cart: %d item(s), total %s\n", restored.Len(), restored.Total().StringFixed(2))
}

// openStorage picks Redis when configured, file otherwise.
func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, func(), error) {
	if cfg.Redis.Host != "" {
		addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
		rdb, err := storage.NewRedis(ctx, addr, cfg.Redis.Password, cfg.Redis.DB, "miniapp:")
		if err != nil {
			return nil, nil, err
		}
		return rdb, func() { _ = rdb.Close() }, nil
	}

	file, err := storage.NewFile(cfg.Storage.SessionFile)
	if err != nil {
		return nil, nil, err
	}
	return file, func() {}, nil
}
