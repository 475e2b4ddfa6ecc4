package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"maunium.net/go/mautrix"
	"maunium.net/go/mautrix/event"
	"maunium.net/go/mautrix/id"

	"github.com/Her0x27/MatrixBotCheckerTrans/internal/bot"
	"github.com/Her0x27/MatrixBotCheckerTrans/internal/config"
	"github.com/Her0x27/MatrixBotCheckerTrans/internal/explorer"
	"github.com/Her0x27/MatrixBotCheckerTrans/internal/prefs"
)

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	client, err := mautrix.NewClient(cfg.Homeserver, id.UserID(cfg.UserID), cfg.AccessToken)
	if err != nil {
		logger.Fatal("matrix client init", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		cancel()
	}()

	// проверяем токен до входа в sync-цикл
	whoami, err := client.Whoami(ctx)
	if err != nil {
		logger.Fatal("matrix login check", zap.Error(err))
	}
	logger.Info("logged in", zap.String("user_id", whoami.UserID.String()))

	reg := explorer.NewRegistry(explorer.Credentials{
		EtherscanKey:   cfg.EtherscanAPIKey,
		BlockcypherKey: cfg.BlockcypherAPIKey,
		TrongridKey:    cfg.TrongridAPIKey,
	}, &http.Client{Timeout: cfg.HTTPTimeout})

	h := bot.NewHandler(bot.NewMatrixSender(client), reg, prefs.NewStore(), whoami.UserID, logger)

	syncer := client.Syncer.(*mautrix.DefaultSyncer)
	syncer.OnEventType(event.EventMessage, h.HandleMessage)

	logger.Info("bot started", zap.String("homeserver", cfg.Homeserver))
	if err := client.SyncWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("sync loop", zap.Error(err))
	}
	logger.Info("shutdown")
}
