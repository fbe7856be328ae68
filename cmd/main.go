package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/mzhurovsky/model_relay/internal/ai"
	"github.com/mzhurovsky/model_relay/internal/config"
	"github.com/mzhurovsky/model_relay/internal/delivery"
	"github.com/mzhurovsky/model_relay/internal/error_notificator"
	"github.com/mzhurovsky/model_relay/internal/relay"
	"github.com/mzhurovsky/model_relay/internal/telegram"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// CLIENTS
	// =========================================================================

	tgClient, err := telegram.NewClient(cfg.TelegramBotToken)
	if err != nil {
		log.Fatalf("failed to init telegram bot: %v", err)
	}

	// long polling needs a clean slate
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := tgClient.DeleteWebhook(ctx); err != nil {
		log.Printf("[main] delete webhook fail: %v", err)
	}
	cancel()

	servingClient := ai.NewServingClient(cfg.ServingHost, cfg.ServingToken, cfg.ServingEndpoint)

	// =========================================================================
	// SERVICES
	// =========================================================================

	errInfra := error_notificator.NewInfra(tgClient, cfg.AdminChatID)
	errService := error_notificator.NewService(errInfra)

	aiService := ai.NewService(servingClient)

	relayService := relay.New(
		tgClient,
		aiService,
		tgClient,
		errService,
		time.Duration(cfg.PollInterval)*time.Second,
		cfg.ServingEndpoint,
	)

	// =========================================================================
	// RELAY LOOP
	// =========================================================================

	go relayService.Run(context.Background())

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	updateHandler := delivery.NewUpdateHandler(relayService, zl)
	delivery.RegisterRoutes(r, updateHandler)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "model_relay",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
