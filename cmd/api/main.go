package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/belenfg/restaurant-chatbot/config"
	_ "github.com/belenfg/restaurant-chatbot/docs" // Swagger docs
	"github.com/belenfg/restaurant-chatbot/internal/bootstrap"
	chatDiscord "github.com/belenfg/restaurant-chatbot/internal/chat/delivery/discord"
	"github.com/belenfg/restaurant-chatbot/internal/httpserver"
	"github.com/belenfg/restaurant-chatbot/pkg/log"
	"github.com/belenfg/restaurant-chatbot/pkg/telegram"
)

// @title       Restaurant Chatbot API
// @description Restaurant assistant answering questions and taking reservations over HTTP, websocket and Telegram.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Println("Failed to load .env: ", err)
	}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting restaurant chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 3. Domain
	app, err := bootstrap.New(ctx, cfg, logger, bootstrap.Options{EnableResponder: cfg.Chat.EnableResponder})
	if err != nil {
		logger.Error(ctx, "Failed to initialize application: ", err)
		return
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close storage: %v", err)
		}
	}()

	if len(app.Providers) == 0 {
		logger.Info(ctx, "Replies: canned only")
	}

	// 4. Telegram (optional)
	var telegramBot telegram.IBot
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramBot = bot
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	chatUC := app.ChatUseCase(cfg.Chat, logger)

	// 5. Discord (optional)
	if cfg.Discord.BotToken != "" {
		discord := chatDiscord.New(logger, chatUC, chatDiscord.Config{
			BotToken:    cfg.Discord.BotToken,
			MentionOnly: cfg.Discord.MentionOnly,
		})
		if err := discord.Start(ctx); err != nil {
			logger.Warnf(ctx, "Discord listener unavailable: %v", err)
		} else {
			defer func() {
				if err := discord.Stop(); err != nil {
					logger.Warnf(ctx, "Failed to stop Discord listener: %v", err)
				}
			}()
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		RateLimitPerMin:    cfg.HTTPServer.RateLimitPerMin,
		ChatUseCase:        chatUC,
		ReservationUseCase: app.Reservations,
		TelegramBot:        telegramBot,
		TelegramSecret:     cfg.Telegram.SecretToken,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this server, probing ngrok when no URL is configured.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPI != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI, defaultNgrokAttempts)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = ngrokURL + telegramWebhookPath
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook URL unknown, set telegram.webhook_url or telegram.ngrok_api")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
