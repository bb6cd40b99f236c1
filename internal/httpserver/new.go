package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/belenfg/restaurant-chatbot/internal/chat"
	"github.com/belenfg/restaurant-chatbot/internal/reservation"
	"github.com/belenfg/restaurant-chatbot/pkg/log"
	"github.com/belenfg/restaurant-chatbot/pkg/telegram"
)

const EnvironmentProduction = "production"

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	rateLimitPerMin int

	// Chat domain
	chatUC chat.UseCase

	// Reservation domain (read-only admin)
	reservationUC reservation.UseCase

	// Telegram channel, optional
	telegramBot    telegram.IBot
	telegramSecret string
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	ChatUseCase        chat.UseCase
	ReservationUseCase reservation.UseCase

	// TelegramBot enables POST /webhook/telegram when set.
	TelegramBot    telegram.IBot
	TelegramSecret string
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		chatUC:          cfg.ChatUseCase,
		reservationUC:   cfg.ReservationUseCase,
		telegramBot:     cfg.TelegramBot,
		telegramSecret:  cfg.TelegramSecret,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	if srv.reservationUC == nil {
		return errors.New("reservation usecase is required")
	}
	return nil
}

// Handler exposes the router for tests and embedding.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
