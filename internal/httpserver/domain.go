package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "github.com/belenfg/restaurant-chatbot/internal/chat/delivery/http"
	chatTelegram "github.com/belenfg/restaurant-chatbot/internal/chat/delivery/telegram"
	chatWS "github.com/belenfg/restaurant-chatbot/internal/chat/delivery/websocket"
	"github.com/belenfg/restaurant-chatbot/internal/middleware"
	reservationHTTP "github.com/belenfg/restaurant-chatbot/internal/reservation/delivery/http"
)

// setupChatDomain registers /api/v1/chat/sessions and the /ws/chat socket.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api.Group("/chat"), h)

	ws := chatWS.New(srv.l, srv.chatUC, nil)
	chatWS.RegisterRoutes(srv.gin.Group("", mw.RateLimit()), ws)

	srv.l.Infof(ctx, "Chat domain registered")
}

// setupReservationDomain registers the read-only reservation endpoints.
func (srv *HTTPServer) setupReservationDomain(ctx context.Context, api *gin.RouterGroup) {
	h := reservationHTTP.New(srv.l, srv.reservationUC)
	reservationHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Reservation domain registered")
}

func (srv *HTTPServer) setupTelegram(ctx context.Context) {
	h := chatTelegram.New(srv.l, srv.chatUC, srv.telegramBot, srv.telegramSecret)
	chatTelegram.RegisterRoutes(srv.gin, h)

	srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
}
