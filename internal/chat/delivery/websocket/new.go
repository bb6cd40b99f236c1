package websocket

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/belenfg/restaurant-chatbot/internal/chat"
	"github.com/belenfg/restaurant-chatbot/pkg/log"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 54 * time.Second
	writeTimeout = 10 * time.Second
	maxFrameSize = 8 << 10
)

type handler struct {
	l        log.Logger
	uc       chat.UseCase
	upgrader websocket.Upgrader
}

// New creates the websocket chat handler. A nil checkOrigin accepts any origin.
func New(l log.Logger, uc chat.UseCase, checkOrigin func(r *http.Request) bool) *handler {
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	return &handler{
		l:  l,
		uc: uc,
		upgrader: websocket.Upgrader{
			CheckOrigin:     checkOrigin,
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}
