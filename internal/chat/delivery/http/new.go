package http

import (
	"github.com/belenfg/restaurant-chatbot/internal/chat"
	"github.com/belenfg/restaurant-chatbot/pkg/log"
)

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for chat sessions.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
