package http

import (
	"github.com/belenfg/restaurant-chatbot/internal/reservation"
	"github.com/belenfg/restaurant-chatbot/pkg/log"
)

type handler struct {
	l  log.Logger
	uc reservation.UseCase
}

// New creates the read-only reservation HTTP handler.
func New(l log.Logger, uc reservation.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
