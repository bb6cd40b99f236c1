package telegram

import (
	"time"

	"github.com/belenfg/restaurant-chatbot/internal/chat"
	pkgLog "github.com/belenfg/restaurant-chatbot/pkg/log"
	"github.com/belenfg/restaurant-chatbot/pkg/serial"
	pkgTelegram "github.com/belenfg/restaurant-chatbot/pkg/telegram"
)

const processTimeout = 30 * time.Second

type handler struct {
	l           pkgLog.Logger
	uc          chat.UseCase
	bot         pkgTelegram.IBot
	secretToken string
	// queue answers each chat's updates in arrival order.
	queue serial.Queue
}

// New creates the Telegram webhook handler. An empty secretToken disables
// the header check.
func New(l pkgLog.Logger, uc chat.UseCase, bot pkgTelegram.IBot, secretToken string) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		bot:         bot,
		secretToken: secretToken,
	}
}

// Wait blocks until every background update has been processed.
func (h *handler) Wait() {
	h.queue.Wait()
}
