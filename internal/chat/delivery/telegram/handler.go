package telegram

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/belenfg/restaurant-chatbot/internal/chat"
	pkgLog "github.com/belenfg/restaurant-chatbot/pkg/log"
	pkgResponse "github.com/belenfg/restaurant-chatbot/pkg/response"
	pkgTelegram "github.com/belenfg/restaurant-chatbot/pkg/telegram"
)

// HandleWebhook godoc
// @Summary     Telegram webhook
// @Description Receives Bot API updates. Replies 200 at once and answers the chat in the background, one update at a time per chat.
// @Tags        Telegram
// @Accept      json
// @Produce     json
// @Success     200 {object} pkgResponse.Resp
// @Failure     401 {object} pkgResponse.Resp "Unauthorized"
// @Router      /webhook/telegram [POST]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secretToken != "" {
		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secretToken)) != 1 {
			h.l.Warnf(ctx, "telegram handler: bad secret token")
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-text updates
	if update.Message == nil || update.Message.Chat == nil || strings.TrimSpace(update.Message.Text) == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := context.WithoutCancel(ctx)

	h.queue.Go(sessionID(msg.Chat.ID), func() {
		ctx, cancel := context.WithTimeout(bgCtx, processTimeout)
		defer cancel()

		if err := h.processMessage(ctx, msg); err != nil {
			h.l.Errorf(ctx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(ctx, msg.Chat.ID, msgFailure)
		}
	})

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles one chat message against the chat's session.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	id := sessionID(msg.Chat.ID)
	ctx = pkgLog.WithSessionID(ctx, id)
	text := strings.TrimSpace(msg.Text)

	switch command(text) {
	case cmdStart:
		out, err := h.uc.StartSession(ctx, chat.StartInput{SessionID: id})
		if err != nil {
			return err
		}
		if out.Resumed {
			return h.bot.SendMessage(ctx, msg.Chat.ID, msgResumed)
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID, out.Welcome)
	case cmdHelp:
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgHelp)
	case cmdReset:
		_ = h.uc.EndSession(ctx, id)
		out, err := h.uc.StartSession(ctx, chat.StartInput{SessionID: id})
		if err != nil {
			return err
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgReset+"\n\n"+out.Welcome)
	}

	out, err := h.send(ctx, id, text)
	if errors.Is(err, chat.ErrRateLimited) {
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgRateLimited)
	}
	if err != nil {
		return err
	}

	if out.Finished {
		_ = h.uc.EndSession(ctx, id)
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, out.Reply)
}

// send runs the turn, opening the chat's session first if it expired or never existed.
func (h *handler) send(ctx context.Context, id, text string) (chat.SendOutput, error) {
	out, err := h.uc.SendMessage(ctx, chat.SendInput{SessionID: id, Text: text})
	if !errors.Is(err, chat.ErrSessionNotFound) {
		return out, err
	}
	if _, err := h.uc.StartSession(ctx, chat.StartInput{SessionID: id}); err != nil {
		return chat.SendOutput{}, err
	}
	return h.uc.SendMessage(ctx, chat.SendInput{SessionID: id, Text: text})
}

// command returns the bot command in text, without any @botname suffix.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	if i := strings.IndexByte(cmd, '@'); i > 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd)
}
