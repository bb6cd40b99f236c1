package websocket

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/belenfg/restaurant-chatbot/internal/chat"
	"github.com/belenfg/restaurant-chatbot/internal/dialogue"
	"github.com/belenfg/restaurant-chatbot/pkg/log"
)

// conn serializes writes; gorilla allows one concurrent writer.
type conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *conn) write(frame outboundFrame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.ws.WriteJSON(frame)
}

func (c *conn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
}

// Serve godoc
// @Summary     Chat over websocket
// @Description Upgrades to a websocket. Send {"text": "..."} frames and receive {"type","session_id","reply","state","finished"} frames. Pass session_id to resume a session.
// @Tags        Chat
// @Param       session_id query string false "Existing session to resume"
// @Router      /ws/chat [GET]
func (h *handler) Serve(c *gin.Context) {
	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(c.Request.Context(), "websocket.Serve: upgrade: %v", err)
		return
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(context.WithoutCancel(c.Request.Context()))
	defer cancel()

	cn := &conn{ws: ws}
	sessionID, err := h.attach(ctx, cn, c.Query("session_id"))
	if err != nil {
		h.l.Errorf(ctx, "websocket.Serve: attach: %v", err)
		return
	}
	ctx = log.WithSessionID(ctx, sessionID)

	ws.SetReadLimit(maxFrameSize)
	ws.SetReadDeadline(time.Now().Add(readTimeout))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(readTimeout))
	})
	go h.pingLoop(ctx, cn)

	for {
		var in inboundFrame
		if err := ws.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.l.Warnf(ctx, "websocket.Serve: read: %v", err)
			}
			return
		}
		ws.SetReadDeadline(time.Now().Add(readTimeout))

		out, err := h.uc.SendMessage(ctx, chat.SendInput{SessionID: sessionID, Text: in.Text})
		if err != nil {
			if errors.Is(err, chat.ErrSessionNotFound) {
				cn.write(outboundFrame{Type: frameError, SessionID: sessionID, Error: err.Error(), Finished: true})
				return
			}
			cn.write(outboundFrame{Type: frameError, SessionID: sessionID, Error: err.Error()})
			continue
		}

		if err := cn.write(outboundFrame{
			Type:      frameReply,
			SessionID: sessionID,
			Reply:     out.Reply,
			State:     string(out.State),
			Finished:  out.Finished,
		}); err != nil {
			h.l.Warnf(ctx, "websocket.Serve: write: %v", err)
			return
		}

		if out.Finished {
			cn.mu.Lock()
			ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "goodbye"),
				time.Now().Add(writeTimeout))
			cn.mu.Unlock()
			return
		}
	}
}

// attach resumes sessionID when it is still cached, otherwise starts a new
// session and sends its welcome.
func (h *handler) attach(ctx context.Context, cn *conn, sessionID string) (string, error) {
	if sessionID != "" {
		if tr, err := h.uc.Transcript(ctx, sessionID); err == nil {
			return sessionID, cn.write(outboundFrame{
				Type:      frameResumed,
				SessionID: sessionID,
				State:     string(tr.Snapshot.State),
				Finished:  tr.Snapshot.Ended,
			})
		}
	}

	out, err := h.uc.StartSession(ctx, chat.StartInput{SessionID: sessionID})
	if err != nil {
		cn.write(outboundFrame{Type: frameError, Error: err.Error(), Finished: true})
		return "", err
	}
	if out.Resumed {
		return out.SessionID, cn.write(outboundFrame{Type: frameResumed, SessionID: out.SessionID})
	}
	return out.SessionID, cn.write(outboundFrame{
		Type:      frameWelcome,
		SessionID: out.SessionID,
		Reply:     out.Welcome,
		State:     string(dialogue.StateIdle),
	})
}

func (h *handler) pingLoop(ctx context.Context, cn *conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := cn.ping(); err != nil {
				return
			}
		}
	}
}
