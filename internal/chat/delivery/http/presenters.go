package http

import (
	"time"

	"github.com/belenfg/restaurant-chatbot/internal/chat"
	"github.com/belenfg/restaurant-chatbot/internal/dialogue"
)

// --- Request DTOs ---

type startReq struct {
	SessionID string `json:"session_id" binding:"max=128"`
}

func (r startReq) toInput() chat.StartInput {
	return chat.StartInput{SessionID: r.SessionID}
}

// ---

type sendReq struct {
	SessionID string `json:"-"`
	Text      string `json:"text" binding:"required,max=2000"`
}

func (r sendReq) validate() error {
	if r.SessionID == "" {
		return errMissingSessionID
	}
	return nil
}

func (r sendReq) toInput() chat.SendInput {
	return chat.SendInput{SessionID: r.SessionID, Text: r.Text}
}

// --- Response DTOs ---

type startResp struct {
	SessionID string    `json:"session_id"`
	Welcome   string    `json:"welcome"`
	CreatedAt time.Time `json:"created_at"`
	Resumed   bool      `json:"resumed"`
}

func (h *handler) newStartResp(o chat.StartOutput) startResp {
	return startResp{SessionID: o.SessionID, Welcome: o.Welcome, CreatedAt: o.CreatedAt, Resumed: o.Resumed}
}

type sendResp struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	State     string `json:"state"`
	Finished  bool   `json:"finished"`
}

func (h *handler) newSendResp(o chat.SendOutput) sendResp {
	return sendResp{
		SessionID: o.SessionID,
		Reply:     o.Reply,
		State:     string(o.State),
		Finished:  o.Finished,
	}
}

type turnResp struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type transcriptResp struct {
	SessionID string     `json:"session_id"`
	CreatedAt time.Time  `json:"created_at"`
	UserName  string     `json:"user_name,omitempty"`
	Returning bool       `json:"returning"`
	LastTopic string     `json:"last_topic,omitempty"`
	State     string     `json:"state"`
	Turns     int        `json:"turns"`
	Ended     bool       `json:"ended"`
	Messages  []turnResp `json:"messages"`
}

func (h *handler) newTranscriptResp(o chat.TranscriptOutput) transcriptResp {
	s := o.Snapshot
	return transcriptResp{
		SessionID: o.SessionID,
		CreatedAt: o.CreatedAt,
		UserName:  s.UserName,
		Returning: s.Returning,
		LastTopic: string(s.LastTopic),
		State:     string(s.State),
		Turns:     s.Turns,
		Ended:     s.Ended,
		Messages:  toTurnResps(s.Transcript),
	}
}

func toTurnResps(turns []dialogue.Turn) []turnResp {
	out := make([]turnResp, 0, len(turns))
	for _, t := range turns {
		out = append(out, turnResp{Role: string(t.Role), Content: t.Content})
	}
	return out
}
