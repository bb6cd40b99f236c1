package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/belenfg/restaurant-chatbot/internal/chat"
	"github.com/belenfg/restaurant-chatbot/pkg/log"
)

// StartSession creates a fresh engine and greets the user. A live
// session with the same id is returned as is, keeping any open draft.
func (uc *implUseCase) StartSession(ctx context.Context, input chat.StartInput) (chat.StartOutput, error) {
	id := strings.TrimSpace(input.SessionID)
	if id == "" {
		id = uuid.NewString()
	} else if len(id) > chat.MaxSessionIDLength {
		return chat.StartOutput{}, chat.ErrInvalidSession
	}
	ctx = log.WithSessionID(ctx, id)

	uc.mu.Lock()
	if existing, ok := uc.sessions.Get(id); ok {
		uc.mu.Unlock()
		uc.l.Debug(ctx, "chat session resumed")
		return chat.StartOutput{SessionID: id, CreatedAt: existing.createdAt, Resumed: true}, nil
	}
	s := &session{
		engine:    uc.factory.New(),
		limiter:   rate.NewLimiter(uc.limit, uc.burst),
		createdAt: uc.now(),
	}
	welcome := s.engine.Welcome(ctx)
	uc.sessions.Add(id, s)
	uc.mu.Unlock()

	uc.l.Info(ctx, "chat session started", "responder", uc.factory.HasResponder())
	return chat.StartOutput{SessionID: id, Welcome: welcome, CreatedAt: s.createdAt}, nil
}

// SendMessage runs one turn of the session's engine.
func (uc *implUseCase) SendMessage(ctx context.Context, input chat.SendInput) (chat.SendOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return chat.SendOutput{}, chat.ErrEmptyMessage
	}

	s, ok := uc.sessions.Get(input.SessionID)
	if !ok {
		return chat.SendOutput{}, chat.ErrSessionNotFound
	}
	if !s.limiter.Allow() {
		return chat.SendOutput{}, chat.ErrRateLimited
	}
	ctx = log.WithSessionID(ctx, input.SessionID)

	s.mu.Lock()
	reply := s.engine.Process(ctx, text)
	state := s.engine.State()
	finished := s.engine.Finished()
	s.mu.Unlock()

	uc.touch(input.SessionID, s)

	uc.l.Debug(ctx, "chat turn", "state", string(state), "finished", finished)
	return chat.SendOutput{
		SessionID: input.SessionID,
		Reply:     reply,
		State:     state,
		Finished:  finished,
	}, nil
}

// touch re-adds s to refresh its TTL, unless the session was ended or
// replaced while the turn ran.
func (uc *implUseCase) touch(id string, s *session) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if cur, ok := uc.sessions.Peek(id); ok && cur == s {
		uc.sessions.Add(id, s)
	}
}

func (uc *implUseCase) EndSession(ctx context.Context, sessionID string) error {
	uc.mu.Lock()
	removed := uc.sessions.Remove(sessionID)
	uc.mu.Unlock()
	if !removed {
		return chat.ErrSessionNotFound
	}
	uc.l.Info(log.WithSessionID(ctx, sessionID), "chat session ended")
	return nil
}

// Transcript returns a snapshot of the session's context and bounded transcript.
func (uc *implUseCase) Transcript(ctx context.Context, sessionID string) (chat.TranscriptOutput, error) {
	s, ok := uc.sessions.Peek(sessionID)
	if !ok {
		return chat.TranscriptOutput{}, chat.ErrSessionNotFound
	}

	s.mu.Lock()
	snap := s.engine.Snapshot()
	s.mu.Unlock()

	return chat.TranscriptOutput{SessionID: sessionID, CreatedAt: s.createdAt, Snapshot: snap}, nil
}
