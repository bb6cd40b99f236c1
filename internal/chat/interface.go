package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// StartSession creates a session and returns the welcome greeting. A live
	// session with the same id is returned as is, with Resumed set; replacing
	// one takes an EndSession first.
	StartSession(ctx context.Context, input StartInput) (StartOutput, error)
	// SendMessage runs one turn. Turns on the same session never overlap.
	SendMessage(ctx context.Context, input SendInput) (SendOutput, error)
	EndSession(ctx context.Context, sessionID string) error
	Transcript(ctx context.Context, sessionID string) (TranscriptOutput, error)
}
