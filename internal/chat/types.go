package chat

import (
	"time"

	"github.com/belenfg/restaurant-chatbot/internal/dialogue"
)

// MaxSessionIDLength bounds caller-chosen session ids.
const MaxSessionIDLength = 128

// --- UseCase Inputs ---

type StartInput struct {
	// SessionID is optional. Empty means a new uuid.
	SessionID string
}

type SendInput struct {
	SessionID string
	Text      string
}

// --- UseCase Outputs ---

type StartOutput struct {
	SessionID string
	// Welcome is empty when Resumed is true.
	Welcome   string
	CreatedAt time.Time
	// Resumed reports that a live session with the requested id was returned unchanged.
	Resumed   bool
}

type SendOutput struct {
	SessionID string
	Reply     string
	State     dialogue.State
	Finished  bool
}

type TranscriptOutput struct {
	SessionID string
	CreatedAt time.Time
	Snapshot  dialogue.Snapshot
}
