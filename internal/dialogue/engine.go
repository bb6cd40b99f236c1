package dialogue

import (
	"context"
	"strings"
)

// Process handles one user turn and returns the reply. It never fails; an
// unexpected panic is logged and answered with an apology.
func (e *Engine) Process(ctx context.Context, text string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			e.cfg.Logger.Errorf(ctx, "dialogue.Process: recovered: %v", r)
			reply = MsgInternalError
			e.record(RoleAssistant, reply)
		}
	}()

	text = strings.TrimSpace(text)
	e.state.Turns++
	history := e.History()
	e.record(RoleUser, text)

	if e.state.State != StateIdle && isCancel(text) {
		reply = e.cancel()
	} else {
		switch e.state.State {
		case StateCollectingDate:
			reply = e.collectDate(ctx, text)
		case StateCollectingTime:
			reply = e.collectTime(ctx, text)
		case StateCollectingPartySize:
			reply = e.collectPartySize(ctx, text)
		case StateCollectingPhoneOrName:
			reply = e.collectPhoneOrName(ctx, text)
		case StateAwaitingConfirmation:
			reply = e.confirm(ctx, text)
		default:
			reply = e.idle(ctx, text, history)
		}
	}

	e.record(RoleAssistant, reply)
	return reply
}

// Welcome is the opening message of a session.
func (e *Engine) Welcome(ctx context.Context) string {
	reply := e.greeting()
	e.state.LastTopic = TopicGreeting
	e.record(RoleAssistant, reply)
	return reply
}

// Finished reports whether the user said goodbye.
func (e *Engine) Finished() bool {
	return e.state.Ended
}

// State returns the current dialogue state.
func (e *Engine) State() State {
	return e.state.State
}

// Context returns a copy of the session context.
func (e *Engine) Context() Context {
	return e.state
}

// History returns a copy of the transcript.
func (e *Engine) History() []Turn {
	out := make([]Turn, len(e.transcript))
	copy(out, e.transcript)
	return out
}

// Snapshot copies the session for presenters.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		UserName:   e.state.UserName,
		Returning:  e.returning,
		LastTopic:  e.state.LastTopic,
		State:      e.state.State,
		Turns:      e.state.Turns,
		Ended:      e.state.Ended,
		Transcript: e.History(),
	}
}

func (e *Engine) record(role Role, content string) {
	e.transcript = append(e.transcript, Turn{Role: role, Content: content})
	if n := len(e.transcript); n > MaxTranscript {
		e.transcript = append([]Turn(nil), e.transcript[n-MaxTranscript:]...)
	}
}

// setName stores the first detected user name and looks up whether the
// customer has booked before.
func (e *Engine) setName(ctx context.Context, name string) {
	if e.state.UserName != "" || name == "" {
		return
	}
	e.state.UserName = name
	returning, err := e.cfg.Store.IsReturningCustomer(ctx, name)
	if err != nil {
		e.cfg.Logger.Warnf(ctx, "dialogue.setName: store.IsReturningCustomer: %v", err)
		return
	}
	e.returning = returning
}

func (e *Engine) variant(options []string) string {
	return options[e.state.Turns%len(options)]
}

// normalizeAnswer lowercases and strips surrounding punctuation.
func normalizeAnswer(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.ReplaceAll(s, "’", "'")
	s = strings.Trim(s, " .!?,;")
	return strings.Join(strings.Fields(s), " ")
}

func isCancel(text string) bool {
	s := normalizeAnswer(text)
	for _, w := range cancelWords {
		if s == w || strings.HasPrefix(s, w+" ") {
			return true
		}
	}
	return false
}

func isAffirmative(text string) bool {
	s := normalizeAnswer(text)
	if affirmatives[s] {
		return true
	}
	first, _, _ := strings.Cut(s, " ")
	return strings.TrimRight(first, ",") == "yes"
}

func isNegative(text string) bool {
	s := normalizeAnswer(text)
	if negatives[s] {
		return true
	}
	first, _, _ := strings.Cut(s, " ")
	return strings.TrimRight(first, ",") == "no"
}
