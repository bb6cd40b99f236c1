package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var errEmptyReply = errors.New("empty responder reply")

type generation struct {
	text string
	err  error
}

// respond asks the responder for a reply and falls back to canned on error,
// timeout or an empty answer.
func (e *Engine) respond(ctx context.Context, text string, history []Turn, canned string) string {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.ResponderTimeout)
	defer cancel()

	system := e.SystemPrompt()
	done := make(chan generation, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- generation{err: fmt.Errorf("responder panic: %v", r)}
			}
		}()
		out, err := e.cfg.Responder.Generate(ctx, text, history, system)
		done <- generation{text: out, err: err}
	}()

	select {
	case g := <-done:
		if g.err == nil && strings.TrimSpace(g.text) == "" {
			g.err = errEmptyReply
		}
		if g.err != nil {
			e.cfg.Logger.Warnf(ctx, "dialogue.respond: responder.Generate: %v", g.err)
			return canned
		}
		return strings.TrimSpace(g.text)
	case <-ctx.Done():
		e.cfg.Logger.Warnf(ctx, "dialogue.respond: %v", ctx.Err())
		return canned
	}
}
