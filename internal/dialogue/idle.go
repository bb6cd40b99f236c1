package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/belenfg/restaurant-chatbot/internal/catalog"
	"github.com/belenfg/restaurant-chatbot/internal/reservation"
	"github.com/belenfg/restaurant-chatbot/internal/router"
)

func (e *Engine) idle(ctx context.Context, text string, history []Turn) string {
	if e.state.UserName == "" {
		if name, ok := e.cfg.Router.ExtractExplicitName(text); ok {
			e.setName(ctx, name)
		}
	}

	intent := e.cfg.Router.Classify(text)
	if intent == router.IntentReservation {
		return e.startReservation(ctx, text)
	}

	canned := e.canned(ctx, intent, text)
	if e.cfg.Responder == nil {
		return canned
	}
	return e.respond(ctx, text, history, canned)
}

// canned builds the fixed reply for intent and applies its side effects.
func (e *Engine) canned(ctx context.Context, intent router.Intent, text string) string {
	cat := e.cfg.Catalog

	switch intent {
	case router.IntentGreeting:
		e.state.LastTopic = TopicGreeting
		return e.greeting()
	case router.IntentFarewell:
		e.state.LastTopic = TopicFarewell
		e.state.Ended = true
		if e.state.UserName != "" {
			return fmt.Sprintf("Goodbye, %s! %s", e.state.UserName, e.variant(farewellVariants))
		}
		return e.variant(farewellVariants)
	case router.IntentThanks:
		return e.variant(thanksVariants)
	case router.IntentMenu:
		e.state.LastTopic = TopicMenu
		return e.menuReply()
	case router.IntentHours:
		e.state.LastTopic = TopicSchedule
		return e.hoursReply()
	case router.IntentLocation:
		e.state.LastTopic = TopicLocation
		return cat.FAQ(catalog.TopicLocation)
	case router.IntentContact:
		e.state.LastTopic = TopicContact
		return cat.FAQ(catalog.TopicContact)
	case router.IntentEvents:
		e.state.LastTopic = TopicEvents
		return cat.FAQ(catalog.TopicEvents)
	case router.IntentPayments:
		e.state.LastTopic = TopicPayments
		return cat.FAQ(catalog.TopicPayments)
	case router.IntentNameHint:
		if reply, ok := e.introduction(ctx, text); ok {
			return reply
		}
	}

	e.state.LastTopic = TopicUnknown
	return e.variant(notUnderstoodVariants)
}

// introduction answers a self-introduction. A known user is not renamed, so
// a different name from them is not treated as one.
func (e *Engine) introduction(ctx context.Context, text string) (string, bool) {
	name, ok := e.cfg.Router.ExtractName(text)
	if !ok {
		return "", false
	}
	if e.state.UserName != "" && reservation.CustomerKey(name) != reservation.CustomerKey(e.state.UserName) {
		return "", false
	}
	e.setName(ctx, name)
	name = e.state.UserName
	e.state.LastTopic = TopicGreeting
	if e.returning {
		return fmt.Sprintf("Great to see you again, %s! How can I help you today?", name), true
	}
	return fmt.Sprintf("Nice to meet you, %s! How can I help you today?", name), true
}

func (e *Engine) greeting() string {
	hour := e.cfg.Validator.Now().Hour()
	base := "Good evening"
	switch {
	case hour < 12:
		base = "Good morning"
	case hour < 20:
		base = "Good afternoon"
	}

	if e.state.UserName == "" {
		return fmt.Sprintf("%s! I'm the virtual assistant at %s. Could you tell me your name so I can assist you better? How can I help you today?", base, e.cfg.Catalog.Name)
	}
	if e.returning {
		return fmt.Sprintf("%s, %s! It's a pleasure to have you back. How can I help you today?", base, e.state.UserName)
	}
	return fmt.Sprintf("%s, %s! How can I help you today?", base, e.state.UserName)
}

func (e *Engine) menuReply() string {
	var b strings.Builder
	b.WriteString(e.cfg.Catalog.FAQ(catalog.TopicMenu))
	b.WriteString("\n\nHere's a brief overview of our menu:\n")
	for _, c := range e.cfg.Catalog.Menu() {
		fmt.Fprintf(&b, "\n*%s*: %s", c.Name, strings.Join(c.Items, ", "))
	}
	b.WriteString("\n\nIs there a specific dish you'd like to know more about?")
	return b.String()
}

func (e *Engine) hoursReply() string {
	var b strings.Builder
	b.WriteString("Our opening hours are:\n")
	for _, line := range e.cfg.Catalog.ScheduleLines() {
		b.WriteString("\n- ")
		b.WriteString(line)
	}

	today := e.cfg.Validator.Now().Weekday()
	if iv, ok := e.cfg.Catalog.Hours(today); ok {
		fmt.Fprintf(&b, "\n\nToday (%s) we're open from %s to %s.", today, iv.Open, iv.Close)
	} else {
		fmt.Fprintf(&b, "\n\nToday (%s) we're closed.", today)
	}
	return b.String()
}
