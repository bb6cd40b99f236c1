package dialogue

import (
	"fmt"
	"strings"
	"time"
)

const systemPromptGuidelines = `Guidelines:
- Be friendly and concise, no more than three sentences.
- Answer only about the restaurant. Do not invent dishes, prices or services.
- Never confirm a reservation yourself. If the user wants to book, ask them to say "I want to make a reservation".
- Reply in the user's language.`

// SystemPrompt describes the restaurant, the user and the current date to
// the responder.
func (e *Engine) SystemPrompt() string {
	cat := e.cfg.Catalog
	var b strings.Builder

	fmt.Fprintf(&b, "You are the virtual assistant of %s, a restaurant located at %s.\n", cat.Name, cat.Address)
	fmt.Fprintf(&b, "Phone: %s. Email: %s. Website: %s.\n\n", cat.Phone, cat.Email, cat.Website)

	b.WriteString("Opening hours:\n")
	for _, line := range cat.ScheduleLines() {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	b.WriteString("\nMenu:\n")
	for _, c := range cat.Menu() {
		fmt.Fprintf(&b, "- %s: %s\n", c.Name, strings.Join(c.Items, ", "))
	}

	p := cat.Policy
	fmt.Fprintf(&b, "\nReservations: up to %d days in advance, groups of up to %d people, at %d-minute intervals.\n",
		p.MaxAdvanceDays, p.MaxPartySize, p.SlotMinutes)

	b.WriteString(buildTimeContext(e.cfg.Validator.Now()))

	if name := e.state.UserName; name != "" {
		if e.returning {
			fmt.Fprintf(&b, "\nYou are speaking with %s, a returning customer.\n", name)
		} else {
			fmt.Fprintf(&b, "\nYou are speaking with %s.\n", name)
		}
	}

	b.WriteString("\n")
	b.WriteString(systemPromptGuidelines)
	return b.String()
}

// buildTimeContext anchors relative dates for the model.
func buildTimeContext(now time.Time) string {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)
	tomorrow := now.AddDate(0, 0, 1)

	return fmt.Sprintf("\nToday is %s, %s. Tomorrow is %s, %s. This week runs from %s to %s. Dates are written DD/MM/YYYY.\n",
		now.Weekday(), now.Format(DisplayDateLayout),
		tomorrow.Weekday(), tomorrow.Format(DisplayDateLayout),
		weekStart.Format(DisplayDateLayout), weekEnd.Format(DisplayDateLayout),
	)
}
