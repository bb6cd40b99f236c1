package discord

import (
	"strings"
	"time"
)

const (
	processTimeout = 30 * time.Second

	cmdStart = "!start"
	cmdHelp  = "!help"
	cmdReset = "!reset"

	msgHelp = "I can answer questions about our opening hours, menu, location, events and payments, and I can book a table for you.\n\n" +
		"Try: \"What are your hours?\" or \"I'd like to book a table for 4 tomorrow at 20:00\".\n\n" +
		"`!reset` starts the conversation over."
	msgReset       = "Conversation reset."
	msgResumed     = "We're already talking, so let's carry on. Send `!reset` to start over."
	msgRateLimited = "You're sending messages too quickly. Please wait a moment and try again."
	msgFailure     = "I'm sorry, an error occurred. Can you try again?"
)

// Sessions are per channel, so a DM and a guild channel never share a booking draft.
func sessionID(channelID string) string {
	return "discord_" + channelID
}

func normalizeBotToken(token string) string {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(strings.ToLower(token), "bot ") {
		return token
	}
	return "Bot " + token
}
