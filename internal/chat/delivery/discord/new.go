package discord

import (
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/belenfg/restaurant-chatbot/internal/chat"
	pkgLog "github.com/belenfg/restaurant-chatbot/pkg/log"
	"github.com/belenfg/restaurant-chatbot/pkg/serial"
)

// Sender posts a message to a channel.
type Sender interface {
	Send(channelID, content string) error
}

// Config configures the listener.
type Config struct {
	BotToken    string
	MentionOnly bool
}

// Listener answers Discord messages through the chat usecase.
type Listener struct {
	l   pkgLog.Logger
	uc  chat.UseCase
	cfg Config

	mu      sync.Mutex
	session *discordgo.Session
	sender  Sender
	// queue answers each channel's messages in arrival order.
	queue serial.Queue
}

// New creates a listener. Start opens the gateway connection.
func New(l pkgLog.Logger, uc chat.UseCase, cfg Config) *Listener {
	return &Listener{l: l, uc: uc, cfg: cfg}
}

type sessionSender struct {
	s *discordgo.Session
}

func (s sessionSender) Send(channelID, content string) error {
	_, err := s.s.ChannelMessageSend(channelID, content)
	return err
}
