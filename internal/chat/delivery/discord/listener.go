package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/belenfg/restaurant-chatbot/internal/chat"
	pkgLog "github.com/belenfg/restaurant-chatbot/pkg/log"
)

var errAlreadyStarted = errors.New("discord listener already started")

// inbound is the part of a Discord message the listener acts on.
type inbound struct {
	ChannelID string
	GuildID   string
	AuthorBot bool
	Mentioned bool
	Content   string
}

// Start opens the gateway session and begins answering messages.
func (d *Listener) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session != nil {
		return errAlreadyStarted
	}

	s, err := discordgo.New(normalizeBotToken(d.cfg.BotToken))
	if err != nil {
		return fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentsMessageContent
	// Handlers run on the event loop so messages reach the queue in gateway order.
	s.SyncEvents = true
	s.AddHandler(d.onMessageCreate)
	d.sender = sessionSender{s: s}
	if err := s.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}

	d.session = s
	d.l.Infof(ctx, "Discord listener started")
	return nil
}

// Stop closes the gateway session and waits for in-flight messages.
func (d *Listener) Stop() error {
	d.mu.Lock()
	s := d.session
	d.session = nil
	d.mu.Unlock()

	if s == nil {
		return nil
	}
	err := s.Close()
	d.queue.Wait()
	if err != nil {
		return fmt.Errorf("close discord session: %w", err)
	}
	return nil
}

func (d *Listener) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil || m.Author == nil {
		return
	}

	var botID string
	if s != nil && s.State != nil && s.State.User != nil {
		botID = s.State.User.ID
	}

	msg := inbound{
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		AuthorBot: m.Author.Bot,
		Content:   m.Content,
	}
	for _, u := range m.Mentions {
		if u != nil && u.ID == botID {
			msg.Mentioned = true
			break
		}
	}

	d.enqueue(msg)
}

// enqueue answers msg in the background after earlier messages from its channel.
func (d *Listener) enqueue(msg inbound) {
	d.queue.Go(msg.ChannelID, func() {
		ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
		defer cancel()
		d.dispatch(ctx, msg)
	})
}

// dispatch filters the message and answers it, reporting failures to the channel.
func (d *Listener) dispatch(ctx context.Context, msg inbound) {
	if !d.accepts(msg) {
		return
	}
	if err := d.processMessage(ctx, msg); err != nil {
		d.l.Errorf(ctx, "discord listener: processMessage failed: %v", err)
		if err := d.sender.Send(msg.ChannelID, msgFailure); err != nil {
			d.l.Warnf(ctx, "discord listener: send failure notice: %v", err)
		}
	}
}

func (d *Listener) accepts(msg inbound) bool {
	if msg.AuthorBot || strings.TrimSpace(stripMentions(msg.Content)) == "" {
		return false
	}
	// GuildID is empty for direct messages.
	if d.cfg.MentionOnly && msg.GuildID != "" && !msg.Mentioned {
		return false
	}
	return true
}

func (d *Listener) processMessage(ctx context.Context, msg inbound) error {
	id := sessionID(msg.ChannelID)
	ctx = pkgLog.WithSessionID(ctx, id)
	text := strings.TrimSpace(stripMentions(msg.Content))

	switch strings.ToLower(strings.Fields(text)[0]) {
	case cmdStart:
		out, err := d.uc.StartSession(ctx, chat.StartInput{SessionID: id})
		if err != nil {
			return err
		}
		if out.Resumed {
			return d.sender.Send(msg.ChannelID, msgResumed)
		}
		return d.sender.Send(msg.ChannelID, out.Welcome)
	case cmdHelp:
		return d.sender.Send(msg.ChannelID, msgHelp)
	case cmdReset:
		_ = d.uc.EndSession(ctx, id)
		out, err := d.uc.StartSession(ctx, chat.StartInput{SessionID: id})
		if err != nil {
			return err
		}
		return d.sender.Send(msg.ChannelID, msgReset+"\n\n"+out.Welcome)
	}

	out, err := d.send(ctx, id, text)
	if errors.Is(err, chat.ErrRateLimited) {
		return d.sender.Send(msg.ChannelID, msgRateLimited)
	}
	if err != nil {
		return err
	}

	if out.Finished {
		_ = d.uc.EndSession(ctx, id)
	}
	return d.sender.Send(msg.ChannelID, out.Reply)
}

func (d *Listener) send(ctx context.Context, id, text string) (chat.SendOutput, error) {
	out, err := d.uc.SendMessage(ctx, chat.SendInput{SessionID: id, Text: text})
	if !errors.Is(err, chat.ErrSessionNotFound) {
		return out, err
	}
	if _, err := d.uc.StartSession(ctx, chat.StartInput{SessionID: id}); err != nil {
		return chat.SendOutput{}, err
	}
	return d.uc.SendMessage(ctx, chat.SendInput{SessionID: id, Text: text})
}

// stripMentions drops <@id> and <@!id> tokens so "@bot hours?" reads as "hours?".
func stripMentions(content string) string {
	fields := strings.Fields(content)
	kept := fields[:0]
	for _, f := range fields {
		if strings.HasPrefix(f, "<@") && strings.HasSuffix(f, ">") {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}
