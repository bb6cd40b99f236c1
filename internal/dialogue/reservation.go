package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/belenfg/restaurant-chatbot/internal/reservation"
	"github.com/belenfg/restaurant-chatbot/internal/router"
)

func (e *Engine) startReservation(ctx context.Context, text string) string {
	e.state.Draft = Draft{}
	e.state.LastTopic = TopicReservation
	e.state.State = StateCollectingDate

	slots := e.cfg.Router.ExtractSlots(text)
	if slots.Empty() {
		return PromptDate
	}
	if rejection := e.prefill(slots); rejection != "" {
		return rejection
	}
	return MsgStartReservation + " " + e.advance(ctx)
}

// prefill accepts date, time and party size in that order and stops at the
// first missing or rejected value.
func (e *Engine) prefill(slots router.Slots) string {
	v := e.cfg.Validator
	if slots.Date == "" {
		return ""
	}
	date, err := v.ValidateDate(slots.Date)
	if err != nil {
		return rejected(err, PromptDate)
	}
	e.state.Draft.Date = &date

	if slots.Time == "" {
		return ""
	}
	clock, err := v.ValidateTime(slots.Time, date)
	if err != nil {
		e.state.State = StateCollectingTime
		return rejected(err, PromptTime)
	}
	e.state.Draft.Time = &clock

	if slots.PartySize == "" {
		return ""
	}
	n, err := v.ValidatePartySize(slots.PartySize)
	if err != nil {
		e.state.State = StateCollectingPartySize
		return rejected(err, PromptPartySize)
	}
	e.state.Draft.PartySize = &n
	return ""
}

// advance moves to the first missing field and returns its prompt.
func (e *Engine) advance(ctx context.Context) string {
	d := &e.state.Draft
	switch {
	case d.Date == nil:
		e.state.State = StateCollectingDate
		return PromptDate
	case d.Time == nil:
		e.state.State = StateCollectingTime
		return PromptTime
	case d.PartySize == nil:
		e.state.State = StateCollectingPartySize
		return PromptPartySize
	}

	if d.Name == nil && e.state.UserName != "" {
		name := e.state.UserName
		d.Name = &name
	}
	switch {
	case d.Name == nil:
		e.state.State = StateCollectingPhoneOrName
		return PromptName
	case d.Phone == nil:
		e.state.State = StateCollectingPhoneOrName
		return PromptPhone
	}

	if err := e.cfg.Validator.ValidateSlot(*d.Date, *d.Time, *d.PartySize); err != nil {
		e.cfg.Logger.Infof(ctx, "dialogue.advance: slot rejected: %v", err)
		e.state.Draft = Draft{}
		e.state.State = StateCollectingDate
		return rejected(err, PromptDate)
	}

	e.state.State = StateAwaitingConfirmation
	e.state.LastTopic = TopicReservationConfirmation
	return e.summary()
}

func (e *Engine) collectDate(ctx context.Context, text string) string {
	date, err := e.cfg.Validator.ValidateDate(text)
	if err != nil {
		return rejected(err, PromptDate)
	}
	e.state.Draft.Date = &date
	return e.advance(ctx)
}

func (e *Engine) collectTime(ctx context.Context, text string) string {
	if e.state.Draft.Date == nil {
		return e.advance(ctx)
	}
	clock, err := e.cfg.Validator.ValidateTime(text, *e.state.Draft.Date)
	if err != nil {
		return rejected(err, PromptTime)
	}
	e.state.Draft.Time = &clock
	return e.advance(ctx)
}

func (e *Engine) collectPartySize(ctx context.Context, text string) string {
	n, err := e.cfg.Validator.ValidatePartySize(text)
	if err != nil {
		return rejected(err, PromptPartySize)
	}
	e.state.Draft.PartySize = &n
	return e.advance(ctx)
}

func (e *Engine) collectPhoneOrName(ctx context.Context, text string) string {
	if e.state.Draft.Name == nil {
		name, err := e.cfg.Validator.ValidateName(text)
		if err != nil {
			return rejected(err, PromptName)
		}
		e.state.Draft.Name = &name
		e.setName(ctx, name)
		return e.advance(ctx)
	}

	phone, err := e.cfg.Validator.ValidatePhone(text)
	if err != nil {
		return rejected(err, PromptPhone)
	}
	e.state.Draft.Phone = &phone
	return e.advance(ctx)
}

func (e *Engine) confirm(ctx context.Context, text string) string {
	switch {
	case isAffirmative(text):
		return e.commit(ctx)
	case isNegative(text):
		e.state.Draft = Draft{}
		e.state.State = StateCollectingDate
		e.state.LastTopic = TopicReservation
		return MsgRestart
	default:
		return MsgAskYesNo
	}
}

func (e *Engine) commit(ctx context.Context) string {
	d := e.state.Draft
	if !d.Complete() {
		return e.advance(ctx)
	}

	out, err := e.cfg.Store.Commit(ctx, reservation.CommitInput{
		Date:      d.Date.Format(reservation.DateLayout),
		Time:      d.Time.String(),
		Name:      *d.Name,
		PartySize: *d.PartySize,
		Phone:     *d.Phone,
	})
	if err != nil {
		if errors.Is(err, reservation.ErrCapacityExceeded) {
			e.state.Draft = Draft{}
			e.state.State = StateIdle
			e.state.LastTopic = TopicReservation
			return MsgSlotFull
		}
		e.cfg.Logger.Errorf(ctx, "dialogue.commit: store.Commit: %v", err)
		return MsgPersistFailure
	}

	e.state.Draft = Draft{}
	e.state.State = StateIdle
	e.state.LastTopic = TopicReservationCompleted
	if reservation.CustomerKey(*d.Name) == reservation.CustomerKey(e.state.UserName) {
		e.returning = out.Customer.Returning()
	}

	when := fmt.Sprintf("%s at %s", d.Date.Format(DisplayDateLayout), d.Time)
	if out.Customer.Returning() {
		return fmt.Sprintf("Reservation confirmed, %s! Thank you for trusting us again. We look forward to seeing you on %s. %s", *d.Name, when, MsgAnythingElse)
	}
	return fmt.Sprintf("Reservation confirmed, %s! We look forward to seeing you on %s. %s", *d.Name, when, MsgAnythingElse)
}

func (e *Engine) cancel() string {
	e.state.Draft = Draft{}
	e.state.State = StateIdle
	e.state.LastTopic = TopicReservation
	return MsgCancelled
}

func (e *Engine) summary() string {
	d := e.state.Draft
	var b strings.Builder
	b.WriteString("Perfect. I confirm your reservation:\n")
	fmt.Fprintf(&b, "- Date: %s\n", d.Date.Format(DisplayDateLayout))
	fmt.Fprintf(&b, "- Time: %s\n", d.Time)
	fmt.Fprintf(&b, "- People: %d\n", *d.PartySize)
	fmt.Fprintf(&b, "- Name: %s\n", *d.Name)
	fmt.Fprintf(&b, "- Phone: %s\n\n", *d.Phone)
	b.WriteString(PromptConfirmation)
	return b.String()
}

func rejected(err error, prompt string) string {
	return err.Error() + " " + prompt
}
