package dialogue

import (
	"time"

	"github.com/belenfg/restaurant-chatbot/internal/catalog"
)

// State is the position of a session in the reservation flow.
type State string

const (
	StateIdle                  State = "idle"
	StateCollectingDate        State = "collecting_date"
	StateCollectingTime        State = "collecting_time"
	StateCollectingPartySize   State = "collecting_party_size"
	StateCollectingPhoneOrName State = "collecting_phone_or_name"
	StateAwaitingConfirmation  State = "awaiting_confirmation"
)

// Topic is the subject of the last answered turn.
type Topic string

const (
	TopicNone                    Topic = ""
	TopicGreeting                Topic = "greeting"
	TopicFarewell                Topic = "farewell"
	TopicSchedule                Topic = "schedule"
	TopicLocation                Topic = "location"
	TopicMenu                    Topic = "menu"
	TopicContact                 Topic = "contact"
	TopicEvents                  Topic = "events"
	TopicPayments                Topic = "payments"
	TopicReservation             Topic = "reservation"
	TopicReservationConfirmation Topic = "reservation_confirmation"
	TopicReservationCompleted    Topic = "reservation_completed"
	TopicUnknown                 Topic = "unknown"
)

// Role identifies the author of a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one transcript entry.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Draft is a reservation being collected. Nil fields are still missing.
type Draft struct {
	Date      *time.Time
	Time      *catalog.Clock
	PartySize *int
	Name      *string
	Phone     *string
}

// Empty reports whether no field has been collected.
func (d Draft) Empty() bool {
	return d.Date == nil && d.Time == nil && d.PartySize == nil && d.Name == nil && d.Phone == nil
}

// Complete reports whether every field has been collected.
func (d Draft) Complete() bool {
	return d.Date != nil && d.Time != nil && d.PartySize != nil && d.Name != nil && d.Phone != nil
}

// Context is the per-session conversation state.
type Context struct {
	UserName  string
	LastTopic Topic
	State     State
	Draft     Draft
	Turns     int
	Ended     bool
}

// ReservationInProgress is true between the reservation request and its
// commit, cancellation or capacity failure. It follows State, not Draft:
// StateCollectingDate opens the flow with a still empty draft.
func (c Context) ReservationInProgress() bool {
	return c.State != StateIdle
}

// Snapshot is a read-only copy of a session for presenters.
type Snapshot struct {
	UserName   string
	Returning  bool
	LastTopic  Topic
	State      State
	Turns      int
	Ended      bool
	Transcript []Turn
}
