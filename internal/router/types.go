package router

// Intent represents user's intention
type Intent string

const (
	IntentGreeting    Intent = "greeting"
	IntentFarewell    Intent = "farewell"
	IntentThanks      Intent = "thanks"
	IntentReservation Intent = "reservation"
	IntentMenu        Intent = "menu"
	IntentHours       Intent = "hours"
	IntentLocation    Intent = "location"
	IntentContact     Intent = "contact"
	IntentEvents      Intent = "events"
	IntentPayments    Intent = "payments"
	IntentNameHint    Intent = "name_hint"
	IntentUnknown     Intent = "unknown"
)

// Slots holds raw reservation values found in a free-text request.
// Empty means not found. Values are not validated.
type Slots struct {
	Date      string
	Time      string
	PartySize string
}

// Empty reports whether no slot was found.
func (s Slots) Empty() bool {
	return s.Date == "" && s.Time == "" && s.PartySize == ""
}
