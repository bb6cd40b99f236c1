package dialogue

import "time"

const (
	MaxTranscript           = 10
	DefaultResponderTimeout = 8 * time.Second
	DisplayDateLayout       = "02/01/2006"
)

// Prompts for the reservation flow.
const (
	PromptDate         = "What date would you like to reserve? (format DD/MM/YYYY)"
	PromptTime         = "What time would you like to reserve? (format HH:MM, for example 19:30)"
	PromptPartySize    = "How many people will attend?"
	PromptName         = "What name should I put the reservation under?"
	PromptPhone        = "Could you give me a contact phone number?"
	PromptConfirmation = "Is this information correct? (yes/no)"
)

const (
	MsgStartReservation = "Perfect! Let's make your reservation."
	MsgRestart          = "Alright, let's start over. " + PromptDate
	MsgCancelled        = "No problem, I've cancelled the reservation. Is there anything else I can help you with?"
	MsgAskYesNo         = "Please confirm if the reservation information is correct by answering 'yes' or 'no'."
	MsgSlotFull         = "I'm sorry, it seems there's no availability for that date and time. Would you like to try another time?"
	MsgPersistFailure   = "I'm sorry, I couldn't save your reservation right now. Answer 'yes' to try again or 'no' to start over."
	MsgInternalError    = "I'm sorry, an error occurred. Can you try again?"
	MsgAnythingElse     = "Can I help you with anything else?"
)

var farewellVariants = []string{
	"Thank you for contacting us. We hope to see you soon!",
	"It was a pleasure to help you. See you soon!",
	"Have a great day. We look forward to welcoming you!",
}

var thanksVariants = []string{
	"You're welcome! Is there anything else I can help you with?",
	"My pleasure! Do you need anything else?",
	"Happy to help! Let me know if you have any other questions.",
}

var notUnderstoodVariants = []string{
	"I'm sorry, I didn't quite understand. You can ask me about our hours, location, menu, or make a reservation.",
	"Could you rephrase that? I can help you with reservations, opening hours, our menu and how to find us.",
	"I'm not sure I follow. Try asking about our menu, our schedule or booking a table.",
}

var cancelWords = []string{"cancel", "stop", "never mind", "nevermind", "forget it"}

var affirmatives = map[string]bool{
	"yes": true, "y": true, "yeah": true, "yep": true, "yes please": true,
	"correct": true, "perfect": true, "sure": true, "confirm": true,
	"ok": true, "okay": true, "right": true, "that's right": true, "that's correct": true,
}

var negatives = map[string]bool{
	"no": true, "n": true, "nope": true, "incorrect": true, "wrong": true,
	"not correct": true, "that's wrong": true,
}
