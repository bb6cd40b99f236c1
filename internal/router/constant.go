package router

import "regexp"

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

type rule struct {
	intent Intent
	re     *regexp.Regexp
}

// rules are evaluated top to bottom and the first match wins.
// Reordering them changes behavior.
var rules = []rule{
	{IntentGreeting, regexp.MustCompile(`\b(hi|hello|hey|greetings|good (morning|afternoon|evening))\b`)},
	{IntentFarewell, regexp.MustCompile(`\b(bye|goodbye|see you|farewell|cya)\b|\bi'm leaving\b`)},
	{IntentThanks, regexp.MustCompile(`\b(thanks|thank you|thx|appreciate it|appreciated)\b`)},
	{IntentReservation, regexp.MustCompile(`\b(reserve|reservation|reservations|book|booking|table)\b`)},
	{IntentMenu, regexp.MustCompile(`\b(menu|food|eat|dish|dishes|cuisine|vegan|vegetarian)\b`)},
	{IntentHours, regexp.MustCompile(`\b(hour|hours|open|opening|close|closed|closing|schedule|time)\b`)},
	{IntentLocation, regexp.MustCompile(`\b(where|location|address|direction|directions|parking)\b`)},
	{IntentContact, regexp.MustCompile(`\b(call|phone|contact|email)\b`)},
	{IntentEvents, regexp.MustCompile(`\b(event|events|private party|celebration|celebrations|birthday|wedding)\b`)},
	{IntentPayments, regexp.MustCompile(`\b(pay|paying|payment|payments|card|cards|cash|credit)\b`)},
}

var explicitNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bmy name is ([\p{L}'-]+(?:\s+[\p{L}'-]+)?)`),
	regexp.MustCompile(`\bi am ([\p{L}'-]+(?:\s+[\p{L}'-]+)?)`),
	regexp.MustCompile(`\bi'm ([\p{L}'-]+(?:\s+[\p{L}'-]+)?)`),
	regexp.MustCompile(`\bcall me ([\p{L}'-]+(?:\s+[\p{L}'-]+)?)`),
}

var (
	bareNameRe = regexp.MustCompile(`^[\p{L}'-]+(?:\s+[\p{L}'-]+)?$`)
	trimPunct  = "!?.,;: "
)

// Slot patterns.
var (
	dateSlotRe = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2}|the day after tomorrow|day after tomorrow|today|tonight|tomorrow|next (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)|in \d+ (?:days?|weeks?))\b`)
	timeSlotRe = regexp.MustCompile(`\b(\d{1,2}:\d{2}(?:\s*[ap]m)?|\d{1,2}\s*[ap]m)\b`)
	partyRes   = []*regexp.Regexp{
		regexp.MustCompile(`\b(\d+)\s+(?:people|persons|guests|pax|diners)\b`),
		regexp.MustCompile(`\bparty of (\d+)\b`),
		regexp.MustCompile(`\btable for (\d+)\b`),
	}
)

// Words that end a captured name, as in "I'm Ana and I'd like...".
var nameStops = map[string]bool{
	"and": true, "but": true, "i": true, "from": true, "here": true,
	"to": true, "for": true, "with": true, "please": true, "again": true,
}

// Words that are never names. Covers common verbs and replies that reach
// the bare-name heuristic.
var notNames = map[string]bool{
	"is": true, "are": true, "am": true, "have": true, "has": true, "can": true,
	"do": true, "does": true, "want": true, "need": true, "would": true, "like": true,
	"looking": true, "going": true, "trying": true, "calling": true, "wondering": true,
	"planning": true, "interested": true, "hungry": true, "fine": true, "good": true,
	"great": true, "ok": true, "okay": true, "sure": true, "yes": true, "no": true,
	"yeah": true, "yep": true, "nope": true, "not": true, "sorry": true, "just": true,
	"so": true, "very": true, "really": true, "back": true, "new": true, "a": true,
	"an": true, "the": true, "it": true, "this": true, "that": true, "what": true,
	"why": true, "how": true, "who": true, "when": true, "maybe": true, "help": true,
	"nothing": true, "something": true, "anything": true, "hmm": true, "cool": true,
	"nice": true, "perfect": true, "correct": true, "wrong": true, "cancel": true,
	"stop": true, "exit": true, "quit": true, "y": true, "n": true,
}
