package router

import (
	"strings"
	"unicode"
)

// Classify returns the first matching intent, or IntentUnknown.
func (r *KeywordRouter) Classify(text string) Intent {
	msg := normalize(text)
	if msg == "" {
		return IntentUnknown
	}
	for _, rl := range rules {
		if rl.re.MatchString(msg) {
			return rl.intent
		}
	}
	if _, ok := r.ExtractName(text); ok {
		return IntentNameHint
	}
	return IntentUnknown
}

// ExtractName tries the self-introduction patterns, then treats a short
// message without common verbs as a bare name.
func (r *KeywordRouter) ExtractName(text string) (string, bool) {
	if name, ok := r.ExtractExplicitName(text); ok {
		return name, true
	}

	msg := strings.Trim(normalize(text), trimPunct)
	if !bareNameRe.MatchString(msg) {
		return "", false
	}
	for _, w := range strings.Fields(msg) {
		if notNames[w] || nameStops[w] {
			return "", false
		}
	}
	return titleCase(msg), true
}

// ExtractExplicitName only recognizes "my name is X", "I am X", "I'm X" and "call me X".
func (r *KeywordRouter) ExtractExplicitName(text string) (string, bool) {
	msg := normalize(text)
	for _, re := range explicitNamePatterns {
		m := re.FindStringSubmatch(msg)
		if m == nil {
			continue
		}
		var words []string
		for _, w := range strings.Fields(m[1]) {
			if nameStops[w] {
				break
			}
			words = append(words, w)
		}
		if len(words) == 0 || notNames[words[0]] {
			continue
		}
		if len(words) == 2 && notNames[words[1]] {
			words = words[:1]
		}
		return titleCase(strings.Join(words, " ")), true
	}
	return "", false
}

// ExtractSlots finds the first date, time and party size tokens in text.
func (r *KeywordRouter) ExtractSlots(text string) Slots {
	msg := normalize(text)
	var s Slots
	if m := dateSlotRe.FindStringSubmatch(msg); m != nil {
		s.Date = m[1]
	}
	if m := timeSlotRe.FindStringSubmatch(msg); m != nil {
		s.Time = m[1]
	}
	for _, re := range partyRes {
		if m := re.FindStringSubmatch(msg); m != nil {
			s.PartySize = m[1]
			break
		}
	}
	return s
}

func normalize(text string) string {
	msg := strings.ToLower(strings.TrimSpace(text))
	msg = strings.ReplaceAll(msg, "’", "'")
	return strings.Join(strings.Fields(msg), " ")
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
