package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/belenfg/restaurant-chatbot/internal/catalog"
)

var (
	time24Re = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	time12Re = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm|a\.m\.|p\.m\.)$`)
	phoneRe  = regexp.MustCompile(`^\+?[\d\s]{9,15}$`)
)

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

const maxNameLength = 60

// ValidateDate resolves input to a calendar day and checks it against the
// schedule and the advance booking window.
func (v *Validator) ValidateDate(input string) (time.Time, error) {
	date, err := v.parser.Resolve(input, v.now())
	if err != nil {
		return time.Time{}, reject(FieldDate, CodeFormat, "Incorrect date format. Use DD/MM/YYYY (example: 15/05/2025).")
	}
	if err := v.checkDate(date); err != nil {
		return time.Time{}, err
	}
	return date, nil
}

// ValidateTime parses HH:MM or H[:MM] am|pm and checks it against date's opening hours.
func (v *Validator) ValidateTime(input string, date time.Time) (catalog.Clock, error) {
	clock, ok := parseClock(input)
	if !ok {
		return 0, reject(FieldTime, CodeFormat, "Incorrect time format. Use HH:MM (example: 19:30).")
	}
	if err := v.checkTime(date, clock); err != nil {
		return 0, err
	}
	return clock, nil
}

// ValidatePartySize accepts a positive number up to the policy maximum.
func (v *Validator) ValidatePartySize(input string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	n, err := strconv.Atoi(s)
	if err != nil {
		w, ok := numberWords[s]
		if !ok {
			return 0, reject(FieldPartySize, CodeFormat, "Please provide a valid number of people.")
		}
		n = w
	}
	if err := v.checkPartySize(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateName accepts any non-empty name of reasonable length.
func (v *Validator) ValidateName(input string) (string, error) {
	name := strings.Join(strings.Fields(input), " ")
	if name == "" {
		return "", reject(FieldName, CodeEmpty, "Please tell me the name for the reservation.")
	}
	if len(name) > maxNameLength {
		return "", reject(FieldName, CodeFormat, "That name is too long. Please use a shorter one.")
	}
	return name, nil
}

// ValidatePhone accepts 9 to 15 digits or spaces with an optional leading +.
func (v *Validator) ValidatePhone(input string) (string, error) {
	phone := strings.TrimSpace(input)
	if !phoneRe.MatchString(phone) {
		return "", reject(FieldPhone, CodeFormat, "The phone format doesn't seem correct. Please enter a valid number.")
	}
	return phone, nil
}

// ValidateSlot re-checks a complete (date, time, party size) triple with the
// same rules the field validators apply.
func (v *Validator) ValidateSlot(date time.Time, clock catalog.Clock, partySize int) error {
	if err := v.checkDate(date); err != nil {
		return err
	}
	if err := v.checkTime(date, clock); err != nil {
		return err
	}
	if err := v.checkPartySize(partySize); err != nil {
		return err
	}
	return nil
}

func (v *Validator) checkDate(date time.Time) *Error {
	day := v.parser.StartOfDay(date)
	if v.cat.IsClosed(day.Weekday()) {
		return reject(FieldDate, CodeClosedDay, fmt.Sprintf("Sorry, the restaurant is closed on %s.", v.cat.ClosedDaysPhrase()))
	}

	diff := v.parser.DaysBetween(v.Today(), day)
	if diff < 0 {
		return reject(FieldDate, CodePastDate, "I can't make reservations for past dates.")
	}
	if diff > v.cat.Policy.MaxAdvanceDays {
		return reject(FieldDate, CodeTooFarAhead, fmt.Sprintf("We only accept reservations with a maximum of %d days in advance.", v.cat.Policy.MaxAdvanceDays))
	}
	return nil
}

func (v *Validator) checkTime(date time.Time, clock catalog.Clock) *Error {
	day := v.parser.StartOfDay(date)
	iv, open := v.cat.Hours(day.Weekday())
	if !open {
		return reject(FieldTime, CodeClosedDay, fmt.Sprintf("Sorry, the restaurant is closed on %s.", v.cat.ClosedDaysPhrase()))
	}
	if !iv.Contains(clock) {
		return reject(FieldTime, CodeOutsideHours, fmt.Sprintf("Our hours are from %s to %s.", iv.Open, iv.Close))
	}
	if clock.Minute()%v.cat.Policy.SlotMinutes != 0 {
		return reject(FieldTime, CodeInterval, "Reservations can only be made at 30-minute intervals (XX:00 or XX:30).")
	}
	if day.Equal(v.Today()) {
		now := v.Now()
		if int(clock) <= now.Hour()*60+now.Minute() {
			return reject(FieldTime, CodePastTime, "That time has already passed today. Please choose a later time.")
		}
	}
	return nil
}

func (v *Validator) checkPartySize(n int) *Error {
	if n <= 0 {
		return reject(FieldPartySize, CodeNotPositive, "The number of people must be positive.")
	}
	if n > v.cat.Policy.MaxPartySize {
		return reject(FieldPartySize, CodeTooLarge, fmt.Sprintf("For groups of more than %d people, please call us directly at %s.", v.cat.Policy.MaxPartySize, v.cat.Phone))
	}
	return nil
}

// parseClock normalizes 24-hour and 12-hour input to a Clock.
func parseClock(input string) (catalog.Clock, bool) {
	s := strings.ToLower(strings.TrimSpace(input))

	if m := time24Re.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if h > 23 || minute > 59 {
			return 0, false
		}
		return catalog.NewClock(h, minute), true
	}

	if m := time12Re.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if h < 1 || h > 12 || minute > 59 {
			return 0, false
		}
		pm := strings.HasPrefix(m[3], "p")
		switch {
		case pm && h != 12:
			h += 12
		case !pm && h == 12:
			h = 0
		}
		return catalog.NewClock(h, minute), true
	}

	return 0, false
}

// ParseClock exposes the time parser used by ValidateTime.
func ParseClock(input string) (catalog.Clock, bool) {
	return parseClock(input)
}
