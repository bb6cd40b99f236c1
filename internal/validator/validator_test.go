package validator

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/belenfg/restaurant-chatbot/internal/catalog"
)

// Saturday 20 December 2025, noon.
var fixedNow = time.Date(2025, 12, 20, 12, 0, 0, 0, time.UTC)

func newTestValidator() *Validator {
	cat := catalog.New(catalog.WithLocation(time.UTC))
	return New(cat, WithClock(func() time.Time { return fixedNow }))
}

func codeOf(t *testing.T, err error) Code {
	t.Helper()
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validator.Error, got %T (%v)", err, err)
	}
	return verr.Code
}

func TestValidateDate(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		input    string
		want     time.Time
		wantCode Code
	}{
		{input: "25/12/2025", want: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)},
		{input: "2025-12-26", want: time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC)},
		{input: "today", want: time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)},
		{input: "tomorrow", want: time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC)},
		{input: "next saturday", want: time.Date(2025, 12, 27, 0, 0, 0, 0, time.UTC)},
		{input: "next friday", want: time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC)},
		{input: "18/1/2026", want: time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC)},
		{input: "next monday", wantCode: CodeClosedDay},
		{input: "23/12/2025", wantCode: CodeClosedDay},
		{input: "19/12/2025", wantCode: CodePastDate},
		{input: "21/01/2026", wantCode: CodeTooFarAhead},
		{input: "25.12.2025", wantCode: CodeFormat},
		{input: "31/02/2026", wantCode: CodeFormat},
		{input: "", wantCode: CodeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := v.ValidateDate(tt.input)
			if tt.wantCode != "" {
				if err == nil {
					t.Fatalf("expected rejection %s, got %v", tt.wantCode, got)
				}
				if code := codeOf(t, err); code != tt.wantCode {
					t.Errorf("code = %s, want %s", code, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected rejection: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateDateClosedMessage(t *testing.T) {
	v := newTestValidator()
	_, err := v.ValidateDate("22/12/2025")
	if err == nil || err.Error() != "Sorry, the restaurant is closed on Mondays and Tuesdays." {
		t.Errorf("unexpected error: %v", err)
	}
}

// Every day in a window around today is accepted iff it is open, not past and
// within the advance window. The joint check agrees with the field check.
func TestValidateDateWindowProperty(t *testing.T) {
	v := newTestValidator()
	cat := catalog.New(catalog.WithLocation(time.UTC))
	today := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)

	for offset := -10; offset <= 45; offset++ {
		day := today.AddDate(0, 0, offset)
		input := day.Format("02/01/2006")

		var wantCode Code
		switch {
		case cat.IsClosed(day.Weekday()):
			wantCode = CodeClosedDay
		case offset < 0:
			wantCode = CodePastDate
		case offset > 30:
			wantCode = CodeTooFarAhead
		}

		_, fieldErr := v.ValidateDate(input)
		jointErr := v.ValidateSlot(day, catalog.NewClock(19, 30), 4)

		if wantCode == "" {
			if fieldErr != nil {
				t.Errorf("%s: unexpected field rejection %v", input, fieldErr)
			}
			if jointErr != nil {
				t.Errorf("%s: unexpected joint rejection %v", input, jointErr)
			}
			continue
		}
		if fieldErr == nil || codeOf(t, fieldErr) != wantCode {
			t.Errorf("%s: field error = %v, want %s", input, fieldErr, wantCode)
		}
		if jointErr == nil || codeOf(t, jointErr) != wantCode {
			t.Errorf("%s: joint error = %v, want %s", input, jointErr, wantCode)
		}
	}
}

func TestValidateTime(t *testing.T) {
	v := newTestValidator()
	christmas := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		input    string
		date     time.Time
		want     catalog.Clock
		wantCode Code
	}{
		{input: "19:30", date: christmas, want: catalog.NewClock(19, 30)},
		{input: "10:00", date: christmas, want: catalog.NewClock(10, 0)},
		{input: "23:30", date: christmas, want: catalog.NewClock(23, 30)},
		{input: "7:30 pm", date: christmas, want: catalog.NewClock(19, 30)},
		{input: "8pm", date: christmas, want: catalog.NewClock(20, 0)},
		{input: "12 PM", date: christmas, want: catalog.NewClock(12, 0)},
		{input: "11 a.m.", date: christmas, want: catalog.NewClock(11, 0)},
		{input: "12:30", date: today, want: catalog.NewClock(12, 30)},
		{input: "9:30", date: christmas, wantCode: CodeOutsideHours},
		{input: "12am", date: christmas, wantCode: CodeOutsideHours},
		{input: "19:15", date: christmas, wantCode: CodeInterval},
		{input: "11:30", date: today, wantCode: CodePastTime},
		{input: "19:30", date: time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC), wantCode: CodeClosedDay},
		{input: "25:00", date: christmas, wantCode: CodeFormat},
		{input: "13pm", date: christmas, wantCode: CodeFormat},
		{input: "half seven", date: christmas, wantCode: CodeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := v.ValidateTime(tt.input, tt.date)
			if tt.wantCode != "" {
				if err == nil {
					t.Fatalf("expected rejection %s, got %v", tt.wantCode, got)
				}
				if code := codeOf(t, err); code != tt.wantCode {
					t.Errorf("code = %s, want %s", code, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected rejection: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateTimeMinuteProperty(t *testing.T) {
	v := newTestValidator()
	christmas := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)

	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute++ {
			if minute == 0 || minute == 30 {
				continue
			}
			input := fmt.Sprintf("%02d:%02d", hour, minute)
			if _, err := v.ValidateTime(input, christmas); err == nil {
				t.Errorf("%s: expected rejection", input)
			}
		}
	}
}

func TestValidatePartySize(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		input    string
		want     int
		wantCode Code
	}{
		{input: "4", want: 4},
		{input: " 10 ", want: 10},
		{input: "two", want: 2},
		{input: "0", wantCode: CodeNotPositive},
		{input: "-3", wantCode: CodeNotPositive},
		{input: "15", wantCode: CodeTooLarge},
		{input: "a lot", wantCode: CodeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := v.ValidatePartySize(tt.input)
			if tt.wantCode != "" {
				if err == nil {
					t.Fatalf("expected rejection, got %d", got)
				}
				if code := codeOf(t, err); code != tt.wantCode {
					t.Errorf("code = %s, want %s", code, tt.wantCode)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("got %d, %v; want %d", got, err, tt.want)
			}
		})
	}
}

func TestValidatePartySizeTooLargeMentionsPhone(t *testing.T) {
	v := newTestValidator()
	_, err := v.ValidatePartySize("15")
	if err == nil || !strings.Contains(err.Error(), "call us") || !strings.Contains(err.Error(), catalog.DefaultPhone) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidatePhoneAndName(t *testing.T) {
	v := newTestValidator()

	if _, err := v.ValidatePhone("+34 612 345 678"); err != nil {
		t.Errorf("valid phone rejected: %v", err)
	}
	if _, err := v.ValidatePhone("612345678"); err != nil {
		t.Errorf("valid phone rejected: %v", err)
	}
	for _, bad := range []string{"12345", "phone-number", "+34-612-345-678"} {
		if _, err := v.ValidatePhone(bad); err == nil {
			t.Errorf("%q: expected rejection", bad)
		}
	}

	name, err := v.ValidateName("  Ana   María ")
	if err != nil || name != "Ana María" {
		t.Errorf("ValidateName = %q, %v", name, err)
	}
	if _, err := v.ValidateName("   "); err == nil {
		t.Error("expected empty name rejection")
	}
}

func TestValidateSlotPartySize(t *testing.T) {
	v := newTestValidator()
	christmas := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)

	if err := v.ValidateSlot(christmas, catalog.NewClock(19, 30), 4); err != nil {
		t.Errorf("unexpected rejection: %v", err)
	}
	if err := v.ValidateSlot(christmas, catalog.NewClock(19, 30), 11); err == nil || codeOf(t, err) != CodeTooLarge {
		t.Errorf("expected too large, got %v", err)
	}
	if err := v.ValidateSlot(christmas, catalog.NewClock(9, 0), 4); err == nil || codeOf(t, err) != CodeOutsideHours {
		t.Errorf("expected outside hours, got %v", err)
	}
}
