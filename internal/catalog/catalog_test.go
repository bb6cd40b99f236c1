package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/belenfg/restaurant-chatbot/config"
)

func TestDefaultSchedule(t *testing.T) {
	c := Default()

	tests := []struct {
		day    time.Weekday
		closed bool
	}{
		{time.Monday, true},
		{time.Tuesday, true},
		{time.Wednesday, false},
		{time.Thursday, false},
		{time.Sunday, false},
	}
	for _, tt := range tests {
		if got := c.IsClosed(tt.day); got != tt.closed {
			t.Errorf("IsClosed(%s) = %v, want %v", tt.day, got, tt.closed)
		}
	}

	iv, ok := c.Hours(time.Friday)
	if !ok || iv.Open != NewClock(10, 0) || iv.Close != NewClock(23, 30) {
		t.Errorf("Hours(Friday) = %v, %v", iv, ok)
	}
	if got := c.ClosedDaysPhrase(); got != "Mondays and Tuesdays" {
		t.Errorf("ClosedDaysPhrase() = %q", got)
	}
}

func TestDefaultFAQ(t *testing.T) {
	c := Default()

	want := "Our restaurant is open Wednesday to Sunday, from 10:00 to 23:30. We are closed on Mondays and Tuesdays."
	if got := c.FAQ(TopicSchedule); got != want {
		t.Errorf("schedule FAQ = %q", got)
	}
	if !strings.Contains(c.FAQ(TopicContact), DefaultPhone) {
		t.Errorf("contact FAQ misses phone: %q", c.FAQ(TopicContact))
	}
	if !strings.Contains(c.FAQ(TopicLocation), DefaultAddress) {
		t.Errorf("location FAQ misses address: %q", c.FAQ(TopicLocation))
	}
	if c.FAQ(Topic("unknown")) != "" {
		t.Error("expected empty answer for unknown topic")
	}
}

func TestMenuIsCopied(t *testing.T) {
	c := Default()
	menu := c.Menu()
	if len(menu) != 4 || menu[0].Name != "Starters" {
		t.Fatalf("unexpected menu: %+v", menu)
	}
	menu[0].Items[0] = "changed"
	if c.Menu()[0].Items[0] == "changed" {
		t.Error("Menu must return a copy")
	}
}

func TestScheduleLines(t *testing.T) {
	lines := Default().ScheduleLines()
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d", len(lines))
	}
	if lines[0] != "Monday: Closed" || lines[2] != "Wednesday: 10:00 - 23:30" {
		t.Errorf("unexpected lines: %v", lines)
	}
}

func TestFromConfig(t *testing.T) {
	c, err := FromConfig(config.RestaurantConfig{
		Name:       "Casa Test",
		Phone:      "+34 600 000 000",
		Timezone:   "UTC",
		MaxPerSlot: 2,
		Hours: map[string]string{
			"friday":   "12:00-22:00",
			"saturday": "12:00-22:00",
			"monday":   "closed",
		},
	})
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}

	if c.Name != "Casa Test" || c.Policy.MaxPerSlot != 2 || c.Policy.MaxPartySize != DefaultMaxPartySize {
		t.Errorf("unexpected catalog: %+v", c)
	}
	if !c.IsClosed(time.Wednesday) || c.IsClosed(time.Friday) {
		t.Error("schedule not applied")
	}
	if got := c.FAQ(TopicSchedule); !strings.HasPrefix(got, "Our restaurant is open Friday and Saturday, from 12:00 to 22:00.") {
		t.Errorf("schedule FAQ = %q", got)
	}
	if !strings.Contains(c.FAQ(TopicReservations), "+34 600 000 000") {
		t.Errorf("reservations FAQ not rebuilt: %q", c.FAQ(TopicReservations))
	}
}

func TestFromConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.RestaurantConfig
	}{
		{"bad weekday", config.RestaurantConfig{Hours: map[string]string{"funday": "10:00-12:00"}}},
		{"bad interval", config.RestaurantConfig{Hours: map[string]string{"monday": "10:00"}}},
		{"inverted interval", config.RestaurantConfig{Hours: map[string]string{"monday": "22:00-10:00"}}},
		{"bad timezone", config.RestaurantConfig{Timezone: "Mars/Olympus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromConfig(tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestClock(t *testing.T) {
	c, err := ParseClock("09:30")
	if err != nil || c != NewClock(9, 30) || c.String() != "09:30" {
		t.Errorf("ParseClock = %v, %v", c, err)
	}
	if _, err := ParseClock("24:00"); err == nil {
		t.Error("expected error for hour 24")
	}

	iv := Interval{Open: NewClock(10, 0), Close: NewClock(23, 30)}
	if !iv.Contains(NewClock(10, 0)) || !iv.Contains(NewClock(23, 30)) {
		t.Error("bounds must be inclusive")
	}
	if iv.Contains(NewClock(9, 30)) || iv.Contains(NewClock(23, 31)) {
		t.Error("outside values must not be contained")
	}
}
