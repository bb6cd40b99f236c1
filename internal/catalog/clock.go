package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a time of day in minutes since midnight.
type Clock int

// NewClock builds a Clock from an hour and minute.
func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ParseClock parses "HH:MM" in 24-hour form.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return NewClock(h, m), nil
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// String formats the clock as "15:04".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Interval is an opening window. Both bounds are inclusive.
type Interval struct {
	Open  Clock
	Close Clock
}

// Contains reports whether c falls inside the interval, bounds included.
func (i Interval) Contains(c Clock) bool {
	return c >= i.Open && c <= i.Close
}

func (i Interval) String() string {
	return i.Open.String() + " - " + i.Close.String()
}

// ParseInterval parses "HH:MM-HH:MM".
func ParseInterval(s string) (Interval, error) {
	open, closing, ok := strings.Cut(s, "-")
	if !ok {
		return Interval{}, fmt.Errorf("invalid interval %q", s)
	}
	o, err := ParseClock(open)
	if err != nil {
		return Interval{}, err
	}
	c, err := ParseClock(closing)
	if err != nil {
		return Interval{}, err
	}
	if c <= o {
		return Interval{}, fmt.Errorf("interval %q closes before it opens", s)
	}
	return Interval{Open: o, Close: c}, nil
}
