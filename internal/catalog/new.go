package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/belenfg/restaurant-chatbot/config"
)

// Option customizes a Catalog at construction time.
type Option func(*Catalog)

// WithSchedule replaces the weekly schedule. A missing or nil weekday is closed.
func WithSchedule(schedule map[time.Weekday]*Interval) Option {
	return func(c *Catalog) {
		c.schedule = make(map[time.Weekday]*Interval, len(schedule))
		for wd, iv := range schedule {
			if iv == nil {
				continue
			}
			cp := *iv
			c.schedule[wd] = &cp
		}
	}
}

// WithPolicy replaces the reservation limits. Zero fields keep the defaults.
func WithPolicy(p Policy) Option {
	return func(c *Catalog) {
		if p.MaxPerSlot > 0 {
			c.Policy.MaxPerSlot = p.MaxPerSlot
		}
		if p.MaxPartySize > 0 {
			c.Policy.MaxPartySize = p.MaxPartySize
		}
		if p.MaxAdvanceDays > 0 {
			c.Policy.MaxAdvanceDays = p.MaxAdvanceDays
		}
		if p.SlotMinutes > 0 {
			c.Policy.SlotMinutes = p.SlotMinutes
		}
	}
}

// WithLocation sets the timezone "today" is computed in.
func WithLocation(loc *time.Location) Option {
	return func(c *Catalog) {
		if loc != nil {
			c.Location = loc
		}
	}
}

// WithIdentity overrides the contact details. Empty values keep the defaults.
func WithIdentity(name, address, phone, email, website string) Option {
	return func(c *Catalog) {
		if name != "" {
			c.Name = name
		}
		if address != "" {
			c.Address = address
		}
		if phone != "" {
			c.Phone = phone
		}
		if email != "" {
			c.Email = email
		}
		if website != "" {
			c.Website = website
		}
	}
}

// New builds The Good Table catalog with opts applied.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		Name:        DefaultName,
		Address:     DefaultAddress,
		Phone:       DefaultPhone,
		Email:       DefaultEmail,
		EventsEmail: DefaultEventsEmail,
		Website:     DefaultWebsite,
		Location:    defaultLocation(),
		Policy: Policy{
			MaxPerSlot:     DefaultMaxPerSlot,
			MaxPartySize:   DefaultMaxPartySize,
			MaxAdvanceDays: DefaultMaxAdvanceDays,
			SlotMinutes:    DefaultSlotMinutes,
		},
		schedule: defaultSchedule(),
		menu:     defaultMenu(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.faq = buildFAQ(c)
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New()
}

// FromConfig overlays cfg on the defaults. A malformed schedule or timezone is an error.
func FromConfig(cfg config.RestaurantConfig) (*Catalog, error) {
	opts := []Option{
		WithIdentity(cfg.Name, cfg.Address, cfg.Phone, cfg.Email, cfg.Website),
		WithPolicy(Policy{
			MaxPerSlot:     cfg.MaxPerSlot,
			MaxPartySize:   cfg.MaxPartySize,
			MaxAdvanceDays: cfg.MaxAdvanceDays,
		}),
	}

	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("catalog: load timezone %q: %w", cfg.Timezone, err)
		}
		opts = append(opts, WithLocation(loc))
	}

	if len(cfg.Hours) > 0 {
		schedule, err := parseSchedule(cfg.Hours)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSchedule(schedule))
	}

	return New(opts...), nil
}

func parseSchedule(hours map[string]string) (map[time.Weekday]*Interval, error) {
	byName := make(map[string]time.Weekday, len(Week))
	for _, wd := range Week {
		byName[strings.ToLower(wd.String())] = wd
	}

	schedule := make(map[time.Weekday]*Interval, len(hours))
	for day, raw := range hours {
		wd, ok := byName[strings.ToLower(strings.TrimSpace(day))]
		if !ok {
			return nil, fmt.Errorf("catalog: unknown weekday %q", day)
		}
		raw = strings.TrimSpace(raw)
		if strings.EqualFold(raw, "closed") || raw == "" {
			continue
		}
		iv, err := ParseInterval(raw)
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", day, err)
		}
		schedule[wd] = &iv
	}
	return schedule, nil
}

func defaultSchedule() map[time.Weekday]*Interval {
	open := Interval{Open: NewClock(10, 0), Close: NewClock(23, 30)}
	schedule := make(map[time.Weekday]*Interval)
	for _, wd := range []time.Weekday{time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday} {
		iv := open
		schedule[wd] = &iv
	}
	return schedule
}

func defaultLocation() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
