package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Hours returns the opening interval for wd. ok is false on closed days.
func (c *Catalog) Hours(wd time.Weekday) (Interval, bool) {
	iv, ok := c.schedule[wd]
	if !ok || iv == nil {
		return Interval{}, false
	}
	return *iv, true
}

// IsClosed reports whether the restaurant is closed all day on wd.
func (c *Catalog) IsClosed(wd time.Weekday) bool {
	_, ok := c.Hours(wd)
	return !ok
}

// ClosedDays lists closed weekdays, Monday first.
func (c *Catalog) ClosedDays() []time.Weekday {
	var out []time.Weekday
	for _, wd := range Week {
		if c.IsClosed(wd) {
			out = append(out, wd)
		}
	}
	return out
}

// ClosedDaysPhrase renders the closed days as "Mondays and Tuesdays".
func (c *Catalog) ClosedDaysPhrase() string {
	days := c.ClosedDays()
	names := make([]string, len(days))
	for i, wd := range days {
		names[i] = wd.String() + "s"
	}
	return joinAnd(names)
}

// ScheduleLines renders one "Day: hours" line per weekday, Monday first.
func (c *Catalog) ScheduleLines() []string {
	lines := make([]string, 0, len(Week))
	for _, wd := range Week {
		lines = append(lines, fmt.Sprintf("%s: %s", wd, c.HoursText(wd)))
	}
	return lines
}

// HoursText is "10:00 - 23:30" or "Closed".
func (c *Catalog) HoursText(wd time.Weekday) string {
	iv, ok := c.Hours(wd)
	if !ok {
		return "Closed"
	}
	return iv.String()
}

// Menu returns a copy of the menu categories in display order.
func (c *Catalog) Menu() []Category {
	out := make([]Category, len(c.menu))
	for i, cat := range c.menu {
		out[i] = Category{Name: cat.Name, Items: append([]string(nil), cat.Items...)}
	}
	return out
}

// FAQ returns the canned answer for topic, or "" if there is none.
func (c *Catalog) FAQ(topic Topic) string {
	return c.faq[topic]
}

// Now returns t in the restaurant's timezone.
func (c *Catalog) Now(t time.Time) time.Time {
	return t.In(c.Location)
}

func buildFAQ(c *Catalog) map[Topic]string {
	return map[Topic]string{
		TopicSchedule:     scheduleSentence(c),
		TopicLocation:     fmt.Sprintf("We are located at %s. We're a 5-minute walk from the Main Square and we have parking for customers.", c.Address),
		TopicReservations: fmt.Sprintf("You can make your reservation right here with me, or by calling %s.", c.Phone),
		TopicMenu:         "We offer Mediterranean cuisine with fusion touches. We have options for vegetarians and vegans. Our most popular dishes are the Valencian paella and the whiskey sirloin steak.",
		TopicEvents:       fmt.Sprintf("We organize private events and celebrations. For more information, write to %s", c.EventsEmail),
		TopicPayments:     "We accept cash and all major credit cards. We also work with mobile payments.",
		TopicContact:      fmt.Sprintf("You can contact us by phone (%s) or email (%s).", c.Phone, c.Email),
	}
}

// scheduleSentence summarizes the week. A uniform contiguous week reads
// "open Wednesday to Sunday, from 10:00 to 23:30".
func scheduleSentence(c *Catalog) string {
	var open []time.Weekday
	var first Interval
	uniform := true
	for _, wd := range Week {
		iv, ok := c.Hours(wd)
		if !ok {
			continue
		}
		if len(open) == 0 {
			first = iv
		} else if iv != first {
			uniform = false
		}
		open = append(open, wd)
	}

	if len(open) == 0 {
		return "We are currently closed."
	}

	var b strings.Builder
	if uniform {
		fmt.Fprintf(&b, "Our restaurant is open %s, from %s to %s.", dayRange(open), first.Open, first.Close)
	} else {
		parts := make([]string, len(open))
		for i, wd := range open {
			iv, _ := c.Hours(wd)
			parts[i] = fmt.Sprintf("%s %s to %s", wd, iv.Open, iv.Close)
		}
		fmt.Fprintf(&b, "Our restaurant is open %s.", joinAnd(parts))
	}
	if closed := c.ClosedDaysPhrase(); closed != "" {
		fmt.Fprintf(&b, " We are closed on %s.", closed)
	}
	return b.String()
}

// dayRange renders consecutive days as "Wednesday to Sunday" and anything else as a list.
func dayRange(days []time.Weekday) string {
	if len(days) == 1 {
		return days[0].String()
	}
	idx := func(wd time.Weekday) int { return (int(wd) + 6) % 7 }
	contiguous := true
	for i := 1; i < len(days); i++ {
		if idx(days[i]) != idx(days[i-1])+1 {
			contiguous = false
			break
		}
	}
	if contiguous && len(days) > 2 {
		return days[0].String() + " to " + days[len(days)-1].String()
	}
	names := make([]string, len(days))
	for i, wd := range days {
		names[i] = wd.String()
	}
	return joinAnd(names)
}

func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
