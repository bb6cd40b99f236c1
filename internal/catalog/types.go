package catalog

import "time"

// Topic names a canned FAQ answer.
type Topic string

const (
	TopicSchedule     Topic = "schedule"
	TopicLocation     Topic = "location"
	TopicReservations Topic = "reservations"
	TopicMenu         Topic = "menu"
	TopicEvents       Topic = "events"
	TopicPayments     Topic = "payments"
	TopicContact      Topic = "contact"
)

// Category is one section of the menu.
type Category struct {
	Name  string
	Items []string
}

// Policy holds the reservation limits.
type Policy struct {
	MaxPerSlot     int
	MaxPartySize   int
	MaxAdvanceDays int
	SlotMinutes    int
}

// Catalog is the read-only description of the restaurant.
type Catalog struct {
	Name        string
	Address     string
	Phone       string
	Email       string
	EventsEmail string
	Website     string
	Location    *time.Location
	Policy      Policy

	schedule map[time.Weekday]*Interval
	menu     []Category
	faq      map[Topic]string
}

// Week lists weekdays starting on Monday.
var Week = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}
