package reservation

import (
	"fmt"
	"strings"
	"time"
)

// Storage layouts for Reservation.Date and Reservation.Time.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Reservation is a committed booking. It is never modified after commit.
type Reservation struct {
	ID        string
	Date      string
	Time      string
	Ordinal   int
	Name      string
	PartySize int
	Phone     string
	CreatedAt time.Time
}

// Customer is a ledger entry keyed by the normalized name.
type Customer struct {
	Key           string
	DisplayName   string
	Phone         string
	Visits        int
	LastVisitDate string
}

// Returning reports whether the customer has booked more than once.
func (c Customer) Returning() bool {
	return c.Visits > 1
}

// --- UseCase Inputs ---

type CommitInput struct {
	Date      string
	Time      string
	Name      string
	PartySize int
	Phone     string
}

// --- UseCase Outputs ---

type CommitOutput struct {
	Reservation Reservation
	Customer    Customer
}

type AvailabilityOutput struct {
	Date      string
	Time      string
	Booked    int
	Remaining int
}

// CustomerKey normalizes a name for ledger lookups.
func CustomerKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// SlotID builds the "date|time|ordinal" reservation id.
func SlotID(date, clock string, ordinal int) string {
	return fmt.Sprintf("%s|%s|%d", date, clock, ordinal)
}
