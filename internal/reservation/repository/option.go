package repository

import "time"

// AppendReservationOptions holds parameters for booking a slot.
type AppendReservationOptions struct {
	Date      string
	Time      string
	Name      string
	PartySize int
	Phone     string
	Capacity  int
	CreatedAt time.Time
}

// ListReservationsOptions filters reservations. Results are ordered by time
// then ordinal.
type ListReservationsOptions struct {
	Date string
}
