package repository

import (
	"context"

	"github.com/belenfg/restaurant-chatbot/internal/reservation"
)

// Repository is the composed interface for the reservation data store.
type Repository interface {
	ReservationRepository
	CustomerRepository
	Close() error
}

// ReservationRepository stores bookings per (date, time) slot.
type ReservationRepository interface {
	// AppendReservation checks the slot count against opt.Capacity and appends
	// in one atomic step, recording the customer visit in the same step.
	// A full slot returns ErrSlotFull.
	AppendReservation(ctx context.Context, opt AppendReservationOptions) (reservation.Reservation, reservation.Customer, error)
	ListReservations(ctx context.Context, opt ListReservationsOptions) ([]reservation.Reservation, error)
	CountReservations(ctx context.Context, date, clock string) (int, error)
}

// CustomerRepository reads the visit ledger.
type CustomerRepository interface {
	GetCustomer(ctx context.Context, key string) (reservation.Customer, error)
}
