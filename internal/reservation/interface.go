package reservation

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Commit books a slot and records the visit. It fails with
	// ErrCapacityExceeded when the slot is full and changes nothing.
	Commit(ctx context.Context, input CommitInput) (CommitOutput, error)
	// ListForDate maps each booked time to its reservations in commit order.
	ListForDate(ctx context.Context, date string) (map[string][]Reservation, error)
	IsReturningCustomer(ctx context.Context, name string) (bool, error)
	GetCustomer(ctx context.Context, name string) (Customer, error)
	Availability(ctx context.Context, date, clock string) (AvailabilityOutput, error)
}
