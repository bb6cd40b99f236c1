package usecase

import (
	"context"
	"errors"

	"github.com/belenfg/restaurant-chatbot/internal/reservation"
	"github.com/belenfg/restaurant-chatbot/internal/reservation/repository"
)

// ListForDate groups the date's reservations by time. Unknown dates yield an empty map.
func (uc *implUseCase) ListForDate(ctx context.Context, date string) (map[string][]reservation.Reservation, error) {
	list, err := uc.repo.ListReservations(ctx, repository.ListReservationsOptions{Date: date})
	if err != nil {
		uc.l.Errorf(ctx, "reservation.usecase.ListForDate: repo.ListReservations: %v", err)
		return nil, err
	}

	out := make(map[string][]reservation.Reservation)
	for _, r := range list {
		out[r.Time] = append(out[r.Time], r)
	}
	return out, nil
}

// IsReturningCustomer is true when the ledger has more than one visit for name.
func (uc *implUseCase) IsReturningCustomer(ctx context.Context, name string) (bool, error) {
	cust, err := uc.GetCustomer(ctx, name)
	if err != nil {
		if errors.Is(err, reservation.ErrCustomerNotFound) {
			return false, nil
		}
		return false, err
	}
	return cust.Returning(), nil
}

func (uc *implUseCase) GetCustomer(ctx context.Context, name string) (reservation.Customer, error) {
	key := reservation.CustomerKey(name)
	if key == "" {
		return reservation.Customer{}, reservation.ErrCustomerNotFound
	}

	cust, err := uc.repo.GetCustomer(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return reservation.Customer{}, reservation.ErrCustomerNotFound
		}
		uc.l.Errorf(ctx, "reservation.usecase.GetCustomer: repo.GetCustomer: %v", err)
		return reservation.Customer{}, err
	}
	return cust, nil
}

// Availability reports how many more reservations the slot accepts.
func (uc *implUseCase) Availability(ctx context.Context, date, clock string) (reservation.AvailabilityOutput, error) {
	n, err := uc.repo.CountReservations(ctx, date, clock)
	if err != nil {
		uc.l.Errorf(ctx, "reservation.usecase.Availability: repo.CountReservations: %v", err)
		return reservation.AvailabilityOutput{}, err
	}
	remaining := uc.capacity - n
	if remaining < 0 {
		remaining = 0
	}
	return reservation.AvailabilityOutput{Date: date, Time: clock, Booked: n, Remaining: remaining}, nil
}
