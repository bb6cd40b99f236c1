package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/belenfg/restaurant-chatbot/internal/reservation"
	"github.com/belenfg/restaurant-chatbot/internal/reservation/repository"
)

// Commit books the slot if it has room. Commits to the same slot are
// serialized here, and each backend also makes check-and-append atomic.
func (uc *implUseCase) Commit(ctx context.Context, input reservation.CommitInput) (reservation.CommitOutput, error) {
	if err := validateCommitInput(input); err != nil {
		return reservation.CommitOutput{}, err
	}

	unlock := uc.locks.lock(reservation.SlotID(input.Date, input.Time, 0))
	defer unlock()

	res, cust, err := uc.repo.AppendReservation(ctx, repository.AppendReservationOptions{
		Date:      input.Date,
		Time:      input.Time,
		Name:      strings.TrimSpace(input.Name),
		PartySize: input.PartySize,
		Phone:     strings.TrimSpace(input.Phone),
		Capacity:  uc.capacity,
		CreatedAt: uc.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrSlotFull) {
			uc.l.Infof(ctx, "reservation.usecase.Commit: slot %s %s is full", input.Date, input.Time)
			return reservation.CommitOutput{}, reservation.ErrCapacityExceeded
		}
		uc.l.Errorf(ctx, "reservation.usecase.Commit: repo.AppendReservation: %v", err)
		return reservation.CommitOutput{}, err
	}

	uc.l.Info(ctx, "reservation committed", "id", res.ID, "party_size", res.PartySize, "visits", cust.Visits)
	return reservation.CommitOutput{Reservation: res, Customer: cust}, nil
}

func validateCommitInput(input reservation.CommitInput) error {
	if _, err := time.Parse(reservation.DateLayout, input.Date); err != nil {
		return fmt.Errorf("%w: date %q", reservation.ErrInvalidInput, input.Date)
	}
	if _, err := time.Parse(reservation.TimeLayout, input.Time); err != nil {
		return fmt.Errorf("%w: time %q", reservation.ErrInvalidInput, input.Time)
	}
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: empty name", reservation.ErrInvalidInput)
	}
	if input.PartySize <= 0 {
		return fmt.Errorf("%w: party size %d", reservation.ErrInvalidInput, input.PartySize)
	}
	return nil
}
