package file

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/belenfg/restaurant-chatbot/internal/reservation"
	"github.com/belenfg/restaurant-chatbot/internal/reservation/repository"
)

func (r *implRepository) AppendReservation(ctx context.Context, opt repository.AppendReservationOptions) (reservation.Reservation, reservation.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slots := r.reservations[opt.Date]
	if len(slots[opt.Time]) >= opt.Capacity {
		return reservation.Reservation{}, reservation.Customer{}, repository.ErrSlotFull
	}

	ordinal := len(slots[opt.Time]) + 1
	stored := storedReservation{
		ID:        reservation.SlotID(opt.Date, opt.Time, ordinal),
		Ordinal:   ordinal,
		Name:      opt.Name,
		People:    opt.PartySize,
		Phone:     opt.Phone,
		CreatedAt: opt.CreatedAt,
	}
	if slots == nil {
		slots = map[string][]storedReservation{}
		r.reservations[opt.Date] = slots
	}
	slots[opt.Time] = append(slots[opt.Time], stored)

	key := reservation.CustomerKey(opt.Name)
	cust, ok := r.customers[key]
	if !ok {
		cust = storedCustomer{Name: opt.Name}
	}
	cust.Phone = opt.Phone
	cust.Visits++
	cust.LastVisit = opt.Date
	r.customers[key] = cust

	// The in-memory state is authoritative for this process. A failed save is
	// logged and retried implicitly by the next commit.
	if err := writeJSON(filepath.Join(r.dir, ReservationsFile), r.reservations); err != nil {
		r.l.Errorf(ctx, "reservation.repository.file.AppendReservation: save reservations: %v", err)
	}
	if err := writeJSON(filepath.Join(r.dir, CustomersFile), r.customers); err != nil {
		r.l.Errorf(ctx, "reservation.repository.file.AppendReservation: save customers: %v", err)
	}

	return toReservation(opt.Date, opt.Time, stored), toCustomer(key, cust), nil
}

func (r *implRepository) ListReservations(ctx context.Context, opt repository.ListReservationsOptions) ([]reservation.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slots := r.reservations[opt.Date]
	times := make([]string, 0, len(slots))
	for t := range slots {
		times = append(times, t)
	}
	sort.Strings(times)

	var out []reservation.Reservation
	for _, t := range times {
		for _, s := range slots[t] {
			out = append(out, toReservation(opt.Date, t, s))
		}
	}
	return out, nil
}

func (r *implRepository) CountReservations(ctx context.Context, date, clock string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reservations[date][clock]), nil
}

func (r *implRepository) GetCustomer(ctx context.Context, key string) (reservation.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cust, ok := r.customers[key]
	if !ok {
		return reservation.Customer{}, repository.ErrNotFound
	}
	return toCustomer(key, cust), nil
}

func toReservation(date, clock string, s storedReservation) reservation.Reservation {
	return reservation.Reservation{
		ID:        s.ID,
		Date:      date,
		Time:      clock,
		Ordinal:   s.Ordinal,
		Name:      s.Name,
		PartySize: s.People,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
	}
}

func toCustomer(key string, c storedCustomer) reservation.Customer {
	return reservation.Customer{
		Key:           key,
		DisplayName:   c.Name,
		Phone:         c.Phone,
		Visits:        c.Visits,
		LastVisitDate: c.LastVisit,
	}
}
