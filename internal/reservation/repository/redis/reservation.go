package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/belenfg/restaurant-chatbot/internal/reservation"
	"github.com/belenfg/restaurant-chatbot/internal/reservation/repository"
)

type storedReservation struct {
	ID        string    `json:"id"`
	Ordinal   int       `json:"ordinal"`
	Name      string    `json:"name"`
	People    int       `json:"people"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// AppendReservation WATCHes the slot list so that the LLEN check and the
// RPUSH commit together or not at all.
func (r *implRepository) AppendReservation(ctx context.Context, opt repository.AppendReservationOptions) (reservation.Reservation, reservation.Customer, error) {
	slotKey := r.slotKey(opt.Date, opt.Time)
	custKey := r.customerKey(reservation.CustomerKey(opt.Name))

	var stored storedReservation
	txf := func(tx *goredis.Tx) error {
		n, err := tx.LLen(ctx, slotKey).Result()
		if err != nil {
			return err
		}
		if int(n) >= opt.Capacity {
			return repository.ErrSlotFull
		}

		ordinal := int(n) + 1
		stored = storedReservation{
			ID:        reservation.SlotID(opt.Date, opt.Time, ordinal),
			Ordinal:   ordinal,
			Name:      opt.Name,
			People:    opt.PartySize,
			Phone:     opt.Phone,
			CreatedAt: opt.CreatedAt,
		}
		payload, err := json.Marshal(stored)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.RPush(ctx, slotKey, payload)
			pipe.SAdd(ctx, r.dateKey(opt.Date), opt.Time)
			pipe.HSetNX(ctx, custKey, "name", opt.Name)
			pipe.HSet(ctx, custKey, "phone", opt.Phone, "last_visit", opt.Date)
			pipe.HIncrBy(ctx, custKey, "visits", 1)
			return nil
		})
		return err
	}

	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err := r.rdb.Watch(ctx, txf, slotKey)
		if err == nil {
			cust, err := r.GetCustomer(ctx, reservation.CustomerKey(opt.Name))
			if err != nil {
				return reservation.Reservation{}, reservation.Customer{}, err
			}
			return toReservation(opt.Date, opt.Time, stored), cust, nil
		}
		if errors.Is(err, repository.ErrSlotFull) {
			return reservation.Reservation{}, reservation.Customer{}, err
		}
		if !errors.Is(err, goredis.TxFailedErr) {
			return reservation.Reservation{}, reservation.Customer{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
		}
		r.l.Warnf(ctx, "reservation.repository.redis.AppendReservation: slot %s changed, attempt %d", slotKey, attempt)
	}
	return reservation.Reservation{}, reservation.Customer{}, fmt.Errorf("%w: too many concurrent writers on %s", repository.ErrFailedToInsert, slotKey)
}

func (r *implRepository) ListReservations(ctx context.Context, opt repository.ListReservationsOptions) ([]reservation.Reservation, error) {
	times, err := r.rdb.SMembers(ctx, r.dateKey(opt.Date)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	sort.Strings(times)

	var out []reservation.Reservation
	for _, clock := range times {
		items, err := r.rdb.LRange(ctx, r.slotKey(opt.Date, clock), 0, -1).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		for _, item := range items {
			var s storedReservation
			if err := json.Unmarshal([]byte(item), &s); err != nil {
				return nil, fmt.Errorf("%w: decode %s: %v", repository.ErrFailedToList, clock, err)
			}
			out = append(out, toReservation(opt.Date, clock, s))
		}
	}
	return out, nil
}

func (r *implRepository) CountReservations(ctx context.Context, date, clock string) (int, error) {
	n, err := r.rdb.LLen(ctx, r.slotKey(date, clock)).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return int(n), nil
}

func (r *implRepository) GetCustomer(ctx context.Context, key string) (reservation.Customer, error) {
	fields, err := r.rdb.HGetAll(ctx, r.customerKey(key)).Result()
	if err != nil {
		return reservation.Customer{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	if len(fields) == 0 {
		return reservation.Customer{}, repository.ErrNotFound
	}
	visits, _ := strconv.Atoi(fields["visits"])
	return reservation.Customer{
		Key:           key,
		DisplayName:   fields["name"],
		Phone:         fields["phone"],
		Visits:        visits,
		LastVisitDate: fields["last_visit"],
	}, nil
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
