package sql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/belenfg/restaurant-chatbot/internal/reservation"
	"github.com/belenfg/restaurant-chatbot/internal/reservation/repository"
)

// AppendReservation allocates ordinal MAX+1 inside a transaction. Ordinals are
// unique per slot and capped at the capacity, so the slot can never exceed it
// even when another process races on the same slot.
func (r *implRepository) AppendReservation(ctx context.Context, opt repository.AppendReservationOptions) (reservation.Reservation, reservation.Customer, error) {
	var (
		res  reservation.Reservation
		cust reservation.Customer
		err  error
	)
	for attempt := 1; attempt <= maxAppendAttempts; attempt++ {
		res, cust, err = r.appendOnce(ctx, opt)
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return res, cust, err
		}
		r.l.Warnf(ctx, "reservation.repository.sql.AppendReservation: ordinal collision on %s %s, attempt %d", opt.Date, opt.Time, attempt)
	}
	return reservation.Reservation{}, reservation.Customer{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
}

func (r *implRepository) appendOnce(ctx context.Context, opt repository.AppendReservationOptions) (reservation.Reservation, reservation.Customer, error) {
	var (
		res  reservation.Reservation
		cust reservation.Customer
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxOrdinal int64
		if err := tx.Model(&reservationRow{}).
			Where("slot_date = ? AND slot_time = ?", opt.Date, opt.Time).
			Select("COALESCE(MAX(ordinal), 0)").
			Scan(&maxOrdinal).Error; err != nil {
			return fmt.Errorf("ordinal lookup: %w", err)
		}
		if int(maxOrdinal) >= opt.Capacity {
			return repository.ErrSlotFull
		}

		row := reservationRow{
			Date:      opt.Date,
			Time:      opt.Time,
			Ordinal:   int(maxOrdinal) + 1,
			Name:      opt.Name,
			PartySize: opt.PartySize,
			Phone:     opt.Phone,
			CreatedAt: opt.CreatedAt,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		res = row.toDomain()

		c, err := recordVisit(tx, opt)
		if err != nil {
			return err
		}
		cust = c
		return nil
	})
	if err != nil {
		return reservation.Reservation{}, reservation.Customer{}, err
	}
	return res, cust, nil
}

func recordVisit(tx *gorm.DB, opt repository.AppendReservationOptions) (reservation.Customer, error) {
	key := reservation.CustomerKey(opt.Name)
	now := time.Now().UTC()

	var row customerRow
	err := tx.Where("customer_key = ?", key).Take(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = customerRow{
			Key:           key,
			DisplayName:   opt.Name,
			Phone:         opt.Phone,
			Visits:        1,
			LastVisitDate: opt.Date,
			UpdatedAt:     now,
		}
		if err := tx.Create(&row).Error; err != nil {
			return reservation.Customer{}, fmt.Errorf("create customer: %w", err)
		}
	case err != nil:
		return reservation.Customer{}, fmt.Errorf("get customer: %w", err)
	default:
		row.Visits++
		row.Phone = opt.Phone
		row.LastVisitDate = opt.Date
		row.UpdatedAt = now
		if err := tx.Save(&row).Error; err != nil {
			return reservation.Customer{}, fmt.Errorf("update customer: %w", err)
		}
	}
	return row.toDomain(), nil
}

func (r *implRepository) ListReservations(ctx context.Context, opt repository.ListReservationsOptions) ([]reservation.Reservation, error) {
	var rows []reservationRow
	if err := r.db.WithContext(ctx).
		Where("slot_date = ?", opt.Date).
		Order("slot_time ASC").
		Order("ordinal ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	out := make([]reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *implRepository) CountReservations(ctx context.Context, date, clock string) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&reservationRow{}).
		Where("slot_date = ? AND slot_time = ?", date, clock).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return int(n), nil
}

func (r *implRepository) GetCustomer(ctx context.Context, key string) (reservation.Customer, error) {
	var row customerRow
	err := r.db.WithContext(ctx).Where("customer_key = ?", key).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reservation.Customer{}, repository.ErrNotFound
		}
		return reservation.Customer{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return row.toDomain(), nil
}
