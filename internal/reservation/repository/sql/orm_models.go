package sql

import (
	"time"

	"github.com/belenfg/restaurant-chatbot/internal/reservation"
)

type reservationRow struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Date      string    `gorm:"column:slot_date;size:10;not null;uniqueIndex:ux_reservation_slot_ordinal,priority:1"`
	Time      string    `gorm:"column:slot_time;size:5;not null;uniqueIndex:ux_reservation_slot_ordinal,priority:2"`
	Ordinal   int       `gorm:"not null;uniqueIndex:ux_reservation_slot_ordinal,priority:3"`
	Name      string    `gorm:"size:191;not null"`
	PartySize int       `gorm:"not null"`
	Phone     string    `gorm:"size:32"`
	CreatedAt time.Time `gorm:"not null"`
}

func (reservationRow) TableName() string {
	return "reservations"
}

func (r reservationRow) toDomain() reservation.Reservation {
	return reservation.Reservation{
		ID:        reservation.SlotID(r.Date, r.Time, r.Ordinal),
		Date:      r.Date,
		Time:      r.Time,
		Ordinal:   r.Ordinal,
		Name:      r.Name,
		PartySize: r.PartySize,
		Phone:     r.Phone,
		CreatedAt: r.CreatedAt,
	}
}

type customerRow struct {
	Key           string    `gorm:"column:customer_key;primaryKey;size:191"`
	DisplayName   string    `gorm:"size:191;not null"`
	Phone         string    `gorm:"size:32"`
	Visits        int       `gorm:"not null"`
	LastVisitDate string    `gorm:"size:10"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (customerRow) TableName() string {
	return "customers"
}

func (r customerRow) toDomain() reservation.Customer {
	return reservation.Customer{
		Key:           r.Key,
		DisplayName:   r.DisplayName,
		Phone:         r.Phone,
		Visits:        r.Visits,
		LastVisitDate: r.LastVisitDate,
	}
}
