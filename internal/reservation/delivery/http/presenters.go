package http

import (
	"sort"
	"strings"
	"time"

	"github.com/belenfg/restaurant-chatbot/internal/reservation"
	"github.com/belenfg/restaurant-chatbot/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Date string `form:"date" binding:"required"`
}

// normalizeDate accepts YYYY-MM-DD or DD/MM/YYYY and returns the storage layout.
func normalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{reservation.DateLayout, "02/01/2006", "2/1/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(reservation.DateLayout), nil
		}
	}
	return "", errInvalidDate
}

func (r listReq) validate() (string, error) {
	return normalizeDate(r.Date)
}

// ---

type availabilityReq struct {
	Date string `form:"date" binding:"required"`
	Time string `form:"time" binding:"required"`
}

func (r availabilityReq) validate() (string, string, error) {
	date, err := normalizeDate(r.Date)
	if err != nil {
		return "", "", err
	}
	t, err := time.Parse(reservation.TimeLayout, strings.TrimSpace(r.Time))
	if err != nil {
		return "", "", errInvalidTime
	}
	return date, t.Format(reservation.TimeLayout), nil
}

// --- Response DTOs ---

type reservationResp struct {
	ID        string            `json:"id"`
	Ordinal   int               `json:"ordinal"`
	Name      string            `json:"name"`
	PartySize int               `json:"party_size"`
	Phone     string            `json:"phone"`
	CreatedAt response.DateTime `json:"created_at"`
}

type slotResp struct {
	Time         string            `json:"time"`
	Reservations []reservationResp `json:"reservations"`
}

type listResp struct {
	Date  string     `json:"date"`
	Total int        `json:"total"`
	Slots []slotResp `json:"slots"`
}

func (h *handler) newListResp(date string, byTime map[string][]reservation.Reservation) listResp {
	times := make([]string, 0, len(byTime))
	for t := range byTime {
		times = append(times, t)
	}
	sort.Strings(times)

	resp := listResp{Date: date, Slots: make([]slotResp, 0, len(times))}
	for _, t := range times {
		slot := slotResp{Time: t}
		for _, r := range byTime[t] {
			slot.Reservations = append(slot.Reservations, reservationResp{
				ID:        r.ID,
				Ordinal:   r.Ordinal,
				Name:      r.Name,
				PartySize: r.PartySize,
				Phone:     r.Phone,
				CreatedAt: response.DateTime(r.CreatedAt),
			})
		}
		resp.Total += len(slot.Reservations)
		resp.Slots = append(resp.Slots, slot)
	}
	return resp
}

type customerResp struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Visits        int    `json:"visits"`
	LastVisitDate string `json:"last_visit_date"`
	Returning     bool   `json:"returning"`
}

func (h *handler) newCustomerResp(c reservation.Customer) customerResp {
	return customerResp{
		Name:          c.DisplayName,
		Phone:         c.Phone,
		Visits:        c.Visits,
		LastVisitDate: c.LastVisitDate,
		Returning:     c.Returning(),
	}
}

type availabilityResp struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
}

func (h *handler) newAvailabilityResp(o reservation.AvailabilityOutput) availabilityResp {
	return availabilityResp{Date: o.Date, Time: o.Time, Booked: o.Booked, Remaining: o.Remaining}
}
