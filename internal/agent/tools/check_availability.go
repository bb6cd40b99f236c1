package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/belenfg/restaurant-chatbot/internal/agent"
	"github.com/belenfg/restaurant-chatbot/internal/reservation"
	"github.com/belenfg/restaurant-chatbot/internal/validator"
	pkgLog "github.com/belenfg/restaurant-chatbot/pkg/log"
)

// AvailabilityReader is the reservation usecase slice the tool reads.
type AvailabilityReader interface {
	Availability(ctx context.Context, date, clock string) (reservation.AvailabilityOutput, error)
}

type CheckAvailabilityTool struct {
	store     AvailabilityReader
	validator *validator.Validator
	l         pkgLog.Logger
}

func NewCheckAvailabilityTool(store AvailabilityReader, v *validator.Validator, l pkgLog.Logger) *CheckAvailabilityTool {
	return &CheckAvailabilityTool{
		store:     store,
		validator: v,
		l:         l,
	}
}

func (t *CheckAvailabilityTool) Name() string {
	return "check_availability"
}

func (t *CheckAvailabilityTool) Description() string {
	return "Check whether a table can be reserved on a date and time, and how many reservations the slot still accepts."
}

func (t *CheckAvailabilityTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"date": map[string]interface{}{
				"type":        "string",
				"description": "Date as DD/MM/YYYY, YYYY-MM-DD, or a relative phrase like 'tomorrow'",
			},
			"time": map[string]interface{}{
				"type":        "string",
				"description": "Time as HH:MM (24h), e.g. 20:30",
			},
			"party_size": map[string]interface{}{
				"type":        "integer",
				"description": "Number of guests (optional)",
			},
		},
		"required": []string{"date", "time"},
	}
}

type CheckAvailabilityInput struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"party_size"`
}

type CheckAvailabilityOutput struct {
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	Available bool   `json:"available"`
	Remaining int    `json:"remaining"`
	Reason    string `json:"reason,omitempty"`
	Summary   string `json:"summary"`
}

func (t *CheckAvailabilityTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	inputBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	var params CheckAvailabilityInput
	if err := json.Unmarshal(inputBytes, &params); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	t.l.Infof(ctx, "check_availability: %s at %s for %d", params.Date, params.Time, params.PartySize)

	date, err := t.validator.ValidateDate(params.Date)
	if err != nil {
		return rejected(err)
	}
	clock, err := t.validator.ValidateTime(params.Time, date)
	if err != nil {
		return rejected(err)
	}
	if params.PartySize != 0 {
		if _, err := t.validator.ValidatePartySize(strconv.Itoa(params.PartySize)); err != nil {
			return rejected(err)
		}
	}

	dateKey := date.Format(reservation.DateLayout)
	avail, err := t.store.Availability(ctx, dateKey, clock.String())
	if err != nil {
		t.l.Errorf(ctx, "check_availability: store.Availability: %v", err)
		return CheckAvailabilityOutput{
			Date:    dateKey,
			Time:    clock.String(),
			Summary: "Availability could not be checked right now.",
		}, nil
	}

	out := CheckAvailabilityOutput{
		Date:      dateKey,
		Time:      clock.String(),
		Available: avail.Remaining > 0,
		Remaining: avail.Remaining,
	}
	if out.Available {
		out.Summary = fmt.Sprintf("%s at %s is available (%d more reservations accepted).", date.Format("02/01/2006"), clock, avail.Remaining)
	} else {
		out.Reason = "slot full"
		out.Summary = fmt.Sprintf("%s at %s is fully booked.", date.Format("02/01/2006"), clock)
	}
	return out, nil
}

// rejected turns a validation failure into a tool result the model can relay.
func rejected(err error) (interface{}, error) {
	var verr *validator.Error
	if !errors.As(err, &verr) {
		return nil, err
	}
	return CheckAvailabilityOutput{
		Available: false,
		Reason:    string(verr.Code),
		Summary:   verr.Reason,
	}, nil
}

var _ agent.Tool = (*CheckAvailabilityTool)(nil)
