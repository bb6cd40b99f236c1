package tools

import (
	"context"
	"time"

	"github.com/belenfg/restaurant-chatbot/internal/agent"
	"github.com/belenfg/restaurant-chatbot/internal/catalog"
)

type GetOpeningHoursTool struct {
	cat *catalog.Catalog
	now func() time.Time
}

func NewGetOpeningHoursTool(cat *catalog.Catalog, now func() time.Time) *GetOpeningHoursTool {
	if now == nil {
		now = time.Now
	}
	return &GetOpeningHoursTool{cat: cat, now: now}
}

func (t *GetOpeningHoursTool) Name() string {
	return "get_opening_hours"
}

func (t *GetOpeningHoursTool) Description() string {
	return "Get the restaurant's weekly opening hours, closed days and today's hours."
}

func (t *GetOpeningHoursTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

type GetOpeningHoursOutput struct {
	Week       []string `json:"week"`
	ClosedDays string   `json:"closed_days,omitempty"`
	Today      string   `json:"today"`
	TodayHours string   `json:"today_hours"`
}

func (t *GetOpeningHoursTool) Execute(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
	today := t.cat.Now(t.now()).Weekday()
	return GetOpeningHoursOutput{
		Week:       t.cat.ScheduleLines(),
		ClosedDays: t.cat.ClosedDaysPhrase(),
		Today:      today.String(),
		TodayHours: t.cat.HoursText(today),
	}, nil
}

var _ agent.Tool = (*GetOpeningHoursTool)(nil)
