package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/belenfg/restaurant-chatbot/pkg/response"
)

func TestDateJSON(t *testing.T) {
	christmas := time.Date(2025, 12, 25, 19, 30, 0, 0, time.Local)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"date drops the clock", response.Date(christmas), `"2025-12-25"`},
		{"datetime keeps seconds", response.DateTime(christmas), `"2025-12-25 19:30:00"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("Marshal() = %s, want %s", b, tt.want)
			}
		})
	}
}

func TestDateTimeUnmarshal(t *testing.T) {
	var got struct {
		CreatedAt response.DateTime `json:"created_at"`
	}
	if err := json.Unmarshal([]byte(`{"created_at":"2025-12-20 12:05:00"}`), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := time.Date(2025, 12, 20, 12, 5, 0, 0, time.Local)
	if !time.Time(got.CreatedAt).Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", time.Time(got.CreatedAt), want)
	}

	var d response.Date
	if err := json.Unmarshal([]byte(`"25/12/2025"`), &d); err == nil {
		t.Error("expected an error for a non ISO date")
	}
}
