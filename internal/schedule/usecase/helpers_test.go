package usecase

import (
	"testing"
	"unicode/utf8"

	"schedule-calendar/internal/model"
)

func TestSanitizeJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"events":[]}`, `{"events":[]}`},
		{"json fence", "```json\n{\"events\":[]}\n```", `{"events":[]}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading prose", `Sure! {"events":[]} Hope this helps.`, `{"events":[]}`},
		{"no json", "  nothing here  ", "nothing here"},
		{"fence around backticks", "```json\n{\"d\":\"run ```go test```\"}\n```", "{\"d\":\"run ```go test```\"}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeJSONResponse(tt.in); got != tt.want {
				t.Errorf("sanitizeJSONResponse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToCalendarEvents(t *testing.T) {
	in := []model.ScheduleEvent{{
		Title:       "Lab",
		StartDate:   "2024-02-01T14:00:00",
		EndDate:     "2024-02-01T16:00:00",
		Location:    "B12",
		Description: "Bring laptop",
		Recurrence:  "FREQ=WEEKLY",
	}}

	out := toCalendarEvents(in)
	if len(out) != 1 {
		t.Fatalf("len = %d", len(out))
	}
	got := out[0]
	if got.Title != "Lab" || got.StartDate != in[0].StartDate || got.EndDate != in[0].EndDate ||
		got.Location != "B12" || got.Description != "Bring laptop" || got.Recurrence != "FREQ=WEEKLY" {
		t.Errorf("toCalendarEvents() = %+v", got)
	}
}

func TestCompactForLog(t *testing.T) {
	if got := compactForLog("{ \"a\" : 1 }", 100); got != `{"a":1}` {
		t.Errorf("compact = %q", got)
	}
	if got := compactForLog("abcdefgh", 3); got != "abc..." {
		t.Errorf("truncate = %q", got)
	}
	// "é" is two bytes; a cut inside it backs off to the rune start.
	if got := compactForLog("aébc", 2); got != "a..." {
		t.Errorf("truncate multi-byte = %q", got)
	}
	if got := compactForLog("Thứ Hai", 4); !utf8.ValidString(got) {
		t.Errorf("truncate produced invalid UTF-8: %q", got)
	}
}
