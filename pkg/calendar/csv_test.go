package calendar

import (
	"errors"
	"strings"
	"testing"
)

func TestToSpreadsheetExport(t *testing.T) {
	got := ToSpreadsheetExport([]Event{
		{Title: "CS101", StartDate: "2024-01-15T09:00:00", EndDate: "2024-01-15T10:00:00", Location: "Room 204"},
		{Title: "Midterm", StartDate: "2024-03-10T00:00:00", EndDate: "2024-03-10T23:59:59", Description: "Chapters 1-5"},
	})

	want := "Subject,Start Date,End Date,Description,Location\n" +
		"CS101,2024-01-15T09:00:00,2024-01-15T10:00:00,,Room 204\n" +
		"Midterm,2024-03-10T00:00:00,2024-03-10T23:59:59,Chapters 1-5,\n"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestToSpreadsheetExport_Empty(t *testing.T) {
	if got := ToSpreadsheetExport(nil); got != SpreadsheetHeader+"\n" {
		t.Errorf("got %q, want header only", got)
	}
}

// Delimiters inside free text are written raw, so a comma in the
// description adds a column. The calendar document escapes the same
// value correctly.
func TestToSpreadsheetExport_UnescapedDelimiters(t *testing.T) {
	ev := Event{Title: "Lab", StartDate: "2024-01-15T09:00:00", EndDate: "2024-01-15T10:00:00", Description: "Bring goggles, gloves"}

	lines := strings.Split(strings.TrimSuffix(ToSpreadsheetExport([]Event{ev}), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if fields := strings.Split(lines[1], ","); len(fields) != 6 {
		t.Errorf("row has %d fields, want 6 (header has 5)", len(fields))
	}

	parsed := parseDocument(t, ToCalendarDocument([]Event{ev})).Events()
	if len(parsed) != 1 {
		t.Fatalf("parsed %d events, want 1", len(parsed))
	}
	if desc, _ := propValue(parsed[0], "DESCRIPTION"); desc != ev.Description {
		t.Errorf("DESCRIPTION = %q, want %q", desc, ev.Description)
	}
}

func TestSpreadsheetVariant(t *testing.T) {
	tests := []struct {
		in       string
		want     SpreadsheetVariant
		filename string
		wantErr  bool
	}{
		{in: "google", want: SpreadsheetGoogle, filename: "google-calendar-events.csv"},
		{in: "Outlook", want: SpreadsheetOutlook, filename: "outlook-calendar-events.csv"},
		{in: "apple", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSpreadsheetVariant(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownVariant) {
					t.Fatalf("err = %v, want ErrUnknownVariant", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want || got.Filename() != tt.filename {
				t.Errorf("got %q (%s), want %q (%s)", got, got.Filename(), tt.want, tt.filename)
			}
		})
	}
}
