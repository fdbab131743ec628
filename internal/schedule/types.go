package schedule

import (
	"time"

	"schedule-calendar/internal/model"
	"schedule-calendar/pkg/calendar"
)

// ExtractInput is the input for schedule extraction.
type ExtractInput struct {
	Content string // Free text of a course schedule

	// ReferenceDate anchors underspecified years. Zero means now.
	ReferenceDate time.Time
}

// ExtractOutput holds events in extraction order.
type ExtractOutput struct {
	Events []model.ScheduleEvent
}

// ExportCalendarInput is the input for the iCalendar export.
type ExportCalendarInput struct {
	Events []model.ScheduleEvent
}

// ExportCalendarOutput is the calendar document plus per-event outcome.
type ExportCalendarOutput struct {
	Filename string
	Document string
	Written  int
	Skipped  []calendar.SkippedEvent
}

// ExportSpreadsheetInput is the input for the CSV export.
type ExportSpreadsheetInput struct {
	Events  []model.ScheduleEvent
	Variant calendar.SpreadsheetVariant
}

// ExportSpreadsheetOutput is a CSV body and its download name.
type ExportSpreadsheetOutput struct {
	Filename string
	Content  string
}
