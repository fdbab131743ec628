package schedule

import "context"

// UseCase defines the business logic interface for the schedule domain.
type UseCase interface {
	// Extract turns free text into schedule events through the completion service.
	// The batch is all-or-nothing: any malformed event fails the call.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)

	// ExportCalendar serializes events into an iCalendar document, skipping
	// events with unreadable timestamps.
	ExportCalendar(ctx context.Context, input ExportCalendarInput) (ExportCalendarOutput, error)

	// ExportSpreadsheet renders events as the CSV download of the given variant.
	ExportSpreadsheet(ctx context.Context, input ExportSpreadsheetInput) (ExportSpreadsheetOutput, error)
}
