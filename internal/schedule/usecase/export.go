package usecase

import (
	"context"

	"schedule-calendar/internal/schedule"
	"schedule-calendar/pkg/calendar"
)

// ExportCalendar builds the iCalendar document. Events that cannot be
// placed on the calendar are logged and left out.
func (uc *implUseCase) ExportCalendar(ctx context.Context, input schedule.ExportCalendarInput) (schedule.ExportCalendarOutput, error) {
	res := uc.serializer.Encode(toCalendarEvents(input.Events))

	for _, s := range res.Skipped {
		uc.l.Errorf(ctx, "ExportCalendar: skipped event index=%d title=%q: %v", s.Index, s.Title, s.Err)
	}
	for _, d := range res.DroppedRecurrence {
		uc.l.Warnf(ctx, "ExportCalendar: dropped recurrence index=%d title=%q: %v", d.Index, d.Title, d.Err)
	}
	uc.l.Infof(ctx, "ExportCalendar: written=%d skipped=%d", res.Written, len(res.Skipped))

	return schedule.ExportCalendarOutput{
		Filename: calendar.DocumentFilename,
		Document: res.Document,
		Written:  res.Written,
		Skipped:  res.Skipped,
	}, nil
}

// ExportSpreadsheet renders the CSV download for the requested variant.
func (uc *implUseCase) ExportSpreadsheet(ctx context.Context, input schedule.ExportSpreadsheetInput) (schedule.ExportSpreadsheetOutput, error) {
	variant, err := calendar.ParseSpreadsheetVariant(string(input.Variant))
	if err != nil {
		return schedule.ExportSpreadsheetOutput{}, err
	}

	return schedule.ExportSpreadsheetOutput{
		Filename: variant.Filename(),
		Content:  calendar.ToSpreadsheetExport(toCalendarEvents(input.Events)),
	}, nil
}
