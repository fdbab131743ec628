package calendar

import "errors"

var (
	// ErrDateParse reports a start or end timestamp that matches no accepted layout.
	ErrDateParse = errors.New("calendar: unparsable timestamp")

	// ErrInvalidRange reports an end timestamp before the start timestamp.
	ErrInvalidRange = errors.New("calendar: end precedes start")

	// ErrInvalidRecurrence reports a recurrence rule rrule-go cannot parse.
	ErrInvalidRecurrence = errors.New("calendar: invalid recurrence rule")

	// ErrUnknownVariant reports a spreadsheet variant other than google or outlook.
	ErrUnknownVariant = errors.New("calendar: unknown spreadsheet variant")
)
