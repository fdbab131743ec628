package http

import (
	"errors"
	"net/http"

	"schedule-calendar/internal/schedule"
)

// Messages returned in the {"error": ...} body.
const (
	msgNoContent       = "No content provided"
	msgContentTooLarge = "Content too large"
	msgInvalidEvents   = "Invalid events payload"
	msgUnknownVariant  = "Unknown spreadsheet variant"
	msgProcessFailed   = "Failed to process schedule"
	msgExportFailed    = "Failed to generate calendar file"
)

var (
	errNoContent     = errors.New(msgNoContent)
	errInvalidEvents = errors.New(msgInvalidEvents)
)

// mapExtractError returns the status and caller-facing message for an
// extraction failure. Upstream failure kinds are not exposed.
func mapExtractError(err error) (int, string) {
	switch {
	case errors.Is(err, schedule.ErrEmptyContent):
		return http.StatusBadRequest, msgNoContent
	case errors.Is(err, schedule.ErrContentTooLarge):
		return http.StatusBadRequest, msgContentTooLarge
	default:
		return http.StatusInternalServerError, msgProcessFailed
	}
}
