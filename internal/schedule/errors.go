package schedule

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the schedule package.
var (
	ErrEmptyContent     = errors.New("no content provided")
	ErrContentTooLarge  = errors.New("content exceeds size limit")
	ErrUpstreamService  = errors.New("completion service failed")
	ErrUpstreamFormat   = errors.New("completion response is not a JSON object")
	ErrSchemaValidation = errors.New("completion response does not match the event schema")
)

// SchemaError pinpoints the first element that failed validation.
// Index is -1 when the problem is the events value itself.
type SchemaError struct {
	Index  int
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s %s", ErrSchemaValidation, e.Field, e.Reason)
	}
	if e.Field == "" {
		return fmt.Sprintf("%v: events[%d] %s", ErrSchemaValidation, e.Index, e.Reason)
	}
	return fmt.Sprintf("%v: events[%d].%s %s", ErrSchemaValidation, e.Index, e.Field, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchemaValidation
}

// Kind names the extraction failure class for logs.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrEmptyContent), errors.Is(err, ErrContentTooLarge):
		return "validation"
	case errors.Is(err, ErrUpstreamService):
		return "service"
	case errors.Is(err, ErrUpstreamFormat):
		return "format"
	case errors.Is(err, ErrSchemaValidation):
		return "schema"
	default:
		return "unknown"
	}
}
