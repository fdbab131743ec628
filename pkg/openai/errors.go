package openai

import (
	"errors"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"
)

// APIError carries the HTTP status of a failed chat completion.
type APIError struct {
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openai: chat completion failed (%d): %v", e.StatusCode, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the response status code.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

// wrapError attaches the status code reported by go-openai, if any.
func wrapError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return &APIError{StatusCode: apiErr.HTTPStatusCode, Err: err}
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return &APIError{StatusCode: reqErr.HTTPStatusCode, Err: err}
	}
	return fmt.Errorf("openai: chat completion failed: %w", err)
}
