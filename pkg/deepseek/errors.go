package deepseek

import "fmt"

// APIError is returned when the DeepSeek API answers with a non-200 status.
// Message holds the decoded error message, or the raw body when it is not JSON.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// HTTPStatus returns the response status code.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}
