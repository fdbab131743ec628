package response

// Resp is the standard JSON envelope of the system routes.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorBody is the flat failure body of the schedule API: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}
