package deepseek

import "time"

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "deepseek-chat"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// ResponseFormatJSON forces a syntactically valid JSON object
	ResponseFormatJSON = "json_object"
)
