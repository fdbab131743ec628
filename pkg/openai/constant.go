package openai

import "time"

const (
	// DefaultModel is the default OpenAI chat model
	DefaultModel = "gpt-4o"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
