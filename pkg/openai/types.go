package openai

import (
	"fmt"
	"net/http"

	goopenai "github.com/sashabaranov/go-openai"
)

// Config holds OpenAI client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string // optional, for OpenAI-compatible gateways
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// openAIImpl is the internal implementation of IOpenAI
type openAIImpl struct {
	client *goopenai.Client
	model  string
}

// Request represents a chat completion request
type Request struct {
	System      []string // system messages, sent in order before Messages
	Messages    []Message
	Temperature float64
	MaxTokens   int
	JSONMode    bool
}

// Message is a single chat message
type Message struct {
	Role    string
	Content string
}

// Response represents a chat completion response
type Response struct {
	Content string
	Model   string
	Usage   *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
