package llmprovider

import (
	"context"
	"strings"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	// SystemInstruction parts are sent in order; OpenAI-compatible
	// backends receive one system message per part.
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	MaxTokens         int

	// JSONMode asks the backend to force a syntactically valid JSON object.
	JSONMode bool
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "assistant", "system"
	Parts []Part
}

// Part is a text segment of a message
type Part struct {
	Text string
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Text concatenates the text parts of the response.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserText builds a single-part user message.
func UserText(text string) Message {
	return Message{Role: "user", Parts: []Part{{Text: text}}}
}

// SystemText builds a system instruction with one part per text.
func SystemText(texts ...string) *Message {
	parts := make([]Part, len(texts))
	for i, t := range texts {
		parts[i] = Part{Text: t}
	}
	return &Message{Role: "system", Parts: parts}
}
