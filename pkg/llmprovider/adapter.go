package llmprovider

import (
	"context"
	"fmt"
	"strings"

	"schedule-calendar/pkg/deepseek"
	"schedule-calendar/pkg/gemini"
	"schedule-calendar/pkg/openai"
	"schedule-calendar/pkg/qwen"
)

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oaReq := &openai.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONMode,
		Messages:    make([]openai.Message, len(req.Messages)),
	}
	if req.SystemInstruction != nil {
		for _, p := range req.SystemInstruction.Parts {
			oaReq.System = append(oaReq.System, p.Text)
		}
	}
	for i, msg := range req.Messages {
		oaReq.Messages[i] = openai.Message{Role: msg.Role, Content: joinText(msg.Parts)}
	}

	resp, err := a.client.GenerateContent(ctx, oaReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      Message{Role: "assistant"},
		ProviderName: "openai",
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Content != "" {
		out.Content.Parts = []Part{{Text: resp.Content}}
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONMode,
		Messages:    make([]gemini.Content, len(req.Messages)),
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = &gemini.Content{Parts: toGeminiParts(req.SystemInstruction.Parts)}
	}
	for i, msg := range req.Messages {
		geminiReq.Messages[i] = gemini.Content{Role: msg.Role, Parts: toGeminiParts(msg.Parts)}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	parts := make([]Part, len(resp.Content.Parts))
	for i, p := range resp.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return &Response{
		Content:      Message{Role: resp.Content.Role, Parts: parts},
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func toGeminiParts(parts []Part) []gemini.Part {
	out := make([]gemini.Part, len(parts))
	for i, p := range parts {
		out[i] = gemini.Part{Text: p.Text}
	}
	return out
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONMode,
		Messages:    make([]qwen.Content, len(req.Messages)),
	}
	if req.SystemInstruction != nil {
		qwenReq.SystemInstruction = &qwen.Content{Role: "system", Parts: toQwenParts(req.SystemInstruction.Parts)}
	}
	for i, msg := range req.Messages {
		qwenReq.Messages[i] = qwen.Content{Role: msg.Role, Parts: toQwenParts(msg.Parts)}
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, err
	}

	parts := make([]Part, len(resp.Content.Parts))
	for i, p := range resp.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return &Response{
		Content:      Message{Role: resp.Content.Role, Parts: parts},
		ProviderName: "qwen",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return "qwen"
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

func toQwenParts(parts []Part) []qwen.Part {
	out := make([]qwen.Part, len(parts))
	for i, p := range parts {
		out[i] = qwen.Part{Text: p.Text}
	}
	return out
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil {
		for _, p := range req.SystemInstruction.Parts {
			dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: "system", Content: p.Text})
		}
	}
	for _, msg := range req.Messages {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: msg.Role, Content: joinText(msg.Parts)})
	}
	if req.JSONMode {
		dsReq.ResponseFormat = &deepseek.ResponseFormat{Type: deepseek.ResponseFormatJSON}
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, fmt.Errorf("deepseek: %w", err)
	}

	out := &Response{
		Content:      Message{Role: "assistant"},
		ProviderName: "deepseek",
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		out.Content.Parts = []Part{{Text: resp.Choices[0].Message.Content}}
	}
	return out, nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

func joinText(parts []Part) string {
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n")
}
