package openai

import (
	"context"

	goopenai "github.com/sashabaranov/go-openai"
)

func newOpenAIImpl(cfg Config) *openAIImpl {
	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = cfg.HTTPClient

	return &openAIImpl{
		client: goopenai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

// GenerateContent sends a chat completion request to OpenAI
func (o *openAIImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := o.client.CreateChatCompletion(ctx, o.transformRequest(req))
	if err != nil {
		return nil, wrapError(err)
	}

	out := &Response{
		Model: resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		out.Content = resp.Choices[0].Message.Content
	}
	return out, nil
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}

func (o *openAIImpl) transformRequest(req *Request) goopenai.ChatCompletionRequest {
	chatReq := goopenai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
		Messages:    make([]goopenai.ChatCompletionMessage, 0, len(req.System)+len(req.Messages)),
	}

	for _, s := range req.System {
		chatReq.Messages = append(chatReq.Messages, goopenai.ChatCompletionMessage{
			Role:    goopenai.ChatMessageRoleSystem,
			Content: s,
		})
	}
	for _, m := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, goopenai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	if req.JSONMode {
		chatReq.ResponseFormat = &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	return chatReq
}
