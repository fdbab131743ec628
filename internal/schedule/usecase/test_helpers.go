package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"schedule-calendar/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct {
	mu     sync.Mutex
	errors []string
	warns  []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any) {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock LLM that returns a canned completion and records the request
type mockLLM struct {
	content string
	err     error
	calls   int
	lastReq *llmprovider.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: m.content}}},
		ProviderName: "mock",
		ModelName:    "mock-model",
	}, nil
}

var fixedNow = time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)

func newTestUseCase(llm LLM, l *mockLogger) *implUseCase {
	uc := New(l, llm, Config{
		Location:        time.UTC,
		Temperature:     0.2,
		MaxTokens:       4096,
		MaxContentBytes: 1 << 10,
	})
	uc.now = func() time.Time { return fixedNow }
	return uc
}
