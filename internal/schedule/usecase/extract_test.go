package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"schedule-calendar/internal/model"
	"schedule-calendar/internal/schedule"
	"schedule-calendar/pkg/llmprovider"
)

var _ schedule.UseCase = (*implUseCase)(nil)

const midtermCompletion = `{"events":[{"title":"Midterm","startDate":"2024-03-10T09:00:00","endDate":"2024-03-10T11:00:00","location":"Room 101"}]}`

func TestExtract_Success(t *testing.T) {
	llm := &mockLLM{content: midtermCompletion}
	uc := newTestUseCase(llm, &mockLogger{})

	out, err := uc.Extract(context.Background(), schedule.ExtractInput{Content: "Midterm March 10 9-11am Room 101"})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := model.ScheduleEvent{
		Title:     "Midterm",
		StartDate: "2024-03-10T09:00:00",
		EndDate:   "2024-03-10T11:00:00",
		Location:  "Room 101",
	}
	if len(out.Events) != 1 || out.Events[0] != want {
		t.Fatalf("Events = %+v, want [%+v]", out.Events, want)
	}
}

func TestExtract_RequestShape(t *testing.T) {
	llm := &mockLLM{content: `{"events":[]}`}
	uc := newTestUseCase(llm, &mockLogger{})

	ref := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	if _, err := uc.Extract(context.Background(), schedule.ExtractInput{Content: "Week 1: Intro", ReferenceDate: ref}); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	req := llm.lastReq
	if req == nil {
		t.Fatal("expected a completion request")
	}
	if !req.JSONMode {
		t.Error("expected JSONMode")
	}
	if req.Temperature != 0.2 || req.MaxTokens != 4096 {
		t.Errorf("Temperature/MaxTokens = %v/%d", req.Temperature, req.MaxTokens)
	}
	if req.SystemInstruction == nil || len(req.SystemInstruction.Parts) != 2 {
		t.Fatalf("expected 2 system parts, got %+v", req.SystemInstruction)
	}
	if !strings.Contains(req.SystemInstruction.Parts[0].Text, "Dates without a year are in 2025.") {
		t.Error("policy should carry the reference year")
	}
	if got := req.SystemInstruction.Parts[1].Text; got != "Today's Date: 2025-09-01T12:00:00Z" {
		t.Errorf("today part = %q", got)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
		t.Fatalf("Messages = %+v", req.Messages)
	}
	if got := req.Messages[0].Parts[0].Text; got != "Extract schedule information from this text: Week 1: Intro" {
		t.Errorf("user prompt = %q", got)
	}
}

func TestExtract_DefaultsReferenceToNow(t *testing.T) {
	llm := &mockLLM{content: `{"events":[]}`}
	uc := newTestUseCase(llm, &mockLogger{})

	if _, err := uc.Extract(context.Background(), schedule.ExtractInput{Content: "x"}); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got := llm.lastReq.SystemInstruction.Parts[1].Text; got != "Today's Date: 2024-01-15T08:30:00Z" {
		t.Errorf("today part = %q", got)
	}
}

func TestExtract_InputValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"empty", "", schedule.ErrEmptyContent},
		{"whitespace", " \n\t", schedule.ErrEmptyContent},
		{"too large", strings.Repeat("a", 2048), schedule.ErrContentTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &mockLLM{content: midtermCompletion}
			uc := newTestUseCase(llm, &mockLogger{})

			_, err := uc.Extract(context.Background(), schedule.ExtractInput{Content: tt.content})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if llm.calls != 0 {
				t.Errorf("completion service called %d times", llm.calls)
			}
		})
	}
}

func TestExtract_UpstreamFailure(t *testing.T) {
	llm := &mockLLM{err: errors.New("connection refused")}
	l := &mockLogger{}
	uc := newTestUseCase(llm, l)

	_, err := uc.Extract(context.Background(), schedule.ExtractInput{Content: "Quiz 1 on Friday"})
	if !errors.Is(err, schedule.ErrUpstreamService) {
		t.Fatalf("error = %v, want ErrUpstreamService", err)
	}
	if schedule.Kind(err) != "service" {
		t.Errorf("Kind = %q", schedule.Kind(err))
	}
	if len(l.errors) != 1 || !strings.Contains(l.errors[0], "kind=service") {
		t.Errorf("logged errors = %v", l.errors)
	}
}

func TestExtract_ThroughManager(t *testing.T) {
	failing := &stubProvider{name: "primary", err: errors.New("rate limited")}
	backup := &stubProvider{name: "backup", content: midtermCompletion}
	mgr := llmprovider.NewManager([]llmprovider.Provider{failing, backup}, &llmprovider.Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
	}, &mockLogger{})

	uc := newTestUseCase(mgr, &mockLogger{})
	out, err := uc.Extract(context.Background(), schedule.ExtractInput{Content: "Midterm"})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(out.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(out.Events))
	}
	if !backup.called {
		t.Error("expected fallback provider to be used")
	}
}

func TestExtract_MalformedCompletions(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErr  error
		wantKind string
	}{
		{"not json", "I could not find any events.", schedule.ErrUpstreamFormat, "format"},
		{"top-level array", `[{"title":"A","startDate":"s","endDate":"e"}]`, schedule.ErrUpstreamFormat, "format"},
		{"missing title", `{"events":[{"startDate":"s","endDate":"e"}]}`, schedule.ErrSchemaValidation, "schema"},
		{"second element bad", `{"events":[{"title":"A","startDate":"s","endDate":"e"},{"title":"B","startDate":5,"endDate":"e"}]}`, schedule.ErrSchemaValidation, "schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&mockLLM{content: tt.content}, &mockLogger{})

			out, err := uc.Extract(context.Background(), schedule.ExtractInput{Content: "some schedule"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if schedule.Kind(err) != tt.wantKind {
				t.Errorf("Kind = %q, want %q", schedule.Kind(err), tt.wantKind)
			}
			if out.Events != nil {
				t.Errorf("expected no events on failure, got %v", out.Events)
			}
		})
	}
}

type stubProvider struct {
	name    string
	content string
	err     error
	called  bool
}

func (s *stubProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.called = true
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: s.content}}},
		ProviderName: s.name,
		ModelName:    "stub",
	}, nil
}

func (s *stubProvider) Name() string  { return s.name }
func (s *stubProvider) Model() string { return "stub" }

func TestExtract_BackticksInDescription(t *testing.T) {
	completion := "{\"events\":[{\"title\":\"Lab 2\",\"startDate\":\"2024-02-06T14:00:00\",\"endDate\":\"2024-02-06T16:00:00\",\"description\":\"Run ```go test``` before class\"}]}"
	uc := newTestUseCase(&mockLLM{content: completion}, &mockLogger{})

	out, err := uc.Extract(context.Background(), schedule.ExtractInput{Content: "Lab 2 Tue 2-4pm"})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(out.Events) != 1 || out.Events[0].Description != "Run ```go test``` before class" {
		t.Errorf("Events = %+v", out.Events)
	}
}
