package openai

import (
	"context"
	"errors"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateContent(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"model": "gpt-4o",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"events\":[]}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 4, "total_tokens": 16}
		}`))
	}))
	defer srv.Close()

	client, err := New(Config{APIKey: "test-key", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if client.Model() != DefaultModel {
		t.Errorf("Model() = %s, want %s", client.Model(), DefaultModel)
	}

	resp, err := client.GenerateContent(context.Background(), &Request{
		System:   []string{"policy", "Today's Date: 2024-01-15T00:00:00Z"},
		Messages: []Message{{Role: "user", Content: "Extract schedule information from this text: CS101"}},
		JSONMode: true,
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.Content != `{"events":[]}` {
		t.Errorf("Content = %q", resp.Content)
	}
	if resp.Usage.TotalTokens != 16 {
		t.Errorf("TotalTokens = %d, want 16", resp.Usage.TotalTokens)
	}

	msgs, _ := got["messages"].([]any)
	if len(msgs) != 3 {
		t.Fatalf("sent %d messages, want 3", len(msgs))
	}
	first, _ := msgs[0].(map[string]any)
	if first["role"] != "system" || first["content"] != "policy" {
		t.Errorf("first message = %v", first)
	}
	format, _ := got["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Errorf("response_format = %v, want json_object", got["response_format"])
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "boom", "type": "server_error"}}`))
	}))
	defer srv.Close()

	client, _ := New(Config{APIKey: "k", BaseURL: srv.URL})
	_, err := client.GenerateContent(context.Background(), &Request{})
	if err == nil {
		t.Fatal("expected error on 500 response")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.HTTPStatus() != http.StatusInternalServerError {
		t.Errorf("expected *APIError with status 500, got %#v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing API key")
	}

	cfg = Config{APIKey: "k"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != DefaultModel || cfg.HTTPClient == nil {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}
