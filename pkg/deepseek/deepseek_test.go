package deepseek

import (
	"context"
	"errors"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateContent(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer ds-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"model":"deepseek-chat","choices":[{"index":0,"message":{"role":"assistant","content":"{}"}}],"usage":{"total_tokens":9}}`))
	}))
	defer srv.Close()

	client, err := New(Config{APIKey: "ds-key", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &Request{
		Messages:       []Message{{Role: "user", Content: "hi"}},
		ResponseFormat: &ResponseFormat{Type: ResponseFormatJSON},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if got.Model != DefaultModel {
		t.Errorf("sent model %q, want %q", got.Model, DefaultModel)
	}
	if got.ResponseFormat == nil || got.ResponseFormat.Type != "json_object" {
		t.Errorf("response_format not sent: %+v", got.ResponseFormat)
	}
	if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != "{}" {
		t.Errorf("unexpected choices %+v", resp.Choices)
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit"}}`))
	}))
	defer srv.Close()

	client, _ := New(Config{APIKey: "k", BaseURL: srv.URL})
	_, err := client.GenerateContent(context.Background(), &Request{})
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected rate limited error, got %v", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.HTTPStatus() != http.StatusTooManyRequests {
		t.Errorf("expected *APIError with status 429, got %#v", err)
	}
}
