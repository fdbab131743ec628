package gemini_test

import (
	"context"
	"errors"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"schedule-calendar/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	var captured map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "{\"events\":[]}"}]}}],
			"usageMetadata": {"promptTokenCount": 7, "candidatesTokenCount": 3, "totalTokenCount": 10}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "policy"}, {Text: "Today's Date: 2024-01-15"}}},
		Messages:          []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "CS101 Mon 9am"}}}},
		JSONMode:          true,
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text != `{"events":[]}` {
		t.Errorf("unexpected content: %+v", resp.Content)
	}
	if resp.Usage.TotalTokens != 10 {
		t.Errorf("TotalTokens = %d, want 10", resp.Usage.TotalTokens)
	}

	genCfg, _ := captured["generationConfig"].(map[string]any)
	if genCfg["responseMimeType"] != "application/json" {
		t.Errorf("responseMimeType = %v, want application/json", genCfg["responseMimeType"])
	}
	sys, _ := captured["system_instruction"].(map[string]any)
	if parts, _ := sys["parts"].([]any); len(parts) != 2 {
		t.Errorf("system_instruction parts = %v, want 2", sys["parts"])
	}
}

func TestGenerateContent_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "internal"}`))
	}))
	defer ts.Close()

	client, _ := gemini.New(gemini.Config{APIKey: "k", APIURL: ts.URL})
	_, err := client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "x"}}}},
	})
	if err == nil || !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected API error 500, got %v", err)
	}
	var apiErr *gemini.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected *gemini.APIError with status 500, got %#v", err)
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
