package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"student-dashboard/pkg/gemini"
)

func TestBuildSummaryPrompt(t *testing.T) {
	content := "Inflation is a general increase in prices."

	prompt := gemini.BuildSummaryPrompt(content)

	if !strings.HasPrefix(prompt, "Please provide a concise, bulleted summary") {
		t.Errorf("prompt missing instruction: %q", prompt)
	}
	if !strings.HasSuffix(prompt, content) {
		t.Errorf("prompt missing note content")
	}
}

func TestBuildAdvicePrompt(t *testing.T) {
	prompt := gemini.BuildAdvicePrompt(`{"tasks":[]}`)

	if !strings.Contains(prompt, `{"tasks":[]}`) {
		t.Errorf("prompt missing workload data")
	}
	if !strings.Contains(prompt, "3 personalized, actionable productivity tips") {
		t.Errorf("prompt missing tips instruction")
	}
}

func TestClient_GenerateContent(t *testing.T) {
	var lastBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get("x-goog-api-key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		lastBody = nil
		if err := json.NewDecoder(r.Body).Decode(&lastBody); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		contents := lastBody["contents"].([]any)
		parts := contents[0].(map[string]any)["parts"].([]any)
		text := parts[0].(map[string]any)["text"].(string)

		switch text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"boom"}`))
			return
		case "no_candidates":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"candidates": []}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked " },
							{ "text": "response string" }
						],
						"role": "model"
					},
					"finishReason": "STOP"
				}
			],
			"usageMetadata": {"promptTokenCount": 7, "candidatesTokenCount": 3, "totalTokenCount": 10}
		}`))
	}))
	defer ts.Close()

	budget := 0
	client, err := gemini.New(gemini.Config{
		APIKey:         "test-api-key",
		Model:          "gemini-test",
		APIURL:         ts.URL + "/",
		ThinkingBudget: &budget,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), gemini.UserText("Hello world"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "mocked response string" {
			t.Errorf("unexpected content response: %s", resp.Text())
		}
		if resp.Usage.TotalTokens != 10 {
			t.Errorf("expected 10 total tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("Thinking disabled in generation config", func(t *testing.T) {
		if _, err := client.GenerateContent(context.Background(), gemini.UserText("Hello")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		genCfg, ok := lastBody["generationConfig"].(map[string]any)
		if !ok {
			t.Fatalf("generationConfig missing: %v", lastBody)
		}
		thinking, ok := genCfg["thinkingConfig"].(map[string]any)
		if !ok {
			t.Fatalf("thinkingConfig missing: %v", genCfg)
		}
		if thinking["thinkingBudget"] != float64(0) {
			t.Errorf("expected thinkingBudget 0, got %v", thinking["thinkingBudget"])
		}
		if len(genCfg) != 1 {
			t.Errorf("expected only thinkingConfig in generationConfig, got %v", genCfg)
		}
		if len(lastBody) != 2 {
			t.Errorf("expected only contents and generationConfig, got %v", lastBody)
		}
	})

	t.Run("Empty candidates", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), gemini.UserText("no_candidates"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "" {
			t.Errorf("expected empty text, got %q", resp.Text())
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), gemini.UserText("cause_500"))
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", apiErr.StatusCode)
		}
	})

	t.Run("Empty prompt", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), gemini.UserText("   "))
		if !errors.Is(err, gemini.ErrEmptyPrompt) {
			t.Fatalf("expected ErrEmptyPrompt, got %v", err)
		}
	})
}

func TestClient_MissingAPIKey(t *testing.T) {
	client, err := gemini.New(gemini.Config{})
	if err != nil {
		t.Fatalf("missing key must not fail construction: %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("expected default model, got %s", client.Model())
	}

	_, err = client.GenerateContent(context.Background(), gemini.UserText("hi"))
	if !errors.Is(err, gemini.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestClient_NoBudgetOmitsGenerationConfig(t *testing.T) {
	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "k", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.GenerateContent(context.Background(), gemini.UserText("hi")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := body["generationConfig"]; ok {
		t.Errorf("generationConfig should be omitted without a thinking budget: %v", body)
	}
}
