package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func completionPayload(content string) map[string]any {
	return map[string]any{
		"choices": []any{
			map[string]any{
				"message": map[string]any{
					"content": content,
				},
			},
		},
	}
}

func TestClientComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if _, ok := req["response_format"]; ok {
			t.Fatal("plain completion must not request json_object")
		}
		if err := json.NewEncoder(w).Encode(completionPayload("第1集\n[1-1] 客厅 - 内 - 日")); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo-model"})
	content, err := client.Complete(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if !strings.Contains(content, "[1-1]") {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestClientClassifyEmotionCodeFence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := completionPayload("```json\n{\"label\":\"emotional\",\"confidence\":0.82,\"reason\":\"demo\"}\n```")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo-model"})
	label, err := client.ClassifyEmotion(context.Background(), "愤怒地摔门")
	if err != nil {
		t.Fatalf("ClassifyEmotion returned error: %v", err)
	}
	if label != "emotional" {
		t.Fatalf("expected emotional, got %q", label)
	}
}

func TestClientClassifyEmotionDeltaContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"choices": []any{
				map[string]any{
					"delta": map[string]any{
						"content": `{"label":"neutral","confidence":0.74,"reason":"demo"}`,
					},
				},
			},
		}
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo-model"})
	label, err := client.ClassifyEmotion(context.Background(), "拿起水杯")
	if err != nil {
		t.Fatalf("ClassifyEmotion returned error: %v", err)
	}
	if label != "neutral" {
		t.Fatalf("expected neutral, got %q", label)
	}
}

func TestClientEmptyContentHasSnippet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"choices": []any{
				map[string]any{
					"finish_reason": "stop",
					"message":       map[string]any{"content": ""},
				},
			},
		}
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(
		Config{APIKey: "test", BaseURL: server.URL, Model: "demo-model"},
		WithRetryBackoff(0, 0),
		WithSleeper(func(time.Duration) {}),
	)
	_, err := client.Complete(context.Background(), "system", "user")
	if err == nil {
		t.Fatal("expected completion to fail")
	}
	if !strings.Contains(err.Error(), "empty content") || !strings.Contains(err.Error(), "response_snippet=") {
		t.Fatalf("expected empty-content error to include snippet, got %v", err)
	}
}

func TestClientRetriesOnHTTP429(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "rate limited"})
			return
		}
		_ = json.NewEncoder(w).Encode(completionPayload("旁白：夜幕降临。"))
	}))
	defer server.Close()

	var slept []time.Duration
	client := NewClient(
		Config{APIKey: "test", BaseURL: server.URL, Model: "demo-model"},
		WithSleeper(func(d time.Duration) { slept = append(slept, d) }),
		WithRetryBackoff(0, 10*time.Second),
		WithRetryMaxAttempts(5),
	)
	content, err := client.Complete(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if !strings.Contains(content, "旁白") {
		t.Fatalf("unexpected content %q", content)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
	if len(slept) != 1 || slept[0] != time.Second {
		t.Fatalf("expected single sleep of 1s, got %v", slept)
	}
}

func TestClientRetriesOnEmptyContentThenSucceeds(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		content := ""
		if calls >= 3 {
			content = `{"label":"neutral","confidence":0.75,"reason":"demo"}`
		}
		payload := map[string]any{
			"choices": []any{
				map[string]any{
					"finish_reason": "stop",
					"message":       map[string]any{"content": content},
				},
			},
		}
		_ = json.NewEncoder(w).Encode(payload)
	}))
	defer server.Close()

	client := NewClient(
		Config{APIKey: "test", BaseURL: server.URL, Model: "demo-model"},
		WithRetryBackoff(0, 0),
		WithSleeper(func(time.Duration) {}),
		WithRetryMaxAttempts(5),
	)
	label, err := client.ClassifyEmotion(context.Background(), "拿起外套")
	if err != nil {
		t.Fatalf("ClassifyEmotion returned error: %v", err)
	}
	if label != "neutral" {
		t.Fatalf("expected neutral, got %q", label)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestClientHTTP401DoesNotRetry(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
	}))
	defer server.Close()

	client := NewClient(
		Config{APIKey: "bad", BaseURL: server.URL, Model: "demo-model"},
		WithSleeper(func(time.Duration) {}),
	)
	if _, err := client.Complete(context.Background(), "system", "user"); err == nil {
		t.Fatal("expected completion to fail")
	}
	if calls != 1 {
		t.Fatalf("expected single call, got %d", calls)
	}
}

func TestDecodeLLMJSONExtractsEmbeddedObject(t *testing.T) {
	var parsed Classification
	err := DecodeLLMJSON("Here is the result: {\"label\":\"neutral\",\"confidence\":0.5,\"reason\":\"r\"} done.", &parsed)
	if err != nil {
		t.Fatalf("DecodeLLMJSON returned error: %v", err)
	}
	if parsed.Label != "neutral" {
		t.Fatalf("expected neutral, got %q", parsed.Label)
	}
}
