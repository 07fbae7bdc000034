package vlm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func newTestOpenAIExtractor(t *testing.T, handler http.HandlerFunc) *OpenAIExtractor {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	client := openai.NewClientWithConfig(config)

	return &OpenAIExtractor{
		client: client,
		model:  "Qwen/Qwen2.5-VL-72B-Instruct",
	}
}

func testImage() Image {
	// 1x1 PNG header bytes are enough; nothing decodes the image locally.
	return Image{Data: []byte{0x89, 0x50, 0x4e, 0x47}, MIME: "image/png"}
}

func TestOpenAIExtractor_HappyPath(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "Qwen/Qwen2.5-VL-72B-Instruct",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": `{"korean":"<p>2+3을 계산하시오</p>","english":"<p>Compute 2+3</p>"}`,
					},
					"finish_reason": "stop",
				},
			},
		})
	}

	e := newTestOpenAIExtractor(t, handler)
	ext, err := e.Extract(context.Background(), testImage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ext.Korean != "<p>2+3을 계산하시오</p>" {
		t.Fatalf("korean = %q", ext.Korean)
	}
	if ext.English != "<p>Compute 2+3</p>" {
		t.Fatalf("english = %q", ext.English)
	}
}

func TestOpenAIExtractor_SendsImageAsDataURL(t *testing.T) {
	var gotReq struct {
		Messages []struct {
			Role    string `json:"role"`
			Content any    `json:"content"`
		} `json:"messages"`
	}

	handler := func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": `{"korean":"ok"}`}},
			},
		})
	}

	e := newTestOpenAIExtractor(t, handler)
	if _, err := e.Extract(context.Background(), testImage()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(gotReq.Messages) != 2 {
		t.Fatalf("got %d messages, want system + user", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != "system" {
		t.Errorf("first message role = %q", gotReq.Messages[0].Role)
	}

	parts, ok := gotReq.Messages[1].Content.([]any)
	if !ok || len(parts) != 2 {
		t.Fatalf("user content = %#v, want two parts", gotReq.Messages[1].Content)
	}
	img, _ := parts[0].(map[string]any)
	imgURL, _ := img["image_url"].(map[string]any)
	url, _ := imgURL["url"].(string)
	if want := "data:image/png;base64,iVBORw=="; url != want {
		t.Errorf("image URL = %q, want %q", url, want)
	}
}

func TestOpenAIExtractor_RateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "tokens",
				"message": "Rate limit exceeded",
				"code":    "rate_limit_exceeded",
			},
		})
	}

	e := newTestOpenAIExtractor(t, handler)
	_, err := e.Extract(context.Background(), testImage())
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T (%v)", err, err)
	}
}

func TestOpenAIExtractor_ServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "server_error",
				"message": "Internal server error",
			},
		})
	}

	e := newTestOpenAIExtractor(t, handler)
	_, err := e.Extract(context.Background(), testImage())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
}

func TestOpenAIExtractor_NoChoices(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}

	e := newTestOpenAIExtractor(t, handler)
	_, err := e.Extract(context.Background(), testImage())
	if err == nil {
		t.Fatal("expected error")
	}
	var empty *ErrEmptyResponse
	if !errors.As(err, &empty) {
		t.Fatalf("expected ErrEmptyResponse, got: %T (%v)", err, err)
	}
}

func TestOpenAIExtractor_ModelResolution(t *testing.T) {
	e, err := NewOpenAIExtractor(OpenAIConfig{APIKey: "test-key", Model: "qwen-vl"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ModelID() != "Qwen/Qwen2.5-VL-72B-Instruct" {
		t.Fatalf("model = %q", e.ModelID())
	}

	// Unmapped names pass through verbatim.
	e, err = NewOpenAIExtractor(OpenAIConfig{APIKey: "test-key", Model: "my-custom-vl"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ModelID() != "my-custom-vl" {
		t.Fatalf("model = %q", e.ModelID())
	}
}

func TestOpenAIExtractor_RequiresAPIKey(t *testing.T) {
	if _, err := NewOpenAIExtractor(OpenAIConfig{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
