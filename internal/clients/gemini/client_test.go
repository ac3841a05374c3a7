package gemini

import (
	"context"
	"testing"
	"time"

	"google.golang.org/genai"
)

func TestNewClientOptions(t *testing.T) {
	client, err := NewClient(context.Background(), "test-key",
		WithModel("gemini-2.5-pro"),
		WithTimeout(5*time.Second),
		WithRateLimit(3),
	)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if client.model != "gemini-2.5-pro" {
		t.Errorf("model = %q, want gemini-2.5-pro", client.model)
	}
	if client.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", client.timeout)
	}
	if client.limiter == nil {
		t.Error("rate limiter not configured")
	}
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(context.Background(), "test-key",
		WithModel(""),         // empty values keep the defaults
		WithTimeout(0),
		WithRateLimit(0),
	)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if client.model != DefaultModel {
		t.Errorf("model = %q, want %q", client.model, DefaultModel)
	}
	if client.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.timeout, DefaultTimeout)
	}
	if client.limiter != nil {
		t.Error("rate limiter set for zero rps")
	}
}

func TestExtractTextFromResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: "first "}, {Text: "second"}},
			},
		}},
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		t.Fatalf("extractTextFromResponse failed: %v", err)
	}
	if text != "first second" {
		t.Errorf("text = %q, want concatenated parts", text)
	}
}

func TestExtractTextFromResponse_Empty(t *testing.T) {
	for _, resp := range []*genai.GenerateContentResponse{
		{},
		{Candidates: []*genai.Candidate{{}}},
		{Candidates: []*genai.Candidate{{Content: &genai.Content{}}}},
	} {
		if _, err := extractTextFromResponse(resp); err == nil {
			t.Errorf("expected error for empty response %+v", resp)
		}
	}
}
