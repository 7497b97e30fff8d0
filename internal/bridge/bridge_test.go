package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/gameforge/internal/gamespec"
	"github.com/louisbranch/gameforge/internal/platform/errors"
)

func TestOpenAIProviderGeneratesSpecification(t *testing.T) {
	t.Parallel()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var payload struct {
			Model string `json:"model"`
			Input string `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if payload.Model != "test-model" {
			t.Errorf("model = %q, want test-model", payload.Model)
		}
		_, _ = w.Write([]byte(`{"output_text": "Here is the JSON:\n{\"name\":\"Cave Crawler\",\"description\":\"a mining game\",\"dimension\":\"2d\",\"complexity\":\"intermediate\",\"features\":[\"physics\",\"audio\"],\"optimization\":\"release\"}"}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider(OpenAIConfig{
		ResponsesURL: server.URL,
		APIKey:       "secret",
		Model:        "test-model",
	})
	spec, err := provider.GenerateSpecification(context.Background(), "a mining game with physics")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	if spec.Name != "Cave Crawler" {
		t.Fatalf("name = %q", spec.Name)
	}
	if spec.Dimension != gamespec.Dimension2D || spec.Complexity != gamespec.ComplexityIntermediate {
		t.Fatalf("spec = %+v", spec)
	}
	if len(spec.Features) != 2 || spec.Features[0] != "physics" {
		t.Fatalf("features = %v", spec.Features)
	}
}

func TestOpenAIProviderReadsStructuredOutput(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"output":[{"content":[{"type":"output_text","text":"{\"name\":\"Echo\",\"description\":\"d\",\"dimension\":\"3d\",\"complexity\":\"beginner\",\"optimization\":\"debug\"}"}]}]}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider(OpenAIConfig{ResponsesURL: server.URL, APIKey: "secret"})
	spec, err := provider.GenerateSpecification(context.Background(), "an echo game")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if spec.Dimension != gamespec.Dimension3D {
		t.Fatalf("dimension = %q", spec.Dimension)
	}
}

func TestOpenAIProviderDefaultsMissingFields(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"output_text": "{\"features\":[\"ai\"]}"}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider(OpenAIConfig{ResponsesURL: server.URL, APIKey: "secret"})
	spec, err := provider.GenerateSpecification(context.Background(), "a stealth game about shadows")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if spec.Name != "A Stealth Game" {
		t.Fatalf("name = %q", spec.Name)
	}
	if spec.Description != "a stealth game about shadows" {
		t.Fatalf("description = %q", spec.Description)
	}
	if spec.Dimension != gamespec.Dimension2D || spec.Complexity != gamespec.ComplexityBeginner || spec.Optimization != gamespec.OptimizationDebug {
		t.Fatalf("defaults not applied: %+v", spec)
	}
}

func TestOpenAIProviderRequiresAPIKey(t *testing.T) {
	t.Parallel()

	provider := NewOpenAIProvider(OpenAIConfig{})
	_, err := provider.GenerateSpecification(context.Background(), "a game")
	if !errors.IsCode(err, errors.CodeUpstreamNotConfigured) {
		t.Fatalf("err = %v, want %s", err, errors.CodeUpstreamNotConfigured)
	}
}

func TestOpenAIProviderRejectsEmptyDescription(t *testing.T) {
	t.Parallel()

	provider := NewOpenAIProvider(OpenAIConfig{APIKey: "secret"})
	_, err := provider.GenerateSpecification(context.Background(), "   ")
	if !errors.IsCode(err, errors.CodeSpecEmptyDescription) {
		t.Fatalf("err = %v, want %s", err, errors.CodeSpecEmptyDescription)
	}
}

func TestOpenAIProviderUpstreamFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	provider := NewOpenAIProvider(OpenAIConfig{ResponsesURL: server.URL, APIKey: "secret"})
	_, err := provider.GenerateSpecification(context.Background(), "a game")
	if !errors.IsCode(err, errors.CodeUpstreamUnavailable) {
		t.Fatalf("err = %v, want %s", err, errors.CodeUpstreamUnavailable)
	}
	if !errors.IsKind(err, errors.KindUpstream) {
		t.Fatalf("err kind mismatch: %v", err)
	}
}

func TestOpenAIProviderBadResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing output text", body: `{"output":[]}`},
		{name: "no json object in reply", body: `{"output_text":"sorry, I cannot help"}`},
		{name: "invalid specification vocabulary", body: `{"output_text":"{\"name\":\"X\",\"description\":\"d\",\"dimension\":\"4d\",\"complexity\":\"beginner\",\"optimization\":\"debug\"}"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			provider := NewOpenAIProvider(OpenAIConfig{ResponsesURL: server.URL, APIKey: "secret"})
			_, err := provider.GenerateSpecification(context.Background(), "a game")
			if !errors.IsCode(err, errors.CodeUpstreamBadResponse) {
				t.Fatalf("err = %v, want %s", err, errors.CodeUpstreamBadResponse)
			}
		})
	}
}

func TestStaticProvider(t *testing.T) {
	t.Parallel()

	want := gamespec.GameSpecification{
		Name:         "Fixed",
		Description:  "fixed spec",
		Dimension:    gamespec.Dimension2D,
		Complexity:   gamespec.ComplexityBeginner,
		Optimization: gamespec.OptimizationDebug,
	}
	provider := StaticProvider{Spec: want}
	got, err := provider.GenerateSpecification(context.Background(), "ignored")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.Name != want.Name {
		t.Fatalf("name = %q, want %q", got.Name, want.Name)
	}
}
