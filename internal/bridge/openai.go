package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/louisbranch/gameforge/internal/gamespec"
	"github.com/louisbranch/gameforge/internal/platform/errors"
)

const defaultResponsesURL = "https://api.openai.com/v1/responses"

const specPrompt = `Convert the game description into a JSON object with the fields ` +
	`name, description, dimension ("2d" or "3d"), complexity ("beginner", ` +
	`"intermediate" or "advanced"), features (array of snake_case tags) and ` +
	`optimization ("debug", "development", "release" or "maximum"). ` +
	`Respond with the JSON object only.`

// OpenAIConfig configures the responses endpoint and HTTP behavior.
type OpenAIConfig struct {
	ResponsesURL string
	APIKey       string
	Model        string
	HTTPClient   *http.Client
}

type openAIProvider struct {
	cfg OpenAIConfig
}

// NewOpenAIProvider builds a specification provider backed by an
// OpenAI-compatible responses endpoint.
func NewOpenAIProvider(cfg OpenAIConfig) SpecProvider {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.ResponsesURL) == "" {
		cfg.ResponsesURL = defaultResponsesURL
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = "gpt-4o-mini"
	}
	return &openAIProvider{cfg: cfg}
}

func (p *openAIProvider) GenerateSpecification(ctx context.Context, description string) (gamespec.GameSpecification, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return gamespec.GameSpecification{}, errors.New(errors.CodeSpecEmptyDescription, "description is required")
	}
	if strings.TrimSpace(p.cfg.APIKey) == "" {
		return gamespec.GameSpecification{}, errors.New(errors.CodeUpstreamNotConfigured, "api key is not configured")
	}

	requestBody, err := json.Marshal(map[string]any{
		"model": p.cfg.Model,
		"input": specPrompt + "\n\nDescription: " + description,
	})
	if err != nil {
		return gamespec.GameSpecification{}, errors.Wrap(errors.CodeEncodingInvalidJSON, "marshal generation request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.ResponsesURL, bytes.NewReader(requestBody))
	if err != nil {
		return gamespec.GameSpecification{}, errors.Wrap(errors.CodeUpstreamUnavailable, "build generation request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Credential material is sent only as an Authorization header and is never
	// echoed in errors or response payloads.
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	res, err := p.cfg.HTTPClient.Do(req)
	if err != nil {
		return gamespec.GameSpecification{}, errors.Wrap(errors.CodeUpstreamUnavailable, "generation request failed", err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return gamespec.GameSpecification{}, errors.Wrap(errors.CodeUpstreamUnavailable, "read generation response", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return gamespec.GameSpecification{}, errors.WithMetadata(errors.CodeUpstreamUnavailable, "generation request rejected", map[string]string{
			"status": res.Status,
		})
	}

	text := outputText(body)
	if text == "" {
		return gamespec.GameSpecification{}, errors.New(errors.CodeUpstreamBadResponse, "generation response missing output text")
	}
	return specFromText(text, description)
}

// outputText extracts the model's text from a responses payload. Both the
// flattened output_text field and the structured output array are accepted.
func outputText(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	if text := strings.TrimSpace(gjson.GetBytes(body, "output_text").String()); text != "" {
		return text
	}
	var text string
	gjson.GetBytes(body, "output.#.content.#.text").ForEach(func(_, item gjson.Result) bool {
		item.ForEach(func(_, content gjson.Result) bool {
			if trimmed := strings.TrimSpace(content.String()); trimmed != "" {
				text = trimmed
				return false
			}
			return true
		})
		return text == ""
	})
	return text
}

// specFromText pulls specification fields out of the model's reply. Models
// often wrap the JSON in prose or code fences, so extraction scans for the
// outermost object instead of decoding the reply directly. Missing optional
// fields fall back to defaults derived from the original description.
func specFromText(text, description string) (gamespec.GameSpecification, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return gamespec.GameSpecification{}, errors.New(errors.CodeUpstreamBadResponse, "generation response contains no specification object")
	}
	object := text[start : end+1]
	if !gjson.Valid(object) {
		return gamespec.GameSpecification{}, errors.New(errors.CodeUpstreamBadResponse, "generation response specification is not valid json")
	}

	spec := gamespec.GameSpecification{
		Name:         strings.TrimSpace(gjson.Get(object, "name").String()),
		Description:  strings.TrimSpace(gjson.Get(object, "description").String()),
		Dimension:    gamespec.Dimension(strings.TrimSpace(gjson.Get(object, "dimension").String())),
		Complexity:   gamespec.Complexity(strings.TrimSpace(gjson.Get(object, "complexity").String())),
		Optimization: gamespec.OptimizationLevel(strings.TrimSpace(gjson.Get(object, "optimization").String())),
	}
	for _, feature := range gjson.Get(object, "features").Array() {
		if tag := strings.TrimSpace(feature.String()); tag != "" {
			spec.Features = append(spec.Features, tag)
		}
	}

	if spec.Name == "" {
		spec.Name = gamespec.DeriveTitle(description)
	}
	if spec.Description == "" {
		spec.Description = description
	}
	if spec.Dimension == "" {
		spec.Dimension = gamespec.Dimension2D
	}
	if spec.Complexity == "" {
		spec.Complexity = gamespec.ComplexityBeginner
	}
	if spec.Optimization == "" {
		spec.Optimization = gamespec.OptimizationDebug
	}

	if err := spec.Validate(); err != nil {
		return gamespec.GameSpecification{}, errors.Wrap(errors.CodeUpstreamBadResponse, "generation response specification is invalid", err)
	}
	return spec, nil
}
