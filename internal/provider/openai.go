package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const (
	openAIBaseURL      = "https://api.openai.com"
	openAIDefaultModel = "gpt-4o-mini"
)

// OpenAI calls the chat completions API.
type OpenAI struct {
	// BaseURL defaults to the public API; overridable for tests and proxies.
	BaseURL string

	// HTTPClient defaults to http.DefaultClient when nil.
	HTTPClient *http.Client

	apiKey string
	model  string
}

// NewOpenAI creates a chat provider. An empty model selects the default.
func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = openAIDefaultModel
	}
	return &OpenAI{apiKey: apiKey, model: model}
}

func (p *OpenAI) Name() string { return "openai" }

func (p *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	payload := struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}{
		Model: p.model,
		Messages: []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		}{
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &ProviderError{Provider: p.Name(), Err: fmt.Errorf("build request: %w", err)}
	}

	u := p.baseURL() + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Provider: p.Name(), Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient().Do(req)
	if err != nil {
		return "", &ProviderError{Provider: p.Name(), Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	raw, _ := readAllLimit(resp.Body, 1_000_000)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ProviderError{Provider: p.Name(), Err: fmt.Errorf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw)))}
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &ProviderError{Provider: p.Name(), Err: fmt.Errorf("parse response: %w", err)}
	}
	if len(parsed.Choices) == 0 {
		return "", &ProviderError{Provider: p.Name(), Err: fmt.Errorf("response contained no choices")}
	}

	text := normalize(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", &ProviderError{Provider: p.Name(), Err: fmt.Errorf("empty generation")}
	}
	return text, nil
}

func (p *OpenAI) baseURL() string {
	if p.BaseURL != "" {
		return strings.TrimRight(p.BaseURL, "/")
	}
	return openAIBaseURL
}

func (p *OpenAI) httpClient() *http.Client {
	if p.HTTPClient != nil {
		return p.HTTPClient
	}
	return http.DefaultClient
}
