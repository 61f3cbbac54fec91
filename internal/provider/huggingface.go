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
	hfBaseURL = "https://api-inference.huggingface.co"
	hfModel   = "mistralai/Mistral-7B-Instruct-v0.3"
)

// HuggingFace calls the Inference API text-generation endpoint. It is the
// completion-style counterpart to the chat provider.
type HuggingFace struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

func NewHuggingFace(token string) *HuggingFace {
	return &HuggingFace{token: token}
}

func (p *HuggingFace) Name() string { return "huggingface" }

func (p *HuggingFace) Generate(ctx context.Context, prompt string) (string, error) {
	payload := struct {
		Inputs     string `json:"inputs"`
		Parameters struct {
			MaxNewTokens   int  `json:"max_new_tokens"`
			ReturnFullText bool `json:"return_full_text"`
		} `json:"parameters"`
	}{Inputs: prompt}
	payload.Parameters.MaxNewTokens = 120

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &ProviderError{Provider: p.Name(), Err: fmt.Errorf("build request: %w", err)}
	}

	u := p.baseURL() + "/models/" + hfModel
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Provider: p.Name(), Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.httpClient().Do(req)
	if err != nil {
		return "", &ProviderError{Provider: p.Name(), Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	raw, _ := readAllLimit(resp.Body, 1_000_000)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ProviderError{Provider: p.Name(), Err: fmt.Errorf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw)))}
	}

	var parsed []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &ProviderError{Provider: p.Name(), Err: fmt.Errorf("parse response: %w", err)}
	}
	if len(parsed) == 0 {
		return "", &ProviderError{Provider: p.Name(), Err: fmt.Errorf("response contained no generations")}
	}

	text := normalize(parsed[0].GeneratedText)
	if text == "" {
		return "", &ProviderError{Provider: p.Name(), Err: fmt.Errorf("empty generation")}
	}
	return text, nil
}

func (p *HuggingFace) baseURL() string {
	if p.BaseURL != "" {
		return strings.TrimRight(p.BaseURL, "/")
	}
	return hfBaseURL
}

func (p *HuggingFace) httpClient() *http.Client {
	if p.HTTPClient != nil {
		return p.HTTPClient
	}
	return http.DefaultClient
}
