package headline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const gnewsBaseURL = "https://gnews.io"

// GNews is the gnews.io top-headlines backend.
type GNews struct {
	BaseURL    string
	HTTPClient *http.Client

	apiKey string
}

func NewGNews(apiKey string) *GNews {
	return &GNews{apiKey: apiKey}
}

func (s *GNews) Name() string { return "gnews" }

func (s *GNews) TopHeadline(ctx context.Context, category string) (string, error) {
	q := url.Values{}
	q.Set("category", category)
	q.Set("lang", "en")
	q.Set("max", "5")
	q.Set("apikey", s.apiKey)

	u := s.baseURL() + "/api/v4/top-headlines?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("gnews: build request: %w", err)
	}

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("gnews: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1_000_000))
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gnews: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed struct {
		Articles []struct {
			Title string `json:"title"`
		} `json:"articles"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("gnews: parse response: %w", err)
	}

	for _, a := range parsed.Articles {
		if title := strings.TrimSpace(a.Title); title != "" {
			return title, nil
		}
	}
	return "", fmt.Errorf("gnews: zero articles for %s", category)
}

func (s *GNews) baseURL() string {
	if s.BaseURL != "" {
		return strings.TrimRight(s.BaseURL, "/")
	}
	return gnewsBaseURL
}

func (s *GNews) httpClient() *http.Client {
	if s.HTTPClient != nil {
		return s.HTTPClient
	}
	return http.DefaultClient
}
