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

const newsAPIBaseURL = "https://newsapi.org"

// NewsAPI is the newsapi.org top-headlines backend.
type NewsAPI struct {
	BaseURL    string
	HTTPClient *http.Client

	apiKey string
}

func NewNewsAPI(apiKey string) *NewsAPI {
	return &NewsAPI{apiKey: apiKey}
}

func (s *NewsAPI) Name() string { return "newsapi" }

func (s *NewsAPI) TopHeadline(ctx context.Context, category string) (string, error) {
	q := url.Values{}
	q.Set("category", category)
	q.Set("country", "us")
	q.Set("pageSize", "5")
	q.Set("apiKey", s.apiKey)

	u := s.baseURL() + "/v2/top-headlines?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("newsapi: build request: %w", err)
	}

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("newsapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1_000_000))
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("newsapi: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed struct {
		Status   string `json:"status"`
		Articles []struct {
			Title string `json:"title"`
		} `json:"articles"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("newsapi: parse response: %w", err)
	}
	if parsed.Status != "ok" {
		return "", fmt.Errorf("newsapi: status %q", parsed.Status)
	}

	for _, a := range parsed.Articles {
		if title := strings.TrimSpace(a.Title); title != "" {
			return title, nil
		}
	}
	return "", fmt.Errorf("newsapi: zero articles for %s", category)
}

func (s *NewsAPI) baseURL() string {
	if s.BaseURL != "" {
		return strings.TrimRight(s.BaseURL, "/")
	}
	return newsAPIBaseURL
}

func (s *NewsAPI) httpClient() *http.Client {
	if s.HTTPClient != nil {
		return s.HTTPClient
	}
	return http.DefaultClient
}
