package dataflows

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dyike/FinAdvisorGo/config"
)

// NewsAPIClient queries newsapi.org for company headlines.
type NewsAPIClient struct {
	client *resty.Client
	cache  *CacheManager
	apiKey string
}

func NewNewsAPIClient(cfg *config.Config) *NewsAPIClient {
	cacheDir := filepath.Join(cfg.DataCacheDir, "newsapi")
	cache := NewCacheManager(cacheDir, 30*time.Minute, cfg.CacheEnabled)

	client := resty.New()
	client.SetBaseURL("https://newsapi.org/v2")
	client.SetTimeout(30 * time.Second)

	return &NewsAPIClient{
		client: client,
		cache:  cache,
		apiKey: cfg.NewsAPIKey,
	}
}

// newsAPIResponse is the /everything response.
type newsAPIResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Title  string `json:"title"`
		URL    string `json:"url"`
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"articles"`
}

// CompanyNews returns up to limit recent English-language articles matching
// the symbol, most relevant first. An empty result is not an error: the
// caller decides what no news means.
func (nc *NewsAPIClient) CompanyNews(ctx context.Context, symbol string, limit int) ([]*NewsArticle, error) {
	if nc.apiKey == "" {
		return nil, fmt.Errorf("NewsAPI key not configured")
	}

	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	symbol = NormalizeSymbol(symbol)

	cacheKey := map[string]interface{}{
		"symbol": symbol,
		"limit":  limit,
	}

	var cached []*NewsArticle
	if nc.cache.Get("newsapi", "company_news", cacheKey, &cached) {
		return cached, nil
	}

	var decoded newsAPIResponse
	err := WithRetry(DefaultRetryConfig(), func() error {
		resp, err := nc.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"q":        symbol,
				"language": "en",
				"apiKey":   nc.apiKey,
			}).
			Get("/everything")

		if err != nil {
			return fmt.Errorf("failed to fetch news for %s: %w", symbol, err)
		}

		if resp.StatusCode() != 200 {
			return fmt.Errorf("API error %d: %s", resp.StatusCode(), resp.String())
		}

		if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
			return fmt.Errorf("failed to parse news response: %w", err)
		}

		if decoded.Status != "ok" {
			return fmt.Errorf("NewsAPI error %s: %s", decoded.Code, decoded.Message)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	result := make([]*NewsArticle, 0, limit)
	for _, article := range decoded.Articles {
		if len(result) >= limit {
			break
		}
		result = append(result, &NewsArticle{
			Title:       article.Title,
			URL:         article.URL,
			Source:      article.Source.Name,
			PublishedAt: article.PublishedAt,
		})
	}

	nc.cache.Set("newsapi", "company_news", cacheKey, result)

	return result, nil
}
