// File: services/search/client.go
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"ttravels/utils"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://serpapi.com/search.json"

// SerpClient talks to the SerpAPI search endpoints used for flights, hotels
// and attractions. An empty API key puts the client in offline mode, where
// searches return canned results instead of failing.
type SerpClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewSerpClient(apiKey string) *SerpClient {
	return &SerpClient{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *SerpClient) offline() bool {
	return c.apiKey == ""
}

// get performs one SerpAPI call and decodes the JSON body into out.
func (c *SerpClient) get(ctx context.Context, params url.Values, out interface{}) error {
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("failed to read search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		utils.GetLogger().Warn("Search provider returned non-200",
			zap.Int("status", resp.StatusCode), zap.String("engine", params.Get("engine")))
		return fmt.Errorf("search provider returned status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode search response: %w", err)
	}
	return nil
}
