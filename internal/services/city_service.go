package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	resp "gotrip/internal/models/response_models"
)

// --------- In-memory cache keyed by normalized prefix ---------

type suggestionCacheEntry struct {
	Suggestions []resp.CitySuggestion
	ExpiresAt   time.Time
}

type SuggestionCache interface {
	Get(prefix string) ([]resp.CitySuggestion, bool)
	Set(prefix string, v []resp.CitySuggestion, ttl time.Duration)
}

type inMemorySuggestionCache struct {
	mu    sync.RWMutex
	store map[string]suggestionCacheEntry
}

func NewInMemorySuggestionCache() SuggestionCache {
	return &inMemorySuggestionCache{store: make(map[string]suggestionCacheEntry)}
}

func (c *inMemorySuggestionCache) Get(prefix string) ([]resp.CitySuggestion, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[prefix]
	if !ok || time.Now().After(it.ExpiresAt) {
		return nil, false
	}
	return it.Suggestions, true
}

func (c *inMemorySuggestionCache) Set(prefix string, v []resp.CitySuggestion, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[prefix] = suggestionCacheEntry{Suggestions: v, ExpiresAt: time.Now().Add(ttl)}
}

// -------------- GeoDB cities client ---------------

const citySuggestionLimit = 10

type CityServiceInterface interface {
	SuggestCities(ctx context.Context, namePrefix string) ([]resp.CitySuggestion, error)
}

type GeoDBCityClient struct {
	HTTP       *http.Client
	APIKey     string
	Host       string // value for the X-RapidAPI-Host header
	BaseURL    string
	Cache      SuggestionCache
	DefaultTTL time.Duration
}

func NewGeoDBCityClient(cache SuggestionCache) *GeoDBCityClient {
	key := os.Getenv("RAPIDAPI_KEY")
	if key == "" {
		panic("RAPIDAPI_KEY is empty")
	}
	return &GeoDBCityClient{
		HTTP:       &http.Client{Timeout: 15 * time.Second},
		APIKey:     key,
		Host:       "wft-geo-db.p.rapidapi.com",
		BaseURL:    "https://wft-geo-db.p.rapidapi.com",
		Cache:      cache,
		DefaultTTL: 24 * time.Hour,
	}
}

// SuggestCities returns up to 10 cities matching the prefix, ranked by
// descending population. Prefixes of one character or less never hit the
// remote service.
func (c *GeoDBCityClient) SuggestCities(ctx context.Context, namePrefix string) ([]resp.CitySuggestion, error) {
	prefix := strings.TrimSpace(namePrefix)
	if len(prefix) <= 1 {
		return []resp.CitySuggestion{}, nil
	}

	cacheKey := strings.ToLower(prefix)
	if cached, ok := c.Cache.Get(cacheKey); ok {
		return cached, nil
	}

	q := url.Values{}
	q.Set("namePrefix", prefix)
	q.Set("limit", fmt.Sprintf("%d", citySuggestionLimit))
	q.Set("sort", "-population")

	req, _ := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/v1/geo/cities?"+q.Encode(), nil)
	req.Header.Set("X-RapidAPI-Key", c.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.Host)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geodb http error: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode/100 != 2 {
		return nil, fmt.Errorf("geodb bad status: %s", res.Status)
	}

	var payload struct {
		Data []struct {
			ID      int    `json:"id"`
			City    string `json:"city"`
			Country string `json:"country"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("geodb decode: %w", err)
	}

	suggestions := make([]resp.CitySuggestion, 0, len(payload.Data))
	for _, d := range payload.Data {
		suggestions = append(suggestions, resp.NewCitySuggestion(d.ID, d.City, d.Country))
		if len(suggestions) == citySuggestionLimit {
			break
		}
	}

	c.Cache.Set(cacheKey, suggestions, c.DefaultTTL)
	return suggestions, nil
}
