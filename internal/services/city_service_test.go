package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestCityClient(ts *httptest.Server) *GeoDBCityClient {
	return &GeoDBCityClient{
		HTTP:       ts.Client(),
		APIKey:     "test-key",
		Host:       "wft-geo-db.p.rapidapi.com",
		BaseURL:    ts.URL,
		Cache:      NewInMemorySuggestionCache(),
		DefaultTTL: time.Minute,
	}
}

func TestSuggestCities(t *testing.T) {
	var gotQuery map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"namePrefix": r.URL.Query().Get("namePrefix"),
			"limit":      r.URL.Query().Get("limit"),
			"sort":       r.URL.Query().Get("sort"),
			"key":        r.Header.Get("X-RapidAPI-Key"),
			"host":       r.Header.Get("X-RapidAPI-Host"),
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"id": 1, "city": "Paris", "country": "France"},
				{"id": 2, "city": "Paris", "country": "United States"},
			},
		})
	}))
	defer ts.Close()

	suggestions, err := newTestCityClient(ts).SuggestCities(context.Background(), "par")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery["namePrefix"] != "par" || gotQuery["limit"] != "10" || gotQuery["sort"] != "-population" {
		t.Errorf("unexpected query params: %+v", gotQuery)
	}
	if gotQuery["key"] != "test-key" || gotQuery["host"] != "wft-geo-db.p.rapidapi.com" {
		t.Errorf("missing RapidAPI headers: %+v", gotQuery)
	}
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Label != "Paris, France" {
		t.Errorf("label = %q, want %q", suggestions[0].Label, "Paris, France")
	}
}

func TestSuggestCitiesShortPrefixSkipsLookup(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	client := newTestCityClient(ts)
	for _, prefix := range []string{"", "p", " p "} {
		suggestions, err := client.SuggestCities(context.Background(), prefix)
		if err != nil {
			t.Fatalf("prefix %q: unexpected error: %v", prefix, err)
		}
		if len(suggestions) != 0 {
			t.Errorf("prefix %q: expected empty result", prefix)
		}
	}
	if called {
		t.Error("one-character prefixes must never hit the remote service")
	}
}

func TestSuggestCitiesCaches(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{{"id": 1, "city": "Lima", "country": "Peru"}},
		})
	}))
	defer ts.Close()

	client := newTestCityClient(ts)
	for _, prefix := range []string{"Lim", "lim", "LIM"} {
		if _, err := client.SuggestCities(context.Background(), prefix); err != nil {
			t.Fatalf("prefix %q: unexpected error: %v", prefix, err)
		}
	}
	if calls != 1 {
		t.Errorf("expected one upstream call for case-variant prefixes, got %d", calls)
	}
}

func TestSuggestCitiesUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	if _, err := newTestCityClient(ts).SuggestCities(context.Background(), "par"); err == nil {
		t.Error("expected error for non-2xx upstream status")
	}
}
