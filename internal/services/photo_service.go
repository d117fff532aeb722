package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	resp "gotrip/internal/models/response_models"
)

// GalleryPageSize is the fixed number of destination photos per trip.
const GalleryPageSize = 6

type PhotoServiceInterface interface {
	SearchPhotos(ctx context.Context, query string) ([]resp.Photo, error)
}

type UnsplashPhotoClient struct {
	HTTP      *http.Client
	AccessKey string
	BaseURL   string
}

func NewUnsplashPhotoClient() *UnsplashPhotoClient {
	key := os.Getenv("UNSPLASH_ACCESS_KEY")
	if key == "" {
		panic("UNSPLASH_ACCESS_KEY is empty")
	}
	return &UnsplashPhotoClient{
		HTTP:      &http.Client{Timeout: 15 * time.Second},
		AccessKey: key,
		BaseURL:   "https://api.unsplash.com",
	}
}

func (c *UnsplashPhotoClient) SearchPhotos(ctx context.Context, query string) ([]resp.Photo, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", fmt.Sprintf("%d", GalleryPageSize))

	req, _ := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/search/photos?"+q.Encode(), nil)
	req.Header.Set("Authorization", "Client-ID "+c.AccessKey)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash http error: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode/100 != 2 {
		return nil, fmt.Errorf("unsplash bad status: %s", res.Status)
	}

	var payload struct {
		Results []struct {
			ID   string `json:"id"`
			URLs struct {
				Regular string `json:"regular"`
			} `json:"urls"`
			AltDescription string `json:"alt_description"`
			User           struct {
				Name string `json:"name"`
			} `json:"user"`
		} `json:"results"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("unsplash decode: %w", err)
	}

	photos := make([]resp.Photo, 0, GalleryPageSize)
	for _, r := range payload.Results {
		photos = append(photos, resp.Photo{
			ID:             r.ID,
			URL:            r.URLs.Regular,
			AltDescription: r.AltDescription,
			AuthorName:     r.User.Name,
		})
		if len(photos) == GalleryPageSize {
			break
		}
	}
	return photos, nil
}
