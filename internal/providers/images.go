package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"time"
)

// ImageResolver returns a representative photo URL for a text query, or
// "" when the provider has no match.
type ImageResolver interface {
	ResolveImage(ctx context.Context, query string) (string, error)
}

const unsplashBase = "https://api.unsplash.com"

type UnsplashClient struct {
	HTTP      *http.Client
	AccessKey string
	BaseURL   string
}

func NewUnsplashClient(accessKey string) *UnsplashClient {
	return &UnsplashClient{
		HTTP:      &http.Client{Timeout: 10 * time.Second},
		AccessKey: accessKey,
		BaseURL:   unsplashBase,
	}
}

func (c *UnsplashClient) ResolveImage(ctx context.Context, query string) (string, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", "1")
	q.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/search/photos?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Client-ID "+c.AccessKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("unsplash http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("unsplash bad status: %s", resp.Status)
	}

	var decoded struct {
		Results []struct {
			URLs struct {
				Small string `json:"small"`
			} `json:"urls"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("unsplash decode: %w", err)
	}

	if len(decoded.Results) == 0 {
		return "", nil
	}
	return decoded.Results[0].URLs.Small, nil
}

var staticImagePool = []string{
	"https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=400",
	"https://images.unsplash.com/photo-1571501679680-de32f1e7aad4?w=400",
	"https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=400",
	"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=400",
	"https://images.unsplash.com/photo-1539650116574-75c0c6d73ab8?w=400",
}

// StaticImageResolver picks a pseudo-random URL from a fixed pool. This
// is the one intentionally non-deterministic static lookup; the shape of
// the result is stable even though the value varies.
type StaticImageResolver struct{}

func NewStaticImageResolver() *StaticImageResolver {
	return &StaticImageResolver{}
}

func (r *StaticImageResolver) ResolveImage(_ context.Context, _ string) (string, error) {
	return staticImagePool[rand.Intn(len(staticImagePool))], nil
}
