package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type LatLng struct {
	Lat float64
	Lng float64
}

// Place is the best text-search match for an activity query.
type Place struct {
	ID               string
	Name             string
	FormattedAddress string
	Lat              float64
	Lng              float64
	Rating           float64
	PriceLevel       int
}

// PlaceResolver looks up the single best-ranked place for a free-text
// query. A nil Place with nil error means the provider had no results.
type PlaceResolver interface {
	Resolve(ctx context.Context, query string, bias *LatLng) (*Place, error)
}

const googlePlacesBase = "https://places.googleapis.com/v1"

type GooglePlacesClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewGooglePlacesClient(apiKey string) *GooglePlacesClient {
	return &GooglePlacesClient{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		APIKey:  apiKey,
		BaseURL: googlePlacesBase,
	}
}

// priceLevels maps the Places API v1 enum onto the 0-4 scale stored on
// activities.
var priceLevels = map[string]int{
	"PRICE_LEVEL_FREE":           0,
	"PRICE_LEVEL_INEXPENSIVE":    1,
	"PRICE_LEVEL_MODERATE":       2,
	"PRICE_LEVEL_EXPENSIVE":      3,
	"PRICE_LEVEL_VERY_EXPENSIVE": 4,
}

func (c *GooglePlacesClient) Resolve(ctx context.Context, query string, bias *LatLng) (*Place, error) {
	body := map[string]interface{}{
		"textQuery": query,
	}
	if bias != nil {
		body["locationBias"] = map[string]interface{}{
			"circle": map[string]interface{}{
				"center": map[string]float64{"latitude": bias.Lat, "longitude": bias.Lng},
				"radius": 5000,
			},
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/places:searchText", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.APIKey)
	req.Header.Set("X-Goog-FieldMask", "places.id,places.displayName,places.formattedAddress,places.location,places.rating,places.priceLevel")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("places bad status: %s", resp.Status)
	}

	var decoded struct {
		Places []struct {
			ID          string `json:"id"`
			DisplayName struct {
				Text string `json:"text"`
			} `json:"displayName"`
			FormattedAddress string `json:"formattedAddress"`
			Location         struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"location"`
			Rating     float64 `json:"rating"`
			PriceLevel string  `json:"priceLevel"`
		} `json:"places"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("places decode: %w", err)
	}

	if len(decoded.Places) == 0 {
		return nil, nil
	}

	// First element of the provider ordering wins, no re-ranking.
	p := decoded.Places[0]
	return &Place{
		ID:               p.ID,
		Name:             p.DisplayName.Text,
		FormattedAddress: p.FormattedAddress,
		Lat:              p.Location.Latitude,
		Lng:              p.Location.Longitude,
		Rating:           p.Rating,
		PriceLevel:       priceLevels[p.PriceLevel],
	}, nil
}

// StaticPlaceResolver always returns the same mock place so enrichment
// is exercised end to end without network access.
type StaticPlaceResolver struct{}

func NewStaticPlaceResolver() *StaticPlaceResolver {
	return &StaticPlaceResolver{}
}

func (r *StaticPlaceResolver) Resolve(_ context.Context, query string, bias *LatLng) (*Place, error) {
	p := &Place{
		ID:               "mock-place-id-1",
		Name:             "Mock Place",
		FormattedAddress: "123 Mock Street, Test City",
		Lat:              40.7128,
		Lng:              -74.0060,
		Rating:           4.2,
		PriceLevel:       2,
	}
	if bias != nil {
		p.Lat = bias.Lat
		p.Lng = bias.Lng
	}
	return p, nil
}
