package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bobby-s-dev/weather-advisor/internal/models"
	"go.uber.org/zap"
)

const DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1"

// GeocodingClient resolves free-text place names through the Open-Meteo
// geocoding API.
type GeocodingClient struct {
	*BaseClient
	baseURL  string
	language string
}

type geocodingResponse struct {
	Results []struct {
		ID        int64    `json:"id"`
		Name      string   `json:"name"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Country   string   `json:"country"`
		Admin1    string   `json:"admin1"`
	} `json:"results"`
}

func NewGeocodingClient(baseURL, language string, config ClientConfig, logger *zap.Logger) *GeocodingClient {
	if baseURL == "" {
		baseURL = DefaultGeocodingURL
	}
	if language == "" {
		language = "en"
	}
	return &GeocodingClient{
		BaseClient: NewBaseClient("geocoding", config, logger),
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   language,
	}
}

// Search returns the candidates for name in the API's relevance order.
// Only the best match is requested. A response without results yields an
// empty slice and no error.
func (c *GeocodingClient) Search(ctx context.Context, name string) ([]models.GeoLocation, error) {
	values := url.Values{}
	values.Set("name", name)
	values.Set("count", "1")
	values.Set("language", c.language)
	values.Set("format", "json")

	var response geocodingResponse
	if err := c.GetJSON(ctx, c.baseURL+"/search?"+values.Encode(), &response); err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", name, err)
	}

	locations := make([]models.GeoLocation, 0, len(response.Results))
	for _, r := range response.Results {
		if r.Latitude == nil || r.Longitude == nil {
			return nil, fmt.Errorf("geocoding %q: %w: result %d has no coordinates", name, ErrMalformedPayload, r.ID)
		}
		locations = append(locations, models.GeoLocation{
			ID:      r.ID,
			Name:    r.Name,
			Country: r.Country,
			Admin1:  r.Admin1,
			Coordinates: models.Coordinates{
				Latitude:  *r.Latitude,
				Longitude: *r.Longitude,
			},
		})
	}

	return locations, nil
}
