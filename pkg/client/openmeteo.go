package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/bobby-s-dev/weather-advisor/internal/models"
	"go.uber.org/zap"
)

const DefaultForecastURL = "https://api.open-meteo.com/v1"

const currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m"

type OpenMeteoClient struct {
	*BaseClient
	baseURL string
}

// Pointer fields let us tell a missing value from a zero reading.
type OpenMeteoCurrentResponse struct {
	Current *struct {
		Temperature2M       *float64 `json:"temperature_2m"`
		ApparentTemperature *float64 `json:"apparent_temperature"`
		RelativeHumidity2M  *int     `json:"relative_humidity_2m"`
		WindSpeed10M        *float64 `json:"wind_speed_10m"`
		WeatherCode         *int     `json:"weather_code"`
	} `json:"current"`
	CurrentUnits struct {
		Temperature2M string `json:"temperature_2m"`
		WindSpeed10M  string `json:"wind_speed_10m"`
	} `json:"current_units"`
}

func NewOpenMeteoClient(baseURL string, config ClientConfig, logger *zap.Logger) *OpenMeteoClient {
	if baseURL == "" {
		baseURL = DefaultForecastURL
	}
	return &OpenMeteoClient{
		BaseClient: NewBaseClient("openmeteo", config, logger),
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// CurrentConditions fetches the current reading at coords. Wind speed is
// requested in km/h.
func (c *OpenMeteoClient) CurrentConditions(ctx context.Context, coords models.Coordinates) (*models.CurrentConditions, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	values.Set("current", currentFields)
	values.Set("wind_speed_unit", "kmh")

	var response OpenMeteoCurrentResponse
	if err := c.GetJSON(ctx, c.baseURL+"/forecast?"+values.Encode(), &response); err != nil {
		return nil, fmt.Errorf("failed to fetch current weather: %w", err)
	}

	if unit := response.CurrentUnits.WindSpeed10M; unit != "" && unit != "km/h" {
		return nil, fmt.Errorf("%w: wind speed in %q, want km/h", ErrMalformedPayload, unit)
	}
	if unit := response.CurrentUnits.Temperature2M; unit != "" && unit != "°C" {
		return nil, fmt.Errorf("%w: temperature in %q, want °C", ErrMalformedPayload, unit)
	}

	cur := response.Current
	if cur == nil {
		return nil, fmt.Errorf("%w: missing current block", ErrMalformedPayload)
	}
	if cur.Temperature2M == nil || cur.ApparentTemperature == nil || cur.RelativeHumidity2M == nil ||
		cur.WindSpeed10M == nil || cur.WeatherCode == nil {
		return nil, fmt.Errorf("%w: incomplete current block", ErrMalformedPayload)
	}

	return &models.CurrentConditions{
		TemperatureC:         *cur.Temperature2M,
		ApparentTemperatureC: *cur.ApparentTemperature,
		HumidityPercent:      *cur.RelativeHumidity2M,
		WindSpeedKmh:         *cur.WindSpeed10M,
		ConditionCode:        *cur.WeatherCode,
	}, nil
}
