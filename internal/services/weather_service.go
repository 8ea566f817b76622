package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/bobby-s-dev/weather-advisor/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Geocoder interface {
	Search(ctx context.Context, name string) ([]models.GeoLocation, error)
}

type ForecastClient interface {
	CurrentConditions(ctx context.Context, coords models.Coordinates) (*models.CurrentConditions, error)
}

// WeatherService resolves a city and decorates its current weather with
// recommendations. It holds no mutable state and is safe for concurrent use.
type WeatherService struct {
	geocoder Geocoder
	forecast ForecastClient
	logger   *zap.Logger
}

func NewWeatherService(geocoder Geocoder, forecast ForecastClient, logger *zap.Logger) *WeatherService {
	return &WeatherService{
		geocoder: geocoder,
		forecast: forecast,
		logger:   logger,
	}
}

// LookupWeather runs geocoding and then the forecast call, strictly in
// sequence. Any failure aborts the lookup; nothing partial is returned.
func (s *WeatherService) LookupWeather(ctx context.Context, city string) (*models.WeatherResult, error) {
	name := strings.TrimSpace(city)
	if name == "" {
		return nil, ErrInvalidCity
	}

	logger := s.logger.With(
		zap.String("lookup_id", uuid.NewString()),
		zap.String("city", name))
	startTime := time.Now()

	locations, err := s.geocoder.Search(ctx, name)
	if err != nil {
		logger.Warn("Geocoding failed", zap.Error(err))
		return nil, &UpstreamError{Service: "geocoding", Err: err}
	}
	if len(locations) == 0 {
		logger.Info("City not found")
		return nil, &NotFoundError{City: name}
	}

	location := locations[0]
	logger.Debug("City resolved",
		zap.String("resolved_name", location.Name),
		zap.String("country", location.Country),
		zap.Float64("latitude", location.Latitude),
		zap.Float64("longitude", location.Longitude))

	current, err := s.forecast.CurrentConditions(ctx, location.Coordinates)
	if err != nil {
		logger.Warn("Forecast failed", zap.Error(err))
		return nil, &UpstreamError{Service: "forecast", Err: err}
	}

	info := Describe(current.ConditionCode)

	result := &models.WeatherResult{
		City:                 location.Name,
		Country:              location.Country,
		Temperature:          roundTenth(current.TemperatureC),
		ApparentTemperature:  roundTenth(current.ApparentTemperatureC),
		Humidity:             current.HumidityPercent,
		WindSpeed:            roundTenth(current.WindSpeedKmh),
		ConditionCode:        current.ConditionCode,
		ConditionDescription: info.Description,
		ConditionCategory:    info.Category,
		Recommendations:      Recommend(current.TemperatureC, current.ConditionCode, current.WindSpeedKmh),
	}

	logger.Info("Weather lookup completed",
		zap.Int("weather_code", result.ConditionCode),
		zap.Duration("duration", time.Since(startTime)))

	return result, nil
}

// roundTenth rounds half up at one decimal place.
func roundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
