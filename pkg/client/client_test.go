package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bobby-s-dev/weather-advisor/internal/models"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

var testConfig = ClientConfig{
	Timeout:        2 * time.Second,
	Threshold:      2,
	BreakerTimeout: time.Minute,
}

func TestGeocodingSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("name") != "São Paulo" || q.Get("count") != "1" || q.Get("language") != "pt" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"id":3448439,"name":"São Paulo","latitude":-23.5475,"longitude":-46.63611,"country":"Brazil","admin1":"São Paulo"}],"generationtime_ms":0.5}`))
	}))
	defer server.Close()

	c := NewGeocodingClient(server.URL+"/v1/", "pt", testConfig, zap.NewNop())
	locations, err := c.Search(context.Background(), "São Paulo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := models.GeoLocation{
		ID:          3448439,
		Name:        "São Paulo",
		Country:     "Brazil",
		Admin1:      "São Paulo",
		Coordinates: models.Coordinates{Latitude: -23.5475, Longitude: -46.63611},
	}
	if len(locations) != 1 || locations[0] != want {
		t.Errorf("expected %+v, got %+v", want, locations)
	}
}

func TestGeocodingSearchNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generationtime_ms":0.3}`))
	}))
	defer server.Close()

	c := NewGeocodingClient(server.URL, "", testConfig, zap.NewNop())
	locations, err := c.Search(context.Background(), "Nowhereville")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locations) != 0 {
		t.Errorf("expected no locations, got %+v", locations)
	}
}

func TestGeocodingSearchMissingCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"id":7,"name":"Partial"}]}`))
	}))
	defer server.Close()

	c := NewGeocodingClient(server.URL, "", testConfig, zap.NewNop())
	_, err := c.Search(context.Background(), "Partial")
	if !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestCurrentConditions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/forecast" || q.Get("latitude") != "52.52" || q.Get("longitude") != "13.41" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		if q.Get("current") != currentFields {
			t.Errorf("unexpected current fields %q", q.Get("current"))
		}
		w.Write([]byte(`{
			"latitude": 52.52,
			"longitude": 13.419998,
			"current_units": {"temperature_2m": "°C", "wind_speed_10m": "km/h"},
			"current": {
				"time": "2026-10-18T12:00",
				"interval": 900,
				"temperature_2m": 12.3,
				"relative_humidity_2m": 77,
				"apparent_temperature": 10.1,
				"weather_code": 61,
				"wind_speed_10m": 18.7
			}
		}`))
	}))
	defer server.Close()

	c := NewOpenMeteoClient(server.URL, testConfig, zap.NewNop())
	current, err := c.CurrentConditions(context.Background(), models.Coordinates{Latitude: 52.52, Longitude: 13.41})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := models.CurrentConditions{
		TemperatureC:         12.3,
		ApparentTemperatureC: 10.1,
		HumidityPercent:      77,
		WindSpeedKmh:         18.7,
		ConditionCode:        61,
	}
	if *current != want {
		t.Errorf("expected %+v, got %+v", want, *current)
	}
}

func TestCurrentConditionsMalformed(t *testing.T) {
	bodies := map[string]string{
		"not json":      `<html>oops</html>`,
		"no current":    `{"latitude": 1, "longitude": 2}`,
		"missing field": `{"current": {"temperature_2m": 1, "apparent_temperature": 1, "relative_humidity_2m": 50, "wind_speed_10m": 3}}`,
		"wrong type":    `{"current": {"temperature_2m": "warm"}}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer server.Close()

			c := NewOpenMeteoClient(server.URL, testConfig, zap.NewNop())
			_, err := c.CurrentConditions(context.Background(), models.Coordinates{})
			if !errors.Is(err, ErrMalformedPayload) {
				t.Errorf("expected ErrMalformedPayload, got %v", err)
			}
		})
	}
}

func TestStatusErrorAndBreaker(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewOpenMeteoClient(server.URL, testConfig, zap.NewNop())

	for i := 0; i < 2; i++ {
		_, err := c.CurrentConditions(context.Background(), models.Coordinates{})
		var statusErr *StatusError
		if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusServiceUnavailable {
			t.Fatalf("attempt %d: expected 503 StatusError, got %v", i, err)
		}
	}

	// Threshold reached: the breaker is open and the server is not hit again.
	_, err := c.CurrentConditions(context.Background(), models.Coordinates{})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected open breaker, got %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 2 {
		t.Errorf("expected exactly 2 upstream hits without retries, got %d", got)
	}
}

func TestCancelledRequestDoesNotTripBreaker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewGeocodingClient(server.URL, "", testConfig, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 3; i++ {
		if _, err := c.Search(ctx, "Oslo"); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	}

	if state := c.circuitBreaker.State(); state != gobreaker.StateClosed {
		t.Errorf("expected closed breaker, got %s", state)
	}
}

func TestCurrentConditionsRejectsUnexpectedUnits(t *testing.T) {
	bodies := map[string]string{
		"wind in m/s":       `{"current_units": {"temperature_2m": "°C", "wind_speed_10m": "m/s"}, "current": {"temperature_2m": 1, "apparent_temperature": 1, "relative_humidity_2m": 50, "wind_speed_10m": 3, "weather_code": 0}}`,
		"temperature in °F": `{"current_units": {"temperature_2m": "°F", "wind_speed_10m": "km/h"}, "current": {"temperature_2m": 70, "apparent_temperature": 70, "relative_humidity_2m": 50, "wind_speed_10m": 3, "weather_code": 0}}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer server.Close()

			c := NewOpenMeteoClient(server.URL, testConfig, zap.NewNop())
			_, err := c.CurrentConditions(context.Background(), models.Coordinates{})
			if !errors.Is(err, ErrMalformedPayload) {
				t.Errorf("expected ErrMalformedPayload, got %v", err)
			}
		})
	}
}

func TestNonPositiveThresholdUsesDefault(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	cfg := testConfig
	cfg.Threshold = -1
	c := NewOpenMeteoClient(server.URL, cfg, zap.NewNop())

	for i := 0; i < defaultThreshold; i++ {
		var statusErr *StatusError
		if _, err := c.CurrentConditions(context.Background(), models.Coordinates{}); !errors.As(err, &statusErr) {
			t.Fatalf("attempt %d: expected StatusError, got %v", i, err)
		}
	}

	_, err := c.CurrentConditions(context.Background(), models.Coordinates{})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected open breaker after %d failures, got %v", defaultThreshold, err)
	}
	if got := atomic.LoadInt32(&hits); got != defaultThreshold {
		t.Errorf("expected %d upstream hits, got %d", defaultThreshold, got)
	}
}
