package models

// Category is the coarse weather grouping used for theming.
type Category string

const (
	CategoryClear  Category = "clear"
	CategoryCloudy Category = "cloudy"
	CategoryRain   Category = "rain"
	CategorySnow   Category = "snow"
	CategoryStorm  Category = "storm"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoLocation is a single geocoding candidate.
type GeoLocation struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Admin1  string `json:"admin1,omitempty"`
	Coordinates
}

// CurrentConditions is the current-weather snapshot returned by the forecast API.
type CurrentConditions struct {
	TemperatureC         float64 `json:"temperature"`
	ApparentTemperatureC float64 `json:"apparent_temperature"`
	HumidityPercent      int     `json:"humidity"`
	WindSpeedKmh         float64 `json:"wind_speed"`
	ConditionCode        int     `json:"condition_code"`
}

type ConditionInfo struct {
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

type Recommendations struct {
	Clothing   []string `json:"clothing"`
	Activities []string `json:"activities"`
}

// WeatherResult is the response of a single city lookup.
type WeatherResult struct {
	City                 string          `json:"city"`
	Country              string          `json:"country"`
	Temperature          float64         `json:"temperature"`
	ApparentTemperature  float64         `json:"apparentTemperature"`
	Humidity             int             `json:"humidity"`
	WindSpeed            float64         `json:"windSpeed"`
	ConditionCode        int             `json:"weatherCode"`
	ConditionDescription string          `json:"weatherDescription"`
	ConditionCategory    Category        `json:"weatherCategory"`
	Recommendations      Recommendations `json:"recommendations"`
}
