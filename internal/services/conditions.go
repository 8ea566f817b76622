package services

import "github.com/bobby-s-dev/weather-advisor/internal/models"

var unknownCondition = models.ConditionInfo{
	Description: "Unknown",
	Category:    models.CategoryCloudy,
}

// WMO weather interpretation codes
var conditionTable = map[int]models.ConditionInfo{
	0:  {Description: "Clear sky", Category: models.CategoryClear},
	1:  {Description: "Mainly clear", Category: models.CategoryClear},
	2:  {Description: "Partly cloudy", Category: models.CategoryCloudy},
	3:  {Description: "Overcast", Category: models.CategoryCloudy},
	45: {Description: "Fog", Category: models.CategoryCloudy},
	48: {Description: "Depositing rime fog", Category: models.CategoryCloudy},
	51: {Description: "Light drizzle", Category: models.CategoryRain},
	53: {Description: "Moderate drizzle", Category: models.CategoryRain},
	55: {Description: "Dense drizzle", Category: models.CategoryRain},
	56: {Description: "Light freezing drizzle", Category: models.CategoryRain},
	57: {Description: "Dense freezing drizzle", Category: models.CategoryRain},
	61: {Description: "Slight rain", Category: models.CategoryRain},
	63: {Description: "Moderate rain", Category: models.CategoryRain},
	65: {Description: "Heavy rain", Category: models.CategoryRain},
	66: {Description: "Light freezing rain", Category: models.CategoryRain},
	67: {Description: "Heavy freezing rain", Category: models.CategoryRain},
	71: {Description: "Slight snow fall", Category: models.CategorySnow},
	73: {Description: "Moderate snow fall", Category: models.CategorySnow},
	75: {Description: "Heavy snow fall", Category: models.CategorySnow},
	77: {Description: "Snow grains", Category: models.CategorySnow},
	80: {Description: "Slight rain showers", Category: models.CategoryRain},
	81: {Description: "Moderate rain showers", Category: models.CategoryRain},
	82: {Description: "Violent rain showers", Category: models.CategoryRain},
	85: {Description: "Slight snow showers", Category: models.CategorySnow},
	86: {Description: "Heavy snow showers", Category: models.CategorySnow},
	95: {Description: "Thunderstorm", Category: models.CategoryStorm},
	96: {Description: "Thunderstorm with slight hail", Category: models.CategoryStorm},
	99: {Description: "Thunderstorm with heavy hail", Category: models.CategoryStorm},
}

// Describe maps a weather code to its description and category. Unknown
// codes fall back to "Unknown" / cloudy.
func Describe(code int) models.ConditionInfo {
	if info, ok := conditionTable[code]; ok {
		return info
	}
	return unknownCondition
}
