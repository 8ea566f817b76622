package services

import "github.com/bobby-s-dev/weather-advisor/internal/models"

const windyThresholdKmh = 40

// Precipitation classes are checked by code, not by table category, so the
// rules stay independent of description edits.
func isRainy(code int) bool {
	switch code {
	case 51, 53, 55, 56, 57, 61, 63, 65, 66, 67, 80, 81, 82:
		return true
	}
	return false
}

func isSnowy(code int) bool {
	switch code {
	case 71, 73, 75, 77, 85, 86:
		return true
	}
	return false
}

func isStormy(code int) bool {
	return code == 95 || code == 96 || code == 99
}

func isClear(code int) bool {
	return code == 0 || code == 1
}

// Recommend suggests clothing and activities for the given reading.
// Clothing accumulates across rule layers; activities come from the first
// matching rule only.
func Recommend(temperatureC float64, code int, windSpeedKmh float64) models.Recommendations {
	wet := isRainy(code) || isStormy(code)
	snowy := isSnowy(code)
	clear := isClear(code)
	windy := windSpeedKmh > windyThresholdKmh

	var clothing []string
	switch {
	case temperatureC < 10:
		clothing = append(clothing, "Heavy coat", "Gloves", "Scarf", "Beanie")
	case temperatureC < 18:
		clothing = append(clothing, "Light coat", "Long pants", "Long-sleeve shirt")
	case temperatureC < 25:
		clothing = append(clothing, "T-shirt", "Light pants or shorts", "Comfortable shoes")
	default:
		clothing = append(clothing, "Light clothing", "Shorts", "Tank top", "Sandals")
	}

	if wet {
		clothing = append(clothing, "Umbrella", "Raincoat")
	}
	if snowy {
		clothing = append(clothing, "Waterproof boots", "Thermal clothing")
	}
	if clear && temperatureC >= 25 {
		clothing = append(clothing, "Sunscreen", "Sunglasses", "Hat")
	}
	if windy {
		clothing = append(clothing, "Windbreaker")
	}

	return models.Recommendations{
		Clothing:   clothing,
		Activities: recommendActivities(temperatureC, wet, snowy, clear, windy),
	}
}

// Order matters: a rainy and windy day is rainy.
func recommendActivities(temperatureC float64, wet, snowy, clear, windy bool) []string {
	switch {
	case wet:
		return []string{"Cinema or theater", "Visit a museum", "Reading at home", "Cook something special"}
	case snowy:
		return []string{"Hot chocolate at a cafe", "Board games", "Movie marathon"}
	case temperatureC < 10:
		return []string{"Visit a cozy cafe", "Shopping mall", "Indoor activities", "Spa or sauna"}
	case windy:
		return []string{"Avoid outdoor activities", "Activities at an indoor venue", "Indoor yoga or meditation"}
	case clear && temperatureC >= 18 && temperatureC < 30:
		return []string{"Outdoor walk", "Stroll in the park", "Picnic", "Cycling", "Morning run"}
	case temperatureC >= 30:
		return []string{"Pool or beach", "Ice cream", "Late-afternoon stroll", "Water activities"}
	default:
		return []string{"Outdoor stroll", "Sightseeing", "Urban photography"}
	}
}
