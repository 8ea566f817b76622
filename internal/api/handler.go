package api

import (
	"context"
	"errors"
	"time"

	"github.com/bobby-s-dev/weather-advisor/internal/models"
	"github.com/bobby-s-dev/weather-advisor/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var validate = newValidator()

// notblank ships with validator but is not registered by default.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

type WeatherLookup interface {
	LookupWeather(ctx context.Context, city string) (*models.WeatherResult, error)
}

type StatusReporter interface {
	GetStatus() map[string]interface{}
}

type Handler struct {
	weather WeatherLookup
	probe   StatusReporter
	logger  *zap.Logger
}

// NewHandler builds the HTTP handlers. probe may be nil when the upstream
// probe is disabled.
func NewHandler(weather WeatherLookup, probe StatusReporter, logger *zap.Logger) *Handler {
	return &Handler{
		weather: weather,
		probe:   probe,
		logger:  logger,
	}
}

type weatherQuery struct {
	City string `query:"city" validate:"required,notblank,max=100"`
}

// GetWeather handles GET /api/v1/weather
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	var q weatherQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "City parameter is required")
	}

	h.logger.Info("Fetching weather", zap.String("city", q.City))

	result, err := h.weather.LookupWeather(c.UserContext(), q.City)
	if err != nil {
		h.logger.Error("Failed to get weather",
			zap.String("city", q.City),
			zap.Error(err))
		return lookupError(err)
	}

	return c.JSON(result)
}

// lookupError maps lookup failures to HTTP errors.
func lookupError(err error) error {
	var notFound *services.NotFoundError
	switch {
	case errors.Is(err, services.ErrInvalidCity):
		return fiber.NewError(fiber.StatusBadRequest, "City parameter is required")
	case errors.As(err, &notFound):
		return fiber.NewError(fiber.StatusNotFound,
			"City \""+notFound.City+"\" not found. Check the name and try again.")
	case errors.Is(err, services.ErrUpstream):
		return fiber.NewError(fiber.StatusBadGateway, "Weather service is currently unavailable")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
	}
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	body := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
	}
	if h.probe != nil {
		body["upstream"] = h.probe.GetStatus()
	}
	return c.JSON(body)
}

var startTime = time.Now()
