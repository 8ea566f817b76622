package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bobby-s-dev/weather-advisor/internal/api"
	"github.com/bobby-s-dev/weather-advisor/internal/config"
	"github.com/bobby-s-dev/weather-advisor/internal/scheduler"
	"github.com/bobby-s-dev/weather-advisor/internal/services"
	"github.com/bobby-s-dev/weather-advisor/pkg/client"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Initialize logger
	zapConfig := zap.NewProductionConfig()
	logger, err := zapConfig.Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	logger.Info("Starting Weather Advisor Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	if level, err := zapcore.ParseLevel(cfg.Server.LogLevel); err != nil {
		logger.Warn("Unknown log level, keeping info", zap.String("level", cfg.Server.LogLevel))
	} else {
		zapConfig.Level.SetLevel(level)
	}

	clientConfig := client.ClientConfig{
		Timeout:        cfg.OpenMeteo.Timeout,
		Threshold:      cfg.CircuitBreaker.Threshold,
		BreakerTimeout: cfg.CircuitBreaker.Timeout,
	}
	geocoder := client.NewGeocodingClient(cfg.OpenMeteo.GeocodingURL, cfg.OpenMeteo.Language, clientConfig, logger)
	forecast := client.NewOpenMeteoClient(cfg.OpenMeteo.ForecastURL, clientConfig, logger)

	weatherService := services.NewWeatherService(geocoder, forecast, logger)

	var probe *scheduler.Probe
	var status api.StatusReporter
	if cfg.Probe.Enabled {
		probe = scheduler.NewProbe(geocoder, cfg.Probe.City, cfg.Probe.Schedule, logger)
		if err := probe.Start(); err != nil {
			logger.Fatal("Failed to start upstream probe", zap.Error(err))
		}
		status = probe
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:               "weather-advisor",
		DisableStartupMessage: true,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		ErrorHandler:          api.ErrorHandler,
	})

	// Setup handlers and routes
	handler := api.NewHandler(weatherService, status, logger)
	api.SetupRoutes(app, handler, logger)

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("Starting server", zap.String("address", addr))

		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if probe != nil {
		probe.Stop()
	}

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
