package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bobby-s-dev/weather-advisor/internal/models"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const probeTimeout = 15 * time.Second

type Geocoder interface {
	Search(ctx context.Context, name string) ([]models.GeoLocation, error)
}

// Probe periodically geocodes a fixed city to track upstream health.
// It keeps only the outcome of the last run, never the lookup result.
type Probe struct {
	cron     *cron.Cron
	geocoder Geocoder
	city     string
	schedule string
	logger   *zap.Logger

	mu          sync.Mutex
	running     bool
	lastRun     time.Time
	lastSuccess time.Time
	lastErr     error
}

func NewProbe(geocoder Geocoder, city, schedule string, logger *zap.Logger) *Probe {
	return &Probe{
		cron:     cron.New(),
		geocoder: geocoder,
		city:     city,
		schedule: schedule,
		logger:   logger,
	}
}

func (p *Probe) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return nil
	}

	if _, err := p.cron.AddFunc(p.schedule, p.Run); err != nil {
		return fmt.Errorf("invalid probe schedule %q: %w", p.schedule, err)
	}
	p.cron.Start()
	p.running = true

	p.logger.Info("Upstream probe started",
		zap.String("schedule", p.schedule),
		zap.String("city", p.city))
	return nil
}

// Stop halts the schedule and waits for a running probe to finish.
func (p *Probe) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.mu.Unlock()

	p.logger.Info("Stopping upstream probe")
	<-p.cron.Stop().Done()
}

func (p *Probe) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	startTime := time.Now()
	locations, err := p.geocoder.Search(ctx, p.city)
	if err == nil && len(locations) == 0 {
		err = fmt.Errorf("probe city %q returned no results", p.city)
	}

	p.mu.Lock()
	p.lastRun = startTime
	p.lastErr = err
	if err == nil {
		p.lastSuccess = startTime
	}
	p.mu.Unlock()

	if err != nil {
		p.logger.Warn("Upstream probe failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(startTime)))
		return
	}
	p.logger.Debug("Upstream probe succeeded",
		zap.Duration("duration", time.Since(startTime)))
}

func (p *Probe) GetStatus() map[string]interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()

	status := map[string]interface{}{
		"running":      p.running,
		"schedule":     p.schedule,
		"city":         p.city,
		"last_run":     p.lastRun,
		"last_success": p.lastSuccess,
		"healthy":      !p.lastRun.IsZero() && p.lastErr == nil,
	}
	if p.lastErr != nil {
		status["last_error"] = p.lastErr.Error()
	}
	return status
}
