package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

const (
	maxHealthyResponseTime = 1.0
	maxHealthyErrorRate    = 0.05
	pingTimeout            = 2 * time.Second
)

type healthService struct {
	startedAt time.Time
	stats     *RequestStats
	pinger    Pinger
	version   string
	now       func() time.Time

	logger *logger.Logger
}

// NewHealthService builds a HealthService reading request statistics from
// stats. pinger may be nil, in which case the database is reported as up.
func NewHealthService(stats *RequestStats, pinger Pinger, cfg config.App, logger *logger.Logger) HealthService {
	return &healthService{
		startedAt: time.Now(),
		stats:     stats,
		pinger:    pinger,
		version:   cfg.Version,
		now:       time.Now,
		logger:    logger,
	}
}

// Check reports "Healthy" when the mean response time is under one second,
// the error rate under 5% and the database answers a ping.
func (h *healthService) Check(ctx context.Context) models.HealthCheckResponse {
	avg, errRate := h.stats.Snapshot()

	dbUp := true
	if h.pinger != nil {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := h.pinger.Ping(pingCtx); err != nil {
			logger.FromContext(ctx).Err(err).Msg("database ping failed")
			dbUp = false
		}
	}

	status := models.HealthStatusUnhealthy
	if avg < maxHealthyResponseTime && errRate < maxHealthyErrorRate && dbUp {
		status = models.HealthStatusHealthy
	}

	return models.HealthCheckResponse{
		Status:          status,
		Uptime:          formatUptime(h.now().Sub(h.startedAt)),
		ResponseTimeAvg: avg,
		ErrorRate:       errRate,
		Database:        dbUp,
		Version:         h.version,
	}
}

// formatUptime renders d as HH:MM:SS; hours are not wrapped at 24.
func formatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}
