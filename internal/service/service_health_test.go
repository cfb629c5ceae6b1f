package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func newTestHealthSvc(stats *RequestStats, pinger Pinger) *healthService {
	svc := NewHealthService(stats, pinger, config.App{Version: "1.2.3"}, logger.Nop()).(*healthService)
	svc.startedAt = fixedNow
	svc.now = func() time.Time { return fixedNow.Add(48 * time.Hour) }
	return svc
}

func TestHealthService_Check_Healthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pinger := mock.NewMockPinger(ctrl)
	pinger.EXPECT().Ping(gomock.Any()).Return(nil)

	stats := NewRequestStats()
	stats.Record(400*time.Millisecond, false)
	stats.Record(600*time.Millisecond, false)

	got := newTestHealthSvc(stats, pinger).Check(context.Background())

	assert.Equal(t, models.HealthStatusHealthy, got.Status)
	assert.Equal(t, "48:00:00", got.Uptime)
	assert.InDelta(t, 0.5, got.ResponseTimeAvg, 1e-9)
	assert.Zero(t, got.ErrorRate)
	assert.True(t, got.Database)
	assert.Equal(t, "1.2.3", got.Version)
}

func TestHealthService_Check_Unhealthy(t *testing.T) {
	tests := []struct {
		name    string
		record  func(s *RequestStats)
		pingErr error
	}{
		{
			name: "slow responses",
			record: func(s *RequestStats) {
				s.Record(2*time.Second, false)
			},
		},
		{
			name: "error rate at threshold",
			record: func(s *RequestStats) {
				for i := range 20 {
					s.Record(time.Millisecond, i == 0)
				}
			},
		},
		{
			name:    "database down",
			record:  func(*RequestStats) {},
			pingErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			pinger := mock.NewMockPinger(ctrl)
			pinger.EXPECT().Ping(gomock.Any()).Return(tt.pingErr)

			stats := NewRequestStats()
			tt.record(stats)

			got := newTestHealthSvc(stats, pinger).Check(context.Background())
			assert.Equal(t, models.HealthStatusUnhealthy, got.Status)
			assert.Equal(t, tt.pingErr == nil, got.Database)
		})
	}
}

func TestHealthService_Check_NoPinger(t *testing.T) {
	got := newTestHealthSvc(NewRequestStats(), nil).Check(context.Background())
	assert.Equal(t, models.HealthStatusHealthy, got.Status)
	assert.True(t, got.Database)
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "00:00:00", formatUptime(0))
	assert.Equal(t, "00:00:00", formatUptime(-time.Second))
	assert.Equal(t, "01:02:03", formatUptime(time.Hour+2*time.Minute+3*time.Second))
	assert.Equal(t, "100:00:00", formatUptime(100*time.Hour))
}

func TestRequestStats_Concurrent(t *testing.T) {
	stats := NewRequestStats()

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stats.Record(10*time.Millisecond, i%10 == 0)
		}()
	}
	wg.Wait()

	avg, errRate := stats.Snapshot()
	assert.InDelta(t, 0.01, avg, 1e-9)
	assert.InDelta(t, 0.1, errRate, 1e-9)
}

func TestRequestStats_Empty(t *testing.T) {
	avg, errRate := NewRequestStats().Snapshot()
	assert.Zero(t, avg)
	assert.Zero(t, errRate)
}
