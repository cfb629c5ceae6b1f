package service

import (
	"sync"
	"time"
)

// RequestStats accumulates response times and failures of served requests.
// It is safe for concurrent use.
type RequestStats struct {
	mu       sync.Mutex
	count    int64
	failures int64
	total    time.Duration
}

// NewRequestStats returns an empty RequestStats.
func NewRequestStats() *RequestStats {
	return &RequestStats{}
}

// Record adds one request observation.
func (s *RequestStats) Record(duration time.Duration, failed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.count++
	s.total += duration
	if failed {
		s.failures++
	}
}

// Snapshot returns the mean response time in seconds and the failure ratio.
// Both are zero before the first request.
func (s *RequestStats) Snapshot() (avgSeconds, errorRate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.count == 0 {
		return 0, 0
	}
	return s.total.Seconds() / float64(s.count), float64(s.failures) / float64(s.count)
}
